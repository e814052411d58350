/*
 * tableio_test.go, part of chemreason.
 *
 * Copyright 2026 The chemreason Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestTableRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"elements.json", "elements.json.gz", "elements.json.zst"} {
		path := filepath.Join(dir, name)
		if err := WriteTableFile(path, DefaultTable()); err != nil {
			Te.Fatal(err)
		}
		T, err := ReadTableFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		if T.Len() != DefaultTable().Len() {
			Te.Errorf("%s: read %d elements, wrote %d", name, T.Len(), DefaultTable().Len())
		}
		o, ok := T.Element("O")
		if !ok {
			Te.Fatalf("%s: no oxygen", name)
		}
		if v, ok := o.EN(); !ok || v != 3.44 || o.Category != Nonmetal || o.OxidationStates[0] != -2 {
			Te.Errorf("%s: oxygen read back as %+v", name, o)
		}
		he, _ := T.Element("He")
		if _, ok := he.EN(); ok {
			Te.Errorf("%s: helium got an electronegativity", name)
		}
	}
}

func TestReadTableErrors(Te *testing.T) {
	if _, err := ReadTable(strings.NewReader(`{"not": "an array"}`)); err == nil {
		Te.Error("expected an error for malformed data")
	}
	if _, err := ReadTable(strings.NewReader(`[{"symbol":"X","category":"halogen"},{"symbol":"X"}]`)); err == nil {
		Te.Error("expected an error for repeated symbols")
	}
	T, err := ReadTable(strings.NewReader(`[{"symbol":"Xx","number":200,"category":"who-knows","mass":300}]`))
	if err != nil {
		Te.Fatal(err)
	}
	x, _ := T.Element("Xx")
	if x.Category != Unknown {
		Te.Errorf("unknown category read as %s", x.Category)
	}
	if _, err := ReadTableFile(filepath.Join(Te.TempDir(), "nothere.json")); err == nil {
		Te.Error("expected an error for a missing file")
	}
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteErrors(Te *testing.T) {
	for _, name := range []string{"elements.json", "elements.json.gz", "elements.json.zst"} {
		if err := writeCompressed(brokenWriter{}, name, DefaultTable()); err == nil {
			Te.Errorf("%s: a failed write was reported as a success", name)
		}
	}
	if err := WriteTableFile(filepath.Join(Te.TempDir(), "nodir", "elements.json"), DefaultTable()); err == nil {
		Te.Error("expected an error for a missing directory")
	}
}
