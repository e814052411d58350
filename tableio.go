/*
 * tableio.go, part of chemreason.
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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ReadTable reads a JSON array of elements from r and builds a PeriodicTable with them.
func ReadTable(r io.Reader) (*PeriodicTable, error) {
	var elems []Element
	dec := json.NewDecoder(r)
	if err := dec.Decode(&elems); err != nil {
		return nil, NewError(fmt.Sprintf("can't decode element data: %s", err.Error()), "ReadTable", true)
	}
	T, err := NewPeriodicTable(elems)
	if err != nil {
		return nil, errDecorate(err, "ReadTable")
	}
	return T, nil
}

// ReadTableFile reads a PeriodicTable from the JSON file name. Files ending in
// .zst or .gz are decompressed (zstd or gzip, respectively) on the fly.
func ReadTableFile(name string) (*PeriodicTable, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, NewError(err.Error(), "ReadTableFile", true)
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(name, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			return nil, NewError(fmt.Sprintf("can't open zstd stream in %s: %s", name, err.Error()), "ReadTableFile", true)
		}
		defer z.Close()
		r = z
	case strings.HasSuffix(name, ".gz"):
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, NewError(fmt.Sprintf("can't open gzip stream in %s: %s", name, err.Error()), "ReadTableFile", true)
		}
		defer z.Close()
		r = z
	}
	T, err := ReadTable(r)
	if err != nil {
		return nil, errDecorate(err, "ReadTableFile")
	}
	return T, nil
}

// WriteTable writes the elements of T to w as a JSON array, the format ReadTable reads.
func WriteTable(w io.Writer, T *PeriodicTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(T.Elements()); err != nil {
		return NewError(err.Error(), "WriteTable", true)
	}
	return nil
}

// WriteTableFile writes T to the file name, compressing it with zstd or gzip if
// the name ends in .zst or .gz.
func WriteTableFile(name string, T *PeriodicTable) error {
	f, err := os.Create(name)
	if err != nil {
		return NewError(err.Error(), "WriteTableFile", true)
	}
	if err := writeCompressed(f, name, T); err != nil {
		f.Close()
		return errDecorate(err, "WriteTableFile")
	}
	//the file is only complete once it is closed.
	if err := f.Close(); err != nil {
		return NewError(err.Error(), "WriteTableFile", true)
	}
	return nil
}

// writeCompressed writes T to out, through the compressor the suffix of name
// asks for, if any.
func writeCompressed(out io.Writer, name string, T *PeriodicTable) error {
	var w io.WriteCloser
	switch {
	case strings.HasSuffix(name, ".zst"):
		z, err := zstd.NewWriter(out)
		if err != nil {
			return NewError(err.Error(), "writeCompressed", true)
		}
		w = z
	case strings.HasSuffix(name, ".gz"):
		w = gzip.NewWriter(out)
	}
	if w == nil {
		return WriteTable(out, T)
	}
	if err := WriteTable(w, T); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return NewError(err.Error(), "writeCompressed", true)
	}
	return nil
}
