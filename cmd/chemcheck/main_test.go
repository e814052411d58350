/*
 * main_test.go, part of chemreason.
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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/chemreason/chemjson"
)

func run(Te *testing.T, stdin string, args ...string) (int, string) {
	Te.Helper()
	var out, errout bytes.Buffer
	code := runWithArgs(args, strings.NewReader(stdin), &out, &errout)
	return code, out.String()
}

func write(Te *testing.T, name, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	require.NoError(Te, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCommand(Te *testing.T) {
	water := `{"entries":[{"symbol":"H","count":2},{"symbol":"O","count":1}],
		"bonds":[{"from":"H-0","to":"O-0","type":"single"},{"from":"H-1","to":"O-0","type":"single"}]}`
	code, out := run(Te, water, "validate", "-")
	require.Equal(Te, 0, code, out)
	rep := new(chemjson.ValidationReport)
	require.NoError(Te, json.Unmarshal([]byte(out), rep))
	assert.Equal(Te, "valid", rep.Status)
	assert.Equal(Te, "Water", rep.Name)

	code, out = run(Te, `{"bonds":[{"from":"H-0","to":"O-0","type":"glue"}]}`, "validate", "-")
	assert.Equal(Te, 1, code)
	jerr := new(chemjson.Error)
	require.NoError(Te, json.Unmarshal([]byte(out), jerr))
	assert.True(Te, jerr.IsError)
	assert.True(Te, jerr.InRequest)
}

func TestTemplateEditGeometry(Te *testing.T) {
	code, out := run(Te, "", "template", "-length", "3", "alkane")
	require.Equal(Te, 0, code, out)
	graph := write(Te, "propane.json", out)

	//propan-1-ol.
	edits := write(Te, "edits.json", `{"edits":[{"op":"add-atom","symbol":"O","bond_to":3}]}`)
	code, out = run(Te, "", "edit", graph, edits)
	require.Equal(Te, 0, code, out)
	J := new(chemjson.Graph)
	require.NoError(Te, json.Unmarshal([]byte(out), J))
	assert.Len(Te, J.Atoms, 4)
	assert.Equal(Te, "valid", J.Status)
	propanol := write(Te, "propanol.json", out)

	plot := filepath.Join(Te.TempDir(), "propanol.png")
	code, out = run(Te, "", "geometry", "-plot", plot, propanol)
	require.Equal(Te, 0, code, out)
	rep := new(chemjson.GeometryReport)
	require.NoError(Te, json.Unmarshal([]byte(out), rep))
	assert.Len(Te, rep.Positions, 4)
	assert.Equal(Te, "custom", rep.Overall.Class.String())
	_, err := os.Stat(plot)
	assert.NoError(Te, err)

	//edits that can't be applied.
	bad := write(Te, "bad.json", `{"edits":[{"op":"remove-bond","bond":42}]}`)
	code, _ = run(Te, "", "edit", graph, bad)
	assert.Equal(Te, 1, code)
}

func TestCompoundGeometry(Te *testing.T) {
	co2 := `{"entries":[{"symbol":"C","count":1},{"symbol":"O","count":2}],
		"bonds":[{"from":"C-0","to":"O-0","type":"double"},{"from":"C-0","to":"O-1","type":"double"}]}`
	code, out := run(Te, co2, "geometry", "-compound", "-dims", "3", "-")
	require.Equal(Te, 0, code, out)
	rep := new(chemjson.GeometryReport)
	require.NoError(Te, json.Unmarshal([]byte(out), rep))
	assert.Equal(Te, "linear", rep.Overall.Class.String())
	require.Len(Te, rep.Positions, 3)
	for i, name := range []string{"C-0", "O-0", "O-1"} {
		assert.Equal(Te, name, rep.Positions[i].Instance)
	}
	assert.Equal(Te, "O", rep.Positions[2].Symbol)
}

func TestUsage(Te *testing.T) {
	code, _ := run(Te, "")
	assert.Equal(Te, 2, code)
	code, _ = run(Te, "", "fold")
	assert.Equal(Te, 2, code)
	code, _ = run(Te, "", "edit", "only-one")
	assert.Equal(Te, 2, code)
	code, out := run(Te, "", "template", "polymer")
	assert.Equal(Te, 1, code)
	assert.Contains(Te, out, "IsError")
}
