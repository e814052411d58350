/*
 * plot_test.go, part of chemreason.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/chemreason/chemgraph"
	"github.com/rmera/chemreason/geometry"
)

// TestLayout draws toluene with a charged, radical oxygen in PNG and SVG.
func TestLayout(Te *testing.T) {
	G, err := chemgraph.ApplyTemplate(chemgraph.TemplateAromatic, chemgraph.TemplateParams{})
	require.NoError(Te, err)
	G, err = chemgraph.Apply(G, chemgraph.AddAtom{Symbol: "C", BondTo: 1},
		chemgraph.AddAtom{Symbol: "O", BondTo: 4, Charge: -1, Radical: true})
	require.NoError(Te, err)
	res := geometry.Resolve(G)
	dir := Te.TempDir()
	for _, name := range []string{"toluene.png", "toluene.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, Layout(res, "Toluene", path))
		info, err := os.Stat(path)
		require.NoError(Te, err)
		assert.NotZero(Te, info.Size())
	}
	assert.Error(Te, Layout(geometry.Resolve(chemgraph.NewGraph(nil)), "empty", filepath.Join(dir, "empty.png")))
	assert.Error(Te, Layout(nil, "nil", filepath.Join(dir, "nil.png")))
}

func TestColors(Te *testing.T) {
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 6; i++ {
		r, g, b := colors(i, 6)
		seen[[3]uint8{r, g, b}] = true
	}
	assert.Len(Te, seen, 6)
	r, g, b := iHVS2RGB(0, 1, 0)
	assert.Equal(Te, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})
	assert.Equal(Te, "O-", atomLabel(chemgraph.Atom{Symbol: "O", Charge: -1}))
	assert.Equal(Te, "Fe3+", atomLabel(chemgraph.Atom{Symbol: "Fe", Charge: 3}))
}
