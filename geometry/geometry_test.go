/*
 * geometry_test.go, part of chemreason.
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

package geometry

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/chemreason"
	"github.com/rmera/chemreason/chemgraph"
	"github.com/rmera/chemreason/compound"
	"github.com/rmera/chemreason/v3"
)

// star returns a graph with a center atom bonded to the given atoms.
func star(Te *testing.T, center string, order int, ligands ...string) *chemgraph.Graph {
	Te.Helper()
	edits := []chemgraph.Edit{chemgraph.AddAtom{Symbol: center}}
	for _, l := range ligands {
		edits = append(edits, chemgraph.AddAtom{Symbol: l, BondTo: 1, Order: order})
	}
	G, err := chemgraph.Apply(chemgraph.NewGraph(nil), edits...)
	require.NoError(Te, err)
	return G
}

func point2vec(p chem.Point) vec {
	return vec{p.X, p.Y, p.Z}
}

// bondAngle returns the angle a-b-c in degrees.
func bondAngle(res *Result, a, b, c chemgraph.AtomID) float64 {
	pb := point2vec(res.Positions[b])
	return point2vec(res.Positions[a]).sub(pb).angle(point2vec(res.Positions[c]).sub(pb))
}

func TestCarbonDioxideIsLinear(Te *testing.T) {
	G := star(Te, "C", 2, "O", "O")
	res := Resolve(G)
	require.Len(Te, res.Centers, 1)
	c := res.Centers[1]
	require.NotNil(Te, c)
	assert.Equal(Te, Linear, c.Class)
	assert.Equal(Te, []float64{180}, c.Angles)
	assert.Equal(Te, chemgraph.AtomID(1), *c.Center)
	assert.Equal(Te, Linear, res.Overall.Class)
	assert.Nil(Te, res.Overall.Center)
	assert.InDelta(Te, 180, bondAngle(res, 2, 1, 3), 1e-6)
	assert.InDelta(Te, DefaultBondLength*0.87, res.Positions[1].Dist(res.Positions[2]), 1e-9)
}

func TestWaterIsBent(Te *testing.T) {
	res := Resolve(star(Te, "O", 1, "H", "H"))
	require.Contains(Te, res.Centers, chemgraph.AtomID(1))
	assert.Equal(Te, Bent, res.Centers[1].Class)
	assert.Equal(Te, Bent, res.Overall.Class)
	assert.InDelta(Te, AngleBent, bondAngle(res, 2, 1, 3), 1e-6)

	//the same with implicit hydrogens.
	res = Resolve(star(Te, "O", 1))
	assert.Equal(Te, Bent, res.Centers[1].Class)
	assert.Equal(Te, chem.Point{}, res.Positions[1])
}

func TestClasses(Te *testing.T) {
	cases := []struct {
		center  string
		ligands []string
		want    Class
	}{
		{"B", []string{"F", "F", "F"}, TrigonalPlanar},
		{"N", []string{"H", "H", "H"}, TrigonalPyramidal},
		{"C", []string{"H", "H", "H", "H"}, Tetrahedral},
		{"P", []string{"Cl", "Cl", "Cl", "Cl", "Cl"}, TrigonalBipyramidal},
		{"S", []string{"F", "F", "F", "F", "F", "F"}, Octahedral},
		{"I", []string{"F", "F", "F", "F", "F", "F", "F"}, Custom},
	}
	for _, c := range cases {
		res := Resolve(star(Te, c.center, 1, c.ligands...))
		require.Contains(Te, res.Centers, chemgraph.AtomID(1), c.center)
		assert.Equal(Te, c.want, res.Centers[1].Class, c.center)
		assert.Equal(Te, c.want, res.Overall.Class, c.center)
	}
	res := Resolve(star(Te, "I", 1, "F", "F", "F", "F", "F", "F", "F"))
	assert.Len(Te, res.Centers[1].Angles, 21)

	//methane from the blank template: four implicit hydrogens.
	G, err := chemgraph.ApplyTemplate(chemgraph.TemplateBlank, chemgraph.TemplateParams{})
	require.NoError(Te, err)
	assert.Equal(Te, Tetrahedral, Resolve(G).Centers[1].Class)
}

func Test3DAngles(Te *testing.T) {
	R := NewResolver()
	R.Dimensions = 3
	res := R.Resolve(star(Te, "N", 1, "H", "H", "H"))
	assert.InDelta(Te, AnglePyramidal, bondAngle(res, 2, 1, 3), 1e-6)
	assert.InDelta(Te, AnglePyramidal, bondAngle(res, 3, 1, 4), 1e-6)
	assert.NotZero(Te, res.Positions[2].Z)

	res = R.Resolve(star(Te, "C", 1, "H", "H", "H", "H"))
	assert.InDelta(Te, AngleTetrahedral, bondAngle(res, 2, 1, 5), 0.1)

	res = Resolve(star(Te, "N", 1, "H", "H", "H"))
	for _, p := range res.Positions {
		assert.Zero(Te, p.Z)
	}
}

func TestChainLayoutAndCentering(Te *testing.T) {
	G, err := chemgraph.ApplyTemplate(chemgraph.TemplateAlkane, chemgraph.TemplateParams{Length: 4})
	require.NoError(Te, err)
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	R := &Resolver{BondLength: 1.2, Center: chem.Point{X: 10, Y: -5, Z: 3}, Now: func() time.Time { return stamp }}
	res := R.Resolve(G)
	assert.Equal(Te, Custom, res.Overall.Class)
	assert.Equal(Te, stamp, res.Overall.Generated)
	assert.Len(Te, res.Centers, 4) //terminal carbons have three implicit hydrogens
	assert.Equal(Te, Tetrahedral, res.Centers[2].Class)
	for i, id := range res.Order {
		p := res.Positions[id]
		assert.InDelta(Te, 10-1.8+1.2*float64(i), p.X, 1e-9)
		assert.InDelta(Te, -5, p.Y, 1e-9)
		assert.Zero(Te, p.Z)
		assert.Equal(Te, [3]float64{p.X, p.Y, p.Z}, res.Coords.Vec(i))
	}
	low, high := res.Coords.BoundingBox()
	assert.InDelta(Te, 10, (low.At(0, 0)+high.At(0, 0))/2, 1e-9)
}

func TestRingsAndBranches(Te *testing.T) {
	G, err := chemgraph.ApplyTemplate(chemgraph.TemplateAromatic, chemgraph.TemplateParams{})
	require.NoError(Te, err)
	res := Resolve(G)
	for _, b := range G.Bonds() {
		assert.InDelta(Te, DefaultBondLength, res.Positions[b.A1].Dist(res.Positions[b.A2]), 1e-9)
	}
	for _, g := range res.Centers {
		assert.Equal(Te, TrigonalPlanar, g.Class)
	}
	assert.Empty(Te, res.Clashes)

	//toluene: the methyl sits on the ring, one bond away.
	tol, err := chemgraph.Apply(G, chemgraph.AddAtom{Symbol: "C", BondTo: 1})
	require.NoError(Te, err)
	res = Resolve(tol)
	assert.InDelta(Te, DefaultBondLength, res.Positions[1].Dist(res.Positions[7]), 1e-9)
	for _, id := range tol.AtomIDs() {
		if id != 7 {
			assert.Greater(Te, res.Positions[id].Dist(res.Positions[7]), 1.0)
		}
	}

	//2-methylbutane: the methyl branch leaves the center at its bond angle.
	branched, err := chemgraph.Apply(chemgraph.NewGraph(nil),
		chemgraph.AddAtom{Symbol: "C"}, chemgraph.AddAtom{Symbol: "C", BondTo: 1},
		chemgraph.AddAtom{Symbol: "C", BondTo: 2}, chemgraph.AddAtom{Symbol: "C", BondTo: 2},
		chemgraph.AddAtom{Symbol: "C", BondTo: 4})
	require.NoError(Te, err)
	res = Resolve(branched)
	assert.Equal(Te, Custom, res.Overall.Class)
	assert.InDelta(Te, AngleTetrahedral, bondAngle(res, 1, 2, 3), 1e-6)
	assert.InDelta(Te, 180, bondAngle(res, 1, 2, 4), 1e-6)
}

// tetralin returns a benzene ring fused, on its 1-2 bond, to a ring closed
// by four more carbons.
func tetralin(Te *testing.T) *chemgraph.Graph {
	Te.Helper()
	G, err := chemgraph.ApplyTemplate(chemgraph.TemplateAromatic, chemgraph.TemplateParams{})
	require.NoError(Te, err)
	G, err = chemgraph.Apply(G, chemgraph.AddAtom{Symbol: "C", BondTo: 1}, chemgraph.AddAtom{Symbol: "C", BondTo: 7},
		chemgraph.AddAtom{Symbol: "C", BondTo: 8}, chemgraph.AddAtom{Symbol: "C", BondTo: 9},
		chemgraph.AddBond{A1: 10, A2: 2})
	require.NoError(Te, err)
	return G
}

func TestFusedRings(Te *testing.T) {
	G := tetralin(Te)
	require.Len(Te, chemgraph.Rings(G), 2)
	res := Resolve(G)
	for _, b := range G.Bonds() {
		assert.InDelta(Te, DefaultBondLength, res.Positions[b.A1].Dist(res.Positions[b.A2]), 1e-9, "bond %d-%d", b.A1, b.A2)
	}
	assert.Empty(Te, res.Clashes)
	//the second ring is a regular hexagon too.
	assert.InDelta(Te, 120, bondAngle(res, 7, 8, 9), 1e-6)
	assert.InDelta(Te, 120, bondAngle(res, 10, 2, 1), 1e-6)
	ids := G.AtomIDs()
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			assert.Greater(Te, res.Positions[ids[i]].Dist(res.Positions[ids[j]]), 1.0)
		}
	}

	//a substituent on the saturated ring starts the layout there.
	sub, err := chemgraph.Apply(G, chemgraph.AddAtom{Symbol: "O", BondTo: 8})
	require.NoError(Te, err)
	res = Resolve(sub)
	assert.Empty(Te, res.Clashes)
	for _, b := range sub.Bonds() {
		assert.InDelta(Te, DefaultBondLength, res.Positions[b.A1].Dist(res.Positions[b.A2]), 1e-9)
	}
}

func TestDisconnected(Te *testing.T) {
	G, err := chemgraph.Apply(chemgraph.NewGraph(nil), chemgraph.AddAtom{Symbol: "C"}, chemgraph.AddAtom{Symbol: "O"})
	require.NoError(Te, err)
	res := Resolve(G)
	assert.Equal(Te, Custom, res.Overall.Class)
	assert.InDelta(Te, 2*DefaultBondLength, res.Positions[1].Dist(res.Positions[2]), 1e-9)

	empty := Resolve(chemgraph.NewGraph(nil))
	assert.Nil(Te, empty.Coords)
	assert.Equal(Te, Custom, empty.Overall.Class)
}

func TestResolveCompound(Te *testing.T) {
	entries := []compound.Entry{{Symbol: "H", Count: 2}, {Symbol: "O", Count: 1}}
	bonds := []compound.Bond{
		{From: "H-0", To: "O-0", Type: chem.Single},
		{From: "O-0", To: "H-1", Type: chem.Single},
		{From: "H-1", To: "O-0", Type: chem.Single},
	}
	res, ids, err := ResolveCompound(nil, entries, bonds)
	require.NoError(Te, err)
	o := ids["O-0"]
	require.Contains(Te, res.Centers, o)
	assert.Equal(Te, Bent, res.Centers[o].Class)
	assert.InDelta(Te, AngleBent, bondAngle(res, ids["H-0"], o, ids["H-1"]), 1e-6)

	//no implicit hydrogens in compounds: a lone C-O is diatomic.
	res, _, err = ResolveCompound(nil, []compound.Entry{{Symbol: "C", Count: 1}, {Symbol: "O", Count: 1}},
		[]compound.Bond{{From: "C-0", To: "O-0", Type: chem.Triple}})
	require.NoError(Te, err)
	assert.Empty(Te, res.Centers)
	assert.Equal(Te, Linear, res.Overall.Class)

	_, _, err = ResolveCompound(nil, entries, []compound.Bond{{From: "H-0", To: "O-3"}})
	assert.True(Te, errors.Is(err, ErrUnknownInstance))
	_, _, err = ResolveCompound(nil, entries, []compound.Bond{{From: "O-0", To: "O-0"}})
	assert.True(Te, errors.Is(err, chemgraph.ErrSelfBond))
}

func TestParseClass(Te *testing.T) {
	for _, c := range []Class{Linear, Bent, TrigonalPlanar, Tetrahedral, TrigonalPyramidal, TrigonalBipyramidal, Octahedral, Custom} {
		assert.Equal(Te, c, ParseClass(c.String()))
	}
	assert.Equal(Te, Custom, ParseClass("see-saw"))
	assert.False(Te, math.IsNaN(rotateZ(vec{1, 0, 0}, 90)[1]))
	assert.InDelta(Te, 1, rotateZ(vec{1, 0, 0}, 90)[1], 1e-12)
}

func TestClashes(Te *testing.T) {
	G, err := chemgraph.Apply(chemgraph.NewGraph(nil),
		chemgraph.AddAtom{Symbol: "C"}, chemgraph.AddAtom{Symbol: "C", BondTo: 1}, chemgraph.AddAtom{Symbol: "O"})
	require.NoError(Te, err)
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0.3, 0, 0, 0.4, 0, 0})
	require.NoError(Te, err)
	res := &Result{Graph: G, Order: G.AtomIDs(), Coords: coords}
	clashes := Clashes(res, 0.75)
	require.Len(Te, clashes, 2)
	assert.Equal(Te, chemgraph.AtomID(1), clashes[0].A1)
	assert.Equal(Te, chemgraph.AtomID(3), clashes[0].A2)
	assert.InDelta(Te, 0.4, clashes[0].Distance, 1e-12)
	assert.InDelta(Te, 0.1, clashes[1].Distance, 1e-12)
	assert.Empty(Te, Clashes(res, 0.05))
	assert.Nil(Te, Clashes(&Result{}, 1))
}
