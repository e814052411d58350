/*
 * resolve.go, part of chemreason.
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
	"time"

	chem "github.com/rmera/chemreason"
	"github.com/rmera/chemreason/chemgraph"
	"github.com/rmera/chemreason/compound"
	"github.com/rmera/chemreason/v3"
)

// DefaultBondLength is the layout distance between bonded atoms.
const DefaultBondLength = 1.5

// ErrUnknownInstance is returned by ResolveCompound for bonds whose ends are
// not atoms of the compound.
var ErrUnknownInstance = chem.Sentinel("no such atom instance")

// Resolver computes geometries and coordinates.
type Resolver struct {
	BondLength float64    //values <= 0 mean DefaultBondLength
	Dimensions int        //2 or 3. Anything else means 2
	Center     chem.Point //the coordinates are centered here. Center.Z is ignored in 2D
	Now        func() time.Time
}

// NewResolver returns a 2D Resolver with the default bond length, centered
// at the origin.
func NewResolver() *Resolver {
	return &Resolver{BondLength: DefaultBondLength, Dimensions: 2, Now: time.Now}
}

// Result of resolving a graph.
type Result struct {
	Graph     *chemgraph.Graph               //the resolved graph
	Centers   map[chemgraph.AtomID]*Geometry //atoms with at least 2 neighbors
	Overall   *Geometry
	Positions map[chemgraph.AtomID]chem.Point
	Coords    *v3.Matrix //one row per atom, in the order of Order. nil for empty graphs
	Order     []chemgraph.AtomID
	Clashes   []Clash //atoms closer than ClashFraction bond lengths
}

// Resolve resolves G with a default Resolver.
func Resolve(G *chemgraph.Graph) *Result {
	return NewResolver().Resolve(G)
}

func (R *Resolver) length() float64 {
	if R.BondLength <= 0 {
		return DefaultBondLength
	}
	return R.BondLength
}

func (R *Resolver) dims() int {
	if R.Dimensions == 3 {
		return 3
	}
	return 2
}

func (R *Resolver) now() time.Time {
	if R.Now == nil {
		return time.Now()
	}
	return R.Now()
}

// Resolve assigns a geometry to every atom of G with at least two neighbors
// (implicit hydrogens count) and computes coordinates for all atoms. It is a
// full recomputation every time, and G is not modified.
func (R *Resolver) Resolve(G *chemgraph.Graph) *Result {
	return R.resolve(G, true)
}

func (R *Resolver) resolve(G *chemgraph.Graph, implicit bool) *Result {
	now := R.now()
	res := &Result{
		Graph:     G,
		Centers:   make(map[chemgraph.AtomID]*Geometry),
		Positions: make(map[chemgraph.AtomID]chem.Point, G.Len()),
		Order:     G.AtomIDs(),
	}
	if G.Len() == 0 {
		res.Overall = &Geometry{Class: Custom, Generated: now}
		return res
	}
	dom := electronDomains(G, implicit)
	for _, id := range res.Order {
		d := dom[id]
		if d.n() < 2 {
			continue
		}
		class, angles := classify(d.n(), d.lonePairs, d.hybrid)
		center := id
		res.Centers[id] = &Geometry{Class: class, Center: &center, Angles: angles, Generated: now}
	}
	var pos map[chemgraph.AtomID]vec
	if hub, ok := singleCenter(G, dom); ok {
		pos = R.placeStar(G, dom, res.Centers, hub)
		res.Overall = overall(G, res.Centers, now)
	} else {
		pos = newLayout(G, dom, res.Centers, R.length()).run()
		res.Overall = &Geometry{Class: Custom, Generated: now}
	}
	for id, g := range res.Centers {
		if g.Class != Custom {
			continue
		}
		//measured angles between the explicit neighbors.
		nb := dom[id].explicit
		for i := 0; i < len(nb); i++ {
			for j := i + 1; j < len(nb); j++ {
				g.Angles = append(g.Angles, pos[nb[i]].sub(pos[id]).angle(pos[nb[j]].sub(pos[id])))
			}
		}
	}
	res.Coords = R.center(pos, res.Order)
	for i, id := range res.Order {
		v := res.Coords.Vec(i)
		res.Positions[id] = chem.Point{X: v[0], Y: v[1], Z: v[2]}
	}
	res.Clashes = Clashes(res, ClashFraction*R.length())
	return res
}

// singleCenter returns true if G can be placed on ideal VSEPR directions: it
// is connected, has no rings, and at most one atom has more than one bonded
// atom. The returned id is that atom, or 0 if there is none.
func singleCenter(G *chemgraph.Graph, dom map[chemgraph.AtomID]*domains) (chemgraph.AtomID, bool) {
	if len(chemgraph.Components(G)) != 1 || len(chemgraph.Rings(G)) != 0 {
		return 0, false
	}
	var hub chemgraph.AtomID
	for _, id := range G.AtomIDs() {
		if len(dom[id].explicit) < 2 {
			continue
		}
		if hub != 0 {
			return 0, false
		}
		hub = id
	}
	return hub, true
}

// placeStar places the neighbors of hub on the ideal directions of its
// geometry. Without a hub, the graph has one or two atoms, which are
// placed on the x axis.
func (R *Resolver) placeStar(G *chemgraph.Graph, dom map[chemgraph.AtomID]*domains, centers map[chemgraph.AtomID]*Geometry, hub chemgraph.AtomID) map[chemgraph.AtomID]vec {
	ids := G.AtomIDs()
	pos := make(map[chemgraph.AtomID]vec, len(ids))
	if hub == 0 {
		pos[ids[0]] = vec{}
		if len(ids) > 1 {
			pos[ids[1]] = vec{R.length() * orderFactor(dom[ids[0]].order(ids[1])), 0, 0}
		}
		return pos
	}
	pos[hub] = vec{}
	d := dom[hub]
	g := centers[hub]
	dirs := idealDirections(g.Class, d.n(), g.Angles, R.dims())
	for i, nb := range d.explicit {
		pos[nb] = dirs[i].scale(R.length() * orderFactor(d.orders[i]))
	}
	return pos
}

// overall is the geometry of a molecule placed as a single center: the
// geometry of that center if there is exactly one, linear for diatomic
// molecules, and custom otherwise.
func overall(G *chemgraph.Graph, centers map[chemgraph.AtomID]*Geometry, now time.Time) *Geometry {
	if len(centers) == 1 {
		for _, g := range centers {
			return &Geometry{Class: g.Class, Angles: append([]float64(nil), g.Angles...), Generated: now}
		}
	}
	if len(centers) == 0 && G.Len() == 2 {
		return &Geometry{Class: Linear, Angles: []float64{AngleLinear}, Generated: now}
	}
	return &Geometry{Class: Custom, Generated: now}
}

// center puts the positions in a matrix, in the given order, and translates
// them so the center of their bounding box is at R.Center.
func (R *Resolver) center(pos map[chemgraph.AtomID]vec, order []chemgraph.AtomID) *v3.Matrix {
	coords := v3.Zeros(len(order))
	for i, id := range order {
		p := pos[id]
		coords.SetVec(i, p[0], p[1], p[2])
	}
	low, high := coords.BoundingBox()
	l, h := low.Vec(0), high.Vec(0)
	target := vec{R.Center.X, R.Center.Y, R.Center.Z}
	if R.dims() == 2 {
		target[2] = 0
	}
	shift := v3.Zeros(1)
	shift.SetVec(0, target[0]-(l[0]+h[0])/2, target[1]-(l[1]+h[1])/2, target[2]-(l[2]+h[2])/2)
	coords.AddVec(coords, shift)
	if R.dims() == 2 {
		for i := range order {
			coords.Set(i, 2, 0)
		}
	}
	return coords
}

// ResolveCompound resolves a compound with a default Resolver.
func ResolveCompound(table chem.Elementer, entries []compound.Entry, bonds []compound.Bond) (*Result, map[string]chemgraph.AtomID, error) {
	return NewResolver().ResolveCompound(table, entries, bonds)
}

// ResolveCompound builds a graph with one atom per instance of the compound
// (see compound.Expand) and resolves it. Bonds get the order of their type,
// and ionic, metallic and untyped bonds get order 1. Repeated bonds are
// ignored. All the atoms of a compound are explicit, so no implicit hydrogens
// are added. It returns the id of the atom of each instance.
func (R *Resolver) ResolveCompound(table chem.Elementer, entries []compound.Entry, bonds []compound.Bond) (*Result, map[string]chemgraph.AtomID, error) {
	G := chemgraph.NewGraph(table)
	ids := make(map[string]chemgraph.AtomID)
	edits := make([]chemgraph.Edit, 0, len(entries)+len(bonds))
	next := G.NextAtomID()
	for _, v := range compound.Expand(entries) {
		if v.Symbol == "" {
			continue
		}
		ids[v.ID] = next
		next++
		edits = append(edits, chemgraph.AddAtom{Symbol: v.Symbol})
	}
	seen := make(map[[2]chemgraph.AtomID]bool)
	for _, b := range bonds {
		a1, ok1 := ids[b.From]
		a2, ok2 := ids[b.To]
		if !ok1 {
			return nil, nil, chem.KindError(ErrUnknownInstance, b.From, "ResolveCompound")
		}
		if !ok2 {
			return nil, nil, chem.KindError(ErrUnknownInstance, b.To, "ResolveCompound")
		}
		key := [2]chemgraph.AtomID{a1, a2}
		if a2 < a1 {
			key = [2]chemgraph.AtomID{a2, a1}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		order := b.Type.Kind().Order
		if order < 1 {
			order = 1
		}
		edits = append(edits, chemgraph.AddBond{A1: a1, A2: a2, Order: order})
	}
	G, err := chemgraph.Apply(G, edits...)
	if err != nil {
		if e, ok := err.(chem.Error); ok {
			e.Decorate("ResolveCompound")
		}
		return nil, nil, err
	}
	return R.resolve(G, false), ids, nil
}
