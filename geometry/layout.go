/*
 * layout.go, part of chemreason.
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
	"math"
	"sort"

	"github.com/rmera/chemreason/chemgraph"
)

// layout places the atoms of molecules that are not a single VSEPR center:
// chains go straight along the axis of the bond they come from, rings are
// regular polygons, and branches leave their center at its bond angle.
// Everything is placed on the xy plane.
type layout struct {
	g          *chemgraph.Graph
	dom        map[chemgraph.AtomID]*domains
	centers    map[chemgraph.AtomID]*Geometry
	length     float64
	pos        map[chemgraph.AtomID]vec
	out        map[chemgraph.AtomID]vec //the direction substituents of a placed atom point to
	rings      [][]chemgraph.AtomID
	ringsOf    map[chemgraph.AtomID][]int
	placed     []bool //per ring
	ringCenter []vec  //per placed ring
}

func newLayout(g *chemgraph.Graph, dom map[chemgraph.AtomID]*domains, centers map[chemgraph.AtomID]*Geometry, length float64) *layout {
	L := &layout{
		g:       g,
		dom:     dom,
		centers: centers,
		length:  length,
		pos:     make(map[chemgraph.AtomID]vec, g.Len()),
		out:     make(map[chemgraph.AtomID]vec, g.Len()),
		rings:   chemgraph.Rings(g),
		ringsOf: make(map[chemgraph.AtomID][]int),
	}
	L.placed = make([]bool, len(L.rings))
	L.ringCenter = make([]vec, len(L.rings))
	for i, r := range L.rings {
		for _, id := range r {
			L.ringsOf[id] = append(L.ringsOf[id], i)
		}
	}
	return L
}

// run lays out every connected component, and puts each one to the right
// of the previous one.
func (L *layout) run() map[chemgraph.AtomID]vec {
	right := math.Inf(-1)
	for _, comp := range chemgraph.Components(L.g) {
		L.component(comp)
		low, high := math.Inf(1), math.Inf(-1)
		for _, id := range comp {
			low = math.Min(low, L.pos[id][0])
			high = math.Max(high, L.pos[id][0])
		}
		if !math.IsInf(right, -1) {
			shift := vec{right + 2*L.length - low, 0, 0}
			for _, id := range comp {
				L.pos[id] = L.pos[id].add(shift)
			}
			high += shift[0]
		}
		right = high
	}
	return L.pos
}

// component lays out one connected component, starting from a terminal atom
// out of rings if there is one, so chains come out straight.
func (L *layout) component(ids []chemgraph.AtomID) {
	start := ids[0]
	for _, id := range ids {
		if len(L.dom[id].explicit) <= 1 && len(L.ringsOf[id]) == 0 {
			start = id
			break
		}
	}
	L.pos[start] = vec{}
	L.out[start] = vec{1, 0, 0}
	queue := []chemgraph.AtomID{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		queue = append(queue, L.placeRings(u)...)
		queue = append(queue, L.placeChildren(u)...)
	}
}

// placeRings places the rings of u not yet placed. A ring that shares a bond
// with a placed ring is fused to it: its circle sits on the other side of
// the shared bond. Any other ring goes on a circle that continues the free
// direction of u. It returns the atoms it placed.
func (L *layout) placeRings(u chemgraph.AtomID) []chemgraph.AtomID {
	var ret []chemgraph.AtomID
	for _, ri := range L.ringsOf[u] {
		if L.placed[ri] {
			continue
		}
		ring := L.rings[ri]
		n := len(ring)
		var center vec
		k, sign := 0, 1.0
		if i, ok := L.sharedBond(ring, u); ok {
			a, b := ring[i], ring[(i+1)%n]
			center = L.fusedCenter(a, b, n)
			k = (i + 1) % n
			//walk away from a.
			if cross(L.pos[b].sub(center), L.pos[a].sub(center)) > 0 {
				sign = -1
			}
		} else {
			for i, v := range ring {
				if v == u {
					k = i
				}
			}
			r := L.length / (2 * math.Sin(math.Pi/float64(n)))
			center = L.pos[u].add(L.freeDirection(u).scale(r))
		}
		L.placed[ri] = true
		L.ringCenter[ri] = center
		toK := L.pos[ring[k]].sub(center)
		r := toK.norm()
		a0 := math.Atan2(toK[1], toK[0])
		for j := 1; j < n; j++ {
			id := ring[(k+j)%n]
			if _, ok := L.pos[id]; ok {
				continue
			}
			theta := a0 + sign*2*math.Pi*float64(j)/float64(n)
			p := center.add(vec{r * math.Cos(theta), r * math.Sin(theta), 0})
			L.pos[id] = p
			L.out[id] = p.sub(center).unit()
			ret = append(ret, id)
		}
	}
	return ret
}

// sharedBond returns the index i of a ring bond ring[i]-ring[i+1] whose two
// atoms are already placed, preferring one that contains u.
func (L *layout) sharedBond(ring []chemgraph.AtomID, u chemgraph.AtomID) (int, bool) {
	found := -1
	for i := range ring {
		a, b := ring[i], ring[(i+1)%len(ring)]
		_, oka := L.pos[a]
		_, okb := L.pos[b]
		if !oka || !okb {
			continue
		}
		if a == u || b == u {
			return i, true
		}
		if found < 0 {
			found = i
		}
	}
	return found, found >= 0
}

// fusedCenter returns the center of an n-atom ring built on the placed bond
// a-b, on the side of the bond opposite to the placed ring that has it. If no
// placed ring has the bond, the center goes away from the other placed
// neighbors of a and b.
func (L *layout) fusedCenter(a, b chemgraph.AtomID, n int) vec {
	pa, pb := L.pos[a], L.pos[b]
	d := pb.sub(pa)
	mid := pa.add(d.scale(0.5))
	h := d.norm() / (2 * math.Tan(math.Pi/float64(n)))
	perp := vec{-d[1], d[0], 0}.unit()
	var away vec
	other := false
	for ri, r := range L.rings {
		if L.placed[ri] && hasBond(r, a, b) {
			away = mid.sub(L.ringCenter[ri])
			other = true
			break
		}
	}
	if !other {
		for _, end := range []chemgraph.AtomID{a, b} {
			for _, w := range L.dom[end].explicit {
				if p, ok := L.pos[w]; ok && w != a && w != b {
					away = away.add(mid.sub(p))
				}
			}
		}
	}
	if dot(perp, away) < 0 {
		perp = perp.scale(-1)
	}
	return mid.add(perp.scale(h))
}

// freeDirection is the direction pointing away from the placed neighbors of
// u, or the outward direction of u if it has none, or they cancel out.
func (L *layout) freeDirection(u chemgraph.AtomID) vec {
	var sum vec
	for _, w := range L.dom[u].explicit {
		if p, ok := L.pos[w]; ok {
			sum = sum.add(L.pos[u].sub(p).unit())
		}
	}
	if sum.norm() < 1e-6 {
		return L.out[u]
	}
	return sum.unit()
}

// hasBond returns true if a and b are consecutive in ring.
func hasBond(ring []chemgraph.AtomID, a, b chemgraph.AtomID) bool {
	for i := range ring {
		c, d := ring[i], ring[(i+1)%len(ring)]
		if (c == a && d == b) || (c == b && d == a) {
			return true
		}
	}
	return false
}

func dot(v, w vec) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// cross returns the z component of v x w.
func cross(v, w vec) float64 { return v[0]*w[1] - v[1]*w[0] }

// placeChildren places the neighbors of u that are not yet placed. The
// one with the deepest subtree continues straight along the outward direction
// of u; the others are rotated alternately to each side by 180 minus the bond
// angle of u, and by multiples of it when there are more than two.
func (L *layout) placeChildren(u chemgraph.AtomID) []chemgraph.AtomID {
	children := make([]chemgraph.AtomID, 0, 4)
	for _, v := range L.dom[u].explicit {
		if _, ok := L.pos[v]; !ok {
			children = append(children, v)
		}
	}
	if len(children) == 0 {
		return nil
	}
	depth := make(map[chemgraph.AtomID]int, len(children))
	for _, c := range children {
		depth[c] = L.depth(c, u)
	}
	sort.SliceStable(children, func(i, j int) bool { return depth[children[i]] > depth[children[j]] })
	step := 180 - L.branchAngle(u)
	if step < 1 {
		step = 60
	}
	d := L.out[u]
	for k, c := range children {
		dir := d
		if k > 0 {
			turns := float64((k + 1) / 2)
			sign := 1.0
			if k%2 == 0 {
				sign = -1
			}
			dir = rotateZ(d, sign*step*turns)
		}
		bl := L.length * orderFactor(L.dom[u].order(c))
		L.pos[c] = L.pos[u].add(dir.scale(bl))
		L.out[c] = dir
	}
	return children
}

// branchAngle is the bond angle branches leave u with.
func (L *layout) branchAngle(u chemgraph.AtomID) float64 {
	g, ok := L.centers[u]
	if !ok || len(g.Angles) == 0 {
		return defaultBranchAngle
	}
	switch g.Class {
	case Linear, Bent, TrigonalPlanar, TrigonalPyramidal, Tetrahedral:
		return g.Angles[0]
	}
	return defaultBranchAngle
}

// depth returns the longest shortest-path distance from c to the atoms
// reachable from it without going through from or any placed atom.
func (L *layout) depth(c, from chemgraph.AtomID) int {
	dist := map[chemgraph.AtomID]int{c: 0}
	queue := []chemgraph.AtomID{c}
	deepest := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range L.dom[v].explicit {
			if w == from {
				continue
			}
			if _, ok := L.pos[w]; ok {
				continue
			}
			if _, ok := dist[w]; ok {
				continue
			}
			dist[w] = dist[v] + 1
			if dist[w] > deepest {
				deepest = dist[w]
			}
			queue = append(queue, w)
		}
	}
	return deepest
}
