/*
 * gonum.go, part of chemreason.
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

package chemgraph

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// node is the gonum view of an atom.
type node int64

func (n node) ID() int64 {
	return int64(n)
}

// edge is the gonum view of a bond. Bonds are not directional, so the
// reversed edge simply swaps the ends of a copy.
type edge struct {
	from, to AtomID
	order    int
}

func (e edge) From() graph.Node { return node(e.from) }

func (e edge) To() graph.Node { return node(e.to) }

func (e edge) ReversedEdge() graph.Edge {
	e.from, e.to = e.to, e.from
	return e
}

// Weight is the bond order.
func (e edge) Weight() float64 { return float64(e.order) }

// Nodes implements gonum graph.Nodes over a fixed list of atom ids.
type Nodes struct {
	ids  []AtomID
	curr int //index of the current node plus one, 0 before the first call to Next
}

// Len returns the number of nodes not yet visited.
func (N *Nodes) Len() int {
	return len(N.ids) - N.curr
}

func (N *Nodes) Reset() {
	N.curr = 0
}

func (N *Nodes) Next() bool {
	if N.curr >= len(N.ids) {
		return false
	}
	N.curr++
	return true
}

func (N *Nodes) Node() graph.Node {
	if N.curr == 0 || N.curr > len(N.ids) {
		return nil
	}
	return node(N.ids[N.curr-1])
}

// Node returns the node with the given id, or nil if there is no such atom.
func (G *Graph) Node(id int64) graph.Node {
	if _, ok := G.atoms[AtomID(id)]; !ok {
		return nil
	}
	return node(id)
}

// Nodes returns all the atoms of the graph, in insertion order.
func (G *Graph) Nodes() graph.Nodes {
	return &Nodes{ids: G.AtomIDs()}
}

// From returns the atoms bonded to the atom id.
func (G *Graph) From(id int64) graph.Nodes {
	return &Nodes{ids: G.Neighbors(AtomID(id))}
}

func (G *Graph) HasEdgeBetween(xid, yid int64) bool {
	return G.bondBetween(AtomID(xid), AtomID(yid)) != nil
}

// Edge returns the edge from uid to vid, or nil if the atoms are not bonded.
func (G *Graph) Edge(uid, vid int64) graph.Edge {
	return G.WeightedEdge(uid, vid)
}

func (G *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	return G.Edge(xid, yid)
}

func (G *Graph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	b := G.bondBetween(AtomID(uid), AtomID(vid))
	if b == nil {
		return nil
	}
	return edge{from: AtomID(uid), to: AtomID(vid), order: b.Order}
}

func (G *Graph) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	return G.WeightedEdge(xid, yid)
}

// Weight returns the order of the bond between xid and yid. An atom has weight
// 0 to itself.
func (G *Graph) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	b := G.bondBetween(AtomID(xid), AtomID(yid))
	if b == nil {
		return 0, false
	}
	return float64(b.Order), true
}

var (
	_ graph.Undirected         = (*Graph)(nil)
	_ graph.WeightedUndirected = (*Graph)(nil)
)

func toIDs(nodes []graph.Node) []AtomID {
	ret := make([]AtomID, 0, len(nodes))
	for _, v := range nodes {
		ret = append(ret, AtomID(v.ID()))
	}
	return ret
}

// Components returns the connected components of G. Each component lists its
// atoms in insertion order, and the components are sorted by their first atom.
func Components(G *Graph) [][]AtomID {
	if G.Len() == 0 {
		return nil
	}
	rank := make(map[AtomID]int, G.Len())
	for i, v := range G.atomOrder {
		rank[v] = i
	}
	cc := topo.ConnectedComponents(G)
	ret := make([][]AtomID, 0, len(cc))
	for _, c := range cc {
		ids := toIDs(c)
		sort.Slice(ids, func(i, j int) bool { return rank[ids[i]] < rank[ids[j]] })
		ret = append(ret, ids)
	}
	sort.Slice(ret, func(i, j int) bool { return rank[ret[i][0]] < rank[ret[j][0]] })
	return ret
}

// Rings returns the smallest set of smallest rings of G: as many rings as a
// cycle basis of G has, each one as small as possible, so the two rings of
// naphthalene are returned instead of one of them and its 10-atom envelope.
// Each ring lists its atoms in path order, without repeating the first one
// at the end.
func Rings(G *Graph) [][]AtomID {
	if G.NBonds() < 3 {
		return nil
	}
	n := 0
	for _, c := range topo.UndirectedCyclesIn(G) {
		ids := toIDs(c)
		if len(ids) > 1 && ids[0] == ids[len(ids)-1] {
			ids = ids[:len(ids)-1]
		}
		if len(ids) >= 3 {
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return smallestRings(G, n)
}

// InRing returns, for every atom of G, whether it is part of a ring.
func InRing(G *Graph) map[AtomID]bool {
	ret := make(map[AtomID]bool)
	for _, r := range Rings(G) {
		for _, v := range r {
			ret[v] = true
		}
	}
	return ret
}
