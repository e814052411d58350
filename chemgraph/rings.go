/*
 * rings.go, part of chemreason.
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

import "sort"

// smallestRings returns n linearly independent rings of G, picking the
// smallest candidates first. The candidates are, for every bond, the
// shortest ring through it. Independence is tested over GF(2), with each
// ring seen as the set of its bonds.
func smallestRings(G *Graph, n int) [][]AtomID {
	index := make(map[[2]AtomID]int, len(G.bondOrder))
	for i, bid := range G.bondOrder {
		b := G.bonds[bid]
		index[pairOf(b.A1, b.A2)] = i
	}
	seen := make(map[string]bool)
	var candidates [][]AtomID
	for _, bid := range G.bondOrder {
		b := G.bonds[bid]
		r := G.shortestRing(b.A1, b.A2)
		if r == nil {
			continue
		}
		key := ringKey(r, index)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, r)
	}
	sort.SliceStable(candidates, func(i, j int) bool { return len(candidates[i]) < len(candidates[j]) })
	var basis []ringVector
	ret := make([][]AtomID, 0, n)
	for _, r := range candidates {
		if len(ret) == n {
			break
		}
		v := make([]bool, len(G.bondOrder))
		for k := range r {
			v[index[pairOf(r[k], r[(k+1)%len(r)])]] = true
		}
		for _, row := range basis {
			if v[row.pivot] {
				xor(v, row.bits)
			}
		}
		pivot := -1
		for k, set := range v {
			if set {
				pivot = k
				break
			}
		}
		if pivot < 0 {
			//a combination of smaller rings.
			continue
		}
		basis = append(basis, ringVector{pivot: pivot, bits: v})
		ret = append(ret, r)
	}
	return ret
}

type ringVector struct {
	pivot int
	bits  []bool
}

func xor(v, w []bool) {
	for i := range v {
		v[i] = v[i] != w[i]
	}
}

func pairOf(a, b AtomID) [2]AtomID {
	if b < a {
		return [2]AtomID{b, a}
	}
	return [2]AtomID{a, b}
}

// ringKey identifies a ring by the sorted indexes of its bonds.
func ringKey(r []AtomID, index map[[2]AtomID]int) string {
	ids := make([]int, 0, len(r))
	for k := range r {
		ids = append(ids, index[pairOf(r[k], r[(k+1)%len(r)])])
	}
	sort.Ints(ids)
	key := make([]byte, 0, 4*len(ids))
	for _, v := range ids {
		key = append(key, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return string(key)
}

// shortestRing returns the smallest ring through the bond a-b, going from b
// to a without using that bond, or nil if the bond is in no ring.
func (G *Graph) shortestRing(a, b AtomID) []AtomID {
	parent := map[AtomID]AtomID{b: b}
	queue := []AtomID{b}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range G.Neighbors(u) {
			if u == b && w == a {
				continue
			}
			if _, ok := parent[w]; ok {
				continue
			}
			parent[w] = u
			if w == a {
				ret := []AtomID{a}
				for v := u; v != b; v = parent[v] {
					ret = append(ret, v)
				}
				ret = append(ret, b)
				return ret
			}
			queue = append(queue, w)
		}
	}
	return nil
}
