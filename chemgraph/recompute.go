/*
 * recompute.go, part of chemreason.
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
	"fmt"

	chem "github.com/rmera/chemreason"
)

// Recompute returns a copy of G with the implicit hydrogens and hybridization of
// every atom, and the issues of the graph, computed from scratch from its atoms
// and bonds. It never fails, and recomputing a recomputed graph changes nothing.
//
// Implicit hydrogens are max(0, capacity - bond order sum - |charge| - radical),
// where capacity is the standard valence of the element. The charge is
// subtracted whatever its sign, which is a simplification, not an electron count.
// Aromatic bonds have order 1, and an atom with aromatic bonds spends one
// extra slot on the delocalized system, so every carbon of benzene gets
// one hydrogen.
func Recompute(G *Graph) *Graph {
	ret := G.Copy()
	ret.issues = ret.issues[:0]
	for _, id := range ret.atomOrder {
		a := ret.atoms[id]
		var sum, doubles, triples int
		aromatic := false
		for _, bid := range ret.bondOrder {
			b := ret.bonds[bid]
			if !b.Has(id) {
				continue
			}
			sum += b.Order
			switch {
			case b.Class == Aromatic:
				aromatic = true
			case b.Order == 2:
				doubles++
			case b.Order == 3:
				triples++
			}
		}
		if aromatic {
			sum++
		}
		switch {
		case triples > 0 || doubles >= 2:
			a.Hybrid = SP
		case doubles == 1 || aromatic:
			a.Hybrid = SP2
		default:
			a.Hybrid = SP3
		}
		a.ImplicitH = 0
		e, ok := ret.table.Element(a.Symbol)
		if !ok {
			ret.issues = append(ret.issues, Issue{SeverityWarning, id, fmt.Sprintf("unknown element %q", a.Symbol)})
			continue
		}
		capacity := chem.ValenceCapacity(e)
		radical := 0
		if a.Radical {
			radical = 1
		}
		if h := capacity - sum - abs(a.Charge) - radical; h > 0 {
			a.ImplicitH = h
		}
		//a charge allows one extra bond per unit, as in ammonium.
		if sum > capacity+abs(a.Charge) {
			ret.issues = append(ret.issues, Issue{SeverityInvalid, id,
				fmt.Sprintf("%s has a bond order sum of %d, above its capacity of %d", a.Symbol, sum, capacity)})
		}
	}
	if ret.Len() > 1 {
		if cc := Components(ret); len(cc) > 1 {
			ret.issues = append(ret.issues, Issue{SeverityWarning, 0, fmt.Sprintf("graph has %d disconnected fragments", len(cc))})
		}
	}
	return ret
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
