/*
 * clash.go, part of chemreason.
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
	"github.com/rmera/chemreason/chemgraph"
	"github.com/rmera/chemreason/v3"
)

// ClashFraction is the fraction of the bond length under which two atoms that
// are not bonded to each other clash.
const ClashFraction = 0.5

// Clash is a pair of atoms, not bonded to each other, that were placed too close.
type Clash struct {
	A1, A2   chemgraph.AtomID
	Distance float64
}

// Clashes returns the pairs of atoms of res that are not bonded to each other
// and are closer than mindist, in the order of res.Order.
func Clashes(res *Result, mindist float64) []Clash {
	if res.Coords == nil {
		return nil
	}
	var ret []Clash
	dvec := v3.Zeros(1)
	n := res.Coords.NVecs()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dvec.SubVec(res.Coords.VecView(i), res.Coords.VecView(j))
			d := dvec.Norm()
			if d >= mindist {
				continue
			}
			a1, a2 := res.Order[i], res.Order[j]
			if _, bonded := res.Graph.BondBetween(a1, a2); bonded {
				continue
			}
			ret = append(ret, Clash{A1: a1, A2: a2, Distance: d})
		}
	}
	return ret
}
