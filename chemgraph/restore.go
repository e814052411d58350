/*
 * restore.go, part of chemreason.
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
	chem "github.com/rmera/chemreason"
)

// ErrBadID is returned by Restore for ids that are not positive or are repeated.
var ErrBadID = chem.Sentinel("ids must be positive and unique")

// Restore builds a graph from atoms and bonds that keep their ids, as when a
// graph is read back after being serialized. Bonds are checked as AddBond
// checks them. Derived fields in the atoms are ignored and recomputed, and
// new atoms and bonds get ids above the largest restored ones.
func Restore(table chem.Elementer, atoms []Atom, bonds []Bond) (*Graph, error) {
	G := NewGraph(table)
	var lastAtom AtomID
	for _, a := range atoms {
		if a.ID < 1 {
			return nil, newError(ErrBadID, "Restore", "atom %d", a.ID)
		}
		if _, ok := G.atoms[a.ID]; ok {
			return nil, newError(ErrBadID, "Restore", "atom %d", a.ID)
		}
		if a.Symbol == "" {
			return nil, chem.KindError(chem.ErrNoSymbol, "", "Restore")
		}
		G.nextAtom = a.ID
		G.addAtom(Atom{Symbol: a.Symbol, Charge: a.Charge, Radical: a.Radical, Pos: a.Pos})
		if a.ID > lastAtom {
			lastAtom = a.ID
		}
	}
	G.nextAtom = lastAtom + 1
	var lastBond BondID
	for _, b := range bonds {
		if _, ok := G.bonds[b.ID]; ok || b.ID < 1 {
			return nil, newError(ErrBadID, "Restore", "bond %d", b.ID)
		}
		G.nextBond = b.ID
		add := AddBond{A1: b.A1, A2: b.A2, Order: b.Order, Class: b.Class, Stereo: b.Stereo}
		if err := add.apply(G); err != nil {
			return nil, errDecorate(err, "Restore")
		}
		if b.ID > lastBond {
			lastBond = b.ID
		}
	}
	G.nextBond = lastBond + 1
	return Recompute(G), nil
}
