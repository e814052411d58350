/*
 * edits.go, part of chemreason.
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

// Edit is one operation of a change log. The implementations are AddAtom,
// RemoveAtom, AddBond, RemoveBond, SetBondOrder and SetCharge.
type Edit interface {
	//apply checks the edit against G and, if it is valid, performs it on G.
	//G is always a private copy.
	apply(G *Graph) error
	//Op returns the name of the operation.
	Op() string
}

// AddAtom adds an atom. The new atom gets the NextAtomID of the graph the edit
// is applied to. If BondTo is not 0, the new atom is bonded to that atom with
// the given Order (0 means 1).
type AddAtom struct {
	Symbol  string
	Charge  int
	Radical bool
	Pos     chem.Point
	BondTo  AtomID
	Order   int
}

func (E AddAtom) Op() string { return "add-atom" }

func (E AddAtom) apply(G *Graph) error {
	if E.Symbol == "" {
		return chem.KindError(chem.ErrNoSymbol, "", "AddAtom")
	}
	order := E.Order
	if E.BondTo != 0 {
		if _, ok := G.atoms[E.BondTo]; !ok {
			return newError(ErrNoAtom, "AddAtom", "%d", E.BondTo)
		}
		if order == 0 {
			order = 1
		}
		if order < 1 || order > 3 {
			return newError(ErrBondOrder, "AddAtom", "got %d", order)
		}
	}
	id := G.addAtom(Atom{Symbol: E.Symbol, Charge: E.Charge, Radical: E.Radical, Pos: E.Pos})
	if E.BondTo != 0 {
		G.addBond(Bond{A1: E.BondTo, A2: id, Order: order, Class: classFor(order, Sigma)})
	}
	return nil
}

// RemoveAtom deletes an atom and all its bonds.
type RemoveAtom struct {
	ID AtomID
}

func (E RemoveAtom) Op() string { return "remove-atom" }

func (E RemoveAtom) apply(G *Graph) error {
	if _, ok := G.atoms[E.ID]; !ok {
		return newError(ErrNoAtom, "RemoveAtom", "%d", E.ID)
	}
	G.removeAtom(E.ID)
	return nil
}

// AddBond bonds two existing atoms. An Order of 0 means 1.
type AddBond struct {
	A1, A2 AtomID
	Order  int
	Class  BondClass
	Stereo Stereo
}

func (E AddBond) Op() string { return "add-bond" }

func (E AddBond) apply(G *Graph) error {
	if E.A1 == E.A2 {
		return newError(ErrSelfBond, "AddBond", "%d", E.A1)
	}
	for _, v := range []AtomID{E.A1, E.A2} {
		if _, ok := G.atoms[v]; !ok {
			return newError(ErrNoAtom, "AddBond", "%d", v)
		}
	}
	order := E.Order
	if order == 0 {
		order = 1
	}
	if order < 1 || order > 3 {
		return newError(ErrBondOrder, "AddBond", "got %d", order)
	}
	if E.Class == Aromatic && order != 1 {
		return newError(ErrAromaticBond, "AddBond", "got order %d", order)
	}
	if G.bondBetween(E.A1, E.A2) != nil {
		return newError(ErrDuplicateBond, "AddBond", "%d-%d", E.A1, E.A2)
	}
	G.addBond(Bond{A1: E.A1, A2: E.A2, Order: order, Class: classFor(order, E.Class), Stereo: E.Stereo})
	return nil
}

// RemoveBond deletes a bond. The atoms are kept.
type RemoveBond struct {
	ID BondID
}

func (E RemoveBond) Op() string { return "remove-bond" }

func (E RemoveBond) apply(G *Graph) error {
	if _, ok := G.bonds[E.ID]; !ok {
		return newError(ErrNoBond, "RemoveBond", "%d", E.ID)
	}
	G.removeBond(E.ID)
	return nil
}

// SetBondOrder changes the order of a bond. The order of aromatic bonds can't
// be changed.
type SetBondOrder struct {
	ID    BondID
	Order int
}

func (E SetBondOrder) Op() string { return "set-bond-order" }

func (E SetBondOrder) apply(G *Graph) error {
	b, ok := G.bonds[E.ID]
	if !ok {
		return newError(ErrNoBond, "SetBondOrder", "%d", E.ID)
	}
	if E.Order < 1 || E.Order > 3 {
		return newError(ErrBondOrder, "SetBondOrder", "got %d", E.Order)
	}
	if b.Class == Aromatic && E.Order != b.Order {
		return newError(ErrAromaticBond, "SetBondOrder", "bond %d", E.ID)
	}
	b.Order = E.Order
	b.Class = classFor(E.Order, b.Class)
	return nil
}

// SetCharge changes the formal charge of an atom.
type SetCharge struct {
	ID     AtomID
	Charge int
}

func (E SetCharge) Op() string { return "set-charge" }

func (E SetCharge) apply(G *Graph) error {
	a, ok := G.atoms[E.ID]
	if !ok {
		return newError(ErrNoAtom, "SetCharge", "%d", E.ID)
	}
	a.Charge = E.Charge
	return nil
}

// classFor keeps plain bonds' classes in line with their order: sigma for
// single bonds and pi-system for multiple ones. Aromatic and dative
// bonds keep their class.
func classFor(order int, class BondClass) BondClass {
	switch {
	case class == Sigma && order > 1:
		return PiSystem
	case class == PiSystem && order == 1:
		return Sigma
	}
	return class
}

// Apply returns a new graph with the edits applied in order, and recomputed.
// G is not modified. If any edit is malformed, no edit is applied and the
// error of the first bad one is returned.
func Apply(G *Graph, edits ...Edit) (*Graph, error) {
	ret := G.Copy()
	for _, e := range edits {
		if e == nil {
			continue
		}
		if err := e.apply(ret); err != nil {
			return nil, errDecorate(err, "Apply")
		}
	}
	return Recompute(ret), nil
}
