/*
 * graph.go, part of chemreason.
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

// Package chemgraph is an editable molecule graph: atoms and bonds kept in an
// arena of stable ids, with derived per-atom fields (implicit hydrogens and
// hybridization) recomputed from scratch after every edit. Graphs are never
// modified in place; Apply returns a new graph.
//
// A Graph also implements the gonum graph.Undirected and graph.Weighted
// interfaces, so the gonum algorithms can be used on it directly.
package chemgraph

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	chem "github.com/rmera/chemreason"
)

// AtomID identifies an atom within a graph and all the graphs derived from it.
// Ids are never reused.
type AtomID int64

// BondID identifies a bond within a graph and all the graphs derived from it.
type BondID int64

// Hybridization of an atom.
type Hybridization int

const (
	SP3 Hybridization = iota
	SP2
	SP
)

func (H Hybridization) String() string {
	switch H {
	case SP2:
		return "sp2"
	case SP:
		return "sp"
	}
	return "sp3"
}

// ParseHybridization returns the hybridization named s. Anything unknown is sp3.
func ParseHybridization(s string) Hybridization {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sp2":
		return SP2
	case "sp":
		return SP
	}
	return SP3
}

// BondClass tells how the electrons of a bond are shared.
type BondClass int

const (
	Sigma BondClass = iota
	PiSystem
	Aromatic
	Dative
)

var bondClassNames = [...]string{Sigma: "sigma", PiSystem: "pi", Aromatic: "aromatic", Dative: "dative"}

func (B BondClass) String() string {
	if B < 0 || int(B) >= len(bondClassNames) {
		return "sigma"
	}
	return bondClassNames[B]
}

// ParseBondClass returns the class named s, and false if s is not a class name.
func ParseBondClass(s string) (BondClass, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Sigma, true
	}
	for i, v := range bondClassNames {
		if v == s {
			return BondClass(i), true
		}
	}
	return Sigma, false
}

// Stereo is the drawing hint of a bond.
type Stereo int

const (
	NoStereo Stereo = iota
	Wedge
	Dash
	Wavy
)

var stereoNames = [...]string{NoStereo: "none", Wedge: "wedge", Dash: "dash", Wavy: "wavy"}

func (S Stereo) String() string {
	if S < 0 || int(S) >= len(stereoNames) {
		return "none"
	}
	return stereoNames[S]
}

// ParseStereo returns the stereo hint named s, and false if s is not one.
func ParseStereo(s string) (Stereo, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NoStereo, true
	}
	for i, v := range stereoNames {
		if v == s {
			return Stereo(i), true
		}
	}
	return NoStereo, false
}

// Atom is a node of the graph. ImplicitH and Hybrid are derived, and
// are overwritten every time the graph is recomputed.
type Atom struct {
	ID        AtomID
	Symbol    string
	Charge    int
	Radical   bool
	Pos       chem.Point
	ImplicitH int
	Hybrid    Hybridization
}

// Bond joins the atoms A1 and A2. Aromatic bonds always have order 1.
type Bond struct {
	ID     BondID
	A1, A2 AtomID
	Order  int
	Class  BondClass
	Stereo Stereo
}

// Has returns true if id is one of the ends of the bond.
func (B *Bond) Has(id AtomID) bool {
	return B.A1 == id || B.A2 == id
}

// Other returns the end of the bond that is not id.
func (B *Bond) Other(id AtomID) AtomID {
	if B.A1 == id {
		return B.A2
	}
	return B.A1
}

// Severity of a graph issue.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityInvalid
)

func (S Severity) String() string {
	if S == SeverityInvalid {
		return "invalid"
	}
	return "warning"
}

// Issue is a problem found while recomputing a graph. Atom is 0 for issues
// that concern the whole graph (atom ids start at 1).
type Issue struct {
	Severity Severity
	Atom     AtomID
	Message  string
}

func (I Issue) String() string {
	if I.Atom == 0 {
		return fmt.Sprintf("%s: %s", I.Severity, I.Message)
	}
	return fmt.Sprintf("%s: atom %d: %s", I.Severity, I.Atom, I.Message)
}

// Status of a graph, from its issues.
type Status int

const (
	Valid Status = iota
	Warning
	Invalid
)

func (S Status) String() string {
	switch S {
	case Warning:
		return "warning"
	case Invalid:
		return "invalid"
	}
	return "valid"
}

// Graph is a molecule graph. The zero value is not usable, use NewGraph.
type Graph struct {
	Key       string //opaque identity of the editing session this graph belongs to
	table     chem.Elementer
	atoms     map[AtomID]*Atom
	bonds     map[BondID]*Bond
	atomOrder []AtomID
	bondOrder []BondID
	nextAtom  AtomID
	nextBond  BondID
	issues    []Issue
}

// NewGraph returns an empty graph using table for element data, or the
// built-in table if table is nil.
func NewGraph(table chem.Elementer) *Graph {
	if table == nil {
		table = chem.DefaultTable()
	}
	key, err := gonanoid.New()
	if err != nil {
		//only happens if the system's random source fails.
		key = ""
	}
	return &Graph{
		Key:      key,
		table:    table,
		atoms:    make(map[AtomID]*Atom),
		bonds:    make(map[BondID]*Bond),
		nextAtom: 1,
		nextBond: 1,
	}
}

// Copy returns a deep copy of G, with the same Key.
func (G *Graph) Copy() *Graph {
	ret := &Graph{
		Key:       G.Key,
		table:     G.table,
		atoms:     make(map[AtomID]*Atom, len(G.atoms)),
		bonds:     make(map[BondID]*Bond, len(G.bonds)),
		atomOrder: append([]AtomID(nil), G.atomOrder...),
		bondOrder: append([]BondID(nil), G.bondOrder...),
		nextAtom:  G.nextAtom,
		nextBond:  G.nextBond,
		issues:    append([]Issue(nil), G.issues...),
	}
	for k, v := range G.atoms {
		a := *v
		ret.atoms[k] = &a
	}
	for k, v := range G.bonds {
		b := *v
		ret.bonds[k] = &b
	}
	return ret
}

// Table returns the element data used by the graph.
func (G *Graph) Table() chem.Elementer {
	return G.table
}

// Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return len(G.atomOrder)
}

// NBonds returns the number of bonds in the graph.
func (G *Graph) NBonds() int {
	return len(G.bondOrder)
}

// Atom returns a copy of the atom with the given id, and false if there is none.
func (G *Graph) Atom(id AtomID) (Atom, bool) {
	a, ok := G.atoms[id]
	if !ok {
		return Atom{}, false
	}
	return *a, true
}

// Bond returns a copy of the bond with the given id, and false if there is none.
func (G *Graph) Bond(id BondID) (Bond, bool) {
	b, ok := G.bonds[id]
	if !ok {
		return Bond{}, false
	}
	return *b, true
}

// Atoms returns copies of all atoms, in insertion order.
func (G *Graph) Atoms() []Atom {
	ret := make([]Atom, 0, len(G.atomOrder))
	for _, id := range G.atomOrder {
		ret = append(ret, *G.atoms[id])
	}
	return ret
}

// AtomIDs returns the ids of all atoms, in insertion order.
func (G *Graph) AtomIDs() []AtomID {
	return append([]AtomID(nil), G.atomOrder...)
}

// Bonds returns copies of all bonds, in insertion order.
func (G *Graph) Bonds() []Bond {
	ret := make([]Bond, 0, len(G.bondOrder))
	for _, id := range G.bondOrder {
		ret = append(ret, *G.bonds[id])
	}
	return ret
}

// BondsOf returns copies of the bonds of the atom id, in insertion order.
func (G *Graph) BondsOf(id AtomID) []Bond {
	ret := make([]Bond, 0, 4)
	for _, bid := range G.bondOrder {
		if b := G.bonds[bid]; b.Has(id) {
			ret = append(ret, *b)
		}
	}
	return ret
}

// Neighbors returns the ids of the atoms bonded to id.
func (G *Graph) Neighbors(id AtomID) []AtomID {
	ret := make([]AtomID, 0, 4)
	for _, bid := range G.bondOrder {
		if b := G.bonds[bid]; b.Has(id) {
			ret = append(ret, b.Other(id))
		}
	}
	return ret
}

// BondBetween returns the bond joining a1 and a2, and false if they are not bonded.
func (G *Graph) BondBetween(a1, a2 AtomID) (Bond, bool) {
	if b := G.bondBetween(a1, a2); b != nil {
		return *b, true
	}
	return Bond{}, false
}

func (G *Graph) bondBetween(a1, a2 AtomID) *Bond {
	for _, bid := range G.bondOrder {
		b := G.bonds[bid]
		if (b.A1 == a1 && b.A2 == a2) || (b.A1 == a2 && b.A2 == a1) {
			return b
		}
	}
	return nil
}

// NextAtomID returns the id the next added atom will get.
func (G *Graph) NextAtomID() AtomID {
	return G.nextAtom
}

// NextBondID returns the id the next added bond will get.
func (G *Graph) NextBondID() BondID {
	return G.nextBond
}

// Issues returns the problems found the last time the graph was recomputed.
func (G *Graph) Issues() []Issue {
	return append([]Issue(nil), G.issues...)
}

// Status is Invalid if any issue is, Warning if there are other issues,
// and Valid otherwise.
func (G *Graph) Status() Status {
	ret := Valid
	for _, v := range G.issues {
		if v.Severity == SeverityInvalid {
			return Invalid
		}
		ret = Warning
	}
	return ret
}

// Counts returns the number of atoms of each element in the graph, implicit
// hydrogens included.
func (G *Graph) Counts() map[string]int {
	ret := make(map[string]int)
	for _, id := range G.atomOrder {
		a := G.atoms[id]
		ret[a.Symbol]++
		if a.ImplicitH > 0 {
			ret["H"] += a.ImplicitH
		}
	}
	return ret
}

// addAtom puts a copy of a in the graph with a new id, and returns the id.
func (G *Graph) addAtom(a Atom) AtomID {
	a.ID = G.nextAtom
	G.nextAtom++
	G.atoms[a.ID] = &a
	G.atomOrder = append(G.atomOrder, a.ID)
	return a.ID
}

// addBond puts a copy of b in the graph with a new id, and returns the id.
// It doesn't check b.
func (G *Graph) addBond(b Bond) BondID {
	b.ID = G.nextBond
	G.nextBond++
	G.bonds[b.ID] = &b
	G.bondOrder = append(G.bondOrder, b.ID)
	return b.ID
}

func (G *Graph) removeBond(id BondID) {
	delete(G.bonds, id)
	for i, v := range G.bondOrder {
		if v == id {
			G.bondOrder = append(G.bondOrder[:i], G.bondOrder[i+1:]...)
			break
		}
	}
}

// removeAtom deletes the atom and, in one pass, every bond it is part of.
func (G *Graph) removeAtom(id AtomID) {
	delete(G.atoms, id)
	for i, v := range G.atomOrder {
		if v == id {
			G.atomOrder = append(G.atomOrder[:i], G.atomOrder[i+1:]...)
			break
		}
	}
	kept := G.bondOrder[:0]
	for _, bid := range G.bondOrder {
		if G.bonds[bid].Has(id) {
			delete(G.bonds, bid)
			continue
		}
		kept = append(kept, bid)
	}
	G.bondOrder = kept
}
