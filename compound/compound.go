/*
 * compound.go, part of chemreason.
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

// Package compound validates simple compounds given as element counts plus a
// list of bonds between individual atoms: stoichiometry, charge balance and
// valence saturation, and gives them a Hill formula and, if known, a name.
package compound

import (
	"fmt"

	chem "github.com/rmera/chemreason"
)

// Entry is one element of a compound, with the number of atoms of that element.
type Entry struct {
	Symbol   string
	Count    int
	Position *chem.Point
}

// Bond joins two atom instances of a compound, identified by their instance ids
// (see Expand).
type Bond struct {
	From     string
	To       string
	Type     chem.BondType
	Strength *float64
}

// Instance is one atom of a compound.
type Instance struct {
	ID     string
	Symbol string
}

// InstanceID returns the id of the kth (zero-based) atom of the element sym.
func InstanceID(sym string, k int) string {
	return fmt.Sprintf("%s-%d", sym, k)
}

// MergeEntries returns a new slice where entries with the same symbol are merged
// into one, with the sum of their counts. The order of first appearance is kept.
func MergeEntries(entries []Entry) []Entry {
	ret := make([]Entry, 0, len(entries))
	pos := make(map[string]int, len(entries))
	for _, v := range entries {
		if i, ok := pos[v.Symbol]; ok {
			ret[i].Count += v.Count
			if ret[i].Position == nil {
				ret[i].Position = v.Position
			}
			continue
		}
		pos[v.Symbol] = len(ret)
		ret = append(ret, v)
	}
	return ret
}

// Expand returns one Instance per atom in entries, after merging them.
// Entry "H" with count 2 gives H-0 and H-1. Entries with counts lower than 1
// give no instances.
func Expand(entries []Entry) []Instance {
	merged := MergeEntries(entries)
	ret := make([]Instance, 0, len(merged))
	for _, v := range merged {
		for k := 0; k < v.Count; k++ {
			ret = append(ret, Instance{ID: InstanceID(v.Symbol, k), Symbol: v.Symbol})
		}
	}
	return ret
}

// Status of a validated compound.
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

func (S Status) MarshalText() ([]byte, error) {
	return []byte(S.String()), nil
}

// Pattern is the dominant bonding pattern of a compound.
type Pattern int

const (
	NoBonds Pattern = iota
	IonicPattern
	CovalentPattern
	MetallicPattern
	MixedPattern
)

func (P Pattern) String() string {
	switch P {
	case IonicPattern:
		return "ionic"
	case CovalentPattern:
		return "covalent"
	case MetallicPattern:
		return "metallic"
	case MixedPattern:
		return "mixed"
	}
	return "none"
}

func (P Pattern) MarshalText() ([]byte, error) {
	return []byte(P.String()), nil
}

// Details are the structured findings of a validation.
type Details struct {
	Oxidation   map[string]int //instance id to inferred oxidation state, bonded atoms only
	NetCharge   int
	ChargeNote  string
	PatternNote string
	Caveats     []string //defaults taken because of missing data
	Unbonded    []string //ids of the atoms excluded from the formula
}

// Result of validating a compound.
type Result struct {
	Status      Status
	Pattern     Pattern
	Formula     string
	Name        string //empty if the formula is not a known compound
	MolarMass   float64
	Explanation string
	Errors      []string //the reasons for an Invalid status
	Warnings    []string
	Suggestions []string
	Details     *Details
}
