/*
 * elements.go, part of chemreason.
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

package chem

import (
	"fmt"
	"sort"
	"strings"
)

// Category is the chemical family of an element.
type Category int

const (
	Unknown Category = iota
	AlkaliMetal
	AlkalineEarthMetal
	TransitionMetal
	PostTransitionMetal
	Metalloid
	Nonmetal
	Halogen
	NobleGas
	Lanthanide
	Actinide
)

var categoryNames = [...]string{
	Unknown:             "unknown",
	AlkaliMetal:         "alkali-metal",
	AlkalineEarthMetal:  "alkaline-earth-metal",
	TransitionMetal:     "transition-metal",
	PostTransitionMetal: "post-transition-metal",
	Metalloid:           "metalloid",
	Nonmetal:            "nonmetal",
	Halogen:             "halogen",
	NobleGas:            "noble-gas",
	Lanthanide:          "lanthanide",
	Actinide:            "actinide",
}

func (C Category) String() string {
	if C < 0 || int(C) >= len(categoryNames) {
		return categoryNames[Unknown]
	}
	return categoryNames[C]
}

// ParseCategory returns the Category named s. Names not in the
// enumeration give Unknown.
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, v := range categoryNames {
		if v == s {
			return Category(i)
		}
	}
	return Unknown
}

// IsMetal returns true for the categories that form metallic bonds
// among themselves.
func (C Category) IsMetal() bool {
	switch C {
	case AlkaliMetal, AlkalineEarthMetal, TransitionMetal, PostTransitionMetal, Lanthanide, Actinide:
		return true
	case Metalloid, Nonmetal, Halogen, NobleGas, Unknown:
		return false
	}
	return false
}

func (C Category) MarshalText() ([]byte, error) {
	return []byte(C.String()), nil
}

func (C *Category) UnmarshalText(b []byte) error {
	*C = ParseCategory(string(b))
	return nil
}

// Isotope of an element. Abundance is given in percent.
type Isotope struct {
	MassNumber int     `json:"massNumber"`
	Stable     bool    `json:"stable"`
	Abundance  float64 `json:"abundance,omitempty"`
}

// Element contains the reference data for one element. Elements are
// owned by a PeriodicTable and should be treated as read-only.
type Element struct {
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	Number            int       `json:"number"`
	Category          Category  `json:"category"`
	Electronegativity *float64  `json:"electronegativity"` //Pauling scale, nil if unknown
	Mass              float64   `json:"mass"`
	OxidationStates   []int     `json:"oxidationStates"` //most common first
	Isotopes          []Isotope `json:"isotopes,omitempty"`
}

// EN returns the electronegativity of the element and whether it is known.
func (E *Element) EN() (float64, bool) {
	if E == nil || E.Electronegativity == nil {
		return 0, false
	}
	return *E.Electronegativity, true
}

func (E *Element) String() string {
	if E == nil {
		return "<nil element>"
	}
	return E.Symbol
}

// PeriodicTable is an immutable index of elements by symbol.
type PeriodicTable struct {
	bySymbol map[string]*Element
	symbols  []string //sorted by atomic number
}

// NewPeriodicTable builds a table from the given elements. The elements are
// copied. It returns an error if a symbol is empty or repeated.
func NewPeriodicTable(elems []Element) (*PeriodicTable, error) {
	T := &PeriodicTable{bySymbol: make(map[string]*Element, len(elems))}
	for i, v := range elems {
		if v.Symbol == "" {
			return nil, KindError(ErrNoSymbol, fmt.Sprintf("element number %d (position %d)", v.Number, i), "NewPeriodicTable")
		}
		if _, ok := T.bySymbol[v.Symbol]; ok {
			return nil, KindError(ErrDuplicateSymbol, v.Symbol, "NewPeriodicTable")
		}
		e := v
		e.OxidationStates = append([]int(nil), v.OxidationStates...)
		e.Isotopes = append([]Isotope(nil), v.Isotopes...)
		if v.Electronegativity != nil {
			en := *v.Electronegativity
			e.Electronegativity = &en
		}
		T.bySymbol[e.Symbol] = &e
		T.symbols = append(T.symbols, e.Symbol)
	}
	sort.SliceStable(T.symbols, func(i, j int) bool {
		return T.bySymbol[T.symbols[i]].Number < T.bySymbol[T.symbols[j]].Number
	})
	return T, nil
}

// Element returns the element with symbol sym. The lookup is case-sensitive,
// as element symbols are.
func (T *PeriodicTable) Element(sym string) (*Element, bool) {
	if T == nil {
		return nil, false
	}
	e, ok := T.bySymbol[sym]
	return e, ok
}

// Len returns the number of elements in the table.
func (T *PeriodicTable) Len() int {
	if T == nil {
		return 0
	}
	return len(T.symbols)
}

// Symbols returns the symbols in the table in atomic number order.
func (T *PeriodicTable) Symbols() []string {
	if T == nil {
		return nil
	}
	return append([]string(nil), T.symbols...)
}

// Elements returns copies of all the elements in the table, in atomic number order.
func (T *PeriodicTable) Elements() []Element {
	ret := make([]Element, 0, T.Len())
	for _, s := range T.Symbols() {
		ret = append(ret, *T.bySymbol[s])
	}
	return ret
}

// MaxOxidation returns the largest magnitude among the known oxidation states
// of e, or 0 if there are none.
func MaxOxidation(e *Element) int {
	if e == nil {
		return 0
	}
	max := 0
	for _, v := range e.OxidationStates {
		if abs(v) > max {
			max = abs(v)
		}
	}
	return max
}

// ValenceCapacity returns the number of bonding slots of an element: a fixed
// value for the elements usually found in organic structures, the magnitude of
// the most common oxidation state for the rest, and 0 without data.
func ValenceCapacity(e *Element) int {
	if e == nil {
		return 0
	}
	if c, ok := symbolValence[e.Symbol]; ok {
		return c
	}
	if e.Category == NobleGas {
		return 0
	}
	if len(e.OxidationStates) == 0 {
		return 0
	}
	return abs(e.OxidationStates[0])
}

// ValenceElectrons returns the number of valence electrons of a main-group
// element, derived from its atomic number. It returns 0 for d- and f-block
// elements, and for elements without a number.
func ValenceElectrons(e *Element) int {
	if e == nil || e.Number <= 0 {
		return 0
	}
	z := e.Number
	switch {
	case z <= 2:
		return z
	case z <= 10:
		return z - 2
	case z <= 18:
		return z - 10
	case z <= 20:
		return z - 18
	case z <= 30:
		return 0
	case z <= 36:
		return z - 28
	case z <= 38:
		return z - 36
	case z <= 48:
		return 0
	case z <= 54:
		return z - 46
	case z <= 56:
		return z - 54
	case z <= 80:
		return 0
	case z <= 86:
		return z - 78
	case z <= 88:
		return z - 86
	}
	return 0
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
