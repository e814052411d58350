/*
 * bonds.go, part of chemreason.
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
	"math"
	"strings"
)

// IonicThreshold is the electronegativity difference above which (strictly)
// a bond between two elements is considered ionic. Differences are rounded
// to ENDecimals decimals before the comparison.
const IonicThreshold = 1.7

// ENDecimals is the precision electronegativity differences are compared
// with. Digits past it are taken as floating point noise.
const ENDecimals = 6

// deltaEN returns |a-b| rounded to ENDecimals decimals.
func deltaEN(a, b float64) float64 {
	p := math.Pow10(ENDecimals)
	return math.Round(math.Abs(a-b)*p) / p
}

// BondType is the bond tag used at the boundary of the library.
// Single and Covalent describe the same chemistry (one shared pair) but are
// kept apart so that external data round-trips unchanged. Use Kind to get
// the normalized form.
type BondType int

const (
	BondUnset BondType = iota
	Single
	Double
	Triple
	Ionic
	Covalent
	Metallic
)

var bondTypeNames = [...]string{
	BondUnset: "",
	Single:    "single",
	Double:    "double",
	Triple:    "triple",
	Ionic:     "ionic",
	Covalent:  "covalent",
	Metallic:  "metallic",
}

func (B BondType) String() string {
	if B < 0 || int(B) >= len(bondTypeNames) {
		return ""
	}
	return bondTypeNames[B]
}

// ParseBondType returns the BondType named s (case insensitive). The empty
// string gives BondUnset; anything else unknown is an error.
func ParseBondType(s string) (BondType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, v := range bondTypeNames {
		if v == s {
			return BondType(i), nil
		}
	}
	return BondUnset, NewError(fmt.Sprintf("unknown bond type %q", s), "ParseBondType", true)
}

func (B BondType) MarshalText() ([]byte, error) {
	return []byte(B.String()), nil
}

func (B *BondType) UnmarshalText(b []byte) error {
	t, err := ParseBondType(string(b))
	if err != nil {
		return errDecorate(err, "BondType.UnmarshalText")
	}
	*B = t
	return nil
}

// Polarity is the electronic class of a bond.
type Polarity int

const (
	PolarityCovalent Polarity = iota
	PolarityIonic
	PolarityMetallic
)

func (P Polarity) String() string {
	switch P {
	case PolarityIonic:
		return "ionic"
	case PolarityMetallic:
		return "metallic"
	}
	return "covalent"
}

// BondKind is the normalized form of a BondType.
type BondKind struct {
	Order    int //0 means the type carries no order
	Polarity Polarity
}

// Kind returns the normalized form of B. Single and Covalent both
// give an order 1 covalent bond. Ionic and metallic types, and BondUnset,
// carry no order.
func (B BondType) Kind() BondKind {
	switch B {
	case Single, Covalent:
		return BondKind{1, PolarityCovalent}
	case Double:
		return BondKind{2, PolarityCovalent}
	case Triple:
		return BondKind{3, PolarityCovalent}
	case Ionic:
		return BondKind{0, PolarityIonic}
	case Metallic:
		return BondKind{0, PolarityMetallic}
	}
	return BondKind{0, PolarityCovalent}
}

// covalentType returns the BondType for a covalent bond of the given order.
func covalentType(order int) BondType {
	switch order {
	case 2:
		return Double
	case 3:
		return Triple
	}
	return Single
}

type pairOrder struct {
	def int
	max int
}

//Element pairs with known multiple-bond behaviour. The key is the two
//symbols in lexical order, joined by a dash.
var multipleBonds = map[string]pairOrder{
	"O-O": {2, 2},
	"C-O": {2, 3},
	"C-C": {2, 3},
	"N-N": {1, 3},
	"C-N": {1, 3},
	"O-S": {2, 2},
	"C-S": {2, 2},
	"N-O": {2, 2},
	"O-P": {2, 2},
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "-" + b
}

// Classification is the result of classifying the bond between two elements.
type Classification struct {
	Type          BondType
	Order         int     //1 for ionic, metallic and single bonds
	DeltaEN       float64 //absolute electronegativity difference, 0 if unknown
	LowConfidence bool    //true if data was missing and the classification is a default
	Caveat        string
}

// Polarity returns the electronic class of the classified bond.
func (C Classification) Polarity() Polarity {
	return C.Type.Kind().Polarity
}

// ClassifyBond decides the type of the bond between a and b, with no order hint.
func ClassifyBond(a, b *Element) Classification {
	return ClassifyBondOrder(a, b, 0)
}

// ClassifyBondOrder decides the type of the bond between a and b. hint, if larger
// than zero, requests a bond order, which is honored up to the maximum order
// known for the pair. It never fails: missing data gives a single covalent bond
// marked as low confidence. ClassifyBondOrder(a,b,h)==ClassifyBondOrder(b,a,h).
func ClassifyBondOrder(a, b *Element, hint int) Classification {
	if a == nil || b == nil {
		return Classification{Type: Single, Order: 1, LowConfidence: true, Caveat: "unknown element, assumed single covalent bond"}
	}
	//metallic bonding depends only on the categories.
	if a.Category.IsMetal() && b.Category.IsMetal() {
		c := Classification{Type: Metallic, Order: 1}
		if ena, ok := a.EN(); ok {
			if enb, ok := b.EN(); ok {
				c.DeltaEN = deltaEN(ena, enb)
			}
		}
		return c
	}
	ena, oka := a.EN()
	enb, okb := b.EN()
	if !oka || !okb {
		return Classification{Type: Single, Order: 1, LowConfidence: true,
			Caveat: fmt.Sprintf("unknown electronegativity for %s-%s, assumed single covalent bond", a.Symbol, b.Symbol)}
	}
	delta := deltaEN(ena, enb)
	if delta > IonicThreshold {
		return Classification{Type: Ionic, Order: 1, DeltaEN: delta}
	}
	c := Classification{Order: 1, DeltaEN: delta}
	p, ok := multipleBonds[pairKey(a.Symbol, b.Symbol)]
	switch {
	case ok && hint > 0:
		c.Order = hint
		if hint > p.max {
			c.Order = p.max
			c.Caveat = fmt.Sprintf("%s-%s bonds are at most of order %d", a.Symbol, b.Symbol, p.max)
		}
	case ok:
		c.Order = p.def
	case hint > 1:
		c.Caveat = fmt.Sprintf("no known multiple bonds for %s-%s, order %d ignored", a.Symbol, b.Symbol, hint)
	}
	c.Type = covalentType(c.Order)
	return c
}
