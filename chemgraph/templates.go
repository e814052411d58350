/*
 * templates.go, part of chemreason.
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
	"math"
	"strings"

	chem "github.com/rmera/chemreason"
)

// TemplateBondLength is the distance between bonded atoms in template layouts.
const TemplateBondLength = 1.5

// TemplateType names a molecule template.
type TemplateType string

const (
	TemplateBlank       TemplateType = "blank"
	TemplateAlkane      TemplateType = "alkane"
	TemplateAlkene      TemplateType = "alkene"
	TemplateAlkyne      TemplateType = "alkyne"
	TemplateFattyAcid   TemplateType = "fatty-acid"
	TemplateAlcohol     TemplateType = "alcohol"
	TemplateAromatic    TemplateType = "aromatic-ring"
	TemplateCycloalkane TemplateType = "cycloalkane"
	TemplateCarbonyl    TemplateType = "carbonyl"
)

// Templates returns all the template types.
func Templates() []TemplateType {
	return []TemplateType{TemplateBlank, TemplateAlkane, TemplateAlkene, TemplateAlkyne, TemplateFattyAcid,
		TemplateAlcohol, TemplateAromatic, TemplateCycloalkane, TemplateCarbonyl}
}

// ParseTemplateType returns the template named s (case insensitive).
func ParseTemplateType(s string) (TemplateType, error) {
	t := TemplateType(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Templates() {
		if v == t {
			return t, nil
		}
	}
	return "", newError(ErrTemplate, "ParseTemplateType", "%q", s)
}

// TemplateParams are the parameters of a template. Zero values select the
// defaults, and values out of range are clamped, never rejected.
type TemplateParams struct {
	Length   int //chain length: 1-20, 2-20 for alkenes, alkynes and fatty acids. Default 4, 8 for fatty acids
	RingSize int //3-8, default 6. Aromatic rings always have 6 atoms
	Position int //1-based position of the double/triple bond, or of the OH group in alcohols. Default 1
}

func clamp(v, low, high, def int) int {
	if v == 0 {
		v = def
	}
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// ApplyTemplate builds a new, recomputed graph from a template, using the
// built-in element table.
func ApplyTemplate(t TemplateType, p TemplateParams) (*Graph, error) {
	return ApplyTemplateTable(nil, t, p)
}

// ApplyTemplateTable builds a new, recomputed graph from a template, using
// table for element data (nil means the built-in table).
func ApplyTemplateTable(table chem.Elementer, t TemplateType, p TemplateParams) (*Graph, error) {
	G := NewGraph(table)
	const L = TemplateBondLength
	switch t {
	case TemplateBlank:
		G.addAtom(Atom{Symbol: "C"})
	case TemplateAlkane:
		chain(G, clamp(p.Length, 1, 20, 4))
	case TemplateAlkene, TemplateAlkyne:
		n := clamp(p.Length, 2, 20, 4)
		ids := chain(G, n)
		pos := clamp(p.Position, 1, n-1, 1)
		order := 2
		if t == TemplateAlkyne {
			order = 3
		}
		b := G.bondBetween(ids[pos-1], ids[pos])
		b.Order = order
		b.Class = PiSystem
	case TemplateFattyAcid:
		n := clamp(p.Length, 2, 20, 8)
		ids := chain(G, n)
		last := G.atoms[ids[n-1]].Pos
		dx, dy := L*math.Cos(math.Pi/3), L*math.Sin(math.Pi/3)
		o1 := G.addAtom(Atom{Symbol: "O", Pos: chem.Point{X: last.X + dx, Y: dy}})
		o2 := G.addAtom(Atom{Symbol: "O", Pos: chem.Point{X: last.X + dx, Y: -dy}})
		G.addBond(Bond{A1: ids[n-1], A2: o1, Order: 2, Class: PiSystem})
		G.addBond(Bond{A1: ids[n-1], A2: o2, Order: 1})
	case TemplateAlcohol:
		n := clamp(p.Length, 1, 20, 4)
		ids := chain(G, n)
		pos := clamp(p.Position, 1, n, 1)
		c := G.atoms[ids[pos-1]].Pos
		o := G.addAtom(Atom{Symbol: "O", Pos: chem.Point{X: c.X, Y: L}})
		G.addBond(Bond{A1: ids[pos-1], A2: o, Order: 1})
	case TemplateAromatic:
		ring(G, 6, Aromatic)
	case TemplateCycloalkane:
		ring(G, clamp(p.RingSize, 3, 8, 6), Sigma)
	case TemplateCarbonyl:
		c := G.addAtom(Atom{Symbol: "C"})
		o := G.addAtom(Atom{Symbol: "O", Pos: chem.Point{X: L}})
		G.addBond(Bond{A1: c, A2: o, Order: 2, Class: PiSystem})
	default:
		return nil, newError(ErrTemplate, "ApplyTemplate", "%q", string(t))
	}
	return Recompute(G), nil
}

// chain adds n carbons on the x axis, joined by single bonds, and returns their ids.
func chain(G *Graph, n int) []AtomID {
	ids := make([]AtomID, 0, n)
	for i := 0; i < n; i++ {
		id := G.addAtom(Atom{Symbol: "C", Pos: chem.Point{X: float64(i) * TemplateBondLength}})
		if i > 0 {
			G.addBond(Bond{A1: ids[i-1], A2: id, Order: 1})
		}
		ids = append(ids, id)
	}
	return ids
}

// ring adds n carbons on a circle centered at the origin, with a radius such
// that neighbors are TemplateBondLength apart, joined by order 1 bonds of the
// given class.
func ring(G *Graph, n int, class BondClass) []AtomID {
	r := TemplateBondLength / (2 * math.Sin(math.Pi/float64(n)))
	ids := make([]AtomID, 0, n)
	for i := 0; i < n; i++ {
		theta := math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		id := G.addAtom(Atom{Symbol: "C", Pos: chem.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}})
		if i > 0 {
			G.addBond(Bond{A1: ids[i-1], A2: id, Order: 1, Class: class})
		}
		ids = append(ids, id)
	}
	G.addBond(Bond{A1: ids[n-1], A2: ids[0], Order: 1, Class: class})
	return ids
}
