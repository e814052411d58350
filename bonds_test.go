/*
 * bonds_test.go, part of chemreason.
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
	"errors"
	"testing"
)

func mustElement(Te *testing.T, T *PeriodicTable, sym string) *Element {
	Te.Helper()
	e, ok := T.Element(sym)
	if !ok {
		Te.Fatalf("element %s not in the table", sym)
	}
	return e
}

func TestMetallicRegardlessOfEN(Te *testing.T) {
	T := DefaultTable()
	metals := []string{}
	for _, s := range T.Symbols() {
		e, _ := T.Element(s)
		if e.Category.IsMetal() {
			metals = append(metals, s)
		}
	}
	if len(metals) < 10 {
		Te.Fatalf("too few metals in the built-in table: %v", metals)
	}
	for _, a := range metals {
		for _, b := range metals {
			c := ClassifyBond(mustElement(Te, T, a), mustElement(Te, T, b))
			if c.Type != Metallic {
				Te.Errorf("%s-%s classified as %s, expected metallic", a, b, c.Type)
			}
		}
	}
	//Also without electronegativities.
	x := &Element{Symbol: "Xa", Category: TransitionMetal}
	y := &Element{Symbol: "Ya", Category: Actinide}
	if c := ClassifyBond(x, y); c.Type != Metallic {
		Te.Errorf("metals without electronegativity classified as %s", c.Type)
	}
}

func TestIonicThreshold(Te *testing.T) {
	a := &Element{Symbol: "Aa", Category: Nonmetal, Electronegativity: en(1.0)}
	tie := &Element{Symbol: "Bb", Category: Nonmetal, Electronegativity: en(2.7)}
	over := &Element{Symbol: "Cc", Category: Halogen, Electronegativity: en(2.71)}
	if c := ClassifyBond(a, tie); c.Type == Ionic {
		Te.Errorf("delta EN of exactly %.2f classified as ionic", c.DeltaEN)
	}
	if c := ClassifyBond(a, over); c.Type != Ionic {
		Te.Errorf("delta EN %.2f classified as %s, expected ionic", c.DeltaEN, c.Type)
	}
	fine := &Element{Symbol: "Dd", Category: Halogen, Electronegativity: en(2.700001)}
	if c := ClassifyBond(a, fine); c.Type != Ionic || c.DeltaEN != 1.700001 {
		Te.Errorf("delta EN %.6f classified as %s, expected ionic", c.DeltaEN, c.Type)
	}
	if c := ClassifyBond(tie, a); c.DeltaEN != IonicThreshold {
		Te.Errorf("delta EN of 2.7-1.0 not rounded: %v", c.DeltaEN)
	}
	T := DefaultTable()
	na := mustElement(Te, T, "Na")
	cl := mustElement(Te, T, "Cl")
	if c := ClassifyBond(na, cl); c.Type != Ionic || c.Order != 1 {
		Te.Errorf("NaCl classified as %s order %d", c.Type, c.Order)
	}
}

func TestClassifySymmetry(Te *testing.T) {
	T := DefaultTable()
	syms := T.Symbols()
	for _, a := range syms {
		for _, b := range syms {
			ea := mustElement(Te, T, a)
			eb := mustElement(Te, T, b)
			for hint := 0; hint <= 3; hint++ {
				c1 := ClassifyBondOrder(ea, eb, hint)
				c2 := ClassifyBondOrder(eb, ea, hint)
				if c1.Type != c2.Type || c1.Order != c2.Order || c1.DeltaEN != c2.DeltaEN || c1.LowConfidence != c2.LowConfidence {
					Te.Errorf("asymmetric classification %s-%s (hint %d): %v vs %v", a, b, hint, c1, c2)
				}
			}
		}
	}
}

func TestCovalentOrders(Te *testing.T) {
	T := DefaultTable()
	C := mustElement(Te, T, "C")
	O := mustElement(Te, T, "O")
	N := mustElement(Te, T, "N")
	H := mustElement(Te, T, "H")
	cases := []struct {
		a, b  *Element
		hint  int
		want  BondType
		order int
	}{
		{C, O, 0, Double, 2},
		{O, O, 0, Double, 2},
		{C, C, 0, Double, 2},
		{N, N, 0, Single, 1},
		{N, N, 3, Triple, 3},
		{C, N, 3, Triple, 3},
		{C, C, 3, Triple, 3},
		{O, O, 3, Double, 2}, //clamped
		{C, H, 0, Single, 1},
		{C, H, 2, Single, 1}, //no multiple bonds known
		{O, H, 0, Single, 1},
	}
	for _, v := range cases {
		c := ClassifyBondOrder(v.a, v.b, v.hint)
		if c.Type != v.want || c.Order != v.order {
			Te.Errorf("%s-%s hint %d: got %s/%d, want %s/%d", v.a, v.b, v.hint, c.Type, c.Order, v.want, v.order)
		}
	}
}

func TestUnknownDataDefaults(Te *testing.T) {
	T := DefaultTable()
	he := mustElement(Te, T, "He")
	H := mustElement(Te, T, "H")
	c := ClassifyBond(he, H)
	if c.Type != Single || !c.LowConfidence || c.Caveat == "" {
		Te.Errorf("missing electronegativity gave %+v", c)
	}
	c = ClassifyBond(nil, H)
	if c.Type != Single || !c.LowConfidence {
		Te.Errorf("nil element gave %+v", c)
	}
}

func TestBondTypeBoundary(Te *testing.T) {
	for _, s := range []string{"single", "double", "triple", "ionic", "covalent", "metallic"} {
		t, err := ParseBondType(s)
		if err != nil {
			Te.Fatal(err)
		}
		if t.String() != s {
			Te.Errorf("%s round-tripped as %s", s, t)
		}
	}
	if Single.Kind() != Covalent.Kind() {
		Te.Errorf("single and covalent normalize differently: %v %v", Single.Kind(), Covalent.Kind())
	}
	if _, err := ParseBondType("quadruple"); err == nil {
		Te.Error("unknown bond type parsed without error")
	}
}

func TestTable(Te *testing.T) {
	T := DefaultTable()
	if T.Len() == 0 {
		Te.Fatal("empty default table")
	}
	C := mustElement(Te, T, "C")
	if ValenceCapacity(C) != 4 || ValenceElectrons(C) != 4 || MaxOxidation(C) != 4 {
		Te.Errorf("wrong carbon data: capacity %d electrons %d max ox %d", ValenceCapacity(C), ValenceElectrons(C), MaxOxidation(C))
	}
	fe := mustElement(Te, T, "Fe")
	if ValenceCapacity(fe) != 3 || ValenceElectrons(fe) != 0 {
		Te.Errorf("wrong iron data: capacity %d electrons %d", ValenceCapacity(fe), ValenceElectrons(fe))
	}
	if ValenceElectrons(mustElement(Te, T, "Cl")) != 7 || ValenceElectrons(mustElement(Te, T, "I")) != 7 {
		Te.Error("halogens should have 7 valence electrons")
	}
	_, err := NewPeriodicTable([]Element{{Symbol: "H"}, {Symbol: "H"}})
	if !errors.Is(err, ErrDuplicateSymbol) {
		Te.Errorf("expected duplicate symbol error, got %v", err)
	}
	if ParseCategory("Noble-Gas") != NobleGas || ParseCategory("bogus") != Unknown {
		Te.Error("category parsing failed")
	}
}
