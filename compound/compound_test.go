/*
 * compound_test.go, part of chemreason.
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

package compound

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/chemreason"
)

func containsSub(list []string, sub string) bool {
	for _, v := range list {
		if strings.Contains(v, sub) {
			return true
		}
	}
	return false
}

func water() ([]Entry, []Bond) {
	entries := []Entry{{Symbol: "H", Count: 2}, {Symbol: "O", Count: 1}}
	bonds := []Bond{
		{From: "H-0", To: "O-0", Type: chem.Single},
		{From: "H-1", To: "O-0", Type: chem.Single},
	}
	return entries, bonds
}

func TestExpand(Te *testing.T) {
	inst := Expand([]Entry{{Symbol: "H", Count: 1}, {Symbol: "O", Count: 1}, {Symbol: "H", Count: 1}, {Symbol: "N", Count: 0}})
	ids := make([]string, 0, len(inst))
	for _, v := range inst {
		ids = append(ids, v.ID)
	}
	assert.Equal(Te, []string{"H-0", "H-1", "O-0"}, ids)
	merged := MergeEntries([]Entry{{Symbol: "C", Count: 2}, {Symbol: "C", Count: 3}})
	require.Len(Te, merged, 1)
	assert.Equal(Te, 5, merged[0].Count)
}

func TestHillFormula(Te *testing.T) {
	cases := []struct {
		counts map[string]int
		want   string
	}{
		{map[string]int{"H": 2, "O": 1}, "H2O"},
		{map[string]int{"Na": 1, "Cl": 1}, "ClNa"},
		{map[string]int{"N": 1, "H": 3}, "H3N"},
		{map[string]int{"O": 2, "C": 1}, "CO2"},
		{map[string]int{"C": 2, "H": 6, "O": 1}, "C2H6O"},
		{map[string]int{"S": 1, "O": 0}, "S"},
		{map[string]int{}, ""},
	}
	for _, c := range cases {
		assert.Equal(Te, c.want, HillFormula(c.counts))
	}
	assert.Equal(Te, "Water", LookupName("H2O"))
	assert.Empty(Te, LookupName("h2o"))
}

func TestWater(Te *testing.T) {
	res := Validate(water())
	assert.Equal(Te, Valid, res.Status, res.Explanation)
	assert.Equal(Te, CovalentPattern, res.Pattern)
	assert.Equal(Te, "H2O", res.Formula)
	assert.Equal(Te, "Water", res.Name)
	assert.InDelta(Te, 18.015, res.MolarMass, 1e-3)
	assert.Empty(Te, res.Warnings)
	assert.Empty(Te, res.Errors)
	assert.Equal(Te, map[string]int{"H-0": 1, "H-1": 1, "O-0": -2}, res.Details.Oxidation)
	assert.Zero(Te, res.Details.NetCharge)
	assert.Equal(Te, []string{"H-0", "H-1", "O-0"}, res.Details.OxidationIDs())
}

func TestSodiumChloride(Te *testing.T) {
	res := Validate([]Entry{{Symbol: "Na", Count: 1}, {Symbol: "Cl", Count: 1}},
		[]Bond{{From: "Na-0", To: "Cl-0"}})
	assert.Equal(Te, Valid, res.Status, res.Explanation)
	assert.Equal(Te, IonicPattern, res.Pattern)
	assert.Equal(Te, "ClNa", res.Formula)
	assert.Equal(Te, "Sodium chloride", res.Name)
	assert.Equal(Te, 1, res.Details.Oxidation["Na-0"])
	assert.Equal(Te, -1, res.Details.Oxidation["Cl-0"])
	assert.Zero(Te, res.Details.NetCharge)
	assert.Contains(Te, res.Details.ChargeNote, "neutral")
}

func TestCarbonDioxide(Te *testing.T) {
	res := Validate([]Entry{{Symbol: "C", Count: 1}, {Symbol: "O", Count: 2}},
		[]Bond{{From: "C-0", To: "O-0", Type: chem.Double}, {From: "C-0", To: "O-1", Type: chem.Double}})
	assert.Equal(Te, Valid, res.Status, res.Explanation)
	assert.Equal(Te, "CO2", res.Formula)
	assert.Equal(Te, "Carbon dioxide", res.Name)
	assert.Equal(Te, 4, res.Details.Oxidation["C-0"])
	assert.Empty(Te, res.Suggestions)
}

func TestNoBondsDoesNotCrash(Te *testing.T) {
	res := Validate([]Entry{{Symbol: "O", Count: 3}}, nil)
	assert.Equal(Te, Invalid, res.Status)
	assert.Equal(Te, NoBonds, res.Pattern)
	assert.Empty(Te, res.Formula)
	assert.Equal(Te, []string{"O-0", "O-1", "O-2"}, res.Details.Unbonded)
	assert.True(Te, containsSub(res.Errors, "two bonded atoms"))
	assert.True(Te, containsSub(res.Warnings, "unbonded"))
	assert.Contains(Te, res.Explanation, "invalid")
}

func TestTooFewAtoms(Te *testing.T) {
	for _, entries := range [][]Entry{nil, {{Symbol: "He", Count: 1}}, {{Symbol: "H", Count: 0}}} {
		res := Validate(entries, nil)
		assert.Equal(Te, Invalid, res.Status)
		assert.True(Te, containsSub(res.Errors, "at least two atoms"), res.Errors)
	}
	res := Validate([]Entry{{Symbol: "", Count: 2}}, nil)
	assert.True(Te, containsSub(res.Errors, "no element symbol"))
	//a bad count is reported even if another entry of the same element covers it.
	entries := []Entry{{Symbol: "H", Count: 3}, {Symbol: "H", Count: -1}, {Symbol: "O", Count: 1}}
	_, bonds := water()
	res = Validate(entries, bonds)
	assert.Equal(Te, Invalid, res.Status)
	assert.True(Te, containsSub(res.Errors, "H has count -1"), res.Errors)
}

func TestMixedPattern(Te *testing.T) {
	res := Validate([]Entry{{Symbol: "Na", Count: 1}, {Symbol: "O", Count: 1}, {Symbol: "H", Count: 1}},
		[]Bond{{From: "Na-0", To: "O-0"}, {From: "O-0", To: "H-0", Type: chem.Single}})
	assert.Equal(Te, MixedPattern, res.Pattern)
	assert.Equal(Te, "HNaO", res.Formula)
	assert.Zero(Te, res.Details.NetCharge)
	assert.Contains(Te, res.Details.PatternNote, "1 covalent, 1 ionic")
}

func TestZeroValidator(Te *testing.T) {
	V := &Validator{}
	res := V.Validate(water())
	assert.Equal(Te, Valid, res.Status, res.Explanation)
	assert.Equal(Te, "H2O", res.Formula)
	//no names table.
	assert.Empty(Te, res.Name)
}

func TestBadEndpoints(Te *testing.T) {
	entries, bonds := water()
	bonds = append(bonds, Bond{From: "H-0", To: "O-5"}, Bond{From: "O-0", To: "O-0"})
	res := Validate(entries, bonds)
	assert.Equal(Te, Invalid, res.Status)
	assert.True(Te, containsSub(res.Errors, `"O-5" does not exist`), res.Errors)
	assert.True(Te, containsSub(res.Errors, "to itself"), res.Errors)
	//the rest of the compound is still analyzed.
	assert.Equal(Te, "H2O", res.Formula)
}

func TestDuplicates(Te *testing.T) {
	entries := []Entry{{Symbol: "H", Count: 1}, {Symbol: "O", Count: 1}, {Symbol: "H", Count: 1}}
	_, bonds := water()
	res := Validate(entries, bonds)
	assert.Equal(Te, Valid, res.Status, res.Explanation)
	assert.Equal(Te, "H2O", res.Formula)

	bonds = append(bonds, Bond{From: "O-0", To: "H-1"})
	res = Validate(entries, bonds)
	assert.Equal(Te, Warning, res.Status)
	assert.True(Te, containsSub(res.Warnings, "duplicate bond"))
}

func TestValenceOverflow(Te *testing.T) {
	three := []Bond{{From: "H-0", To: "Cl-0"}, {From: "H-0", To: "Cl-1"}, {From: "H-0", To: "Cl-2"}}
	res := Validate([]Entry{{Symbol: "H", Count: 1}, {Symbol: "Cl", Count: 3}}, three)
	assert.Equal(Te, Invalid, res.Status)
	assert.True(Te, containsSub(res.Errors, "H-0 has a bond order sum of 3"), res.Errors)

	res = Validate([]Entry{{Symbol: "H", Count: 1}, {Symbol: "Cl", Count: 2}}, three[:2])
	assert.NotEqual(Te, Invalid, res.Status)
	assert.True(Te, containsSub(res.Warnings, "slightly above"), res.Warnings)
}

func TestUnsaturated(Te *testing.T) {
	res := Validate([]Entry{{Symbol: "C", Count: 1}, {Symbol: "H", Count: 2}},
		[]Bond{{From: "C-0", To: "H-0"}, {From: "C-0", To: "H-1"}})
	assert.NotEqual(Te, Invalid, res.Status)
	assert.True(Te, containsSub(res.Suggestions, "C-0 has 2 free bonding slot(s)"), res.Suggestions)
}

func TestChargeResidual(Te *testing.T) {
	res := Validate([]Entry{{Symbol: "Na", Count: 2}, {Symbol: "Cl", Count: 1}},
		[]Bond{{From: "Na-0", To: "Cl-0"}, {From: "Na-1", To: "Cl-0"}})
	assert.Equal(Te, Warning, res.Status)
	assert.Equal(Te, 1, res.Details.NetCharge)
	assert.True(Te, containsSub(res.Warnings, "net charge +1"), res.Warnings)
}

func TestMissingData(Te *testing.T) {
	res := Validate([]Entry{{Symbol: "Xx", Count: 1}, {Symbol: "H", Count: 1}},
		[]Bond{{From: "Xx-0", To: "H-0", Type: chem.Single}})
	assert.Equal(Te, Valid, res.Status, res.Explanation)
	assert.True(Te, containsSub(res.Details.Caveats, "no data for element Xx"))
	assert.True(Te, containsSub(res.Details.Caveats, "assumed single covalent"))
}

func TestMetallicAndMismatch(Te *testing.T) {
	res := Validate([]Entry{{Symbol: "Fe", Count: 1}, {Symbol: "Cu", Count: 1}},
		[]Bond{{From: "Fe-0", To: "Cu-0"}})
	assert.Equal(Te, Valid, res.Status, res.Explanation)
	assert.Equal(Te, MetallicPattern, res.Pattern)
	assert.Equal(Te, "CuFe", res.Formula)

	res = Validate([]Entry{{Symbol: "Na", Count: 1}, {Symbol: "Cl", Count: 1}},
		[]Bond{{From: "Na-0", To: "Cl-0", Type: chem.Covalent}})
	assert.Equal(Te, IonicPattern, res.Pattern)
	assert.True(Te, containsSub(res.Suggestions, "declared covalent"), res.Suggestions)
}

func TestCustomNames(Te *testing.T) {
	V := NewValidator(nil)
	V.Names = map[string]string{"H2O": "Dihydrogen monoxide"}
	res := V.Validate(water())
	assert.Equal(Te, "Dihydrogen monoxide", res.Name)
	assert.Equal(Te, "Water", LookupName("H2O"))
}
