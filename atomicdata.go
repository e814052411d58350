/*
 * atomicdata.go, part of chemreason.
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

import "sync"

//Valence capacities for the elements that matter for organic structures.
//Everything else gets the magnitude of its most common oxidation state.
var symbolValence = map[string]int{
	"H":  1,
	"B":  3,
	"C":  4,
	"N":  3,
	"O":  2,
	"F":  1,
	"Si": 4,
	"P":  3,
	"S":  2,
	"Cl": 1,
	"Se": 2,
	"Br": 1,
	"I":  1,
	"At": 1,
}

func en(f float64) *float64 {
	return &f
}

//Built-in element data. Electronegativities are Pauling values,
//masses are standard atomic weights. Oxidation states are listed most common first.
var builtinElements = []Element{
	{Symbol: "H", Name: "Hydrogen", Number: 1, Category: Nonmetal, Electronegativity: en(2.20), Mass: 1.008, OxidationStates: []int{1, -1},
		Isotopes: []Isotope{{1, true, 99.9885}, {2, true, 0.0115}, {3, false, 0}}},
	{Symbol: "He", Name: "Helium", Number: 2, Category: NobleGas, Mass: 4.0026,
		Isotopes: []Isotope{{4, true, 99.9998}, {3, true, 0.0002}}},
	{Symbol: "Li", Name: "Lithium", Number: 3, Category: AlkaliMetal, Electronegativity: en(0.98), Mass: 6.94, OxidationStates: []int{1}},
	{Symbol: "Be", Name: "Beryllium", Number: 4, Category: AlkalineEarthMetal, Electronegativity: en(1.57), Mass: 9.0122, OxidationStates: []int{2}},
	{Symbol: "B", Name: "Boron", Number: 5, Category: Metalloid, Electronegativity: en(2.04), Mass: 10.81, OxidationStates: []int{3}},
	{Symbol: "C", Name: "Carbon", Number: 6, Category: Nonmetal, Electronegativity: en(2.55), Mass: 12.011, OxidationStates: []int{4, -4, 2, -2, -3, -1, 1, 3},
		Isotopes: []Isotope{{12, true, 98.93}, {13, true, 1.07}, {14, false, 0}}},
	{Symbol: "N", Name: "Nitrogen", Number: 7, Category: Nonmetal, Electronegativity: en(3.04), Mass: 14.007, OxidationStates: []int{-3, 3, 5, -2, -1, 1, 2, 4},
		Isotopes: []Isotope{{14, true, 99.636}, {15, true, 0.364}}},
	{Symbol: "O", Name: "Oxygen", Number: 8, Category: Nonmetal, Electronegativity: en(3.44), Mass: 15.999, OxidationStates: []int{-2, -1, 2},
		Isotopes: []Isotope{{16, true, 99.757}, {17, true, 0.038}, {18, true, 0.205}}},
	{Symbol: "F", Name: "Fluorine", Number: 9, Category: Halogen, Electronegativity: en(3.98), Mass: 18.998, OxidationStates: []int{-1}},
	{Symbol: "Ne", Name: "Neon", Number: 10, Category: NobleGas, Mass: 20.180},
	{Symbol: "Na", Name: "Sodium", Number: 11, Category: AlkaliMetal, Electronegativity: en(0.93), Mass: 22.990, OxidationStates: []int{1}},
	{Symbol: "Mg", Name: "Magnesium", Number: 12, Category: AlkalineEarthMetal, Electronegativity: en(1.31), Mass: 24.305, OxidationStates: []int{2}},
	{Symbol: "Al", Name: "Aluminium", Number: 13, Category: PostTransitionMetal, Electronegativity: en(1.61), Mass: 26.982, OxidationStates: []int{3}},
	{Symbol: "Si", Name: "Silicon", Number: 14, Category: Metalloid, Electronegativity: en(1.90), Mass: 28.085, OxidationStates: []int{4, -4, 2}},
	{Symbol: "P", Name: "Phosphorus", Number: 15, Category: Nonmetal, Electronegativity: en(2.19), Mass: 30.974, OxidationStates: []int{5, 3, -3}},
	{Symbol: "S", Name: "Sulfur", Number: 16, Category: Nonmetal, Electronegativity: en(2.58), Mass: 32.06, OxidationStates: []int{-2, 2, 4, 6}},
	{Symbol: "Cl", Name: "Chlorine", Number: 17, Category: Halogen, Electronegativity: en(3.16), Mass: 35.45, OxidationStates: []int{-1, 1, 3, 5, 7},
		Isotopes: []Isotope{{35, true, 75.76}, {37, true, 24.24}}},
	{Symbol: "Ar", Name: "Argon", Number: 18, Category: NobleGas, Mass: 39.948},
	{Symbol: "K", Name: "Potassium", Number: 19, Category: AlkaliMetal, Electronegativity: en(0.82), Mass: 39.098, OxidationStates: []int{1}},
	{Symbol: "Ca", Name: "Calcium", Number: 20, Category: AlkalineEarthMetal, Electronegativity: en(1.00), Mass: 40.078, OxidationStates: []int{2}},
	{Symbol: "Sc", Name: "Scandium", Number: 21, Category: TransitionMetal, Electronegativity: en(1.36), Mass: 44.956, OxidationStates: []int{3}},
	{Symbol: "Ti", Name: "Titanium", Number: 22, Category: TransitionMetal, Electronegativity: en(1.54), Mass: 47.867, OxidationStates: []int{4, 3, 2}},
	{Symbol: "V", Name: "Vanadium", Number: 23, Category: TransitionMetal, Electronegativity: en(1.63), Mass: 50.942, OxidationStates: []int{5, 4, 3, 2}},
	{Symbol: "Cr", Name: "Chromium", Number: 24, Category: TransitionMetal, Electronegativity: en(1.66), Mass: 51.996, OxidationStates: []int{3, 6, 2}},
	{Symbol: "Mn", Name: "Manganese", Number: 25, Category: TransitionMetal, Electronegativity: en(1.55), Mass: 54.938, OxidationStates: []int{2, 4, 7, 3, 6}},
	{Symbol: "Fe", Name: "Iron", Number: 26, Category: TransitionMetal, Electronegativity: en(1.83), Mass: 55.845, OxidationStates: []int{3, 2}},
	{Symbol: "Co", Name: "Cobalt", Number: 27, Category: TransitionMetal, Electronegativity: en(1.88), Mass: 58.933, OxidationStates: []int{2, 3}},
	{Symbol: "Ni", Name: "Nickel", Number: 28, Category: TransitionMetal, Electronegativity: en(1.91), Mass: 58.693, OxidationStates: []int{2, 3}},
	{Symbol: "Cu", Name: "Copper", Number: 29, Category: TransitionMetal, Electronegativity: en(1.90), Mass: 63.546, OxidationStates: []int{2, 1}},
	{Symbol: "Zn", Name: "Zinc", Number: 30, Category: TransitionMetal, Electronegativity: en(1.65), Mass: 65.38, OxidationStates: []int{2}},
	{Symbol: "Ga", Name: "Gallium", Number: 31, Category: PostTransitionMetal, Electronegativity: en(1.81), Mass: 69.723, OxidationStates: []int{3}},
	{Symbol: "Ge", Name: "Germanium", Number: 32, Category: Metalloid, Electronegativity: en(2.01), Mass: 72.630, OxidationStates: []int{4, 2}},
	{Symbol: "As", Name: "Arsenic", Number: 33, Category: Metalloid, Electronegativity: en(2.18), Mass: 74.922, OxidationStates: []int{3, 5, -3}},
	{Symbol: "Se", Name: "Selenium", Number: 34, Category: Nonmetal, Electronegativity: en(2.55), Mass: 78.971, OxidationStates: []int{-2, 4, 6}},
	{Symbol: "Br", Name: "Bromine", Number: 35, Category: Halogen, Electronegativity: en(2.96), Mass: 79.904, OxidationStates: []int{-1, 1, 3, 5}},
	{Symbol: "Kr", Name: "Krypton", Number: 36, Category: NobleGas, Electronegativity: en(3.00), Mass: 83.798, OxidationStates: []int{2}},
	{Symbol: "Rb", Name: "Rubidium", Number: 37, Category: AlkaliMetal, Electronegativity: en(0.82), Mass: 85.468, OxidationStates: []int{1}},
	{Symbol: "Sr", Name: "Strontium", Number: 38, Category: AlkalineEarthMetal, Electronegativity: en(0.95), Mass: 87.62, OxidationStates: []int{2}},
	{Symbol: "Ag", Name: "Silver", Number: 47, Category: TransitionMetal, Electronegativity: en(1.93), Mass: 107.87, OxidationStates: []int{1}},
	{Symbol: "Cd", Name: "Cadmium", Number: 48, Category: TransitionMetal, Electronegativity: en(1.69), Mass: 112.41, OxidationStates: []int{2}},
	{Symbol: "Sn", Name: "Tin", Number: 50, Category: PostTransitionMetal, Electronegativity: en(1.96), Mass: 118.71, OxidationStates: []int{4, 2}},
	{Symbol: "Sb", Name: "Antimony", Number: 51, Category: Metalloid, Electronegativity: en(2.05), Mass: 121.76, OxidationStates: []int{3, 5, -3}},
	{Symbol: "Te", Name: "Tellurium", Number: 52, Category: Metalloid, Electronegativity: en(2.10), Mass: 127.60, OxidationStates: []int{-2, 4, 6}},
	{Symbol: "I", Name: "Iodine", Number: 53, Category: Halogen, Electronegativity: en(2.66), Mass: 126.90, OxidationStates: []int{-1, 1, 5, 7}},
	{Symbol: "Xe", Name: "Xenon", Number: 54, Category: NobleGas, Electronegativity: en(2.60), Mass: 131.29, OxidationStates: []int{2, 4, 6}},
	{Symbol: "Cs", Name: "Caesium", Number: 55, Category: AlkaliMetal, Electronegativity: en(0.79), Mass: 132.91, OxidationStates: []int{1}},
	{Symbol: "Ba", Name: "Barium", Number: 56, Category: AlkalineEarthMetal, Electronegativity: en(0.89), Mass: 137.33, OxidationStates: []int{2}},
	{Symbol: "La", Name: "Lanthanum", Number: 57, Category: Lanthanide, Electronegativity: en(1.10), Mass: 138.91, OxidationStates: []int{3}},
	{Symbol: "Ce", Name: "Cerium", Number: 58, Category: Lanthanide, Electronegativity: en(1.12), Mass: 140.12, OxidationStates: []int{3, 4}},
	{Symbol: "Pt", Name: "Platinum", Number: 78, Category: TransitionMetal, Electronegativity: en(2.28), Mass: 195.08, OxidationStates: []int{2, 4}},
	{Symbol: "Au", Name: "Gold", Number: 79, Category: TransitionMetal, Electronegativity: en(2.54), Mass: 196.97, OxidationStates: []int{3, 1}},
	{Symbol: "Hg", Name: "Mercury", Number: 80, Category: TransitionMetal, Electronegativity: en(2.00), Mass: 200.59, OxidationStates: []int{2, 1}},
	{Symbol: "Pb", Name: "Lead", Number: 82, Category: PostTransitionMetal, Electronegativity: en(2.33), Mass: 207.2, OxidationStates: []int{2, 4}},
	{Symbol: "Bi", Name: "Bismuth", Number: 83, Category: PostTransitionMetal, Electronegativity: en(2.02), Mass: 208.98, OxidationStates: []int{3, 5}},
	{Symbol: "Th", Name: "Thorium", Number: 90, Category: Actinide, Electronegativity: en(1.3), Mass: 232.04, OxidationStates: []int{4}},
	{Symbol: "U", Name: "Uranium", Number: 92, Category: Actinide, Electronegativity: en(1.38), Mass: 238.03, OxidationStates: []int{6, 4, 5, 3}},
	{Symbol: "Og", Name: "Oganesson", Number: 118, Category: Unknown, Mass: 294},
}

var (
	defaultTable     *PeriodicTable
	defaultTableOnce sync.Once
)

// DefaultTable returns the built-in periodic table. The same table is
// returned on every call, and must not be modified.
func DefaultTable() *PeriodicTable {
	defaultTableOnce.Do(func() {
		var err error
		defaultTable, err = NewPeriodicTable(builtinElements)
		if err != nil {
			panic("chem: broken built-in element table: " + err.Error()) //can only happen if the data above is wrong.
		}
	})
	return defaultTable
}
