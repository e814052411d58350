/*
 * formula.go, part of chemreason.
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
	"sort"
	"strconv"
	"strings"
)

// HillFormula returns the formula for the given element counts in Hill order:
// carbon first if present, then hydrogen, then every other element
// alphabetically. Counts of 1 are omitted, and symbols with counts < 1 skipped.
func HillFormula(counts map[string]int) string {
	syms := make([]string, 0, len(counts))
	for s, c := range counts {
		if c > 0 && s != "C" && s != "H" {
			syms = append(syms, s)
		}
	}
	sort.Strings(syms)
	head := make([]string, 0, 2)
	if counts["C"] > 0 {
		head = append(head, "C")
	}
	if counts["H"] > 0 {
		head = append(head, "H")
	}
	syms = append(head, syms...)
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s)
		if counts[s] > 1 {
			b.WriteString(strconv.Itoa(counts[s]))
		}
	}
	return b.String()
}

//Common compounds, keyed by Hill formula.
var knownCompounds = map[string]string{
	"H2O":     "Water",
	"H2O2":    "Hydrogen peroxide",
	"CO2":     "Carbon dioxide",
	"CO":      "Carbon monoxide",
	"H3N":     "Ammonia",
	"CH4":     "Methane",
	"C2H6":    "Ethane",
	"C2H4":    "Ethylene",
	"C2H2":    "Acetylene",
	"C3H8":    "Propane",
	"C4H10":   "Butane",
	"C6H6":    "Benzene",
	"CH4O":    "Methanol",
	"C2H6O":   "Ethanol",
	"CH2O":    "Formaldehyde",
	"CH2O2":   "Formic acid",
	"C2H4O2":  "Acetic acid",
	"C6H12O6": "Glucose",
	"ClNa":    "Sodium chloride",
	"ClK":     "Potassium chloride",
	"ClH":     "Hydrogen chloride",
	"FH":      "Hydrogen fluoride",
	"BrH":     "Hydrogen bromide",
	"Cl2Mg":   "Magnesium chloride",
	"CaCl2":   "Calcium chloride",
	"CaO":     "Calcium oxide",
	"MgO":     "Magnesium oxide",
	"HNaO":    "Sodium hydroxide",
	"HKO":     "Potassium hydroxide",
	"H2O4S":   "Sulfuric acid",
	"HNO3":    "Nitric acid",
	"H3O4P":   "Phosphoric acid",
	"O2S":     "Sulfur dioxide",
	"O3S":     "Sulfur trioxide",
	"O2Si":    "Silicon dioxide",
	"NO":      "Nitric oxide",
	"NO2":     "Nitrogen dioxide",
	"N2O":     "Nitrous oxide",
	"H2S":     "Hydrogen sulfide",
	"CCaO3":   "Calcium carbonate",
	"CHNaO3":  "Sodium bicarbonate",
	"Fe2O3":   "Iron(III) oxide",
	"H2":      "Hydrogen",
	"O2":      "Oxygen",
	"O3":      "Ozone",
	"N2":      "Nitrogen",
	"Cl2":     "Chlorine",
	"F2":      "Fluorine",
}

// LookupName returns the common name of the compound with the given Hill
// formula, or an empty string. The lookup is case-sensitive.
func LookupName(formula string) string {
	return knownCompounds[formula]
}

// KnownCompounds returns a copy of the formula-to-name table used by LookupName.
func KnownCompounds() map[string]string {
	ret := make(map[string]string, len(knownCompounds))
	for k, v := range knownCompounds {
		ret[k] = v
	}
	return ret
}
