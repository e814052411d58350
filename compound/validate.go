/*
 * validate.go, part of chemreason.
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
	"fmt"
	"sort"
	"strings"

	chem "github.com/rmera/chemreason"
)

// Validator checks compounds against the element data of Table. Names maps
// Hill formulas to the common names reported in results.
type Validator struct {
	Table chem.Elementer
	Names map[string]string
}

// NewValidator returns a Validator using table, or the built-in periodic table
// if table is nil, and the built-in table of common compounds.
func NewValidator(table chem.Elementer) *Validator {
	if table == nil {
		table = chem.DefaultTable()
	}
	return &Validator{Table: table, Names: KnownCompounds()}
}

// Validate checks a compound with the default Validator.
func Validate(entries []Entry, bonds []Bond) *Result {
	return NewValidator(nil).Validate(entries, bonds)
}

// a bond that survived endpoint resolution.
type resolvedBond struct {
	i, j  int
	order int
	class chem.Classification
}

// findings collects every issue of a validation, so all of them are reported
// together.
type findings struct {
	errors      []string
	warnings    []string
	suggestions []string
	caveats     []string
}

func (f *findings) caveat(s string) {
	for _, v := range f.caveats {
		if v == s {
			return
		}
	}
	f.caveats = append(f.caveats, s)
}

// Validate checks the compound given by entries and bonds. It never fails: every
// problem found is reported in the returned Result, whose Status is Invalid if
// the compound can't be used at all, and Warning if it can, with caveats.
func (V *Validator) Validate(entries []Entry, bonds []Bond) *Result {
	f := &findings{}
	res := &Result{Details: &Details{Oxidation: make(map[string]int)}}
	table := V.Table
	if table == nil {
		table = chem.DefaultTable()
	}
	if len(entries) == 0 {
		f.errors = append(f.errors, "no elements given")
	}
	//counts are checked before merging, so a bad entry can't be summed away.
	for _, v := range entries {
		if v.Symbol == "" {
			f.errors = append(f.errors, "an entry has no element symbol")
			continue
		}
		if v.Count < 1 {
			f.errors = append(f.errors, fmt.Sprintf("%s has count %d, it must be at least 1", v.Symbol, v.Count))
		}
	}
	instances := make([]Instance, 0)
	for _, v := range Expand(entries) {
		if v.Symbol != "" {
			instances = append(instances, v)
		}
	}
	if len(instances) < 2 {
		f.errors = append(f.errors, "need at least two atoms")
	}
	index := make(map[string]int, len(instances))
	elems := make([]*chem.Element, len(instances))
	for i, v := range instances {
		index[v.ID] = i
		e, ok := table.Element(v.Symbol)
		if !ok {
			f.caveat(fmt.Sprintf("no data for element %s", v.Symbol))
			continue
		}
		elems[i] = e
	}

	resolved := V.resolveBonds(bonds, index, elems, f)

	degree := make([]int, len(instances))
	for _, b := range resolved {
		degree[b.i]++
		degree[b.j]++
	}
	bonded := 0
	for i, v := range instances {
		if degree[i] > 0 {
			bonded++
		} else if len(instances) > 1 {
			res.Details.Unbonded = append(res.Details.Unbonded, v.ID)
		}
	}
	if len(res.Details.Unbonded) > 0 {
		f.warnings = append(f.warnings, fmt.Sprintf("unbonded atom(s) excluded from formula: %s", strings.Join(res.Details.Unbonded, ", ")))
	}
	if len(instances) >= 2 && bonded < 2 {
		f.errors = append(f.errors, "need at least two bonded atoms")
	}

	res.Pattern, res.Details.PatternNote = bondingPattern(resolved)
	checkValence(resolved, instances, elems, degree, f)
	V.chargeBalance(resolved, instances, elems, degree, res.Details, f)

	counts := make(map[string]int)
	for i, v := range instances {
		if degree[i] == 0 {
			continue
		}
		counts[v.Symbol]++
		if elems[i] != nil {
			res.MolarMass += elems[i].Mass
		}
	}
	res.Formula = HillFormula(counts)
	if V.Names != nil {
		res.Name = V.Names[res.Formula]
	}

	res.Errors = f.errors
	res.Warnings = f.warnings
	res.Suggestions = f.suggestions
	res.Details.Caveats = f.caveats
	switch {
	case len(f.errors) > 0:
		res.Status = Invalid
	case len(f.warnings) > 0:
		res.Status = Warning
	default:
		res.Status = Valid
	}
	res.Explanation = explain(res)
	return res
}

// resolveBonds checks the bond endpoints and classifies every usable bond.
func (V *Validator) resolveBonds(bonds []Bond, index map[string]int, elems []*chem.Element, f *findings) []resolvedBond {
	resolved := make([]resolvedBond, 0, len(bonds))
	seen := make(map[[2]int]bool, len(bonds))
	for k, b := range bonds {
		if b.From == b.To {
			f.errors = append(f.errors, fmt.Sprintf("bond %d joins atom %s to itself", k, b.From))
			continue
		}
		i, ok1 := index[b.From]
		j, ok2 := index[b.To]
		if !ok1 {
			f.errors = append(f.errors, fmt.Sprintf("bond %d: atom %q does not exist", k, b.From))
		}
		if !ok2 {
			f.errors = append(f.errors, fmt.Sprintf("bond %d: atom %q does not exist", k, b.To))
		}
		if !ok1 || !ok2 {
			continue
		}
		key := [2]int{i, j}
		if j < i {
			key = [2]int{j, i}
		}
		if seen[key] {
			f.warnings = append(f.warnings, fmt.Sprintf("duplicate bond between %s and %s ignored", b.From, b.To))
			continue
		}
		seen[key] = true
		declared := b.Type.Kind()
		class := chem.ClassifyBondOrder(elems[i], elems[j], declared.Order)
		if class.LowConfidence {
			f.caveat(class.Caveat)
		} else if class.Caveat != "" {
			f.suggestions = append(f.suggestions, class.Caveat)
		}
		order := class.Order
		if b.Type != chem.BondUnset && !class.LowConfidence && declared.Polarity != class.Polarity() {
			f.suggestions = append(f.suggestions, fmt.Sprintf("bond %s-%s is declared %s, but an electronegativity difference of %.2f suggests %s",
				b.From, b.To, b.Type, class.DeltaEN, class.Type))
		}
		resolved = append(resolved, resolvedBond{i: i, j: j, order: order, class: class})
	}
	return resolved
}

// bondingPattern returns the dominant pattern of the bonds and a short note.
func bondingPattern(bonds []resolvedBond) (Pattern, string) {
	var ionic, covalent, metallic int
	for _, b := range bonds {
		switch b.class.Polarity() {
		case chem.PolarityIonic:
			ionic++
		case chem.PolarityMetallic:
			metallic++
		default:
			covalent++
		}
	}
	note := fmt.Sprintf("%d covalent, %d ionic, %d metallic bond(s)", covalent, ionic, metallic)
	kinds := 0
	for _, v := range []int{ionic, covalent, metallic} {
		if v > 0 {
			kinds++
		}
	}
	switch {
	case kinds == 0:
		return NoBonds, "no bonds"
	case kinds > 1:
		return MixedPattern, note
	case ionic > 0:
		return IonicPattern, note
	case metallic > 0:
		return MetallicPattern, note
	}
	return CovalentPattern, note
}

// checkValence compares, for each atom, the sum of the orders of its
// non-metallic bonds with the largest oxidation state of its element.
func checkValence(bonds []resolvedBond, instances []Instance, elems []*chem.Element, degree []int, f *findings) {
	sum := make([]int, len(instances))
	allCovalent := make([]bool, len(instances))
	for i := range allCovalent {
		allCovalent[i] = true
	}
	for _, b := range bonds {
		p := b.class.Polarity()
		if p != chem.PolarityCovalent {
			allCovalent[b.i] = false
			allCovalent[b.j] = false
		}
		if p == chem.PolarityMetallic {
			continue
		}
		sum[b.i] += b.order
		sum[b.j] += b.order
	}
	for i, v := range instances {
		e := elems[i]
		if degree[i] == 0 || e == nil || len(e.OxidationStates) == 0 {
			continue
		}
		maxv := chem.MaxOxidation(e)
		excess := sum[i] - maxv
		switch {
		case excess > 1:
			f.errors = append(f.errors, fmt.Sprintf("%s has a bond order sum of %d, above its maximum valence of %d", v.ID, sum[i], maxv))
		case excess == 1:
			f.warnings = append(f.warnings, fmt.Sprintf("%s has a bond order sum of %d, slightly above its maximum valence of %d", v.ID, sum[i], maxv))
		}
		capacity := chem.ValenceCapacity(e)
		if allCovalent[i] && capacity > 0 && sum[i] < capacity {
			f.suggestions = append(f.suggestions, fmt.Sprintf("%s has %d free bonding slot(s); add atoms (e.g. hydrogens) or raise a bond order to saturate it", v.ID, capacity-sum[i]))
		}
	}
}

// chargeBalance infers an oxidation state for every bonded atom and checks
// that they add up to zero.
func (V *Validator) chargeBalance(bonds []resolvedBond, instances []Instance, elems []*chem.Element, degree []int, d *Details, f *findings) {
	target := make([]int, len(instances))
	for _, b := range bonds {
		if b.class.Polarity() == chem.PolarityMetallic {
			continue
		}
		eni, oki := elems[b.i].EN()
		enj, okj := elems[b.j].EN()
		if !oki || !okj || eni == enj {
			continue
		}
		//the more electronegative atom takes the electrons.
		if eni > enj {
			target[b.i] -= b.order
			target[b.j] += b.order
		} else {
			target[b.i] += b.order
			target[b.j] -= b.order
		}
	}
	net := 0
	for i, v := range instances {
		if degree[i] == 0 {
			continue
		}
		ox := pickOxidation(elems[i], target[i])
		d.Oxidation[v.ID] = ox
		net += ox
	}
	d.NetCharge = net
	if net == 0 {
		d.ChargeNote = "neutral: oxidation states sum to zero"
		return
	}
	d.ChargeNote = fmt.Sprintf("residual charge %+d", net)
	f.warnings = append(f.warnings, fmt.Sprintf("oxidation states do not balance, net charge %+d", net))
}

// pickOxidation returns the oxidation state of e closest to target, preferring
// the most common state in case of ties. Without data, target is returned.
func pickOxidation(e *chem.Element, target int) int {
	if target == 0 {
		return 0
	}
	if e == nil || len(e.OxidationStates) == 0 {
		return target
	}
	best := e.OxidationStates[0]
	for _, v := range e.OxidationStates[1:] {
		if abs(v-target) < abs(best-target) {
			best = v
		}
	}
	return best
}

func explain(res *Result) string {
	name := res.Formula
	if res.Name != "" {
		name = fmt.Sprintf("%s (%s)", res.Formula, res.Name)
	}
	switch res.Status {
	case Invalid:
		return "invalid compound: " + strings.Join(res.Errors, "; ")
	case Warning:
		return fmt.Sprintf("%s is a %s compound with %d warning(s): %s", name, res.Pattern, len(res.Warnings), strings.Join(res.Warnings, "; "))
	}
	return fmt.Sprintf("%s is a valid %s compound", name, res.Pattern)
}

// OxidationIDs returns the instance ids in d.Oxidation in a stable order.
func (d *Details) OxidationIDs() []string {
	ids := make([]string, 0, len(d.Oxidation))
	for k := range d.Oxidation {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	return ids
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
