/*
 * reports.go, part of chemreason.
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

package chemjson

import (
	"sort"
	"time"

	chem "github.com/rmera/chemreason"
	"github.com/rmera/chemreason/chemgraph"
	"github.com/rmera/chemreason/compound"
	"github.com/rmera/chemreason/geometry"
)

// Entry is an element of a compound and how many atoms of it there are.
type Entry struct {
	Symbol   string      `json:"symbol" validate:"required,max=3"`
	Count    int         `json:"count" validate:"max=10000"`
	Position *chem.Point `json:"position,omitempty"`
}

// CompoundBond joins two atom instances, such as "H-0" and "O-0". The type
// is one of the bond type names, or empty.
type CompoundBond struct {
	From     string        `json:"from" validate:"required"`
	To       string        `json:"to" validate:"required"`
	Type     chem.BondType `json:"type"`
	Strength *float64      `json:"strength,omitempty"`
}

// CompoundRequest asks for the validation (or geometry) of a compound.
// Chemical problems, such as too few atoms, are not rejected here: they
// are reported by the validator.
type CompoundRequest struct {
	Entries []Entry        `json:"entries" validate:"dive"`
	Bonds   []CompoundBond `json:"bonds" validate:"dive"`
}

// Compound returns the entries and bonds of the request.
func (J *CompoundRequest) Compound() ([]compound.Entry, []compound.Bond) {
	entries := make([]compound.Entry, 0, len(J.Entries))
	for _, e := range J.Entries {
		entries = append(entries, compound.Entry{Symbol: e.Symbol, Count: e.Count, Position: e.Position})
	}
	bonds := make([]compound.Bond, 0, len(J.Bonds))
	for _, b := range J.Bonds {
		bonds = append(bonds, compound.Bond{From: b.From, To: b.To, Type: b.Type, Strength: b.Strength})
	}
	return entries, bonds
}

// Details of a validation.
type Details struct {
	Oxidation   map[string]int `json:"oxidation"`
	NetCharge   int            `json:"net_charge"`
	ChargeNote  string         `json:"charge_note,omitempty"`
	PatternNote string         `json:"pattern_note,omitempty"`
	Caveats     []string       `json:"caveats,omitempty"`
	Unbonded    []string       `json:"unbonded,omitempty"`
}

// ValidationReport is the serialized result of validating a compound.
type ValidationReport struct {
	Status      string   `json:"status"`
	Pattern     string   `json:"pattern"`
	Formula     string   `json:"formula,omitempty"`
	Name        string   `json:"name,omitempty"`
	MolarMass   float64  `json:"molar_mass,omitempty"`
	Explanation string   `json:"explanation"`
	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Details     *Details `json:"details,omitempty"`
}

// NewValidationReport returns the report for r.
func NewValidationReport(r *compound.Result) *ValidationReport {
	ret := &ValidationReport{
		Status:      r.Status.String(),
		Pattern:     r.Pattern.String(),
		Formula:     r.Formula,
		Name:        r.Name,
		MolarMass:   r.MolarMass,
		Explanation: r.Explanation,
		Errors:      r.Errors,
		Warnings:    r.Warnings,
		Suggestions: r.Suggestions,
	}
	if d := r.Details; d != nil {
		ret.Details = &Details{
			Oxidation:   d.Oxidation,
			NetCharge:   d.NetCharge,
			ChargeNote:  d.ChargeNote,
			PatternNote: d.PatternNote,
			Caveats:     d.Caveats,
			Unbonded:    d.Unbonded,
		}
	}
	return ret
}

// Geometry is a serialized geometry. Center is 0 for the geometry of a whole molecule.
type Geometry struct {
	Class     geometry.Class `json:"class"`
	Center    int64          `json:"center,omitempty"`
	Angles    []float64      `json:"angles,omitempty"`
	Generated time.Time      `json:"generated"`
}

func newGeometry(g *geometry.Geometry) Geometry {
	ret := Geometry{Class: g.Class, Angles: g.Angles, Generated: g.Generated}
	if g.Center != nil {
		ret.Center = int64(*g.Center)
	}
	return ret
}

// Position of an atom in a layout.
type Position struct {
	ID       int64      `json:"id"`
	Instance string     `json:"instance,omitempty"` //the compound atom instance, such as "O-0"
	Symbol   string     `json:"symbol"`
	Pos      chem.Point `json:"pos"`
}

// Clash of two atoms placed too close.
type Clash struct {
	A1       int64   `json:"a1"`
	A2       int64   `json:"a2"`
	Distance float64 `json:"distance"`
}

// GeometryReport is the serialized result of resolving the geometry of a graph.
type GeometryReport struct {
	Overall   Geometry   `json:"overall"`
	Centers   []Geometry `json:"centers"` //sorted by center id
	Positions []Position `json:"positions"`
	Clashes   []Clash    `json:"clashes,omitempty"`
}

// NewGeometryReport returns the report for res.
func NewGeometryReport(res *geometry.Result) *GeometryReport {
	ret := &GeometryReport{
		Overall:   newGeometry(res.Overall),
		Centers:   make([]Geometry, 0, len(res.Centers)),
		Positions: make([]Position, 0, len(res.Order)),
	}
	for _, g := range res.Centers {
		ret.Centers = append(ret.Centers, newGeometry(g))
	}
	sort.Slice(ret.Centers, func(i, j int) bool { return ret.Centers[i].Center < ret.Centers[j].Center })
	for _, id := range res.Order {
		a, _ := res.Graph.Atom(id)
		ret.Positions = append(ret.Positions, Position{ID: int64(id), Symbol: a.Symbol, Pos: res.Positions[id]})
	}
	for _, c := range res.Clashes {
		ret.Clashes = append(ret.Clashes, Clash{A1: int64(c.A1), A2: int64(c.A2), Distance: c.Distance})
	}
	return ret
}

// NewCompoundGeometryReport returns the report for res, a resolved compound,
// with each position tagged with its atom instance. instances maps instance ids
// to the atoms of res, as returned by geometry.ResolveCompound.
func NewCompoundGeometryReport(res *geometry.Result, instances map[string]chemgraph.AtomID) *GeometryReport {
	ret := NewGeometryReport(res)
	names := make(map[int64]string, len(instances))
	for k, v := range instances {
		names[int64(v)] = k
	}
	for i, p := range ret.Positions {
		ret.Positions[i].Instance = names[p.ID]
	}
	return ret
}
