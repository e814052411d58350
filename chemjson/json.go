/*
 * json.go, part of chemreason.
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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator"

	chem "github.com/rmera/chemreason"
	"github.com/rmera/chemreason/chemgraph"
)

var validate = validator.New()

// An easily JSON-serializable error type.
type Error struct {
	deco          []string
	IsError       bool   //If this is false (no error) all the other fields will be at their zero-values.
	InRequest     bool   //Was it in decoding or checking the request?
	InProcess     bool   //Was it in the engines?
	InPostProcess bool   //Was it in preparing the output?
	Field         string //the request field that failed a check, if any
	Function      string //which go function gave the error
	Message       string //the error itself
}

// Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-able error.
// where is "request", "postprocess" or anything else for errors in the process.
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "request":
		jerr.InRequest = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		jerr.Field = verrs[0].Namespace()
		jerr.Message = fmt.Sprintf("field %s failed the %q check", verrs[0].Namespace(), verrs[0].Tag())
	}
	return jerr
}

// Check runs the struct-tag checks on a request.
func Check(req interface{}) *Error {
	if err := validate.Struct(req); err != nil {
		return NewError("request", "Check", err)
	}
	return nil
}

// Decode reads one JSON value from in into req and checks it.
func Decode(in io.Reader, req interface{}) *Error {
	dec := json.NewDecoder(in)
	if err := dec.Decode(req); err != nil {
		return NewError("request", "Decode", err)
	}
	if err := Check(req); err != nil {
		err.Decorate("Decode")
		return err
	}
	return nil
}

// Send encodes v as indented JSON and writes it to out.
func Send(out io.Writer, v interface{}) *Error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return NewError("postprocess", "Send", err)
	}
	return nil
}

// A ready-to-serialize container for an atom of a graph. ImplicitH and
// Hybridization are ignored when a graph is read.
type Atom struct {
	ID            int64       `json:"id" validate:"min=1"`
	Symbol        string      `json:"symbol" validate:"required,max=3"`
	Charge        int         `json:"charge,omitempty" validate:"min=-8,max=8"`
	Radical       bool        `json:"radical,omitempty"`
	Pos           *chem.Point `json:"pos,omitempty"`
	ImplicitH     int         `json:"implicit_h"`
	Hybridization string      `json:"hybridization,omitempty"`
}

// A ready-to-serialize container for a bond of a graph.
type Bond struct {
	ID     int64  `json:"id" validate:"min=1"`
	A1     int64  `json:"a1" validate:"min=1"`
	A2     int64  `json:"a2" validate:"min=1"`
	Order  int    `json:"order" validate:"min=0,max=3"`
	Class  string `json:"class,omitempty" validate:"omitempty,oneof=sigma pi aromatic dative"`
	Stereo string `json:"stereo,omitempty" validate:"omitempty,oneof=none wedge dash wavy"`
}

// Issue of a graph.
type Issue struct {
	Severity string `json:"severity"`
	Atom     int64  `json:"atom,omitempty"`
	Message  string `json:"message"`
}

// A ready-to-serialize container for a molecule graph.
type Graph struct {
	Key    string  `json:"key,omitempty"`
	Atoms  []Atom  `json:"atoms" validate:"dive"`
	Bonds  []Bond  `json:"bonds" validate:"dive"`
	Status string  `json:"status,omitempty"`
	Issues []Issue `json:"issues,omitempty"`
}

// FromGraph returns a container with the atoms, bonds and issues of G.
func FromGraph(G *chemgraph.Graph) *Graph {
	ret := &Graph{
		Key:    G.Key,
		Atoms:  make([]Atom, 0, G.Len()),
		Bonds:  make([]Bond, 0, G.NBonds()),
		Status: G.Status().String(),
	}
	for _, a := range G.Atoms() {
		pos := a.Pos
		ret.Atoms = append(ret.Atoms, Atom{
			ID:            int64(a.ID),
			Symbol:        a.Symbol,
			Charge:        a.Charge,
			Radical:       a.Radical,
			Pos:           &pos,
			ImplicitH:     a.ImplicitH,
			Hybridization: a.Hybrid.String(),
		})
	}
	for _, b := range G.Bonds() {
		ret.Bonds = append(ret.Bonds, Bond{
			ID:     int64(b.ID),
			A1:     int64(b.A1),
			A2:     int64(b.A2),
			Order:  b.Order,
			Class:  b.Class.String(),
			Stereo: b.Stereo.String(),
		})
	}
	for _, i := range G.Issues() {
		ret.Issues = append(ret.Issues, Issue{Severity: i.Severity.String(), Atom: int64(i.Atom), Message: i.Message})
	}
	return ret
}

// ToGraph checks the container and builds a recomputed graph from it,
// keeping the ids. table is used for element data, nil means the built-in table.
func (J *Graph) ToGraph(table chem.Elementer) (*chemgraph.Graph, *Error) {
	const funcname = "Graph.ToGraph"
	if err := Check(J); err != nil {
		err.Decorate(funcname)
		return nil, err
	}
	atoms := make([]chemgraph.Atom, 0, len(J.Atoms))
	for _, a := range J.Atoms {
		at := chemgraph.Atom{ID: chemgraph.AtomID(a.ID), Symbol: a.Symbol, Charge: a.Charge, Radical: a.Radical}
		if a.Pos != nil {
			at.Pos = *a.Pos
		}
		atoms = append(atoms, at)
	}
	bonds := make([]chemgraph.Bond, 0, len(J.Bonds))
	for _, b := range J.Bonds {
		class, _ := chemgraph.ParseBondClass(b.Class)
		stereo, _ := chemgraph.ParseStereo(b.Stereo)
		bonds = append(bonds, chemgraph.Bond{
			ID:     chemgraph.BondID(b.ID),
			A1:     chemgraph.AtomID(b.A1),
			A2:     chemgraph.AtomID(b.A2),
			Order:  b.Order,
			Class:  class,
			Stereo: stereo,
		})
	}
	G, err := chemgraph.Restore(table, atoms, bonds)
	if err != nil {
		return nil, NewError("request", funcname, err)
	}
	if J.Key != "" {
		G.Key = J.Key
	}
	return G, nil
}

// Edit is a serialized graph edit. Which fields are used depends on Op:
//
//	add-atom:       Symbol, Charge, Radical, Pos, BondTo, Order
//	remove-atom:    Atom
//	add-bond:       A1, A2, Order, Class, Stereo
//	remove-bond:    Bond
//	set-bond-order: Bond, Order
//	set-charge:     Atom, Charge
type Edit struct {
	Op      string      `json:"op" validate:"required,oneof=add-atom remove-atom add-bond remove-bond set-bond-order set-charge"`
	Atom    int64       `json:"atom,omitempty"`
	Bond    int64       `json:"bond,omitempty"`
	Symbol  string      `json:"symbol,omitempty" validate:"max=3"`
	Charge  int         `json:"charge,omitempty" validate:"min=-8,max=8"`
	Radical bool        `json:"radical,omitempty"`
	Pos     *chem.Point `json:"pos,omitempty"`
	BondTo  int64       `json:"bond_to,omitempty"`
	A1      int64       `json:"a1,omitempty"`
	A2      int64       `json:"a2,omitempty"`
	Order   int         `json:"order,omitempty"`
	Class   string      `json:"class,omitempty" validate:"omitempty,oneof=sigma pi aromatic dative"`
	Stereo  string      `json:"stereo,omitempty" validate:"omitempty,oneof=none wedge dash wavy"`
}

// EditRequest is a list of edits to apply to a graph, in order.
type EditRequest struct {
	Edits []Edit `json:"edits" validate:"required,dive"`
}

// ToEdit returns the graph edit E describes. The ids it refers to are only
// checked when the edit is applied.
func (E *Edit) ToEdit() (chemgraph.Edit, *Error) {
	if err := Check(E); err != nil {
		err.Decorate("Edit.ToEdit")
		return nil, err
	}
	switch E.Op {
	case "add-atom":
		ret := chemgraph.AddAtom{Symbol: E.Symbol, Charge: E.Charge, Radical: E.Radical, BondTo: chemgraph.AtomID(E.BondTo), Order: E.Order}
		if E.Pos != nil {
			ret.Pos = *E.Pos
		}
		return ret, nil
	case "remove-atom":
		return chemgraph.RemoveAtom{ID: chemgraph.AtomID(E.Atom)}, nil
	case "add-bond":
		class, _ := chemgraph.ParseBondClass(E.Class)
		stereo, _ := chemgraph.ParseStereo(E.Stereo)
		return chemgraph.AddBond{A1: chemgraph.AtomID(E.A1), A2: chemgraph.AtomID(E.A2), Order: E.Order, Class: class, Stereo: stereo}, nil
	case "remove-bond":
		return chemgraph.RemoveBond{ID: chemgraph.BondID(E.Bond)}, nil
	case "set-bond-order":
		return chemgraph.SetBondOrder{ID: chemgraph.BondID(E.Bond), Order: E.Order}, nil
	default: //set-charge, the tags don't let anything else through.
		return chemgraph.SetCharge{ID: chemgraph.AtomID(E.Atom), Charge: E.Charge}, nil
	}
}

// ToEdits converts all the edits of the request.
func (J *EditRequest) ToEdits() ([]chemgraph.Edit, *Error) {
	ret := make([]chemgraph.Edit, 0, len(J.Edits))
	for i := range J.Edits {
		e, err := J.Edits[i].ToEdit()
		if err != nil {
			err.Decorate(fmt.Sprintf("EditRequest.ToEdits(edit %d)", i))
			return nil, err
		}
		ret = append(ret, e)
	}
	return ret, nil
}
