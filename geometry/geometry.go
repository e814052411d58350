/*
 * geometry.go, part of chemreason.
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

// Package geometry assigns VSEPR geometries to the atoms of a molecule graph
// and lays the atoms out in 2D or 3D. Small single-center molecules are placed
// on ideal VSEPR directions. Everything else gets a heuristic layout where
// chains are straight, rings are regular polygons and branches follow the
// angles of their center. The final coordinates are always centered on the
// viewport.
package geometry

import (
	"strings"
	"time"

	chem "github.com/rmera/chemreason"
	"github.com/rmera/chemreason/chemgraph"
)

// Class is a VSEPR geometry class.
type Class int

const (
	Linear Class = iota
	Bent
	TrigonalPlanar
	Tetrahedral
	TrigonalPyramidal
	TrigonalBipyramidal
	Octahedral
	Custom
)

var classNames = [...]string{
	Linear:              "linear",
	Bent:                "bent",
	TrigonalPlanar:      "trigonal-planar",
	Tetrahedral:         "tetrahedral",
	TrigonalPyramidal:   "trigonal-pyramidal",
	TrigonalBipyramidal: "trigonal-bipyramidal",
	Octahedral:          "octahedral",
	Custom:              "custom",
}

func (C Class) String() string {
	if C < 0 || int(C) >= len(classNames) {
		return "custom"
	}
	return classNames[C]
}

// ParseClass returns the class named s. Unknown names give Custom.
func ParseClass(s string) Class {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, v := range classNames {
		if v == s {
			return Class(i)
		}
	}
	return Custom
}

func (C Class) MarshalText() ([]byte, error) {
	return []byte(C.String()), nil
}

func (C *Class) UnmarshalText(b []byte) error {
	*C = ParseClass(string(b))
	return nil
}

// Geometry is the shape around a center atom, or of a whole molecule.
type Geometry struct {
	Class     Class
	Center    *chemgraph.AtomID //nil for the geometry of a whole molecule
	Angles    []float64         //degrees. Ideal angles, or the measured ones for custom geometries
	Generated time.Time
}

// Ideal bond angles, in degrees.
const (
	AngleLinear      = 180.0
	AngleBent        = 104.5
	AngleBentSP2     = 120.0
	AngleTrigonal    = 120.0
	AnglePyramidal   = 107.0
	AngleTetrahedral = 109.5
	AngleRight       = 90.0
)

const defaultBranchAngle = 120.0

// domains are the electron domains around an atom.
type domains struct {
	explicit  []chemgraph.AtomID //bonded atoms in the graph
	orders    []int              //orders of the bonds to explicit
	implicitH int
	lonePairs int
	hybrid    chemgraph.Hybridization
}

// n is the number of bonded neighbors, implicit hydrogens included.
func (d *domains) n() int {
	return len(d.explicit) + d.implicitH
}

func (d *domains) order(id chemgraph.AtomID) int {
	for i, v := range d.explicit {
		if v == id {
			return d.orders[i]
		}
	}
	return 1
}

// electronDomains counts the neighbors and lone pairs of every atom of G.
// Lone pairs are max(0, (valence electrons - bond order sum - implicit H)/2).
// If implicit is false, implicit hydrogens are ignored.
func electronDomains(G *chemgraph.Graph, implicit bool) map[chemgraph.AtomID]*domains {
	ret := make(map[chemgraph.AtomID]*domains, G.Len())
	for _, a := range G.Atoms() {
		d := &domains{hybrid: a.Hybrid}
		if implicit {
			d.implicitH = a.ImplicitH
		}
		sum := 0
		for _, b := range G.BondsOf(a.ID) {
			d.explicit = append(d.explicit, b.Other(a.ID))
			d.orders = append(d.orders, b.Order)
			sum += b.Order
		}
		if e, ok := G.Table().Element(a.Symbol); ok {
			if lp := (chem.ValenceElectrons(e) - sum - d.implicitH) / 2; lp > 0 {
				d.lonePairs = lp
			}
		}
		ret[a.ID] = d
	}
	return ret
}

// classify returns the VSEPR class and ideal angles for an atom with n
// neighbors. It returns Custom and no angles for counts with no clean class.
func classify(n, lonePairs int, hybrid chemgraph.Hybridization) (Class, []float64) {
	switch n {
	case 2:
		if lonePairs == 0 {
			return Linear, []float64{AngleLinear}
		}
		if hybrid == chemgraph.SP2 {
			return Bent, []float64{AngleBentSP2}
		}
		return Bent, []float64{AngleBent}
	case 3:
		if lonePairs == 0 {
			return TrigonalPlanar, []float64{AngleTrigonal}
		}
		return TrigonalPyramidal, []float64{AnglePyramidal}
	case 4:
		return Tetrahedral, []float64{AngleTetrahedral}
	case 5:
		return TrigonalBipyramidal, []float64{AngleRight, AngleTrigonal}
	case 6:
		return Octahedral, []float64{AngleRight}
	}
	return Custom, nil
}

// orderFactor scales the bond length by bond order.
func orderFactor(order int) float64 {
	switch order {
	case 2:
		return 0.87
	case 3:
		return 0.78
	}
	return 1
}
