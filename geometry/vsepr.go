/*
 * vsepr.go, part of chemreason.
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

package geometry

import (
	"math"

	chem "github.com/rmera/chemreason"
	"github.com/rmera/chemreason/v3"
)

type vec [3]float64

func (v vec) add(w vec) vec { return vec{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

func (v vec) sub(w vec) vec { return vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

func (v vec) scale(f float64) vec { return vec{v[0] * f, v[1] * f, v[2] * f} }

func (v vec) norm() float64 { return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]) }

func (v vec) unit() vec {
	n := v.norm()
	if n == 0 {
		return v
	}
	return v.scale(1 / n)
}

// angle returns the angle between v and w in degrees, using v3.
func (v vec) angle(w vec) float64 {
	a, b := v3.Zeros(1), v3.Zeros(1)
	a.SetVec(0, v[0], v[1], v[2])
	b.SetVec(0, w[0], w[1], w[2])
	return chem.Rad2Deg(v3.Angle(a, b))
}

// rotatorAroundZ returns an operator that, applied on the right side of
// a set of row vectors, rotates them by deg degrees around the z axis.
func rotatorAroundZ(deg float64) *v3.Matrix {
	sin, cos := math.Sincos(chem.Deg2Rad(deg))
	operator := []float64{cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1}
	R, _ := v3.NewMatrix(operator)
	return R
}

// rotateZ returns v rotated by deg degrees around the z axis.
func rotateZ(v vec, deg float64) vec {
	m := v3.Zeros(1)
	m.SetVec(0, v[0], v[1], v[2])
	r := v3.Zeros(1)
	r.Mul(m, rotatorAroundZ(deg))
	return vec(r.Vec(0))
}

// fan returns n unit vectors evenly spaced in the xy plane, the first one on x.
func fan(n int) []vec {
	ret := make([]vec, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, rotateZ(vec{1, 0, 0}, 360*float64(i)/float64(n)))
	}
	return ret
}

// idealDirections returns n unit vectors pointing from a center of the given
// class to its neighbors. In 2D all of them lie in the xy plane, and classes
// that are not planar are drawn as an even fan.
func idealDirections(c Class, n int, angles []float64, dims int) []vec {
	switch c {
	case Linear:
		if n == 2 {
			return []vec{{-1, 0, 0}, {1, 0, 0}}
		}
	case Bent:
		if n == 2 && len(angles) > 0 {
			half := chem.Deg2Rad(angles[0] / 2)
			return []vec{{-math.Sin(half), -math.Cos(half), 0}, {math.Sin(half), -math.Cos(half), 0}}
		}
	case TrigonalPlanar:
		return fan(n)
	}
	if dims == 2 {
		return fan(n)
	}
	switch c {
	case TrigonalPyramidal:
		if n == 3 && len(angles) > 0 {
			//polar angle alpha from -z such that every pair of vectors is
			//angles[0] apart.
			sin2 := (1 - math.Cos(chem.Deg2Rad(angles[0]))) / 1.5
			sina := math.Sqrt(sin2)
			cosa := math.Sqrt(1 - sin2)
			ret := make([]vec, 0, 3)
			for _, f := range fan(3) {
				ret = append(ret, vec{f[0] * sina, f[1] * sina, -cosa})
			}
			return ret
		}
	case Tetrahedral:
		if n == 4 {
			s := 1 / math.Sqrt(3)
			return []vec{{s, s, s}, {s, -s, -s}, {-s, s, -s}, {-s, -s, s}}
		}
	case TrigonalBipyramidal:
		if n == 5 {
			return append([]vec{{0, 0, 1}, {0, 0, -1}}, fan(3)...)
		}
	case Octahedral:
		if n == 6 {
			return []vec{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
		}
	}
	return fan(n)
}
