/*
 * matrix.go, part of chemreason.
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

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Matrix is a set of vectors in 3D space.
// Within the package it is understood that a "vector" is a row vector, i.e. the
// cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix wraps A, which must have 3 columns, in a Matrix.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the ith vector of F. Changes in the view
// are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Vec returns a copy of the three coordinates of the ith vector of F.
func (F *Matrix) Vec(i int) [3]float64 {
	var ret [3]float64
	row := F.RawRowView(i)
	copy(ret[:], row)
	return ret
}

// SetVec sets the ith vector of F to x, y, z.
func (F *Matrix) SetVec(i int, x, y, z float64) {
	F.Set(i, 0, x)
	F.Set(i, 1, y)
	F.Set(i, 2, z)
}

// Mul wraps mat.Dense.Mul to take care of the case when one of the
// arguments is also the receiver. Since the receiver is a Matrix,
// the gonum function would compare A (a mat.Dense) with F (a Matrix) and
// would not know that internally F.Dense==A.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if a, ok := A.(*Matrix); ok {
		A = a.Dense
	}
	if b, ok := B.(*Matrix); ok {
		B = b.Dense
	}
	F.Dense.Mul(A, B)
}

// AddVec adds the vector vec to each vector of the matrix A, putting the
// result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.Vec(0)
	for i := 0; i < ar; i++ {
		a := A.Vec(i)
		F.SetVec(i, a[0]+v[0], a[1]+v[1], a[2]+v[2])
	}
}

// SubVec subtracts the vector vec from each vector of the matrix A, putting
// the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	v := vec.Vec(0)
	neg := Zeros(1)
	neg.SetVec(0, -v[0], -v[1], -v[2])
	F.AddVec(A, neg)
}

// Cross puts the cross product of the first vecs of a and b in the first vec of F. Panics if error.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() < 1 || b.NVecs() < 1 || F.NVecs() < 1 {
		panic(ErrNoCrossProduct)
	}
	x := a.Vec(0)
	y := b.Vec(0)
	F.SetVec(0, x[1]*y[2]-x[2]*y[1], x[2]*y[0]-x[0]*y[2], x[0]*y[1]-x[1]*y[0])
}

// Dot returns the dot product of the first vectors of F and B.
func (F *Matrix) Dot(B *Matrix) float64 {
	f := F.Vec(0)
	b := B.Vec(0)
	return f[0]*b[0] + f[1]*b[1] + f[2]*b[2]
}

// Norm returns the euclidean norm of F, which is meant to be a single vector.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

// Unit puts in F the vector A scaled to length 1. A zero vector is copied unchanged.
func (F *Matrix) Unit(A *Matrix) {
	if A.Dense != F.Dense {
		F.Copy(A.Dense)
	}
	norm := F.Norm()
	if norm <= appzero {
		return
	}
	F.Scale(1.0/norm, F.Dense)
}

// Centroid returns the geometric center of the vectors in F, as a 1-vector Matrix.
func (F *Matrix) Centroid() *Matrix {
	n := F.NVecs()
	ret := Zeros(1)
	if n == 0 {
		return ret
	}
	var c [3]float64
	for i := 0; i < n; i++ {
		v := F.Vec(i)
		for j := range c {
			c[j] += v[j]
		}
	}
	ret.SetVec(0, c[0]/float64(n), c[1]/float64(n), c[2]/float64(n))
	return ret
}

// BoundingBox returns two 1-vector matrices with the minimum and maximum
// coordinates of the vectors in F.
func (F *Matrix) BoundingBox() (low, high *Matrix) {
	low = Zeros(1)
	high = Zeros(1)
	n := F.NVecs()
	if n == 0 {
		return low, high
	}
	lo := F.Vec(0)
	hi := lo
	for i := 1; i < n; i++ {
		v := F.Vec(i)
		for j := 0; j < 3; j++ {
			lo[j] = math.Min(lo[j], v[j])
			hi[j] = math.Max(hi[j], v[j])
		}
	}
	low.SetVec(0, lo[0], lo[1], lo[2])
	high.SetVec(0, hi[0], hi[1], hi[2])
	return low, high
}

// Angle takes 2 vectors and calculates the angle in radians between them.
// It returns 0 if one of them has zero length.
func Angle(v1, v2 *Matrix) float64 {
	normproduct := v1.Norm() * v2.Norm()
	if normproduct <= appzero {
		return 0
	}
	argument := v1.Dot(v2) / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

// String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r+2)
	v = append(v, "\n[")
	for i := 0; i < r; i++ {
		row := F.Vec(i)
		sep := "\n"
		if i == r-1 {
			sep = ""
		}
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f%s", row[0], row[1], row[2], sep))
	}
	v = append(v, " ]")
	return strings.Join(v, "")
}
