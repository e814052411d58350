/*
 * handy.go, part of chemreason.
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

import "math"

// Point is a position in 2D or 3D space. 2D positions have Z=0.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Dist returns the euclidean distance between P and Q.
func (P Point) Dist(Q Point) float64 {
	return math.Sqrt((P.X-Q.X)*(P.X-Q.X) + (P.Y-Q.Y)*(P.Y-Q.Y) + (P.Z-Q.Z)*(P.Z-Q.Z))
}

// Add returns P+Q.
func (P Point) Add(Q Point) Point {
	return Point{P.X + Q.X, P.Y + Q.Y, P.Z + Q.Z}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}
