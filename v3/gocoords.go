/*
 * gocoords.go, part of lmpdata.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//AddVec adds the 1x3 vector vec to every vector in A, putting the result in the receiver.
//The receiver can be A itself.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		f := F.VecView(i)
		j := f
		if A != F {
			j = A.VecView(i)
		}
		f.Add(j.Dense, vec.Dense)
	}
}

//SubVec subtracts the 1x3 vector vec from every vector in A, putting the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	neg := Zeros(1)
	neg.Scale(-1, vec.Dense)
	F.AddVec(A, neg)
}

//Bounds returns, for each axis, the minimum and maximum value
//of the coordinates in F.
func (F *Matrix) Bounds() (min, max [3]float64) {
	col := make([]float64, F.NVecs())
	for i := 0; i < 3; i++ {
		mat.Col(col, i, F.Dense)
		min[i] = floats.Min(col)
		max[i] = floats.Max(col)
	}
	return
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		v = append(v, fmt.Sprintf("%8.3f %8.3f %8.3f", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return "[" + strings.Join(v, "\n ") + "]"
}
