/*
 * geometric.go, part of lmpdata.
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

package chem

import (
	"fmt"
	"log"
	"math"

	v3 "github.com/rmera/lmpdata/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//BoundingBox returns the (min, max) pair for each axis of the given coordinates.
func BoundingBox(coords *v3.Matrix) [3][2]float64 {
	min, max := coords.Bounds()
	var box [3][2]float64
	for i := range box {
		box[i] = [2]float64{min[i], max[i]}
	}
	return box
}

//MassCenter returns the center of mass of coords, given the masses of each
//atom. If masses is nil, the geometric center is returned.
func MassCenter(coords *v3.Matrix, masses []float64) ([3]float64, error) {
	var ret [3]float64
	n := coords.NVecs()
	if masses != nil && len(masses) != n {
		return ret, fmt.Errorf("MassCenter: %d masses given for %d atoms", len(masses), n)
	}
	col := make([]float64, n)
	for i := range ret {
		mat.Col(col, i, coords.Dense)
		ret[i] = stat.Mean(col, masses)
	}
	return ret, nil
}

//MinBoxLength is the smallest length, in Å, that FitBox gives to a box axis.
const MinBoxLength = 1.0

//FitBox checks that the coordinates in coords fit in box. If they don't, a new box,
//from 0 to 1.1 times the extent of the coordinates (rounded up, and never shorter than
//MinBoxLength) along each axis, is returned and the coordinates are translated, in place,
//so their center of mass is in the center of the new box. If translate is true, the
//coordinates are centered in the box even if they fit in the original one. The box to
//be used and whether the coordinates were moved are returned.
func FitBox(coords *v3.Matrix, masses []float64, box [3][2]float64, translate bool) ([3][2]float64, bool, error) {
	bounds := BoundingBox(coords)
	fits := true
	var req, have [3]float64
	for i := range box {
		req[i] = bounds[i][1] - bounds[i][0]
		have[i] = box[i][1] - box[i][0]
		if req[i] >= have[i] {
			fits = false
		}
	}
	if !fits {
		for i := range box {
			box[i] = [2]float64{0, math.Max(math.Ceil(req[i]*1.1), MinBoxLength)}
		}
		log.Printf("Minimum required box lengths %v larger than the provided box lengths %v. Resetting the box to %v", req, have, box)
		translate = true
	}
	if !translate {
		return box, false, nil
	}
	com, err := MassCenter(coords, masses)
	if err != nil {
		return box, false, err
	}
	shift := v3.Zeros(1)
	for i := range box {
		shift.Set(0, i, (box[i][0]+box[i][1])/2-com[i])
	}
	coords.AddVec(coords, shift)
	return box, true, nil
}
