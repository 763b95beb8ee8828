/*
 * v3_test.go, part of lmpdata.
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
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", A.NVecs())
	}
	if v := A.Vec(1); v != [3]float64{4, 5, 6} {
		Te.Errorf("Wrong second vector: %v", v)
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("A slice of 4 elements should not give a Nx3 matrix")
	}
}

func TestTranslateAndBounds(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, -2, 3, -1, 2, 5})
	min, max := A.Bounds()
	if min != [3]float64{-1, -2, 0} || max != [3]float64{1, 2, 5} {
		Te.Errorf("Wrong bounds: %v %v", min, max)
	}
	shift, _ := NewMatrix([]float64{1, 1, 1})
	B := Zeros(3)
	B.AddVec(A, shift)
	if v := B.Vec(2); v != [3]float64{0, 3, 6} {
		Te.Errorf("Wrong translated vector: %v", v)
	}
	B.SubVec(B, shift)
	if v := B.Vec(1); v != [3]float64{1, -2, 3} {
		Te.Errorf("Translation not reverted: %v", v)
	}
	fmt.Println(B)
}

func TestAddVecInPlace(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, -2, 3})
	shift, _ := NewMatrix([]float64{0.5, 1, -1})
	A.AddVec(A, shift)
	if v := A.Vec(0); v != [3]float64{0.5, 1, -1} {
		Te.Errorf("Wrong first vector after an in-place translation: %v", v)
	}
	if v := A.Vec(1); v != [3]float64{1.5, -1, 2} {
		Te.Errorf("Wrong second vector after an in-place translation: %v", v)
	}
	A.SubVec(A, shift)
	if v := A.Vec(1); v != [3]float64{1, -2, 3} {
		Te.Errorf("In-place translation not reverted: %v", v)
	}
}
