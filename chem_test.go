/*
 * chem_test.go, part of lmpdata.
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
	"math"
	"strings"
	"testing"

	v3 "github.com/rmera/lmpdata/v3"
)

const waterXYZ = `3
water
O   0.000  0.000  0.000
H   0.757  0.586  0.000
H  -0.757  0.586  0.000
`

func TestXYZRead(Te *testing.T) {
	top, coords, err := XYZRead(strings.NewReader(waterXYZ))
	if err != nil {
		Te.Fatal(err)
	}
	if top.Len() != 3 || coords.NVecs() != 3 {
		Te.Fatalf("expected 3 atoms and 3 coordinates, got %d and %d", top.Len(), coords.NVecs())
	}
	if top.Atom(1).Symbol != "H" || top.Atom(1).TypeLabel() != "H" {
		Te.Errorf("wrong symbol for atom 1: %s", top.Atom(1).Symbol)
	}
	top.Atom(1).FFLabel = "HW"
	if top.Atom(1).TypeLabel() != "HW" {
		Te.Errorf("force-field label not preferred: %s", top.Atom(1).TypeLabel())
	}
	if c := coords.Vec(2); c[0] != -0.757 {
		Te.Errorf("wrong x coordinate for atom 2: %v", c[0])
	}
}

func TestXYZReadErrors(Te *testing.T) {
	bad := []string{
		"",
		"two\n\n",
		"2\ncomment\nO 0 0 0\n",
		"1\ncomment\nO 0 zero 0\n",
	}
	for i, v := range bad {
		if _, _, err := XYZRead(strings.NewReader(v)); err == nil {
			Te.Errorf("case %d: expected an error", i)
		}
	}
}

func TestMasses(Te *testing.T) {
	m, err := MassOf("O")
	if err != nil || m != 16.0 {
		Te.Errorf("wrong oxygen mass %v (%v)", m, err)
	}
	if _, err := MassOf("Xx"); err == nil {
		Te.Errorf("expected an error for an unknown element")
	}
	top, _, _ := XYZRead(strings.NewReader(waterXYZ))
	top.Atom(0).Mass = 17.0
	ms, err := top.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	if ms[0] != 17.0 || ms[1] != 1.008 {
		Te.Errorf("wrong masses %v", ms)
	}
}

func TestFitBox(Te *testing.T) {
	top, coords, err := XYZRead(strings.NewReader(waterXYZ))
	if err != nil {
		Te.Fatal(err)
	}
	masses, _ := top.Masses()
	//The molecule does not fit in a 1 Å box along x.
	box := [3][2]float64{{0, 1}, {0, 10}, {0, 10}}
	nbox, moved, err := FitBox(coords, masses, box, false)
	if err != nil {
		Te.Fatal(err)
	}
	if !moved {
		Te.Errorf("coordinates should have been moved")
	}
	want := [3][2]float64{{0, 2}, {0, 1}, {0, MinBoxLength}}
	if nbox != want {
		Te.Errorf("wrong box %v, expected %v", nbox, want)
	}
	com, _ := MassCenter(coords, masses)
	for i := range com {
		c := (nbox[i][0] + nbox[i][1]) / 2
		if math.Abs(com[i]-c) > 1e-9 {
			Te.Errorf("center of mass %v not at the box center along %d", com, i)
		}
	}
	//A box that is large enough is kept, and nothing moves.
	big := [3][2]float64{{-10, 10}, {-10, 10}, {-10, 10}}
	before := coords.Vec(0)
	nbox, moved, _ = FitBox(coords, masses, big, false)
	if moved || nbox != big || coords.Vec(0) != before {
		Te.Errorf("box %v should have been kept", big)
	}
}

func TestBoundingBox(Te *testing.T) {
	c, _ := v3.NewMatrix([]float64{1, 2, 3, -1, 5, 0})
	b := BoundingBox(c)
	if b != [3][2]float64{{-1, 1}, {2, 5}, {0, 3}} {
		Te.Errorf("wrong bounding box %v", b)
	}
}

func TestFitBoxLinear(Te *testing.T) {
	//CO2 along x: no extent along y or z.
	c, _ := v3.NewMatrix([]float64{-1.16, 0, 0, 0, 0, 0, 1.16, 0, 0})
	box, moved, err := FitBox(c, nil, [3][2]float64{{0, 1}, {0, 1}, {0, 1}}, false)
	if err != nil {
		Te.Fatal(err)
	}
	if !moved {
		Te.Errorf("coordinates should have been moved")
	}
	for i := range box {
		if box[i][1]-box[i][0] <= 0 {
			Te.Errorf("axis %d of the box %v has no length", i, box)
		}
	}
	if v := c.Vec(1); v != [3]float64{1.5, 0.5, 0.5} {
		Te.Errorf("the center atom should be at the box center, got %v in %v", v, box)
	}
}
