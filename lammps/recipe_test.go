/*
 * recipe_test.go, part of lmpdata.
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
package lammps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

const methaneXYZ = `5
methane
C   0.000   0.000   0.000
H   0.629   0.629   0.629
H  -0.629  -0.629   0.629
H  -0.629   0.629  -0.629
H   0.629  -0.629  -0.629
`

const methaneRecipe = `{
  "title": "methane",
  "box": [[0, 1], [0, 1], [0, 1]],
  "fit_box": %s,
  "forcefield": {
    "pairs": [{"key": ["CT"], "values": [0.066, 3.5]}, {"key": ["HC"], "values": [0.03, 2.5]}],
    "bonds": [{"key": ["CT", "HC"], "values": [340, 1.09]}],
    "angles": [{"key": ["HC", "CT", "HC"], "values": [33, 107.8]}]
  },
  "molecules": [{
    "name": "CH4",
    "labels": ["CT", "HC", "HC", "HC", "HC"],
    "charges": [-0.24, 0.06, 0.06, 0.06, 0.06],
    "bonds": [{"atoms": [1, 0], "key": ["HC", "CT"]}, {"atoms": [0, 2], "key": ["CT", "HC"]},
              {"atoms": [0, 3], "key": ["CT", "HC"]}, {"atoms": [0, 4], "key": ["CT", "HC"]}],
    "angles": [{"atoms": [1, 0, 2], "key": ["HC", "CT", "HC"]}, {"atoms": [1, 0, 3], "key": ["HC", "CT", "HC"]}],
    "dihedrals": [{"atoms": [1, 0, 2, 3], "key": ["HC", "CT", "HC", "HC"]}]
  }],
  "counts": [1],
  "xyz": "methane.xyz"
}`

func writeRecipe(Te *testing.T, fit string) string {
	dir := Te.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "methane.xyz"), []byte(methaneXYZ), 0644); err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(dir, "methane.json")
	if err := os.WriteFile(name, []byte(fmt.Sprintf(methaneRecipe, fit)), 0644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestLoadRecipe(Te *testing.T) {
	withTestLogger(Te)
	in, err := LoadRecipe(writeRecipe(Te, "false"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(in.Sites) != 5 || in.Sites[0].Label != "CT" || in.Sites[1].Label != "HC" || in.Sites[1].Mass != 1.008 {
		Te.Errorf("wrong sites %v", in.Sites)
	}
	if in.Box != (Box{{0, 1}, {0, 1}, {0, 1}}) {
		Te.Errorf("the box should not change without fit_box: %v", in.Box)
	}
	D, rep, err := Assemble(in)
	if err != nil {
		Te.Fatal(err)
	}
	if len(D.Bonds) != 4 || len(D.Angles) != 2 || len(D.Dihedrals) != 0 || len(rep.Skipped) != 1 {
		Te.Errorf("wrong terms: %d bonds, %d angles, %d dihedrals, %d skipped", len(D.Bonds), len(D.Angles), len(D.Dihedrals), len(rep.Skipped))
	}
	if D.Atoms[0].Charge != -0.24 || D.Atoms[0].Type != 2 || D.Atoms[1].Type != 1 {
		Te.Errorf("wrong atom records %+v", D.Atoms[:2])
	}
	if D.Bonds[0].Atoms[0] != 2 || D.Bonds[0].Atoms[1] != 1 {
		Te.Errorf("wrong first bond %+v", D.Bonds[0])
	}
}

func TestLoadRecipeFitBox(Te *testing.T) {
	in, err := LoadRecipe(writeRecipe(Te, "true"))
	if err != nil {
		Te.Fatal(err)
	}
	want := Box{{0, 2}, {0, 2}, {0, 2}}
	if in.Box != want {
		Te.Errorf("wrong fitted box %v, expected %v", in.Box, want)
	}
	c := in.Coords.Vec(0)
	for i := range c {
		if c[i] < 0.999 || c[i] > 1.001 {
			Te.Errorf("the carbon should be at the box center: %v", c)
		}
	}
}

func TestRecipeErrors(Te *testing.T) {
	R := &Recipe{XYZ: "methane.xyz", Molecules: []RecipeMol{{Name: "CH4", Labels: []string{"CT"}}}, Counts: []int{1}}
	name := writeRecipe(Te, "false")
	if _, err := R.Input(filepath.Dir(name)); !errors.Is(err, ErrMismatch) {
		Te.Errorf("a wrong number of atoms should fail, got %v", err)
	}
	R.XYZ = ""
	if _, err := R.Input(filepath.Dir(name)); !errors.Is(err, ErrMismatch) {
		Te.Errorf("a recipe without coordinates should fail, got %v", err)
	}
	bad := filepath.Join(filepath.Dir(name), "bad.json")
	os.WriteFile(bad, []byte(`{"counts": "two"}`), 0644)
	if _, err := LoadRecipe(bad); !errors.Is(err, ErrSyntax) {
		Te.Errorf("an invalid recipe should fail, got %v", err)
	}
}
