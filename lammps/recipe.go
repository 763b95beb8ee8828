/*
 * recipe.go, part of lmpdata.
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
	"encoding/json"
	"os"
	"path/filepath"

	chem "github.com/rmera/lmpdata"
)

//Recipe describes a system to be assembled: a force field, the molecule types,
//the number of copies of each, and an XYZ file with the coordinates of the whole system.
type Recipe struct {
	Title      string      `json:"title"`
	Box        Box         `json:"box"`
	Tilt       *[3]float64 `json:"tilt,omitempty"`
	FitBox     bool        `json:"fit_box"`
	ForceField FF          `json:"forcefield"`
	Molecules  []RecipeMol `json:"molecules"`
	Counts     []int       `json:"counts"`
	XYZ        string      `json:"xyz"` //relative to the recipe file, unless absolute.
}

//RecipeMol is a molecule type in a Recipe. If NAtoms is zero, it is taken
//from the number of labels or, if there are no labels, from the number of charges.
type RecipeMol struct {
	Name      string    `json:"name"`
	NAtoms    int       `json:"natoms,omitempty"`
	Labels    []string  `json:"labels,omitempty"`
	Charges   []float64 `json:"charges,omitempty"`
	Bonds     []Term    `json:"bonds,omitempty"`
	Angles    []Term    `json:"angles,omitempty"`
	Dihedrals []Term    `json:"dihedrals,omitempty"`
	Impropers []Term    `json:"impropers,omitempty"`
}

//MolType returns the molecule type described by R.
func (R *RecipeMol) MolType() *MolType {
	n := R.NAtoms
	if n == 0 {
		n = len(R.Labels)
	}
	if n == 0 {
		n = len(R.Charges)
	}
	terms := make(map[Category][]Term)
	for cat, t := range map[Category][]Term{Bond: R.Bonds, Angle: R.Angles, Dihedral: R.Dihedrals, Improper: R.Impropers} {
		if len(t) > 0 {
			terms[cat] = t
		}
	}
	return &MolType{Name: R.Name, NAtoms: n, Labels: R.Labels, Top: &Topology{Terms: terms, Charges: R.Charges}}
}

//LoadRecipe reads the JSON recipe in the file name, and the XYZ file it refers to,
//and returns the corresponding Input.
func LoadRecipe(name string) (*Input, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{message: err.Error(), filename: name, deco: []string{"LoadRecipe"}, critical: true, kind: ErrIO}
	}
	defer f.Close()
	R := new(Recipe)
	if err := json.NewDecoder(f).Decode(R); err != nil {
		return nil, &Error{message: "can't decode recipe: " + err.Error(), filename: name, deco: []string{"LoadRecipe"}, critical: true, kind: ErrSyntax}
	}
	in, err := R.Input(filepath.Dir(name))
	if err != nil {
		return nil, errDecorate(withFile(err, name), "LoadRecipe")
	}
	return in, nil
}

//Input reads the XYZ file of the recipe, with relative paths taken from dir,
//and returns the corresponding Input. Atoms are labeled with the labels of their
//molecule types, when given, and with their element symbols otherwise.
//If R.FitBox is true, the box is grown, if needed, to fit the coordinates, which are
//then centered in the box.
func (R *Recipe) Input(dir string) (*Input, error) {
	if R.XYZ == "" {
		return nil, newError(ErrMismatch, "Input", "the recipe gives no coordinates file")
	}
	if len(R.Molecules) != len(R.Counts) {
		return nil, newError(ErrMismatch, "Input", "%d molecule types but %d counts", len(R.Molecules), len(R.Counts))
	}
	path := R.XYZ
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	top, coords, err := chem.XYZFileRead(path)
	if err != nil {
		return nil, newError(ErrIO, "Input", "%s", err)
	}
	mols := make([]*MolType, len(R.Molecules))
	natoms := 0
	for i := range R.Molecules {
		mols[i] = R.Molecules[i].MolType()
		natoms += mols[i].NAtoms * R.Counts[i]
	}
	if natoms != top.Len() {
		return nil, newError(ErrMismatch, "Input", "the molecules have %d atoms, but %s has %d", natoms, R.XYZ, top.Len())
	}
	g := 0
	for i, m := range mols {
		for c := 0; c < R.Counts[i]; c++ {
			for l := 0; l < m.NAtoms; l++ {
				at := top.Atom(g)
				at.MolID = c + 1
				at.MolName = m.Name
				if len(m.Labels) > l {
					at.FFLabel = m.Labels[l]
				}
				g++
			}
		}
	}
	sites, err := SitesFrom(top)
	if err != nil {
		return nil, errDecorate(err, "Input")
	}
	box := R.Box
	if R.FitBox {
		masses := make([]float64, len(sites))
		for i, s := range sites {
			masses[i] = s.Mass
		}
		nb, _, err := chem.FitBox(coords, masses, [3][2]float64(box), false)
		if err != nil {
			return nil, newError(ErrMismatch, "Input", "%s", err)
		}
		box = Box(nb)
	}
	return &Input{
		Title:  R.Title,
		Box:    box,
		Tilt:   R.Tilt,
		FF:     &R.ForceField,
		Mols:   mols,
		Counts: R.Counts,
		Sites:  sites,
		Coords: coords,
	}, nil
}
