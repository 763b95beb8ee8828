/*
 * data.go, part of lmpdata.
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
	"fmt"
	"sort"
)

//Box contains the lower and upper bounds of the simulation box along x, y and z.
type Box [3][2]float64

//Mass is a row of the Masses section.
type Mass struct {
	Type  int
	Value float64
}

//Section is a data file section that is kept only as rows of numbers, such as Velocities.
type Section struct {
	Name string //as it appeared in the file, without comments.
	Rows [][]float64
}

//AtomStyle is the LAMMPS atom style, which determines the columns of the Atoms section.
type AtomStyle string

const (
	StyleFull      AtomStyle = "full"
	StyleMolecular AtomStyle = "molecular"
	StyleCharge    AtomStyle = "charge"
	StyleAtomic    AtomStyle = "atomic"
)

//Data is a LAMMPS data file.
type Data struct {
	Title string
	Box   Box
	Tilt  *[3]float64 //xy, xz, yz. nil for orthogonal boxes.
	Style AtomStyle   //StyleFull if empty.

	Masses         []Mass
	PairCoeffs     []Coeff
	BondCoeffs     []Coeff
	AngleCoeffs    []Coeff
	DihedralCoeffs []Coeff
	ImproperCoeffs []Coeff

	Atoms     []AtomRecord
	Bonds     []Bonded
	Angles    []Bonded
	Dihedrals []Bonded
	Impropers []Bonded

	Extra []Section

	//TypeLabels contains the label of each atom type (index ID-1), when known.
	TypeLabels []string

	//Counts and TypeCounts contain the values read from the header of a file
	//("atoms": 10, ..., "atom": 2, "bond": 1, ...). They are not used when writing.
	Counts     map[string]int
	TypeCounts map[string]int
}

//Coeffs returns the coefficient table for cat.
func (D *Data) Coeffs(cat Category) []Coeff {
	switch cat {
	case Pair:
		return D.PairCoeffs
	case Bond:
		return D.BondCoeffs
	case Angle:
		return D.AngleCoeffs
	case Dihedral:
		return D.DihedralCoeffs
	case Improper:
		return D.ImproperCoeffs
	}
	return nil
}

//SetCoeffs sets the coefficient table for cat.
func (D *Data) SetCoeffs(cat Category, c []Coeff) {
	switch cat {
	case Pair:
		D.PairCoeffs = c
	case Bond:
		D.BondCoeffs = c
	case Angle:
		D.AngleCoeffs = c
	case Dihedral:
		D.DihedralCoeffs = c
	case Improper:
		D.ImproperCoeffs = c
	}
}

//Terms returns the bonded records for cat, which should be a bonded category.
func (D *Data) Terms(cat Category) []Bonded {
	switch cat {
	case Bond:
		return D.Bonds
	case Angle:
		return D.Angles
	case Dihedral:
		return D.Dihedrals
	case Improper:
		return D.Impropers
	}
	return nil
}

//SetTerms sets the bonded records for cat, which should be a bonded category.
func (D *Data) SetTerms(cat Category, b []Bonded) {
	switch cat {
	case Bond:
		D.Bonds = b
	case Angle:
		D.Angles = b
	case Dihedral:
		D.Dihedrals = b
	case Improper:
		D.Impropers = b
	}
}

//NAtomTypes returns the number of atom types in the system.
func (D *Data) NAtomTypes() int {
	return len(D.Masses)
}

//Check returns a list of inconsistencies in D, such as header counts that don't
//match the number of rows read, or records that refer to types or atoms that don't exist.
//An empty list means no problems were found.
func (D *Data) Check() []string {
	var warn []string
	wf := func(format string, a ...interface{}) { warn = append(warn, fmt.Sprintf(format, a...)) }
	if n, ok := D.Counts["atoms"]; ok && n != len(D.Atoms) {
		wf("header declares %d atoms, %d found", n, len(D.Atoms))
	}
	if n, ok := D.TypeCounts["atom"]; ok && n != D.NAtomTypes() {
		wf("header declares %d atom types, %d masses found", n, D.NAtomTypes())
	}
	for _, cat := range BondedCategories {
		if n, ok := D.Counts[cat.plural()]; ok && n != len(D.Terms(cat)) {
			wf("header declares %d %s, %d found", n, cat.plural(), len(D.Terms(cat)))
		}
		if n, ok := D.TypeCounts[cat.String()]; ok && n != len(D.Coeffs(cat)) && len(D.Coeffs(cat)) != 0 {
			wf("header declares %d %s types, %d coefficients found", n, cat, len(D.Coeffs(cat)))
		}
	}
	ntypes := D.NAtomTypes()
	if n, ok := D.TypeCounts["atom"]; ok && n > ntypes {
		ntypes = n
	}
	for _, a := range D.Atoms {
		if a.Type < 1 || a.Type > ntypes {
			wf("atom %d has type %d, but there are %d atom types", a.ID, a.Type, ntypes)
		}
	}
	ids := make(map[int]bool, len(D.Atoms))
	for _, a := range D.Atoms {
		if ids[a.ID] {
			wf("atom ID %d is repeated", a.ID)
		}
		ids[a.ID] = true
	}
	for _, cat := range BondedCategories {
		ntypes := len(D.Coeffs(cat))
		if n, ok := D.TypeCounts[cat.String()]; ok && n > ntypes {
			ntypes = n
		}
		for _, b := range D.Terms(cat) {
			if b.Type < 1 || b.Type > ntypes {
				wf("%s %d has type %d, but there are %d %s types", cat, b.ID, b.Type, ntypes, cat)
			}
			for _, at := range b.Atoms {
				if !ids[at] {
					wf("%s %d refers to atom %d, which doesn't exist", cat, b.ID, at)
				}
			}
		}
	}
	return warn
}

//TypePopulation returns the number of atoms of each atom type. The keys
//of the map are type IDs.
func (D *Data) TypePopulation() map[int]int {
	p := make(map[int]int)
	for _, a := range D.Atoms {
		p[a.Type]++
	}
	return p
}

//TermPopulation returns the number of bonded records of each type in the category cat.
func (D *Data) TermPopulation(cat Category) map[int]int {
	p := make(map[int]int)
	for _, b := range D.Terms(cat) {
		p[b.Type]++
	}
	return p
}

//SortedIDs returns the keys of a population map, in increasing order.
func SortedIDs(pop map[int]int) []int {
	ids := make([]int, 0, len(pop))
	for k := range pop {
		ids = append(ids, k)
	}
	sort.Ints(ids)
	return ids
}
