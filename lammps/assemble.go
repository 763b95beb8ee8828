/*
 * assemble.go, part of lmpdata.
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
	v3 "github.com/rmera/lmpdata/v3"
)

//DefaultTitle is the title used for data files built without one.
const DefaultTitle = "LAMMPS data file generated by lmpdata"

//Input contains everything needed to assemble a data file: the force field,
//the molecule types and the number of copies of each, and the sites and coordinates
//of all the atoms in the system, in the order given by the molecule types and counts.
type Input struct {
	Title  string
	Box    Box
	Tilt   *[3]float64
	FF     ForceFielder
	Mols   []*MolType
	Counts []int
	Sites  []Site
	Coords *v3.Matrix
}

//Report contains the non-fatal problems found while assembling a data file.
type Report struct {
	Skipped []Skip
}

//Assemble builds a data file from in. Terms without parameters are
//skipped and listed in the returned Report. Any other problem gives an error.
func Assemble(in *Input) (*Data, *Report, error) {
	for _, m := range in.Mols {
		if m == nil {
			continue //caught by NewRemap
		}
		if err := m.Validate(); err != nil {
			return nil, nil, errDecorate(err, "Assemble")
		}
	}
	_, _, types, tlookup := Unify(in.Sites)
	D := &Data{Title: in.Title, Box: in.Box, Tilt: copyTilt(in.Tilt), Style: StyleFull}
	if D.Title == "" {
		D.Title = DefaultTitle
	}
	D.Masses, D.TypeLabels = massesOf(types)
	lookups := make(map[Category]map[Key]int, len(BondedCategories))
	for _, cat := range Categories {
		table, lookup, err := BuildCoeffs(in.FF, cat, tlookup)
		if err != nil {
			return nil, nil, errDecorate(err, "Assemble")
		}
		D.SetCoeffs(cat, table)
		lookups[cat] = lookup
	}
	r, err := NewRemap(in.Mols, in.Counts)
	if err != nil {
		return nil, nil, errDecorate(err, "Assemble")
	}
	D.Atoms, err = EmitAtoms(in.Sites, in.Coords, tlookup, in.Mols, r)
	if err != nil {
		return nil, nil, errDecorate(err, "Assemble")
	}
	rep := new(Report)
	for _, cat := range BondedCategories {
		recs, skips, err := Resolve(cat, lookups[cat], in.Mols, in.Counts, r)
		if err != nil {
			return nil, nil, errDecorate(err, "Assemble")
		}
		D.SetTerms(cat, recs)
		rep.Skipped = append(rep.Skipped, skips...)
	}
	if len(rep.Skipped) > 0 {
		logger.Infof("%d bonded terms skipped for lack of parameters", len(rep.Skipped))
	}
	return D, rep, nil
}

//FromAtoms builds a data file with only masses and atoms, for a system
//without a force field. All atoms are placed in molecule 1. charges can be nil,
//in which case all charges are zero.
func FromAtoms(title string, box Box, sites []Site, charges []float64, coords *v3.Matrix) (*Data, error) {
	if charges != nil && len(charges) != len(sites) {
		return nil, newError(ErrMismatch, "FromAtoms", "%d charges for %d sites", len(charges), len(sites))
	}
	mol := &MolType{Name: "system", NAtoms: len(sites), Top: &Topology{Charges: charges}}
	r, err := NewRemap([]*MolType{mol}, []int{1})
	if err != nil {
		return nil, errDecorate(err, "FromAtoms")
	}
	_, _, types, lookup := Unify(sites)
	D := &Data{Title: title, Box: box, Style: StyleFull}
	if D.Title == "" {
		D.Title = DefaultTitle
	}
	D.Masses, D.TypeLabels = massesOf(types)
	D.Atoms, err = EmitAtoms(sites, coords, lookup, []*MolType{mol}, r)
	if err != nil {
		return nil, errDecorate(err, "FromAtoms")
	}
	return D, nil
}

func massesOf(types []AtomType) ([]Mass, []string) {
	m := make([]Mass, len(types))
	l := make([]string, len(types))
	for i, t := range types {
		m[i] = Mass{Type: t.ID, Value: t.Mass}
		l[i] = t.Label
	}
	return m, l
}

func copyTilt(t *[3]float64) *[3]float64 {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
