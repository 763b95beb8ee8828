/*
 * forcefield.go, part of lmpdata.
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
	"sort"
)

//Param is one entry of a force-field parameter table: the
//atom-type labels it applies to, and its numeric coefficients.
type Param struct {
	Key    Key       `json:"key"`
	Values []float64 `json:"values"`
}

//ForceFielder is the interface for force fields. Params returns the ordered
//parameter table for the category, and an error wrapping ErrUnknownCategory
//if the force field does not provide that category.
type ForceFielder interface {
	Params(cat Category) ([]Param, error)
}

//FF is a force field given as one ordered table per category.
type FF struct {
	Pairs     []Param `json:"pairs"`
	Bonds     []Param `json:"bonds"`
	Angles    []Param `json:"angles"`
	Dihedrals []Param `json:"dihedrals"`
	Impropers []Param `json:"impropers"`

	//Supported, if not nil, restricts the categories the force field exposes.
	Supported []Category `json:"-"`
}

//Params returns the parameter table for cat. A nil FF has empty tables.
func (F *FF) Params(cat Category) ([]Param, error) {
	if !cat.Valid() {
		return nil, newError(ErrUnknownCategory, "Params", "%s", cat)
	}
	if F == nil {
		return nil, nil
	}
	if F.Supported != nil {
		found := false
		for _, v := range F.Supported {
			if v == cat {
				found = true
				break
			}
		}
		if !found {
			return nil, newError(ErrUnknownCategory, "Params", "the force field doesn't provide %s parameters", cat)
		}
	}
	switch cat {
	case Pair:
		return F.Pairs, nil
	case Bond:
		return F.Bonds, nil
	case Angle:
		return F.Angles, nil
	case Dihedral:
		return F.Dihedrals, nil
	}
	return F.Impropers, nil
}

//Coeff is a row of a coefficient table: a type ID and its coefficients.
type Coeff struct {
	ID     int
	Values []float64
}

//BuildCoeffs builds the coefficient table for the category cat from the force field ff.
//For Pair, the ID of each entry is the atom-type ID (from types) of the first label of
//its key, and the table is sorted by ID. For the other categories, IDs are assigned
//from 1 in the order of the force-field table, and a lookup from key to ID is also returned.
//Repeated keys (or, for Pair, repeated atom types) keep their first entry.
//A nil ff gives an empty table. A category not provided by ff returns an error wrapping ErrUnknownCategory.
func BuildCoeffs(ff ForceFielder, cat Category, types map[string]int) ([]Coeff, map[Key]int, error) {
	if !cat.Valid() {
		return nil, nil, newError(ErrUnknownCategory, "BuildCoeffs", "%s", cat)
	}
	var params []Param
	if ff != nil {
		var err error
		params, err = ff.Params(cat)
		if err != nil {
			return nil, nil, errDecorate(err, "BuildCoeffs")
		}
	}
	if cat == Pair {
		return pairCoeffs(params, types)
	}
	table := make([]Coeff, 0, len(params))
	lookup := make(map[Key]int, len(params))
	for _, p := range params {
		if p.Key.Len() != cat.Arity() {
			return nil, nil, newError(ErrMismatch, "BuildCoeffs", "%s parameter %s has %d labels, expected %d", cat, p.Key, p.Key.Len(), cat.Arity())
		}
		if _, ok := lookup[p.Key]; ok {
			continue
		}
		id := len(table) + 1
		lookup[p.Key] = id
		table = append(table, Coeff{ID: id, Values: copyFloats(p.Values)})
	}
	return table, lookup, nil
}

func pairCoeffs(params []Param, types map[string]int) ([]Coeff, map[Key]int, error) {
	table := make([]Coeff, 0, len(params))
	seen := make(map[int]bool, len(params))
	for _, p := range params {
		if p.Key.Len() == 0 {
			return nil, nil, newError(ErrMismatch, "BuildCoeffs", "pair parameter with an empty key")
		}
		id, ok := types[p.Key.First()]
		if !ok {
			return nil, nil, newError(ErrMismatch, "BuildCoeffs", "pair parameter for %q, which is not an atom type of the system", p.Key.First())
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		table = append(table, Coeff{ID: id, Values: copyFloats(p.Values)})
	}
	sort.SliceStable(table, func(i, j int) bool { return table[i].ID < table[j].ID })
	return table, nil, nil
}

func copyFloats(f []float64) []float64 {
	r := make([]float64, len(f))
	copy(r, f)
	return r
}
