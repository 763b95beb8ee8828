/*
 * atomtypes.go, part of lmpdata.
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

	chem "github.com/rmera/lmpdata"
)

//Site is an atom of the system, as seen by the type unifier: its type label
//and its mass.
type Site struct {
	Label string
	Mass  float64
}

//AtomType is a distinct atom type in the system.
type AtomType struct {
	ID    int
	Label string
	Mass  float64
}

//SitesFrom returns the sites for the atoms in mol. The label of each site is the
//force-field label of the atom, or its element symbol if the atom has no force-field label.
//Masses are the ones mol provides.
func SitesFrom(mol chem.AtomMasser) ([]Site, error) {
	masses, err := mol.Masses()
	if err != nil {
		return nil, newError(ErrMismatch, "SitesFrom", "%s", err)
	}
	if len(masses) != mol.Len() {
		return nil, newError(ErrMismatch, "SitesFrom", "%d masses for %d atoms", len(masses), mol.Len())
	}
	sites := make([]Site, mol.Len())
	for i := range sites {
		sites[i] = Site{Label: mol.Atom(i).TypeLabel(), Mass: masses[i]}
	}
	return sites, nil
}

//Unify collects the distinct labels in sites into atom types. The types get IDs
//from 1, in order of increasing mass, with ties broken by the first appearance of the
//label in sites. If a label appears with different masses, the last one is used.
//It returns the number of sites, the number of types, the types, ordered by ID, and a map from
//label to type ID.
func Unify(sites []Site) (natoms, ntypes int, types []AtomType, lookup map[string]int) {
	first := make(map[string]int)
	for _, s := range sites {
		i, ok := first[s.Label]
		if !ok {
			first[s.Label] = len(types)
			types = append(types, s.asType())
			continue
		}
		types[i].Mass = s.Mass
	}
	sort.SliceStable(types, func(i, j int) bool { return types[i].Mass < types[j].Mass })
	lookup = make(map[string]int, len(types))
	for i := range types {
		types[i].ID = i + 1
		lookup[types[i].Label] = i + 1
	}
	return len(sites), len(types), types, lookup
}

func (s Site) asType() AtomType {
	return AtomType{Label: s.Label, Mass: s.Mass}
}
