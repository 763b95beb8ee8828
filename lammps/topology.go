/*
 * topology.go, part of lmpdata.
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

import "fmt"

//Term is a bonded term of a molecule: the local (0-based) indexes of its atoms
//and the key used to find its parameters.
type Term struct {
	Atoms []int `json:"atoms"`
	Key   Key   `json:"key"`
}

//Topology contains the bonded terms of a molecule type, per category,
//and, optionally, the partial charges of its atoms.
type Topology struct {
	Terms   map[Category][]Term
	Charges []float64 //nil or empty if the topology has no charges.
}

//terms returns the terms of T in the category cat. It can be called on a nil Topology.
func (T *Topology) terms(cat Category) []Term {
	if T == nil || T.Terms == nil {
		return nil
	}
	return T.Terms[cat]
}

//charge returns the charge of the atom with local index i, or 0 if the
//topology has no charges.
func (T *Topology) charge(i int) float64 {
	if T == nil || len(T.Charges) == 0 {
		return 0
	}
	return T.Charges[i]
}

//MolType is a molecule type: a template that is repeated a number of times in the system.
type MolType struct {
	Name   string
	NAtoms int
	Labels []string //the type label of each atom. Optional.
	Top    *Topology
}

//Validate checks that the terms and charges of M are consistent with its number of atoms.
//It returns an error wrapping ErrTopology otherwise.
func (M *MolType) Validate() error {
	if M.NAtoms < 0 {
		return newError(ErrTopology, "Validate", "molecule %q has %d atoms", M.Name, M.NAtoms)
	}
	if len(M.Labels) != 0 && len(M.Labels) != M.NAtoms {
		return newError(ErrTopology, "Validate", "molecule %q has %d labels for %d atoms", M.Name, len(M.Labels), M.NAtoms)
	}
	if M.Top == nil {
		return nil
	}
	if c := len(M.Top.Charges); c != 0 && c != M.NAtoms {
		return newError(ErrTopology, "Validate", "molecule %q has %d charges for %d atoms", M.Name, c, M.NAtoms)
	}
	for cat, terms := range M.Top.Terms {
		if cat == Pair || !cat.Valid() {
			return newError(ErrTopology, "Validate", "molecule %q has terms of category %s", M.Name, cat)
		}
		for i, t := range terms {
			if err := M.checkTerm(cat, t); err != nil {
				err.Decorate(fmt.Sprintf("term %d", i))
				return err
			}
		}
	}
	return nil
}

func (M *MolType) checkTerm(cat Category, t Term) *Error {
	if len(t.Atoms) != cat.Arity() {
		return newError(ErrTopology, "Validate", "molecule %q: %s term with %d atoms", M.Name, cat, len(t.Atoms))
	}
	if t.Key.Len() != cat.Arity() {
		return newError(ErrTopology, "Validate", "molecule %q: %s term with key %s", M.Name, cat, t.Key)
	}
	for _, a := range t.Atoms {
		if a < 0 || a >= M.NAtoms {
			return newError(ErrTopology, "Validate", "molecule %q: %s term refers to atom %d, but the molecule has %d atoms", M.Name, cat, a, M.NAtoms)
		}
	}
	return nil
}
