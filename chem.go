/*
 * chem.go, part of lmpdata.
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

import "fmt"

//Atom contains the information of one atom, except for the coordinates,
//which are kept in a v3.Matrix.
type Atom struct {
	Name    string
	ID      int
	MolID   int
	MolName string
	Symbol  string
	FFLabel string //force-field atom type, if assigned. Empty otherwise.
	Mass    float64
	Charge  float64
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := *A
	return &N
}

//TypeLabel returns the label that identifies the atom's
//type: The force-field label, if any, or the element symbol otherwise.
func (A *Atom) TypeLabel() string {
	if A.FFLabel != "" {
		return A.FFLabel
	}
	return A.Symbol
}

//Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates)
type Topology struct {
	Atoms []*Atom
}

//NewTopology returns a topology with the given atoms. The slice is used, not copied.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, fmt.Errorf("Supplied a nil atom slice")
	}
	return &Topology{Atoms: ats}, nil
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//Masses returns a slice with the masses of all atoms in the topology.
//For atoms with a zero mass, the mass is taken from the element symbol.
//It returns an error if that is not possible for some atom.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i, at := range T.Atoms {
		if at.Mass != 0 {
			mass[i] = at.Mass
			continue
		}
		m, err := MassOf(at.Symbol)
		if err != nil {
			return nil, fmt.Errorf("Masses: atom %d: %w", i, err)
		}
		mass[i] = m
	}
	return mass, nil
}

//Copy returns a deep copy of the topology
func (T *Topology) Copy() *Topology {
	N := &Topology{Atoms: make([]*Atom, T.Len())}
	for i, v := range T.Atoms {
		N.Atoms[i] = v.Copy()
	}
	return N
}
