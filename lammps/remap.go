/*
 * remap.go, part of lmpdata.
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

//AtomSlot locates a global atom in its molecule: the index of its molecule
//type, the global index of the molecule, and the index of the atom within the molecule.
//All indexes are 0-based.
type AtomSlot struct {
	MolType int
	MolID   int
	Local   int
}

//Remap relates the global atom numbering of a system to its molecules.
//AtomToMol has one element per global atom. MolToAtoms[m] contains the
//global indexes of the atoms in the molecule m, in local order.
type Remap struct {
	AtomToMol  []AtomSlot
	MolToAtoms [][]int
}

//NAtoms returns the number of atoms in the system.
func (R *Remap) NAtoms() int { return len(R.AtomToMol) }

//NMols returns the number of molecules in the system.
func (R *Remap) NMols() int { return len(R.MolToAtoms) }

//NewRemap builds the remap for a system with counts[i] consecutive copies
//of mols[i], laid out in the order of mols.
func NewRemap(mols []*MolType, counts []int) (*Remap, error) {
	if len(mols) != len(counts) {
		return nil, newError(ErrMismatch, "NewRemap", "%d molecule types but %d counts", len(mols), len(counts))
	}
	natoms, nmols := 0, 0
	for i, m := range mols {
		if m == nil {
			return nil, newError(ErrMismatch, "NewRemap", "molecule type %d is nil", i)
		}
		if counts[i] < 0 || m.NAtoms < 0 {
			return nil, newError(ErrMismatch, "NewRemap", "molecule type %q: %d copies of %d atoms", m.Name, counts[i], m.NAtoms)
		}
		natoms += counts[i] * m.NAtoms
		nmols += counts[i]
	}
	R := &Remap{AtomToMol: make([]AtomSlot, 0, natoms), MolToAtoms: make([][]int, 0, nmols)}
	all := make([]int, natoms) //backing array for MolToAtoms
	g := 0
	for t, m := range mols {
		for c := 0; c < counts[t]; c++ {
			molid := len(R.MolToAtoms)
			R.MolToAtoms = append(R.MolToAtoms, all[g:g+m.NAtoms:g+m.NAtoms])
			for l := 0; l < m.NAtoms; l++ {
				all[g] = g
				R.AtomToMol = append(R.AtomToMol, AtomSlot{MolType: t, MolID: molid, Local: l})
				g++
			}
		}
	}
	return R, nil
}
