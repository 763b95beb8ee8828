/*
 * atoms.go, part of lmpdata.
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

//AtomRecord is a row of the Atoms section. IDs, molecule IDs and types are 1-based.
//Image is nil if the row has no image flags.
type AtomRecord struct {
	ID     int
	MolID  int
	Type   int
	Charge float64
	X      float64
	Y      float64
	Z      float64
	Image  *[3]int
}

//EmitAtoms returns the atom records for the system described by sites, coords and r.
//The type of each atom is taken from lookup, using the label of its site, and its charge
//from the topology of its molecule type, or zero if the topology has no charges.
func EmitAtoms(sites []Site, coords *v3.Matrix, lookup map[string]int, mols []*MolType, r *Remap) ([]AtomRecord, error) {
	n := r.NAtoms()
	if len(sites) != n {
		return nil, newError(ErrMismatch, "EmitAtoms", "%d sites for %d atoms in the molecules", len(sites), n)
	}
	if coords == nil || coords.NVecs() != n {
		nc := 0
		if coords != nil {
			nc = coords.NVecs()
		}
		return nil, newError(ErrMismatch, "EmitAtoms", "%d coordinates for %d atoms", nc, n)
	}
	recs := make([]AtomRecord, n)
	for g, slot := range r.AtomToMol {
		t, ok := lookup[sites[g].Label]
		if !ok {
			return nil, newError(ErrMismatch, "EmitAtoms", "atom %d has label %q, which is not an atom type", g, sites[g].Label)
		}
		top := mols[slot.MolType].Top
		if top != nil && len(top.Charges) != 0 && len(top.Charges) <= slot.Local {
			return nil, newError(ErrTopology, "EmitAtoms", "molecule %q has %d charges", mols[slot.MolType].Name, len(top.Charges))
		}
		c := coords.Vec(g)
		recs[g] = AtomRecord{
			ID:     g + 1,
			MolID:  slot.MolID + 1,
			Type:   t,
			Charge: top.charge(slot.Local),
			X:      c[0],
			Y:      c[1],
			Z:      c[2],
		}
	}
	return recs, nil
}
