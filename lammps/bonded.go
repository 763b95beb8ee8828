/*
 * bonded.go, part of lmpdata.
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

//Bonded is a row of the Bonds, Angles, Dihedrals or Impropers sections.
//Atoms contains 1-based global atom IDs.
type Bonded struct {
	ID    int
	Type  int
	Atoms []int
}

//Skip records a bonded term that was left out of the system because
//no parameters were found for it, in either direction.
type Skip struct {
	Category Category
	Key      Key
	Reverse  Key
	MolType  int //index of the molecule type
	MolID    int //0-based global molecule index
	Local    int //index of the term in its molecule type
}

func (S Skip) String() string {
	return fmt.Sprintf("%s %s or %s not available (molecule %d, term %d)", S.Category, S.Key, S.Reverse, S.MolID+1, S.Local)
}

//resolveState is the state of the fold that numbers the bonded terms of a category.
//next is the 1-based position of the last term seen, and skipped the number of
//terms skipped so far.
type resolveState struct {
	next    int
	skipped int
}

//step advances the state over one term. If the term was resolved, the returned
//ID is its position minus the skips so far. Otherwise, the term is counted as skipped
//and the returned ID is 0.
func (s resolveState) step(resolved bool) (resolveState, int) {
	s.next++
	if !resolved {
		s.skipped++
		return s, 0
	}
	return s, s.next - s.skipped
}

//lookupKey finds the type of key in lookup, trying the key first, and its reverse after.
func lookupKey(lookup map[Key]int, key Key) (int, bool) {
	if t, ok := lookup[key]; ok {
		return t, true
	}
	t, ok := lookup[key.Reverse()]
	return t, ok
}

//Resolve returns the bonded records of category cat for the system with counts[i] copies
//of mols[i], laid out as in r. Terms are visited by molecule type, then by copy, then in
//the order of the topology. Terms without parameters in lookup (in either direction)
//are skipped and reported, and the IDs of the records stay consecutive.
//A malformed topology gives an error wrapping ErrTopology.
func Resolve(cat Category, lookup map[Key]int, mols []*MolType, counts []int, r *Remap) ([]Bonded, []Skip, error) {
	if cat == Pair || !cat.Valid() {
		return nil, nil, newError(ErrUnknownCategory, "Resolve", "%s is not a bonded category", cat)
	}
	if len(mols) != len(counts) {
		return nil, nil, newError(ErrMismatch, "Resolve", "%d molecule types but %d counts", len(mols), len(counts))
	}
	for j, m := range mols {
		if m == nil {
			return nil, nil, newError(ErrMismatch, "Resolve", "molecule type %d is nil", j)
		}
		for i, t := range m.Top.terms(cat) {
			if err := m.checkTerm(cat, t); err != nil {
				err.Decorate(fmt.Sprintf("term %d", i))
				err.Decorate("Resolve")
				return nil, nil, err
			}
		}
	}
	var recs []Bonded
	var skips []Skip
	var state resolveState
	molid := 0
	for t, m := range mols {
		terms := m.Top.terms(cat)
		for c := 0; c < counts[t]; c, molid = c+1, molid+1 {
			if len(terms) == 0 {
				continue
			}
			if molid >= r.NMols() {
				return nil, nil, newError(ErrMismatch, "Resolve", "the remap has %d molecules, more are needed", r.NMols())
			}
			global := r.MolToAtoms[molid]
			if len(global) != m.NAtoms {
				return nil, nil, newError(ErrMismatch, "Resolve", "molecule %d has %d atoms in the remap, but type %q has %d", molid, len(global), m.Name, m.NAtoms)
			}
			for l, term := range terms {
				typ, ok := lookupKey(lookup, term.Key)
				var id int
				state, id = state.step(ok)
				if !ok {
					s := Skip{Category: cat, Key: term.Key, Reverse: term.Key.Reverse(), MolType: t, MolID: molid, Local: l}
					logger.Warnf("%s", s)
					skips = append(skips, s)
					continue
				}
				b := Bonded{ID: id, Type: typ, Atoms: make([]int, len(term.Atoms))}
				for i, a := range term.Atoms {
					b.Atoms[i] = global[a] + 1
				}
				recs = append(recs, b)
			}
		}
	}
	return recs, skips, nil
}
