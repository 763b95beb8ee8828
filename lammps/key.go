/*
 * key.go, part of lmpdata.
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
	"fmt"
	"strings"
)

//MaxKeyLen is the largest number of atom labels in a Key.
const MaxKeyLen = 4

//Key is an ordered tuple of 1 to MaxKeyLen atom-type labels, identifying
//a force-field term (an atom type, a bond type, etc). Keys are comparable,
//so they can be used as map keys.
type Key struct {
	labels [MaxKeyLen]string
	n      int
}

//NewKey returns a Key with the given labels. It panics if no labels,
//or more than MaxKeyLen labels are given.
func NewKey(labels ...string) Key {
	if len(labels) == 0 || len(labels) > MaxKeyLen {
		panic(fmt.Sprintf("NewKey: a key needs between 1 and %d labels, got %d", MaxKeyLen, len(labels)))
	}
	var k Key
	k.n = copy(k.labels[:], labels)
	return k
}

//Len returns the number of labels in the key.
func (k Key) Len() int { return k.n }

//Labels returns a new slice with the labels of the key.
func (k Key) Labels() []string {
	ret := make([]string, k.n)
	copy(ret, k.labels[:k.n])
	return ret
}

//First returns the first label of the key, or an empty string for the zero Key.
func (k Key) First() string { return k.labels[0] }

//Reverse returns the key with its labels in reverse order.
func (k Key) Reverse() Key {
	r := Key{n: k.n}
	for i := 0; i < k.n; i++ {
		r.labels[i] = k.labels[k.n-1-i]
	}
	return r
}

//String returns the labels joined by dashes, as in "C-C-H".
func (k Key) String() string {
	return strings.Join(k.labels[:k.n], "-")
}

//MarshalJSON encodes the key as an array of labels.
func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.labels[:k.n])
}

//UnmarshalJSON decodes a key from an array of labels.
func (k *Key) UnmarshalJSON(b []byte) error {
	var l []string
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	if len(l) == 0 || len(l) > MaxKeyLen {
		return fmt.Errorf("a key needs between 1 and %d labels, got %d", MaxKeyLen, len(l))
	}
	*k = NewKey(l...)
	return nil
}

//Category is a kind of force-field parameter.
type Category int

const (
	Pair Category = iota
	Bond
	Angle
	Dihedral
	Improper
)

//Categories contains all the categories, in the order in which their
//tables appear in a data file.
var Categories = []Category{Pair, Bond, Angle, Dihedral, Improper}

//BondedCategories contains the categories of the bonded terms.
var BondedCategories = []Category{Bond, Angle, Dihedral, Improper}

var catnames = [...]string{"pair", "bond", "angle", "dihedral", "improper"}

//Valid returns true if C is one of the known categories.
func (C Category) Valid() bool {
	return C >= Pair && C <= Improper
}

func (C Category) String() string {
	if !C.Valid() {
		return fmt.Sprintf("category(%d)", int(C))
	}
	return catnames[C]
}

//Arity returns the number of atoms in a term of the category, or 1 for Pair.
func (C Category) Arity() int {
	switch C {
	case Bond:
		return 2
	case Angle:
		return 3
	case Dihedral, Improper:
		return 4
	}
	return 1
}

//plural is the name of the category as used in the count lines and
//the sections of a data file ("bonds").
func (C Category) plural() string {
	return C.String() + "s"
}

//coeffSection returns the name of the section with the coefficients for C.
func (C Category) coeffSection() string {
	s := C.String()
	return strings.ToUpper(s[:1]) + s[1:] + " Coeffs"
}

//ParseCategory returns the category with the given name, which can be singular or plural.
func ParseCategory(name string) (Category, error) {
	n := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "s")
	for i, v := range catnames {
		if v == n {
			return Category(i), nil
		}
	}
	return -1, newError(ErrUnknownCategory, "ParseCategory", "%q", name)
}
