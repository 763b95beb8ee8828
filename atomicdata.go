/*
 * atomicdata.go, part of lmpdata.
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

//A map for assigning mass to elements.
//Note that just common "bio-elements" and a few
//elements usual in materials simulations are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
	"Li": 6.94,
	"B":  10.81,
	"Al": 26.98,
	"Ar": 39.95,
	"Ti": 47.87,
	"Ni": 58.69,
	"Ag": 107.87,
	"Au": 196.97,
}

//MassOf returns the atomic mass for the element with the given symbol.
//The symbol is case-sensitive ("Cl", not "CL").
func MassOf(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, fmt.Errorf("No mass available for element %q", symbol)
	}
	return m, nil
}
