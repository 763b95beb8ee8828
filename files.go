/*
 * files.go, part of lmpdata.
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

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/lmpdata/v3"
)

//XYZFileRead reads the first frame of an xyz file, returns a topology, the coordinates and an error.
func XYZFileRead(xyzname string) (*Topology, *v3.Matrix, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, nil, err
	}
	defer xyzfile.Close()
	top, coords, err := XYZRead(xyzfile)
	if err != nil {
		return nil, nil, fmt.Errorf("XYZFileRead: %s: %w", xyzname, err)
	}
	return top, coords, nil
}

//XYZRead reads the first frame of an xyz-formatted stream. Masses are
//assigned from the element symbols, when available.
func XYZRead(r io.Reader) (*Topology, *v3.Matrix, error) {
	xyz := bufio.NewReader(r)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, nil, fmt.Errorf("Ill formatted XYZ file: %w", err)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, nil, fmt.Errorf("Ill formatted XYZ file: can't read number of atoms from %q", strings.TrimSpace(line))
	}
	ats := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	_, err = xyz.ReadString('\n') //We dont care about this line
	if err != nil {
		return nil, nil, fmt.Errorf("Ill formatted XYZ file: missing comment line")
	}
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return nil, nil, fmt.Errorf("XYZ file ended after %d of %d atoms", i, natoms)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, nil, fmt.Errorf("Atom line %d ill formed: %q", i+1, strings.TrimSpace(line))
		}
		at := &Atom{ID: i + 1, Name: fields[0], Symbol: fields[0]}
		at.Mass, _ = MassOf(at.Symbol) //a missing mass is reported by Topology.Masses
		ats[i] = at
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("Atom line %d: can't read coordinate %d: %w", i+1, j, err)
			}
		}
	}
	c, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, err
	}
	top, err := NewTopology(ats)
	if err != nil {
		return nil, nil, err
	}
	return top, c, nil
}
