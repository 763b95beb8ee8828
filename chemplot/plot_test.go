/*
 * plot_test.go, part of lmpdata.
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
package chemplot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/lmpdata/lammps"
)

const data = `plot test

4 atoms
3 bonds

2 atom types
2 bond types

0 10 xlo xhi
0 10 ylo yhi
0 10 zlo zhi

Masses

1 1.008
2 12.011

Atoms # full

1 1 2 0 0 0 0
2 1 1 0 1 0 0
3 1 1 0 0 1 0
4 1 1 0 0 0 1

Bonds

1 1 1 2
2 1 1 3
3 2 1 4
`

func TestPopulation(Te *testing.T) {
	D, err := lammps.Parse(strings.NewReader(data))
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	tname := filepath.Join(dir, "types.png")
	if err := TypePopulation(D, "Atom types", tname); err != nil {
		Te.Fatal(err)
	}
	bname := filepath.Join(dir, "bonds.png")
	if err := TermPopulation(D, lammps.Bond, "Bonds", bname); err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{tname, bname} {
		if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
			Te.Errorf("%s not written (%v)", name, err)
		}
	}
	if err := TermPopulation(D, lammps.Angle, "Angles", filepath.Join(dir, "angles.png")); err == nil {
		Te.Errorf("plotting an empty category should fail")
	}
}

func TestColors(Te *testing.T) {
	if c := hsv2rgb(0, 1, 1); c.R != 255 || c.G != 0 || c.B != 0 {
		Te.Errorf("hue 0 should be red: %v", c)
	}
	if c := hsv2rgb(120, 1, 0); c.R != c.G || c.G != c.B || c.R != 255 {
		Te.Errorf("zero saturation should give a gray: %v", c)
	}
	if colors(0, 5) == colors(1, 5) {
		Te.Errorf("consecutive colors should differ")
	}
}
