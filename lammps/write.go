/*
 * write.go, part of lmpdata.
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
	"io"
	"strconv"
	"strings"
)

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

//String returns D in the LAMMPS data file format.
func (D *Data) String() string {
	var b strings.Builder
	D.write(&b)
	return b.String()
}

//WriteTo writes D to w in the LAMMPS data file format.
func (D *Data) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, D.String())
	if err != nil {
		return int64(n), newError(ErrIO, "WriteTo", "%s", err)
	}
	return int64(n), nil
}

//nTypes returns the number of types to declare in the header for cat, which is the
//length of its coefficient table. With cat == Pair, the number of atom types is
//returned instead: the length of the Masses table or, if it is empty, the value read
//from the header of a file.
func (D *Data) nTypes(cat Category) int {
	if cat != Pair {
		return len(D.Coeffs(cat))
	}
	if D.NAtomTypes() == 0 {
		return D.TypeCounts["atom"]
	}
	return D.NAtomTypes()
}

func (D *Data) write(b *strings.Builder) {
	line := func(fields ...string) {
		b.WriteString(strings.Join(fields, " "))
		b.WriteString("\n")
	}
	line(titleLine(D.Title))
	line()
	line(itoa(len(D.Atoms)), "atoms")
	for _, cat := range BondedCategories {
		if n := len(D.Terms(cat)); n > 0 {
			line(itoa(n), cat.plural())
		}
	}
	line()
	line(itoa(D.nTypes(Pair)), "atom types")
	for _, cat := range BondedCategories {
		if n := D.nTypes(cat); n > 0 {
			line(itoa(n), cat.String(), "types")
		}
	}
	line()
	for i, ax := range []string{"x", "y", "z"} {
		line(ftoa(D.Box[i][0]), ftoa(D.Box[i][1]), ax+"lo", ax+"hi")
	}
	if D.Tilt != nil {
		line(ftoa(D.Tilt[0]), ftoa(D.Tilt[1]), ftoa(D.Tilt[2]), "xy xz yz")
	}
	section := func(name string, n int, row func(i int) []string) {
		if n == 0 {
			return
		}
		line()
		line(name)
		line()
		for i := 0; i < n; i++ {
			line(row(i)...)
		}
	}
	section("Masses", len(D.Masses), func(i int) []string {
		return []string{itoa(D.Masses[i].Type), ftoa(D.Masses[i].Value)}
	})
	for _, cat := range Categories {
		c := D.Coeffs(cat)
		section(cat.coeffSection(), len(c), func(i int) []string {
			return append([]string{itoa(c[i].ID)}, ftoas(c[i].Values)...)
		})
	}
	style := D.Style
	if style == "" {
		style = StyleFull
	}
	section("Atoms # "+string(style), len(D.Atoms), func(i int) []string {
		return atomFields(D.Atoms[i], style)
	})
	for _, cat := range BondedCategories {
		t := D.Terms(cat)
		section(strings.ToUpper(cat.plural()[:1])+cat.plural()[1:], len(t), func(i int) []string {
			f := []string{itoa(t[i].ID), itoa(t[i].Type)}
			for _, a := range t[i].Atoms {
				f = append(f, itoa(a))
			}
			return f
		})
	}
	for _, s := range D.Extra {
		section(s.Name, len(s.Rows), func(i int) []string { return ftoas(s.Rows[i]) })
	}
}

func ftoas(f []float64) []string {
	r := make([]string, len(f))
	for i, v := range f {
		r[i] = ftoa(v)
	}
	return r
}

func atomFields(a AtomRecord, style AtomStyle) []string {
	f := []string{itoa(a.ID)}
	if style == StyleFull || style == StyleMolecular {
		f = append(f, itoa(a.MolID))
	}
	f = append(f, itoa(a.Type))
	if style == StyleFull || style == StyleCharge {
		f = append(f, ftoa(a.Charge))
	}
	f = append(f, ftoa(a.X), ftoa(a.Y), ftoa(a.Z))
	if a.Image != nil {
		f = append(f, itoa(a.Image[0]), itoa(a.Image[1]), itoa(a.Image[2]))
	}
	return f
}
