/*
 * read.go, part of lmpdata.
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
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"
)

//rawSection is a section of a data file as read, before its rows are given types.
type rawSection struct {
	name  string
	hint  string //the first word of the comment on the keyword line.
	rows  [][]float64
	lines []int //the line number of each row
}

func qerr(err error) {
	if err != nil {
		panic(err)
	}
}

//Parse reads a LAMMPS data file from r.
//The first non-empty line is taken as the title, unless it is a header or section line.
//A title written as a comment because it looked like a header is read back without the "# ".
//Unknown header lines are ignored.
//Sections that are recognized but not part of the typed model, such as Velocities, are
//kept in the Extra field of the returned Data.
func Parse(r io.Reader) (*Data, error) {
	D, err := parse(r)
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	return D, nil
}

func parse(r io.Reader) (D *Data, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			e, ok := rec.(*Error)
			if !ok {
				panic(rec)
			}
			D = nil
			err = e
		}
	}()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	D = &Data{Counts: make(map[string]int), TypeCounts: make(map[string]int), Style: StyleFull}
	sections := make(map[string]*rawSection)
	var order []string
	var current *rawSection
	titled := false
	lineno := 0
	for sc.Scan() {
		lineno++
		raw := sc.Text()
		line, comment := cleanLine(raw)
		kind := header.Which(line, current != nil)
		if !titled {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			titled = true
			if kind == kindIgnored {
				D.Title = titleOf(raw)
				continue
			}
		}
		fi := strings.Fields(line)
		switch kind {
		case kindSection:
			kw, _ := keyword(line)
			current = &rawSection{name: strings.Join(fi, " ")}
			if c := strings.Fields(comment); len(c) > 0 {
				current.hint = strings.ToLower(c[0])
			}
			if _, ok := sections[kw]; !ok {
				order = append(order, kw)
			}
			sections[kw] = current //a repeated section replaces the previous one.
		case kindRow:
			row := make([]float64, len(fi))
			for i, f := range fi {
				row[i], err = strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, newError(ErrSyntax, "parse", "line %d: %q is not a number", lineno, f)
				}
			}
			current.rows = append(current.rows, row)
			current.lines = append(current.lines, lineno)
		case kindTypes:
			m := header.types.FindStringSubmatch(line)
			D.TypeCounts[m[2]] = atoi(m[1], lineno)
		case kindCount:
			m := header.count.FindStringSubmatch(line)
			D.Counts[m[2]] = atoi(m[1], lineno)
		case kindBox:
			m := header.box.FindStringSubmatch(line)
			if m[3] != m[4] {
				logger.Warnf("line %d: box line %q ignored", lineno, line)
				continue
			}
			ax := int(m[3][0] - 'x')
			D.Box[ax] = [2]float64{atof(m[1], lineno), atof(m[2], lineno)}
		case kindTilt:
			m := header.tilt.FindStringSubmatch(line)
			D.Tilt = &[3]float64{atof(m[1], lineno), atof(m[2], lineno), atof(m[3], lineno)}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, newError(ErrSyntax, "parse", "reading line %d: %s", lineno+1, err)
	}
	for _, kw := range order {
		D.addSection(kw, sections[kw])
	}
	return D, nil
}

func atoi(s string, lineno int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		qerr(newError(ErrSyntax, "parse", "line %d: %q is not an integer", lineno, s))
	}
	return i
}

func atof(s string, lineno int) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		qerr(newError(ErrSyntax, "parse", "line %d: %q is not a number", lineno, s))
	}
	return f
}

//integer returns v as an int, and panics with an *Error if v is not integral.
func integer(v float64, lineno int) int {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		qerr(newError(ErrSyntax, "parse", "line %d: %s should be an integer", lineno, strconv.FormatFloat(v, 'g', -1, 64)))
	}
	return int(v)
}

func checkColumns(s *rawSection, i int, allowed ...int) {
	for _, v := range allowed {
		if len(s.rows[i]) == v {
			return
		}
	}
	qerr(newError(ErrSyntax, "parse", "line %d: %d columns in %s section, expected %v", s.lines[i], len(s.rows[i]), s.name, allowed))
}

//styleColumns relates the atom styles to the number of columns they have, without image flags.
var styleColumns = map[AtomStyle]int{
	StyleFull:      7,
	StyleMolecular: 6,
	StyleCharge:    6,
	StyleAtomic:    5,
}

func parseStyle(hint string) (AtomStyle, bool) {
	switch hint {
	case "full":
		return StyleFull, true
	case "molecular", "bond", "angle":
		return StyleMolecular, true
	case "charge":
		return StyleCharge, true
	case "atomic":
		return StyleAtomic, true
	}
	return "", false
}

//guessStyle returns the atom style of an Atoms section without a style comment,
//from the number of columns of its first row: 5 is atomic, 6 molecular and 7 full,
//each with 3 more columns if image flags are given.
func guessStyle(s *rawSection) AtomStyle {
	if len(s.rows) == 0 {
		return StyleFull
	}
	switch len(s.rows[0]) {
	case 5, 8:
		return StyleAtomic
	case 6, 9:
		return StyleMolecular
	}
	return StyleFull
}

//addSection converts the rows of s, which is the section with keyword kw,
//into the corresponding table of D.
func (D *Data) addSection(kw string, s *rawSection) {
	switch kw {
	case "masses":
		D.Masses = make([]Mass, len(s.rows))
		for i, r := range s.rows {
			checkColumns(s, i, 2)
			D.Masses[i] = Mass{Type: integer(r[0], s.lines[i]), Value: r[1]}
		}
	case "atoms":
		style := guessStyle(s)
		if s.hint != "" {
			var ok bool
			style, ok = parseStyle(s.hint)
			if !ok {
				qerr(newError(ErrSyntax, "parse", "unsupported atom style %q", s.hint))
			}
		}
		D.Style = style
		D.Atoms = make([]AtomRecord, len(s.rows))
		for i := range s.rows {
			D.Atoms[i] = atomRow(s, i, style)
		}
	case "bonds", "angles", "dihedrals", "impropers":
		cat, _ := ParseCategory(kw)
		b := make([]Bonded, len(s.rows))
		for i, r := range s.rows {
			checkColumns(s, i, cat.Arity()+2)
			b[i] = Bonded{ID: integer(r[0], s.lines[i]), Type: integer(r[1], s.lines[i]), Atoms: make([]int, cat.Arity())}
			for j := range b[i].Atoms {
				b[i].Atoms[j] = integer(r[j+2], s.lines[i])
			}
		}
		D.SetTerms(cat, b)
	case "pair coeffs", "bond coeffs", "angle coeffs", "dihedral coeffs", "improper coeffs":
		cat, _ := ParseCategory(strings.Fields(kw)[0])
		c := make([]Coeff, len(s.rows))
		for i, r := range s.rows {
			c[i] = Coeff{ID: integer(r[0], s.lines[i]), Values: copyFloats(r[1:])}
		}
		D.SetCoeffs(cat, c)
	default:
		D.Extra = append(D.Extra, Section{Name: s.name, Rows: s.rows})
	}
}

func atomRow(s *rawSection, i int, style AtomStyle) AtomRecord {
	n := styleColumns[style]
	checkColumns(s, i, n, n+3)
	r, l := s.rows[i], s.lines[i]
	a := AtomRecord{ID: integer(r[0], l)}
	c := 1
	if style == StyleFull || style == StyleMolecular {
		a.MolID = integer(r[c], l)
		c++
	}
	a.Type = integer(r[c], l)
	c++
	if style == StyleFull || style == StyleCharge {
		a.Charge = r[c]
		c++
	}
	a.X, a.Y, a.Z = r[c], r[c+1], r[c+2]
	c += 3
	if len(r) == n+3 {
		a.Image = &[3]int{integer(r[c], l), integer(r[c+1], l), integer(r[c+2], l)}
	}
	return a
}
