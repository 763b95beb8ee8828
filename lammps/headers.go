/*
 * headers.go, part of lmpdata.
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
	"regexp"
	"strings"
)

type lineKind int

const (
	kindIgnored lineKind = iota
	kindSection
	kindTypes
	kindBox
	kindTilt
	kindCount
	kindRow
)

func (k lineKind) String() string {
	return [...]string{"ignored", "section", "types", "box", "tilt", "count", "row"}[k]
}

//sectionKeywords are the (lowercase) names of the sections recognized in a data file.
var sectionKeywords = map[string]bool{
	"atoms":                    true,
	"velocities":               true,
	"masses":                   true,
	"ellipsoids":               true,
	"lines":                    true,
	"triangles":                true,
	"bodies":                   true,
	"bonds":                    true,
	"angles":                   true,
	"dihedrals":                true,
	"impropers":                true,
	"pair coeffs":              true,
	"pairij coeffs":            true,
	"bond coeffs":              true,
	"angle coeffs":             true,
	"dihedral coeffs":          true,
	"improper coeffs":          true,
	"bondbond coeffs":          true,
	"bondangle coeffs":         true,
	"middlebondtorsion coeffs": true,
	"endbondtorsion coeffs":    true,
	"angletorsion coeffs":      true,
	"angleangletorsion coeffs": true,
	"bondbond13 coeffs":        true,
	"angleangle coeffs":        true,
}

//dataHeader classifies the lines of a data file.
type dataHeader struct {
	types *regexp.Regexp
	box   *regexp.Regexp
	tilt  *regexp.Regexp
	count *regexp.Regexp
}

func newDataHeader() *dataHeader {
	fl := `([0-9eE\.+-]+)`
	return &dataHeader{
		types: regexp.MustCompile(`^\s*(\d+)\s+([a-zA-Z]+)\s+types$`),
		box:   regexp.MustCompile(`^\s*` + fl + `\s+` + fl + `\s+([xyz])lo\s+([xyz])hi$`),
		tilt:  regexp.MustCompile(`^\s*` + fl + `\s+` + fl + `\s+` + fl + `\s+xy\s+xz\s+yz$`),
		count: regexp.MustCompile(`^\s*(\d+)\s+([a-zA-Z]+)$`),
	}
}

var header = newDataHeader()

//keyword returns the normalized (lowercase, single-spaced) form of line,
//and whether it is a section keyword.
func keyword(line string) (string, bool) {
	k := strings.ToLower(strings.Join(strings.Fields(line), " "))
	return k, sectionKeywords[k]
}

//Which returns the kind of line, which must be already stripped of comments.
//inSection tells whether a section is active. Section keywords are recognized first.
//Header lines are only recognized outside sections, and any other non-empty line
//inside a section is a row.
func (h *dataHeader) Which(line string, inSection bool) lineKind {
	line = strings.TrimSpace(line)
	if line == "" {
		return kindIgnored
	}
	if _, ok := keyword(line); ok {
		return kindSection
	}
	if inSection {
		return kindRow
	}
	switch {
	case h.types.MatchString(line):
		return kindTypes
	case h.box.MatchString(line):
		return kindBox
	case h.tilt.MatchString(line):
		return kindTilt
	case h.count.MatchString(line):
		return kindCount
	}
	return kindIgnored
}

//Is returns true if the line is of the given kind.
func (h *dataHeader) Is(line string, inSection bool, kind lineKind) bool {
	return h.Which(line, inSection) == kind
}

//cleanLine splits a line into its content and its comment, both trimmed.
func cleanLine(line string) (content, comment string) {
	if i := strings.Index(line, "#"); i >= 0 {
		return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return strings.TrimSpace(line), ""
}

//titleLine returns the line to write for the title t. A title that would be
//read as a header or section line is written as a comment.
func titleLine(t string) string {
	if c, _ := cleanLine(t); header.Which(c, false) != kindIgnored {
		return "# " + strings.TrimSpace(t)
	}
	return t
}

//titleOf returns the title in raw, the first non-empty line of a file.
func titleOf(raw string) string {
	t := strings.TrimSpace(raw)
	if !strings.HasPrefix(t, "# ") {
		return t
	}
	inner := strings.TrimSpace(t[2:])
	if c, _ := cleanLine(inner); header.Which(c, false) != kindIgnored {
		return inner
	}
	return t
}
