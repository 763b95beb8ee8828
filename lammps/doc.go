/*
 * doc.go, part of lmpdata.
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
/*Package lammps assembles, reads and writes LAMMPS data files.

A system is described by an Input: a force field (a ForceFielder), a list of molecule
types, each with its topology, the number of copies of each type, and the type label,
mass and coordinates of every atom. Assemble turns it into a Data:

	Unify collects the atom types, ordered by mass.
	BuildCoeffs builds the coefficient table of each category.
	NewRemap relates global atom indexes to molecules.
	EmitAtoms builds the Atoms section.
	Resolve builds the Bonds, Angles, Dihedrals and Impropers sections.

Bonded terms whose keys are not found in the force field, in either direction,
are skipped and reported, and the remaining terms are numbered consecutively.

Parse, ReadFile, Data.WriteTo and WriteFile read and write the text format. ReadFile
and WriteFile handle gzip and zstd compression, according to the file suffix.

Non-fatal messages are sent to a Logger, which can be set with SetLogger.
*/
package lammps
