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

/*Package chem provides the atom and topology structures used by lmpdata,
together with the few chemical and geometric facilities needed to prepare a
system before it is written as a LAMMPS data file: element masses, reading
and writing XYZ files, bounding boxes, centers of mass and box fitting.

The data file itself (force-field tables, topology remapping and the
text format) is handled by the lammps subpackage. Coordinates are kept
in the v3.Matrix type, a Nx3 matrix based on gonum's Dense.
*/
package chem
