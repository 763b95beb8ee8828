/*
 * main.go, part of lmpdata.
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
/*lmpdata builds, inspects and converts LAMMPS data files.

	lmpdata build recipe.json -o system.data.gz
	lmpdata info system.data.gz
	lmpdata convert system.data.gz system.data --title "my system"
	lmpdata plot system.data -o system

A YAML configuration file can be given with --config. Its values
(title, log.level, log.format) can also be set with the LMPDATA_TITLE,
LMPDATA_LOG_LEVEL and LMPDATA_LOG_FORMAT environment variables.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lmpdata:", err)
		os.Exit(1)
	}
}
