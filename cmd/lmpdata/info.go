/*
 * info.go, part of lmpdata.
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
package main

import (
	"fmt"
	"io"

	"github.com/rmera/lmpdata/lammps"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print a summary of a data file and check it for inconsistencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			D, err := lammps.ReadFile(args[0])
			if err != nil {
				return err
			}
			warn := D.Check()
			printInfo(cmd.OutOrStdout(), D, warn)
			if len(warn) > 0 {
				a.log.Warnw("inconsistent data file", "file", args[0], "problems", len(warn))
			}
			return nil
		},
	}
}

func printInfo(w io.Writer, D *lammps.Data, warn []string) {
	fmt.Fprintf(w, "title: %s\n", D.Title)
	fmt.Fprintf(w, "atom style: %s\n", D.Style)
	fmt.Fprintf(w, "atoms: %d\n", len(D.Atoms))
	fmt.Fprintf(w, "atom types: %d\n", D.NAtomTypes())
	for _, cat := range lammps.BondedCategories {
		fmt.Fprintf(w, "%ss: %d (%d types)\n", cat, len(D.Terms(cat)), len(D.Coeffs(cat)))
	}
	for i, ax := range []string{"x", "y", "z"} {
		fmt.Fprintf(w, "box %s: %g %g\n", ax, D.Box[i][0], D.Box[i][1])
	}
	if D.Tilt != nil {
		fmt.Fprintf(w, "tilt: %g %g %g\n", D.Tilt[0], D.Tilt[1], D.Tilt[2])
	}
	for _, s := range D.Extra {
		fmt.Fprintf(w, "section %s: %d rows\n", s.Name, len(s.Rows))
	}
	for _, v := range warn {
		fmt.Fprintf(w, "warning: %s\n", v)
	}
}
