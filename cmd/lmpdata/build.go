/*
 * build.go, part of lmpdata.
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
	"github.com/rmera/lmpdata/lammps"
	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build RECIPE",
		Short: "Assemble a data file from a JSON recipe",
		Long: `Assemble a data file from a JSON recipe, which gives a force field, the molecule
types, the number of copies of each, and an XYZ file with the coordinates.
Bonded terms without parameters are skipped, with a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := lammps.LoadRecipe(args[0])
			if err != nil {
				return err
			}
			if in.Title == "" {
				in.Title = a.cfg.Title
			}
			D, rep, err := lammps.Assemble(in)
			if err != nil {
				return err
			}
			if err := lammps.WriteFile(out, D); err != nil {
				return err
			}
			a.log.Infow("data file written",
				"file", out,
				"atoms", len(D.Atoms),
				"atom types", D.NAtomTypes(),
				"bonds", len(D.Bonds),
				"angles", len(D.Angles),
				"dihedrals", len(D.Dihedrals),
				"impropers", len(D.Impropers),
				"skipped", len(rep.Skipped),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "system.data", "output file (.gz and .zst suffixes compress it)")
	return cmd
}
