/*
 * plot.go, part of lmpdata.
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

	"github.com/rmera/lmpdata/chemplot"
	"github.com/rmera/lmpdata/lammps"
	"github.com/spf13/cobra"
)

func newPlotCmd(a *app) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Plot the number of atoms and bonded terms of each type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			D, err := lammps.ReadFile(args[0])
			if err != nil {
				return err
			}
			name := prefix + "_types.png"
			if err := chemplot.TypePopulation(D, "Atoms per type", name); err != nil {
				return err
			}
			a.log.Infow("plot written", "file", name)
			for _, cat := range lammps.BondedCategories {
				if len(D.Terms(cat)) == 0 {
					continue
				}
				name := fmt.Sprintf("%s_%ss.png", prefix, cat)
				if err := chemplot.TermPopulation(D, cat, fmt.Sprintf("%ss per type", cat), name); err != nil {
					return err
				}
				a.log.Infow("plot written", "file", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&prefix, "output", "o", "lmpdata", "prefix for the plot files")
	return cmd
}
