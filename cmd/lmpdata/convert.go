/*
 * convert.go, part of lmpdata.
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

func newConvertCmd(a *app) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Read a data file and write it again, possibly compressed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			D, err := lammps.ReadFile(args[0])
			if err != nil {
				return err
			}
			switch {
			case title != "":
				D.Title = title
			case a.cfg.Title != "":
				D.Title = a.cfg.Title
			}
			if err := lammps.WriteFile(args[1], D); err != nil {
				return err
			}
			a.log.Infow("data file converted", "from", args[0], "to", args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "title for the new file")
	return cmd
}
