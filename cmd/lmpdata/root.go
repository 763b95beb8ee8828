/*
 * root.go, part of lmpdata.
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
	"go.uber.org/zap"
)

//app carries what the subcommands need once the root command has been initialized.
type app struct {
	cfg *config
	log *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := new(app)
	var cfgPath string
	v := newViper()
	cmd := &cobra.Command{
		Use:   "lmpdata",
		Short: "Build, inspect and convert LAMMPS data files",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlag("log.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
				return err
			}
			c, err := loadConfig(v, cfgPath)
			if err != nil {
				return err
			}
			l, err := newLogger(c.Log)
			if err != nil {
				return err
			}
			a.cfg = c
			a.log = l.Sugar()
			lammps.SetLogger(a.log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.AddCommand(newBuildCmd(a), newInfoCmd(a), newConvertCmd(a), newPlotCmd(a))
	return cmd
}
