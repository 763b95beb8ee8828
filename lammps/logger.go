/*
 * logger.go, part of lmpdata.
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

import "log"

//Logger receives the non-fatal messages of the package, such as
//force-field terms that could not be assigned parameters, or box resizings.
//*zap.SugaredLogger satisfies it.
type Logger interface {
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
}

type stdLogger struct{}

func (stdLogger) Infof(template string, args ...interface{}) { log.Printf(template, args...) }
func (stdLogger) Warnf(template string, args ...interface{}) {
	log.Printf("warning: "+template, args...)
}

var logger Logger = stdLogger{}

//SetLogger sets the Logger used by the package. The standard
//library logger is used by default, and if l is nil.
//SetLogger is meant to be called once, before any other function in the package.
func SetLogger(l Logger) {
	if l == nil {
		l = stdLogger{}
	}
	logger = l
}
