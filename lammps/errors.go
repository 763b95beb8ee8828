/*
 * errors.go, part of lmpdata.
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
	"errors"
	"fmt"

	chem "github.com/rmera/lmpdata"
)

// Kinds of errors returned by this package. They can be checked with errors.Is.
var (
	ErrUnknownCategory = errors.New("unknown parameter category")
	ErrTopology        = errors.New("malformed topology")
	ErrMismatch        = errors.New("inconsistent input")
	ErrSyntax          = errors.New("malformed data file")
	ErrIO              = errors.New("input/output error")
)

//Error is the error type for the lammps package. It carries the kind of
//the error, and, when the error comes from reading or writing a file, the file name.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	kind     error
}

func (err *Error) Error() string {
	if err.filename != "" {
		return fmt.Sprintf("lammps file %s: %s: %s", err.filename, err.kind, err.message)
	}
	return fmt.Sprintf("lammps: %s: %s", err.kind, err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//FileName returns the name of the file involved in the error, if any.
func (err *Error) FileName() string { return err.filename }

//Format returns the format of the file involved in the error.
func (err *Error) Format() string { return "LAMMPS data" }

//Critical returns true if the error is critical, false otherwise.
func (err *Error) Critical() bool { return err.critical }

//Unwrap returns the kind of the error.
func (err *Error) Unwrap() error { return err.kind }

func newError(kind error, caller, format string, a ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, a...), deco: []string{caller}, critical: true, kind: kind}
}

//errDecorate decorates err with the caller's name, if err implements chem.Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
	}
	return err
}

//withFile sets the file name of err, if it is an *Error.
func withFile(err error, name string) error {
	var e *Error
	if errors.As(err, &e) && e.filename == "" {
		e.filename = name
	}
	return err
}
