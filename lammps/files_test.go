/*
 * files_test.go, part of lmpdata.
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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompressedFiles(Te *testing.T) {
	D, err := Parse(strings.NewReader(waterData))
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"water.data", "water.data.gz", "water.data.zst"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, D); err != nil {
			Te.Fatal(err)
		}
		D2, err := ReadFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		if D2.String() != D.String() {
			Te.Errorf("%s not read back correctly:\n%s", name, D2)
		}
	}
	raw, err := os.ReadFile(filepath.Join(dir, "water.data.gz"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
		Te.Errorf("water.data.gz is not gzip-compressed")
	}
}

func TestFileErrors(Te *testing.T) {
	dir := Te.TempDir()
	_, err := ReadFile(filepath.Join(dir, "nothere.data"))
	var e *Error
	if !errors.Is(err, ErrIO) || !errors.As(err, &e) || e.FileName() == "" {
		Te.Errorf("expected an I/O error with a file name, got %v", err)
	}
	bad := filepath.Join(dir, "bad.data")
	if err := os.WriteFile(bad, []byte("title\n\nMasses\n\n1 x\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err = ReadFile(bad)
	if !errors.Is(err, ErrSyntax) || !strings.Contains(err.Error(), bad) {
		Te.Errorf("expected a syntax error mentioning %s, got %v", bad, err)
	}
	notgz := filepath.Join(dir, "plain.gz")
	if err := os.WriteFile(notgz, []byte("title\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err = ReadFile(notgz); err == nil {
		Te.Errorf("a plain file with the .gz suffix should fail")
	}
}
