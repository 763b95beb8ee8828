/*
 * files.go, part of lmpdata.
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
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//zstdReadCloser wraps a *zstd.Decoder, whose Close method
//doesn't return an error, so it implements io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

//Close closes the decoder. It can not be used after this call.
func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//compression returns the compression format for a file name: "gz", "zst" or "" (no compression).
func compression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return "gz"
	case ".zst", ".zstd":
		return "zst"
	}
	return ""
}

//ReadFile reads a LAMMPS data file. Files with the .gz suffix are read as gzip-compressed
//and files with the .zst suffix as zstd-compressed.
func ReadFile(name string) (*Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{message: err.Error(), filename: name, deco: []string{"ReadFile"}, critical: true, kind: ErrIO}
	}
	defer f.Close()
	var r io.ReadCloser
	in := bufio.NewReader(f)
	switch compression(name) {
	case "gz":
		r, err = gzip.NewReader(in)
	case "zst":
		var d *zstd.Decoder
		d, err = zstd.NewReader(in)
		if err == nil {
			r = zstdReadCloser{d}
		}
	default:
		r = io.NopCloser(in)
	}
	if err != nil {
		return nil, &Error{message: "can't open decompressor: " + err.Error(), filename: name, deco: []string{"ReadFile"}, critical: true, kind: ErrSyntax}
	}
	defer r.Close()
	D, err := Parse(r)
	if err != nil {
		err = withFile(err, name)
		return nil, errDecorate(err, "ReadFile")
	}
	return D, nil
}

//WriteFile writes D to the file name, compressing it according to the file suffix,
//as in ReadFile. An existing file is overwritten.
func WriteFile(name string, D *Data) error {
	fe := func(err error) error {
		return &Error{message: err.Error(), filename: name, deco: []string{"WriteFile"}, critical: true, kind: ErrIO}
	}
	f, err := os.Create(name)
	if err != nil {
		return fe(err)
	}
	var w io.WriteCloser
	switch compression(name) {
	case "gz":
		w = gzip.NewWriter(f)
	case "zst":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return fe(err)
		}
	}
	var out io.Writer = f
	if w != nil {
		out = w
	}
	if _, err = D.WriteTo(out); err != nil {
		if w != nil {
			w.Close()
		}
		f.Close()
		return errDecorate(withFile(err, name), "WriteFile")
	}
	if w != nil {
		if err = w.Close(); err != nil {
			f.Close()
			return fe(err)
		}
	}
	if err = f.Close(); err != nil {
		return fe(err)
	}
	return nil
}
