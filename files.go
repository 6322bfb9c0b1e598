/*
 * files.go, part of stereodesc.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package desc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// SamplesFromFile reads the samples in the file name. Files ending in .yaml or .yml
// are read with ReadYAML, anything else with ReadSMILES. A further .gz or .zst
// extension means the file is compressed with gzip or zstd, respectively.
func SamplesFromFile(name string) ([]Sample, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, NewError("unable to open file", name, "SamplesFromFile", true, err)
	}
	defer f.Close()
	r, inner, err := decompressed(bufio.NewReader(f), name)
	if err != nil {
		return nil, NewError("unable to decompress file", name, "SamplesFromFile", true, err)
	}
	defer r.Close()
	var samples []Sample
	switch strings.ToLower(filepath.Ext(inner)) {
	case ".yaml", ".yml":
		samples, err = ReadYAML(r, name)
	default:
		samples, err = ReadSMILES(r, name)
	}
	return samples, ErrDecorate(err, "SamplesFromFile")
}

// SamplesFromFiles reads all the given files, in order, and returns
// their samples concatenated. It stops at the first error.
func SamplesFromFiles(names ...string) ([]Sample, error) {
	var ret []Sample
	for _, name := range names {
		s, err := SamplesFromFile(name)
		if err != nil {
			return nil, ErrDecorate(err, "SamplesFromFiles")
		}
		ret = append(ret, s...)
	}
	return ret, nil
}

// ReadSMILES reads a SMILES file from r. Each line holds a SMILES string
// and, after some whitespace, an optional description. Blank lines and lines
// starting with '#' are skipped. name is only used in errors.
func ReadSMILES(r io.Reader, name string) ([]Sample, error) {
	var ret []Sample
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) //some SMILES are long.
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var s Sample
		if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
			s.SMILES = line[:i]
			s.Description = strings.TrimSpace(line[i:])
		} else {
			s.SMILES = line
		}
		ret = append(ret, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, NewError(fmt.Sprintf("error reading SMILES at line %d", lineno+1), name, "ReadSMILES", true, err)
	}
	return ret, nil
}

// ReadYAML reads a YAML list of samples, each with a "smiles" and a "description"
// key, from r. Entries with an empty SMILES string are an error. name is only used in errors.
func ReadYAML(r io.Reader, name string) ([]Sample, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil //empty document
		}
		return nil, NewError("ill formatted YAML sample list", name, "ReadYAML", true, err)
	}
	var ret []Sample
	if err := doc.Decode(&ret); err != nil {
		return nil, NewError("ill formatted YAML sample list", name, "ReadYAML", true, err)
	}
	list := &doc
	if list.Kind == yaml.DocumentNode && len(list.Content) > 0 {
		list = list.Content[0]
	}
	for i, v := range ret {
		if strings.TrimSpace(v.SMILES) == "" {
			line := 0
			if list.Kind == yaml.SequenceNode && i < len(list.Content) {
				line = list.Content[i].Line
			}
			return nil, NewError(fmt.Sprintf("line %d: entry %d has no SMILES", line, i+1), name, "ReadYAML", true, nil)
		}
		ret[i].SMILES = strings.TrimSpace(v.SMILES)
	}
	return ret, nil
}

// zstd.Decoder's Close doesn't return an error.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// decompressed returns a reader with the uncompressed contents of r, and the name
// of the file without the compression extension.
func decompressed(r io.Reader, name string) (io.ReadCloser, string, error) {
	ext := filepath.Ext(name)
	switch strings.ToLower(ext) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, name, err
		}
		return gz, strings.TrimSuffix(name, ext), nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, name, err
		}
		return zstdReadCloser{zr}, strings.TrimSuffix(name, ext), nil
	}
	return io.NopCloser(r), name, nil
}
