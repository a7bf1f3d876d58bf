// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package sample

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/i2sfuzz/pkg/osutil"
	"github.com/ulikunitz/xz"
)

const xzExt = ".xz"

// Load reads a sample from file. Files with .xz extension are decompressed.
func Load(filename string) (*Sample, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample: %w", err)
	}
	if strings.HasSuffix(filename, xzExt) {
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to read %v: %w", filename, err)
		}
		if data, err = io.ReadAll(r); err != nil {
			return nil, fmt.Errorf("failed to decompress %v: %w", filename, err)
		}
	}
	return &Sample{data: data}, nil
}

// Save writes s to file. Files with .xz extension are compressed.
func Save(filename string, s *Sample) error {
	data := s.data
	if strings.HasSuffix(filename, xzExt) {
		buf := new(bytes.Buffer)
		w, err := xz.NewWriter(buf)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to compress %v: %w", filename, err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("failed to compress %v: %w", filename, err)
		}
		data = buf.Bytes()
	}
	return osutil.WriteFile(filename, data)
}

// File is a sample loaded from a file.
type File struct {
	Name   string
	Sample *Sample
}

// LoadDir loads all regular files from dir in name order.
func LoadDir(dir string) ([]File, error) {
	files, err := osutil.ListFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	var res []File
	for _, file := range files {
		s, err := Load(file)
		if err != nil {
			return nil, err
		}
		res = append(res, File{Name: file, Sample: s})
	}
	return res, nil
}
