// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package config loads strict JSON or YAML configuration files into structs.
// Unknown fields are errors, so that typos in configs do not go unnoticed.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"

	"sigs.k8s.io/yaml"
)

var commentRe = regexp.MustCompile(`(^|\n)\s*#[^\n]*`)

// LoadFile loads filename into cfg. Files with .yaml/.yml extension are parsed as YAML,
// everything else as JSON with optional # comment lines.
func LoadFile(filename string, cfg any) error {
	if filename == "" {
		return fmt.Errorf("no config file specified")
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		return LoadYAML(data, cfg)
	}
	return LoadData(data, cfg)
}

func LoadData(data []byte, cfg any) error {
	if err := checkType(cfg); err != nil {
		return err
	}
	// Remove comment lines starting with #.
	data = commentRe.ReplaceAll(data, nil)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// LoadYAML converts YAML to JSON and then applies the same strict decoding as LoadData.
func LoadYAML(data []byte, cfg any) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to parse yaml config: %w", err)
	}
	return LoadData(jsonData, cfg)
}

func checkType(cfg any) error {
	typ := reflect.TypeOf(cfg)
	if typ == nil || typ.Kind() != reflect.Ptr || typ.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config type is not pointer to struct")
	}
	return nil
}
