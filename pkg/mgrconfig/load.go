// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package mgrconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/i2sfuzz/pkg/config"
	"github.com/google/i2sfuzz/pkg/i2s"
	"github.com/google/i2sfuzz/pkg/ipc"
	"github.com/google/i2sfuzz/pkg/osutil"
)

func LoadData(data []byte) (*Config, error) {
	cfg, err := LoadPartialData(data)
	if err != nil {
		return nil, err
	}
	if err := Complete(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadFile(filename string) (*Config, error) {
	cfg, err := LoadPartialFile(filename)
	if err != nil {
		return nil, err
	}
	if err := Complete(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadPartialData loads the config without validation,
// callers are expected to adjust it and call Complete.
func LoadPartialData(data []byte) (*Config, error) {
	cfg := defaultValues()
	if err := config.LoadData(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadPartialFile(filename string) (*Config, error) {
	cfg := defaultValues()
	if err := config.LoadFile(filename, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultValues() *Config {
	return &Config{
		Delivery:      string(ipc.DeliverFile),
		MaxSampleSize: ipc.DefaultMaxSampleSize,
		OutputSize:    ipc.DefaultOutputSize,
		Timeout:       "1s",
		InitTimeout:   "0s",
		Workers:       1,
		Rounds:        16,
	}
}

func Complete(cfg *Config) error {
	if len(cfg.Target) == 0 || cfg.Target[0] == "" {
		return fmt.Errorf("config param target is empty")
	}
	switch ipc.Delivery(cfg.Delivery) {
	case ipc.DeliverFile:
		if !hasInputArg(cfg.Target) {
			return fmt.Errorf("file delivery requires %v in target arguments", ipc.InputFileArg)
		}
	case ipc.DeliverShmem, ipc.DeliverSysV:
	default:
		return fmt.Errorf("config param delivery must contain one of file/shmem/sysv")
	}
	if cfg.Workdir == "" {
		return fmt.Errorf("config param workdir is empty")
	}
	cfg.Workdir = osutil.Abs(cfg.Workdir)
	if cfg.Seeds == "" {
		return fmt.Errorf("config param seeds is empty")
	}
	cfg.Seeds = osutil.Abs(cfg.Seeds)
	if cfg.MaxSampleSize <= 0 {
		return fmt.Errorf("bad config param max_sample_size: %v", cfg.MaxSampleSize)
	}
	if cfg.OutputSize < 4 {
		return fmt.Errorf("bad config param output_size: %v", cfg.OutputSize)
	}
	var err error
	if cfg.ParsedTimeout, err = parseTimeout("timeout", cfg.Timeout); err != nil {
		return err
	}
	if cfg.ParsedTimeout == 0 {
		return fmt.Errorf("config param timeout must be positive")
	}
	if cfg.ParsedInitTimeout, err = parseTimeout("init_timeout", cfg.InitTimeout); err != nil {
		return err
	}
	cfg.ParsedEncoders = nil
	for _, name := range cfg.Encoders {
		enc, err := i2s.ParseEncoder(name)
		if err != nil {
			return fmt.Errorf("bad config param encoders: %w", err)
		}
		cfg.ParsedEncoders = append(cfg.ParsedEncoders, enc)
	}
	if cfg.Workers < 1 || cfg.Workers > 128 {
		return fmt.Errorf("bad config param workers: '%v', want [1, 128]", cfg.Workers)
	}
	if cfg.Rounds < 1 {
		return fmt.Errorf("bad config param rounds: '%v', want at least 1", cfg.Rounds)
	}
	if cfg.ColorizeSteps < 0 {
		return fmt.Errorf("bad config param colorize_steps: '%v'", cfg.ColorizeSteps)
	}
	return nil
}

func parseTimeout(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("bad config param %v: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("bad config param %v: negative duration %v", name, d)
	}
	return d, nil
}

func hasInputArg(args []string) bool {
	for _, arg := range args {
		if strings.Contains(arg, ipc.InputFileArg) {
			return true
		}
	}
	return false
}

// IPC returns the target execution config.
func (cfg *Config) IPC() *ipc.Config {
	return &ipc.Config{
		Delivery:      ipc.Delivery(cfg.Delivery),
		MaxSampleSize: cfg.MaxSampleSize,
		OutputSize:    cfg.OutputSize,
		CrashExitCode: cfg.CrashExitCode,
		Debug:         cfg.Debug,
	}
}

// I2S returns the input-to-state mutator config.
func (cfg *Config) I2S() i2s.Config {
	return i2s.Config{
		Argv:        cfg.Target,
		InitTimeout: cfg.ParsedInitTimeout,
		Timeout:     cfg.ParsedTimeout,
		Encoders:    cfg.ParsedEncoders,
	}
}
