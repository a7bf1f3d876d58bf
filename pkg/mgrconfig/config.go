// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package mgrconfig

import (
	"time"

	"github.com/google/i2sfuzz/pkg/i2s"
)

type Config struct {
	// Session name (optional), used in logs and in the run report.
	Name string `json:"name,omitempty"`
	// Target command line, e.g. ["./target", "@@"].
	// For "file" delivery "@@" is replaced with the path of the input file.
	Target []string `json:"target"`
	// How samples are delivered to the target:
	// "file": the sample is written to a file passed via "@@" (default);
	// "shmem": the sample is written to a shared memory mapping passed as fd 3;
	// "sysv": the sample is written to a SysV shared memory segment, id is in I2S_SHM_ID env var.
	Delivery string `json:"delivery"`
	// Max sample size in bytes (1MB by default). Larger seeds are skipped.
	MaxSampleSize int `json:"max_sample_size"`
	// Size of the comparison trace mapping (16MB by default).
	OutputSize int `json:"output_size"`
	// Exit status the target uses to report a detected bug (optional).
	CrashExitCode int `json:"crash_exit_code,omitempty"`
	// Timeout for a single execution, e.g. "1s".
	Timeout string `json:"timeout"`
	// Additional timeout for the first execution after the target is (re)started, e.g. "10s".
	InitTimeout string `json:"init_timeout"`
	// Encoders used for input-to-state mutations, e.g. ["zext4", "sext2", "zext8be"].
	// All available encoders are used by default.
	Encoders []string `json:"encoders,omitempty"`
	// Directory with seed samples (can be overridden from the command line).
	Seeds string `json:"seeds"`
	// Location of a working directory. Outputs of each run are stored in a separate subdirectory:
	// - <workdir>/<session>/colorized/*: colorized seeds
	// - <workdir>/<session>/mutated/*: seeds after input-to-state mutations
	// - <workdir>/<session>/report.yaml: run summary
	Workdir string `json:"workdir"`
	// Number of parallel workers, each runs own target instance (1 by default).
	Workers int `json:"workers"`
	// Number of input-to-state mutation rounds per seed (16 by default).
	Rounds int `json:"rounds"`
	// Max number of colorization steps per seed, 0 means no limit.
	ColorizeSteps int `json:"colorize_steps"`
	// Compress output samples with xz.
	Compress bool `json:"compress"`
	// Address to serve /metrics and /stats on (e.g. "localhost:50000"), optional.
	HTTP string `json:"http,omitempty"`
	// Pass target output to the log.
	Debug bool `json:"debug,omitempty"`

	// Implementation details beyond this point.
	ParsedTimeout     time.Duration `json:"-"`
	ParsedInitTimeout time.Duration `json:"-"`
	ParsedEncoders    []i2s.Encoder `json:"-"`
}
