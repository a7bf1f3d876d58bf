// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package ipc

type Delivery string

const (
	DeliverFile  Delivery = "file"
	DeliverShmem Delivery = "shmem"
	DeliverSysV  Delivery = "sysv"
)

const (
	InputFileArg = "@@"
	ShmIDEnv     = "I2S_SHM_ID"
	CmplogFDEnv  = "I2S_CMPLOG_FD"

	inputFD  = 3
	cmplogFD = 4

	DefaultMaxSampleSize = 1 << 20
	DefaultOutputSize    = 16 << 20
)

// Config is the configuration for Env.
type Config struct {
	Delivery Delivery
	// MaxSampleSize is the max size of a sample that can be delivered.
	MaxSampleSize int
	// OutputSize is the size of the comparison trace mapping.
	OutputSize int
	// CrashExitCode is the exit status the target uses to report a detected bug.
	// 0 means that only termination by a signal is a crash.
	CrashExitCode int
	// Debug passes target output to the log.
	Debug bool
}
