// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build linux

// Package ipc executes an instrumented target binary on samples and
// reads back comparison traces produced by the target.
//
// The sample is delivered in one of the following ways:
//   - file: the sample is written to a temp file, "@@" in the target arguments is replaced with its path;
//   - shmem: the sample is written to a memfd mapping passed to the target as fd 3;
//   - sysv: the sample is written to a SysV shared memory segment, its id is passed in I2S_SHM_ID env var.
//
// Shared memory layouts start with a little-endian uint32 sample size followed by sample bytes.
// The target writes a size-prefixed cmplog.TraceRaw flatbuffer to the mapping passed as fd 4.
package ipc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gen2brain/shm"
	"github.com/google/i2sfuzz/pkg/cmplog"
	"github.com/google/i2sfuzz/pkg/log"
	"github.com/google/i2sfuzz/pkg/osutil"
	"github.com/google/i2sfuzz/pkg/sample"
	"github.com/google/i2sfuzz/pkg/stat"
	"golang.org/x/sys/unix"
)

type Env struct {
	config *Config

	inFile    *os.File
	inMem     []byte
	inputPath string
	shmID     int

	outFile *os.File
	outMem  []byte

	// fresh is set when the next run is the first one after MakeEnv or Reset.
	fresh    bool
	execTime stat.AverageValue[time.Duration]
}

var (
	statExecs    = stat.New("target execs", "Total target executions", stat.Rate{}, stat.Prometheus("i2s_execs"))
	statTimeouts = stat.New("target timeouts", "Target executions killed on timeout",
		stat.Prometheus("i2s_timeouts"))
	statCrashes = stat.New("target crashes", "Target executions that crashed", stat.Prometheus("i2s_crashes"))
	statResets  = stat.New("target resets", "Target state resets", stat.Prometheus("i2s_resets"))
)

func MakeEnv(config *Config) (*Env, error) {
	if config.MaxSampleSize <= 0 {
		config.MaxSampleSize = DefaultMaxSampleSize
	}
	if config.OutputSize <= 0 {
		config.OutputSize = DefaultOutputSize
	}
	env := &Env{
		config: config,
		fresh:  true,
		shmID:  -1,
	}
	if err := env.setupInput(); err != nil {
		env.Close()
		return nil, err
	}
	var err error
	env.outFile, env.outMem, err = osutil.CreateMemMappedFile(config.OutputSize)
	if err != nil {
		env.Close()
		return nil, err
	}
	return env, nil
}

func (env *Env) setupInput() error {
	var err error
	size := env.config.MaxSampleSize + 4
	switch env.config.Delivery {
	case DeliverFile:
		env.inputPath, err = osutil.TempFile("i2s-input")
	case DeliverShmem:
		env.inFile, env.inMem, err = osutil.CreateMemMappedFile(size)
	case DeliverSysV:
		env.shmID, err = shm.Get(unix.IPC_PRIVATE, size, 0600|shm.IPC_CREAT)
		if err != nil {
			return fmt.Errorf("failed to create shared memory segment: %w", err)
		}
		env.inMem, err = shm.At(env.shmID, 0, 0)
		if err != nil {
			err = fmt.Errorf("failed to attach shared memory segment: %w", err)
		}
	default:
		err = fmt.Errorf("unknown delivery mode %q", env.config.Delivery)
	}
	return err
}

func (env *Env) closeInput() error {
	var err error
	switch {
	case env.inputPath != "":
		err = os.Remove(env.inputPath)
		env.inputPath = ""
	case env.inFile != nil:
		err = osutil.CloseMemMappedFile(env.inFile, env.inMem)
		env.inFile, env.inMem = nil, nil
	case env.shmID != -1:
		if env.inMem != nil {
			err = shm.Dt(env.inMem)
		}
		if _, err1 := shm.Ctl(env.shmID, shm.IPC_RMID, nil); err == nil {
			err = err1
		}
		env.shmID, env.inMem = -1, nil
	}
	return err
}

func (env *Env) Close() error {
	err1 := env.closeInput()
	var err2 error
	if env.outFile != nil {
		err2 = osutil.CloseMemMappedFile(env.outFile, env.outMem)
		env.outFile, env.outMem = nil, nil
	}
	return errors.Join(err1, err2)
}

// Deliver makes s the input of the next Run.
func (env *Env) Deliver(s *sample.Sample) error {
	if s.Len() > env.config.MaxSampleSize {
		return fmt.Errorf("sample of size %v does not fit into %v bytes", s.Len(), env.config.MaxSampleSize)
	}
	if env.inputPath != "" {
		if err := osutil.WriteFile(env.inputPath, s.Bytes()); err != nil {
			return fmt.Errorf("failed to write input file: %w", err)
		}
		return nil
	}
	if env.inMem == nil {
		return fmt.Errorf("input is not set up")
	}
	binary.LittleEndian.PutUint32(env.inMem, uint32(s.Len()))
	copy(env.inMem[4:], s.Bytes())
	return nil
}

// Reset recreates the input channel and clears the comparison trace.
// The next run gets the additional init timeout.
func (env *Env) Reset() error {
	statResets.Add(1)
	env.fresh = true
	env.clearComparisons()
	if err := env.closeInput(); err != nil {
		log.Logf(1, "failed to close target input: %v", err)
	}
	return env.setupInput()
}

// Run executes argv and waits for it to finish.
// The timeout is extended by initTimeout for the first run after MakeEnv/Reset.
func (env *Env) Run(argv []string, initTimeout, timeout time.Duration) RunResult {
	if len(argv) == 0 {
		return Error
	}
	if env.fresh {
		timeout += initTimeout
		env.fresh = false
	}
	args := make([]string, len(argv))
	for i, arg := range argv {
		args[i] = strings.ReplaceAll(arg, InputFileArg, env.inputPath)
	}
	cmd := osutil.Command(args[0], args[1:]...)
	cmd.ExtraFiles = make([]*os.File, cmplogFD-2)
	cmd.ExtraFiles[inputFD-3] = env.inFile
	cmd.ExtraFiles[cmplogFD-3] = env.outFile
	cmd.Env = append(os.Environ(), fmt.Sprintf("%v=%v", CmplogFDEnv, cmplogFD))
	if env.shmID != -1 {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%v=%v", ShmIDEnv, env.shmID))
	}
	if env.config.Debug {
		cmd.Stdout = log.VerboseWriter(0)
		cmd.Stderr = log.VerboseWriter(0)
	}
	statExecs.Add(1)
	start := time.Now()
	if err := cmd.Start(); err != nil {
		log.Logf(0, "failed to start target %v: %v", args[0], err)
		return Error
	}
	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()
	t := time.NewTimer(timeout)
	defer t.Stop()
	var err error
	select {
	case err = <-done:
	case <-t.C:
		osutil.KillPgroup(cmd)
		<-done
		statTimeouts.Add(1)
		return Timeout
	}
	env.execTime.Save(time.Since(start))
	res := env.exitResult(err)
	if res == Crash {
		statCrashes.Add(1)
	}
	return res
}

func (env *Env) exitResult(err error) RunResult {
	if err == nil {
		return Ok
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return Error
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return Crash
	}
	if code := exitErr.ExitCode(); env.config.CrashExitCode != 0 && code == env.config.CrashExitCode {
		return Crash
	}
	return Ok
}

// Comparisons returns the comparison trace of the last run.
// If clear is set, the trace is cleared for the next run.
func (env *Env) Comparisons(clear bool) (cmplog.Trace, error) {
	trace, err := cmplog.Unmarshal(env.outMem)
	if clear {
		env.clearComparisons()
	}
	return trace, err
}

func (env *Env) clearComparisons() {
	if env.outMem != nil {
		binary.LittleEndian.PutUint32(env.outMem, 0)
	}
}

// AvgExecTime returns the average duration of a finished target execution.
func (env *Env) AvgExecTime() time.Duration {
	return env.execTime.Value()
}

func (env *Env) String() string {
	mode := string(env.config.Delivery)
	if env.shmID != -1 {
		mode += " " + strconv.Itoa(env.shmID)
	}
	return fmt.Sprintf("env(%v, avg exec %v)", mode, env.AvgExecTime())
}
