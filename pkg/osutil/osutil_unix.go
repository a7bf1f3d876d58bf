// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build freebsd || netbsd || openbsd || linux || darwin

package osutil

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Command is similar to os/exec.Command, but puts the process into its own process group
// (so that KillPgroup kills all of its children) and sets PDEATHSIG on linux.
func Command(bin string, args ...string) *exec.Cmd {
	cmd := exec.Command(bin, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	setPdeathsig(cmd)
	return cmd
}

// KillPgroup kills the process group started with Command.
func KillPgroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	cmd.Process.Kill()
}

// CreateMemMappedFile creates a temp file with the requested size and maps it into memory.
func CreateMemMappedFile(size int) (f *os.File, mem []byte, err error) {
	f, err = CreateSharedMemFile(size)
	if err != nil {
		return
	}
	if err = f.Truncate(int64(size)); err != nil {
		err = fmt.Errorf("failed to truncate shared mem file: %w", err)
		CloseSharedMemFile(f)
		return
	}
	mem, err = unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		err = fmt.Errorf("failed to mmap shm file: %w", err)
		CloseSharedMemFile(f)
	}
	return
}

// CloseMemMappedFile destroys memory mapping created by CreateMemMappedFile.
func CloseMemMappedFile(f *os.File, mem []byte) error {
	err1 := unix.Munmap(mem)
	err2 := CloseSharedMemFile(f)
	switch {
	case err1 != nil:
		return err1
	case err2 != nil:
		return err2
	default:
		return nil
	}
}

// HandleInterrupts returns a context that is canceled on the first SIGINT/SIGTERM
// (expecting that the program will gracefully shutdown and exit)
// and terminates the process on the third one.
func HandleInterrupts(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		c := make(chan os.Signal, 3)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		<-c
		cancel()
		fmt.Fprint(os.Stderr, "SIGINT: shutting down...\n")
		<-c
		fmt.Fprint(os.Stderr, "SIGINT: shutting down harder...\n")
		<-c
		fmt.Fprint(os.Stderr, "SIGINT: terminating\n")
		os.Exit(int(syscall.SIGINT))
	}()
	return ctx
}
