// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package ipc

// RunResult is the outcome of a single target execution.
type RunResult int

const (
	// Ok means that the target finished on its own (with any exit status except the crash one).
	Ok RunResult = iota
	// Error means that the target could not be started.
	Error
	// Timeout means that the target was killed after the timeout.
	Timeout
	// Crash means that the target was killed by a signal or exited with the crash exit code.
	Crash
)

func (res RunResult) String() string {
	switch res {
	case Ok:
		return "ok"
	case Error:
		return "error"
	case Timeout:
		return "timeout"
	case Crash:
		return "crash"
	default:
		return "unknown"
	}
}
