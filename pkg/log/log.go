// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package log provides functionality similar to standard log package with some extensions:
//   - verbosity levels
//   - global verbosity setting that can be used by multiple packages
//   - prefixed loggers for concurrent workers
//   - ability to cache recent output in memory
package log

import (
	"bytes"
	"flag"
	"fmt"
	golog "log"
	"sync"
	"time"
)

var (
	flagV        = flag.Int("vv", 0, "verbosity")
	mu           sync.Mutex
	cacheMem     int
	cacheMaxMem  int
	cachePos     int
	cacheEntries []string
	prependTime  = true // for testing
)

// EnableLogCaching enables in memory caching of log output.
// Caches up to maxLines, but no more than maxMem bytes.
// Cached output can later be queried with CachedLogOutput.
func EnableLogCaching(maxLines, maxMem int) {
	mu.Lock()
	defer mu.Unlock()
	if cacheEntries != nil {
		Fatalf("log caching is already enabled")
	}
	if maxLines < 1 || maxMem < 1 {
		panic("invalid maxLines/maxMem")
	}
	cacheMaxMem = maxMem
	cacheEntries = make([]string, maxLines)
}

// CachedLogOutput retrieves cached log output.
func CachedLogOutput() string {
	mu.Lock()
	defer mu.Unlock()
	buf := new(bytes.Buffer)
	for i := range cacheEntries {
		pos := (cachePos + i) % len(cacheEntries)
		if cacheEntries[pos] == "" {
			continue
		}
		buf.WriteString(cacheEntries[pos])
		buf.Write([]byte{'\n'})
	}
	return buf.String()
}

func Logf(v int, msg string, args ...any) {
	mu.Lock()
	doLog := v <= *flagV
	if cacheEntries != nil && v <= 1 {
		cacheLocked(fmt.Sprintf(msg, args...))
	}
	mu.Unlock()

	if doLog {
		golog.Printf(msg, args...)
	}
}

func cacheLocked(text string) {
	cacheMem -= len(cacheEntries[cachePos])
	if cacheMem < 0 {
		panic("log cache size underflow")
	}
	if prependTime {
		text = time.Now().Format("2006/01/02 15:04:05 ") + text
	}
	cacheEntries[cachePos] = text
	cacheMem += len(text)
	cachePos++
	if cachePos == len(cacheEntries) {
		cachePos = 0
	}
	for i := 0; i < len(cacheEntries)-1 && cacheMem > cacheMaxMem; i++ {
		pos := (cachePos + i) % len(cacheEntries)
		cacheMem -= len(cacheEntries[pos])
		cacheEntries[pos] = ""
	}
	if cacheMem < 0 {
		panic("log cache size underflow")
	}
}

func Fatalf(msg string, args ...any) {
	golog.Fatalf(msg, args...)
}

// Logger prepends a fixed prefix to every message.
// Workers use it to tag their output, e.g. "worker 3: ...".
type Logger struct {
	prefix string
}

func NewLogger(format string, args ...any) *Logger {
	return &Logger{prefix: fmt.Sprintf(format, args...) + ": "}
}

func (l *Logger) Logf(v int, msg string, args ...any) {
	if l == nil {
		Logf(v, msg, args...)
		return
	}
	Logf(v, l.prefix+msg, args...)
}

type VerboseWriter int

func (w VerboseWriter) Write(data []byte) (int, error) {
	Logf(int(w), "%s", data)
	return len(data), nil
}
