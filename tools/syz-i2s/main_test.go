// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build linux

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/i2sfuzz/pkg/colorize"
	"github.com/google/i2sfuzz/pkg/mgrconfig"
	"github.com/google/i2sfuzz/pkg/runner"
	"github.com/google/i2sfuzz/pkg/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testResults() []*runner.Result {
	changed := &runner.Result{
		Name:      "/seeds/a.xz",
		Original:  sample.New([]byte("aaaa")),
		Mutated:   sample.New([]byte("abcd")),
		Colorized: sample.New([]byte("xyzw")),
		Colorize: &colorize.Result{
			Steps:     3,
			Successes: 1,
			Fails:     2,
			Resolved:  []sample.Range{sample.MakeRange(0, 4)},
		},
		Rounds:    4,
		Successes: 1,
	}
	unchanged := &runner.Result{
		Name:      "/seeds/b",
		Original:  sample.New([]byte("bb")),
		Mutated:   sample.New([]byte("bb")),
		Colorized: sample.New([]byte("qq")),
		Colorize:  &colorize.Result{Steps: 1, Successes: 1, Resolved: []sample.Range{sample.MakeRange(0, 2)}},
		Rounds:    4,
	}
	failed := &runner.Result{
		Name:      "/seeds/c",
		Original:  sample.New([]byte("c")),
		Mutated:   sample.New([]byte("c")),
		Colorized: sample.New([]byte("c")),
		Colorize:  &colorize.Result{BaselineFailed: true},
	}
	return []*runner.Result{changed, unchanged, failed, nil}
}

func TestLoadSeeds(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, sample.Save(filepath.Join(dir, "big"), sample.New(make([]byte, 100))))
	require.NoError(t, sample.Save(filepath.Join(dir, "small.xz"), sample.New(make([]byte, 10))))
	seeds, skipped, err := loadSeeds(dir, 50)
	require.NoError(t, err)
	require.Len(t, seeds, 1)
	assert.Equal(t, filepath.Join(dir, "small.xz"), seeds[0].Name)
	assert.Equal(t, 10, seeds[0].Sample.Len())
	assert.Equal(t, []string{filepath.Join(dir, "big")}, skipped)
}

func TestReport(t *testing.T) {
	cfg := &mgrconfig.Config{
		Name:     "test",
		Target:   []string{"./target", "@@"},
		Delivery: "file",
	}
	rep := makeReport(cfg, "session", testResults(), []string{"/seeds/d"}, 3*time.Second)
	assert.Equal(t, 4, rep.Seeds)
	assert.Equal(t, 3, rep.Processed)
	assert.Equal(t, 1, rep.Changed)
	require.Len(t, rep.Samples, 3)
	assert.Equal(t, "a.xz", rep.Samples[0].Name)
	assert.Equal(t, 4, rep.Samples[0].ColorizedBytes)
	assert.True(t, rep.Samples[0].Changed)
	assert.True(t, rep.Samples[2].BaselineFailed)

	file := filepath.Join(t.TempDir(), reportFile)
	require.NoError(t, saveReport(file, rep))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	loaded := new(Report)
	require.NoError(t, yaml.Unmarshal(data, loaded))
	assert.Equal(t, rep, loaded)
}

func TestSaveResults(t *testing.T) {
	for _, compress := range []bool{false, true} {
		dir := t.TempDir()
		require.NoError(t, saveResults(dir, testResults(), compress))
		ext := ""
		if compress {
			ext = ".xz"
		}
		colorized, err := sample.LoadDir(filepath.Join(dir, colorizedDir))
		require.NoError(t, err)
		require.Len(t, colorized, 2)
		assert.Equal(t, filepath.Join(dir, colorizedDir, "a"+ext), colorized[0].Name)
		assert.Equal(t, "xyzw", string(colorized[0].Sample.Bytes()))
		assert.Equal(t, "qq", string(colorized[1].Sample.Bytes()))
		mutated, err := sample.LoadDir(filepath.Join(dir, mutatedDir))
		require.NoError(t, err)
		require.Len(t, mutated, 1)
		assert.Equal(t, "abcd", string(mutated[0].Sample.Bytes()))
	}
}

func TestHTTP(t *testing.T) {
	mux := newServeMux(&mgrconfig.Config{Name: "test"})
	for _, path := range []string{"/stats", "/metrics", "/log"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Contains(t, rec.Body.String(), "seeds left")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestSaveResultsNameClash(t *testing.T) {
	var results []*runner.Result
	for _, name := range []string{"/seeds/a", "/seeds/a.xz", "/seeds/a-1"} {
		results = append(results, &runner.Result{
			Name:      name,
			Original:  sample.New([]byte(name)),
			Mutated:   sample.New([]byte(name)),
			Colorized: sample.New([]byte(name)),
			Colorize:  &colorize.Result{},
		})
	}
	dir := t.TempDir()
	require.NoError(t, saveResults(dir, results, false))
	colorized, err := sample.LoadDir(filepath.Join(dir, colorizedDir))
	require.NoError(t, err)
	var got []string
	for _, f := range colorized {
		got = append(got, filepath.Base(f.Name)+"="+string(f.Sample.Bytes()))
	}
	assert.Equal(t, []string{"a=/seeds/a", "a-1=/seeds/a.xz", "a-1-1=/seeds/a-1"}, got)
}
