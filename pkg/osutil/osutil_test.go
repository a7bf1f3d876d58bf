// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package osutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempFile(t *testing.T) {
	name, err := TempFile("i2s-test")
	require.NoError(t, err)
	defer os.Remove(name)
	_, err = os.Stat(name)
	assert.NoError(t, err)
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "b"), []byte("b")))
	require.NoError(t, WriteFile(filepath.Join(dir, "a"), []byte("a")))
	require.NoError(t, MkdirAll(filepath.Join(dir, "c")))
	files, err := ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a"), filepath.Join(dir, "b")}, files)
}

func TestMemMappedFile(t *testing.T) {
	const size = 4 << 10
	f, mem, err := CreateMemMappedFile(size)
	require.NoError(t, err)
	require.Len(t, mem, size)
	copy(mem, "hello")
	data := make([]byte, 5)
	_, err = f.ReadAt(data, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	require.NoError(t, CloseMemMappedFile(f, mem))
}
