package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "a/b.txt", formatPath("a/b.txt", false, false))
	assert.Equal(t, "a/b/", formatPath("a/b", false, true))
	assert.Equal(t, "a/b/", formatPath("a/b/", false, true))
}

func TestFormatPathAbsolute(t *testing.T) {
	wd, err := filepath.Abs(".")
	require.NoError(t, err)

	want := filepath.ToSlash(filepath.Join(wd, "a", "b.txt"))
	assert.Equal(t, want, formatPath("a/b.txt", true, false))
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"case-sensitive", "absolute", "dirs-only", "no-color", "trace"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
}
