package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirHealthChecker(t *testing.T) {
	ctx := t.Context()
	dir := t.TempDir()

	assert.True(t, NewDirHealthChecker(dir).Healthy(ctx), "empty dir")

	file := filepath.Join(dir, "truth.txt")
	require.NoError(t, os.WriteFile(file, []byte("a O\n"), 0644))
	assert.True(t, NewDirHealthChecker(dir).Healthy(ctx), "non-empty dir")

	assert.False(t, NewDirHealthChecker(filepath.Join(dir, "missing")).Healthy(ctx))
	assert.False(t, NewDirHealthChecker(file).Healthy(ctx), "regular file")
}

func TestOkHealthChecker(t *testing.T) {
	assert.True(t, NewOkHealthChecker().Healthy(t.Context()))
}
