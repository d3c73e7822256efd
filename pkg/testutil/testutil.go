// Package testutil provides testing utilities for the hashlab application
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// WriteArtifact writes content to name inside dir, bypassing the DAO. Tests
// use it to seed state or to corrupt an artifact on purpose.
func WriteArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()

	filePath := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644), "write %s", filePath)
	return filePath
}

// ReadArtifact returns the raw content of name inside dir.
func ReadArtifact(t *testing.T, dir, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err, "read %s", name)
	return string(data)
}

// AssertNoArtifact fails the test if name exists inside dir.
func AssertNoArtifact(t *testing.T, dir, name string) {
	t.Helper()

	_, err := os.Stat(filepath.Join(dir, name))
	require.Truef(t, os.IsNotExist(err), "expected %s to be absent, got err=%v", name, err)
}

// WithTimeout creates a context with timeout for tests
func WithTimeout(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx, cancel
}
