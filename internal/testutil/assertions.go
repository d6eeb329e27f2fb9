package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertCommitted checks the log output of a run to confirm that file was
// committed with the given outcome ("changed" or "unchanged").
func AssertCommitted(t *testing.T, result *HarnessResult, file, outcome string) {
	t.Helper()

	expected := fmt.Sprintf("file=%s outcome=%s", file, outcome)
	require.True(t,
		strings.Contains(result.LogOutput, expected),
		"expected %s to be committed as %s, logs:\n%s", file, outcome, result.LogOutput,
	)
}

// ReadGenerated returns the content of a committed file.
func ReadGenerated(t *testing.T, result *HarnessResult, file string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(result.OutputDir, file))
	require.NoError(t, err, "generated file %s is missing", file)
	return string(data)
}

// ModTime returns the modification time of a committed file.
func ModTime(t *testing.T, result *HarnessResult, file string) int64 {
	t.Helper()

	info, err := os.Stat(filepath.Join(result.OutputDir, file))
	require.NoError(t, err)
	return info.ModTime().UnixNano()
}
