// Package testutil provides a harness for end-to-end tests that run the whole
// generator against HCL options written to a temporary directory.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cianwilson/TerraFERMA/internal/app"
	"github.com/cianwilson/TerraFERMA/internal/hcl_adapter"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Reset discards everything written so far.
func (b *SafeBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.b.Reset()
}

// Harness is a prepared options directory and output directory.
type Harness struct {
	t          *testing.T
	OptionsDir string
	OutputDir  string
	Logs       *SafeBuffer
}

// HarnessResult holds the outcomes of one generator run.
type HarnessResult struct {
	LogOutput string
	Err       error
	OutputDir string
}

// NewHarness writes files, keyed by path relative to the options
// directory, into a fresh temporary tree.
func NewHarness(t *testing.T, files map[string]string) *Harness {
	t.Helper()

	root := t.TempDir()
	h := &Harness{
		t:          t,
		OptionsDir: filepath.Join(root, "options"),
		OutputDir:  filepath.Join(root, "build"),
		Logs:       &SafeBuffer{},
	}
	require.NoError(t, os.MkdirAll(h.OptionsDir, 0o755))
	for name, content := range files {
		h.WriteOption(name, content)
	}
	return h
}

// WriteOption creates or replaces one options file.
func (h *Harness) WriteOption(name, content string) {
	h.t.Helper()
	path := filepath.Join(h.OptionsDir, name)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0o644))
}

// Run runs the generator once. mutate may adjust the configuration before
// the app is built.
func (h *Harness) Run(mutate func(*app.Config)) *HarnessResult {
	h.t.Helper()
	h.Logs.Reset()

	cfg, err := app.NewConfig(app.Config{
		OptionsPath: h.OptionsDir,
		OutputDir:   h.OutputDir,
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
	})
	require.NoError(h.t, err)
	if mutate != nil {
		mutate(cfg)
	}

	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("generator panicked | %v", r)
			}
		}()
		runErr = app.NewApp(h.Logs, cfg, hcl_adapter.NewLoaderWithEnv(nil)).Run(context.Background())
	}()

	if os.Getenv("TFGEN_TEST_LOGS") == "true" {
		h.t.Logf("--- Full Log Output for %s ---\n%s", h.t.Name(), h.Logs.String())
	}

	return &HarnessResult{
		LogOutput: h.Logs.String(),
		Err:       runErr,
		OutputDir: h.OutputDir,
	}
}

// RunGeneration is a one-shot shorthand for NewHarness followed by Run.
func RunGeneration(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return NewHarness(t, files).Run(nil)
}
