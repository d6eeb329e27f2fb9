// Package writer commits generated files to disk only when their content
// changed.
//
// Build tools track generated sources by modification time, so rewriting an
// identical file would trigger needless recompilation. Every commit stages
// the new content next to the target, compares content digests and replaces
// the target only on a mismatch.
package writer

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cianwilson/TerraFERMA/internal/ctxlog"
	"github.com/spf13/afero"
)

// StagingSuffix is appended to a target's name to form its staging file.
const StagingSuffix = ".temp"

// Outcome reports what a commit did to the target file.
type Outcome int

const (
	Unchanged Outcome = iota
	Changed
)

func (o Outcome) String() string {
	if o == Changed {
		return "changed"
	}
	return "unchanged"
}

// Writer commits rendered files under a root directory.
type Writer struct {
	fs   afero.Fs
	root string
	perm fs.FileMode
}

// New returns a Writer placing files under root on fsys.
func New(fsys afero.Fs, root string) *Writer {
	return &Writer{fs: fsys, root: root, perm: 0o644}
}

// NewOS returns a Writer on the operating system's filesystem.
func NewOS(root string) *Writer {
	return New(afero.NewOsFs(), root)
}

// Path returns where filename is committed.
func (w *Writer) Path(filename string) string {
	return filepath.Join(w.root, filename)
}

// Commit writes text to filename's staging file and replaces filename with
// it if their digests differ or filename does not exist yet. The staging file
// is left in place.
func (w *Writer) Commit(ctx context.Context, filename, text string) (Outcome, error) {
	logger := ctxlog.FromContext(ctx)
	target := w.Path(filename)
	staging := target + StagingSuffix

	if err := w.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Unchanged, fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := afero.WriteFile(w.fs, staging, []byte(text), w.perm); err != nil {
		return Unchanged, fmt.Errorf("failed to write staging file %s: %w", staging, err)
	}

	committed, err := w.digest(target)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Unchanged, fmt.Errorf("failed to read committed file %s: %w", target, err)
	}
	staged, err := w.digest(staging)
	if err != nil {
		return Unchanged, fmt.Errorf("failed to read staging file %s: %w", staging, err)
	}

	if committed != nil && *committed == *staged {
		logger.Debug("Generated file unchanged.", "file", target)
		return Unchanged, nil
	}

	if err := w.replace(staging, target); err != nil {
		return Unchanged, err
	}
	logger.Debug("Generated file replaced.", "file", target, "first_commit", committed == nil)
	return Changed, nil
}

// digest hashes the content of path.
func (w *Writer) digest(path string) (*[sha256.Size]byte, error) {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	return &sum, nil
}

// replace copies staging over target through a uniquely named sibling and a
// rename, so readers never observe a partially written target.
func (w *Writer) replace(staging, target string) error {
	data, err := afero.ReadFile(w.fs, staging)
	if err != nil {
		return fmt.Errorf("failed to read staging file %s: %w", staging, err)
	}

	tmp, err := afero.TempFile(w.fs, filepath.Dir(target), filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", target, err)
	}
	tmpName := tmp.Name()
	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = w.fs.Chmod(tmpName, w.perm)
	}
	if werr != nil {
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("failed to write temporary file for %s: %w", target, werr)
	}

	if err := w.fs.Rename(tmpName, target); err != nil {
		_ = w.fs.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}
	return nil
}
