package config

import (
	"context"

	"github.com/cianwilson/TerraFERMA/internal/bucket"
)

// Loader is the interface for a format-specific options loader.
type Loader interface {
	// Load reads the options found at the given paths (files or
	// directories) and translates them into a single bucket.
	Load(ctx context.Context, paths ...string) (*bucket.Bucket, error)
}
