package fs

import (
	"context"
	"io"
)

// Storage is a flat directory hosting downloaded episodes and feeds.
type Storage interface {
	// Create will create (or replace) a file from reader
	Create(ctx context.Context, name string, reader io.Reader) (int64, error)

	// Size returns the size of the file in bytes, os.ErrNotExist when it's missing
	Size(ctx context.Context, name string) (int64, error)

	// List returns the names of files starting with prefix and ending with suffix
	List(ctx context.Context, prefix string, suffix string) ([]string, error)

	// URL returns the public URL of the file
	URL(ctx context.Context, name string) (string, error)

	// Path returns the local path of the file
	Path(name string) string
}
