//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=feed

package feed

import (
	"context"
)

type fileStorage interface {
	List(ctx context.Context, prefix string, suffix string) ([]string, error)
	Size(ctx context.Context, name string) (int64, error)
	URL(ctx context.Context, name string) (string, error)
}
