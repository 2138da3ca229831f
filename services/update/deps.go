//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=update

package update

import (
	"context"
	"time"

	"github.com/sc2pc/sc2pc/pkg/feed"
	"github.com/sc2pc/sc2pc/pkg/model"
)

type trackSource interface {
	Build(ctx context.Context, show *feed.Show, since time.Time) ([]*model.Track, error)
}

type streamResolver interface {
	StreamURL(ctx context.Context, transcodingURL string) (string, error)
}

type remuxer interface {
	Remux(ctx context.Context, streamURL string, outputPath string) error
}
