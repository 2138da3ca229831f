//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=builder

package builder

import (
	"context"
	"time"

	"github.com/sc2pc/sc2pc/pkg/model"
)

// API is the part of the SoundCloud client used to enumerate tracks.
type API interface {
	ResolveUser(ctx context.Context, profileURL string) (*model.User, error)
	UserStream(ctx context.Context, userID int64, pageSize int, since time.Time) ([]*model.Activity, error)
}
