package builder

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/sc2pc/sc2pc/pkg/feed"
	"github.com/sc2pc/sc2pc/pkg/model"
)

// ActivityTrack is the only stream entry type that is downloaded
const ActivityTrack = "track"

type SoundCloudBuilder struct {
	client   API
	pageSize int
	logger   log.FieldLogger
}

func NewSoundCloudBuilder(client API, pageSize int, logger log.FieldLogger) *SoundCloudBuilder {
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}
	return &SoundCloudBuilder{client: client, pageSize: pageSize, logger: logger}
}

// Build returns the tracks of a show that appeared in its stream after since,
// oldest first.
func (s *SoundCloudBuilder) Build(ctx context.Context, show *feed.Show, since time.Time) ([]*model.Track, error) {
	user, err := s.client.ResolveUser(ctx, show.SoundCloudURL)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, errors.Errorf("URL is not valid: %s", show.SoundCloudURL)
	}

	s.logger.Infof("retrieving all tracks & reposts of user %s...", user.Username)
	activities, err := s.client.UserStream(ctx, user.ID, s.pageSize, since)
	if err != nil {
		return nil, err
	}

	var tracks []*model.Track
	for _, item := range activities {
		if item.Type != ActivityTrack || item.Track == nil {
			continue
		}

		if !item.CreatedAt.After(since) {
			continue
		}

		// Reposts keep their original upload time, use the stream time instead
		item.Track.CreatedAt = item.CreatedAt

		tracks = append(tracks, item.Track)
	}

	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].CreatedAt.Before(tracks[j].CreatedAt)
	})

	s.logger.Infof("found %d tracks", len(tracks))
	return tracks, nil
}
