package update

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/sc2pc/sc2pc/pkg/builder"
	"github.com/sc2pc/sc2pc/pkg/feed"
	"github.com/sc2pc/sc2pc/pkg/fs"
	"github.com/sc2pc/sc2pc/pkg/metadata"
	"github.com/sc2pc/sc2pc/pkg/model"
)

type Config struct {
	// BaseURL is the public URL the audio directory is served from
	BaseURL string
	// DryRun fetches and filters tracks without writing anything
	DryRun bool
	// NoOPML disables the OPML index
	NoOPML bool
}

// Stats summarizes what happened to a show during a run.
type Stats struct {
	Downloaded int
	Backfilled int
	Skipped    int
	Failed     int
	Orphans    int
}

type Manager struct {
	cfg      Config
	shows    []*feed.Show
	source   trackSource
	resolver streamResolver
	remuxer  remuxer
	metadata *metadata.Log
	fs       fs.Storage
	logger   log.FieldLogger
	index    metadata.Index
}

func NewUpdater(
	cfg Config,
	shows []*feed.Show,
	source trackSource,
	resolver streamResolver,
	remuxer remuxer,
	metadata *metadata.Log,
	fs fs.Storage,
	logger log.FieldLogger,
) *Manager {
	return &Manager{
		cfg:      cfg,
		shows:    shows,
		source:   source,
		resolver: resolver,
		remuxer:  remuxer,
		metadata: metadata,
		fs:       fs,
		logger:   logger,
	}
}

// Run updates every configured show in order, starting each one from its
// entry in starts, and then rebuilds the OPML index.
func (u *Manager) Run(ctx context.Context, starts map[string]time.Time) error {
	index, err := u.metadata.Index()
	if err != nil {
		return errors.Wrap(err, "failed to load metadata")
	}
	u.index = index

	for _, show := range u.shows {
		since, ok := starts[show.ID]
		if !ok {
			return errors.Errorf("no start time for show %q", show.ID)
		}

		if _, err := u.Update(ctx, show, since); err != nil {
			return errors.Wrapf(err, "failed to update show %q", show.ID)
		}
	}

	if u.cfg.NoOPML || u.cfg.DryRun {
		return nil
	}

	if err := u.buildOPML(ctx); err != nil {
		return errors.Wrap(err, "opml build failed")
	}

	return nil
}

// Update downloads the new tracks of a show and regenerates its feed.
func (u *Manager) Update(ctx context.Context, show *feed.Show, since time.Time) (*Stats, error) {
	logger := u.logger.WithField("show_id", show.ID)
	logger.Infof("-> updating %s since %s", show.SoundCloudURL, since.Format(time.RFC3339))

	started := time.Now()

	if u.index == nil {
		index, err := u.metadata.Index()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load metadata")
		}
		u.index = index
	}

	reconciliation, err := u.reconcile(ctx, show)
	if err != nil {
		return nil, errors.Wrap(err, "reconciliation failed")
	}

	tracks, err := u.source.Build(ctx, show, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch tracks")
	}

	logger.Debugf("received %d track(s)", len(tracks))

	stats, err := u.downloadTracks(ctx, show, tracks, reconciliation, logger)
	if err != nil {
		return nil, errors.Wrap(err, "download failed")
	}

	if u.cfg.DryRun {
		logger.Info("dry run, not writing feed")
		return stats, nil
	}

	orphans, err := u.buildXML(ctx, show, logger)
	if err != nil {
		return nil, errors.Wrap(err, "xml build failed")
	}
	stats.Orphans = orphans

	logger.WithFields(log.Fields{
		"downloaded": stats.Downloaded,
		"backfilled": stats.Backfilled,
		"skipped":    stats.Skipped,
		"failed":     stats.Failed,
	}).Infof("successfully updated show in %s", time.Since(started))

	return stats, nil
}

// reconcile matches the episode files of a show against the metadata index.
func (u *Manager) reconcile(ctx context.Context, show *feed.Show) (*metadata.Reconciliation, error) {
	names, err := u.fs.List(ctx, feed.EpisodePrefix(show.ID), feed.EpisodeExt)
	if err != nil {
		return nil, err
	}

	files := make([]int64, 0, len(names))
	for _, name := range names {
		trackID, err := feed.ParseEpisodeName(show.ID, name)
		if err != nil {
			continue
		}
		files = append(files, trackID)
	}

	result := metadata.Reconcile(u.index, show.ID, files)
	if len(result.Missing) > 0 {
		u.logger.WithField("show_id", show.ID).Warnf("%d recorded track(s) have no file on disk", len(result.Missing))
	}

	return result, nil
}

func (u *Manager) downloadTracks(
	ctx context.Context,
	show *feed.Show,
	tracks []*model.Track,
	reconciliation *metadata.Reconciliation,
	showLogger log.FieldLogger,
) (*Stats, error) {
	stats := &Stats{}

	for idx, track := range tracks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			logger      = showLogger.WithFields(log.Fields{"index": idx, "track_id": track.ID})
			episodeName = feed.EpisodeName(show.ID, track.ID)
		)

		logger.Infof("downloading %d: (%s) %q", idx, track.CreatedAt.Format(time.RFC3339), track.Title)

		transcoding, err := builder.SelectTranscoding(track)
		if err != nil {
			if err == builder.ErrNoMP3Transcoding {
				logger = logger.WithField("transcodings", builder.Describe(track.Transcodings))
			}
			logger.WithError(err).Warn("skipping track")
			stats.Skipped++
			continue
		}

		if reconciliation.Has(show.ID, track.ID) {
			logger.Infof("skipping due to already downloaded")
			stats.Skipped++
			continue
		}

		record := model.NewRecord(show.ID, track)

		if reconciliation.Orphan(show.ID, track.ID) {
			// The file made it to disk but its record did not
			if u.cfg.DryRun {
				logger.Infof("would add missing metadata for %q", episodeName)
				continue
			}

			logger.Infof("episode %q already exists on disk, adding metadata", episodeName)
			if err := u.addRecord(record, reconciliation); err != nil {
				return nil, err
			}
			stats.Backfilled++
			continue
		}

		if u.cfg.DryRun {
			logger.Infof("would download %s", track.PermalinkURL)
			continue
		}

		streamURL, err := u.resolver.StreamURL(ctx, transcoding.URL)
		if err != nil {
			logger.WithError(err).Error("failed to resolve stream url")
			stats.Failed++
			continue
		}

		path := u.fs.Path(episodeName)

		logger.Debugf("remuxing to %s", path)
		if err := u.remuxer.Remux(ctx, streamURL, path); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.WithError(err).Error("failed to download track")
			stats.Failed++
			continue
		}

		if err := u.addRecord(record, reconciliation); err != nil {
			return nil, err
		}

		logger.Infof("successfully downloaded %q", episodeName)
		stats.Downloaded++

		env := feed.EpisodeEnv(show, track.ID, record.Title, path)
		for i, hook := range show.OnDownload {
			if err := hook.Invoke(ctx, env); err != nil {
				logger.WithError(err).Errorf("on_download hook %d failed", i)
			}
		}
	}

	if len(tracks) == 0 {
		showLogger.Info("no tracks to download")
	}

	return stats, nil
}

func (u *Manager) addRecord(record *model.Record, reconciliation *metadata.Reconciliation) error {
	if err := u.metadata.Append(record); err != nil {
		return errors.Wrapf(err, "failed to write metadata of track %d", record.TrackID)
	}

	u.index.Add(record)
	reconciliation.Mark(record.ShowID, record.TrackID)
	return nil
}

func (u *Manager) buildXML(ctx context.Context, show *feed.Show, logger log.FieldLogger) (int, error) {
	logger.Debug("building podcast feed")
	result, err := feed.Build(ctx, show, u.index.Show(show.ID), u.fs, u.cfg.BaseURL, logger)
	if err != nil {
		return 0, err
	}

	if len(result.Orphans) > 0 {
		logger.Warnf("%d episode file(s) left out of the feed", len(result.Orphans))
	}

	reader := strings.NewReader(result.Podcast.String())
	if _, err := u.fs.Create(ctx, feed.FeedName(show.ID), reader); err != nil {
		return 0, errors.Wrap(err, "failed to write XML feed")
	}

	return len(result.Orphans), nil
}

func (u *Manager) buildOPML(ctx context.Context) error {
	u.logger.Debug("building podcast OPML")
	opml, err := feed.BuildOPML(u.shows, u.cfg.BaseURL)
	if err != nil {
		return err
	}

	if _, err := u.fs.Create(ctx, feed.OPMLName, strings.NewReader(opml)); err != nil {
		return errors.Wrap(err, "failed to write OPML")
	}

	return nil
}
