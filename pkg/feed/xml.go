package feed

import (
	"context"
	"fmt"
	"sort"
	"time"

	itunes "github.com/eduncan911/podcast"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/sc2pc/sc2pc/pkg/model"
)

const (
	generator       = "sc2pc"
	defaultCategory = "Music"
)

type episode struct {
	name   string
	size   int64
	record *model.Record
}

// Result is a built podcast along with the files that could not be listed in it.
type Result struct {
	Podcast *itunes.Podcast
	// Orphans are episode files without a metadata record
	Orphans []string
}

// Build generates the podcast of a show from the episode files on disk.
// Each file must have a metadata record (keyed by track id), files without
// one are left out of the feed and reported in Result.Orphans.
func Build(ctx context.Context, show *Show, records map[int64]*model.Record, storage fileStorage, baseURL string, logger log.FieldLogger) (*Result, error) {
	names, err := storage.List(ctx, EpisodePrefix(show.ID), EpisodeExt)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list episodes of %q", show.ID)
	}

	var (
		result   = &Result{}
		episodes []*episode
	)

	for _, name := range names {
		trackID, err := ParseEpisodeName(show.ID, name)
		if err != nil {
			logger.WithError(err).Warnf("skipping unexpected file %q", name)
			continue
		}

		record, ok := records[trackID]
		if !ok {
			logger.WithField("track_id", trackID).Warnf("no metadata for %q, leaving it out of the feed", name)
			result.Orphans = append(result.Orphans, name)
			continue
		}

		size, err := storage.Size(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get size of %q", name)
		}

		episodes = append(episodes, &episode{name: name, size: size, record: record})
	}

	// Same order as the log: oldest first, ties broken by track id
	sort.SliceStable(episodes, func(i, j int) bool {
		di, dj := episodes[i].record.Date.Time(), episodes[j].record.Date.Time()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return episodes[i].record.TrackID < episodes[j].record.TrackID
	})

	var (
		now     = time.Now().UTC()
		pubDate = now
		loc     = show.Location()
		author  = show.Name
	)

	if len(episodes) > 0 {
		pubDate = episodes[len(episodes)-1].record.Date.Time().In(loc)
	}

	if show.Custom.Author != "" {
		author = show.Custom.Author
	}

	p := itunes.New(show.Name, show.SoundCloudURL, show.Description, &pubDate, &now)
	p.Generator = generator
	p.AddSubTitle(show.Name)
	p.AddSummary(show.Description)
	p.AddImage(show.ImageURL)
	p.AddAtomLink(PublicURL(baseURL, FeedName(show.ID)))
	p.IAuthor = author

	if show.Custom.Category != "" {
		p.AddCategory(show.Custom.Category, nil)
	} else {
		p.AddCategory(defaultCategory, nil)
	}

	if show.Custom.Explicit {
		p.IExplicit = "yes"
	} else {
		p.IExplicit = "no"
	}

	if show.Custom.Language != "" {
		p.Language = show.Custom.Language
	}

	for _, ep := range episodes {
		var (
			record = ep.record
			date   = record.Date.Time().In(loc)
		)

		downloadURL, err := storage.URL(ctx, ep.name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get URL of %q", ep.name)
		}

		item := itunes.Item{
			GUID:        fmt.Sprint(record.TrackID),
			Link:        downloadURL,
			Title:       record.Title,
			Description: record.Description,
		}

		// p.AddItem requires title and description to be not empty
		if item.Title == "" {
			item.Title = fmt.Sprintf("Track %d", record.TrackID)
		}
		if item.Description == "" {
			item.Description = " "
		}

		item.AddPubDate(&date)
		item.AddEnclosure(downloadURL, itunes.MP3, ep.size)

		if _, err := p.AddItem(item); err != nil {
			return nil, errors.Wrapf(err, "failed to add item to podcast (id %d)", record.TrackID)
		}
	}

	result.Podcast = &p
	return result, nil
}
