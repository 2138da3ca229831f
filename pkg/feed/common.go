package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// EpisodeExt is the extension of downloaded episodes
	EpisodeExt = ".mp3"
	// FeedExt is the extension of generated feeds
	FeedExt = ".xml"
)

// EpisodeName returns the file name of a track: {show_id}_{track_id}.mp3
func EpisodeName(showID string, trackID int64) string {
	return fmt.Sprintf("%s_%d%s", showID, trackID, EpisodeExt)
}

// EpisodePrefix is the prefix all episode files of a show share
func EpisodePrefix(showID string) string {
	return showID + "_"
}

// ParseEpisodeName extracts the track id from an episode file name.
func ParseEpisodeName(showID string, name string) (int64, error) {
	prefix := EpisodePrefix(showID)
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, EpisodeExt) {
		return 0, errors.Errorf("%q is not an episode of show %q", name, showID)
	}

	id := strings.TrimSuffix(strings.TrimPrefix(name, prefix), EpisodeExt)
	trackID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid track id in %q", name)
	}

	return trackID, nil
}

// FeedName returns the file name of a show's feed: {show_id}.xml
func FeedName(showID string) string {
	return showID + FeedExt
}

// PublicURL joins the public base URL and a file name.
func PublicURL(baseURL string, name string) string {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + name
}
