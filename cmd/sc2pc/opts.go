package main

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sc2pc/sc2pc/pkg/feed"
)

type Opts struct {
	Since        Since         `long:"since" value-name:"DATE" description:"Download tracks published after DATE instead of the last synced one"`
	Show         string        `long:"show" value-name:"ID" description:"Only process this show"`
	Quiet        bool          `long:"quiet" short:"q" description:"Only log warnings and errors"`
	Debug        bool          `long:"debug" description:"Enable debug logging"`
	ClientID     string        `long:"client-id" env:"SC2PC_CLIENT_ID" description:"SoundCloud client_id to try first"`
	AuthToken    string        `long:"auth-token" env:"SC2PC_AUTH_TOKEN" description:"OAuth token used to resolve streams"`
	PageSize     int           `long:"page-size" default:"1000" description:"Number of stream entries per request"`
	RemuxTimeout time.Duration `long:"remux-timeout" description:"Abort a single download after this long (0 for no limit)"`
	LogFile      string        `long:"log-file" value-name:"PATH" description:"Also write logs to a rotated file"`
	DryRun       bool          `long:"dry-run" description:"Fetch and filter tracks without downloading or writing anything"`
	NoOPML       bool          `long:"no-opml" description:"Don't write the OPML index"`

	Args struct {
		PodcastDir   string `positional-arg-name:"PODCAST_DIR" description:"Directory with audio files and feeds"`
		MetadataFile string `positional-arg-name:"METADATA_FILE" description:"Append-only metadata log"`
		ConfigFile   string `positional-arg-name:"CONFIG_FILE" description:"YAML show configuration"`
		BaseURL      string `positional-arg-name:"BASE_PUBLIC_URL" description:"Public URL PODCAST_DIR is served at"`
	} `positional-args:"yes" required:"yes"`
}

var sinceLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
}

// Since is a start date given on the command line, the zero value means unset.
type Since struct {
	time.Time
}

// UnmarshalFlag accepts a date, a local date time or an RFC 3339 timestamp.
func (s *Since) UnmarshalFlag(value string) error {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		s.Time = ts
		return nil
	}

	for _, layout := range sinceLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			s.Time = ts
			return nil
		}
	}

	return errors.Errorf("invalid date %q, expected YYYY-MM-DD, YYYY-MM-DDTHH:MM:SS or RFC 3339", value)
}

func (s Since) MarshalFlag() (string, error) {
	if s.IsZero() {
		return "", nil
	}
	return s.Format(time.RFC3339), nil
}

// startTimes picks the point to resume each show from. since overrides all
// watermarks, otherwise every show must have been synced before.
func startTimes(shows []*feed.Show, watermarks map[string]time.Time, since time.Time) (map[string]time.Time, error) {
	starts := make(map[string]time.Time, len(shows))

	for _, show := range shows {
		if !since.IsZero() {
			starts[show.ID] = since
			continue
		}

		mark, ok := watermarks[show.ID]
		if !ok {
			return nil, errors.Errorf("show %q has never been synced, use --since to set a start date", show.ID)
		}

		starts[show.ID] = mark
	}

	return starts, nil
}
