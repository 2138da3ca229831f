package config

import (
	"net/url"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/sc2pc/sc2pc/pkg/feed"
)

// ProfilePrefix is the prefix every show URL must start with
const ProfilePrefix = "https://soundcloud.com/"

var requiredKeys = []string{"name", "description", "timezone", "soundcloud_url", "image_url"}

// ErrBadFormat is returned when the document is not a mapping of show id to show
var ErrBadFormat = errors.New("bad general config format, must be a map")

// LoadShows loads the YAML show configuration from a file path.
// When selected is not empty, all other shows are skipped.
func LoadShows(path string, selected string, logger log.FieldLogger) ([]*feed.Show, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	return ParseShows(data, selected, logger)
}

// ParseShows decodes and validates the show configuration. Shows are returned in document order.
func ParseShows(data []byte, selected string, logger log.FieldLogger) ([]*feed.Show, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal yaml")
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, ErrBadFormat
	}

	var (
		root   = doc.Content[0]
		shows  []*feed.Show
		result *multierror.Error
	)

	for i := 0; i+1 < len(root.Content); i += 2 {
		var (
			id   = root.Content[i].Value
			node = root.Content[i+1]
		)

		if !isAlphanumeric(id) {
			return nil, errors.Errorf("bad format for show id %q (must be alphanumerical)", id)
		}

		if selected != "" && selected != id {
			logger.Warnf("ignoring config because not selected show: %q", id)
			continue
		}

		show, err := decodeShow(id, node)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		shows = append(shows, show)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	if len(shows) == 0 {
		if selected != "" {
			return nil, errors.Errorf("show %q is not configured", selected)
		}
		return nil, errors.New("at least one show must be specified")
	}

	return shows, nil
}

func decodeShow(id string, node *yaml.Node) (*feed.Show, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("show %q must be a map", id)
	}

	present := map[string]bool{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		present[node.Content[i].Value] = true
	}

	var missing []string
	for _, key := range requiredKeys {
		if !present[key] {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return nil, errors.Errorf("missing keys %v for show id %s", missing, id)
	}

	show := &feed.Show{}
	if err := node.Decode(show); err != nil {
		return nil, errors.Wrapf(err, "failed to decode show %q", id)
	}

	show.ID = id

	if err := validate(show); err != nil {
		return nil, err
	}

	return show, nil
}

func validate(show *feed.Show) error {
	var result *multierror.Error

	if err := validateProfileURL(show.SoundCloudURL); err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "show %q", show.ID))
	}

	loc, err := time.LoadLocation(show.Timezone)
	if err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "invalid timezone for show %q", show.ID))
	} else {
		show.SetLocation(loc)
	}

	for i, hook := range show.OnDownload {
		if hook == nil || len(hook.Command) == 0 {
			result = multierror.Append(result, errors.Errorf("show %q: hook %d has no command", show.ID, i))
		}
	}

	return result.ErrorOrNil()
}

// validateProfileURL makes sure the URL points at a user profile page,
// not at a track or a playlist.
func validateProfileURL(raw string) error {
	if !strings.HasPrefix(raw, ProfilePrefix) {
		return errors.Errorf("invalid soundcloud url %q (must start with %s)", raw, ProfilePrefix)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrapf(err, "invalid soundcloud url %q", raw)
	}

	if u.RawQuery != "" || u.Fragment != "" {
		return errors.Errorf("invalid soundcloud url %q (no query allowed)", raw)
	}

	path := strings.Trim(u.Path, "/")
	if path == "" || strings.Contains(path, "/") {
		return errors.Errorf("soundcloud url %q is not a profile page", raw)
	}

	return nil
}

func isAlphanumeric(str string) bool {
	if str == "" {
		return false
	}

	for _, r := range str {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
