package feed

import (
	"time"
)

// Show is a configuration for a single SoundCloud user loaded from YAML.
// ID will be used as feed ID in {base_public_url}/{ID}.xml
type Show struct {
	ID string `yaml:"-"`
	// Name is the podcast title
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Timezone is an IANA zone name, used to render publish dates
	Timezone string `yaml:"timezone"`
	// SoundCloudURL is the profile page of the user, e.g. https://soundcloud.com/user
	SoundCloudURL string `yaml:"soundcloud_url"`
	ImageURL      string `yaml:"image_url"`
	// Custom is a list of optional feed customizations
	Custom Custom `yaml:",inline"`
	// OnDownload hooks are invoked after each downloaded episode
	OnDownload []*ExecHook `yaml:"on_download"`
	// OPML includes the feed in the OPML index (defaults to true)
	OPML *bool `yaml:"opml"`

	location *time.Location
}

type Custom struct {
	Author   string `yaml:"author"`
	Category string `yaml:"category"`
	Explicit bool   `yaml:"explicit"`
	Language string `yaml:"language"`
}

// Location returns the show's time zone (UTC when it was never set).
func (s *Show) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

// SetLocation is called by the config loader once the time zone is validated.
func (s *Show) SetLocation(loc *time.Location) {
	s.location = loc
}

// InOPML reports whether the show should be listed in the OPML index.
func (s *Show) InOPML() bool {
	return s.OPML == nil || *s.OPML
}
