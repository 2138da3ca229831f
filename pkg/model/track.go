package model

import (
	"time"
)

// PolicyBlock marks a track that is geoblocked for the caller.
const PolicyBlock = "BLOCK"

// Transcoding is a delivery variant of a track's audio.
type Transcoding struct {
	// URL resolves to the playable stream (requires a second request)
	URL      string
	Preset   string
	Protocol string
	MimeType string
}

type Track struct {
	ID    int64
	Title string
	// CreatedAt is the activity timestamp (upload or repost), not the
	// original upload time of the track
	CreatedAt    time.Time
	Policy       string
	Description  string
	PermalinkURL string
	Transcodings []Transcoding
}

// User is a resolved SoundCloud profile
type User struct {
	ID        int64
	Username  string
	Permalink string
}

// Activity is a single entry of a user's stream (own uploads and reposts)
type Activity struct {
	Type      string
	CreatedAt time.Time
	Track     *Track
}
