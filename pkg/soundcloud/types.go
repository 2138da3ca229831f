package soundcloud

import (
	"time"

	"github.com/sc2pc/sc2pc/pkg/model"
)

type user struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Username  string `json:"username"`
	Permalink string `json:"permalink"`
}

type transcoding struct {
	URL    string `json:"url"`
	Preset string `json:"preset"`
	Format struct {
		Protocol string `json:"protocol"`
		MimeType string `json:"mime_type"`
	} `json:"format"`
}

type track struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	Policy       string    `json:"policy"`
	Description  string    `json:"description"`
	PermalinkURL string    `json:"permalink_url"`
	Media        struct {
		Transcodings []transcoding `json:"transcodings"`
	} `json:"media"`
}

type activity struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Track     *track    `json:"track"`
}

type streamPage struct {
	Collection []activity `json:"collection"`
	NextHref   string     `json:"next_href"`
}

type streamURL struct {
	URL string `json:"url"`
}

func (u *user) toModel() *model.User {
	return &model.User{ID: u.ID, Username: u.Username, Permalink: u.Permalink}
}

func (t *track) toModel() *model.Track {
	out := &model.Track{
		ID:           t.ID,
		Title:        t.Title,
		CreatedAt:    t.CreatedAt,
		Policy:       t.Policy,
		Description:  t.Description,
		PermalinkURL: t.PermalinkURL,
	}

	for _, tr := range t.Media.Transcodings {
		out.Transcodings = append(out.Transcodings, model.Transcoding{
			URL:      tr.URL,
			Preset:   tr.Preset,
			Protocol: tr.Format.Protocol,
			MimeType: tr.Format.MimeType,
		})
	}

	return out
}

func (a *activity) toModel() *model.Activity {
	out := &model.Activity{Type: a.Type, CreatedAt: a.CreatedAt}
	if a.Track != nil {
		out.Track = a.Track.toModel()
	}
	return out
}
