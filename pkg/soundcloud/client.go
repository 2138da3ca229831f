// Package soundcloud is a minimal client of the SoundCloud web API (api-v2):
// profile resolution, user activity streams and stream URL lookup.
package soundcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/sc2pc/sc2pc/pkg/model"
)

const (
	DefaultAPIURL    = "https://api-v2.soundcloud.com"
	DefaultWebURL    = "https://soundcloud.com"
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
	DefaultTimeout   = 30 * time.Second
)

var (
	ErrNoClientID    = errors.New("no valid client_id available")
	ErrInvalidURL    = errors.New("URL is not valid")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNoStreamURL   = errors.New("no stream url in response")
	errNotAUserEntry = errors.New("resolved entity is not a user")
)

type Config struct {
	// ClientID to try first, a fresh one is scraped from the web app when it's rejected
	ClientID string
	// AuthToken is an optional OAuth token sent along stream URL requests
	AuthToken string
	APIURL    string
	WebURL    string
	UserAgent string
	Timeout   time.Duration
}

func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.WebURL == "" {
		c.WebURL = DefaultWebURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	c.APIURL = strings.TrimSuffix(c.APIURL, "/")
	c.WebURL = strings.TrimSuffix(c.WebURL, "/")
}

type Client struct {
	http     *http.Client
	config   Config
	clientID string
	logger   log.FieldLogger
}

// New creates a client with a validated client_id.
func New(ctx context.Context, cfg Config, logger log.FieldLogger) (*Client, error) {
	cfg.applyDefaults()

	client := &Client{
		http:   &http.Client{Timeout: cfg.Timeout},
		config: cfg,
		logger: logger,
	}

	clientID, err := client.obtainClientID(ctx)
	if err != nil {
		return nil, err
	}

	client.clientID = clientID
	return client, nil
}

func (c *Client) ClientID() string {
	return c.clientID
}

// ResolveUser resolves a profile page URL to a user.
func (c *Client) ResolveUser(ctx context.Context, profileURL string) (*model.User, error) {
	var out user

	err := c.getJSON(ctx, c.config.APIURL+"/resolve", url.Values{"url": {profileURL}}, false, &out)
	if errors.Cause(err) == model.ErrNotFound {
		return nil, errors.Wrapf(ErrInvalidURL, "could not resolve %s", profileURL)
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", profileURL)
	}

	if out.ID == 0 || (out.Kind != "" && out.Kind != "user") {
		return nil, errors.Wrapf(ErrInvalidURL, "%s: %v", profileURL, errNotAUserEntry)
	}

	return out.toModel(), nil
}

// UserStream returns the activities (uploads and reposts) of a user, newest first.
// Paging stops after the first page reaching back to since, a zero since walks
// the whole history. Entries at or before since may still be returned.
func (c *Client) UserStream(ctx context.Context, userID int64, pageSize int, since time.Time) ([]*model.Activity, error) {
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}

	var (
		next   = fmt.Sprintf("%s/stream/users/%d", c.config.APIURL, userID)
		params = url.Values{"limit": {fmt.Sprint(pageSize)}, "linked_partitioning": {"1"}}
		result []*model.Activity
	)

	for page := 0; next != ""; page++ {
		var out streamPage
		if err := c.getJSON(ctx, next, params, false, &out); err != nil {
			return nil, errors.Wrapf(err, "failed to query stream of user %d (page %d)", userID, page)
		}

		reached := false
		for i := range out.Collection {
			result = append(result, out.Collection[i].toModel())
			if !since.IsZero() && !out.Collection[i].CreatedAt.After(since) {
				reached = true
			}
		}

		c.logger.Debugf("stream page %d: %d item(s)", page, len(out.Collection))

		if len(out.Collection) == 0 {
			break
		}

		if reached {
			c.logger.Debugf("stream reached %s, not fetching older pages", since.Format(time.RFC3339))
			break
		}

		// next_href carries its own query (cursor, limit)
		next = out.NextHref
		params = nil
	}

	return result, nil
}

// StreamURL resolves a transcoding endpoint to a playable media URL.
func (c *Client) StreamURL(ctx context.Context, transcodingURL string) (string, error) {
	var out streamURL
	if err := c.getJSON(ctx, transcodingURL, nil, true, &out); err != nil {
		return "", errors.Wrap(err, "failed to get stream url")
	}

	if out.URL == "" {
		return "", ErrNoStreamURL
	}

	return out.URL, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, auth bool, out interface{}) error {
	body, err := c.get(ctx, endpoint, params, auth, c.clientID)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, auth bool, clientID string) (io.ReadCloser, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint %q", endpoint)
	}

	query := u.Query()
	for key, values := range params {
		query[key] = values
	}
	if clientID != "" {
		query.Set("client_id", clientID)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json, text/javascript, */*; q=0.1")
	req.Header.Set("Origin", c.config.WebURL)
	req.Header.Set("Referer", c.config.WebURL+"/")
	if auth && c.config.AuthToken != "" {
		req.Header.Set("Authorization", "OAuth "+c.config.AuthToken)
	}

	c.logger.Debugf("GET %s", u.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", u.Path)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, model.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		resp.Body.Close()
		return nil, errors.Wrapf(ErrUnauthorized, "%s returned %d", u.Path, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		resp.Body.Close()
		return nil, errors.Errorf("%s returned unexpected status %d", u.Path, resp.StatusCode)
	}

	return resp.Body, nil
}
