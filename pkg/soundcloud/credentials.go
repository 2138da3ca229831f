package soundcloud

import (
	"context"
	"io"
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

var clientIDPattern = regexp.MustCompile(`client_id\s*[:=]\s*"([a-zA-Z0-9]{32})"`)

// obtainClientID validates the configured client_id and falls back to
// scraping one from the web app bundles.
func (c *Client) obtainClientID(ctx context.Context) (string, error) {
	if c.config.ClientID != "" {
		if c.validClientID(ctx, c.config.ClientID) {
			return c.config.ClientID, nil
		}
		c.logger.Warn("configured client_id is not valid, generating a new one")
	}

	clientID, err := c.scrapeClientID(ctx)
	if err != nil {
		c.logger.WithError(err).Debug("could not scrape client_id")
		return "", ErrNoClientID
	}

	if !c.validClientID(ctx, clientID) {
		return "", errors.Wrap(ErrNoClientID, "dynamically generated client_id is not valid")
	}

	c.logger.Info("using dynamically generated client_id")
	return clientID, nil
}

func (c *Client) validClientID(ctx context.Context, clientID string) bool {
	body, err := c.get(ctx, c.config.APIURL+"/search", url.Values{"q": {"a"}, "limit": {"1"}}, false, clientID)
	if err != nil {
		c.logger.WithError(err).Debug("client_id probe failed")
		return false
	}
	body.Close()
	return true
}

// scrapeClientID looks for a client_id in the javascript bundles referenced by the home page.
// The id lives in one of the last bundles, so they are checked in reverse order.
func (c *Client) scrapeClientID(ctx context.Context) (string, error) {
	page, err := c.get(ctx, c.config.WebURL+"/", nil, false, "")
	if err != nil {
		return "", errors.Wrap(err, "failed to load home page")
	}
	defer page.Close()

	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse home page")
	}

	base, err := url.Parse(c.config.WebURL + "/")
	if err != nil {
		return "", err
	}

	var scripts []string
	doc.Find("script[crossorigin][src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok {
			if ref, err := url.Parse(src); err == nil {
				scripts = append(scripts, base.ResolveReference(ref).String())
			}
		}
	})

	if len(scripts) == 0 {
		return "", errors.New("no scripts found on home page")
	}

	for i := len(scripts) - 1; i >= 0; i-- {
		body, err := c.get(ctx, scripts[i], nil, false, "")
		if err != nil {
			c.logger.WithError(err).Debugf("failed to load script %s", scripts[i])
			continue
		}

		data, err := io.ReadAll(body)
		body.Close()
		if err != nil {
			continue
		}

		if match := clientIDPattern.FindSubmatch(data); match != nil {
			return string(match[1]), nil
		}
	}

	return "", errors.New("client_id not found in scripts")
}
