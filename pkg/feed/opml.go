package feed

import (
	"encoding/xml"

	"github.com/pkg/errors"
)

// OPMLName is the file name of the OPML index
const OPMLName = "sc2pc.opml"

type opml struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    head
	Body    body
}

type head struct {
	XMLName xml.Name `xml:"head"`
	Title   string   `xml:"title"`
}

type body struct {
	XMLName  xml.Name  `xml:"body"`
	Outlines []outline `xml:"outline"`
}

type outline struct {
	Text   string `xml:"text,attr"`
	Title  string `xml:"title,attr"`
	Type   string `xml:"type,attr"`
	XMLURL string `xml:"xmlUrl,attr"`
}

// BuildOPML lists the feeds of the given shows.
func BuildOPML(shows []*Show, baseURL string) (string, error) {
	ou := make([]outline, 0, len(shows))

	for _, show := range shows {
		if !show.InOPML() {
			continue
		}

		ou = append(ou, outline{
			Text:   show.Description,
			Title:  show.Name,
			Type:   "rss",
			XMLURL: PublicURL(baseURL, FeedName(show.ID)),
		})
	}

	op := opml{Version: "1.0"}
	op.Head = head{Title: "sc2pc feeds"}
	op.Body = body{Outlines: ou}

	out, err := xml.MarshalIndent(op, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal opml")
	}

	return xml.Header + string(out), nil
}
