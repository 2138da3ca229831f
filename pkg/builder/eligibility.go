package builder

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sc2pc/sc2pc/pkg/model"
)

const (
	ProtocolHLS = "hls"
	PresetMP3   = "mp3"
)

// Reasons to skip a track, checked in this order
var (
	ErrGeoblocked       = errors.New("geoblocked")
	ErrNoTranscodings   = errors.New("no transcodings available")
	ErrNoMP3Transcoding = errors.New("no mp3 transcoding found")
	ErrNoTranscodingURL = errors.New("no url")
)

// SelectTranscoding returns the HLS mp3 variant of a track or the reason it can't be downloaded.
func SelectTranscoding(track *model.Track) (*model.Transcoding, error) {
	if track.Policy == model.PolicyBlock {
		return nil, ErrGeoblocked
	}

	if len(track.Transcodings) == 0 {
		return nil, ErrNoTranscodings
	}

	for i := range track.Transcodings {
		tr := &track.Transcodings[i]
		if tr.Protocol != ProtocolHLS || !strings.Contains(tr.Preset, PresetMP3) {
			continue
		}

		if tr.URL == "" {
			return nil, ErrNoTranscodingURL
		}

		return tr, nil
	}

	return nil, ErrNoMP3Transcoding
}

// Describe lists the protocol/preset of transcodings for log messages.
func Describe(transcodings []model.Transcoding) string {
	parts := make([]string, 0, len(transcodings))
	for _, tr := range transcodings {
		parts = append(parts, tr.Protocol+"/"+tr.Preset)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
