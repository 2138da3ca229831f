package model

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Timestamp is serialized as an ISO-8601 string with offset.
type Timestamp time.Time

// Layouts accepted when reading timestamps back (older logs may carry
// fractional seconds or no offset at all).
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.Wrap(err, "timestamp must be a string")
	}

	parsed, err := ParseTimestamp(str)
	if err != nil {
		return err
	}

	*t = Timestamp(parsed)
	return nil
}

// ParseTimestamp parses the ISO-8601 variants found in metadata logs.
// Values without an offset are read as UTC.
func ParseTimestamp(str string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, str); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, errors.Errorf("invalid timestamp %q", str)
}
