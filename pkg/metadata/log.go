// Package metadata implements the append-only log of retrieved tracks.
// The log is the source of truth for timestamps and descriptive fields:
// watermarks and feed entries are derived from it.
package metadata

import (
	"bufio"
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sc2pc/sc2pc/pkg/model"
)

// maxLineSize bounds a single record (descriptions can be long)
const maxLineSize = 16 * 1024 * 1024

// ErrNoLog means the log file does not exist yet (first run)
var ErrNoLog = errors.New("metadata log does not exist")

// Log is a newline delimited JSON file, one record per line.
type Log struct {
	path string
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Path() string {
	return l.path
}

// Walk streams the log line by line. Any malformed line stops the walk with an error.
func (l *Log) Walk(cb func(record *model.Record) error) error {
	file, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return ErrNoLog
	} else if err != nil {
		return errors.Wrapf(err, "failed to open metadata log %s", l.path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++

		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}

		record := &model.Record{}
		if err := json.Unmarshal(data, record); err != nil {
			return errors.Wrapf(err, "malformed record at %s:%d", l.path, line)
		}

		if err := cb(record); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "failed to read metadata log %s", l.path)
	}

	return nil
}

// Watermarks returns the most recent record date per show.
// ErrNoLog is returned when the log is missing, an existing but empty log yields an empty map.
func (l *Log) Watermarks() (map[string]time.Time, error) {
	marks := map[string]time.Time{}

	if err := l.Walk(func(record *model.Record) error {
		ts := record.Date.Time()
		if last, ok := marks[record.ShowID]; !ok || ts.After(last) {
			marks[record.ShowID] = ts
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return marks, nil
}

// Index loads all records into memory.
func (l *Log) Index() (Index, error) {
	index := Index{}

	err := l.Walk(func(record *model.Record) error {
		index.Add(record)
		return nil
	})

	if err == ErrNoLog {
		return index, nil
	}

	return index, err
}

// Append writes exactly one record line. The line is written with a single
// call on an O_APPEND handle and synced before returning.
func (l *Log) Append(record *model.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to serialize record for track %d", record.TrackID)
	}

	data = append(data, '\n')

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to open metadata log %s", l.path)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return errors.Wrap(err, "failed to append record")
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return errors.Wrap(err, "failed to sync metadata log")
	}

	return file.Close()
}
