package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sc2pc/sc2pc/pkg/model"
)

func writeLog(t *testing.T, lines ...string) *Log {
	t.Helper()

	path := filepath.Join(t.TempDir(), "metadata.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))

	return NewLog(path)
}

func TestLog_WatermarksNoLog(t *testing.T) {
	l := NewLog(filepath.Join(t.TempDir(), "metadata.jsonl"))

	marks, err := l.Watermarks()
	assert.Equal(t, ErrNoLog, err)
	assert.Nil(t, marks)
}

func TestLog_WatermarksEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.jsonl")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	marks, err := NewLog(path).Watermarks()
	require.NoError(t, err)
	assert.NotNil(t, marks)
	assert.Empty(t, marks)
}

func TestLog_WatermarksMaxPerShow(t *testing.T) {
	// Out of order and duplicated lines, mixed offsets
	l := writeLog(t,
		`{"show_id": "radio1", "track_id": 1, "title": "a", "date": "2024-01-15T10:00:00+00:00", "description": ""}`,
		`{"show_id": "radio1", "track_id": 3, "title": "c", "date": "2024-03-01T00:30:00+01:00", "description": ""}`,
		`{"show_id": "radio2", "track_id": 7, "title": "x", "date": "2023-12-31T23:59:59Z", "description": ""}`,
		`{"show_id": "radio1", "track_id": 2, "title": "b", "date": "2024-02-01T10:00:00Z", "description": ""}`,
		`{"show_id": "radio1", "track_id": 3, "title": "c", "date": "2024-03-01T00:30:00+01:00", "description": ""}`,
	)

	marks, err := l.Watermarks()
	require.NoError(t, err)
	require.Len(t, marks, 2)

	assert.True(t, time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC).Equal(marks["radio1"]))
	assert.True(t, time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC).Equal(marks["radio2"]))
}

func TestLog_WatermarksMalformed(t *testing.T) {
	l := writeLog(t,
		`{"show_id": "radio1", "track_id": 1, "title": "a", "date": "2024-01-15T10:00:00Z", "description": ""}`,
		`{"show_id": "radio1", "track_id": 2, "title": `,
	)

	_, err := l.Watermarks()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":2")
}

func TestLog_AppendAndIndex(t *testing.T) {
	l := NewLog(filepath.Join(t.TempDir(), "metadata.jsonl"))

	first := &model.Record{ShowID: "radio1", TrackID: 42, Title: "old", Date: model.Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))}
	second := &model.Record{ShowID: "radio1", TrackID: 42, Title: "new", Date: model.Timestamp(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))}
	other := &model.Record{ShowID: "radio2", TrackID: 42, Title: "other", Description: "line1\nline2"}

	require.NoError(t, l.Append(first))
	require.NoError(t, l.Append(second))
	require.NoError(t, l.Append(other))

	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
	assert.True(t, strings.HasPrefix(string(data), `{"show_id":"radio1","track_id":42,"title":"old","date":"2024-01-01T00:00:00Z","description":""}`))

	index, err := l.Index()
	require.NoError(t, err)

	// Last write wins
	assert.Equal(t, "new", index.Get("radio1", 42).Title)
	assert.Equal(t, "line1\nline2", index.Get("radio2", 42).Description)
	assert.Nil(t, index.Get("radio1", 1))
	assert.Len(t, index.Show("radio1"), 1)
}

func TestLog_IndexNoLog(t *testing.T) {
	index, err := NewLog(filepath.Join(t.TempDir(), "metadata.jsonl")).Index()
	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestReconcile(t *testing.T) {
	index := Index{}
	index.Add(&model.Record{ShowID: "showX", TrackID: 42})
	index.Add(&model.Record{ShowID: "showX", TrackID: 43})
	index.Add(&model.Record{ShowID: "showY", TrackID: 44})

	r := Reconcile(index, "showX", []int64{42, 50})

	assert.True(t, r.Has("showX", 42))
	assert.False(t, r.Has("showX", 43))
	assert.False(t, r.Has("showX", 50))
	assert.False(t, r.Has("showY", 44))

	assert.True(t, r.Orphan("showX", 50))
	assert.Contains(t, r.Missing, Pair{ShowID: "showX", TrackID: 43})
	assert.Len(t, r.Missing, 1)

	r.Mark("showX", 50)
	assert.True(t, r.Has("showX", 50))
	assert.False(t, r.Orphan("showX", 50))
}
