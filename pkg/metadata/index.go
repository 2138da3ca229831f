package metadata

import (
	"github.com/sc2pc/sc2pc/pkg/model"
)

// Index maps show id -> track id -> record. Later records win.
type Index map[string]map[int64]*model.Record

func (i Index) Add(record *model.Record) {
	tracks, ok := i[record.ShowID]
	if !ok {
		tracks = map[int64]*model.Record{}
		i[record.ShowID] = tracks
	}
	tracks[record.TrackID] = record
}

// Get returns the record of a track, nil when there is none.
func (i Index) Get(showID string, trackID int64) *model.Record {
	return i[showID][trackID]
}

// Show returns all records of a show keyed by track id.
func (i Index) Show(showID string) map[int64]*model.Record {
	return i[showID]
}

// Pair identifies a track within a show
type Pair struct {
	ShowID  string
	TrackID int64
}

// Reconciliation is the state of the local library computed once at startup.
type Reconciliation struct {
	// Satisfied has both a record and a file, nothing to do for those
	Satisfied map[Pair]struct{}
	// Orphans are files on disk without a record
	Orphans map[Pair]struct{}
	// Missing are records whose file is gone
	Missing map[Pair]struct{}
}

// Has reports whether a track is fully retrieved.
func (r *Reconciliation) Has(showID string, trackID int64) bool {
	_, ok := r.Satisfied[Pair{ShowID: showID, TrackID: trackID}]
	return ok
}

// Orphan reports whether a track has a file but no record.
func (r *Reconciliation) Orphan(showID string, trackID int64) bool {
	_, ok := r.Orphans[Pair{ShowID: showID, TrackID: trackID}]
	return ok
}

// Mark records a track as fully retrieved during the current run.
func (r *Reconciliation) Mark(showID string, trackID int64) {
	pair := Pair{ShowID: showID, TrackID: trackID}
	delete(r.Orphans, pair)
	delete(r.Missing, pair)
	r.Satisfied[pair] = struct{}{}
}

// Reconcile compares the index against the files present for a show.
func Reconcile(index Index, showID string, files []int64) *Reconciliation {
	r := &Reconciliation{
		Satisfied: map[Pair]struct{}{},
		Orphans:   map[Pair]struct{}{},
		Missing:   map[Pair]struct{}{},
	}

	onDisk := make(map[int64]struct{}, len(files))
	for _, trackID := range files {
		onDisk[trackID] = struct{}{}

		pair := Pair{ShowID: showID, TrackID: trackID}
		if index.Get(showID, trackID) != nil {
			r.Satisfied[pair] = struct{}{}
		} else {
			r.Orphans[pair] = struct{}{}
		}
	}

	for trackID := range index.Show(showID) {
		if _, ok := onDisk[trackID]; !ok {
			r.Missing[Pair{ShowID: showID, TrackID: trackID}] = struct{}{}
		}
	}

	return r
}
