package model

// Record is a single line of the metadata log.
type Record struct {
	ShowID      string    `json:"show_id"`
	TrackID     int64     `json:"track_id"`
	Title       string    `json:"title"`
	Date        Timestamp `json:"date"`
	Description string    `json:"description"`
}

// NewRecord builds the log record stored after a track has been retrieved.
func NewRecord(showID string, track *Track) *Record {
	return &Record{
		ShowID:      showID,
		TrackID:     track.ID,
		Title:       CleanTitle(track.Title),
		Date:        Timestamp(track.CreatedAt),
		Description: track.Description,
	}
}
