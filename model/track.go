package model

// MediaType tells the player how to render a track.
type MediaType string

const (
	MediaTypeAudio MediaType = "audio"
	MediaTypeVideo MediaType = "video"
)

// Track represents one playable item in the catalog. Tracks are immutable
// after creation; there is no update path, only create and read.
type Track struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Album       string    `json:"album"`
	Duration    string    `json:"duration"` // display form, e.g. "3:45" or "1:02:10"
	CoverArtURL string    `json:"coverArtUrl"`
	MediaURL    string    `json:"mediaUrl"`
	MediaType   MediaType `json:"mediaType"`
}

// RecordID implements store.Record.
func (t Track) RecordID() string { return t.ID }
