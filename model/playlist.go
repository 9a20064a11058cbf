package model

// PlaylistState is the persisted playlist shape. It stores track
// references, not embedded tracks, so a track edit or removal can never
// leave stale copies inside playlists.
type PlaylistState struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CoverArtURL string   `json:"coverArtUrl"`
	TrackIDs    []string `json:"trackIds"`
}

// RecordID implements store.Record.
func (p PlaylistState) RecordID() string { return p.ID }

// Playlist is the hydrated, API-facing shape: TrackIDs resolved to full
// Track records, in stored order.
type Playlist struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CoverArtURL string  `json:"coverArtUrl"`
	Tracks      []Track `json:"tracks"`
}
