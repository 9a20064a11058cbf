package server

import (
	"net/http"
	"strings"

	"echofm/catalog"
	"echofm/model"
)

type searchResult struct {
	Tracks    []model.Track    `json:"tracks"`
	Playlists []model.Playlist `json:"playlists"`
}

// SearchHandler filters tracks by title/artist and playlists by
// title/description, case-insensitively. An empty query returns empty
// result sets rather than the whole catalog.
func (h *APIHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if q == "" {
		ok(w, searchResult{Tracks: []model.Track{}, Playlists: []model.Playlist{}})
		return
	}

	allTracks, err := catalog.Tracks.List(r.Context(), h.kv)
	if err != nil {
		fail(w, err)
		return
	}
	allPlaylists, err := catalog.Playlists.List(r.Context(), h.kv)
	if err != nil {
		fail(w, err)
		return
	}

	tracks := make([]model.Track, 0)
	for _, t := range allTracks {
		if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Artist), q) {
			tracks = append(tracks, t)
		}
	}

	matched := make([]model.PlaylistState, 0)
	for _, p := range allPlaylists {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}

	playlists, err := catalog.HydratePlaylists(r.Context(), h.kv, matched)
	if err != nil {
		fail(w, err)
		return
	}

	ok(w, searchResult{Tracks: tracks, Playlists: playlists})
}
