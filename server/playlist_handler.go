package server

import (
	"encoding/json"
	"net/http"

	"echofm/catalog"
	"echofm/logger"
	"echofm/model"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// GetPlaylistsHandler returns every playlist, hydrated.
func (h *APIHandler) GetPlaylistsHandler(w http.ResponseWriter, r *http.Request) {
	states, err := catalog.Playlists.List(r.Context(), h.kv)
	if err != nil {
		fail(w, err)
		return
	}

	playlists, err := catalog.HydratePlaylists(r.Context(), h.kv, states)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, playlists)
}

// CreatePlaylistHandler creates an empty playlist under a fresh id.
func (h *APIHandler) CreatePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		CoverArtURL string `json:"coverArtUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		bad(w, "invalid request body")
		return
	}
	if req.Title == "" {
		bad(w, "title is required")
		return
	}

	state := model.PlaylistState{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		CoverArtURL: req.CoverArtURL,
		TrackIDs:    []string{},
	}

	if err := catalog.Playlists.Create(r.Context(), h.kv, state); err != nil {
		fail(w, err)
		return
	}

	logger.Info("playlist created",
		logger.String("id", state.ID),
		logger.String("title", state.Title),
	)

	playlist, err := catalog.HydratePlaylist(r.Context(), h.kv, state)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, playlist)
}

// GetPlaylistHandler returns one playlist by id, hydrated.
func (h *APIHandler) GetPlaylistHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	entity := catalog.Playlists.Entity(h.kv, id)
	exists, err := entity.Exists(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	if !exists {
		notFound(w, "playlist not found")
		return
	}

	state, err := entity.State(r.Context())
	if err != nil {
		fail(w, err)
		return
	}

	playlist, err := catalog.HydratePlaylist(r.Context(), h.kv, state)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, playlist)
}

// AddPlaylistTrackHandler appends a track reference to a playlist.
func (h *APIHandler) AddPlaylistTrackHandler(w http.ResponseWriter, r *http.Request) {
	playlistID := mux.Vars(r)["id"]

	var req struct {
		TrackID string `json:"trackId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TrackID == "" {
		bad(w, "trackId is required")
		return
	}

	state, err := catalog.AddTrack(r.Context(), h.kv, playlistID, req.TrackID)
	if err != nil {
		fail(w, err)
		return
	}

	playlist, err := catalog.HydratePlaylist(r.Context(), h.kv, state)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, playlist)
}

// RemovePlaylistTrackHandler removes a track reference from a playlist.
func (h *APIHandler) RemovePlaylistTrackHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	state, err := catalog.RemoveTrack(r.Context(), h.kv, vars["id"], vars["trackId"])
	if err != nil {
		fail(w, err)
		return
	}

	playlist, err := catalog.HydratePlaylist(r.Context(), h.kv, state)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, playlist)
}
