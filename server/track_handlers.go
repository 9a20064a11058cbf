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

// GetTracksHandler returns every track in creation order.
func (h *APIHandler) GetTracksHandler(w http.ResponseWriter, r *http.Request) {
	items, err := catalog.Tracks.List(r.Context(), h.kv)
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, items)
}

// createTrackRequest mirrors the admin upload form.
type createTrackRequest struct {
	Title       string          `json:"title"`
	Artist      string          `json:"artist"`
	Album       string          `json:"album"`
	Duration    string          `json:"duration"`
	CoverArtURL string          `json:"coverArtUrl"`
	MediaURL    string          `json:"mediaUrl"`
	MediaType   model.MediaType `json:"mediaType"`
}

// CreateTrackHandler creates one track under a fresh id. Tracks are
// immutable afterwards.
func (h *APIHandler) CreateTrackHandler(w http.ResponseWriter, r *http.Request) {
	var req createTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		bad(w, "invalid request body")
		return
	}
	if req.Title == "" || req.Artist == "" || req.MediaURL == "" {
		bad(w, "missing required track fields")
		return
	}
	if req.MediaType != model.MediaTypeAudio && req.MediaType != model.MediaTypeVideo {
		req.MediaType = model.MediaTypeAudio
	}

	track := model.Track{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Artist:      req.Artist,
		Album:       req.Album,
		Duration:    req.Duration,
		CoverArtURL: req.CoverArtURL,
		MediaURL:    req.MediaURL,
		MediaType:   req.MediaType,
	}

	if err := catalog.Tracks.Create(r.Context(), h.kv, track); err != nil {
		fail(w, err)
		return
	}

	logger.Info("track created",
		logger.String("id", track.ID),
		logger.String("title", track.Title),
	)
	ok(w, track)
}

// GetTrackHandler returns a single track by id.
func (h *APIHandler) GetTrackHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	entity := catalog.Tracks.Entity(h.kv, id)
	exists, err := entity.Exists(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	if !exists {
		notFound(w, "track not found")
		return
	}

	track, err := entity.State(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, track)
}
