package server

import (
	"net/http"

	"echofm/catalog"

	"github.com/gorilla/mux"
)

// GetLikesHandler returns the caller's liked track ids. Order is not
// significant; the set is what matters.
func (h *APIHandler) GetLikesHandler(w http.ResponseWriter, r *http.Request) {
	likes, err := catalog.UserLikes(h.kv, h.userID(r)).List(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	ok(w, likes)
}

// LikeTrackHandler adds a track to the caller's liked set. Liking an
// already-liked track is a no-op.
func (h *APIHandler) LikeTrackHandler(w http.ResponseWriter, r *http.Request) {
	trackID := mux.Vars(r)["trackId"]

	if err := catalog.UserLikes(h.kv, h.userID(r)).Add(r.Context(), trackID); err != nil {
		fail(w, err)
		return
	}
	ok(w, map[string]interface{}{"id": trackID, "liked": true})
}

// UnlikeTrackHandler removes a track from the caller's liked set. Removing
// an unliked track is a no-op.
func (h *APIHandler) UnlikeTrackHandler(w http.ResponseWriter, r *http.Request) {
	trackID := mux.Vars(r)["trackId"]

	if err := catalog.UserLikes(h.kv, h.userID(r)).Remove(r.Context(), trackID); err != nil {
		fail(w, err)
		return
	}
	ok(w, map[string]interface{}{"id": trackID, "liked": false})
}
