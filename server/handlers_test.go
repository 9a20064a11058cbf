package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"echofm/catalog"
	"echofm/config"
	"echofm/model"
	"echofm/store"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) (*mux.Router, store.KV) {
	t.Helper()
	kv := store.NewMemoryKV()
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
	}
	return newRouter(NewAPIHandler(kv, cfg)), kv
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "error: %s", envelope.Error)
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

func TestCreateAndListTracks(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/tracks", map[string]string{
		"title":    "Midnight Signal",
		"artist":   "Neon Harbor",
		"mediaUrl": "/static/media/midnight-signal.mp3",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created model.Track
	decodeData(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.MediaTypeAudio, created.MediaType, "mediaType defaults to audio")

	rec = doJSON(t, router, http.MethodGet, "/api/tracks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tracks []model.Track
	decodeData(t, rec, &tracks)
	require.Len(t, tracks, 1)
	assert.Equal(t, created.ID, tracks[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/api/tracks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateTrack_MissingFields(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/tracks", map[string]string{
		"title": "No artist, no media",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTrack_NotFound(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/tracks/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaylistLifecycle(t *testing.T) {
	router, kv := testRouter(t)
	ctx := context.Background()

	require.NoError(t, catalog.Tracks.Create(ctx, kv, model.Track{ID: "t1", Title: "X"}))

	rec := doJSON(t, router, http.MethodPost, "/api/playlists", map[string]string{
		"title": "Road Trip",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var playlist model.Playlist
	decodeData(t, rec, &playlist)
	assert.Empty(t, playlist.Tracks)

	rec = doJSON(t, router, http.MethodPost, "/api/playlists/"+playlist.ID+"/tracks", map[string]string{
		"trackId": "t1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeData(t, rec, &playlist)
	require.Len(t, playlist.Tracks, 1)
	assert.Equal(t, "t1", playlist.Tracks[0].ID)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/playlists/%s/tracks/t1", playlist.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &playlist)
	assert.Empty(t, playlist.Tracks)
}

func TestCreatePlaylist_TitleRequired(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/playlists", map[string]string{
		"description": "untitled",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddTrack_PlaylistNotFound(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/playlists/ghost/tracks", map[string]string{
		"trackId": "t1",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLikesEndpoints(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/user/likes/t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/user/likes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var likes []string
	decodeData(t, rec, &likes)
	assert.Equal(t, []string{"t1"}, likes)

	rec = doJSON(t, router, http.MethodDelete, "/api/user/likes/t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/user/likes", nil)
	decodeData(t, rec, &likes)
	assert.Empty(t, likes)
}

func TestLikes_TokenScopesUser(t *testing.T) {
	router, _ := testRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/token", map[string]string{
		"userId": "alex",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var minted map[string]string
	decodeData(t, rec, &minted)
	require.NotEmpty(t, minted["token"])

	// Like as alex.
	req := httptest.NewRequest(http.MethodPost, "/api/user/likes/t9", nil)
	req.Header.Set("Authorization", "Bearer "+minted["token"])
	authRec := httptest.NewRecorder()
	router.ServeHTTP(authRec, req)
	require.Equal(t, http.StatusOK, authRec.Code)

	// Anonymous caller sees the default profile, not alex's.
	rec = doJSON(t, router, http.MethodGet, "/api/user/likes", nil)
	var likes []string
	decodeData(t, rec, &likes)
	assert.Empty(t, likes)

	// Alex sees the like.
	req = httptest.NewRequest(http.MethodGet, "/api/user/likes", nil)
	req.Header.Set("Authorization", "Bearer "+minted["token"])
	authRec = httptest.NewRecorder()
	router.ServeHTTP(authRec, req)
	decodeData(t, authRec, &likes)
	assert.Equal(t, []string{"t9"}, likes)
}

func TestSearch(t *testing.T) {
	router, kv := testRouter(t)
	ctx := context.Background()

	require.NoError(t, catalog.Tracks.Create(ctx, kv, model.Track{ID: "t1", Title: "Midnight Signal", Artist: "Neon Harbor"}))
	require.NoError(t, catalog.Tracks.Create(ctx, kv, model.Track{ID: "t2", Title: "Gravel Road", Artist: "June Arboleda"}))
	require.NoError(t, catalog.Playlists.Create(ctx, kv, model.PlaylistState{
		ID:          "p1",
		Title:       "Late Night Drive",
		Description: "neon lights",
		TrackIDs:    []string{"t1"},
	}))

	rec := doJSON(t, router, http.MethodGet, "/api/search?q=neon", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Tracks    []model.Track    `json:"tracks"`
		Playlists []model.Playlist `json:"playlists"`
	}
	decodeData(t, rec, &result)
	require.Len(t, result.Tracks, 1)
	assert.Equal(t, "t1", result.Tracks[0].ID)
	require.Len(t, result.Playlists, 1)
	require.Len(t, result.Playlists[0].Tracks, 1, "matched playlists come back hydrated")

	// Empty query returns empty sets, not the whole catalog.
	rec = doJSON(t, router, http.MethodGet, "/api/search", nil)
	decodeData(t, rec, &result)
	assert.Empty(t, result.Tracks)
	assert.Empty(t, result.Playlists)
}

func TestUpload_Unconfigured(t *testing.T) {
	router, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
