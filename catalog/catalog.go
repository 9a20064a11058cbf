// Package catalog binds the generic entity store to the application's
// domain types: tracks, playlists and per-user liked sets.
package catalog

import (
	"context"

	"echofm/model"
	"echofm/store"
)

// DefaultUserID identifies the anonymous user for likes.
const DefaultUserID = "default"

// Tracks is the track entity type. Tracks only get created and read; they
// carry no mutation operations.
var Tracks = &store.Definition[model.Track]{
	Name:      "track",
	IndexName: "tracks",
	Seed:      seedTracks,
}

// Playlists is the playlist entity type, persisted in its reference form.
var Playlists = &store.Definition[model.PlaylistState]{
	Name:      "playlist",
	IndexName: "playlists",
	Seed:      seedPlaylists,
}

// UserLikes returns the liked-track index for one user. Likes are pure
// index membership; no record is materialized per like.
func UserLikes(kv store.KV, userID string) *store.Index {
	if userID == "" {
		userID = DefaultUserID
	}
	return store.NewIndex(kv, "user-likes:"+userID)
}

// EnsureSeedAll populates an empty store with the bundled catalog. The
// server calls it once at startup; the guard is the store-level index
// probe inside EnsureSeed, so concurrent first access (several processes
// booting against one cold Redis) stays idempotent.
func EnsureSeedAll(ctx context.Context, kv store.KV) error {
	if err := Tracks.EnsureSeed(ctx, kv); err != nil {
		return err
	}
	return Playlists.EnsureSeed(ctx, kv)
}
