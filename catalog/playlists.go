package catalog

import (
	"context"
	"slices"

	"echofm/model"
	"echofm/store"
)

// AddTrack appends trackID to the playlist's track list if it is not
// already a member; adding a present track is a no-op on the data, not an
// error. The track id itself is not verified to exist — dangling
// references are tolerated and resolved away at hydration time.
func AddTrack(ctx context.Context, kv store.KV, playlistID, trackID string) (model.PlaylistState, error) {
	return Playlists.Entity(kv, playlistID).Mutate(ctx, func(s model.PlaylistState) model.PlaylistState {
		if slices.Contains(s.TrackIDs, trackID) {
			return s
		}
		s.TrackIDs = append(slices.Clone(s.TrackIDs), trackID)
		return s
	})
}

// RemoveTrack filters trackID out of the playlist's track list; removing
// an absent id is a no-op.
func RemoveTrack(ctx context.Context, kv store.KV, playlistID, trackID string) (model.PlaylistState, error) {
	return Playlists.Entity(kv, playlistID).Mutate(ctx, func(s model.PlaylistState) model.PlaylistState {
		if !slices.Contains(s.TrackIDs, trackID) {
			return s
		}
		s.TrackIDs = slices.DeleteFunc(slices.Clone(s.TrackIDs), func(id string) bool {
			return id == trackID
		})
		return s
	})
}
