package catalog

import (
	"context"
	"errors"
	"sync"

	"echofm/model"
	"echofm/store"

	"github.com/sourcegraph/conc/iter"
)

// HydratePlaylist projects a stored playlist to its API-facing shape by
// resolving every track reference in parallel, preserving stored order.
// Ids that no longer resolve are silently dropped from the result — a
// deliberate robustness trade-off: playlists survive dangling references
// at the cost of hiding them from the caller. Storage faults are not
// swallowed; the first one aborts hydration.
func HydratePlaylist(ctx context.Context, kv store.KV, state model.PlaylistState) (model.Playlist, error) {
	resolved := make([]*model.Track, len(state.TrackIDs))

	var mu sync.Mutex
	var fault error

	iter.ForEachIdx(state.TrackIDs, func(i int, id *string) {
		track, err := Tracks.Entity(kv, *id).State(ctx)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				mu.Lock()
				if fault == nil {
					fault = err
				}
				mu.Unlock()
			}
			return
		}
		resolved[i] = &track
	})
	if fault != nil {
		return model.Playlist{}, fault
	}

	tracks := make([]model.Track, 0, len(resolved))
	for _, track := range resolved {
		if track != nil {
			tracks = append(tracks, *track)
		}
	}

	return model.Playlist{
		ID:          state.ID,
		Title:       state.Title,
		Description: state.Description,
		CoverArtURL: state.CoverArtURL,
		Tracks:      tracks,
	}, nil
}

// HydratePlaylists hydrates a list of stored playlists in order.
func HydratePlaylists(ctx context.Context, kv store.KV, states []model.PlaylistState) ([]model.Playlist, error) {
	playlists := make([]model.Playlist, 0, len(states))
	for _, state := range states {
		playlist, err := HydratePlaylist(ctx, kv, state)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}
	return playlists, nil
}
