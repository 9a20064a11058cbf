package catalog

import "echofm/model"

// Bundled first-run catalog. The store treats this as configuration: it is
// written once via EnsureSeed on a cold store and never consulted again.

var seedTracks = []model.Track{
	{
		ID:          "trk-001",
		Title:       "Midnight Signal",
		Artist:      "Neon Harbor",
		Album:       "Afterglow",
		Duration:    "3:42",
		CoverArtURL: "/static/covers/afterglow.jpg",
		MediaURL:    "/static/media/midnight-signal.mp3",
		MediaType:   model.MediaTypeAudio,
	},
	{
		ID:          "trk-002",
		Title:       "Paper Lanterns",
		Artist:      "Neon Harbor",
		Album:       "Afterglow",
		Duration:    "4:05",
		CoverArtURL: "/static/covers/afterglow.jpg",
		MediaURL:    "/static/media/paper-lanterns.mp3",
		MediaType:   model.MediaTypeAudio,
	},
	{
		ID:          "trk-003",
		Title:       "Gravel Road",
		Artist:      "June Arboleda",
		Album:       "Field Notes",
		Duration:    "2:58",
		CoverArtURL: "/static/covers/field-notes.jpg",
		MediaURL:    "/static/media/gravel-road.mp3",
		MediaType:   model.MediaTypeAudio,
	},
	{
		ID:          "trk-004",
		Title:       "Low Tide",
		Artist:      "June Arboleda",
		Album:       "Field Notes",
		Duration:    "5:17",
		CoverArtURL: "/static/covers/field-notes.jpg",
		MediaURL:    "/static/media/low-tide.mp3",
		MediaType:   model.MediaTypeAudio,
	},
	{
		ID:          "trk-005",
		Title:       "Static Bloom",
		Artist:      "Velvet Antenna",
		Album:       "Transmission",
		Duration:    "3:21",
		CoverArtURL: "/static/covers/transmission.jpg",
		MediaURL:    "/static/media/static-bloom.mp3",
		MediaType:   model.MediaTypeAudio,
	},
	{
		ID:          "trk-006",
		Title:       "Ferris Wheel at Dusk",
		Artist:      "Velvet Antenna",
		Album:       "Transmission",
		Duration:    "4:48",
		CoverArtURL: "/static/covers/transmission.jpg",
		MediaURL:    "/static/media/ferris-wheel-at-dusk.mp3",
		MediaType:   model.MediaTypeAudio,
	},
	{
		ID:          "trk-007",
		Title:       "City Lights (Live Session)",
		Artist:      "Neon Harbor",
		Album:       "Sessions",
		Duration:    "6:02",
		CoverArtURL: "/static/covers/sessions.jpg",
		MediaURL:    "/static/media/city-lights-live.mp4",
		MediaType:   model.MediaTypeVideo,
	},
	{
		ID:          "trk-008",
		Title:       "Sparrow",
		Artist:      "June Arboleda",
		Album:       "Sessions",
		Duration:    "1:02:10",
		CoverArtURL: "/static/covers/sessions.jpg",
		MediaURL:    "/static/media/sparrow-full-set.mp4",
		MediaType:   model.MediaTypeVideo,
	},
}

var seedPlaylists = []model.PlaylistState{
	{
		ID:          "pl-001",
		Title:       "Late Night Drive",
		Description: "Synths and streetlights for the last hour of the day.",
		CoverArtURL: "/static/covers/late-night-drive.jpg",
		TrackIDs:    []string{"trk-001", "trk-005", "trk-002", "trk-006"},
	},
	{
		ID:          "pl-002",
		Title:       "Quiet Mornings",
		Description: "Acoustic pieces that stay out of the way.",
		CoverArtURL: "/static/covers/quiet-mornings.jpg",
		TrackIDs:    []string{"trk-003", "trk-004"},
	},
	{
		ID:          "pl-003",
		Title:       "Live & Loud",
		Description: "Full live sessions, video included.",
		CoverArtURL: "/static/covers/live-and-loud.jpg",
		TrackIDs:    []string{"trk-007", "trk-008"},
	},
}
