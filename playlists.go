package spotitab

import (
	"context"
	"fmt"
	"net/url"
)

// CreatePlaylistOptions holds options for creating a playlist
type CreatePlaylistOptions struct {
	Name          string `json:"name"`
	Public        *bool  `json:"public,omitempty"`
	Collaborative *bool  `json:"collaborative,omitempty"`
	Description   string `json:"description,omitempty"`
}

// PlaylistAddTracksRequest represents the request body for adding tracks.
// Format matches the Web API: {"uris": [...]}
type PlaylistAddTracksRequest struct {
	URIs []string `json:"uris"`
}

// TrackToRemove represents one entry of a remove-tracks request body
type TrackToRemove struct {
	URI string `json:"uri"`
}

// PlaylistRemoveTracksRequest represents the request body for removing tracks.
// Format matches the Web API: {"tracks": [{"uri": ...}, ...]}
type PlaylistRemoveTracksRequest struct {
	Tracks []TrackToRemove `json:"tracks"`
}

// UserPlaylists lists a user's playlists, one row per playlist.
//
// Optional query parameters (e.g. limit, offset) pass through verbatim; the
// client performs no pagination of its own.
//
// Example:
//
//	rows, err := client.UserPlaylists(ctx, "spotify", url.Values{"limit": {"50"}})
//	if err != nil {
//		// Handle error
//	}
//	for _, row := range rows {
//		fmt.Println(row.Name, row.TrackTotal)
//	}
func (c *Client) UserPlaylists(ctx context.Context, userID string, params url.Values) (PlaylistTable, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	var result Paging[SimplifiedPlaylist]
	if err := c._get(ctx, fmt.Sprintf("users/%s/playlists", userID), params, &result); err != nil {
		return nil, err
	}

	rows := make(PlaylistTable, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, newPlaylistRow(item))
	}
	return rows, nil
}

// UserPlaylist fetches one playlist and returns it as a single flat row.
//
// The playlistID parameter can be a raw ID, a spotify: URI, or an
// open.spotify.com URL.
func (c *Client) UserPlaylist(ctx context.Context, userID, playlistID string) (*PlaylistDetail, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	id, err := GetID(playlistID, "playlist")
	if err != nil {
		return nil, err
	}

	var result Playlist
	if err := c._get(ctx, fmt.Sprintf("users/%s/playlists/%s", userID, id), nil, &result); err != nil {
		return nil, err
	}

	return newPlaylistDetail(&result), nil
}

// UserPlaylistTracks lists a playlist's tracks, one row per track, with the
// album and the ordered artists flattened into the row.
//
// Optional query parameters pass through verbatim.
func (c *Client) UserPlaylistTracks(ctx context.Context, userID, playlistID string, params url.Values) (TrackTable, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	id, err := GetID(playlistID, "playlist")
	if err != nil {
		return nil, err
	}

	var result Paging[PlaylistItem]
	if err := c._get(ctx, fmt.Sprintf("users/%s/playlists/%s/tracks/", userID, id), params, &result); err != nil {
		return nil, err
	}

	rows := make(TrackTable, 0, len(result.Items))
	for _, item := range result.Items {
		if item.Track == nil {
			continue
		}
		rows = append(rows, newTrackRow(item))
	}
	return rows, nil
}

// UserPlaylistCreate creates a new playlist for a user and returns the
// created-playlist object as decoded from the response.
//
// Requires the user OAuth token. Creating the same playlist twice makes two
// playlists; the operation is not idempotent.
func (c *Client) UserPlaylistCreate(ctx context.Context, userID string, opts *CreatePlaylistOptions) (*Playlist, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if opts == nil {
		return nil, fmt.Errorf("options are required")
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("playlist name is required")
	}

	var result Playlist
	if err := c._post(ctx, fmt.Sprintf("users/%s/playlists/", userID), opts, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UserPlaylistAddTracks adds tracks to a playlist.
//
// uris accepts one or many track URIs, URLs, or raw IDs; everything is
// normalized to spotify:track:ID form and sent in order as {"uris": [...]}.
// Re-adding a track duplicates it; the operation is not idempotent.
func (c *Client) UserPlaylistAddTracks(ctx context.Context, userID, playlistID string, uris []string) (*PlaylistSnapshotID, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	id, err := GetID(playlistID, "playlist")
	if err != nil {
		return nil, err
	}

	normalized, err := normalizeTrackURIs(uris)
	if err != nil {
		return nil, err
	}

	reqBody := PlaylistAddTracksRequest{URIs: normalized}

	var result PlaylistSnapshotID
	if err := c._post(ctx, fmt.Sprintf("users/%s/playlists/%s/tracks", userID, id), reqBody, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UserPlaylistRemoveTracks removes tracks from a playlist.
//
// Each URI is serialized into a {"uri": ...} element of the tracks list, per
// the Web API's DELETE-with-body convention.
func (c *Client) UserPlaylistRemoveTracks(ctx context.Context, userID, playlistID string, uris []string) (*PlaylistSnapshotID, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	id, err := GetID(playlistID, "playlist")
	if err != nil {
		return nil, err
	}

	normalized, err := normalizeTrackURIs(uris)
	if err != nil {
		return nil, err
	}

	reqBody := PlaylistRemoveTracksRequest{Tracks: make([]TrackToRemove, 0, len(normalized))}
	for _, uri := range normalized {
		reqBody.Tracks = append(reqBody.Tracks, TrackToRemove{URI: uri})
	}

	var result PlaylistSnapshotID
	if err := c._delete(ctx, fmt.Sprintf("users/%s/playlists/%s/tracks", userID, id), reqBody, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// normalizeTrackURIs converts a mix of URIs, URLs, and raw IDs to track URIs,
// preserving order
func normalizeTrackURIs(items []string) ([]string, error) {
	uris := make([]string, 0, len(items))
	for _, item := range items {
		if IsURI(item) {
			uris = append(uris, item)
			continue
		}
		id, err := GetID(item, "track")
		if err != nil {
			return nil, fmt.Errorf("invalid track reference %q: %w", item, err)
		}
		uri, err := GetURI(id, "track")
		if err != nil {
			return nil, err
		}
		uris = append(uris, uri)
	}
	return uris, nil
}
