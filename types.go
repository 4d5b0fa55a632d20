package spotitab

// Type definitions for Spotify Web API responses
// All types match the Spotify API JSON structure exactly

// Paging represents a paginated response (offset-based).
// The client does not walk pages; callers pass limit/offset through verbatim.
type Paging[T any] struct {
	Href     string  `json:"href"`
	Items    []T     `json:"items"`
	Limit    int     `json:"limit"`
	Next     *string `json:"next"`
	Offset   int     `json:"offset"`
	Previous *string `json:"previous"`
	Total    int     `json:"total"`
}

// Image represents an image
type Image struct {
	URL    string `json:"url"`
	Height *int   `json:"height,omitempty"`
	Width  *int   `json:"width,omitempty"`
}

// ExternalURLs represents external URLs
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// Followers represents follower information
type Followers struct {
	Href  *string `json:"href,omitempty"`
	Total int     `json:"total"`
}

// PublicUser represents a public user profile
type PublicUser struct {
	DisplayName  *string       `json:"display_name"`
	ExternalURLs *ExternalURLs `json:"external_urls"`
	Followers    *Followers    `json:"followers"`
	Href         string        `json:"href"`
	ID           string        `json:"id"`
	Images       []Image       `json:"images"`
	Type         string        `json:"type"`
	URI          string        `json:"uri"`
}

// SimplifiedArtist represents a simplified artist object
type SimplifiedArtist struct {
	ExternalURLs *ExternalURLs `json:"external_urls"`
	Href         string        `json:"href"`
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         string        `json:"type"`
	URI          string        `json:"uri"`
}

// SimplifiedAlbum represents a simplified album object
type SimplifiedAlbum struct {
	AlbumType    string             `json:"album_type"`
	Artists      []SimplifiedArtist `json:"artists"`
	ExternalURLs *ExternalURLs      `json:"external_urls"`
	Href         string             `json:"href"`
	ID           string             `json:"id"`
	Images       []Image            `json:"images"`
	Name         string             `json:"name"`
	ReleaseDate  string             `json:"release_date"`
	TotalTracks  int                `json:"total_tracks"`
	Type         string             `json:"type"`
	URI          string             `json:"uri"`
}

// Track represents a full track object
type Track struct {
	Album        *SimplifiedAlbum   `json:"album"`
	Artists      []SimplifiedArtist `json:"artists"`
	DiscNumber   int                `json:"disc_number"`
	DurationMs   int                `json:"duration_ms"`
	Explicit     bool               `json:"explicit"`
	ExternalURLs *ExternalURLs      `json:"external_urls"`
	Href         string             `json:"href"`
	ID           string             `json:"id"`
	IsLocal      bool               `json:"is_local"`
	Name         string             `json:"name"`
	Popularity   int                `json:"popularity"`
	TrackNumber  int                `json:"track_number"`
	Type         string             `json:"type"`
	URI          string             `json:"uri"`
}

// SimplifiedPlaylist represents a simplified playlist object
type SimplifiedPlaylist struct {
	Collaborative bool               `json:"collaborative"`
	Description   *string            `json:"description"`
	ExternalURLs  *ExternalURLs      `json:"external_urls"`
	Href          string             `json:"href"`
	ID            string             `json:"id"`
	Images        []Image            `json:"images"`
	Name          string             `json:"name"`
	Owner         *PublicUser        `json:"owner"`
	Public        *bool              `json:"public"`
	SnapshotID    string             `json:"snapshot_id"`
	Tracks        *PlaylistTracksRef `json:"tracks"`
	Type          string             `json:"type"`
	URI           string             `json:"uri"`
}

// Playlist represents a full playlist object
type Playlist struct {
	SimplifiedPlaylist
	Followers *Followers `json:"followers"`
}

// PlaylistTracksRef represents a reference to playlist tracks
type PlaylistTracksRef struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// PlaylistItem represents an item in a playlist
type PlaylistItem struct {
	AddedAt string      `json:"added_at"`
	AddedBy *PublicUser `json:"added_by"`
	IsLocal bool        `json:"is_local"`
	Track   *Track      `json:"track"`
}

// PlaylistSnapshotID represents a playlist snapshot ID response
type PlaylistSnapshotID struct {
	SnapshotID string `json:"snapshot_id"`
}
