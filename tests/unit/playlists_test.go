package unit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotitab/spotitab"
	"github.com/spotitab/spotitab/tests"
)

func TestUserPlaylistsRows(t *testing.T) {
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/playlists", r.URL.Path)
		assert.Equal(t, "Bearer app-token", r.Header.Get("Authorization"))

		tests.WriteJSONResponse(w, http.StatusOK, tests.PagingJSON([]map[string]interface{}{
			tests.SimplePlaylistJSON("p1", "Morning", "alice", 12, true),
			tests.SimplePlaylistJSON("p2", "Evening", "alice", 7, false),
			tests.SimplePlaylistJSON("p3", "Archive", "bob", 0, true),
		}))
	})
	defer server.Close()

	client := tests.NewMockClient(t, server)

	rows, err := client.UserPlaylists(context.Background(), "alice", nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t,
		[]string{"name", "id", "owner_id", "track_total", "public", "collaborative", "uri", "href"},
		rows.Header(),
	)

	assert.Equal(t, spotitab.PlaylistRow{
		Name:       "Morning",
		ID:         "p1",
		OwnerID:    "alice",
		TrackTotal: 12,
		Public:     true,
		URI:        "spotify:playlist:p1",
		Href:       "https://api.spotify.com/v1/playlists/p1",
	}, rows[0])
	assert.Equal(t, "bob", rows[2].OwnerID)

	// Every row renders every column
	for _, record := range rows.Records() {
		assert.Len(t, record, len(rows.Header()))
	}
}

func TestUserPlaylistsParamsPassThrough(t *testing.T) {
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("limit"))
		assert.Equal(t, "14", r.URL.Query().Get("offset"))
		tests.WriteJSONResponse(w, http.StatusOK, tests.PagingJSON(nil))
	})
	defer server.Close()

	client := tests.NewMockClient(t, server)

	params := url.Values{"limit": {"7"}, "offset": {"14"}}
	rows, err := client.UserPlaylists(context.Background(), "alice", params)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUserPlaylistDetail(t *testing.T) {
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/playlists/2oCEWyyAPbZp9xhVSxZavx", r.URL.Path)

		tests.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
			"id":            "2oCEWyyAPbZp9xhVSxZavx",
			"name":          "Road Trip",
			"description":   "Long drives",
			"owner":         map[string]interface{}{"id": "alice"},
			"followers":     map[string]interface{}{"total": 42},
			"tracks":        map[string]interface{}{"total": 85},
			"public":        true,
			"collaborative": false,
		})
	})
	defer server.Close()

	client := tests.NewMockClient(t, server)

	detail, err := client.UserPlaylist(context.Background(), "alice", tests.TestPlaylistID)
	require.NoError(t, err)

	assert.Equal(t, &spotitab.PlaylistDetail{
		Name:          "Road Trip",
		ID:            "2oCEWyyAPbZp9xhVSxZavx",
		Description:   "Long drives",
		TrackTotal:    85,
		OwnerID:       "alice",
		FollowerTotal: 42,
		Public:        true,
		Collaborative: false,
	}, detail)

	assert.Equal(t,
		[]string{"name", "id", "description", "track_total", "owner_id", "follower_total", "public", "collaborative"},
		detail.Header(),
	)
	require.Len(t, detail.Records(), 1)
}

// track_total comes straight from the reported total, independent of how many
// nested items happen to be present in the envelope
func TestUserPlaylistDetailTrackTotalFromNesting(t *testing.T) {
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		tests.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
			"id":    "2oCEWyyAPbZp9xhVSxZavx",
			"name":  "Sparse",
			"owner": map[string]interface{}{"id": "alice"},
			"tracks": map[string]interface{}{
				"total": 3,
				"items": []interface{}{},
			},
		})
	})
	defer server.Close()

	client := tests.NewMockClient(t, server)

	detail, err := client.UserPlaylist(context.Background(), "alice", tests.TestPlaylistID)
	require.NoError(t, err)
	assert.Equal(t, 3, detail.TrackTotal)
}

func TestUserPlaylistTracks(t *testing.T) {
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/playlists/2oCEWyyAPbZp9xhVSxZavx/tracks/", r.URL.Path)

		tests.WriteJSONResponse(w, http.StatusOK, tests.PagingJSON([]map[string]interface{}{
			tests.TrackItemJSON("t1", "Solo", 1, 201000, tests.ArtistJSON("a1", "Only Artist")),
			tests.TrackItemJSON("t2", "Duet", 2, 185000,
				tests.ArtistJSON("a2", "First Artist"),
				tests.ArtistJSON("a3", "Second Artist"),
			),
		}))
	})
	defer server.Close()

	client := tests.NewMockClient(t, server)

	rows, err := client.UserPlaylistTracks(context.Background(), "alice", tests.TestPlaylistID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "t1", rows[0].ID)
	assert.Equal(t, "albumt1", rows[0].AlbumID)
	assert.Equal(t, "Album of Solo", rows[0].AlbumName)
	require.Len(t, rows[1].Artists, 2)
	assert.Equal(t, "First Artist", rows[1].Artists[0].Name)
	assert.Equal(t, "Second Artist", rows[1].Artists[1].Name)

	// Artist columns follow the widest row
	header := rows.Header()
	assert.Contains(t, header, "artist_name_1")
	assert.Contains(t, header, "artist_id_2")
	assert.NotContains(t, header, "artist_name_3")
}

func TestUserPlaylistCreate(t *testing.T) {
	var captured map[string]interface{}
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/alice/playlists/", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		tests.WriteJSONResponse(w, http.StatusCreated, tests.SimplePlaylistJSON("new1", "Fresh", "alice", 0, false))
	})
	defer server.Close()

	client := tests.NewMockClient(t, server)

	public := false
	created, err := client.UserPlaylistCreate(context.Background(), "alice", &spotitab.CreatePlaylistOptions{
		Name:        "Fresh",
		Public:      &public,
		Description: "just made",
	})
	require.NoError(t, err)

	assert.Equal(t, "new1", created.ID)
	assert.Equal(t, "Fresh", captured["name"])
	assert.Equal(t, false, captured["public"])
	assert.Equal(t, "just made", captured["description"])
}

func TestUserPlaylistCreateRequiresName(t *testing.T) {
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	defer server.Close()
	client := tests.NewMockClient(t, server)

	_, err := client.UserPlaylistCreate(context.Background(), "alice", &spotitab.CreatePlaylistOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestUserPlaylistAddTracksSingleURI(t *testing.T) {
	var captured struct {
		URIs []string `json:"uris"`
	}
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/alice/playlists/2oCEWyyAPbZp9xhVSxZavx/tracks", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		tests.WriteJSONResponse(w, http.StatusCreated, map[string]string{"snapshot_id": "snap1"})
	})
	defer server.Close()

	client := tests.NewMockClient(t, server)

	snapshot, err := client.UserPlaylistAddTracks(context.Background(), "alice", tests.TestPlaylistID, []string{tests.TestTrackURI})
	require.NoError(t, err)

	assert.Equal(t, "snap1", snapshot.SnapshotID)
	assert.Equal(t, []string{tests.TestTrackURI}, captured.URIs)
}

func TestUserPlaylistAddTracksManyInOrder(t *testing.T) {
	var captured struct {
		URIs []string `json:"uris"`
	}
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		tests.WriteJSONResponse(w, http.StatusCreated, map[string]string{"snapshot_id": "snap2"})
	})
	defer server.Close()

	client := tests.NewMockClient(t, server)

	// URIs, raw IDs, and URLs normalize to track URIs, order preserved
	items := []string{
		"spotify:track:0Svkvt5I79wficMFgaqEQJ",
		tests.TestTrackID,
		tests.TestTrackURL,
	}
	_, err := client.UserPlaylistAddTracks(context.Background(), "alice", tests.TestPlaylistID, items)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"spotify:track:0Svkvt5I79wficMFgaqEQJ",
		tests.TestTrackURI,
		tests.TestTrackURI,
	}, captured.URIs)
}

func TestUserPlaylistRemoveTracksBody(t *testing.T) {
	var captured struct {
		Tracks []struct {
			URI string `json:"uri"`
		} `json:"tracks"`
	}
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/alice/playlists/2oCEWyyAPbZp9xhVSxZavx/tracks", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		tests.WriteJSONResponse(w, http.StatusOK, map[string]string{"snapshot_id": "snap3"})
	})
	defer server.Close()

	client := tests.NewMockClient(t, server)

	uris := []string{tests.TestTrackURI, "spotify:track:0Svkvt5I79wficMFgaqEQJ"}
	snapshot, err := client.UserPlaylistRemoveTracks(context.Background(), "alice", tests.TestPlaylistID, uris)
	require.NoError(t, err)

	assert.Equal(t, "snap3", snapshot.SnapshotID)
	require.Len(t, captured.Tracks, 2)
	assert.Equal(t, tests.TestTrackURI, captured.Tracks[0].URI)
	assert.Equal(t, "spotify:track:0Svkvt5I79wficMFgaqEQJ", captured.Tracks[1].URI)
}

func TestMutatingCallsRequireUserToken(t *testing.T) {
	server := tests.NewMockHTTPServer(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	defer server.Close()

	client, err := spotitab.NewClient(
		spotitab.NewAuth("app-token", ""),
		spotitab.WithAPIPrefix(server.URL+"/"),
	)
	require.NoError(t, err)

	_, err = client.UserPlaylistAddTracks(context.Background(), "alice", tests.TestPlaylistID, []string{tests.TestTrackURI})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user OAuth token is required")
}
