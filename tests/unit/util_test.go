package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotitab/spotitab"
	"github.com/spotitab/spotitab/tests"
)

func TestGetID(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		entityType string
		expected   string
		wantErr    bool
	}{
		{"raw ID", tests.TestTrackID, "track", tests.TestTrackID, false},
		{"track URI", tests.TestTrackURI, "track", tests.TestTrackID, false},
		{"track URL", tests.TestTrackURL, "track", tests.TestTrackID, false},
		{"playlist URI", "spotify:playlist:2oCEWyyAPbZp9xhVSxZavx", "playlist", "2oCEWyyAPbZp9xhVSxZavx", false},
		{"user playlist URI", "spotify:user:alice42:playlist:2oCEWyyAPbZp9xhVSxZavx", "playlist", "2oCEWyyAPbZp9xhVSxZavx", false},
		{"playlist URL", "https://open.spotify.com/playlist/2oCEWyyAPbZp9xhVSxZavx?si=abc", "playlist", "2oCEWyyAPbZp9xhVSxZavx", false},
		{"intl URL", "https://open.spotify.com/intl-de/track/6b2oQwSGFkzsMtQruIWm2p", "track", tests.TestTrackID, false},
		{"type mismatch", tests.TestTrackURI, "playlist", "", true},
		{"invalid characters", "not-base62!", "track", "", true},
		{"empty", "", "track", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := spotitab.GetID(tc.input, tc.entityType)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestGetURI(t *testing.T) {
	uri, err := spotitab.GetURI(tests.TestTrackID, "track")
	require.NoError(t, err)
	assert.Equal(t, tests.TestTrackURI, uri)

	_, err = spotitab.GetURI(tests.TestTrackID, "concert")
	require.Error(t, err)

	_, err = spotitab.GetURI("has spaces", "track")
	require.Error(t, err)
}

func TestIsURI(t *testing.T) {
	assert.True(t, spotitab.IsURI(tests.TestTrackURI))
	assert.True(t, spotitab.IsURI("spotify:playlist:2oCEWyyAPbZp9xhVSxZavx"))
	assert.True(t, spotitab.IsURI("spotify:user:alice42:playlist:2oCEWyyAPbZp9xhVSxZavx"))
	assert.False(t, spotitab.IsURI(tests.TestTrackID))
	assert.False(t, spotitab.IsURI(tests.TestTrackURL))
	assert.False(t, spotitab.IsURI("spotify:track:"))
}
