package spotitab

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
)

// Table is a flat, ordered set of records with named columns.
// Every operation that returns rows returns a Table implementation.
type Table interface {
	Header() []string
	Records() [][]string
}

// PlaylistRow is one row of a playlist listing
type PlaylistRow struct {
	Name          string `csv:"name"`
	ID            string `csv:"id"`
	OwnerID       string `csv:"owner_id"`
	TrackTotal    int    `csv:"track_total"`
	Public        bool   `csv:"public"`
	Collaborative bool   `csv:"collaborative"`
	URI           string `csv:"uri"`
	Href          string `csv:"href"`
}

// PlaylistTable is a list of playlist rows
type PlaylistTable []PlaylistRow

// Header implements Table
func (t PlaylistTable) Header() []string {
	return structHeader(reflect.TypeOf(PlaylistRow{}))
}

// Records implements Table
func (t PlaylistTable) Records() [][]string {
	records := make([][]string, 0, len(t))
	for _, row := range t {
		records = append(records, structRecord(reflect.ValueOf(row)))
	}
	return records
}

// PlaylistDetail is the single flat row for one playlist
type PlaylistDetail struct {
	Name          string `csv:"name"`
	ID            string `csv:"id"`
	Description   string `csv:"description"`
	TrackTotal    int    `csv:"track_total"`
	OwnerID       string `csv:"owner_id"`
	FollowerTotal int    `csv:"follower_total"`
	Public        bool   `csv:"public"`
	Collaborative bool   `csv:"collaborative"`
}

// Header implements Table
func (d *PlaylistDetail) Header() []string {
	return structHeader(reflect.TypeOf(PlaylistDetail{}))
}

// Records implements Table
func (d *PlaylistDetail) Records() [][]string {
	return [][]string{structRecord(reflect.ValueOf(*d))}
}

// ArtistRef is one of a track's ordered artists
type ArtistRef struct {
	ID   string
	Name string
}

// TrackRow is one row of a playlist's track listing. The ordered artists are
// kept as a slice; the table flattens them into positional columns.
type TrackRow struct {
	ID          string      `csv:"id"`
	Name        string      `csv:"name"`
	TrackNumber int         `csv:"track_number"`
	DiscNumber  int         `csv:"disc_number"`
	DurationMs  int         `csv:"duration_ms"`
	Popularity  int         `csv:"popularity"`
	Explicit    bool        `csv:"explicit"`
	AlbumID     string      `csv:"album_id"`
	AlbumName   string      `csv:"album_name"`
	Artists     []ArtistRef `csv:"-"`
}

// TrackTable is a list of track rows
type TrackTable []TrackRow

// maxArtists returns the widest artist list in the table
func (t TrackTable) maxArtists() int {
	max := 0
	for _, row := range t {
		if len(row.Artists) > max {
			max = len(row.Artists)
		}
	}
	return max
}

// Header implements Table. Artist columns are named by position
// (artist_name_1, artist_id_1, artist_name_2, ...) since a track may have
// multiple artists; the width follows the widest row in the table.
func (t TrackTable) Header() []string {
	header := structHeader(reflect.TypeOf(TrackRow{}))
	for i := 1; i <= t.maxArtists(); i++ {
		header = append(header, fmt.Sprintf("artist_name_%d", i), fmt.Sprintf("artist_id_%d", i))
	}
	return header
}

// Records implements Table
func (t TrackTable) Records() [][]string {
	width := t.maxArtists()
	records := make([][]string, 0, len(t))
	for _, row := range t {
		record := structRecord(reflect.ValueOf(row))
		for i := 0; i < width; i++ {
			if i < len(row.Artists) {
				record = append(record, row.Artists[i].Name, row.Artists[i].ID)
			} else {
				record = append(record, "", "")
			}
		}
		records = append(records, record)
	}
	return records
}

// structHeader takes a row struct type and returns its column names.
// It uses the `csv` tag on struct fields; fields tagged "-" are skipped.
func structHeader(t reflect.Type) []string {
	var headers []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		csvTag := field.Tag.Get("csv")
		if csvTag == "-" {
			continue
		}
		headerName := field.Name
		if csvTag != "" {
			headerName = csvTag
		}
		headers = append(headers, headerName)
	}
	return headers
}

// structRecord renders a row struct's tagged fields as strings, in field order
func structRecord(v reflect.Value) []string {
	t := v.Type()
	var record []string
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("csv") == "-" {
			continue
		}
		record = append(record, fmt.Sprintf("%v", v.Field(i).Interface()))
	}
	return record
}

// WriteCSV writes the table's header and records to w in CSV format
func WriteCSV(w io.Writer, table Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(table.Header()); err != nil {
		return err
	}
	for _, record := range table.Records() {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// newPlaylistRow flattens a simplified playlist into a listing row
func newPlaylistRow(p SimplifiedPlaylist) PlaylistRow {
	row := PlaylistRow{
		Name:          p.Name,
		ID:            p.ID,
		Collaborative: p.Collaborative,
		URI:           p.URI,
		Href:          p.Href,
	}
	if p.Owner != nil {
		row.OwnerID = p.Owner.ID
	}
	if p.Tracks != nil {
		row.TrackTotal = p.Tracks.Total
	}
	if p.Public != nil {
		row.Public = *p.Public
	}
	return row
}

// newPlaylistDetail flattens a full playlist into its single row
func newPlaylistDetail(p *Playlist) *PlaylistDetail {
	detail := &PlaylistDetail{
		Name:          p.Name,
		ID:            p.ID,
		Collaborative: p.Collaborative,
	}
	if p.Description != nil {
		detail.Description = *p.Description
	}
	if p.Owner != nil {
		detail.OwnerID = p.Owner.ID
	}
	if p.Tracks != nil {
		detail.TrackTotal = p.Tracks.Total
	}
	if p.Followers != nil {
		detail.FollowerTotal = p.Followers.Total
	}
	if p.Public != nil {
		detail.Public = *p.Public
	}
	return detail
}

// newTrackRow flattens a playlist item into a track row, keeping artist order
func newTrackRow(item PlaylistItem) TrackRow {
	track := item.Track
	row := TrackRow{
		ID:          track.ID,
		Name:        track.Name,
		TrackNumber: track.TrackNumber,
		DiscNumber:  track.DiscNumber,
		DurationMs:  track.DurationMs,
		Popularity:  track.Popularity,
		Explicit:    track.Explicit,
	}
	if track.Album != nil {
		row.AlbumID = track.Album.ID
		row.AlbumName = track.Album.Name
	}
	for _, artist := range track.Artists {
		row.Artists = append(row.Artists, ArtistRef{ID: artist.ID, Name: artist.Name})
	}
	return row
}
