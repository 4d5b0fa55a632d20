package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spotitab/spotitab"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "spotitab",
		Usage: "Read and mutate Spotify playlists, printing results as CSV tables.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write CSV output to `FILE` instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "playlists",
				Usage:     "List a user's playlists",
				ArgsUsage: "USER_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "limit", Usage: "page size passed through to the API"},
					&cli.StringFlag{Name: "offset", Usage: "page offset passed through to the API"},
				},
				Action: listPlaylists,
			},
			{
				Name:      "playlist",
				Usage:     "Show one playlist as a single row",
				ArgsUsage: "USER_ID PLAYLIST",
				Action:    showPlaylist,
			},
			{
				Name:      "tracks",
				Usage:     "List a playlist's tracks",
				ArgsUsage: "USER_ID PLAYLIST",
				Action:    listTracks,
			},
			{
				Name:      "create",
				Usage:     "Create a playlist",
				ArgsUsage: "USER_ID NAME",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "public", Usage: "make the playlist public"},
					&cli.StringFlag{Name: "description", Usage: "playlist description"},
				},
				Action: createPlaylist,
			},
			{
				Name:      "add",
				Usage:     "Add tracks to a playlist",
				ArgsUsage: "USER_ID PLAYLIST URI...",
				Action:    addTracks,
			},
			{
				Name:      "remove",
				Usage:     "Remove tracks from a playlist",
				ArgsUsage: "USER_ID PLAYLIST URI...",
				Action:    removeTracks,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds a client from the environment and the global flags
func newClient(c *cli.Context) (*spotitab.Client, error) {
	cfg, err := spotitab.LoadConfig()
	if err != nil {
		return nil, err
	}

	opts := cfg.ClientOptions()
	if c.Bool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, spotitab.WithLogger(logger))
	}

	return spotitab.NewClient(cfg.Auth(), opts...)
}

// output returns the CSV destination selected by the -o flag
func output(c *cli.Context) (*os.File, func(), error) {
	path := c.String("output")
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}

// requireArgs checks the fixed leading arguments of a command
func requireArgs(c *cli.Context, names ...string) error {
	if c.NArg() < len(names) {
		return fmt.Errorf("missing arguments: %s", strings.Join(names[c.NArg():], " "))
	}
	return nil
}

func listPlaylists(c *cli.Context) error {
	if err := requireArgs(c, "USER_ID"); err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}

	params := url.Values{}
	if v := c.String("limit"); v != "" {
		params.Set("limit", v)
	}
	if v := c.String("offset"); v != "" {
		params.Set("offset", v)
	}

	rows, err := client.UserPlaylists(c.Context, c.Args().Get(0), params)
	if err != nil {
		return err
	}

	dest, done, err := output(c)
	if err != nil {
		return err
	}
	defer done()
	return spotitab.WriteCSV(dest, rows)
}

func showPlaylist(c *cli.Context) error {
	if err := requireArgs(c, "USER_ID", "PLAYLIST"); err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}

	detail, err := client.UserPlaylist(c.Context, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	dest, done, err := output(c)
	if err != nil {
		return err
	}
	defer done()
	return spotitab.WriteCSV(dest, detail)
}

func listTracks(c *cli.Context) error {
	if err := requireArgs(c, "USER_ID", "PLAYLIST"); err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}

	rows, err := client.UserPlaylistTracks(c.Context, c.Args().Get(0), c.Args().Get(1), nil)
	if err != nil {
		return err
	}

	dest, done, err := output(c)
	if err != nil {
		return err
	}
	defer done()
	return spotitab.WriteCSV(dest, rows)
}

func createPlaylist(c *cli.Context) error {
	if err := requireArgs(c, "USER_ID", "NAME"); err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}

	opts := &spotitab.CreatePlaylistOptions{
		Name:        c.Args().Get(1),
		Description: c.String("description"),
	}
	if c.IsSet("public") {
		public := c.Bool("public")
		opts.Public = &public
	}

	created, err := client.UserPlaylistCreate(c.Context, c.Args().Get(0), opts)
	if err != nil {
		return err
	}

	fmt.Printf("created playlist %s (%s)\n", created.Name, created.ID)
	return nil
}

func addTracks(c *cli.Context) error {
	if err := requireArgs(c, "USER_ID", "PLAYLIST", "URI"); err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}

	snapshot, err := client.UserPlaylistAddTracks(c.Context, c.Args().Get(0), c.Args().Get(1), c.Args().Slice()[2:])
	if err != nil {
		return err
	}

	fmt.Printf("snapshot %s\n", snapshot.SnapshotID)
	return nil
}

func removeTracks(c *cli.Context) error {
	if err := requireArgs(c, "USER_ID", "PLAYLIST", "URI"); err != nil {
		return err
	}
	client, err := newClient(c)
	if err != nil {
		return err
	}

	snapshot, err := client.UserPlaylistRemoveTracks(c.Context, c.Args().Get(0), c.Args().Get(1), c.Args().Slice()[2:])
	if err != nil {
		return err
	}

	fmt.Printf("snapshot %s\n", snapshot.SnapshotID)
	return nil
}
