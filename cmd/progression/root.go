package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/app"
	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// cli holds the state shared by every subcommand of one invocation
type cli struct {
	root *cobra.Command

	configPath string
	dataDir    string
	backend    string

	settings *config.Config
	app      *app.App
}

func newCLI() *cli {
	c := &cli{}

	root := &cobra.Command{
		Use:   "progression",
		Short: "Chat XP tracker and RPG character engine",
		Long: `progression tracks chat experience and runs RPG characters against a
local JSON, SQLite or Redis store. Every command prints its result as JSON.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "progression.toml", "path to the TOML config file")
	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "override the data directory")
	root.PersistentFlags().StringVar(&c.backend, "backend", "", "override the storage backend (file, sqlite, redis, memory)")

	root.AddCommand(
		newServeCmd(c),
		newProfileCmd(c),
		newCharacterCmd(c),
		newCatalogCmd(c),
		newTitlesCmd(c),
	)

	c.root = root
	return c
}

// execute runs the command line and releases storage even when the
// command failed
func (c *cli) execute(ctx context.Context) error {
	err := c.root.ExecuteContext(ctx)
	if closeErr := c.close(); err == nil {
		err = closeErr
	}
	return err
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dataDir != "" {
		settings.DataDir = c.dataDir
	}
	if c.backend != "" {
		settings.Storage.Backend = c.backend
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	c.settings = settings

	slog.SetDefault(settings.Log.NewLogger(cmd.ErrOrStderr()))

	a, err := app.New(cmd.Context(), &app.Config{Settings: settings})
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	if err := c.app.Close(); err != nil {
		return errors.Wrap(err, "failed to close storage")
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
