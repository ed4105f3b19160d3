package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/homes/internal/config"
	"github.com/five82/homes/internal/homes"
	"github.com/five82/homes/internal/logging"
	"github.com/five82/homes/internal/prefs"
	"github.com/five82/homes/internal/ui"
	"github.com/five82/homes/internal/views"
)

// Options configure the homes application.
type Options struct {
	ConfigPath string
	EnvFile    string // empty uses ./.env when present
	PrefsPath  string // empty uses ~/.config/homes/prefs.toml
	HomeID     string // open this home instead of the list
	AddHome    bool   // open the add-home form instead of the list
}

// Run boots the homes TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := logging.New(logFile, cfg.LogLevel)
	log := logging.Component(logger, "app")

	client, err := homes.NewClient(cfg.APIBase, logger)
	if err != nil {
		log.Error().Err(err).Str("api_base", cfg.APIBase).Msg("init client failed")
		return fmt.Errorf("init homes client: %w", err)
	}

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = config.PrefsPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	start := startRoute(opts)
	log.Info().
		Str("api_base", client.BaseURL()).
		Str("route", start.Route.String()).
		Msg("starting")

	err = ui.Run(ui.Options{
		Context:   ctx,
		Gateway:   client,
		Logger:    logger,
		Start:     start,
		APIBase:   client.BaseURL(),
		LogFile:   cfg.LogFile,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	})
	if err != nil && ctx.Err() != nil {
		log.Info().Msg("interrupted")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("ui exited with error")
		return err
	}
	log.Info().Msg("exiting")
	return nil
}

// startRoute picks the first screen from the command line.
func startRoute(opts Options) views.NavigateMsg {
	switch {
	case opts.AddHome:
		return views.NavigateMsg{Route: views.RouteCreate}
	case opts.HomeID != "":
		return views.NavigateMsg{Route: views.RouteDetails, ID: homes.ID(strings.TrimSpace(opts.HomeID))}
	default:
		return views.NavigateMsg{Route: views.RouteList}
	}
}
