package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgreen/ecotrack/internal/advice"
	"github.com/rgreen/ecotrack/internal/config"
	"github.com/rgreen/ecotrack/internal/logging"
	"github.com/rgreen/ecotrack/internal/report"
	"github.com/rgreen/ecotrack/internal/store"
	"github.com/rgreen/ecotrack/internal/tracker"
)

// app bundles everything a command needs once configuration, logging and
// storage are wired up. Commands build one per invocation and Close it when
// done.
type app struct {
	cfg       *config.Config
	store     store.BlobStore
	tracker   *tracker.Tracker
	advisor   *advice.Advisor
	reporter  *report.Reporter
	logResult logging.Result
}

// newApp resolves configuration (file, environment, flags), sets up logging
// and opens the storage backend.
func newApp(cmd *cobra.Command) (*app, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	// Flags beat both file and environment.
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		cfg.User = user
	}
	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		cfg.DataDir = dataDir
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logResult := logging.New(logging.Config{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
	})
	logger = logging.Component(logResult.Logger, "cli")

	bs, err := openStore(cfg)
	if err != nil {
		_ = logResult.Close()
		return nil, err
	}

	tr := tracker.New(cmd.Context(), cfg.User, bs,
		tracker.WithLogger(logging.Component(logResult.Logger, "tracker")))
	adv := advice.New()

	logger.Debug().Str("user", cfg.User).Str("backend", cfg.Storage.Backend).
		Msg("command context ready")

	return &app{
		cfg:       cfg,
		store:     bs,
		tracker:   tr,
		advisor:   adv,
		reporter:  report.New(tr, adv),
		logResult: logResult,
	}, nil
}

// openStore builds the configured blob store backend.
func openStore(cfg *config.Config) (store.BlobStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return store.NewSQLiteStore(cfg.Storage.SQLitePath)
	default:
		return store.NewFileStore(cfg.DataDir), nil
	}
}

// Close releases the storage backend and the log file.
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		logger.Warn().Err(err).Msg("closing store")
	}
	_ = a.logResult.Close()
}
