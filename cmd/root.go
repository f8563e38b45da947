package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jdlms/gcz-explorer/internal/app"
	"github.com/jdlms/gcz-explorer/internal/config"
	"github.com/jdlms/gcz-explorer/internal/datasource"
	"github.com/jdlms/gcz-explorer/internal/logger"
	"github.com/jdlms/gcz-explorer/internal/module"
	"github.com/jdlms/gcz-explorer/internal/prefs"
	"github.com/jdlms/gcz-explorer/internal/render"
	"github.com/jdlms/gcz-explorer/internal/visibility"
)

var (
	cfgFile  string
	moduleID string
)

var rootCmd = &cobra.Command{
	Use:   "gcz-explorer",
	Short: "GCZ data explorer TUI",
	Long:  "A terminal user interface for searching and browsing GCZ datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		// This is the default behavior - start the TUI
		return startTUI(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.env format)")
	rootCmd.PersistentFlags().StringVar(&moduleID, "module", "", "module to open (defaults to DEFAULT_MODULE)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

// bootstrap loads configuration and opens the log file.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Str("env", cfg.App.Env).Str("locale", cfg.UI.Locale).Msg("config loaded")
	return cfg, log, nil
}

func selectedModule(cfg *config.Config) string {
	if moduleID != "" {
		return moduleID
	}
	return cfg.App.DefaultModule
}

func openPrefs(cfg *config.Config) (*prefs.DB, error) {
	path := cfg.App.PrefsPath
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			return nil, fmt.Errorf("locate preferences: %w", err)
		}
	}
	return prefs.Open(path)
}

// openKV opens the preferences database. When it cannot be opened the
// session keeps column choices in memory only.
func openKV(cfg *config.Config, log *logger.Logger) (visibility.KV, func()) {
	store, err := openPrefs(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("preferences unavailable, column choices will not be saved")
		return visibility.NewMemoryKV(), func() {}
	}
	return store, func() { store.Close() }
}

func startTUI(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Close()

	pool, err := datasource.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DB.Timeout)
	if err := datasource.Ping(pingCtx, pool); err != nil {
		// keep going: every search surfaces the failure with a retry
		log.Warn().Err(err).Msg("database not reachable at startup")
	}
	cancel()

	kv, closeKV := openKV(cfg, log)
	defer closeKV()

	state := app.CreateApp(app.Deps{
		Registry:  module.Builtin(),
		Backend:   datasource.NewClient(pool, cfg.DB.RPCSchema),
		KV:        kv,
		Formatter: render.NewFormatter(cfg.UI.Locale),
		Logger:    log.Zerolog(),
		Settings: app.Settings{
			Debounce:      cfg.Search.Debounce,
			FallbackLimit: cfg.Search.FallbackLimit,
			Timeout:       cfg.DB.Timeout,
			PageSize:      cfg.UI.PageSize,
			ExportDir:     cfg.App.ExportDir,
		},
		Module: selectedModule(cfg),
	})
	log.Info().Str("module", selectedModule(cfg)).Msg("starting TUI")
	return state.Run()
}
