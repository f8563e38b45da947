package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jdlms/gcz-explorer/internal/datasource"
	"github.com/jdlms/gcz-explorer/internal/grid"
	"github.com/jdlms/gcz-explorer/internal/module"
	"github.com/jdlms/gcz-explorer/internal/search"
	"github.com/jdlms/gcz-explorer/internal/visibility"
)

var searchOut string

var searchCmd = &cobra.Command{
	Use:   "search <module> [term]",
	Short: "Run one search and write the rows as CSV",
	Long:  "Run a module search (search function first, direct table read as fallback) and write the visible columns as CSV",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := ""
		if len(args) == 2 {
			term = args[1]
		}
		return runSearch(cmd.Context(), args[0], term, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchOut, "out", "o", "", "write CSV to this file instead of stdout")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(ctx context.Context, id, term string, stdout, stderr io.Writer) error {
	mod, err := module.Builtin().Lookup(id)
	if err != nil {
		return err
	}
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

	hook := search.New(mod, datasource.NewClient(pool, cfg.DB.RPCSchema), search.Options{
		FallbackLimit: cfg.Search.FallbackLimit,
		Timeout:       cfg.DB.Timeout,
		Logger:        log.Zerolog(),
	})
	defer hook.Close()

	if err := hook.FetchData(ctx, term); err != nil {
		return fmt.Errorf("search %s: %w", mod.ID, err)
	}
	st := hook.State()

	store, err := openPrefs(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	defs := visibility.New(mod, store, log.Zerolog()).Columns()

	out := stdout
	if searchOut != "" {
		f, err := os.Create(searchOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := grid.WriteRows(out, defs, st.Rows); err != nil {
		return err
	}

	source := "search function"
	if st.Source == search.SourceFallback {
		source = "fallback table read"
	}
	fmt.Fprintln(stderr, color.GreenString("%d rows from %s (%s)", len(st.Rows), mod.ID, source))
	return nil
}
