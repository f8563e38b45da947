package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jdlms/gcz-explorer/internal/config"
	"github.com/jdlms/gcz-explorer/internal/prefs"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the preferences database",
	Long:  "Create (or recreate) the SQLite database that stores column visibility preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := prefsPath()
		if err != nil {
			return err
		}
		return initPrefs(path, os.Stdin, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func prefsPath() (string, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return "", err
	}
	if cfg.App.PrefsPath != "" {
		return cfg.App.PrefsPath, nil
	}
	return prefs.DefaultPath()
}

// initPrefs creates the database at path, asking before it replaces an
// existing one.
func initPrefs(path string, in io.Reader, out io.Writer) error {
	if prefs.Exists(path) {
		if keys, err := storedKeys(path); err == nil && len(keys) > 0 {
			fmt.Fprintf(out, "Stored preferences (%d): %s\n", len(keys), strings.Join(keys, ", "))
		}
		fmt.Fprintf(out, "Database %s already exists. Do you want to recreate it? (y/N): ", path)
		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, color.YellowString("Database initialization cancelled."))
			return nil
		}
	}

	db, err := prefs.Recreate(path)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintln(out, color.GreenString("Database %s initialized successfully!", path))
	fmt.Fprintln(out, "Created tables: preferences")
	return nil
}

func storedKeys(path string) ([]string, error) {
	db, err := prefs.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.Keys()
}
