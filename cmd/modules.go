package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jdlms/gcz-explorer/internal/module"
)

var modulesFormat string

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the available modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeModules(cmd.OutOrStdout(), module.Builtin().List(), modulesFormat)
	},
}

func init() {
	modulesCmd.Flags().StringVarP(&modulesFormat, "format", "f", "table", "output format: table, yaml or json")
	rootCmd.AddCommand(modulesCmd)
}

func writeModules(w io.Writer, mods []*module.Config, format string) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tSOURCE\tCOLUMNS\tSUM")
		for _, m := range mods {
			fmt.Fprintf(tw, "%s\t%s\t%s.%s\t%d\t%s\n", m.ID, m.Name, m.Schema, m.TableName, len(m.Columns), m.SumField)
		}
		return tw.Flush()
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(mods); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(mods, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
