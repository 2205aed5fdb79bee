package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evanfield/replaytag/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <project.json>",
		Short: "Export a project's events to CSV or JSON",
		Long: `Export the events of a project file without opening the UI.

Examples:
  replaytag export match.json                      # match.csv next to the input
  replaytag export match.json --format json        # match.export.json
  replaytag export match.json --out /tmp/rows.csv  # explicit destination`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Output format (csv or json)")
	cmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (defaults next to the input)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(exportFormat)
	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown format %q (want csv or json)", exportFormat)
	}

	p, _, err := openProject(args[0], nil, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		if format == "csv" {
			out = base + ".csv"
		} else {
			out = base + ".export.json"
		}
	}

	if format == "csv" {
		err = export.ToCSV(p, out)
	} else {
		err = export.ToJSON(p, out)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d event(s) to %s\n", p.Events.Len(), out)
	return nil
}
