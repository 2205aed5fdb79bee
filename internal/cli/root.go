package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/evanfield/replaytag/internal/config"
	"github.com/evanfield/replaytag/internal/project"
	"github.com/evanfield/replaytag/internal/store"
	"github.com/evanfield/replaytag/internal/tui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "replaytag [project.json]",
	Short: "Tag and review timed events on a sports video timeline",
	Long: `replaytag is a terminal tool for coding sports footage: scrub a
timeline, tag moments against a set of color-coded categories, and
export the annotations for review.

Without an argument it reopens the most recently used project, or
starts a fresh one.

Examples:
  replaytag                      # reopen last project (or start fresh)
  replaytag match.json           # open a project file
  replaytag export match.json    # export events without opening the UI
  replaytag inspect match.json   # summarize a project file`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/replaytag/config.yaml)")
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newRecentCmd())
}

// Execute runs the root command, printing errors the way main expects.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
	}
	return config.Load(path)
}

// openProject resolves which project to open and loads it. Orphaned
// code references are reported, never fatal.
func openProject(path string, st *store.Store, errOut io.Writer) (*project.Project, string, error) {
	if path == "" && st != nil {
		if last, ok := st.LastProject(); ok {
			path = last
		}
	}
	if path == "" {
		return project.New(), "", nil
	}

	res, err := project.Load(path)
	if err != nil {
		var malformed *project.MalformedDocumentError
		if errors.As(err, &malformed) {
			return nil, "", fmt.Errorf("%s is not a usable project file: %s", path, malformed.Reason)
		}
		return nil, "", err
	}
	if res.Orphans > 0 {
		fmt.Fprintf(errOut, "warning: %d event(s) referenced deleted codes and were rebound to %q\n",
			res.Orphans, project.UnknownCodeName)
	}
	return res.Project, path, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var st *store.Store
	if dbPath, err := store.DefaultDBPath(); err == nil {
		if s, err := store.New(dbPath); err == nil {
			st = s
			defer st.Close()
		}
	}

	// Per-machine settings in the store win over the config file; both
	// fall back to the built-in defaults.
	if st != nil {
		cfg.DefaultLead = st.SettingFloat("default_lead", cfg.DefaultLead)
		cfg.DefaultTrail = st.SettingFloat("default_trail", cfg.DefaultTrail)
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	p, path, err := openProject(path, st, os.Stderr)
	if err != nil {
		return err
	}
	if path != "" && st != nil {
		_ = st.RememberProject(path, p.Name)
	}

	app := tui.NewApp(p, path, cfg, st)
	prog := tea.NewProgram(app, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}
