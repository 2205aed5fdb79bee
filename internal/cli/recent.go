package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanfield/replaytag/internal/store"
)

var recentForget string

func newRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened projects",
		Args:  cobra.NoArgs,
		RunE:  runRecent,
	}

	cmd.Flags().StringVar(&recentForget, "forget", "", "Remove a path from the recent list")

	return cmd
}

func runRecent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dbPath, err := store.DefaultDBPath()
	if err != nil {
		return err
	}
	st, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if recentForget != "" {
		if err := st.ForgetProject(recentForget); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "forgot %s\n", recentForget)
		return nil
	}

	projects, err := st.RecentProjects(cfg.RecentLimit)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no recent projects")
		return nil
	}
	for _, p := range projects {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%s)\n",
			p.LastOpenedAt.Format("2006-01-02 15:04"), p.Name, p.Path)
	}
	return nil
}
