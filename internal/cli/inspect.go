package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanfield/replaytag/internal/project"
	"github.com/evanfield/replaytag/internal/timeline"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <project.json>",
		Short: "Summarize a project file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, _, err := openProject(args[0], nil, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project: %s\n", p.Name)

	if len(p.Videos) > 0 {
		fmt.Fprintln(out, "Videos:")
		for _, v := range p.Videos {
			fmt.Fprintf(out, "  %s (%s)\n", v.Name, v.FilePath)
		}
	}

	fmt.Fprintf(out, "Codes: %d\n", len(p.Codes()))
	for _, c := range p.Codes() {
		shortcut := " "
		if c.Shortcut != "" {
			shortcut = c.Shortcut
		}
		fmt.Fprintf(out, "  [%s] %-24s %s  -%.0fs/+%.0fs\n",
			shortcut, c.Name, c.ColorName, c.LeadTime, c.TrailTime)
	}

	events := p.Events.All()
	fmt.Fprintf(out, "Events: %d\n", len(events))
	for _, e := range events {
		if e.Type == project.TypeMarker {
			fmt.Fprintf(out, "  %s  marker  %s\n", timeline.Timecode(e.StartTime), e.Title)
			continue
		}
		name := project.UnknownCodeName
		if c, ok := p.Code(e.CodeID); ok {
			name = c.Name
		}
		fmt.Fprintf(out, "  %s - %s  %s\n",
			timeline.Timecode(e.StartTime), timeline.Timecode(e.EndTime), name)
	}
	return nil
}
