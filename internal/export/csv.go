package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/evanfield/replaytag/internal/project"
	"github.com/evanfield/replaytag/internal/timeline"
)

func ToCSV(p *project.Project, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Type", "Code", "Start", "End", "Duration (s)", "Duration"}); err != nil {
		return err
	}

	codes := p.CodeMap()
	for _, e := range p.Events.All() {
		label := labelFor(e, codes)
		endStr := ""
		if e.Type == project.TypeCoded {
			endStr = timeline.Timecode(e.EndTime)
		}

		row := []string{
			e.ID.String(),
			string(e.Type),
			label,
			timeline.Timecode(e.StartTime),
			endStr,
			fmt.Sprintf("%.1f", e.Duration()),
			timeline.Geotime(e.Duration()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// labelFor names an event row: the code name for coded events (the
// placeholder name when the code is gone), the title for markers.
func labelFor(e project.Event, codes map[uuid.UUID]project.Code) string {
	if e.Type == project.TypeMarker {
		return e.Title
	}
	if c, ok := codes[e.CodeID]; ok {
		return c.Name
	}
	return project.UnknownCodeName
}
