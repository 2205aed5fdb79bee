package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/evanfield/replaytag/internal/project"
	"github.com/evanfield/replaytag/internal/timeline"
)

type jsonExport struct {
	Project    string      `json:"project"`
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Events     []jsonEvent `json:"events"`
}

type jsonEvent struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Code        string  `json:"code"`
	StartSec    float64 `json:"start_seconds"`
	EndSec      float64 `json:"end_seconds,omitempty"`
	Start       string  `json:"start"`
	End         string  `json:"end,omitempty"`
	DurationSec float64 `json:"duration_seconds"`
}

func ToJSON(p *project.Project, path string) error {
	out := jsonExport{
		Project:    p.Name,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      p.Events.Len(),
		Events:     []jsonEvent{},
	}

	codes := p.CodeMap()
	for _, e := range p.Events.All() {
		row := jsonEvent{
			ID:          e.ID.String(),
			Type:        string(e.Type),
			Code:        labelFor(e, codes),
			StartSec:    e.StartTime,
			Start:       timeline.Timecode(e.StartTime),
			DurationSec: e.Duration(),
		}
		if e.Type == project.TypeCoded {
			row.EndSec = e.EndTime
			row.End = timeline.Timecode(e.EndTime)
		}
		out.Events = append(out.Events, row)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
