package pipeline

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/chromatic/pkg/errors"
)

// Report is the JSON form of a Result.
type Report struct {
	RunID      string         `json:"run_id"`
	Sample     string         `json:"sample,omitempty"`
	Algorithm  string         `json:"algorithm"`
	Used       string         `json:"used"`
	FellBack   bool           `json:"fell_back,omitempty"`
	Reason     string         `json:"fallback_reason,omitempty"`
	NumColors  int            `json:"num_colors"`
	Valid      bool           `json:"valid"`
	DurationUS int64          `json:"duration_us"`
	Edges      int            `json:"edges"`
	Probes     int            `json:"probes,omitempty"`
	Steps      int            `json:"steps,omitempty"`
	Vertices   []VertexReport `json:"vertices"`
}

// VertexReport is one vertex with its assigned color.
type VertexReport struct {
	ID    int     `json:"id"`
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color int     `json:"color"`
}

// Report reads the coloring back in vertex insertion order.
func (r *Result) Report() Report {
	rep := Report{
		RunID:      r.RunID,
		Sample:     r.Sample,
		Algorithm:  r.Algorithm.String(),
		Used:       r.Used.String(),
		FellBack:   r.FellBack,
		NumColors:  r.NumColors,
		Valid:      r.Valid,
		DurationUS: r.Stats.Duration.Microseconds(),
		Edges:      r.Stats.Edges,
		Probes:     r.Stats.Probes,
		Steps:      r.Stats.Steps,
	}
	if r.FallbackReason != nil {
		rep.Reason = errors.UserMessage(r.FallbackReason)
	}

	vertices := r.Graph.Vertices()
	rep.Vertices = make([]VertexReport, len(vertices))
	for i, v := range vertices {
		rep.Vertices[i] = VertexReport{
			ID:    v.ID,
			Label: v.Label,
			X:     v.X,
			Y:     v.Y,
			Color: r.Graph.VertexColor(v.ID),
		}
	}
	return rep
}

// WriteJSON writes the report as indented JSON.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Report())
}
