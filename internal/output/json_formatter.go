package output

import (
	"github.com/goccy/go-json"

	"github.com/rpgo/endowment-irr/internal/domain"
)

// JSONFormatter serializes the projection report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	doc := struct {
		*domain.ProjectionReport
		Summary Summary      `json:"summary"`
		Chart   []ChartPoint `json:"chart"`
	}{report, Summarize(&report.Result), ChartSeries(&report.Result)}
	return json.MarshalIndent(doc, "", "  ")
}
