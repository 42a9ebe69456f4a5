package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rpgo/endowment-irr/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with an inline SVG chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"amount": FormatAmount,
	"whole":  FormatWhole,
	"pct":    FormatPercentage,
	"irr":    FormatIRR,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chart geometry in SVG user units
const (
	chartWidth   = 720
	chartHeight  = 320
	chartPadding = 40
)

type htmlChart struct {
	Width, Height    int
	Premium          string
	Surrender        string
	Death            string
	MaxLabel         string
	FirstYear, Years int
}

func (h HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	series := ChartSeries(&report.Result)
	data := struct {
		*domain.ProjectionReport
		Summary Summary
		Series  []ChartPoint
		Chart   htmlChart
	}{report, Summarize(&report.Result), series, buildHTMLChart(series)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildHTMLChart(series []ChartPoint) htmlChart {
	c := htmlChart{Width: chartWidth, Height: chartHeight, Years: len(series)}
	if len(series) == 0 {
		return c
	}
	c.FirstYear = series[0].PolicyYear
	maxValue := decimal.Zero
	for _, p := range series {
		maxValue = decimal.Max(maxValue, p.CumulativePremium, p.SurrenderBenefit, p.DeathBenefit)
	}
	if !maxValue.IsPositive() {
		maxValue = decimal.NewFromInt(1)
	}
	c.MaxLabel = FormatWhole(maxValue)
	c.Premium = polyline(series, maxValue, func(p ChartPoint) decimal.Decimal { return p.CumulativePremium })
	c.Surrender = polyline(series, maxValue, func(p ChartPoint) decimal.Decimal { return p.SurrenderBenefit })
	c.Death = polyline(series, maxValue, func(p ChartPoint) decimal.Decimal { return p.DeathBenefit })
	return c
}

func polyline(series []ChartPoint, maxValue decimal.Decimal, value func(ChartPoint) decimal.Decimal) string {
	plotW := float64(chartWidth - 2*chartPadding)
	plotH := float64(chartHeight - 2*chartPadding)
	step := plotW
	if len(series) > 1 {
		step = plotW / float64(len(series)-1)
	}
	pts := make([]string, 0, len(series))
	for i, p := range series {
		ratio := value(p).Div(maxValue).InexactFloat64()
		x := float64(chartPadding) + step*float64(i)
		y := float64(chartHeight-chartPadding) - ratio*plotH
		pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	return strings.Join(pts, " ")
}
