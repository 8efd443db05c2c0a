package charts

import (
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/statistics"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/samber/lo"
)

const (
	sectorColor  string = "#3b82f6"
	defaultColor string = "#6b7280"
	chartHeight  string = "320px"
)

var statusColors = map[string]string{
	types.StatusInUse:   "#22c55e",
	types.StatusStored:  "#f59e0b",
	types.StatusLost:    "#ef4444",
	types.StatusUnknown: "#6b7280",
}

var placeholder = template.Must(template.New("placeholder").Parse(
	`<!DOCTYPE html><html><head><meta charset="utf-8"><title>{{.Title}}</title></head>` +
		`<body><p class="chart-placeholder">{{.Message}}</p></body></html>`,
))

// StatusColor returns the color used for an asset status in the charts.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return defaultColor
}

// StatusPie renders the status breakdown as a pie chart, or a placeholder if
// there is nothing to show.
func StatusPie(w io.Writer, title string, entries []types.ChartEntry) error {
	if len(entries) == 0 {
		return renderPlaceholder(w, title)
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	pie.AddSeries(title, lo.Map(entries, func(e types.ChartEntry, _ int) opts.PieData {
		return opts.PieData{
			Name:      e.Name,
			Value:     e.Value,
			ItemStyle: &opts.ItemStyle{Color: StatusColor(e.Name)},
		}
	}))

	return pie.Render(w)
}

// SectorBar renders assets per sector as a bar chart, or a placeholder if
// there is nothing to show.
func SectorBar(w io.Writer, title string, entries []types.ChartEntry) error {
	if len(entries) == 0 {
		return renderPlaceholder(w, title)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	bar.SetXAxis(lo.Map(entries, func(e types.ChartEntry, _ int) string { return e.Name })).
		AddSeries(title, lo.Map(entries, func(e types.ChartEntry, _ int) opts.BarData {
			return opts.BarData{
				Name:      e.Name,
				Value:     e.Value,
				ItemStyle: &opts.ItemStyle{Color: sectorColor},
			}
		}))

	return bar.Render(w)
}

func renderPlaceholder(w io.Writer, title string) error {
	return placeholder.Execute(w, struct {
		Title   string
		Message string
	}{
		Title:   title,
		Message: statistics.InsufficientData,
	})
}
