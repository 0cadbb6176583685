package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"bilancio/internal/core"
)

// ErrNoChartData is returned when every category sums to zero, leaving
// nothing to draw.
var ErrNoChartData = errors.New("no spending data to chart")

const chartSize = 600

// RenderPie draws the summary as a pie chart PNG. Proportions use the
// absolute value of each category sum, so a uniformly negative sign
// convention still renders sensibly; zero-valued categories are skipped.
// Labels carry the category name and its share of the absolute total.
func RenderPie(w io.Writer, s core.Summary) error {
	var absTotal int64
	for _, ca := range s.Ordered() {
		absTotal += ca.Amount.Abs().Cents
	}
	if absTotal == 0 {
		return ErrNoChartData
	}

	var values []chart.Value
	for _, ca := range s.Ordered() {
		abs := ca.Amount.Abs().Cents
		if abs == 0 {
			continue
		}
		pct := float64(abs) / float64(absTotal) * 100
		values = append(values, chart.Value{
			Value: float64(abs),
			Label: fmt.Sprintf("%s (%.1f%%)", ca.Name, pct),
		})
	}

	pie := chart.PieChart{
		Title:  "Spending by category",
		Width:  chartSize,
		Height: chartSize,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

// SavePie renders the pie chart into a PNG file at path, creating parent
// directories as needed.
func SavePie(path string, s core.Summary) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}

	if err := RenderPie(f, s); err != nil {
		f.Close()
		os.Remove(path) // don't leave a truncated artifact behind
		return err
	}
	return f.Close()
}
