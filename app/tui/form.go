package tui

import (
	"fmt"
	"strconv"
	"strings"

	"kiisuite/app/registry"
	"kiisuite/app/service/stats"

	"github.com/charmbracelet/lipgloss"
)

var (
	fieldNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	fieldDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	fieldEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func formPanelWidth(total int) int {
	width := total / 3
	if width < 32 {
		width = 32
	}
	if width > 48 {
		width = 48
	}

	return width
}

// formView renders the live form next to the chat: filled fields, completion
// and, for the data tools, descriptive statistics over the captured points.
func (a *App) formView() string {
	tool := registry.Get(a.toolID)
	form := a.formsSvc.Snapshot(a.toolID)
	width := formPanelWidth(a.width)

	var b strings.Builder
	b.WriteString(fieldNameStyle.Bold(true).Render(strings.ToUpper(a.toolID) + " FORM"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Completion: %d%%", a.formsSvc.Completion(a.toolID)))
	if form.LastUpdated != "" {
		b.WriteString(timeStyle.Render("  updated " + form.LastUpdated))
	}
	b.WriteString("\n\n")

	for _, question := range tool.Questions {
		value := form.Fields[question.Field]
		mark := fieldEmptyStyle.Render("○")
		rendered := fieldEmptyStyle.Render("—")
		if value != "" {
			mark = fieldDoneStyle.Render("●")
			rendered = truncate(value, width-6)
		}

		b.WriteString(fmt.Sprintf("%s %s\n  %s\n", mark, fieldNameStyle.Render(registry.Label(question.Field)), rendered))
	}

	if section := a.statsSection(form.Fields["dataPoints"]); section != "" {
		b.WriteString("\n" + section)
	}

	return panelStyle.Width(width).Render(b.String())
}

func (a *App) statsSection(raw string) string {
	if !isDataTool(a.toolID) || strings.TrimSpace(raw) == "" {
		return ""
	}

	if a.toolID == "scatter-plot" {
		return scatterSection(raw)
	}

	points := stats.ParsePoints(raw)
	desc, ok := stats.Describe(points)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(fieldNameStyle.Bold(true).Render("STATISTICS"))
	b.WriteString(fmt.Sprintf("\nn=%d  mean=%s  median=%s\n", desc.Count, ftoa(desc.Mean), ftoa(desc.Median)))
	b.WriteString(fmt.Sprintf("σ=%s  range=%s  IQR=%s", ftoa(desc.StdDev), ftoa(desc.Range), ftoa(desc.IQR)))

	return b.String()
}

func scatterSection(raw string) string {
	xs, ys := parsePairs(raw)
	if len(xs) < 2 {
		return ""
	}

	r, ok := stats.PearsonR(xs, ys)
	if !ok {
		return ""
	}
	corr := stats.Interpret(r)

	var b strings.Builder
	b.WriteString(fieldNameStyle.Bold(true).Render("CORRELATION"))
	b.WriteString(fmt.Sprintf("\nr=%s  %s %s", ftoa(r), corr.Strength, corr.Direction))

	return b.String()
}

// parsePairs reads "x,y" lines, skipping anything that is not two numbers.
func parsePairs(raw string) ([]float64, []float64) {
	var xs, ys []float64

	for _, line := range strings.Split(raw, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ",", 2)
		if len(parts) != 2 {
			continue
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errX != nil || errY != nil {
			continue
		}

		xs = append(xs, x)
		ys = append(ys, y)
	}

	return xs, ys
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// truncate shortens a value to fit the panel, cutting on rune boundaries so
// multibyte field values stay valid UTF-8.
func truncate(s string, limit int) string {
	if limit < 8 {
		limit = 8
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-1]) + "…"
}
