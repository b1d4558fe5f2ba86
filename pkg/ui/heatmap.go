package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/cloudposse/ekscli/pkg/perf"
)

const (
	maxBarWidth    = 40
	maxLabelWidth  = 48
	heatmapPadding = 1
)

var (
	heatmapStyle = lipgloss.NewStyle().Padding(heatmapPadding, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	barColors    = []lipgloss.Color{"196", "208", "226", "46", "39"}
)

// RenderHeatmap draws one bar per tracked function, scaled to the slowest total.
func RenderHeatmap(stats []perf.Stat) string {
	if len(stats) == 0 {
		return heatmapStyle.Render(mutedStyle.Render("No performance data recorded"))
	}

	var longest time.Duration
	labelWidth := 0
	for _, s := range stats {
		longest = max(longest, s.Total)
		labelWidth = max(labelWidth, len(s.Name))
	}
	labelWidth = min(labelWidth, maxLabelWidth)

	lines := []string{titleStyle.Render("Time by Function"), ""}
	for i, s := range stats {
		lines = append(lines, renderBar(s, longest, labelWidth, barColors[i%len(barColors)]))
	}

	return heatmapStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderBar(s perf.Stat, longest time.Duration, labelWidth int, color lipgloss.Color) string {
	width := 0
	if longest > 0 {
		width = int(float64(s.Total) / float64(longest) * maxBarWidth)
	}
	if width < 1 && s.Total > 0 {
		width = 1
	}

	label := lipgloss.NewStyle().
		Width(labelWidth).
		MaxWidth(labelWidth).
		Align(lipgloss.Right).
		Render(s.Name)

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", width))

	value := mutedStyle.Render(fmt.Sprintf(" %s (%d calls, p95 %s)", s.Total.Round(time.Microsecond), s.Count, s.P95))

	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", bar, value)
}
