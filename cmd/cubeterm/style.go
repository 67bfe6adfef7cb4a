package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/cubeterm/pkg/render"
)

var (
	accent = lipgloss.Color("#00FF80")
	muted  = lipgloss.Color("#6C7086")

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent)

	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	footerStyle = lipgloss.NewStyle().Foreground(muted)
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))

	// Cell style for live frames.
	cellStyle = uv.Style{Fg: accent}
)

// statusLine summarises a frame: "<label> · seed N · T triangles · C columns".
func statusLine(label string, seed uint32, stats render.FrameStats, extra ...string) string {
	parts := []string{
		labelStyle.Render(label),
		footerStyle.Render(fmt.Sprintf("seed %d", seed)),
		footerStyle.Render(fmt.Sprintf("%d triangles", stats.Accepted)),
		footerStyle.Render(fmt.Sprintf("%d columns", stats.Columns)),
	}
	parts = append(parts, extra...)
	return strings.Join(parts, footerStyle.Render(" · "))
}
