package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
)

// beamStyles maps beam colours to terminal styles.
var beamStyles = map[core.BeamColor]lipgloss.Style{
	core.White:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.Red:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.Green:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.Blue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.Yellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.Cyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.Magenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
}

var difficultyStyles = map[string]lipgloss.Style{
	"easy":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"hard":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"expert": lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// styler renders text with lipgloss styles, or plain when output is not a terminal.
type styler struct {
	color bool
}

// newStyler enables styling only when stdout is a terminal.
func newStyler() styler {
	return styler{color: term.IsTerminal(int(os.Stdout.Fd()))}
}

func (s styler) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}

func (s styler) header(text string) string {
	return s.render(headerStyle, text)
}

func (s styler) beam(c core.BeamColor) string {
	style, ok := beamStyles[c]
	if !ok {
		return c.String()
	}
	return s.render(style, c.String())
}

func (s styler) difficulty(d string) string {
	style, ok := difficultyStyles[strings.ToLower(d)]
	if !ok {
		return d
	}
	return s.render(style, d)
}

// stars renders a 0-3 rating as filled and empty stars.
func (s styler) stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 3 {
		n = 3
	}
	filled := strings.Repeat("*", n)
	empty := strings.Repeat("-", 3-n)
	return s.render(starStyle, filled) + s.render(dimStyle, empty)
}

func (s styler) status(ok bool, yes, no string) string {
	if ok {
		return s.render(okStyle, yes)
	}
	return s.render(failStyle, no)
}

func (s styler) dim(text string) string {
	return s.render(dimStyle, text)
}
