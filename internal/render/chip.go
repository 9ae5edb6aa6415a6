// Package render draws resolved labels and palettes for the terminal
// and builds the markdown label reference.
package render

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/thenoetrevino/labelflair/internal/models"
	"github.com/thenoetrevino/labelflair/internal/palette"
)

const (
	darkText  = "#000000"
	lightText = "#ffffff"

	// Backgrounds lighter than this (CIE L*) get dark text
	lightnessThreshold = 0.6
)

var (
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585858"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// TextColorFor picks black or white text for a label drawn on background hex.
// Unparseable colors get white text.
func TextColorFor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lightText
	}
	l, _, _ := c.Lab()
	if l > lightnessThreshold {
		return darkText
	}
	return lightText
}

// RenderLabelChip renders a single label as a small colored chip, the way GitHub shows it
func RenderLabelChip(label *models.Label) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(TextColorFor(label.Color))).
		Background(lipgloss.Color(label.Color)).
		Padding(0, 1).
		Render(label.Name)
}

// WriteLabels prints one chip per line followed by color, description and aliases
func WriteLabels(w io.Writer, labels []*models.Label) error {
	width := 0
	for _, l := range labels {
		width = max(width, lipgloss.Width(l.Name)+2)
	}

	for _, l := range labels {
		chip := RenderLabelChip(l)
		pad := strings.Repeat(" ", width-lipgloss.Width(chip))

		line := fmt.Sprintf("%s%s  %s", chip, pad, subtleStyle.Render(l.Color))
		if d := l.DescriptionOrEmpty(); d != "" {
			line += "  " + d
		}
		if len(l.Aliases) > 0 {
			line += "  " + subtleStyle.Render("(was: "+strings.Join(l.Aliases, ", ")+")")
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSwatch renders one palette as a row of colored blocks labelled with its name
func RenderSwatch(entry palette.Entry) string {
	blocks := make([]string, 0, len(entry.Shades))
	for _, shade := range entry.Shades {
		blocks = append(blocks, lipgloss.NewStyle().
			Foreground(lipgloss.Color(TextColorFor(shade))).
			Background(lipgloss.Color(shade)).
			Render(" "+shade+" "))
	}
	return titleStyle.Width(10).Render(entry.Name) + strings.Join(blocks, "")
}

// WritePalettes prints one swatch row per palette
func WritePalettes(w io.Writer, entries []palette.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, RenderSwatch(e)); err != nil {
			return err
		}
	}
	return nil
}
