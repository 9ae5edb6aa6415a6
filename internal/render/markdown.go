package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/labelflair/internal/models"
)

// AutoStyle lets glamour pick a style from the terminal background
const AutoStyle = "auto"

// Markdown builds a reference table of labels, suitable for CONTRIBUTING docs
func Markdown(title string, labels []*models.Label) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(labels) == 0 {
		b.WriteString("No labels defined.\n")
		return b.String()
	}

	b.WriteString("| Label | Color | Description | Aliases |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, l := range labels {
		aliases := make([]string, len(l.Aliases))
		for i, a := range l.Aliases {
			aliases[i] = codeSpan(a)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			codeSpan(l.Name),
			codeSpan(l.Color),
			escapeCell(l.DescriptionOrEmpty()),
			strings.Join(aliases, ", "))
	}

	return b.String()
}

// RenderMarkdown pretty-prints markdown for the terminal with glamour.
// style is a glamour standard style name ("dark", "light", "notty", ...) or AutoStyle.
func RenderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == AutoStyle {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// codeSpan wraps s in a backtick fence longer than any backtick run inside it
func codeSpan(s string) string {
	s = escapeCell(s)

	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}
