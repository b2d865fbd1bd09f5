package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var severityColors = map[Severity]lipgloss.Color{
	SeverityError:   lipgloss.Color("1"),
	SeverityWarning: lipgloss.Color("3"),
	SeverityNote:    lipgloss.Color("6"),
}

type styles struct {
	severity lipgloss.Style
	title    lipgloss.Style
	notes    lipgloss.Style
	label    lipgloss.Style
	pos      lipgloss.Style
}

// colors are dropped when w is not a terminal
func newStyles(w io.Writer, severity Severity) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		severity: r.NewStyle().Bold(true).Foreground(severityColors[severity]),
		title:    r.NewStyle().Foreground(lipgloss.Color("6")),
		notes:    r.NewStyle().Foreground(lipgloss.Color("5")),
		label:    r.NewStyle().Foreground(lipgloss.Color("4")),
		pos:      r.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

func (d Diagnostic) Render(w io.Writer) error {
	s := newStyles(w, d.Severity)
	var sb strings.Builder

	sb.WriteString(s.severity.Render(d.Severity.String() + ":"))
	sb.WriteString(" ")
	sb.WriteString(s.title.Render(d.Title))
	sb.WriteString("\n")
	sb.WriteString("| Message: ")
	sb.WriteString(d.Message)
	sb.WriteString("\n")

	if d.Snippet != "" {
		for line := range strings.Lines(d.Snippet) {
			sb.WriteString("| ")
			sb.WriteString(line)
		}
		if !strings.HasSuffix(d.Snippet, "\n") {
			sb.WriteString("\n")
		}
	}

	if len(d.Labels) > 0 {
		sb.WriteString("\n")
		sb.WriteString(s.notes.Render("Notes:"))
		sb.WriteString("\n")
	}
	for _, label := range d.Labels {
		sb.WriteString(s.label.Render(label.Title))
		sb.WriteString("\n")
		if label.HasPos() {
			sb.WriteString("| At: ")
			sb.WriteString(s.pos.Render(fmt.Sprintf("%d:%d", label.Line, label.Column)))
			sb.WriteString("\n")
		}
		sb.WriteString("| Notes: ")
		sb.WriteString(label.Message)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func Render(w io.Writer, diags []Diagnostic) error {
	for _, diag := range diags {
		if err := diag.Render(w); err != nil {
			return err
		}
	}
	return nil
}
