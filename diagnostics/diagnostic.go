package diagnostics

import (
	"errors"
	"fmt"

	"github.com/reusee/vana/vanalang"
)

type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Label is a note attached to a diagnostic. Line and Column are 1-based;
// zero means the label has no position.
type Label struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Line    int    `yaml:"line,omitempty"`
	Column  int    `yaml:"column,omitempty"`
}

func (l Label) HasPos() bool {
	return l.Line > 0
}

type Diagnostic struct {
	Severity Severity `yaml:"severity"`
	Title    string   `yaml:"title"`
	Message  string   `yaml:"message"`
	Labels   []Label  `yaml:"labels,omitempty"`
	// Snippet is the offending source line with a caret underline.
	Snippet string `yaml:"snippet,omitempty"`
}

func (d *Diagnostic) AddLabel(label Label) {
	d.Labels = append(d.Labels, label)
}

// FromError converts err into diagnostics. Positioned errors produced by
// vanalang keep their location; any other error becomes a single diagnostic
// without labels.
func FromError(err error) []Diagnostic {
	if err == nil {
		return nil
	}

	var errs vanalang.Errors
	if errors.As(err, &errs) {
		ret := make([]Diagnostic, 0, len(errs))
		for _, posErr := range errs {
			ret = append(ret, fromPosError(posErr))
		}
		return ret
	}

	var posErr *vanalang.PosError
	if errors.As(err, &posErr) {
		return []Diagnostic{fromPosError(posErr)}
	}

	return []Diagnostic{
		{
			Severity: SeverityError,
			Title:    "error",
			Message:  err.Error(),
		},
	}
}

func fromPosError(err *vanalang.PosError) Diagnostic {
	diag := Diagnostic{
		Severity: SeverityError,
		Title:    err.Kind.String(),
		Message:  err.Err.Error(),
		Snippet:  err.Snippet(),
	}

	pos := err.Pos()
	label := Label{
		Title:   pos.String(),
		Message: describeSpan(err),
	}
	if err.Source != nil {
		label.Line = pos.Line
		label.Column = pos.Column
	}
	diag.AddLabel(label)

	return diag
}

func describeSpan(err *vanalang.PosError) string {
	if err.Span.Len() == 0 {
		return "at end of input"
	}
	if err.Source == nil {
		return "at " + err.Span.String()
	}
	return fmt.Sprintf("near %q", err.Source.Slice(err.Span))
}
