package pipelines

import (
	"fmt"
	"io"

	"github.com/reusee/vana/diagnostics"
	"github.com/reusee/vana/vanaconfigs"
	"github.com/reusee/vana/vanalang"
	"gopkg.in/yaml.v3"
)

// Report writes results in the configured output format.
type Report func(w io.Writer, results ...*Result) error

func (Module) Report(
	format vanaconfigs.OutputFormat,
) Report {
	return func(w io.Writer, results ...*Result) error {
		switch format {
		case vanaconfigs.FormatYAML:
			return reportYAML(w, results)
		default:
			return reportText(w, results)
		}
	}
}

func reportText(w io.Writer, results []*Result) error {
	for _, result := range results {
		for _, tok := range result.Tokens {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", tok.Kind, tok.Token, tok.Span); err != nil {
				return err
			}
		}
		for _, node := range result.Nodes {
			if _, err := fmt.Fprintln(w, node.String()); err != nil {
				return err
			}
		}
		if err := diagnostics.Render(w, result.Diagnostics()); err != nil {
			return err
		}
	}
	return nil
}

type document struct {
	Source      string                   `yaml:"source"`
	Tokens      []tokenDocument          `yaml:"tokens,omitempty"`
	Nodes       []*nodeDocument          `yaml:"nodes,omitempty"`
	Diagnostics []diagnostics.Diagnostic `yaml:"diagnostics,omitempty"`
}

type tokenDocument struct {
	Kind  string `yaml:"kind"`
	Text  string `yaml:"text"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

type nodeDocument struct {
	Kind     string          `yaml:"kind"`
	Value    any             `yaml:"value,omitempty"`
	Name     string          `yaml:"name,omitempty"`
	Start    int             `yaml:"start"`
	End      int             `yaml:"end"`
	Children []*nodeDocument `yaml:"children,omitempty"`
}

func newNodeDocument(node vanalang.Node) *nodeDocument {
	span := node.Span()
	doc := &nodeDocument{
		Kind:  vanalang.KindOf(node),
		Start: span.Start,
		End:   span.End,
	}
	switch node := node.(type) {
	case *vanalang.Int:
		doc.Value = node.Value
	case *vanalang.Float:
		doc.Value = node.Value
	case *vanalang.Var:
		doc.Name = node.Name
	case *vanalang.VarDecl:
		doc.Name = node.Name
	case *vanalang.Call:
		doc.Name = node.Name
	}
	for _, child := range vanalang.Children(node) {
		doc.Children = append(doc.Children, newNodeDocument(child))
	}
	return doc
}

func reportYAML(w io.Writer, results []*Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	for _, result := range results {
		doc := document{
			Diagnostics: result.Diagnostics(),
		}
		if result.Source != nil {
			doc.Source = result.Source.Name
		}
		for _, tok := range result.Tokens {
			doc.Tokens = append(doc.Tokens, tokenDocument{
				Kind:  tok.Kind.String(),
				Text:  tok.Token.String(),
				Start: tok.Span.Start,
				End:   tok.Span.End,
			})
		}
		for _, node := range result.Nodes {
			doc.Nodes = append(doc.Nodes, newNodeDocument(node))
		}
		if err := encoder.Encode(doc); err != nil {
			return err
		}
	}
	return encoder.Close()
}
