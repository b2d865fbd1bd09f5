package vanalang

import (
	"sort"
	"strings"
	"unicode/utf8"
)

type Source struct {
	Name    string
	Content string
	Lines   []string

	lineStarts []int
}

func NewSource(name string, content string) *Source {
	src := &Source{
		Name:       name,
		Content:    content,
		Lines:      strings.Split(content, "\n"),
		lineStarts: []int{0},
	}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			src.lineStarts = append(src.lineStarts, i+1)
		}
	}
	return src
}

// Pos converts a byte offset to a line/column position.
// Offsets past the end are clamped.
func (s *Source) Pos(offset int) Pos {
	offset = max(0, min(offset, len(s.Content)))
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	start := s.lineStarts[line]
	return Pos{
		Source: s,
		Offset: offset,
		Line:   line + 1,
		Column: utf8.RuneCountInString(s.Content[start:offset]) + 1,
	}
}

func (s *Source) Slice(span Span) string {
	start := max(0, min(span.Start, len(s.Content)))
	end := max(start, min(span.End, len(s.Content)))
	return s.Content[start:end]
}
