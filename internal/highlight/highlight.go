// # internal/highlight/highlight.go

// Package highlight renders source code using the grammar's highlighting
// query. Captures are collected from a query cursor and flattened into
// non-overlapping segments; rendering is left to the ANSI or plain writers.
package highlight

import (
	"errors"
	"fmt"
	"sort"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Span is one capture over a byte range of the source. Nested spans are
// expected; Flatten resolves them.
type Span struct {
	Start   uint
	End     uint
	Capture string
	Pattern uint
}

// Segment is a flattened, non-overlapping run of bytes with one capture.
type Segment struct {
	Start   uint
	End     uint
	Capture string
}

// Highlighter holds a compiled highlighting query for one language.
type Highlighter struct {
	lang  *sitter.Language
	query *sitter.Query
	names []string
}

func New(lang *sitter.Language, querySrc string) (*Highlighter, error) {
	query, qerr := sitter.NewQuery(lang, querySrc)
	if qerr != nil {
		return nil, fmt.Errorf("compile highlights query: %w", qerr)
	}
	return &Highlighter{
		lang:  lang,
		query: query,
		names: query.CaptureNames(),
	}, nil
}

func (h *Highlighter) Close() {
	h.query.Close()
}

// Highlight parses source and returns the capture spans, in match order.
func (h *Highlighter) Highlight(source []byte) ([]Span, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(h.lang); err != nil {
		return nil, fmt.Errorf("set language: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errors.New("parse failed")
	}
	defer tree.Close()

	return h.Capture(tree.RootNode(), source), nil
}

// Capture runs the highlighting query over an existing tree.
func (h *Highlighter) Capture(root *sitter.Node, source []byte) []Span {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	var spans []Span
	matches := cursor.Matches(h.query, root, source)
	for m := matches.Next(); m != nil; m = matches.Next() {
		for _, c := range m.Captures {
			spans = append(spans, Span{
				Start:   c.Node.StartByte(),
				End:     c.Node.EndByte(),
				Capture: h.names[c.Index],
				Pattern: uint(m.PatternIndex),
			})
		}
	}
	return spans
}

// Flatten resolves overlapping spans into ordered, disjoint segments. The
// innermost (shortest) span wins a contested byte; ties go to the earlier
// pattern, matching tree-sitter's precedence.
func Flatten(spans []Span) []Segment {
	if len(spans) == 0 {
		return nil
	}

	boundSet := make(map[uint]bool, len(spans)*2)
	for _, s := range spans {
		if s.End > s.Start {
			boundSet[s.Start] = true
			boundSet[s.End] = true
		}
	}
	bounds := make([]uint, 0, len(boundSet))
	for b := range boundSet {
		bounds = append(bounds, b)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })

	var out []Segment
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		best := -1
		for j := range spans {
			if spans[j].Start <= lo && hi <= spans[j].End {
				if best == -1 || narrower(&spans[j], &spans[best]) {
					best = j
				}
			}
		}
		if best < 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].End == lo && out[n-1].Capture == spans[best].Capture {
			out[n-1].End = hi
			continue
		}
		out = append(out, Segment{Start: lo, End: hi, Capture: spans[best].Capture})
	}
	return out
}

func narrower(a, b *Span) bool {
	alen, blen := a.End-a.Start, b.End-b.Start
	if alen != blen {
		return alen < blen
	}
	return a.Pattern < b.Pattern
}
