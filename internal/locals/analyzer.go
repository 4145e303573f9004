// # internal/locals/analyzer.go
package locals

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Analyzer holds a compiled locals query for one language.
type Analyzer struct {
	lang  *sitter.Language
	query *sitter.Query
	names []string
}

func NewAnalyzer(lang *sitter.Language, querySrc string) (*Analyzer, error) {
	query, qerr := sitter.NewQuery(lang, querySrc)
	if qerr != nil {
		return nil, fmt.Errorf("compile locals query: %w", qerr)
	}
	return &Analyzer{
		lang:  lang,
		query: query,
		names: query.CaptureNames(),
	}, nil
}

func (a *Analyzer) Close() {
	a.query.Close()
}

// Analyze parses source and resolves its definitions and references.
func (a *Analyzer) Analyze(source []byte) (*Analysis, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(a.lang); err != nil {
		return nil, fmt.Errorf("set language: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errors.New("parse failed")
	}
	defer tree.Close()

	return resolve(a.events(tree.RootNode(), source)), nil
}

func (a *Analyzer) events(root *sitter.Node, source []byte) []event {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	var events []event
	matches := cursor.Matches(a.query, root, source)
	for m := matches.Next(); m != nil; m = matches.Next() {
		for _, c := range m.Captures {
			events = append(events, event{
				capture: a.names[c.Index],
				name:    c.Node.Utf8Text(source),
				start:   c.Node.StartByte(),
				end:     c.Node.EndByte(),
			})
		}
	}
	return events
}
