// # internal/queries/queries.go

// Package queries inspects tree-sitter query documents without compiling
// them, so query/schema drift is catchable in plain Go. Full compilation
// against the live grammar happens in the binding tests.
package queries

import (
	"fmt"
	"sort"

	"github.com/oils-for-unix/tree-sitter-ysh/internal/nodetypes"
)

// Capture is a @name occurrence in a query document.
type Capture struct {
	Name string
	Line int
}

// NodeRef is a named node kind referenced by a pattern, e.g. (simple_command).
type NodeRef struct {
	Kind string
	Line int
}

// TokenRef is a quoted anonymous token referenced by a pattern, e.g. "var".
type TokenRef struct {
	Text string
	Line int
}

// Document is the lexical content of one query file.
type Document struct {
	Captures []Capture
	Nodes    []NodeRef
	Tokens   []TokenRef
}

// Scan tokenizes a query document. It understands comments, quoted tokens,
// captures, and node patterns; predicate calls like (#match? ...) are skipped.
func Scan(src string) *Document {
	doc := &Document{}
	line := 1

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++

		case c == ';':
			for i < len(src) && src[i] != '\n' {
				i++
			}

		case c == '"':
			start := i + 1
			i++
			for i < len(src) && src[i] != '"' {
				if src[i] == '\\' && i+1 < len(src) {
					i++
				}
				i++
			}
			doc.Tokens = append(doc.Tokens, TokenRef{Text: src[start:i], Line: line})
			if i < len(src) {
				i++ // closing quote
			}

		case c == '@':
			start := i + 1
			i++
			for i < len(src) && isCaptureChar(src[i]) {
				i++
			}
			doc.Captures = append(doc.Captures, Capture{Name: src[start:i], Line: line})

		case c == '(':
			i++
			if i < len(src) && src[i] == '#' {
				// Consume the whole predicate, e.g. (#eq? @cap "cd"),
				// so its string arguments are not taken for tokens.
				depth := 1
				for i < len(src) && depth > 0 {
					switch src[i] {
					case '\n':
						line++
						i++
					case '"':
						i++
						for i < len(src) && src[i] != '"' {
							if src[i] == '\\' && i+1 < len(src) {
								i++
							}
							i++
						}
						if i < len(src) {
							i++
						}
					case '(':
						depth++
						i++
					case ')':
						depth--
						i++
					default:
						i++
					}
				}
				break
			}
			start := i
			for i < len(src) && isIdentChar(src[i]) {
				i++
			}
			if kind := src[start:i]; kind != "" && kind != "_" {
				doc.Nodes = append(doc.Nodes, NodeRef{Kind: kind, Line: line})
			}

		default:
			i++
		}
	}
	return doc
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isCaptureChar(c byte) bool {
	return isIdentChar(c) || c == '.'
}

// CaptureNames returns the distinct capture names in the document, sorted.
func (d *Document) CaptureNames() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range d.Captures {
		if !seen[c.Name] {
			seen[c.Name] = true
			out = append(out, c.Name)
		}
	}
	sort.Strings(out)
	return out
}

// Lint checks a scanned document against the node-type schema: every node
// kind must be a named kind the grammar declares, every quoted token must be
// a declared anonymous token, and capture names must be well formed.
func Lint(doc *Document, schema *nodetypes.Schema) []string {
	var issues []string

	for _, ref := range doc.Nodes {
		if !schema.HasNamedKind(ref.Kind) {
			issues = append(issues, fmt.Sprintf("line %d: unknown node kind %q", ref.Line, ref.Kind))
		}
	}
	for _, tok := range doc.Tokens {
		if n, ok := schema.Lookup(tok.Text); !ok || n.Named {
			issues = append(issues, fmt.Sprintf("line %d: unknown token %q", tok.Line, tok.Text))
		}
	}
	for _, c := range doc.Captures {
		if !wellFormedCapture(c.Name) {
			issues = append(issues, fmt.Sprintf("line %d: malformed capture %q", c.Line, "@"+c.Name))
		}
	}
	return issues
}

// wellFormedCapture accepts dot-separated lowercase segments, e.g.
// "keyword", "punctuation.bracket", "local.definition.var".
func wellFormedCapture(name string) bool {
	if name == "" {
		return false
	}
	segStart := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '.':
			if segStart {
				return false
			}
			segStart = true
		case c >= 'a' && c <= 'z':
			segStart = false
		case !segStart && (c == '_' || (c >= '0' && c <= '9')):
		default:
			return false
		}
	}
	return !segStart
}
