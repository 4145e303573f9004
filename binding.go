// Package tree_sitter_ysh provides the YSH (Oils shell) grammar for
// tree-sitter. The compiled grammar is linked in externally; this package
// declares its entry point and ships the grammar's static resources.
package tree_sitter_ysh

// #cgo CFLAGS: -std=c11 -fPIC
// typedef struct TSLanguage TSLanguage;
// const TSLanguage *tree_sitter_ysh(void);
import "C"

import (
	_ "embed"
	"unsafe"
)

// Language returns the tree-sitter language for YSH. The returned pointer
// is owned by the grammar library and stays valid for the process lifetime.
func Language() unsafe.Pointer {
	return unsafe.Pointer(C.tree_sitter_ysh())
}

// NodeTypes is the content of the grammar's node-types.json file, a schema
// of every syntax node kind the grammar can produce.
//
//go:embed src/node-types.json
var NodeTypes string

// HighlightsQuery is the syntax highlighting query for this grammar.
//
//go:embed queries/highlights.scm
var HighlightsQuery string

// LocalsQuery is the local variable query for this grammar.
//
//go:embed queries/locals.scm
var LocalsQuery string
