// # internal/locals/locals.go

// Package locals resolves variable definitions and references using the
// grammar's locals.scm query. Captures are lowered to byte-range events and
// resolved against a lexical scope tree.
package locals

import (
	"sort"
	"strings"
)

// DefKind classifies a definition by its locals.scm capture suffix.
type DefKind string

const (
	KindVar       DefKind = "var"
	KindParameter DefKind = "parameter"
	KindFunction  DefKind = "function"
)

// Definition is a name bound by var, a parameter list, a for loop, or a
// proc/func definition.
type Definition struct {
	Name  string
	Kind  DefKind
	Start uint
	End   uint
}

// Reference is a use of a name. Def is nil when resolution failed.
type Reference struct {
	Name  string
	Start uint
	End   uint
	Def   *Definition
}

// Shadow records a definition that hides one in an enclosing scope.
type Shadow struct {
	Inner *Definition
	Outer *Definition
}

// Scope is one lexical scope, spanning a byte range of the source.
type Scope struct {
	Start       uint
	End         uint
	Parent      *Scope
	Children    []*Scope
	Definitions []*Definition
}

// Analysis is the result of resolving a source file.
type Analysis struct {
	Root        *Scope
	Definitions []*Definition
	References  []Reference
	Shadows     []Shadow
}

// Unresolved returns the references that found no definition.
func (a *Analysis) Unresolved() []Reference {
	var out []Reference
	for _, ref := range a.References {
		if ref.Def == nil {
			out = append(out, ref)
		}
	}
	return out
}

// event is one locals.scm capture lowered to a byte range.
type event struct {
	capture string
	name    string
	start   uint
	end     uint
}

// resolve builds the scope tree and resolves references. Definitions are
// visible from their start byte to the end of their scope; references bind
// to the innermost visible definition.
func resolve(events []event) *Analysis {
	root := &Scope{Start: 0, End: ^uint(0)}
	analysis := &Analysis{Root: root}

	// Scopes first, outermost-first so nesting builds by containment.
	var scopes []*Scope
	for _, ev := range events {
		if ev.capture == "local.scope" {
			scopes = append(scopes, &Scope{Start: ev.start, End: ev.end})
		}
	}
	sort.Slice(scopes, func(i, j int) bool {
		if scopes[i].Start != scopes[j].Start {
			return scopes[i].Start < scopes[j].Start
		}
		return scopes[i].End > scopes[j].End
	})
	for _, s := range scopes {
		parent := root.innermost(s.Start, s.End)
		s.Parent = parent
		parent.Children = append(parent.Children, s)
	}

	// Definitions attach to their innermost scope.
	for _, ev := range events {
		kind, ok := strings.CutPrefix(ev.capture, "local.definition")
		if !ok {
			continue
		}
		def := &Definition{
			Name:  ev.name,
			Kind:  DefKind(strings.TrimPrefix(kind, ".")),
			Start: ev.start,
			End:   ev.end,
		}
		if def.Kind == "" {
			def.Kind = KindVar
		}
		scope := root.innermost(ev.start, ev.end)
		// proc and func names bind in the scope enclosing the definition,
		// not in the definition's own scope.
		if def.Kind == KindFunction && scope.Parent != nil {
			scope = scope.Parent
		}
		scope.Definitions = append(scope.Definitions, def)
		analysis.Definitions = append(analysis.Definitions, def)

		if outer := scope.lookupAbove(def.Name); outer != nil {
			analysis.Shadows = append(analysis.Shadows, Shadow{Inner: def, Outer: outer})
		}
	}

	// References resolve innermost-first.
	for _, ev := range events {
		if ev.capture != "local.reference" {
			continue
		}
		scope := root.innermost(ev.start, ev.end)
		analysis.References = append(analysis.References, Reference{
			Name:  ev.name,
			Start: ev.start,
			End:   ev.end,
			Def:   scope.lookup(ev.name, ev.start),
		})
	}

	sort.Slice(analysis.References, func(i, j int) bool {
		return analysis.References[i].Start < analysis.References[j].Start
	})
	sort.Slice(analysis.Definitions, func(i, j int) bool {
		return analysis.Definitions[i].Start < analysis.Definitions[j].Start
	})
	return analysis
}

// innermost returns the deepest scope fully containing [start, end).
func (s *Scope) innermost(start, end uint) *Scope {
	for _, child := range s.Children {
		if child.Start <= start && end <= child.End {
			return child.innermost(start, end)
		}
	}
	return s
}

// lookup finds the innermost definition of name visible at offset. Among
// candidates in one scope the latest one not past the offset wins, so
// re-declarations bind uses that follow them.
func (s *Scope) lookup(name string, at uint) *Definition {
	for scope := s; scope != nil; scope = scope.Parent {
		var best *Definition
		for _, def := range scope.Definitions {
			if def.Name != name || def.Start > at {
				continue
			}
			if best == nil || def.Start > best.Start {
				best = def
			}
		}
		if best != nil {
			return best
		}
	}
	return nil
}

// lookupAbove finds a definition of name in any enclosing scope, ignoring
// position. Used for shadow detection.
func (s *Scope) lookupAbove(name string) *Definition {
	for scope := s.Parent; scope != nil; scope = scope.Parent {
		for _, def := range scope.Definitions {
			if def.Name == name {
				return def
			}
		}
	}
	return nil
}
