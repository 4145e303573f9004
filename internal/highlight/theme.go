// # internal/highlight/theme.go
package highlight

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Theme maps capture names to terminal styles. Lookup falls back through
// dotted prefixes, so "keyword.function" uses the "keyword" style unless a
// more specific entry exists.
type Theme map[string]*color.Color

// DefaultTheme covers the capture names used by the grammar's
// highlights.scm.
func DefaultTheme() Theme {
	return Theme{
		"comment":       color.New(color.FgHiBlack),
		"keyword":       color.New(color.FgMagenta),
		"function":      color.New(color.FgBlue),
		"variable":      color.New(color.FgCyan),
		"property":      color.New(color.FgCyan),
		"string":        color.New(color.FgGreen),
		"string.regexp": color.New(color.FgHiGreen),
		"number":        color.New(color.FgYellow),
		"constant":      color.New(color.FgYellow),
		"operator":      color.New(color.FgRed),
		"punctuation":   color.New(color.FgHiBlack),
	}
}

// Resolve returns the style for a capture name, or nil when neither the
// name nor any of its prefixes is themed.
func (t Theme) Resolve(capture string) *color.Color {
	for name := capture; name != ""; {
		if style, ok := t[name]; ok {
			return style
		}
		dot := strings.LastIndexByte(name, '.')
		if dot < 0 {
			break
		}
		name = name[:dot]
	}
	return nil
}

// Override replaces the style for one capture name with a parsed style
// spec, e.g. "yellow", "hi-black", or "bold-red".
func (t Theme) Override(capture, spec string) error {
	style, err := ParseStyle(spec)
	if err != nil {
		return fmt.Errorf("capture %q: %w", capture, err)
	}
	t[capture] = style
	return nil
}

var styleNames = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
	"bold":       color.Bold,
	"underline":  color.Underline,
}

// ParseStyle parses a dash-separated style spec. Modifiers combine with a
// color, e.g. "bold-hi-red".
func ParseStyle(spec string) (*color.Color, error) {
	var attrs []color.Attribute
	rest := strings.ToLower(strings.TrimSpace(spec))
	for rest != "" {
		matched := ""
		for name := range styleNames {
			if (rest == name || strings.HasPrefix(rest, name+"-")) && len(name) > len(matched) {
				matched = name
			}
		}
		if matched == "" {
			return nil, fmt.Errorf("unknown style %q", spec)
		}
		attrs = append(attrs, styleNames[matched])
		rest = strings.TrimPrefix(rest, matched)
		if rest != "" {
			rest = strings.TrimPrefix(rest, "-")
			if rest == "" {
				return nil, fmt.Errorf("trailing dash in style %q", spec)
			}
		}
	}
	if len(attrs) == 0 {
		return nil, fmt.Errorf("empty style spec")
	}
	return color.New(attrs...), nil
}
