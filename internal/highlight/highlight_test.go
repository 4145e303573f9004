package highlight

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestFlattenDisjoint(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 3, Capture: "keyword"},
		{Start: 4, End: 7, Capture: "variable"},
	}

	segments := Flatten(spans)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(segments), segments)
	}
	if segments[0].Capture != "keyword" || segments[1].Capture != "variable" {
		t.Errorf("unexpected captures: %v", segments)
	}
}

func TestFlattenInnermostWins(t *testing.T) {
	// A string_content capture nested inside a string capture.
	spans := []Span{
		{Start: 0, End: 10, Capture: "string", Pattern: 3},
		{Start: 2, End: 8, Capture: "string.escape", Pattern: 5},
	}

	segments := Flatten(spans)
	want := []Segment{
		{Start: 0, End: 2, Capture: "string"},
		{Start: 2, End: 8, Capture: "string.escape"},
		{Start: 8, End: 10, Capture: "string"},
	}
	if len(segments) != len(want) {
		t.Fatalf("expected %d segments, got %d: %v", len(want), len(segments), segments)
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Errorf("segment %d: expected %+v, got %+v", i, want[i], segments[i])
		}
	}
}

func TestFlattenTieGoesToEarlierPattern(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 5, Capture: "variable", Pattern: 9},
		{Start: 0, End: 5, Capture: "variable.parameter", Pattern: 2},
	}

	segments := Flatten(spans)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Capture != "variable.parameter" {
		t.Errorf("expected earlier pattern to win, got %q", segments[0].Capture)
	}
}

func TestFlattenMergesAdjacentSameCapture(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 3, Capture: "string"},
		{Start: 3, End: 6, Capture: "string"},
	}

	segments := Flatten(spans)
	if len(segments) != 1 {
		t.Fatalf("expected merged segment, got %v", segments)
	}
	if segments[0].Start != 0 || segments[0].End != 6 {
		t.Errorf("unexpected merged range: %+v", segments[0])
	}
}

func TestFlattenIgnoresEmptySpans(t *testing.T) {
	if segments := Flatten([]Span{{Start: 4, End: 4, Capture: "comment"}}); segments != nil {
		t.Errorf("expected no segments, got %v", segments)
	}
}

func TestThemeResolveFallback(t *testing.T) {
	theme := DefaultTheme()

	if theme.Resolve("keyword.function") == nil {
		t.Error("keyword.function should fall back to keyword")
	}
	if theme.Resolve("punctuation.bracket") == nil {
		t.Error("punctuation.bracket should fall back to punctuation")
	}
	if theme.Resolve("no.such.capture") != nil {
		t.Error("unknown capture should resolve to nil")
	}

	// A specific entry beats its prefix.
	if theme.Resolve("string.regexp") == theme.Resolve("string") {
		t.Error("string.regexp should have its own style")
	}
}

func TestParseStyle(t *testing.T) {
	for _, spec := range []string{"red", "hi-black", "bold-red", "bold-hi-magenta", "underline-green"} {
		if _, err := ParseStyle(spec); err != nil {
			t.Errorf("ParseStyle(%q): %v", spec, err)
		}
	}
	for _, spec := range []string{"", "mauve", "bold-", "red-", "hi-black-", "-red", "red-mauve"} {
		if _, err := ParseStyle(spec); err == nil {
			t.Errorf("ParseStyle(%q): expected error", spec)
		}
	}
}

func TestThemeOverride(t *testing.T) {
	theme := DefaultTheme()
	if err := theme.Override("comment", "hi-blue"); err != nil {
		t.Fatal(err)
	}
	if err := theme.Override("comment", "chartreuse"); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestRenderANSIWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	source := []byte("var x = 42")
	segments := []Segment{
		{Start: 0, End: 3, Capture: "keyword"},
		{Start: 4, End: 5, Capture: "variable"},
		{Start: 8, End: 10, Capture: "number"},
	}

	var buf bytes.Buffer
	if err := RenderANSI(&buf, source, segments, DefaultTheme()); err != nil {
		t.Fatal(err)
	}
	// With color disabled the output is byte-identical to the input.
	if buf.String() != string(source) {
		t.Errorf("expected %q, got %q", source, buf.String())
	}
}

func TestRenderSpans(t *testing.T) {
	source := []byte("echo hi")
	segments := []Segment{{Start: 0, End: 4, Capture: "function.call"}}

	var buf bytes.Buffer
	if err := RenderSpans(&buf, source, segments); err != nil {
		t.Fatal(err)
	}
	want := "0..4\tfunction.call\t\"echo\"\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
