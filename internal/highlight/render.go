// # internal/highlight/render.go
package highlight

import (
	"fmt"
	"io"
)

// RenderANSI writes source to w with themed segments colorized. Bytes not
// covered by a segment are written as-is.
func RenderANSI(w io.Writer, source []byte, segments []Segment, theme Theme) error {
	var pos uint
	for _, seg := range segments {
		if seg.Start > pos {
			if _, err := w.Write(source[pos:seg.Start]); err != nil {
				return err
			}
		}
		text := source[seg.Start:seg.End]
		style := theme.Resolve(seg.Capture)
		if style == nil {
			if _, err := w.Write(text); err != nil {
				return err
			}
		} else if _, err := style.Fprint(w, string(text)); err != nil {
			return err
		}
		pos = seg.End
	}
	if int(pos) < len(source) {
		if _, err := w.Write(source[pos:]); err != nil {
			return err
		}
	}
	return nil
}

// RenderSpans writes one line per segment in a stable machine-friendly
// form: start..end capture "text".
func RenderSpans(w io.Writer, source []byte, segments []Segment) error {
	for _, seg := range segments {
		text := source[seg.Start:seg.End]
		if _, err := fmt.Fprintf(w, "%d..%d\t%s\t%q\n", seg.Start, seg.End, seg.Capture, text); err != nil {
			return err
		}
	}
	return nil
}
