// Package section splices marker-delimited regions of a text document.
// It knows nothing about reminders; the markers are opaque literal lines.
package section

import "strings"

// Markers is a start/end marker pair delimiting a managed region.
type Markers struct {
	Start string
	End   string
}

// ForLabel builds the canonical HTML-comment marker pair for a label,
// e.g. label "todos" → "<!-- start of todos -->" / "<!-- end of todos -->".
func ForLabel(label string) Markers {
	return Markers{
		Start: "<!-- start of " + label + " -->",
		End:   "<!-- end of " + label + " -->",
	}
}

// locate finds the byte offsets of the first start marker and the first end
// marker. Returns false if either is absent.
func locate(text string, m Markers) (startOff, endOff int, ok bool) {
	startOff = strings.Index(text, m.Start)
	endOff = strings.Index(text, m.End)
	if startOff < 0 || endOff < 0 {
		return 0, 0, false
	}
	return startOff, endOff, true
}

// Replace returns the document with the region between the markers replaced
// by inner. The result always has the shape "start\n<inner>\n<end>" with
// exactly one newline on each side of inner, regardless of prior spacing.
// Content before the start marker and after the end marker is preserved
// byte-for-byte. Returns false if either marker is absent; the document is
// then returned unmodified.
func Replace(text string, m Markers, inner string) (string, bool) {
	startOff, endOff, ok := locate(text, m)
	if !ok || startOff+len(m.Start) > endOff {
		return text, false
	}

	var b strings.Builder
	b.Grow(len(text) + len(inner))
	b.WriteString(text[:startOff])
	b.WriteString(m.Start)
	b.WriteByte('\n')
	b.WriteString(inner)
	b.WriteByte('\n')
	b.WriteString(m.End)
	b.WriteString(text[endOff+len(m.End):])
	return b.String(), true
}

// Extract returns the text strictly between the markers, or false if either
// marker is absent.
func Extract(text string, m Markers) (string, bool) {
	startOff, endOff, ok := locate(text, m)
	if !ok {
		return "", false
	}

	innerStart := startOff + len(m.Start)
	if innerStart > endOff {
		return "", false
	}
	return text[innerStart:endOff], true
}
