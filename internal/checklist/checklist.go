// Package checklist renders and parses the markdown checklist lines that
// carry reminders inside a daily note.
//
// Wire format (user-visible, must round-trip byte-exactly):
//
//	- [x] Buy milk [[groceries.md|source]] <!-- reminder-key: 01JA... -->
package checklist

import (
	"fmt"
	"regexp"
	"strings"
)

// Line is a parsed checklist line.
type Line struct {
	Checked bool
	// Body is everything after the checkbox marker, including the source
	// link and key comment if present.
	Body string
}

// linePattern matches a markdown task-list item: "- [ ]" or "- [x]" (mark
// case-insensitive), allowing leading indentation. The body is the remainder
// of the line.
var linePattern = regexp.MustCompile(`^[ \t]*- \[([ xX])\] (.*)$`)

// keyPattern extracts the embedded reminder key comment from a line body.
var keyPattern = regexp.MustCompile(`<!--\s*reminder-key:\s*([^\s]+?)\s*-->`)

// Render produces the checklist line for a reminder.
// The key comment is the round-trip identifier; sourceFile becomes a
// wikilink back to the reminder's origin note.
func Render(title, sourceFile, key string, done bool) string {
	mark := " "
	if done {
		mark = "x"
	}
	return fmt.Sprintf("- [%s] %s [[%s|source]] <!-- reminder-key: %s -->", mark, title, sourceFile, key)
}

// Parse recognizes a checklist line and extracts its checked state and body.
// Returns false if the line is not a task-list item.
func Parse(line string) (Line, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Line{}, false
	}
	return Line{
		Checked: m[1] == "x" || m[1] == "X",
		Body:    m[2],
	}, true
}

// Key extracts the reminder key from a line body.
// Returns the empty string if no key comment is present.
func Key(body string) string {
	m := keyPattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}

// HasTitlePrefix reports whether the line body begins with the given
// reminder title. This is the fallback match when a line carries no key
// comment (e.g. the user retyped the line by hand).
func HasTitlePrefix(body, title string) bool {
	if title == "" {
		return false
	}
	return strings.HasPrefix(body, title)
}
