package vault

import (
	"strings"

	"github.com/hpungsan/tickmark/internal/datekey"
)

// FindForDate picks the single best daily note for a date from candidates.
// Exact basename match ("2024-01-05.md") wins over a substring match
// ("notes-2024-01-05.md"); among equal matches the most recently modified
// document wins, earliest-encountered on a tie. Returns false if no
// candidate mentions the date.
func FindForDate(date datekey.Date, candidates []Document) (Document, bool) {
	key := date.String()

	var matches []Document
	for _, doc := range candidates {
		if doc.Basename() == key {
			matches = append(matches, doc)
		}
	}
	if len(matches) == 0 {
		for _, doc := range candidates {
			if strings.Contains(doc.Name, key) {
				matches = append(matches, doc)
			}
		}
	}
	if len(matches) == 0 {
		return Document{}, false
	}

	best := matches[0]
	for _, doc := range matches[1:] {
		if doc.ModTime.After(best.ModTime) {
			best = doc
		}
	}
	return best, true
}

// DateOf extracts the calendar date from a document's filename.
func DateOf(doc Document) (datekey.Date, bool) {
	return datekey.FromText(doc.Name)
}
