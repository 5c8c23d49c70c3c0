// Package ops implements the transport-facing operations shared by the CLI,
// MCP server, and web UI.
package ops

import (
	"database/sql"
	"strings"

	"github.com/hpungsan/tickmark/internal/datekey"
	"github.com/hpungsan/tickmark/internal/db"
	"github.com/hpungsan/tickmark/internal/errors"
	"github.com/hpungsan/tickmark/internal/reminder"
)

// Item is the wire representation of a reminder.
type Item struct {
	Key        string `json:"key"`
	Title      string `json:"title"`
	Done       bool   `json:"done"`
	SourceFile string `json:"source_file"`
	Date       string `json:"date"`
	Priority   int    `json:"priority"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

// toItem converts a reminder to its wire form.
func toItem(r reminder.Reminder) Item {
	return Item{
		Key:        r.Key(),
		Title:      r.Title,
		Done:       r.Done,
		SourceFile: r.SourceFile,
		Date:       r.Date.String(),
		Priority:   r.Priority,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ParseDate parses an optional YYYY-MM-DD argument, defaulting to today.
func ParseDate(s string) (datekey.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return datekey.Today(), nil
	}
	d, ok := datekey.FromText(s)
	if !ok {
		return datekey.Date{}, errors.NewInvalidRequest("date must be in YYYY-MM-DD form")
	}
	return d, nil
}

// resolveKey resolves a reminder by explicit key, or by unique title prefix
// within a date. Exactly one of key/title must be provided.
func resolveKey(database *sql.DB, key, title string, date datekey.Date) (*reminder.Reminder, error) {
	key = strings.TrimSpace(key)
	title = strings.TrimSpace(title)

	if key != "" && title != "" {
		return nil, errors.NewInvalidRequest("cannot specify both key and title; use one")
	}
	if key == "" && title == "" {
		return nil, errors.NewInvalidRequest("must specify either key or title")
	}

	if key != "" {
		return db.GetByKey(database, key)
	}

	matches, err := db.ListByTitlePrefix(database, date, title)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, errors.NewNotFound(title)
	case 1:
		return &matches[0], nil
	default:
		return nil, errors.NewAmbiguousMatch(title, len(matches))
	}
}
