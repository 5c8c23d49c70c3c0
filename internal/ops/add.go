package ops

import (
	"database/sql"
	"strings"
	"time"

	"github.com/hpungsan/tickmark/internal/datekey"
	"github.com/hpungsan/tickmark/internal/db"
	"github.com/hpungsan/tickmark/internal/errors"
	"github.com/hpungsan/tickmark/internal/reminder"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	Title      string       // required
	Date       datekey.Date // zero means today
	SourceFile string       // default: "<date>.md"
	Priority   int
}

// AddOutput contains the result of the Add operation.
type AddOutput struct {
	Key  string `json:"key"`
	Date string `json:"date"`
}

// Add creates a new reminder.
func Add(database *sql.DB, input AddInput) (*AddOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.NewInvalidRequest("title is required")
	}

	date := input.Date
	if date.IsZero() {
		date = datekey.Today()
	}

	source := strings.TrimSpace(input.SourceFile)
	if source == "" {
		source = date.String() + ".md"
	}

	key, err := reminder.NewKey()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	now := time.Now().Unix()
	r := &reminder.Reminder{
		ID:         key,
		Title:      title,
		SourceFile: source,
		Date:       date,
		Priority:   input.Priority,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := db.Insert(database, r); err != nil {
		return nil, err
	}

	return &AddOutput{Key: key, Date: date.String()}, nil
}
