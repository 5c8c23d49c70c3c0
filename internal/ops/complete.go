package ops

import (
	"database/sql"

	"github.com/hpungsan/tickmark/internal/datekey"
	"github.com/hpungsan/tickmark/internal/db"
)

// CompleteInput contains parameters for the Complete operation.
// Addressing is by key, or by unique title prefix within a date.
type CompleteInput struct {
	Key   string
	Title string
	Date  datekey.Date // used only for title addressing; zero means today
	Done  bool         // target state; true marks done, false reopens
}

// CompleteOutput contains the result of the Complete operation.
type CompleteOutput struct {
	Key  string `json:"key"`
	Done bool   `json:"done"`
}

// Complete sets the completion state of a reminder.
func Complete(database *sql.DB, input CompleteInput) (*CompleteOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = datekey.Today()
	}

	r, err := resolveKey(database, input.Key, input.Title, date)
	if err != nil {
		return nil, err
	}

	if r.Done != input.Done {
		if err := db.SetDone(database, r.ID, input.Done); err != nil {
			return nil, err
		}
	}

	return &CompleteOutput{Key: r.ID, Done: input.Done}, nil
}
