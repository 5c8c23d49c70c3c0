package ops

import (
	"database/sql"

	"github.com/hpungsan/tickmark/internal/datekey"
	"github.com/hpungsan/tickmark/internal/db"
)

// RemoveInput contains parameters for the Remove operation.
type RemoveInput struct {
	Key   string
	Title string
	Date  datekey.Date // used only for title addressing; zero means today
}

// RemoveOutput contains the result of the Remove operation.
type RemoveOutput struct {
	Key     string `json:"key"`
	Removed bool   `json:"removed"`
}

// Remove deletes a reminder permanently.
func Remove(database *sql.DB, input RemoveInput) (*RemoveOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = datekey.Today()
	}

	r, err := resolveKey(database, input.Key, input.Title, date)
	if err != nil {
		return nil, err
	}

	if err := db.Delete(database, r.ID); err != nil {
		return nil, err
	}

	return &RemoveOutput{Key: r.ID, Removed: true}, nil
}
