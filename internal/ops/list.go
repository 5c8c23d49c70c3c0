package ops

import (
	"database/sql"

	"github.com/hpungsan/tickmark/internal/datekey"
	"github.com/hpungsan/tickmark/internal/db"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Date datekey.Date // zero + All=false means today
	All  bool         // list every reminder regardless of date
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
	Open  int    `json:"open"`
}

// List returns reminders for a date, or all reminders.
func List(database *sql.DB, input ListInput) (*ListOutput, error) {
	var rows []Item

	if input.All {
		all, listErr := db.ListAll(database)
		if listErr != nil {
			return nil, listErr
		}
		rows = make([]Item, len(all))
		for i, r := range all {
			rows[i] = toItem(r)
		}
	} else {
		date := input.Date
		if date.IsZero() {
			date = datekey.Today()
		}
		byDate, listErr := db.ListByDate(database, date)
		if listErr != nil {
			return nil, listErr
		}
		rows = make([]Item, len(byDate))
		for i, r := range byDate {
			rows[i] = toItem(r)
		}
	}

	total, open, err := db.Counts(database)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Items: rows, Total: total, Open: open}, nil
}
