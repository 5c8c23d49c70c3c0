// Package reminder defines the reminder domain model.
package reminder

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/tickmark/internal/datekey"
)

// Reminder is a dated task tracked in the store and mirrored into the
// daily note's checklist section.
type Reminder struct {
	// ID is a ULID that uniquely identifies this reminder
	ID string

	// Title is the user-facing task text
	Title string

	// Done is the completion state; the only field sync may change
	Done bool

	// SourceFile is the note the reminder originated from
	SourceFile string

	// Date is the calendar date the reminder is scheduled for
	Date datekey.Date

	// Priority orders reminders within a date (lower sorts first)
	Priority int

	// CreatedAt is the Unix timestamp when the reminder was created
	CreatedAt int64

	// UpdatedAt is the Unix timestamp when the reminder was last updated
	UpdatedAt int64
}

// Key returns the stable identifier embedded in rendered checklist lines.
func (r *Reminder) Key() string {
	return r.ID
}

// NewKey generates a new ULID reminder key.
func NewKey() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
