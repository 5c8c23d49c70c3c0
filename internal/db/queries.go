package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/hpungsan/tickmark/internal/datekey"
	"github.com/hpungsan/tickmark/internal/errors"
	"github.com/hpungsan/tickmark/internal/reminder"
)

// ErrUniqueConstraint is returned when an insert violates a UNIQUE constraint.
var ErrUniqueConstraint = &errors.TickError{
	Code:    "UNIQUE_CONSTRAINT",
	Status:  409,
	Message: "unique constraint violation",
}

const reminderColumns = "id, title, done, source_file, scheduled_date, priority, created_at, updated_at"

// Insert stores a new reminder in the database.
func Insert(db *sql.DB, r *reminder.Reminder) error {
	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		r.ID, r.Title, boolToInt(r.Done), r.SourceFile,
		r.Date.String(), r.Priority, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrUniqueConstraint
		}
		return errors.NewInternal(err)
	}

	return nil
}

// GetByKey retrieves a reminder by its ULID key.
func GetByKey(db *sql.DB, key string) (*reminder.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = ?`

	row := db.QueryRow(query, key)
	r, err := scanReminder(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(key)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return r, nil
}

// ListByDate returns all reminders scheduled for a date, in stable order:
// priority, then creation time, then key. Render idempotence depends on
// this ordering being deterministic across calls.
func ListByDate(db *sql.DB, date datekey.Date) ([]reminder.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE scheduled_date = ?
		ORDER BY priority, created_at, id
	`

	rows, err := db.Query(query, date.String())
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// ListAll returns every reminder, newest date first. Diagnostic use.
func ListAll(db *sql.DB) ([]reminder.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		ORDER BY scheduled_date DESC, priority, created_at, id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// ListByTitlePrefix returns reminders for a date whose title begins with
// prefix, in the same stable order as ListByDate.
func ListByTitlePrefix(db *sql.DB, date datekey.Date, prefix string) ([]reminder.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE scheduled_date = ? AND title LIKE ? ESCAPE '\'
		ORDER BY priority, created_at, id
	`

	rows, err := db.Query(query, date.String(), escapeLike(prefix)+"%")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	return collectReminders(rows)
}

// SetDone updates the completion state of a reminder. Only done and
// updated_at change; reconciliation must never touch other fields.
func SetDone(db *sql.DB, key string, done bool) error {
	now := time.Now().Unix()

	result, err := db.Exec(
		`UPDATE reminders SET done = ?, updated_at = ? WHERE id = ?`,
		boolToInt(done), now, key,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(key)
	}

	return nil
}

// Delete removes a reminder permanently.
func Delete(db *sql.DB, key string) error {
	result, err := db.Exec(`DELETE FROM reminders WHERE id = ?`, key)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(key)
	}

	return nil
}

// Counts returns the total and open (not done) reminder counts.
func Counts(db *sql.DB) (total, open int, err error) {
	err = db.QueryRow(`SELECT COUNT(*), COUNT(*) FILTER (WHERE done = 0) FROM reminders`).Scan(&total, &open)
	if err != nil {
		return 0, 0, errors.NewInternal(err)
	}
	return total, open, nil
}

// scanner abstracts sql.Row and sql.Rows for scanReminder.
type scanner interface {
	Scan(dest ...any) error
}

// scanReminder scans a reminder from a row.
func scanReminder(row scanner) (*reminder.Reminder, error) {
	var r reminder.Reminder
	var done int
	var dateStr string

	err := row.Scan(&r.ID, &r.Title, &done, &r.SourceFile, &dateStr, &r.Priority, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	r.Done = done != 0
	date, ok := datekey.FromText(dateStr)
	if !ok {
		return nil, errors.NewInternal(nil)
	}
	r.Date = date

	return &r, nil
}

// collectReminders drains rows into a slice.
func collectReminders(rows *sql.Rows) ([]reminder.Reminder, error) {
	var reminders []reminder.Reminder
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		reminders = append(reminders, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return reminders, nil
}

// boolToInt converts a bool to sqlite's 0/1.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// escapeLike escapes LIKE metacharacters in a literal prefix.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite returns "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
