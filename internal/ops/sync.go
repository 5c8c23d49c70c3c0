package ops

import (
	"database/sql"

	"github.com/hpungsan/tickmark/internal/config"
	"github.com/hpungsan/tickmark/internal/datekey"
	"github.com/hpungsan/tickmark/internal/db"
	"github.com/hpungsan/tickmark/internal/reminder"
	"github.com/hpungsan/tickmark/internal/sync"
	"github.com/hpungsan/tickmark/internal/vault"
)

// dbCollection adapts the sqlite store to the engine's Collection interface.
type dbCollection struct {
	database *sql.DB
}

func (c dbCollection) All() ([]reminder.Reminder, error) {
	return db.ListAll(c.database)
}

func (c dbCollection) ByDate(date datekey.Date) ([]reminder.Reminder, error) {
	return db.ListByDate(c.database, date)
}

// dbSink adapts the sqlite store to the engine's UpdateSink interface.
type dbSink struct {
	database *sql.DB
}

func (s dbSink) UpdateDone(r *reminder.Reminder, done bool) error {
	return db.SetDone(s.database, r.ID, done)
}

// BuildEngine wires a sync engine over the sqlite reminder store and a vault.
func BuildEngine(database *sql.DB, v *vault.Dir, cfg *config.Config, notifier sync.Notifier) *sync.Engine {
	return sync.NewEngine(v, dbCollection{database}, dbSink{database}, notifier, cfg)
}

// SyncInput contains parameters for the SyncNow operation.
type SyncInput struct {
	Date  datekey.Date // zero means today
	Quiet bool
}

// SyncOutput contains the result of the SyncNow operation.
type SyncOutput struct {
	Outcome string `json:"outcome"`
	Date    string `json:"date"`
}

// SyncNow performs one outbound render for a date.
func SyncNow(engine *sync.Engine, input SyncInput) *SyncOutput {
	date := input.Date
	if date.IsZero() {
		date = datekey.Today()
	}

	outcome := engine.RenderToDocument(input.Quiet, date)
	return &SyncOutput{Outcome: outcome.String(), Date: date.String()}
}
