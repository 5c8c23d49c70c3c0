// Package sync keeps the marker-delimited checklist section of a daily note
// and the reminder store consistent with each other, in both directions.
package sync

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/hpungsan/tickmark/internal/checklist"
	"github.com/hpungsan/tickmark/internal/config"
	"github.com/hpungsan/tickmark/internal/datekey"
	"github.com/hpungsan/tickmark/internal/errors"
	"github.com/hpungsan/tickmark/internal/reminder"
	"github.com/hpungsan/tickmark/internal/section"
	"github.com/hpungsan/tickmark/internal/vault"
)

// Outcome is the terminal result category of an outbound sync.
// Exact message strings are presentation; the categories are the contract.
type Outcome int

const (
	OutcomeUpdated Outcome = iota
	OutcomeUpToDate
	OutcomeDocumentNotFound
	OutcomeMarkersNotFound
	OutcomeFailure
	// OutcomeSkipped marks silent no-ops (feature disabled, render already
	// in flight). It is never passed to a Notifier.
	OutcomeSkipped
)

// String returns a stable identifier for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeUpToDate:
		return "up-to-date"
	case OutcomeDocumentNotFound:
		return "document-not-found"
	case OutcomeMarkersNotFound:
		return "markers-not-found"
	case OutcomeFailure:
		return "failure"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Notifier receives the single terminal notification of a non-quiet sync.
type Notifier interface {
	Notify(outcome Outcome, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(outcome Outcome, message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(outcome Outcome, message string) {
	f(outcome, message)
}

// Collection is the reminder store read surface.
type Collection interface {
	// All returns every reminder. Diagnostic use only.
	All() ([]reminder.Reminder, error)
	// ByDate returns the reminders for a date in a stable order; rendering
	// the same set twice must produce identical text.
	ByDate(date datekey.Date) ([]reminder.Reminder, error)
}

// UpdateSink applies checked-state changes back to the reminder store.
type UpdateSink interface {
	UpdateDone(r *reminder.Reminder, done bool) error
}

// DocumentStore is the daily-note read/write surface.
type DocumentStore interface {
	Enumerate() ([]vault.Document, error)
	Read(doc vault.Document) (string, error)
	Write(doc vault.Document, text string) error
}

// Engine orchestrates outbound renders and inbound reconciliation for one
// vault. At most one outbound render runs at a time; inbound triggers seen
// while a render is in flight are dropped, not queued, which also stops the
// engine from reacting to its own writes.
type Engine struct {
	store    DocumentStore
	coll     Collection
	sink     UpdateSink
	notifier Notifier
	cfg      *config.Config
	markers  section.Markers

	updating atomic.Bool
}

// NewEngine creates a sync engine. notifier may be nil when no UI is attached.
func NewEngine(store DocumentStore, coll Collection, sink UpdateSink, notifier Notifier, cfg *config.Config) *Engine {
	return &Engine{
		store:    store,
		coll:     coll,
		sink:     sink,
		notifier: notifier,
		cfg:      cfg,
		markers:  section.ForLabel(cfg.SectionLabel),
	}
}

// Markers returns the marker pair the engine manages.
func (e *Engine) Markers() section.Markers {
	return e.markers
}

// report emits the terminal notification unless quiet, and always logs.
func (e *Engine) report(quiet bool, outcome Outcome, format string, args ...any) Outcome {
	msg := fmt.Sprintf(format, args...)
	log.Printf("sync: %s: %s", outcome, msg)
	if !quiet && e.notifier != nil {
		e.notifier.Notify(outcome, msg)
	}
	return outcome
}

// RenderToDocument renders the reminders for a date into the daily note's
// marked section. A zero date means today. All failures are recovered here:
// the method never returns an error, only an outcome, and emits at most one
// notification per call (none when quiet).
func (e *Engine) RenderToDocument(quiet bool, date datekey.Date) Outcome {
	if !e.cfg.AutoEmbedEnabled() || e.updating.Load() {
		return OutcomeSkipped
	}

	if date.IsZero() {
		date = datekey.Today()
	}

	docs, err := e.store.Enumerate()
	if err != nil {
		return e.report(quiet, OutcomeFailure, "could not list notes: %v", err)
	}

	doc, found := vault.FindForDate(date, docs)
	if !found {
		return e.report(quiet, OutcomeDocumentNotFound, "no daily note found for %s", date)
	}

	// Acquire the in-flight guard. A concurrent render beat us to it;
	// behave exactly like the load check above.
	if !e.updating.CompareAndSwap(false, true) {
		return OutcomeSkipped
	}
	defer e.updating.Store(false)

	reminders, err := e.coll.ByDate(date)
	if err != nil {
		return e.report(quiet, OutcomeFailure, "could not load reminders for %s: %v", date, err)
	}

	text, err := e.store.Read(doc)
	if err != nil {
		return e.report(quiet, OutcomeFailure, "could not read %s: %v", doc.Name, err)
	}

	updated, found := section.Replace(text, e.markers, renderLines(reminders))
	if !found {
		return e.report(quiet, OutcomeMarkersNotFound, "section markers not found in %s", doc.Name)
	}

	if updated == text {
		return e.report(quiet, OutcomeUpToDate, "%s already up to date", doc.Name)
	}

	if err := e.store.Write(doc, updated); err != nil {
		return e.report(quiet, OutcomeFailure, "could not write %s: %v", doc.Name, err)
	}

	return e.report(quiet, OutcomeUpdated, "updated %d reminder(s) in %s", len(reminders), doc.Name)
}

// OnDocumentModified reconciles checkbox edits in a changed note back into
// the reminder store. Unrecognized notes, missing markers, and in-flight
// renders are silent no-ops. Read failures and update-sink failures
// propagate to the caller's error boundary.
func (e *Engine) OnDocumentModified(doc vault.Document) error {
	if !e.cfg.AutoEmbedEnabled() || e.updating.Load() {
		return nil
	}

	date, ok := vault.DateOf(doc)
	if !ok {
		return nil
	}

	text, err := e.store.Read(doc)
	if err != nil {
		return errors.NewIOFailure(err)
	}

	inner, ok := section.Extract(text, e.markers)
	if !ok {
		return nil
	}

	reminders, err := e.coll.ByDate(date)
	if err != nil {
		return err
	}

	changed := false
	for _, line := range parseLines(inner) {
		r := match(line, reminders)
		if r == nil {
			// Stale line: the reminder was deleted or retitled. Left in
			// place; the next full render overwrites the whole section.
			continue
		}
		if r.Done != line.Checked {
			if err := e.sink.UpdateDone(r, line.Checked); err != nil {
				return err
			}
			r.Done = line.Checked
			changed = true
		}
	}

	if !changed {
		// Healing re-render: no checkbox toggled, but the collection may
		// have drifted from the section (reminders added, removed,
		// reordered).
		e.RenderToDocument(true, date)
	}
	return nil
}

// renderLines renders reminders to the section's inner text.
func renderLines(reminders []reminder.Reminder) string {
	lines := make([]string, len(reminders))
	for i, r := range reminders {
		lines[i] = checklist.Render(r.Title, r.SourceFile, r.Key(), r.Done)
	}
	return strings.Join(lines, "\n")
}

// parseLines extracts the checklist lines from section inner text.
func parseLines(inner string) []checklist.Line {
	var lines []checklist.Line
	for _, raw := range strings.Split(inner, "\n") {
		if line, ok := checklist.Parse(raw); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// match finds the reminder a parsed line refers to. A key comment is
// authoritative when present; otherwise the first reminder in collection
// order whose title prefixes the line body wins. Returns nil if nothing
// matches.
func match(line checklist.Line, reminders []reminder.Reminder) *reminder.Reminder {
	if key := checklist.Key(line.Body); key != "" {
		for i := range reminders {
			if reminders[i].Key() == key {
				return &reminders[i]
			}
		}
		return nil
	}
	for i := range reminders {
		if checklist.HasTitlePrefix(line.Body, reminders[i].Title) {
			return &reminders[i]
		}
	}
	return nil
}
