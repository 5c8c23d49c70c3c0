package web

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/hpungsan/tickmark/internal/config"
	"github.com/hpungsan/tickmark/internal/datekey"
	"github.com/hpungsan/tickmark/internal/db"
	"github.com/hpungsan/tickmark/internal/errors"
	"github.com/hpungsan/tickmark/internal/ops"
	tsync "github.com/hpungsan/tickmark/internal/sync"
	"github.com/hpungsan/tickmark/internal/vault"
)

// Handlers contains HTTP route handlers for the web API.
type Handlers struct {
	db      *sql.DB
	engine  *tsync.Engine
	vault   *vault.Dir
	cfg     *config.Config
	version string
}

// StatusResponse is the payload of GET /status.
type StatusResponse struct {
	Version        string `json:"version"`
	VaultDir       string `json:"vault_dir"`
	SectionLabel   string `json:"section_label"`
	SyncEnabled    bool   `json:"sync_enabled"`
	TotalReminders int    `json:"total_reminders"`
	OpenReminders  int    `json:"open_reminders"`
}

// HandleStatus handles GET /status — store counts and configuration.
func (h *Handlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	total, open, err := db.Counts(h.db)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		Version:        h.version,
		VaultDir:       h.vault.Root(),
		SectionLabel:   h.cfg.SectionLabel,
		SyncEnabled:    h.cfg.AutoEmbedEnabled(),
		TotalReminders: total,
		OpenReminders:  open,
	})
}

// HandleReminders handles GET /reminders — list reminders for a date, or all.
func (h *Handlers) HandleReminders(w http.ResponseWriter, r *http.Request) {
	date, err := ops.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := ops.List(h.db, ops.ListInput{
		Date: date,
		All:  r.URL.Query().Get("all") == "true",
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// NoteResponse is the payload of GET /notes/{date}.
type NoteResponse struct {
	Date     string `json:"date"`
	Document string `json:"document"`
	HTML     string `json:"html"`
}

// HandleNote handles GET /notes/{date} — the daily note rendered to HTML.
func (h *Handlers) HandleNote(w http.ResponseWriter, r *http.Request) {
	date, ok := datekey.FromText(r.PathValue("date"))
	if !ok {
		writeError(w, errors.NewInvalidRequest("date must be in YYYY-MM-DD form"))
		return
	}

	docs, err := h.vault.Enumerate()
	if err != nil {
		writeError(w, errors.NewIOFailure(err))
		return
	}

	doc, found := vault.FindForDate(date, docs)
	if !found {
		writeError(w, errors.NewDocumentNotFound(date.String()))
		return
	}

	text, err := h.vault.Read(doc)
	if err != nil {
		writeError(w, errors.NewIOFailure(err))
		return
	}

	html, err := renderMarkdown(text)
	if err != nil {
		writeError(w, errors.NewInternal(err))
		return
	}

	writeJSON(w, http.StatusOK, NoteResponse{
		Date:     date.String(),
		Document: doc.Name,
		HTML:     html,
	})
}

// SyncRequest is the payload of POST /sync.
type SyncRequest struct {
	Date string `json:"date,omitempty"`
}

// HandleSync handles POST /sync — trigger one outbound render.
func (h *Handlers) HandleSync(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errors.NewInvalidRequest("request body must be JSON"))
			return
		}
	}

	date, err := ops.ParseDate(req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	result := ops.SyncNow(h.engine, ops.SyncInput{Date: date, Quiet: true})
	writeJSON(w, http.StatusOK, result)
}
