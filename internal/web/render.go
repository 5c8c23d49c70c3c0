package web

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/hpungsan/tickmark/internal/errors"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("web: failed to encode response: %v", err)
	}
}

// writeError writes an error as a JSON payload, mapping TickError codes to
// HTTP status. Internal error details are not exposed.
func writeError(w http.ResponseWriter, err error) {
	if tErr, ok := err.(*errors.TickError); ok {
		errorObj := map[string]any{
			"code":    tErr.Code,
			"message": tErr.Message,
		}
		if tErr.Code != errors.ErrInternal && tErr.Details != nil {
			errorObj["details"] = tErr.Details
		}
		writeJSON(w, tErr.Status, map[string]any{"error": errorObj})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{
			"code":    "INTERNAL",
			"message": "an internal error occurred",
		},
	})
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
