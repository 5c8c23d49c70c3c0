package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/tickmark/internal/config"
	"github.com/hpungsan/tickmark/internal/errors"
	"github.com/hpungsan/tickmark/internal/ops"
	tsync "github.com/hpungsan/tickmark/internal/sync"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db     *sql.DB
	engine *tsync.Engine
	cfg    *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, engine *tsync.Engine, cfg *config.Config) *Handlers {
	return &Handlers{db: db, engine: engine, cfg: cfg}
}

// Request types for each tool

// AddRequest represents the arguments for reminder_add.
type AddRequest struct {
	Title      string `json:"title"`
	Date       string `json:"date,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
	Priority   int    `json:"priority,omitempty"`
}

// ListRequest represents the arguments for reminder_list.
type ListRequest struct {
	Date string `json:"date,omitempty"`
	All  bool   `json:"all,omitempty"`
}

// CompleteRequest represents the arguments for reminder_complete.
type CompleteRequest struct {
	Key   string `json:"key,omitempty"`
	Title string `json:"title,omitempty"`
	Date  string `json:"date,omitempty"`
	Done  *bool  `json:"done,omitempty"`
}

// RemoveRequest represents the arguments for reminder_remove.
type RemoveRequest struct {
	Key   string `json:"key,omitempty"`
	Title string `json:"title,omitempty"`
	Date  string `json:"date,omitempty"`
}

// SyncRequest represents the arguments for note_sync.
type SyncRequest struct {
	Date string `json:"date,omitempty"`
}

// Handler implementations

// HandleAdd handles the reminder_add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	date, err := ops.ParseDate(input.Date)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.Add(h.db, ops.AddInput{
		Title:      input.Title,
		Date:       date,
		SourceFile: input.SourceFile,
		Priority:   input.Priority,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the reminder_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	date, err := ops.ParseDate(input.Date)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.List(h.db, ops.ListInput{Date: date, All: input.All})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleComplete handles the reminder_complete tool call.
func (h *Handlers) HandleComplete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CompleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	date, err := ops.ParseDate(input.Date)
	if err != nil {
		return errorResult(err), nil
	}

	done := true
	if input.Done != nil {
		done = *input.Done
	}

	result, err := ops.Complete(h.db, ops.CompleteInput{
		Key:   input.Key,
		Title: input.Title,
		Date:  date,
		Done:  done,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleRemove handles the reminder_remove tool call.
func (h *Handlers) HandleRemove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RemoveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	date, err := ops.ParseDate(input.Date)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.Remove(h.db, ops.RemoveInput{
		Key:   input.Key,
		Title: input.Title,
		Date:  date,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSync handles the note_sync tool call.
func (h *Handlers) HandleSync(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SyncRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	date, err := ops.ParseDate(input.Date)
	if err != nil {
		return errorResult(err), nil
	}

	result := ops.SyncNow(h.engine, ops.SyncInput{Date: date, Quiet: true})
	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if tErr, ok := err.(*errors.TickError); ok {
		errorObj := map[string]any{
			"code":    tErr.Code,
			"message": tErr.Message,
			"status":  tErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if tErr.Code != errors.ErrInternal && tErr.Details != nil {
			errorObj["details"] = tErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
