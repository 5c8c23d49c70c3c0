package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hpungsan/tickmark/internal/config"
	"github.com/hpungsan/tickmark/internal/db"
	"github.com/hpungsan/tickmark/internal/ops"
	"github.com/hpungsan/tickmark/internal/vault"
)

// setupTestApp creates a temporary database, vault, and CLI app for testing.
func setupTestApp(t *testing.T) (*sql.DB, *appContext) {
	t.Helper()

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	v, err := vault.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open vault: %v", err)
	}

	cfg := config.DefaultConfig()
	engine := ops.BuildEngine(database, v, cfg, nil)

	return database, &appContext{vault: v, engine: engine}
}

// runCLI runs the app with the given args and returns captured stdout.
func runCLI(t *testing.T, database *sql.DB, app *appContext, args ...string) (string, error) {
	t.Helper()

	cliApp := newCLIApp(database, config.DefaultConfig(), app)

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := cliApp.Run(append([]string{"tickmark"}, args...))

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	return buf.String(), err
}

func TestCLIAdd(t *testing.T) {
	database, app := setupTestApp(t)

	out, err := runCLI(t, database, app, "add", "--date=2024-03-14", "Water plants")
	if err != nil {
		t.Fatalf("add command failed: %v", err)
	}

	var output ops.AddOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	if output.Key == "" {
		t.Error("expected non-empty key")
	}
	if output.Date != "2024-03-14" {
		t.Errorf("date = %q, want 2024-03-14", output.Date)
	}
}

func TestCLIAdd_NoTitle(t *testing.T) {
	database, app := setupTestApp(t)

	_, err := runCLI(t, database, app, "add")
	if err == nil {
		t.Fatal("expected error for missing title")
	}
	if !strings.Contains(err.Error(), "INVALID_REQUEST") {
		t.Errorf("error = %v, want INVALID_REQUEST", err)
	}
}

func TestCLIList(t *testing.T) {
	database, app := setupTestApp(t)

	if _, err := runCLI(t, database, app, "add", "--date=2024-03-14", "Water plants"); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}
	if _, err := runCLI(t, database, app, "add", "--date=2024-03-14", "Walk dog"); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}

	out, err := runCLI(t, database, app, "list", "--date=2024-03-14")
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}

	var output ops.ListOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	if len(output.Items) != 2 {
		t.Errorf("len(Items) = %d, want 2", len(output.Items))
	}
	if output.Open != 2 {
		t.Errorf("Open = %d, want 2", output.Open)
	}
}

func TestCLIDone(t *testing.T) {
	database, app := setupTestApp(t)

	out, err := runCLI(t, database, app, "add", "--date=2024-03-14", "Water plants")
	if err != nil {
		t.Fatalf("setup add failed: %v", err)
	}
	var added ops.AddOutput
	if err := json.Unmarshal([]byte(out), &added); err != nil {
		t.Fatalf("failed to parse add output: %v", err)
	}

	out, err = runCLI(t, database, app, "done", added.Key)
	if err != nil {
		t.Fatalf("done command failed: %v", err)
	}
	var completed ops.CompleteOutput
	if err := json.Unmarshal([]byte(out), &completed); err != nil {
		t.Fatalf("failed to parse done output: %v", err)
	}
	if !completed.Done {
		t.Error("Done = false, want true")
	}

	// Reopen with --undo
	out, err = runCLI(t, database, app, "done", "--undo", added.Key)
	if err != nil {
		t.Fatalf("done --undo failed: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &completed); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if completed.Done {
		t.Error("Done = true after --undo, want false")
	}
}

func TestCLIDone_ByTitle(t *testing.T) {
	database, app := setupTestApp(t)

	if _, err := runCLI(t, database, app, "add", "--date=2024-03-14", "Water plants"); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}

	out, err := runCLI(t, database, app, "done", "--title=Water", "--date=2024-03-14")
	if err != nil {
		t.Fatalf("done by title failed: %v", err)
	}
	var completed ops.CompleteOutput
	if err := json.Unmarshal([]byte(out), &completed); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if !completed.Done {
		t.Error("Done = false, want true")
	}
}

func TestCLIRm(t *testing.T) {
	database, app := setupTestApp(t)

	out, err := runCLI(t, database, app, "add", "--date=2024-03-14", "Water plants")
	if err != nil {
		t.Fatalf("setup add failed: %v", err)
	}
	var added ops.AddOutput
	if err := json.Unmarshal([]byte(out), &added); err != nil {
		t.Fatalf("failed to parse add output: %v", err)
	}

	out, err = runCLI(t, database, app, "rm", added.Key)
	if err != nil {
		t.Fatalf("rm command failed: %v", err)
	}
	var removed ops.RemoveOutput
	if err := json.Unmarshal([]byte(out), &removed); err != nil {
		t.Fatalf("failed to parse rm output: %v", err)
	}
	if !removed.Removed {
		t.Error("Removed = false, want true")
	}

	// Removing again fails
	if _, err := runCLI(t, database, app, "rm", added.Key); err == nil {
		t.Error("expected error removing a removed reminder")
	}
}

func TestCLISync(t *testing.T) {
	database, app := setupTestApp(t)

	note := "# Daily\n\n<!-- start of todos -->\n<!-- end of todos -->\n"
	notePath := filepath.Join(app.vault.Root(), "2024-03-14.md")
	if err := os.WriteFile(notePath, []byte(note), 0600); err != nil {
		t.Fatalf("write note: %v", err)
	}

	if _, err := runCLI(t, database, app, "add", "--date=2024-03-14", "Water plants"); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}

	out, err := runCLI(t, database, app, "sync", "--date=2024-03-14")
	if err != nil {
		t.Fatalf("sync command failed: %v", err)
	}
	var synced ops.SyncOutput
	if err := json.Unmarshal([]byte(out), &synced); err != nil {
		t.Fatalf("failed to parse sync output: %v", err)
	}
	if synced.Outcome != "updated" {
		t.Errorf("Outcome = %q, want updated", synced.Outcome)
	}

	data, err := os.ReadFile(notePath)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.Contains(string(data), "- [ ] Water plants") {
		t.Errorf("note missing rendered line:\n%s", data)
	}
}

func TestIsCLIMode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no args", []string{"tickmark"}, false},
		{"known command", []string{"tickmark", "add"}, true},
		{"help flag", []string{"tickmark", "--help"}, true},
		{"version flag", []string{"tickmark", "-v"}, true},
		{"unknown command", []string{"tickmark", "bogus"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			os.Args = tt.args
			defer func() { os.Args = oldArgs }()

			if got := isCLIMode(); got != tt.want {
				t.Errorf("isCLIMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
