package vault

import (
	"testing"
	"time"

	"github.com/hpungsan/tickmark/internal/datekey"
)

func TestFindForDate_ExactBeatsSubstring(t *testing.T) {
	date := datekey.New(2024, time.January, 5)
	t1 := time.Unix(1000, 0)
	t2 := time.Unix(2000, 0)

	docs := []Document{
		// Substring match is newer, but exact basename must still win
		{Name: "old-2024-01-05-backup.md", ModTime: t2},
		{Name: "2024-01-05.md", ModTime: t1},
	}

	got, ok := FindForDate(date, docs)
	if !ok {
		t.Fatal("FindForDate found nothing")
	}
	if got.Name != "2024-01-05.md" {
		t.Errorf("Name = %q, want exact match %q", got.Name, "2024-01-05.md")
	}
}

func TestFindForDate_SubstringFallback_MostRecentWins(t *testing.T) {
	date := datekey.New(2024, time.January, 5)
	t1 := time.Unix(1000, 0)
	t2 := time.Unix(2000, 0)

	docs := []Document{
		{Name: "notes-2024-01-05-b.md", ModTime: t1},
		{Name: "notes-2024-01-05-a.md", ModTime: t2},
	}

	got, ok := FindForDate(date, docs)
	if !ok {
		t.Fatal("FindForDate found nothing")
	}
	if got.Name != "notes-2024-01-05-a.md" {
		t.Errorf("Name = %q, want most recent %q", got.Name, "notes-2024-01-05-a.md")
	}
}

func TestFindForDate_TieBreakFirstEncountered(t *testing.T) {
	date := datekey.New(2024, time.January, 5)
	ts := time.Unix(1000, 0)

	docs := []Document{
		{Name: "a-2024-01-05.md", ModTime: ts},
		{Name: "b-2024-01-05.md", ModTime: ts},
	}

	got, ok := FindForDate(date, docs)
	if !ok {
		t.Fatal("FindForDate found nothing")
	}
	if got.Name != "a-2024-01-05.md" {
		t.Errorf("Name = %q, want first-encountered %q", got.Name, "a-2024-01-05.md")
	}
}

func TestFindForDate_NoMatch(t *testing.T) {
	date := datekey.New(2024, time.January, 5)

	docs := []Document{
		{Name: "2024-01-06.md"},
		{Name: "scratch.md"},
	}

	if _, ok := FindForDate(date, docs); ok {
		t.Error("FindForDate ok = true, want false")
	}
	if _, ok := FindForDate(date, nil); ok {
		t.Error("FindForDate ok = true for empty candidates, want false")
	}
}

func TestDateOf(t *testing.T) {
	got, ok := DateOf(Document{Name: "notes-2024-01-05.md"})
	if !ok {
		t.Fatal("DateOf found no date")
	}
	if got.String() != "2024-01-05" {
		t.Errorf("DateOf = %q, want %q", got.String(), "2024-01-05")
	}

	if _, ok := DateOf(Document{Name: "scratch.md"}); ok {
		t.Error("DateOf ok = true for undated note, want false")
	}
}
