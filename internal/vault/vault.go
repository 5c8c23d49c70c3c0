// Package vault is the daily-note document store: a flat directory of
// markdown files, plus date-based location and change watching.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Document identifies a note in the vault.
type Document struct {
	// Name is the filename, e.g. "2024-01-05.md".
	Name string
	// Path is the absolute path on disk.
	Path string
	// ModTime is the last-modified timestamp, used as a tie-break when
	// several notes match the same date.
	ModTime time.Time
}

// Basename returns the filename without its extension.
func (d Document) Basename() string {
	return strings.TrimSuffix(d.Name, filepath.Ext(d.Name))
}

// Dir is a vault rooted at a single directory.
type Dir struct {
	root string
}

// Open opens (creating if needed) a vault directory.
func Open(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}
	return &Dir{root: root}, nil
}

// Root returns the vault directory path.
func (v *Dir) Root() string {
	return v.root
}

// Enumerate lists the markdown documents in the vault.
func (v *Dir) Enumerate() ([]Document, error) {
	entries, err := os.ReadDir(v.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault directory: %w", err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		docs = append(docs, Document{
			Name:    entry.Name(),
			Path:    filepath.Join(v.root, entry.Name()),
			ModTime: info.ModTime(),
		})
	}
	return docs, nil
}

// Stat returns the document for a filename inside the vault.
func (v *Dir) Stat(name string) (Document, error) {
	path := filepath.Join(v.root, filepath.Base(name))
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Name:    filepath.Base(name),
		Path:    path,
		ModTime: info.ModTime(),
	}, nil
}

// Read returns the full text of a document.
func (v *Dir) Read(doc Document) (string, error) {
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the full text of a document.
func (v *Dir) Write(doc Document, text string) error {
	return os.WriteFile(doc.Path, []byte(text), 0600)
}
