package conversation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/artem13815/workvibe/pkg/career"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// SafeName maps a conversation id to a file name stem.
func SafeName(conversationID string) string {
	return reUnsafe.ReplaceAllString(conversationID, "_")
}

// FileExporter пишет payload'ы карточек в каталог, который сервер раздаёт по /cards.
type FileExporter struct {
	Dir       string
	URLPrefix string
}

func NewFileExporter(dir, urlPrefix string) (*FileExporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cards dir: %w", err)
	}
	return &FileExporter{Dir: dir, URLPrefix: urlPrefix}, nil
}

func (e *FileExporter) path(conversationID string) string {
	return filepath.Join(e.Dir, SafeName(conversationID)+".json")
}

// URL returns the public path of the export file.
func (e *FileExporter) URL(conversationID string) string {
	return e.URLPrefix + "/" + SafeName(conversationID) + ".json"
}

// Write stores the payload pretty-printed and returns its public path.
func (e *FileExporter) Write(conversationID string, p career.Payload) (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(e.path(conversationID), data, 0o644); err != nil {
		return "", fmt.Errorf("write cards export: %w", err)
	}
	return e.URL(conversationID), nil
}

// Read loads an export file. A missing file yields ErrNotFound.
func (e *FileExporter) Read(conversationID string) (*career.Payload, error) {
	data, err := os.ReadFile(e.path(conversationID))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return career.DecodePayload(data)
}
