// Package store persists the conversation transcript across runs. The
// durable slot is a single JSON file holding the serialized message
// array; every save overwrites the whole file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/innovateinc/hr-assistant/internal/model/chat"
)

// History is the durable slot backing transcript survival across runs.
type History struct {
	path string
}

// NewHistory returns a History backed by the given file path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load reads the slot. Absent, unreadable, or malformed content is
// treated as no history; Load never fails.
func (h *History) Load() []chat.Message {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[store] unreadable history %s: %v", h.path, err)
		}
		return nil
	}

	var transcript []chat.Message
	if err := json.Unmarshal(data, &transcript); err != nil {
		log.Printf("[store] discarding malformed history %s: %v", h.path, err)
		return nil
	}
	if !chat.WellFormed(transcript) {
		log.Printf("[store] discarding history %s: unknown role", h.path)
		return nil
	}
	return transcript
}

// Save serializes the full transcript and overwrites the slot.
func (h *History) Save(transcript []chat.Message) error {
	data, err := json.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("serialize history: %w", err)
	}
	if dir := filepath.Dir(h.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create history dir: %w", err)
		}
	}
	if err := os.WriteFile(h.path, data, 0o600); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Clear removes the slot entirely. A missing slot is not an error.
func (h *History) Clear() error {
	if err := os.Remove(h.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
