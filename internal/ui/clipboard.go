package ui

import (
	"fmt"
	"log"

	"LashMap/internal/state"

	"github.com/atotto/clipboard"
)

// CopySnapshot puts the editor's current snapshot on the system clipboard as JSON.
func CopySnapshot(ed *state.Editor) error {
	data, err := state.EncodeSnapshot(ed.Snapshot())
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("copy snapshot: %w", err)
	}
	log.Printf("[UI] Copied snapshot (%d bytes)", len(data))
	return nil
}

// PasteSnapshot replaces the editor's model with the JSON on the clipboard and
// saves the result.
func PasteSnapshot(ed *state.Editor) error {
	if ed.ReadOnly() {
		return nil
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("paste snapshot: %w", err)
	}
	s, err := state.DecodeSnapshot([]byte(text))
	if err != nil {
		return err
	}
	ed.Hydrate(s)
	ed.Save()
	log.Printf("[UI] Pasted snapshot from clipboard")
	return nil
}
