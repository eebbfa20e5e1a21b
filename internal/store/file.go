package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"LashMap/internal/state"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no saved snapshot")

// FileStore keeps the latest snapshot in a single JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Path() string {
	return f.path
}

// Save writes s atomically: a temp file in the same directory is renamed over
// the previous snapshot.
func (f *FileStore) Save(s state.Snapshot) error {
	data, err := state.EncodeSnapshot(s)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".lashmap-*.json")
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	log.Printf("[STORE] Saved snapshot to %s", f.path)
	return nil
}

// SaveFunc adapts Save to the editor's save callback, logging failures.
func (f *FileStore) SaveFunc() state.SaveFunc {
	return func(s state.Snapshot) {
		if err := f.Save(s); err != nil {
			log.Printf("[STORE] %v", err)
		}
	}
}

func (f *FileStore) Load() (state.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return state.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return state.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	s, err := state.DecodeSnapshot(data)
	if err != nil {
		return state.Snapshot{}, fmt.Errorf("load %s: %w", f.path, err)
	}
	return s, nil
}

// Fanout calls every non-nil save function in order.
func Fanout(fns ...state.SaveFunc) state.SaveFunc {
	return func(s state.Snapshot) {
		for _, fn := range fns {
			if fn != nil {
				fn(s)
			}
		}
	}
}
