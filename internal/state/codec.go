package state

import (
	"encoding/json"
	"fmt"
)

// EncodeSnapshot renders s as indented JSON.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s.Clone(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses JSON produced by EncodeSnapshot or by any client that
// speaks the same camelCase layout. Missing collections come back empty.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s.Clone(), nil
}
