package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Snapshot captures net positions at a point in time.
type Snapshot struct {
	Timestamp int64           `json:"timestamp"`
	Positions []PositionEntry `json:"positions"`
}

// PositionEntry is a single symbol position entry.
type PositionEntry struct {
	Symbol string `json:"symbol"`
	Qty    int64  `json:"qty"`
}

// BuildSnapshot creates a snapshot from a position ledger copy, sorted by
// symbol for stable output.
func BuildSnapshot(positions map[string]int64) Snapshot {
	entries := make([]PositionEntry, 0, len(positions))
	for symbol, qty := range positions {
		entries = append(entries, PositionEntry{Symbol: symbol, Qty: qty})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Symbol < entries[j].Symbol
	})
	return Snapshot{
		Timestamp: time.Now().UTC().UnixNano(),
		Positions: entries,
	}
}

// PositionMap expands the snapshot back into a ledger map.
func (s Snapshot) PositionMap() map[string]int64 {
	out := make(map[string]int64, len(s.Positions))
	for _, entry := range s.Positions {
		out[entry.Symbol] = entry.Qty
	}
	return out
}

// WriteSnapshot writes a snapshot to disk as JSON.
func WriteSnapshot(path string, snapshot Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSnapshot loads a snapshot from disk.
func ReadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// CompareSnapshots checks whether two snapshots hold the same positions.
func CompareSnapshots(expected, actual Snapshot) error {
	if len(expected.Positions) != len(actual.Positions) {
		return fmt.Errorf("snapshot length mismatch: expected=%d actual=%d",
			len(expected.Positions), len(actual.Positions))
	}
	expectedMap := expected.PositionMap()
	for _, entry := range actual.Positions {
		want, ok := expectedMap[entry.Symbol]
		if !ok {
			return fmt.Errorf("unexpected symbol in snapshot: %s", entry.Symbol)
		}
		if want != entry.Qty {
			return fmt.Errorf("position mismatch for %s: expected=%d actual=%d",
				entry.Symbol, want, entry.Qty)
		}
	}
	return nil
}
