// Package progress persists the checkpoint index and answer records to a
// local key-value store. It is a pure mirror of the session state: the
// session never treats it as a source of truth except at cold start.
package progress

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Storage slot keys. The snapshot spans exactly two slots: the resolved
// checkpoint index and the JSON-encoded answer record sequence.
const (
	KeyIndex   = "progress.index"
	KeyRecords = "progress.records"
)

// KV is the string key-value storage the snapshot is mirrored into.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)

	// Set writes the value for key.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Record is one resolved checkpoint's outcome, in resolution order.
type Record struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// Snapshot is the persisted progress state.
type Snapshot struct {
	Index   int
	Records []Record
}

// Store mirrors progress snapshots into a KV.
type Store struct {
	kv KV
}

// NewStore creates a progress store over kv.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Save writes both snapshot slots. Either write failing fails the whole
// save; the caller logs and continues in memory, a persistence failure is
// never fatal to the session.
func (s *Store) Save(index int, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode answer records: %w", err)
	}

	if err := s.kv.Set(KeyIndex, strconv.Itoa(index)); err != nil {
		return fmt.Errorf("write %s: %w", KeyIndex, err)
	}
	if err := s.kv.Set(KeyRecords, string(encoded)); err != nil {
		return fmt.Errorf("write %s: %w", KeyRecords, err)
	}
	return nil
}

// Load reads the persisted snapshot. A missing slot, a non-numeric or
// negative index, or a malformed record list all return (nil, nil): the
// caller treats every such case identically to "no prior progress".
// A non-nil error only reports storage-layer read failures.
func (s *Store) Load() (*Snapshot, error) {
	rawIndex, ok, err := s.kv.Get(KeyIndex)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyIndex, err)
	}
	if !ok {
		return nil, nil
	}

	rawRecords, ok, err := s.kv.Get(KeyRecords)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyRecords, err)
	}
	if !ok {
		return nil, nil
	}

	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal([]byte(rawRecords), &records); err != nil {
		return nil, nil
	}

	return &Snapshot{Index: index, Records: records}, nil
}

// Clear removes both snapshot slots.
func (s *Store) Clear() error {
	if err := s.kv.Delete(KeyIndex); err != nil {
		return fmt.Errorf("delete %s: %w", KeyIndex, err)
	}
	if err := s.kv.Delete(KeyRecords); err != nil {
		return fmt.Errorf("delete %s: %w", KeyRecords, err)
	}
	return nil
}
