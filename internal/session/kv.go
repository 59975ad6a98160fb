package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// KV is the persistent key-value store backing the session. It mirrors
// local-storage semantics: string keys, string values, absent keys are
// simply absent.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// FileKV persists keys as a JSON object in a single file. Writes go
// through a temp file plus rename so a crash never leaves a torn file.
type FileKV struct {
	path   string
	values map[string]string
}

// NewFileKV opens the store at path, loading existing content when the
// file is present. An unreadable or corrupt file starts empty rather
// than failing: a lost session just means logging in again.
func NewFileKV(path string) *FileKV {
	kv := &FileKV{path: path, values: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return kv
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return kv
	}
	kv.values = values
	return kv
}

// Get returns the value for key and whether it was present.
func (kv *FileKV) Get(key string) (string, bool) {
	value, ok := kv.values[key]
	return value, ok
}

// Set stores key=value and persists the file.
func (kv *FileKV) Set(key, value string) error {
	kv.values[key] = value
	return kv.persist()
}

// Remove deletes key and persists the file. Removing an absent key is
// a no-op that still succeeds.
func (kv *FileKV) Remove(key string) error {
	if _, ok := kv.values[key]; !ok {
		return nil
	}
	delete(kv.values, key)
	return kv.persist()
}

func (kv *FileKV) persist() error {
	if err := os.MkdirAll(filepath.Dir(kv.path), 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.Marshal(kv.values)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	tmp := kv.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	if err := os.Rename(tmp, kv.path); err != nil {
		return fmt.Errorf("replacing state: %w", err)
	}
	return nil
}

// MemKV is an in-memory KV for tests.
type MemKV struct {
	values map[string]string

	// FailSet, when set, makes Set on that key fail. Used to exercise
	// the store's both-or-neither write behavior.
	FailSet string
}

// NewMemKV returns an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{values: map[string]string{}}
}

func (kv *MemKV) Get(key string) (string, bool) {
	value, ok := kv.values[key]
	return value, ok
}

func (kv *MemKV) Set(key, value string) error {
	if kv.FailSet == key {
		return fmt.Errorf("set %q refused", key)
	}
	kv.values[key] = value
	return nil
}

func (kv *MemKV) Remove(key string) error {
	delete(kv.values, key)
	return nil
}
