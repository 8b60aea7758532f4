// Package store owns the durable application state: a single JSON
// aggregate for menu/bills/customers and a second JSON record for the
// in-progress order session.
//
// Persistence is deliberately simple: load once at startup, replace
// wholesale after every mutation, last write wins. Write failures are
// logged and swallowed; the in-memory state stays authoritative for
// the rest of the session so the till is never blocked by a bad disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/sakshidhaba/pos-api/internal/domain/entity"
)

// Fixed storage file names. The version suffixes track the record
// layouts and are never reused across incompatible changes.
const (
	DataFileName    = "pos_data_v3.json"
	SessionFileName = "pos_session_v1.json"
)

// Store holds the AppState aggregate and the order session, and
// serializes every mutation behind one lock. Transforms passed to
// Update must be copy-on-write: they receive the current value and
// return a replacement without mutating shared slices in place.
type Store struct {
	mu          sync.RWMutex
	dataPath    string
	sessionPath string
	state       entity.AppState
	session     entity.Session
}

// Open loads both records from dataDir, creating the directory if
// needed. A missing or unparsable primary record falls back to the
// seeded starter menu with empty bills and customers; a bad session
// record falls back to an empty session.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir %s: %w", dataDir, err)
	}

	s := &Store{
		dataPath:    filepath.Join(dataDir, DataFileName),
		sessionPath: filepath.Join(dataDir, SessionFileName),
		state:       DefaultState(),
	}

	if err := readJSON(s.dataPath, &s.state); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("store: could not load %s, starting from seed data: %v", s.dataPath, err)
		}
		s.state = DefaultState()
	}
	if err := readJSON(s.sessionPath, &s.session); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("store: could not load %s, starting with an empty session: %v", s.sessionPath, err)
		}
		s.session = entity.Session{}
	}

	return s, nil
}

// State returns the current aggregate. Callers get the live slices and
// must treat them as read-only; all mutation goes through Update.
func (s *Store) State() entity.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies a copy-on-write transform to the aggregate, persists
// the replacement and returns it. Mutations are serialized: one till
// action completes, including its write, before the next begins.
func (s *Store) Update(fn func(entity.AppState) entity.AppState) entity.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
	if err := writeJSON(s.dataPath, s.state); err != nil {
		log.Printf("store: could not persist state: %v", err)
	}
	return s.state
}

// Session returns the current order session.
func (s *Store) Session() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// UpdateSession applies a copy-on-write transform to the session and
// persists the replacement.
func (s *Store) UpdateSession(fn func(entity.Session) entity.Session) entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = fn(s.session)
	if err := writeJSON(s.sessionPath, s.session); err != nil {
		log.Printf("store: could not persist session: %v", err)
	}
	return s.session
}

// ClearSession resets the in-progress order, used after a successful
// checkout or an explicit reset.
func (s *Store) ClearSession() {
	s.UpdateSession(func(entity.Session) entity.Session {
		return entity.Session{}
	})
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// writeJSON replaces the file atomically via a temp file and rename so
// a crash mid-write never leaves a truncated record behind.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
