package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"scholarflow/app/models"
)

// Backend is the persistence substrate: a single key holding the entire
// serialized state blob. Load reports absent=false when nothing has been
// persisted yet.
type Backend interface {
	Load() (data []byte, present bool, err error)
	Save(data []byte) error
}

// Store owns the persisted snapshot. Every operation is a whole-state
// read-modify-write; a process-wide mutex serializes callers so operations
// are linearizable by call order within this process. There is no
// cross-process coordination.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) load() (*models.State, error) {
	data, present, err := s.backend.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if !present {
		return models.SeedState(time.Now().UTC().Format(time.RFC3339)), nil
	}
	var st models.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &st, nil
}

func (s *Store) save(st *models.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.backend.Save(data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// View runs fn against the current state. fn must not retain or mutate it.
func (s *Store) View(fn func(st *models.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	return fn(st)
}

// Update runs fn against the current state and persists the full snapshot in
// a single write if fn succeeds. When fn fails nothing is written, so prior
// state is untouched by construction.
func (s *Store) Update(fn func(st *models.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return s.save(st)
}
