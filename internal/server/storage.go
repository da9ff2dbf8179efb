package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chromasynth/go-seadream/internal/playground"
)

// ErrSessionNotFound is returned when a like toggle names an id the
// store has never seen.
var ErrSessionNotFound = errors.New("session not found")

// historyFile is the document name under the store's data directory.
const historyFile = "prompt_history.json"

// Store persists prompt sessions in a single JSON document. Every
// operation reads, modifies, and rewrites the whole document under one
// lock; the volume here is interactive-scale, not ingest-scale.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store rooted at dir. The directory is created on
// first write.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, historyFile)}
}

// Path returns the history document path.
func (s *Store) Path() string { return s.path }

// List returns all sessions sorted by creation time, newest first.
func (s *Store) List() ([]playground.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt > entries[j].CreatedAt
	})
	return entries, nil
}

// References returns the liked subset of List, in the same order.
func (s *Store) References() ([]playground.Session, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	liked := make([]playground.Session, 0, len(all))
	for _, e := range all {
		if e.Liked {
			liked = append(liked, e)
		}
	}
	return liked, nil
}

// Add assigns the session an id and UTC creation timestamp, stores it
// unliked, and returns the stored record.
func (s *Store) Add(sess playground.Session) (playground.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return playground.Session{}, err
	}

	sess.ID = uuid.NewString()
	sess.CreatedAt = time.Now().UTC().Format(time.RFC3339Nano)
	sess.Liked = false

	entries = append(entries, sess)
	if err := s.save(entries); err != nil {
		return playground.Session{}, err
	}
	return sess, nil
}

// SetLike flips the liked flag on one session and returns the updated
// record, or ErrSessionNotFound.
func (s *Store) SetLike(sessionID string, liked bool) (playground.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return playground.Session{}, err
	}

	for i := range entries {
		if entries[i].ID == sessionID {
			entries[i].Liked = liked
			if err := s.save(entries); err != nil {
				return playground.Session{}, err
			}
			return entries[i], nil
		}
	}
	return playground.Session{}, ErrSessionNotFound
}

func (s *Store) load() ([]playground.Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var entries []playground.Session
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid history file %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *Store) save(entries []playground.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
