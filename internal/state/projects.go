package state

import (
	"sync"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

// ProjectStore holds the project list newest-first.
type ProjectStore struct {
	mu    sync.Mutex
	items []domain.Project
	seq   *Sequence
}

func newProjectStore(seq *Sequence, seed []domain.Project) *ProjectStore {
	s := &ProjectStore{seq: seq}
	s.items = append(s.items, seed...)
	return s
}

// Add assigns the record an id and prepends it, so the newest project is
// always at the head of the list.
func (s *ProjectStore) Add(p domain.Project) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.seq.Next()
	s.items = append([]domain.Project{p}, s.items...)
	return p
}

// Update merges the patch into the first project with a matching id and
// returns the updated record. A missing id is reported as ErrNotFound rather
// than being swallowed.
func (s *ProjectStore) Update(id int64, patch domain.ProjectPatch) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Apply(patch)
			return s.items[i], nil
		}
	}
	return domain.Project{}, ErrNotFound
}

// List returns a copy of the project list, newest first.
func (s *ProjectStore) List() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the project with the given id.
func (s *ProjectStore) Get(id int64) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}
