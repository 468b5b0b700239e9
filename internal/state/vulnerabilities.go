package state

import (
	"sync"

	"github.com/sherpa-ai/sherpa-server/internal/domain"
)

// VulnerabilityStore holds the ordered vulnerability list. Records are
// append-only and displayed in insertion order; there is no update path.
type VulnerabilityStore struct {
	mu    sync.Mutex
	items []domain.Vulnerability
	seq   *Sequence
}

// VulnerabilityStats are the derived dashboard counters, recomputed on every
// read.
type VulnerabilityStats struct {
	Total      int                       `json:"total"`
	BySeverity map[domain.Severity]int   `json:"bySeverity"`
	ByStatus   map[domain.VulnStatus]int `json:"byStatus"`
}

func newVulnerabilityStore(seq *Sequence, seed []domain.Vulnerability) *VulnerabilityStore {
	s := &VulnerabilityStore{seq: seq}
	s.items = append(s.items, seed...)
	return s
}

// Add assigns the record an id and appends it to the end of the list.
func (s *VulnerabilityStore) Add(v domain.Vulnerability) domain.Vulnerability {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.seq.Next()
	s.items = append(s.items, v)
	return v
}

// List returns a copy of the vulnerability list in insertion order.
func (s *VulnerabilityStore) List() []domain.Vulnerability {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Vulnerability, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the record with the given id.
func (s *VulnerabilityStore) Get(id int64) (domain.Vulnerability, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.items {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vulnerability{}, false
}

// Stats recomputes the severity and status counters over the current list.
func (s *VulnerabilityStore) Stats() VulnerabilityStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := VulnerabilityStats{
		Total:      len(s.items),
		BySeverity: make(map[domain.Severity]int),
		ByStatus:   make(map[domain.VulnStatus]int),
	}
	for _, v := range s.items {
		stats.BySeverity[v.Severity]++
		stats.ByStatus[v.Status]++
	}
	return stats
}
