package database

import (
	"context"
	"sync"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

// LeadStore guarda os leads pontuados em memória, em ordem de chegada
// (append-only, sem reordenação). Stand-in do storage persistente atrás da
// mesma interface dos repositórios SQL.
type LeadStore struct {
	mu    sync.RWMutex
	leads []*entity.ScoredLead
}

func NewLeadStore() *LeadStore {
	return &LeadStore{}
}

func (s *LeadStore) Append(_ context.Context, lead *entity.ScoredLead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = append(s.leads, lead)
	return nil
}

func (s *LeadStore) List(_ context.Context) ([]*entity.ScoredLead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.ScoredLead, len(s.leads))
	copy(out, s.leads)
	return out, nil
}

func (s *LeadStore) CountByTier(_ context.Context, tier string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, l := range s.leads {
		if l.Tier == tier {
			count++
		}
	}
	return count, nil
}
