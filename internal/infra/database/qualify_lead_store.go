package database

import (
	"context"
	"sync"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

// QualifyLeadStore: leads da ferramenta manual, em memória.
type QualifyLeadStore struct {
	mu    sync.RWMutex
	leads map[string]*entity.QualifyLead
}

func NewQualifyLeadStore() *QualifyLeadStore {
	return &QualifyLeadStore{
		leads: make(map[string]*entity.QualifyLead),
	}
}

func (s *QualifyLeadStore) Create(_ context.Context, lead *entity.QualifyLead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads[lead.ID] = lead
	return nil
}

func (s *QualifyLeadStore) FindByID(_ context.Context, id string) (*entity.QualifyLead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	return lead, nil
}
