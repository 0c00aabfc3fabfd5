package usecase

import (
	"context"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

// LeadOverviewUseCase alimenta o painel interno: leads capturados em ordem
// de chegada mais a contagem por tier. Só leitura.
type LeadOverviewUseCase struct {
	Repo entity.ScoredLeadRepositoryInterface
}

func NewLeadOverviewUseCase(repo entity.ScoredLeadRepositoryInterface) *LeadOverviewUseCase {
	return &LeadOverviewUseCase{Repo: repo}
}

func (uc *LeadOverviewUseCase) Execute(ctx context.Context) (*LeadOverviewOutput, error) {
	leads, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	counts := map[string]int{}
	for _, tier := range []string{entity.TierHot, entity.TierWarm, entity.TierCold} {
		n, err := uc.Repo.CountByTier(ctx, tier)
		if err != nil {
			return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
		}
		counts[tier] = n
	}

	return &LeadOverviewOutput{
		Total: len(leads),
		Hot:   counts[entity.TierHot],
		Warm:  counts[entity.TierWarm],
		Cold:  counts[entity.TierCold],
		Leads: leads,
	}, nil
}
