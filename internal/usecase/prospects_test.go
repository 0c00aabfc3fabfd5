package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/agents-outreach/internal/entity"
	"github.com/xavierca1/agents-outreach/internal/usecase"
)

func TestProspectCreate(t *testing.T) {
	prospectRepo := new(MockProspectRepository)
	prospectRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Prospect) bool {
		return p.AccountID == accountID &&
			p.Status == entity.StatusNew &&
			p.ID != ""
	})).Return(nil)

	uc := usecase.NewProspectUseCase(prospectRepo, new(MockAttemptRepository))

	prospect, err := uc.Create(context.Background(), accountID, usecase.CreateProspectInput{
		Company:     "Clínica Andina",
		ContactName: "Dra. Ruiz",
		PainPoints:  "pierden citas",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusNew, prospect.Status)
	prospectRepo.AssertExpectations(t)
}

func TestProspectCreateValidation(t *testing.T) {
	prospectRepo := new(MockProspectRepository)
	uc := usecase.NewProspectUseCase(prospectRepo, new(MockAttemptRepository))

	_, err := uc.Create(context.Background(), accountID, usecase.CreateProspectInput{
		Company: "Sem contato",
	})

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	prospectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProspectListAttachesAttempts(t *testing.T) {
	prospectRepo := new(MockProspectRepository)
	attemptRepo := new(MockAttemptRepository)

	p := ownedProspect()
	attempts := []*entity.OutreachAttempt{sentAttempt()}

	prospectRepo.On("ListByAccount", mock.Anything, accountID).Return([]*entity.Prospect{p}, nil)
	attemptRepo.On("ListByProspect", mock.Anything, "pros-1").Return(attempts, nil)

	uc := usecase.NewProspectUseCase(prospectRepo, attemptRepo)

	prospects, err := uc.List(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Len(t, prospects, 1)
	assert.Len(t, prospects[0].Attempts, 1)
}

func TestProspectDeleteOwnership(t *testing.T) {
	prospectRepo := new(MockProspectRepository)

	other := ownedProspect()
	other.AccountID = "acc-2"
	prospectRepo.On("FindByID", mock.Anything, "pros-1").Return(other, nil)

	uc := usecase.NewProspectUseCase(prospectRepo, new(MockAttemptRepository))

	err := uc.Delete(context.Background(), accountID, "pros-1")

	de, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, "FORBIDDEN", de.Code)
	prospectRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestProspectDelete(t *testing.T) {
	prospectRepo := new(MockProspectRepository)
	prospectRepo.On("FindByID", mock.Anything, "pros-1").Return(ownedProspect(), nil)
	prospectRepo.On("Delete", mock.Anything, "pros-1").Return(nil)

	uc := usecase.NewProspectUseCase(prospectRepo, new(MockAttemptRepository))

	err := uc.Delete(context.Background(), accountID, "pros-1")

	assert.NoError(t, err)
	prospectRepo.AssertExpectations(t)
}
