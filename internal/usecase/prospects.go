package usecase

import (
	"context"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

// ProspectUseCase cobre o CRUD de prospectos. Toda operação confere o dono
// antes de ler ou escrever qualquer coisa.
type ProspectUseCase struct {
	ProspectRepo entity.ProspectRepositoryInterface
	AttemptRepo  entity.AttemptRepositoryInterface
}

func NewProspectUseCase(prospectRepo entity.ProspectRepositoryInterface, attemptRepo entity.AttemptRepositoryInterface) *ProspectUseCase {
	return &ProspectUseCase{
		ProspectRepo: prospectRepo,
		AttemptRepo:  attemptRepo,
	}
}

func (uc *ProspectUseCase) List(ctx context.Context, accountID string) ([]*entity.Prospect, error) {
	prospects, err := uc.ProspectRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	for _, p := range prospects {
		attempts, err := uc.AttemptRepo.ListByProspect(ctx, p.ID)
		if err != nil {
			return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
		}
		p.Attempts = attempts
	}

	return prospects, nil
}

func (uc *ProspectUseCase) Create(ctx context.Context, accountID string, input CreateProspectInput) (*entity.Prospect, error) {
	if errs := ValidateCreateProspectInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	prospect, err := entity.NewProspect(
		accountID,
		input.Company,
		input.ContactName,
		input.Role,
		input.Email,
		input.Linkedin,
		input.Industry,
		input.PainPoints,
		input.Context,
	)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.ProspectRepo.Create(ctx, prospect); err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	return prospect, nil
}

// Delete remove o prospecto e, em cascata, seus intentos.
func (uc *ProspectUseCase) Delete(ctx context.Context, accountID, id string) error {
	if _, err := ownProspect(ctx, uc.ProspectRepo, accountID, id); err != nil {
		return err
	}

	if err := uc.ProspectRepo.Delete(ctx, id); err != nil {
		return &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	return nil
}

// ownProspect carrega o prospecto e valida o dono. Não-existente e
// dono-errado colapsam no mesmo erro.
func ownProspect(ctx context.Context, repo entity.ProspectRepositoryInterface, accountID, id string) (*entity.Prospect, error) {
	p, err := repo.FindByID(ctx, id)
	if err != nil || p == nil || p.AccountID != accountID {
		return nil, ErrOwnership()
	}
	return p, nil
}
