package usecase

import (
	"context"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

// OutcomeUseCase fecha o feedback loop: marca envio e resultado dos
// intentos e move o status do prospecto pela tabela fixa de transições.
type OutcomeUseCase struct {
	ProspectRepo entity.ProspectRepositoryInterface
	AttemptRepo  entity.AttemptRepositoryInterface
}

func NewOutcomeUseCase(prospectRepo entity.ProspectRepositoryInterface, attemptRepo entity.AttemptRepositoryInterface) *OutcomeUseCase {
	return &OutcomeUseCase{
		ProspectRepo: prospectRepo,
		AttemptRepo:  attemptRepo,
	}
}

// MarkSent seta sentAt se ainda não estiver (idempotente no timestamp) e
// força o status para IN_PROGRESS mesmo se o prospecto já atingiu estado
// terminal. Comportamento atual documentado, não corrigido.
func (uc *OutcomeUseCase) MarkSent(ctx context.Context, accountID, attemptID string) error {
	attempt, err := uc.ownAttempt(ctx, accountID, attemptID)
	if err != nil {
		return err
	}

	if attempt.SentAt == nil {
		if err := uc.AttemptRepo.MarkSent(ctx, attempt.ID, timeNow()); err != nil {
			return &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
		}
	}

	if err := uc.ProspectRepo.UpdateStatus(ctx, attempt.ProspectID, entity.StatusInProgress); err != nil {
		return &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	return nil
}

// MarkOutcome grava o resultado, completa sentAt se nunca foi marcado e
// atualiza o status do prospecto pela tabela. Last-write-wins entre
// intentos: o último resultado marcado manda, mesmo que piore o status.
func (uc *OutcomeUseCase) MarkOutcome(ctx context.Context, accountID, attemptID, outcome, note string) (*entity.OutreachAttempt, error) {
	attempt, err := uc.ownAttempt(ctx, accountID, attemptID)
	if err != nil {
		return nil, err
	}

	attempt.Outcome = outcome
	attempt.OutcomeNote = note
	if attempt.SentAt == nil {
		now := timeNow()
		attempt.SentAt = &now
	}

	if err := uc.AttemptRepo.UpdateOutcome(ctx, attempt); err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	newStatus := entity.StatusForOutcome(outcome)
	if err := uc.ProspectRepo.UpdateStatus(ctx, attempt.ProspectID, newStatus); err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	return attempt, nil
}

// ownAttempt valida o dono via prospecto pai. Mesmo sinal para inexistente
// e dono errado.
func (uc *OutcomeUseCase) ownAttempt(ctx context.Context, accountID, attemptID string) (*entity.OutreachAttempt, error) {
	attempt, err := uc.AttemptRepo.FindByID(ctx, attemptID)
	if err != nil || attempt == nil {
		return nil, ErrOwnership()
	}

	if _, err := ownProspect(ctx, uc.ProspectRepo, accountID, attempt.ProspectID); err != nil {
		return nil, err
	}

	return attempt, nil
}
