package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

// GenerateSequenceUseCase é o coração do agente prospector: uma chamada de
// geração por invocação, parse estruturado com fallback, persistência do
// lote completo.
type GenerateSequenceUseCase struct {
	ProspectRepo entity.ProspectRepositoryInterface
	AttemptRepo  entity.AttemptRepositoryInterface
	Generator    TextGenerator

	// Reporta quando o parse caiu no fallback (métrica). Opcional.
	OnFallback func()
}

func NewGenerateSequenceUseCase(
	prospectRepo entity.ProspectRepositoryInterface,
	attemptRepo entity.AttemptRepositoryInterface,
	generator TextGenerator,
) *GenerateSequenceUseCase {
	return &GenerateSequenceUseCase{
		ProspectRepo: prospectRepo,
		AttemptRepo:  attemptRepo,
		Generator:    generator,
	}
}

const exemplarLimit = 5

func (uc *GenerateSequenceUseCase) Execute(ctx context.Context, accountID, prospectID string) (*GenerateSequenceOutput, error) {
	prospect, err := ownProspect(ctx, uc.ProspectRepo, accountID, prospectID)
	if err != nil {
		return nil, err
	}

	// Regeneração descarta o conjunto anterior inteiro. Duas regenerações
	// concorrentes correm no delete-then-insert; vence o insert que
	// terminar por último (ferramenta de operador único, aceito).
	if err := uc.AttemptRepo.DeleteByProspect(ctx, prospectID); err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	exemplars, err := uc.AttemptRepo.FindPositiveByAccount(ctx, accountID, exemplarLimit)
	if err != nil {
		// Exemplares são otimização do prompt, não pré-requisito.
		log.Printf("⚠️ Falha ao buscar exemplares positivos: %v", err)
		exemplars = nil
	}

	prompt := BuildSequencePrompt(prospect, exemplars)

	raw, err := uc.Generator.Generate(ctx, prompt)
	if err != nil {
		// Indisponibilidade do provedor também cai no fallback: a chamada
		// nunca falha por causa da geração.
		log.Printf("⚠️ Geração externa falhou para prospecto %s: %v", prospectID, err)
		raw = ""
	}

	messages, fellBack := ParseSequence(raw)
	if fellBack && uc.OnFallback != nil {
		uc.OnFallback()
	}

	attempts := make([]*entity.OutreachAttempt, 0, len(messages))
	for _, msg := range messages {
		attempts = append(attempts, entity.NewOutreachAttempt(
			prospectID,
			msg.Sequence,
			msg.Channel,
			msg.Angle,
			msg.Subject,
			msg.Message,
		))
	}

	txn := NewTransaction()

	txn.AddOperation("create_attempts", func(ctx context.Context) error {
		return uc.AttemptRepo.CreateBatch(ctx, attempts)
	})
	txn.AddCompensation("delete_attempts", func(ctx context.Context) error {
		return uc.AttemptRepo.DeleteByProspect(ctx, prospectID)
	})

	txn.AddOperation("update_status", func(ctx context.Context) error {
		return uc.ProspectRepo.UpdateStatus(ctx, prospectID, entity.StatusSequenceGenerated)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	prospect.Status = entity.StatusSequenceGenerated

	return &GenerateSequenceOutput{
		Prospect: prospect,
		Sequence: attempts,
	}, nil
}
