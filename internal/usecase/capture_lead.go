package usecase

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/agents-outreach/internal/entity"
	"github.com/xavierca1/agents-outreach/internal/infra/queue"
)

var timeNow = time.Now

type CaptureLeadUseCase struct {
	Repo  entity.ScoredLeadRepositoryInterface
	Queue QueueProducerInterface // opcional; nil desliga os alertas
}

func NewCaptureLeadUseCase(repo entity.ScoredLeadRepositoryInterface, producer QueueProducerInterface) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Repo:  repo,
		Queue: producer,
	}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	if errs := ValidateCaptureLeadInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	submission := entity.LeadSubmission{
		Name:      input.Name,
		Email:     input.Email,
		Company:   input.Company,
		Role:      input.Role,
		Problem:   input.Problem,
		AgentType: input.AgentType,
		TeamSize:  input.TeamSize,
		Budget:    input.Budget,
		Urgency:   input.Urgency,
	}

	score := entity.Score(submission)
	lead := &entity.ScoredLead{
		LeadSubmission: submission,
		Score:          score,
		Tier:           entity.TierFor(score),
		EstimatedMRR:   entity.EstimateMRR(submission.AgentType),
		ReceivedAt:     timeNow(),
	}

	if err := uc.Repo.Append(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "failed to store lead: " + err.Error(),
		}
	}

	// Lead quente avisa o time comercial pela fila. Falha aqui nunca
	// derruba a captura.
	if lead.Tier == entity.TierHot && uc.Queue != nil {
		go func() {
			payload := queue.HotLeadPayload{
				Name:         lead.Name,
				Email:        lead.Email,
				Company:      lead.Company,
				Problem:      lead.Problem,
				AgentType:    lead.AgentType,
				Score:        lead.Score,
				EstimatedMRR: lead.EstimatedMRR,
			}
			if err := uc.Queue.PublishHotLead(context.Background(), payload); err != nil {
				log.Printf("⚠️ Lead quente capturado mas alerta não publicado: %v", err)
			}
		}()
	}

	nextStep := "We will send you a personalized demo link within 24 hours."
	if lead.Tier == entity.TierHot {
		nextStep = "Our team will reach out within 2 hours to schedule your demo."
	}

	return &CaptureLeadOutput{
		Success:  true,
		Message:  "Thank you! We will contact you within 24 hours.",
		Tier:     lead.Tier,
		NextStep: nextStep,
	}, nil
}
