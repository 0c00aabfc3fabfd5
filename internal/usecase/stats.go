package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

// StatsUseCase: leitura agregada do agente prospector. Só consulta, não
// muda nada.
type StatsUseCase struct {
	ProspectRepo entity.ProspectRepositoryInterface
	AttemptRepo  entity.AttemptRepositoryInterface
}

func NewStatsUseCase(prospectRepo entity.ProspectRepositoryInterface, attemptRepo entity.AttemptRepositoryInterface) *StatsUseCase {
	return &StatsUseCase{
		ProspectRepo: prospectRepo,
		AttemptRepo:  attemptRepo,
	}
}

func (uc *StatsUseCase) Execute(ctx context.Context, accountID string) (*StatsOutput, error) {
	total, err := uc.ProspectRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	replied, err := uc.ProspectRepo.CountByAccount(ctx, accountID, entity.StatusReplied, entity.StatusMeetingBooked)
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	converted, err := uc.ProspectRepo.CountByAccount(ctx, accountID, entity.StatusConverted)
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	rows, err := uc.AttemptRepo.ListOutcomesByAccount(ctx, accountID)
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	withOutcome := 0
	positive := 0
	type angleCount struct{ sent, positive int }
	angles := map[string]*angleCount{}

	for _, row := range rows {
		if row.Outcome == "" {
			continue
		}
		withOutcome++
		if row.Outcome == entity.OutcomePositive {
			positive++
		}

		ac := angles[row.Angle]
		if ac == nil {
			ac = &angleCount{}
			angles[row.Angle] = ac
		}
		ac.sent++
		if row.Outcome == entity.OutcomePositive {
			ac.positive++
		}
	}

	// Denominador zero reporta 0, nunca NaN.
	replyRate := 0
	if withOutcome > 0 {
		replyRate = roundRate(positive, withOutcome)
	}

	bestAngles := make([]AngleRate, 0, len(angles))
	for angle, ac := range angles {
		rate := 0
		if ac.sent > 0 {
			rate = roundRate(ac.positive, ac.sent)
		}
		bestAngles = append(bestAngles, AngleRate{Angle: angle, Rate: rate})
	}
	sort.SliceStable(bestAngles, func(i, j int) bool {
		return bestAngles[i].Rate > bestAngles[j].Rate
	})

	return &StatsOutput{
		Total:      total,
		Replied:    replied,
		Converted:  converted,
		ReplyRate:  replyRate,
		BestAngles: bestAngles,
	}, nil
}

func roundRate(num, den int) int {
	return int(math.Round(float64(num) / float64(den) * 100))
}
