package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/agents-outreach/internal/entity"
	"github.com/xavierca1/agents-outreach/internal/usecase"
)

func newStatsUC(rows []entity.AttemptOutcomeRow, total, replied, converted int) *usecase.StatsUseCase {
	prospectRepo := new(MockProspectRepository)
	attemptRepo := new(MockAttemptRepository)

	prospectRepo.On("CountByAccount", mock.Anything, accountID).Return(total, nil)
	prospectRepo.On("CountByAccount", mock.Anything, accountID, entity.StatusReplied, entity.StatusMeetingBooked).Return(replied, nil)
	prospectRepo.On("CountByAccount", mock.Anything, accountID, entity.StatusConverted).Return(converted, nil)
	attemptRepo.On("ListOutcomesByAccount", mock.Anything, accountID).Return(rows, nil)

	return usecase.NewStatsUseCase(prospectRepo, attemptRepo)
}

// Zero intentos com outcome: taxa 0, sem divisão por zero.
func TestStatsEmpty(t *testing.T) {
	uc := newStatsUC([]entity.AttemptOutcomeRow{}, 0, 0, 0)

	stats, err := uc.Execute(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.ReplyRate)
	assert.Empty(t, stats.BestAngles)
}

func TestStatsIgnoresAttemptsWithoutOutcome(t *testing.T) {
	rows := []entity.AttemptOutcomeRow{
		{Angle: entity.AnglePain, Outcome: entity.OutcomePositive},
		{Angle: entity.AnglePain, Outcome: ""},
		{Angle: entity.AngleUrgency, Outcome: ""},
	}
	uc := newStatsUC(rows, 3, 1, 0)

	stats, err := uc.Execute(context.Background(), accountID)

	assert.NoError(t, err)
	// 1 positivo de 1 com outcome
	assert.Equal(t, 100, stats.ReplyRate)
	assert.Len(t, stats.BestAngles, 1)
}

func TestStatsReplyRateRounds(t *testing.T) {
	rows := []entity.AttemptOutcomeRow{
		{Angle: entity.AnglePain, Outcome: entity.OutcomePositive},
		{Angle: entity.AnglePain, Outcome: entity.OutcomeNegative},
		{Angle: entity.AngleBreakup, Outcome: entity.OutcomeNoReply},
	}
	uc := newStatsUC(rows, 3, 1, 0)

	stats, err := uc.Execute(context.Background(), accountID)

	assert.NoError(t, err)
	// 1/3 = 33.33 -> 33
	assert.Equal(t, 33, stats.ReplyRate)
}

func TestStatsBestAnglesSortedByRate(t *testing.T) {
	rows := []entity.AttemptOutcomeRow{
		{Angle: entity.AnglePain, Outcome: entity.OutcomePositive},
		{Angle: entity.AnglePain, Outcome: entity.OutcomePositive},
		{Angle: entity.AngleSocialProof, Outcome: entity.OutcomePositive},
		{Angle: entity.AngleSocialProof, Outcome: entity.OutcomeNegative},
		{Angle: entity.AngleUrgency, Outcome: entity.OutcomeNoReply},
	}
	uc := newStatsUC(rows, 5, 3, 1)

	stats, err := uc.Execute(context.Background(), accountID)

	assert.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.Replied)
	assert.Equal(t, 1, stats.Converted)
	assert.Len(t, stats.BestAngles, 3)
	assert.Equal(t, entity.AnglePain, stats.BestAngles[0].Angle)
	assert.Equal(t, 100, stats.BestAngles[0].Rate)
	assert.Equal(t, entity.AngleSocialProof, stats.BestAngles[1].Angle)
	assert.Equal(t, entity.AngleUrgency, stats.BestAngles[2].Angle)
	assert.Equal(t, 0, stats.BestAngles[2].Rate)
}
