package entity

import "fmt"

// Modelo aditivo de pontuação: três fatores independentes, cada um com teto
// próprio. Soma máxima = 40 + 35 + 25 = 100.
var (
	urgencyPoints = map[string]int{
		UrgencyThisWeek:  40,
		UrgencyThisMonth: 20,
		UrgencyExploring: 0,
	}

	budgetPoints = map[string]int{
		BudgetOver1000: 35,
		Budget500To1K:  25,
		Budget200To500: 10,
		BudgetUnder200: 0,
	}

	teamSizePoints = map[string]int{
		TeamOver50: 25,
		Team11To50: 20,
		Team2To10:  10,
		TeamSolo:   0,
	}

	// MRR estimado por tipo de agente (USD/mês)
	agentMRR = map[string]int{
		AgentSupport:   499,
		AgentAnalytics: 999,
		AgentContent:   299,
		AgentBundle:    1499,
	}
)

const defaultMRR = 499

// Score calcula a pontuação da submissão. Sem efeitos colaterais, sem erro:
// enum desconhecido vale zero pontos.
func Score(s LeadSubmission) int {
	score := urgencyPoints[s.Urgency] + budgetPoints[s.Budget] + teamSizePoints[s.TeamSize]

	// Clamp mantido de propósito: hoje a soma máxima já é 100, mas novos
	// fatores não podem estourar a escala.
	if score > 100 {
		score = 100
	}
	return score
}

// TierFor deriva o tier a partir do score. Monotônica: 70+ hot, 40+ warm.
func TierFor(score int) string {
	switch {
	case score >= 70:
		return TierHot
	case score >= 40:
		return TierWarm
	default:
		return TierCold
	}
}

// EstimateMRR retorna o valor mensal estimado pelo tipo de agente pedido.
func EstimateMRR(agentType string) int {
	if mrr, ok := agentMRR[agentType]; ok {
		return mrr
	}
	return defaultMRR
}

// ValidateTables confere na subida do processo que as tabelas fixas cobrem
// todos os variantes dos enums fechados. Evita que um valor novo passe
// batido pelo branch default.
func ValidateTables() error {
	checks := []struct {
		name     string
		table    map[string]int
		variants []string
	}{
		{"urgency", urgencyPoints, []string{UrgencyThisWeek, UrgencyThisMonth, UrgencyExploring}},
		{"budget", budgetPoints, []string{BudgetOver1000, Budget500To1K, Budget200To500, BudgetUnder200}},
		{"team_size", teamSizePoints, []string{TeamOver50, Team11To50, Team2To10, TeamSolo}},
		{"agent_mrr", agentMRR, []string{AgentSupport, AgentAnalytics, AgentContent, AgentBundle}},
	}

	for _, c := range checks {
		for _, v := range c.variants {
			if _, ok := c.table[v]; !ok {
				return fmt.Errorf("tabela %s não cobre o variante %q", c.name, v)
			}
		}
	}

	for outcome := range outcomeStatusMap {
		if !ValidOutcomes[outcome] {
			return fmt.Errorf("tabela outcome_status mapeia outcome desconhecido %q", outcome)
		}
	}
	for _, outcome := range []string{OutcomePositive, OutcomeNeutral, OutcomeNegative, OutcomeNoReply, OutcomeMeetingBooked} {
		if _, ok := outcomeStatusMap[outcome]; !ok {
			return fmt.Errorf("tabela outcome_status não cobre o outcome %q", outcome)
		}
	}

	return nil
}
