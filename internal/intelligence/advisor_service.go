package intelligence

import (
	"context"
	"encoding/json"

	"github.com/uniflowhq/uniflow/internal/llm"
)

// AdvisorService renders advisory narratives over resolved study plans.
type AdvisorService interface {
	// AdvisePlan produces the narrative assessment for a plan trace.
	AdvisePlan(ctx context.Context, trace PlanTrace) (*PlanAdvice, error)
}

type advisorService struct {
	client llm.Client
}

// NewAdvisorService creates an AdvisorService backed by an LLM client.
func NewAdvisorService(client llm.Client) AdvisorService {
	return &advisorService{client: client}
}

func (s *advisorService) AdvisePlan(ctx context.Context, trace PlanTrace) (*PlanAdvice, error) {
	traceJSON, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		return DeterministicAdvice(trace), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdvise,
		SystemPrompt: adviseSystemPrompt,
		UserPrompt:   "Here is the resolved study plan:\n\n" + string(traceJSON),
	})
	if err != nil {
		return DeterministicAdvice(trace), nil
	}

	advice, err := llm.ExtractJSON[PlanAdvice](resp.Text, ValidateAdvice)
	if err != nil {
		return DeterministicAdvice(trace), nil
	}

	// Focus skills must be grounded in the trace, not invented.
	if !subsetOf(advice.FocusSkills, trace.MissingSkills) {
		return DeterministicAdvice(trace), nil
	}
	return &advice, nil
}

func subsetOf(subset, set []string) bool {
	allowed := make(map[string]bool, len(set))
	for _, s := range set {
		allowed[normalizeSkill(s)] = true
	}
	for _, s := range subset {
		if !allowed[normalizeSkill(s)] {
			return false
		}
	}
	return true
}
