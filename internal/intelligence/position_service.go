package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/uniflowhq/uniflow/internal/llm"
)

// PositionService derives skill benchmarks from free-text target positions.
type PositionService interface {
	// AnalyzePosition returns the skill benchmark for a target position.
	AnalyzePosition(ctx context.Context, position string) (*SkillBenchmark, error)
}

type positionService struct {
	client llm.Client
}

// NewPositionService creates a PositionService backed by an LLM client.
func NewPositionService(client llm.Client) PositionService {
	return &positionService{client: client}
}

func (s *positionService) AnalyzePosition(ctx context.Context, position string) (*SkillBenchmark, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, fmt.Errorf("target position is required")
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPosition,
		SystemPrompt: positionSystemPrompt,
		UserPrompt:   "Target position: " + position,
	})
	if err != nil {
		return DeterministicBenchmark(position), nil
	}

	benchmark, err := llm.ExtractJSON[SkillBenchmark](resp.Text, ValidateBenchmark)
	if err != nil {
		return DeterministicBenchmark(position), nil
	}

	NormalizeBenchmark(&benchmark)
	if len(benchmark.Skills) == 0 {
		return DeterministicBenchmark(position), nil
	}
	return &benchmark, nil
}
