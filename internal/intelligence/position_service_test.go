package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniflowhq/uniflow/internal/llm"
)

// newScriptedLLM spins an httptest Ollama endpoint that always answers with
// the given text and returns a client pointed at it.
func newScriptedLLM(t *testing.T, responseText string) llm.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "llama3.2",
			"response": responseText,
		})
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

// newDownLLM returns a client pointed at a dead endpoint.
func newDownLLM(t *testing.T) llm.Client {
	t.Helper()
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func TestAnalyzePosition_ParsesModelOutput(t *testing.T) {
	client := newScriptedLLM(t, "Here you go:\n```json\n"+
		`{"position":"Data Engineer","seniority":"Mid","skills":["SQL","Python","SQL","data modeling"]}`+
		"\n```")
	svc := NewPositionService(client)

	benchmark, err := svc.AnalyzePosition(context.Background(), "data engineer at a fintech")
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", benchmark.Position)
	assert.Equal(t, "mid", benchmark.Seniority)
	// Normalized: lowercased and deduplicated, order preserved.
	assert.Equal(t, []string{"sql", "python", "data modeling"}, benchmark.Skills)
}

func TestAnalyzePosition_FallsBackOnInvalidOutput(t *testing.T) {
	client := newScriptedLLM(t, "I am sorry, I cannot produce JSON today.")
	svc := NewPositionService(client)

	benchmark, err := svc.AnalyzePosition(context.Background(), "Senior Machine Learning Engineer")
	require.NoError(t, err)

	assert.Equal(t, "Senior Machine Learning Engineer", benchmark.Position)
	assert.Equal(t, "senior", benchmark.Seniority)
	assert.Contains(t, benchmark.Skills, "machine learning")
}

func TestAnalyzePosition_FallsBackOnValidationFailure(t *testing.T) {
	client := newScriptedLLM(t, `{"position":"Dev","seniority":"mid","skills":[]}`)
	svc := NewPositionService(client)

	benchmark, err := svc.AnalyzePosition(context.Background(), "junior web developer")
	require.NoError(t, err)

	assert.Equal(t, "junior", benchmark.Seniority)
	assert.Contains(t, benchmark.Skills, "javascript")
}

func TestAnalyzePosition_FallsBackWhenUnavailable(t *testing.T) {
	svc := NewPositionService(newDownLLM(t))

	benchmark, err := svc.AnalyzePosition(context.Background(), "security analyst")
	require.NoError(t, err)

	assert.Contains(t, benchmark.Skills, "security")
}

func TestAnalyzePosition_EmptyPositionRejected(t *testing.T) {
	svc := NewPositionService(newDownLLM(t))

	_, err := svc.AnalyzePosition(context.Background(), "   ")
	assert.Error(t, err)
}

func TestDeterministicBenchmark(t *testing.T) {
	tests := []struct {
		position  string
		seniority string
		skill     string
	}{
		{"Senior Data Engineer", "senior", "sql"},
		{"Machine Learning Engineer", "mid", "machine learning"},
		{"junior frontend developer", "junior", "javascript"},
		{"Lead Site Reliability Engineer", "senior", "distributed systems"},
		{"Product Manager", "mid", "stakeholder management"},
		{"Wildlife Photographer", "mid", "algorithms"}, // unknown role gets the default set
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			benchmark := DeterministicBenchmark(tt.position)
			assert.Equal(t, tt.seniority, benchmark.Seniority)
			assert.Contains(t, benchmark.Skills, tt.skill)
			assert.NoError(t, ValidateBenchmark(*benchmark))
		})
	}
}
