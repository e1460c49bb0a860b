package rank

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"google.golang.org/genai"

	"github.com/uniflowhq/uniflow/internal/catalog"
	"github.com/uniflowhq/uniflow/internal/domain"
)

const embedBatchSize = 100

// GeminiRanker ranks courses by cosine similarity between Gemini text
// embeddings of the query and of each catalog record. Catalog embeddings
// are computed once at construction; only the query is embedded per call.
type GeminiRanker struct {
	client  *genai.Client
	model   string
	courses []domain.CourseRecord
	vectors [][]float32
}

// NewGeminiRanker embeds the full catalog and returns a ready ranker.
// The embedding calls are network-bound; failures surface as ErrUnavailable.
func NewGeminiRanker(ctx context.Context, apiKey, model string, store *catalog.Store) (*GeminiRanker, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	r := &GeminiRanker{
		client:  client,
		model:   model,
		courses: store.Courses(),
	}
	if err := r.embedCatalog(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *GeminiRanker) embedCatalog(ctx context.Context) error {
	for start := 0; start < len(r.courses); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(r.courses) {
			end = len(r.courses)
		}

		contents := make([]*genai.Content, 0, end-start)
		for _, course := range r.courses[start:end] {
			contents = append(contents, genai.NewContentFromText(courseText(course), genai.RoleUser))
		}

		resp, err := r.client.Models.EmbedContent(ctx, r.model, contents, nil)
		if err != nil {
			return fmt.Errorf("%w: embedding catalog batch at %d: %v", ErrUnavailable, start, err)
		}
		if len(resp.Embeddings) != len(contents) {
			return fmt.Errorf("%w: embedding batch at %d returned %d vectors for %d inputs",
				ErrUnavailable, start, len(resp.Embeddings), len(contents))
		}
		for _, emb := range resp.Embeddings {
			r.vectors = append(r.vectors, emb.Values)
		}
	}
	return nil
}

func (r *GeminiRanker) Rank(ctx context.Context, query string, k int) ([]domain.CourseRecord, error) {
	if k <= 0 || strings.TrimSpace(query) == "" {
		return nil, nil
	}

	resp, err := r.client.Models.EmbedContent(ctx, r.model, genai.Text(query), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: embedding query: %v", ErrUnavailable, err)
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("%w: embedding query returned no vector", ErrUnavailable)
	}
	qv := resp.Embeddings[0].Values

	type scored struct {
		idx int
		sim float64
	}
	results := make([]scored, len(r.courses))
	for i := range r.courses {
		results[i] = scored{idx: i, sim: cosine(qv, r.vectors[i])}
	}

	// Ties keep catalog order via the index and the stable sort.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].sim != results[j].sim {
			return results[i].sim > results[j].sim
		}
		return results[i].idx < results[j].idx
	})

	if len(results) > k {
		results = results[:k]
	}
	out := make([]domain.CourseRecord, len(results))
	for i, res := range results {
		out[i] = r.courses[res.idx]
	}
	return out, nil
}

// courseText flattens a record into the text that gets embedded.
func courseText(c domain.CourseRecord) string {
	prereqs := strings.Join(c.Prerequisites, ", ")
	if prereqs == "" {
		prereqs = "None"
	}
	return fmt.Sprintf(
		"Course: %s (%s) | Department: %s | Credits: %g | Description: %s | Skills: %s | Prerequisites: %s",
		c.Title, c.CourseID, c.Department, c.Credits, c.Description,
		strings.Join(c.SkillsTaught, ", "), prereqs,
	)
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
