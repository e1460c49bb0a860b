package rank

import (
	"context"
	"sort"
	"strings"

	"github.com/uniflowhq/uniflow/internal/catalog"
	"github.com/uniflowhq/uniflow/internal/domain"
)

// KeywordRanker scores courses by token overlap between the query and the
// course's title, department, skills, and description. It is fully
// deterministic: equal scores fall back to catalog order.
type KeywordRanker struct {
	store *catalog.Store
}

// NewKeywordRanker creates a ranker over the given catalog.
func NewKeywordRanker(store *catalog.Store) *KeywordRanker {
	return &KeywordRanker{store: store}
}

func (r *KeywordRanker) Rank(_ context.Context, query string, k int) ([]domain.CourseRecord, error) {
	terms := tokenize(query)
	if len(terms) == 0 || k <= 0 {
		return nil, nil
	}

	type scored struct {
		course domain.CourseRecord
		score  float64
		pos    int
	}

	var matches []scored
	for _, course := range r.store.Courses() {
		s := scoreCourse(course, terms)
		if s > 0 {
			matches = append(matches, scored{course: course, score: s, pos: r.store.Position(course.CourseID)})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].pos < matches[j].pos
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	out := make([]domain.CourseRecord, len(matches))
	for i, m := range matches {
		out[i] = m.course
	}
	return out, nil
}

// scoreCourse weighs skill matches highest, then title, then the rest.
func scoreCourse(course domain.CourseRecord, terms []string) float64 {
	skills := strings.ToLower(strings.Join(course.SkillsTaught, " "))
	title := strings.ToLower(course.Title)
	rest := strings.ToLower(course.Department + " " + course.Description)

	var score float64
	for _, term := range terms {
		switch {
		case strings.Contains(skills, term):
			score += 3
		case strings.Contains(title, term):
			score += 2
		case strings.Contains(rest, term):
			score += 1
		}
	}
	return score
}

func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,;:()[]\"'")
		if len(f) > 1 {
			terms = append(terms, f)
		}
	}
	return terms
}
