package rank

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniflowhq/uniflow/internal/domain"
	"github.com/uniflowhq/uniflow/internal/testutil"
)

func TestCachedRanker_ServesRepeatQueriesFromCache(t *testing.T) {
	inner := &testutil.ScriptedRanker{
		Default: []domain.CourseRecord{{CourseID: "CS101", Title: "Intro", Credits: 3}},
	}
	cached, err := NewCachedRanker(inner, 128, time.Minute)
	require.NoError(t, err)
	defer cached.Close()

	ctx := context.Background()
	first, err := cached.Rank(ctx, "databases", 5)
	require.NoError(t, err)
	cached.Wait()

	second, err := cached.Rank(ctx, "databases", 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.CallCount(), "second call must be a cache hit")
}

func TestCachedRanker_KeyIncludesDepth(t *testing.T) {
	inner := &testutil.ScriptedRanker{
		Default: []domain.CourseRecord{
			{CourseID: "CS101", Credits: 3},
			{CourseID: "CS102", Credits: 3},
		},
	}
	cached, err := NewCachedRanker(inner, 128, time.Minute)
	require.NoError(t, err)
	defer cached.Close()

	ctx := context.Background()
	one, err := cached.Rank(ctx, "databases", 1)
	require.NoError(t, err)
	cached.Wait()

	two, err := cached.Rank(ctx, "databases", 2)
	require.NoError(t, err)

	assert.Len(t, one, 1)
	assert.Len(t, two, 2)
	assert.Equal(t, 2, inner.CallCount(), "different k means a different cache entry")
}

func TestCachedRanker_NeverCachesFailures(t *testing.T) {
	inner := &testutil.ScriptedRanker{Err: ErrUnavailable}
	cached, err := NewCachedRanker(inner, 128, time.Minute)
	require.NoError(t, err)
	defer cached.Close()

	ctx := context.Background()
	_, err = cached.Rank(ctx, "databases", 5)
	assert.ErrorIs(t, err, ErrUnavailable)
	cached.Wait()

	_, err = cached.Rank(ctx, "databases", 5)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, inner.CallCount(), "failures must reach the backend every time")
}
