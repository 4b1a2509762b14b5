package repositories

import (
	"context"
	"testing"

	"valley-breezes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQuizResultStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryQuizResultStore()

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrQuizResultNotFound)

	res := models.QuizResult{SessionID: "s1", Recommendation: models.Recommendation{ProductIDs: []string{"3", "8"}}}
	require.NoError(t, store.Save(ctx, res))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, res, got)

	next := models.QuizResult{SessionID: "s1", Recommendation: models.Recommendation{ProductIDs: []string{"5"}}}
	require.NoError(t, store.Save(ctx, next))
	got, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, got.Recommendation.ProductIDs)
}

func TestMemoryQuizResultStoreKeepsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryQuizResultStore()

	answers := models.QuizAnswers{models.QuestionSeason: "summer"}
	ids := []string{"3", "8"}
	require.NoError(t, store.Save(ctx, models.QuizResult{
		SessionID:      "s1",
		Answers:        answers,
		Descriptions:   map[string]string{"season": "Summer"},
		Recommendation: models.Recommendation{ProductIDs: ids},
	}))

	answers[models.QuestionSeason] = "winter"
	ids[0] = "x"

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	got.Answers[models.QuestionSeason] = "spring"
	got.Descriptions["season"] = "changed"
	got.Recommendation.ProductIDs[1] = "y"

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "summer", again.Answers[models.QuestionSeason])
	assert.Equal(t, "Summer", again.Descriptions["season"])
	assert.Equal(t, []string{"3", "8"}, again.Recommendation.ProductIDs)
}
