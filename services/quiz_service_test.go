package services

import (
	"context"
	"testing"

	"valley-breezes/models"
	"valley-breezes/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answers(occasion, season, personality, intensity, family, notes string) models.QuizAnswers {
	return models.QuizAnswers{
		models.QuestionOccasion:        occasion,
		models.QuestionSeason:          season,
		models.QuestionPersonality:     personality,
		models.QuestionIntensity:       intensity,
		models.QuestionOlfactoryFamily: family,
		models.QuestionNotesPreference: notes,
	}
}

func optionValues(id models.QuestionID) []string {
	q, _ := questionByID(id)
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Value
	}
	return out
}

func TestQuizQuestionSet(t *testing.T) {
	require.Len(t, QuizQuestions, 6)
	want := []int{4, 4, 4, 4, 6, 6}
	for i, q := range QuizQuestions {
		assert.Len(t, q.Options, want[i], q.ID)
	}
}

func TestResolveTotal(t *testing.T) {
	count := 0
	for _, o := range optionValues(models.QuestionOccasion) {
		for _, s := range optionValues(models.QuestionSeason) {
			for _, p := range optionValues(models.QuestionPersonality) {
				for _, i := range optionValues(models.QuestionIntensity) {
					for _, f := range optionValues(models.QuestionOlfactoryFamily) {
						for _, n := range optionValues(models.QuestionNotesPreference) {
							rec := Resolve(answers(o, s, p, i, f, n))
							count++

							if !assert.NotEmpty(t, rec.ProductIDs) || !assert.LessOrEqual(t, len(rec.ProductIDs), 3) {
								t.FailNow()
							}
							seen := map[string]bool{}
							for _, id := range rec.ProductIDs {
								require.False(t, seen[id], "duplicate id %s for %v", id, rec.ProductIDs)
								seen[id] = true
							}
							require.NotEmpty(t, rec.Profile)
							require.NotEmpty(t, rec.Lifestyle)
						}
					}
				}
			}
		}
	}
	assert.Equal(t, 4*4*4*4*6*6, count)
}

func TestResolveExactMatch(t *testing.T) {
	t.Run("fresh citrus combination", func(t *testing.T) {
		rec := Resolve(answers("daily", "spring", "energetic", "subtle", "citrus", "fruity"))

		assert.Equal(t, []string{"3", "8"}, rec.ProductIDs)
		assert.Equal(t, "Fresh & Citrus", rec.Profile)
		assert.Equal(t, "Active & Energetic", rec.Lifestyle)
		assert.True(t, rec.ExactMatch)
	})

	t.Run("curated entries win over fallbacks", func(t *testing.T) {
		for key, entry := range curatedRecommendations {
			a := answers(key.Occasion, key.Season, key.Personality, key.Intensity, key.OlfactoryFamily, key.NotesPreference)
			rec := Resolve(a)
			assert.Equal(t, entry.ids, rec.ProductIDs, "%+v", key)
			assert.Equal(t, entry.profile, rec.Profile, "%+v", key)
			assert.Equal(t, entry.lifestyle, rec.Lifestyle, "%+v", key)
			assert.True(t, rec.ExactMatch)
		}
	})

	t.Run("result does not alias the table", func(t *testing.T) {
		rec := Resolve(answers("daily", "spring", "energetic", "subtle", "citrus", "fruity"))
		rec.ProductIDs[0] = "changed"

		again := Resolve(answers("daily", "spring", "energetic", "subtle", "citrus", "fruity"))
		assert.Equal(t, "3", again.ProductIDs[0])
	})
}

func TestResolveFallback(t *testing.T) {
	t.Run("woody family", func(t *testing.T) {
		rec := Resolve(answers("any", "summer", "romantic", "subtle", "woody", "fruity"))

		assert.Equal(t, []string{"5", "1"}, rec.ProductIDs)
		assert.Equal(t, "Woody & Earthy", rec.Profile)
		assert.False(t, rec.ExactMatch)
	})

	t.Run("notes preference when family is missing", func(t *testing.T) {
		rec := Resolve(models.QuizAnswers{
			models.QuestionNotesPreference: "smoky",
			models.QuestionSeason:          "summer",
		})

		assert.Equal(t, []string{"1", "5"}, rec.ProductIDs)
		assert.Equal(t, "Smoky & Mysterious", rec.Profile)
	})

	t.Run("season is the last dimension", func(t *testing.T) {
		rec := Resolve(models.QuizAnswers{models.QuestionSeason: "winter"})

		assert.Equal(t, []string{"5", "6"}, rec.ProductIDs)
		assert.Equal(t, "Rich & Deep", rec.Profile)
	})

	t.Run("default when no dimension answered", func(t *testing.T) {
		rec := Resolve(models.QuizAnswers{
			models.QuestionOccasion:  "daily",
			models.QuestionIntensity: "strong",
		})

		assert.Equal(t, []string{"1", "3", "4"}, rec.ProductIDs)
		assert.Equal(t, "Well-Rounded Selection", rec.Profile)
		assert.Equal(t, "Versatile & Balanced", rec.Lifestyle)
	})

	t.Run("empty answers", func(t *testing.T) {
		rec := Resolve(nil)
		assert.Equal(t, []string{"1", "3", "4"}, rec.ProductIDs)
	})
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"5", "1", "3"}, dedupe([]string{"5", "1", "1", "3", "4"}, 3))
	assert.Equal(t, []string{"a"}, dedupe([]string{"a", "a"}, 3))
	assert.Empty(t, dedupe(nil, 3))
}

func TestValidateAnswers(t *testing.T) {
	assert.NoError(t, ValidateAnswers(answers("daily", "spring", "energetic", "subtle", "citrus", "fruity")))
	assert.NoError(t, ValidateAnswers(models.QuizAnswers{models.QuestionSeason: "winter"}))

	err := ValidateAnswers(models.QuizAnswers{models.QuestionSeason: "monsoon"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "season", ve.Field)

	err = ValidateAnswers(models.QuizAnswers{"budget": "low"})
	assert.ErrorIs(t, err, ErrValidation)
}

func walkQuiz(t *testing.T, q *Quiz, a models.QuizAnswers) {
	t.Helper()
	for i, question := range QuizQuestions {
		require.NoError(t, q.Answer(question.ID, a[question.ID]))
		done, err := q.Advance()
		require.NoError(t, err)
		assert.Equal(t, i == len(QuizQuestions)-1, done)
	}
}

func TestQuizStateMachine(t *testing.T) {
	t.Run("walks to a result", func(t *testing.T) {
		q := NewQuiz()
		walkQuiz(t, q, answers("daily", "spring", "energetic", "subtle", "citrus", "fruity"))

		st := q.State("s1")
		assert.Equal(t, models.QuizComplete, st.Status)
		require.NotNil(t, st.Result)
		assert.Equal(t, []string{"3", "8"}, st.Result.ProductIDs)
		assert.Nil(t, st.Question)
	})

	t.Run("advance requires an answer", func(t *testing.T) {
		q := NewQuiz()
		_, err := q.Advance()
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, 0, q.State("s").QuestionIndex)
	})

	t.Run("rejects unknown options", func(t *testing.T) {
		q := NewQuiz()
		assert.ErrorIs(t, q.Answer(models.QuestionOccasion, "brunch"), ErrValidation)
		assert.ErrorIs(t, q.Answer("budget", "low"), ErrValidation)
		assert.Empty(t, q.Answers())
	})

	t.Run("answer replaces earlier value", func(t *testing.T) {
		q := NewQuiz()
		require.NoError(t, q.Answer(models.QuestionOccasion, "daily"))
		require.NoError(t, q.Answer(models.QuestionOccasion, "evening"))
		assert.Equal(t, "evening", q.Answers()[models.QuestionOccasion])
	})

	t.Run("back keeps answers", func(t *testing.T) {
		q := NewQuiz()
		q.Back()
		assert.Equal(t, 0, q.State("s").QuestionIndex)

		require.NoError(t, q.Answer(models.QuestionOccasion, "daily"))
		_, err := q.Advance()
		require.NoError(t, err)
		q.Back()

		st := q.State("s")
		assert.Equal(t, 0, st.QuestionIndex)
		assert.Equal(t, "daily", st.Answers[models.QuestionOccasion])
	})

	t.Run("complete quiz rejects answers until reset", func(t *testing.T) {
		q := NewQuiz()
		walkQuiz(t, q, answers("evening", "autumn", "confident", "strong", "oriental", "spicy"))

		assert.ErrorIs(t, q.Answer(models.QuestionOccasion, "daily"), ErrQuizComplete)
		_, err := q.Advance()
		assert.ErrorIs(t, err, ErrQuizComplete)

		q.Reset()
		assert.False(t, q.Complete())
		assert.Empty(t, q.Answers())
		assert.NoError(t, q.Answer(models.QuestionOccasion, "daily"))
	})
}

func TestQuizService(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryQuizResultStore()
	svc := NewQuizService(store, nil)

	st := svc.Start(ctx, "guest-1")
	assert.Equal(t, "guest-1", st.SessionID)
	require.NotNil(t, st.Question)
	assert.Equal(t, models.QuestionOccasion, st.Question.ID)

	a := answers("any", "summer", "romantic", "subtle", "woody", "fruity")
	for _, q := range QuizQuestions {
		_, err := svc.Answer(ctx, "guest-1", q.ID, a[q.ID])
		require.NoError(t, err)
		st, err = svc.Advance(ctx, "guest-1")
		require.NoError(t, err)
	}
	assert.Equal(t, models.QuizComplete, st.Status)

	res, err := svc.Result(ctx, "guest-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1"}, res.Recommendation.ProductIDs)
	assert.Equal(t, "Woody - Sandalwood, cedar, and oak notes", res.Descriptions["olfactoryFamily"])
	assert.Equal(t, []string{"5", "1"}, svc.RecommendedIDs(ctx, "guest-1"))

	st, err = svc.Reset(ctx, "guest-1")
	require.NoError(t, err)
	assert.Equal(t, models.QuizInProgress, st.Status)
	assert.Empty(t, st.Answers)
	res, err = svc.Result(ctx, "guest-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1"}, res.Recommendation.ProductIDs)

	st = svc.Start(ctx, "guest-1")
	assert.Equal(t, 0, st.QuestionIndex)
	assert.Equal(t, []string{"5", "1"}, svc.RecommendedIDs(ctx, "guest-1"))

	_, err = svc.Result(ctx, "guest-2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, svc.RecommendedIDs(ctx, "guest-2"))
}

func TestQuizServiceResolveAnswersCopiesInput(t *testing.T) {
	ctx := context.Background()
	svc := NewQuizService(repositories.NewMemoryQuizResultStore(), nil)

	in := models.QuizAnswers{models.QuestionOlfactoryFamily: "woody"}
	_, err := svc.ResolveAnswers(ctx, "guest-3", in)
	require.NoError(t, err)
	in[models.QuestionOlfactoryFamily] = "fresh"

	res, err := svc.Result(ctx, "guest-3")
	require.NoError(t, err)
	assert.Equal(t, "woody", res.Answers[models.QuestionOlfactoryFamily])
}

func TestQuizServiceUnknownSession(t *testing.T) {
	svc := NewQuizService(repositories.NewMemoryQuizResultStore(), nil)
	ctx := context.Background()

	_, err := svc.State(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Advance(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuizServiceGeneratesSession(t *testing.T) {
	svc := NewQuizService(repositories.NewMemoryQuizResultStore(), nil)

	st := svc.Start(context.Background(), "")

	assert.NotEmpty(t, st.SessionID)
}

func TestResolveAnswers(t *testing.T) {
	svc := NewQuizService(repositories.NewMemoryQuizResultStore(), nil)
	ctx := context.Background()

	res, err := svc.ResolveAnswers(ctx, "s-9", answers("daily", "spring", "energetic", "subtle", "citrus", "fruity"))
	require.NoError(t, err)
	assert.Equal(t, "Fresh & Citrus", res.Recommendation.Profile)

	stored, err := svc.Result(ctx, "s-9")
	require.NoError(t, err)
	assert.Equal(t, res.Recommendation, stored.Recommendation)

	_, err = svc.ResolveAnswers(ctx, "", models.QuizAnswers{models.QuestionOccasion: "brunch"})
	assert.ErrorIs(t, err, ErrValidation)
}
