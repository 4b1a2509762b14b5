package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"valley-breezes/models"
	"valley-breezes/repositories"

	"github.com/google/uuid"
)

const maxRecommendations = 3

// Resolve maps a full answer set to at most three product ids. A curated
// combination is returned as is; otherwise the first answered fallback
// dimension decides, topped up from the default entry when it yields fewer
// than two ids. Resolve never fails.
func Resolve(answers models.QuizAnswers) models.Recommendation {
	if entry, ok := curatedRecommendations[answers.Key()]; ok {
		return models.Recommendation{
			ProductIDs: append([]string(nil), entry.ids...),
			Profile:    entry.profile,
			Lifestyle:  entry.lifestyle,
			ExactMatch: true,
		}
	}

	var rec models.Recommendation
	var ids []string
	for _, dim := range fallbackDimensions {
		if rec.Profile != "" {
			break
		}
		value, ok := answers[dim]
		if !ok || value == "" {
			continue
		}
		entry, ok := fallbackRecommendations[dim][value]
		if !ok || len(entry.ids) == 0 {
			continue
		}
		ids = append(ids, entry.ids...)
		rec.Profile = entry.profile
		rec.Lifestyle = entry.lifestyle
	}

	if len(ids) < 2 {
		ids = append(ids, defaultRecommendation.ids...)
		if rec.Profile == "" {
			rec.Profile = defaultRecommendation.profile
		}
		if rec.Lifestyle == "" {
			rec.Lifestyle = defaultRecommendation.lifestyle
		}
	}

	rec.ProductIDs = dedupe(ids, maxRecommendations)
	return rec
}

func dedupe(ids []string, limit int) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, limit)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if len(out) == limit {
			break
		}
	}
	return out
}

func questionByID(id models.QuestionID) (models.QuizQuestion, bool) {
	for _, q := range QuizQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return models.QuizQuestion{}, false
}

func validateAnswer(id models.QuestionID, value string) error {
	q, ok := questionByID(id)
	if !ok {
		return invalid("questionId", "oneof", "unknown question %q", id)
	}
	if !q.HasOption(value) {
		return invalid(string(id), "oneof", "unsupported answer %q", value)
	}
	return nil
}

// ValidateAnswers checks every given answer against the questionnaire.
// Missing answers are allowed; Resolve falls back for them.
func ValidateAnswers(answers models.QuizAnswers) error {
	for _, q := range QuizQuestions {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		if err := validateAnswer(q.ID, v); err != nil {
			return err
		}
	}
	for id := range answers {
		if _, ok := questionByID(id); !ok {
			return invalid("questionId", "oneof", "unknown question %q", id)
		}
	}
	return nil
}

// Describe returns the results-view text for each answer that has one.
func Describe(answers models.QuizAnswers) map[string]string {
	out := make(map[string]string, len(answers))
	for id, v := range answers {
		if d, ok := answerDescriptions[v]; ok {
			out[string(id)] = d
		}
	}
	return out
}

// Quiz walks the fixed question sequence. It is not safe for concurrent use;
// QuizService guards each session's quiz with its own lock.
type Quiz struct {
	index   int
	answers models.QuizAnswers
	result  *models.Recommendation
}

func NewQuiz() *Quiz {
	return &Quiz{answers: models.QuizAnswers{}}
}

// Answer records value for questionID, replacing any earlier answer.
func (q *Quiz) Answer(questionID models.QuestionID, value string) error {
	if q.Complete() {
		return ErrQuizComplete
	}
	if err := validateAnswer(questionID, value); err != nil {
		return err
	}
	q.answers[questionID] = value
	return nil
}

// Advance moves to the next question, or resolves the quiz on the last one.
// It reports whether the quiz is complete. The current question must be
// answered first.
func (q *Quiz) Advance() (bool, error) {
	if q.Complete() {
		return true, ErrQuizComplete
	}
	current := QuizQuestions[q.index]
	if _, ok := q.answers[current.ID]; !ok {
		return false, invalid(string(current.ID), "required", "question %q must be answered before advancing", current.ID)
	}
	if q.index < len(QuizQuestions)-1 {
		q.index++
		return false, nil
	}
	rec := Resolve(q.answers)
	q.result = &rec
	return true, nil
}

// Back returns to the previous question, keeping all answers.
func (q *Quiz) Back() {
	if !q.Complete() && q.index > 0 {
		q.index--
	}
}

func (q *Quiz) Reset() {
	q.index = 0
	q.answers = models.QuizAnswers{}
	q.result = nil
}

func (q *Quiz) Complete() bool {
	return q.result != nil
}

func (q *Quiz) Result() (models.Recommendation, bool) {
	if q.result == nil {
		return models.Recommendation{}, false
	}
	return *q.result, true
}

func (q *Quiz) Answers() models.QuizAnswers {
	return q.answers.Clone()
}

func (q *Quiz) State(sessionID string) models.QuizState {
	st := models.QuizState{
		SessionID:     sessionID,
		Status:        models.QuizInProgress,
		QuestionIndex: q.index,
		Answers:       q.Answers(),
	}
	if rec, ok := q.Result(); ok {
		st.Status = models.QuizComplete
		st.Result = &rec
		return st
	}
	question := QuizQuestions[q.index]
	st.Question = &question
	return st
}

type quizSession struct {
	mu   sync.Mutex
	quiz *Quiz
}

type QuizService struct {
	results repositories.QuizResultStore
	log     *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*quizSession
}

func NewQuizService(results repositories.QuizResultStore, log *slog.Logger) *QuizService {
	if log == nil {
		log = slog.Default()
	}
	return &QuizService{
		results:  results,
		log:      log,
		sessions: make(map[string]*quizSession),
	}
}

func (s *QuizService) Questions() []models.QuizQuestion {
	return QuizQuestions
}

// Start opens a quiz for sessionID, generating one when empty. An existing
// quiz for the session is reset; its stored result is kept.
func (s *QuizService) Start(ctx context.Context, sessionID string) models.QuizState {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &quizSession{quiz: NewQuiz()}
		s.sessions[sessionID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.quiz.Reset()
	return sess.quiz.State(sessionID)
}

func (s *QuizService) withSession(sessionID string, fn func(q *Quiz) error) (models.QuizState, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return models.QuizState{}, fmt.Errorf("quiz session %s: %w", sessionID, ErrNotFound)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := fn(sess.quiz); err != nil {
		return sess.quiz.State(sessionID), err
	}
	return sess.quiz.State(sessionID), nil
}

func (s *QuizService) State(ctx context.Context, sessionID string) (models.QuizState, error) {
	return s.withSession(sessionID, func(*Quiz) error { return nil })
}

func (s *QuizService) Answer(ctx context.Context, sessionID string, questionID models.QuestionID, value string) (models.QuizState, error) {
	return s.withSession(sessionID, func(q *Quiz) error {
		return q.Answer(questionID, value)
	})
}

// Advance moves the session's quiz forward. When the last question resolves,
// the result is stored for the results view.
func (s *QuizService) Advance(ctx context.Context, sessionID string) (models.QuizState, error) {
	var completed bool
	state, err := s.withSession(sessionID, func(q *Quiz) error {
		done, err := q.Advance()
		completed = done && err == nil
		return err
	})
	if err != nil || !completed {
		return state, err
	}

	if err := s.save(ctx, sessionID, state.Answers, *state.Result); err != nil {
		return state, err
	}
	return state, nil
}

func (s *QuizService) Back(ctx context.Context, sessionID string) (models.QuizState, error) {
	return s.withSession(sessionID, func(q *Quiz) error {
		q.Back()
		return nil
	})
}

// Reset discards the session's answers, like Start on an existing session.
// The last stored result stays readable until a new quiz completes.
func (s *QuizService) Reset(ctx context.Context, sessionID string) (models.QuizState, error) {
	return s.withSession(sessionID, func(q *Quiz) error {
		q.Reset()
		return nil
	})
}

// ResolveAnswers resolves a complete answer set in one call. With a session
// id the result is stored like a finished quiz.
func (s *QuizService) ResolveAnswers(ctx context.Context, sessionID string, answers models.QuizAnswers) (models.QuizResult, error) {
	if err := ValidateAnswers(answers); err != nil {
		return models.QuizResult{}, err
	}
	answers = answers.Clone()
	rec := Resolve(answers)
	result := models.QuizResult{
		SessionID:      sessionID,
		Answers:        answers,
		Descriptions:   Describe(answers),
		Recommendation: rec,
	}
	if sessionID != "" {
		if err := s.save(ctx, sessionID, answers, rec); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (s *QuizService) save(ctx context.Context, sessionID string, answers models.QuizAnswers, rec models.Recommendation) error {
	err := s.results.Save(ctx, models.QuizResult{
		SessionID:      sessionID,
		Answers:        answers,
		Descriptions:   Describe(answers),
		Recommendation: rec,
	})
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	s.log.Info("quiz completed",
		slog.String("session_id", sessionID),
		slog.String("profile", rec.Profile),
		slog.Any("product_ids", rec.ProductIDs),
		slog.Bool("exact_match", rec.ExactMatch),
	)
	return nil
}

func (s *QuizService) Result(ctx context.Context, sessionID string) (models.QuizResult, error) {
	res, err := s.results.Get(ctx, sessionID)
	if errors.Is(err, repositories.ErrQuizResultNotFound) {
		return models.QuizResult{}, fmt.Errorf("quiz result %s: %w", sessionID, ErrNotFound)
	}
	return res, err
}

// RecommendedIDs returns the stored recommendation for sessionID, or nil when
// the session has none.
func (s *QuizService) RecommendedIDs(ctx context.Context, sessionID string) []string {
	if sessionID == "" {
		return nil
	}
	res, err := s.results.Get(ctx, sessionID)
	if err != nil {
		return nil
	}
	return res.Recommendation.ProductIDs
}
