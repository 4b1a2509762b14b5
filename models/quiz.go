package models

import (
	"maps"
	"slices"
)

type QuestionID string

const (
	QuestionOccasion        QuestionID = "occasion"
	QuestionSeason          QuestionID = "season"
	QuestionPersonality     QuestionID = "personality"
	QuestionIntensity       QuestionID = "intensity"
	QuestionOlfactoryFamily QuestionID = "olfactoryFamily"
	QuestionNotesPreference QuestionID = "notesPreference"
)

type QuizOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type QuizQuestion struct {
	ID       QuestionID   `json:"id"`
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
}

func (q QuizQuestion) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// QuizAnswers maps each question to the chosen option value. At most one
// answer per question.
type QuizAnswers map[QuestionID]string

func (a QuizAnswers) Clone() QuizAnswers {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

// QuizKey is the composite key of one full answer set, in question order.
type QuizKey struct {
	Occasion        string
	Season          string
	Personality     string
	Intensity       string
	OlfactoryFamily string
	NotesPreference string
}

func (a QuizAnswers) Key() QuizKey {
	return QuizKey{
		Occasion:        a[QuestionOccasion],
		Season:          a[QuestionSeason],
		Personality:     a[QuestionPersonality],
		Intensity:       a[QuestionIntensity],
		OlfactoryFamily: a[QuestionOlfactoryFamily],
		NotesPreference: a[QuestionNotesPreference],
	}
}

type Recommendation struct {
	ProductIDs []string `json:"productIds"`
	Profile    string   `json:"profile"`
	Lifestyle  string   `json:"lifestyle"`
	ExactMatch bool     `json:"exactMatch"`
}

// QuizResult is what the results view reads back after a quiz completes.
type QuizResult struct {
	SessionID      string            `json:"sessionId"`
	Answers        QuizAnswers       `json:"answers"`
	Descriptions   map[string]string `json:"descriptions,omitempty"`
	Recommendation Recommendation    `json:"recommendation"`
}

func (r QuizResult) Clone() QuizResult {
	r.Answers = r.Answers.Clone()
	r.Descriptions = maps.Clone(r.Descriptions)
	r.Recommendation.ProductIDs = slices.Clone(r.Recommendation.ProductIDs)
	return r
}

type QuizStatus string

const (
	QuizInProgress QuizStatus = "in_progress"
	QuizComplete   QuizStatus = "complete"
)

type QuizState struct {
	SessionID     string          `json:"sessionId"`
	Status        QuizStatus      `json:"status"`
	QuestionIndex int             `json:"questionIndex"`
	Question      *QuizQuestion   `json:"question,omitempty"`
	Answers       QuizAnswers     `json:"answers"`
	Result        *Recommendation `json:"result,omitempty"`
}
