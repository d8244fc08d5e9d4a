// Package practice generates questions from question types and grades the
// answers given to them.
package practice

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("question not found or access denied")

// Question is a generated question and, once answered, its outcome.
type Question struct {
	ID             int64      `db:"id" json:"id"`
	OwnerID        string     `db:"owner_id" json:"ownerId"`
	Language       string     `db:"language" json:"language"`
	QuestionTypeID int64      `db:"question_type_id" json:"questionTypeId"`
	Text           string     `db:"text" json:"text"`
	Expected       string     `db:"expected" json:"expected"`
	AnswerGiven    *string    `db:"answer_given" json:"answerGiven,omitempty"`
	IsCorrect      *bool      `db:"is_correct" json:"isCorrect,omitempty"`
	RespondedAt    *time.Time `db:"responded_at" json:"respondedAt,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}

// Answered reports whether an answer was recorded.
func (q Question) Answered() bool {
	return q.RespondedAt != nil
}

// GeneratedQuestion is what a learner gets back from GenerateQuestion.
type GeneratedQuestion struct {
	QuestionID int64  `json:"questionId"`
	Text       string `json:"text"`
	Expected   string `json:"expected"`
}
