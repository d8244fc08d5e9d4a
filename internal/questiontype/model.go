// Package questiontype manages the question types a user practices with.
// A question type holds the data, question and answer templates that
// questiongen renders into a question.
package questiontype

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("question type not found or access denied")
	ErrEmptyName = errors.New("name cannot be empty")
)

// QuestionType is a set of templates owned by a user in one language.
type QuestionType struct {
	ID               int64     `db:"id" json:"id" yaml:"id"`
	OwnerID          string    `db:"owner_id" json:"ownerId" yaml:"owner_id"`
	Language         string    `db:"language" json:"language" yaml:"language"`
	Name             string    `db:"name" json:"name" yaml:"name"`
	DataTemplate     string    `db:"data_template" json:"dataTemplate" yaml:"data_template"`
	QuestionTemplate string    `db:"question_template" json:"questionTemplate" yaml:"question_template"`
	AnswerTemplate   string    `db:"answer_template" json:"answerTemplate" yaml:"answer_template"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt" yaml:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt" yaml:"updated_at"`
}
