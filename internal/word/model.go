// Package word manages the vocabulary words of a user.
package word

import (
	"errors"
	"time"
)

// Type is the grammatical type of a word.
type Type string

const (
	TypeFeminineNoun   Type = "nf"
	TypeMasculineNoun  Type = "nm"
	TypeEpiceneNoun    Type = "nmf"
	TypeTransitiveVerb Type = "vtr"
	TypeIntransitive   Type = "vi"
	TypeAdjective      Type = "adj"
	TypeAdverb         Type = "adv"
)

// Types lists every word type in display order.
var Types = []Type{
	TypeFeminineNoun,
	TypeMasculineNoun,
	TypeEpiceneNoun,
	TypeTransitiveVerb,
	TypeIntransitive,
	TypeAdjective,
	TypeAdverb,
}

var (
	ErrNotFound  = errors.New("word not found or access denied")
	ErrEmptyText = errors.New("text cannot be empty")
)

// Word is a vocabulary entry owned by a user in one language.
type Word struct {
	ID        int64     `db:"id" json:"id" yaml:"id"`
	OwnerID   string    `db:"owner_id" json:"ownerId" yaml:"owner_id"`
	Language  string    `db:"language" json:"language" yaml:"language"`
	Text      string    `db:"text" json:"text" yaml:"text"`
	Type      Type      `db:"type" json:"type" yaml:"type"`
	Meaning   string    `db:"meaning" json:"meaning" yaml:"meaning"`
	Tags      *string   `db:"tags" json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt" yaml:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt" yaml:"updated_at"`
}
