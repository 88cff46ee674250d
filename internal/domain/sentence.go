package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentence-specific validation errors
var (
	// ErrSentenceIDEmpty is returned when a sentence ID is empty or nil.
	ErrSentenceIDEmpty = errors.New("sentence ID cannot be empty")

	// ErrSentenceMaterialIDEmpty is returned when a sentence's material ID is empty or nil.
	ErrSentenceMaterialIDEmpty = errors.New("sentence material ID cannot be empty")

	// ErrSentenceTextEmpty is returned when a sentence's text is empty.
	ErrSentenceTextEmpty = errors.New("sentence text cannot be empty")
)

// Sentence is a single dictation target inside a material. The original
// recognized text is immutable; users may record a corrected override in
// EditedText, which then takes precedence everywhere the sentence is used
// as a dictation target. Sentences are soft-deleted by setting TrashedAt.
type Sentence struct {
	ID         uuid.UUID  `json:"id"`
	MaterialID uuid.UUID  `json:"material_id"`
	Text       string     `json:"text"`
	EditedText *string    `json:"edited_text,omitempty"`
	TrashedAt  *time.Time `json:"trashed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// SentenceWithOwner bundles a sentence with the owner of its parent
// material, as loaded by a single store query. Ownership checks are done
// against OwnerID without loading the full material.
type SentenceWithOwner struct {
	Sentence
	OwnerID uuid.UUID `json:"owner_id"`
}

// TargetText returns the text the user is scored against: the edited
// override when one exists, the original text otherwise.
func (s *Sentence) TargetText() string {
	if s.EditedText != nil && *s.EditedText != "" {
		return *s.EditedText
	}
	return s.Text
}

// InTrash reports whether the sentence has been soft-deleted.
func (s *Sentence) InTrash() bool {
	return s.TrashedAt != nil
}

// Validate checks if the Sentence has valid data.
// Returns an error if any field fails validation.
func (s *Sentence) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSentenceIDEmpty
	}

	if s.MaterialID == uuid.Nil {
		return ErrSentenceMaterialIDEmpty
	}

	if s.Text == "" {
		return ErrSentenceTextEmpty
	}

	return nil
}
