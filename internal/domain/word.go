package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordTextEmpty is returned when a word's lemma text is empty.
	ErrWordTextEmpty = errors.New("word text cannot be empty")
)

// Word is a canonical dictionary entry (a lemma). Exchange holds a compact
// encoding of the lemma's inflected surface forms as slash-delimited
// code:form pairs, e.g. "p:ran/d:run/i:running/3:runs" for "run". The codes
// are grammatical slots (past tense, past participle, present participle,
// third person singular, plural, ...) and are opaque to this service; only
// the forms matter for matching dictation tokens back to a lemma.
type Word struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Exchange  string    `json:"exchange,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExchangeForm is one grammatical-slot/surface-form pair parsed out of an
// exchange encoding.
type ExchangeForm struct {
	Code string `json:"code"`
	Form string `json:"form"`
}

// ParseExchange decodes a slash-delimited exchange encoding into its
// code:form pairs. Malformed fragments (no colon, empty code or form) are
// skipped rather than rejected; dictionary data is messy and a partially
// usable encoding is still useful.
func ParseExchange(encoded string) []ExchangeForm {
	if encoded == "" {
		return nil
	}

	var forms []ExchangeForm
	for _, pair := range strings.Split(encoded, "/") {
		code, form, ok := strings.Cut(pair, ":")
		if !ok || code == "" || form == "" {
			continue
		}
		forms = append(forms, ExchangeForm{Code: code, Form: form})
	}
	return forms
}

// SurfaceForms returns every spelling under which this lemma can appear in
// running text: the lemma itself plus all exchange forms, lowercased.
func (w *Word) SurfaceForms() []string {
	return surfaceForms(w.Text, w.Exchange)
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if w.Text == "" {
		return ErrWordTextEmpty
	}

	return nil
}

// WordOccurrence is the edge between a sentence and a word in its
// vocabulary, established at ingestion time. It carries enough of the word
// row (lemma text and exchange encoding) to resolve surface forms without a
// second query.
type WordOccurrence struct {
	WordID   uuid.UUID `json:"word_id"`
	Lemma    string    `json:"lemma"`
	Exchange string    `json:"exchange,omitempty"`
}

// SurfaceForms returns the lowercased surface-form set of the occurrence's
// word: the lemma plus all exchange forms.
func (o *WordOccurrence) SurfaceForms() []string {
	return surfaceForms(o.Lemma, o.Exchange)
}

func surfaceForms(lemma, exchange string) []string {
	forms := []string{strings.ToLower(lemma)}
	for _, ef := range ParseExchange(exchange) {
		forms = append(forms, strings.ToLower(ef.Form))
	}
	return forms
}
