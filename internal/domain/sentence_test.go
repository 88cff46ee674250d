package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSentenceTargetText(t *testing.T) {
	t.Parallel() // Enable parallel execution

	edited := "the corrected text"
	empty := ""

	testCases := []struct {
		name     string
		sentence Sentence
		expected string
	}{
		{
			name:     "original text when no override",
			sentence: Sentence{Text: "the recognized text"},
			expected: "the recognized text",
		},
		{
			name:     "edited text takes precedence",
			sentence: Sentence{Text: "the recognized text", EditedText: &edited},
			expected: "the corrected text",
		},
		{
			name:     "empty override falls back to original",
			sentence: Sentence{Text: "the recognized text", EditedText: &empty},
			expected: "the recognized text",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.sentence.TargetText(); got != tc.expected {
				t.Errorf("TargetText() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestSentenceInTrash(t *testing.T) {
	t.Parallel()

	live := Sentence{Text: "hello"}
	if live.InTrash() {
		t.Error("sentence without TrashedAt reported as trashed")
	}

	trashedAt := time.Now()
	trashed := Sentence{Text: "hello", TrashedAt: &trashedAt}
	if !trashed.InTrash() {
		t.Error("sentence with TrashedAt not reported as trashed")
	}
}

func TestSentenceValidate(t *testing.T) {
	t.Parallel()

	valid := Sentence{ID: uuid.New(), MaterialID: uuid.New(), Text: "hello"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid sentence failed validation: %v", err)
	}

	noID := Sentence{MaterialID: uuid.New(), Text: "hello"}
	if err := noID.Validate(); err != ErrSentenceIDEmpty {
		t.Errorf("sentence without ID: err = %v, want ErrSentenceIDEmpty", err)
	}

	noMaterial := Sentence{ID: uuid.New(), Text: "hello"}
	if err := noMaterial.Validate(); err != ErrSentenceMaterialIDEmpty {
		t.Errorf("sentence without material: err = %v, want ErrSentenceMaterialIDEmpty", err)
	}

	noText := Sentence{ID: uuid.New(), MaterialID: uuid.New()}
	if err := noText.Validate(); err != ErrSentenceTextEmpty {
		t.Errorf("sentence without text: err = %v, want ErrSentenceTextEmpty", err)
	}
}
