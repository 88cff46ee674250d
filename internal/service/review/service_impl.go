package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/echolearn/echo-api/internal/dictation"
	"github.com/echolearn/echo-api/internal/platform/logger"
	"github.com/echolearn/echo-api/internal/store"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// dictationServiceImpl implements the DictationService interface.
type dictationServiceImpl struct {
	sentences store.SentenceStore
	words     store.WordStore
	progress  store.PracticeProgressStore
	stats     store.StudyStatStore
	lifecycle *WordLifecycle
	logger    *slog.Logger

	// now is the clock used for scheduling and the daily aggregate.
	// Injected so tests can pin time.
	now func() time.Time
}

// Verify interface satisfaction at compile time.
var _ DictationService = (*dictationServiceImpl)(nil)

// NewDictationService creates a new DictationService with the given
// dependencies. Panics if any dependency is nil, as this indicates a
// programming error in the composition root.
func NewDictationService(
	sentences store.SentenceStore,
	words store.WordStore,
	progress store.PracticeProgressStore,
	stats store.StudyStatStore,
	lifecycle *WordLifecycle,
	log *slog.Logger,
) DictationService {
	if sentences == nil {
		panic("sentence store cannot be nil")
	}
	if words == nil {
		panic("word store cannot be nil")
	}
	if progress == nil {
		panic("practice progress store cannot be nil")
	}
	if stats == nil {
		panic("study stat store cannot be nil")
	}
	if lifecycle == nil {
		panic("word lifecycle cannot be nil")
	}
	if log == nil {
		panic("logger cannot be nil")
	}

	return &dictationServiceImpl{
		sentences: sentences,
		words:     words,
		progress:  progress,
		stats:     stats,
		lifecycle: lifecycle,
		logger:    log.With(slog.String("component", "dictation_service")),
		now:       time.Now,
	}
}

// EvaluateDictation implements DictationService.EvaluateDictation.
//
// Grading happens first and is the only step that can fail the request.
// Everything after it is best effort: progress, the daily aggregate, and
// the per-word memory updates each log their own failures and never block
// the response.
func (s *dictationServiceImpl) EvaluateDictation(
	ctx context.Context,
	userID uuid.UUID,
	sentenceID uuid.UUID,
	text string,
	durationSeconds int,
) (*DictationResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sentence, err := s.sentences.GetWithOwner(ctx, sentenceID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("sentence not found for dictation",
				slog.String("sentence_id", sentenceID.String()))
			return nil, ErrSentenceNotFound
		}
		log.Error("failed to retrieve sentence",
			slog.String("error", err.Error()),
			slog.String("sentence_id", sentenceID.String()))
		return nil, &ServiceError{
			Operation: "evaluate_dictation",
			Message:   "failed to retrieve sentence",
			Err:       err,
		}
	}

	if sentence.OwnerID != userID {
		log.Warn("user attempted dictation on another user's sentence",
			slog.String("user_id", userID.String()),
			slog.String("sentence_id", sentenceID.String()),
			slog.String("owner_id", sentence.OwnerID.String()))
		return nil, ErrSentenceNotOwned
	}

	if sentence.InTrash() {
		log.Debug("dictation rejected for trashed sentence",
			slog.String("sentence_id", sentenceID.String()))
		return nil, ErrSentenceInTrash
	}

	target := sentence.TargetText()
	graded := dictation.Score(target, text)
	now := s.now()

	log.Debug("dictation graded",
		slog.String("sentence_id", sentenceID.String()),
		slog.Int("score", graded.Score),
		slog.Int("missed_words", len(graded.MissedWords)))

	s.recordBookkeeping(ctx, log, userID, sentenceID, graded.Score, durationSeconds, now)
	s.updateWordMemory(ctx, log, userID, sentenceID, graded, now)

	return &DictationResult{
		Score:  graded.Score,
		Diff:   graded.Segments,
		Target: target,
	}, nil
}

// recordBookkeeping writes the practice progress row and the daily study
// aggregate. The two writes are independent, so they run concurrently and
// a failure in one never suppresses the other. Failures are logged and
// swallowed.
func (s *dictationServiceImpl) recordBookkeeping(
	ctx context.Context,
	log *slog.Logger,
	userID, sentenceID uuid.UUID,
	score, durationSeconds int,
	now time.Time,
) {
	var g errgroup.Group
	g.Go(func() error {
		if err := s.progress.RecordAttempt(ctx, userID, sentenceID, score, durationSeconds); err != nil {
			log.Error("failed to record practice attempt",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()),
				slog.String("sentence_id", sentenceID.String()))
		}
		return nil
	})
	g.Go(func() error {
		if err := s.stats.AddDuration(ctx, userID, now, durationSeconds); err != nil {
			log.Error("failed to update daily study stat",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
		}
		return nil
	})
	// Closures handle their own errors; Wait only synchronizes.
	_ = g.Wait()
}

// updateWordMemory resolves the graded words back to the sentence's
// vocabulary and applies one lifecycle transition per word: an error
// outcome for each missed word, a success outcome for each correct one.
// Any step that fails is logged and skipped so one bad word cannot stall
// the rest.
func (s *dictationServiceImpl) updateWordMemory(
	ctx context.Context,
	log *slog.Logger,
	userID, sentenceID uuid.UUID,
	graded dictation.Result,
	now time.Time,
) {
	occurrences, err := s.words.GetOccurrencesForSentence(ctx, sentenceID)
	if err != nil {
		log.Error("failed to load sentence vocabulary, skipping memory updates",
			slog.String("error", err.Error()),
			slog.String("sentence_id", sentenceID.String()))
		return
	}
	if len(occurrences) == 0 {
		return
	}

	index := buildFormIndex(occurrences)
	missedIDs := index.resolve(graded.MissedWords)
	correctIDs := index.resolve(graded.CorrectWords)

	// A word both missed and correct in one attempt counts as missed.
	missed := make(map[uuid.UUID]struct{}, len(missedIDs))
	for _, id := range missedIDs {
		missed[id] = struct{}{}
	}

	for _, id := range missedIDs {
		if err := s.lifecycle.OnError(ctx, userID, id, now); err != nil {
			log.Error("failed to apply error outcome to word",
				slog.String("error", err.Error()),
				slog.String("word_id", id.String()),
				slog.String("user_id", userID.String()))
		}
	}
	for _, id := range correctIDs {
		if _, wasMissed := missed[id]; wasMissed {
			continue
		}
		if err := s.lifecycle.OnSuccess(ctx, userID, id, now); err != nil {
			log.Error("failed to apply success outcome to word",
				slog.String("error", err.Error()),
				slog.String("word_id", id.String()),
				slog.String("user_id", userID.String()))
		}
	}
}

// TrackWord implements DictationService.TrackWord.
func (s *dictationServiceImpl) TrackWord(ctx context.Context, userID, wordID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.words.GetByID(ctx, wordID); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("word not found for tracking",
				slog.String("word_id", wordID.String()))
			return ErrWordNotFound
		}
		log.Error("failed to retrieve word",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()))
		return &ServiceError{
			Operation: "track_word",
			Message:   "failed to retrieve word",
			Err:       err,
		}
	}

	if err := s.lifecycle.Track(ctx, userID, wordID, s.now()); err != nil {
		log.Error("failed to start tracking word",
			slog.String("error", err.Error()),
			slog.String("word_id", wordID.String()),
			slog.String("user_id", userID.String()))
		return &ServiceError{
			Operation: "track_word",
			Message:   "failed to start tracking word",
			Err:       err,
		}
	}
	return nil
}
