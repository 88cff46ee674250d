package api

import (
	"log/slog"
	"net/http"

	"github.com/echolearn/echo-api/internal/api/shared"
	"github.com/echolearn/echo-api/internal/dictation"
	"github.com/echolearn/echo-api/internal/platform/logger"
	"github.com/echolearn/echo-api/internal/redact"
	"github.com/echolearn/echo-api/internal/service/review"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DictationRequest represents the request body for a dictation submission.
// An empty text is a valid attempt (it scores zero), so only the duration
// is constrained.
type DictationRequest struct {
	Text     string `json:"text"`
	Duration int    `json:"duration" validate:"gte=0"`
}

// DictationResponse represents the graded result returned to the client.
type DictationResponse struct {
	Score  int                 `json:"score"`
	Diff   []dictation.Segment `json:"diff"`
	Target string              `json:"target"`
}

// DictationHandler handles dictation submission and word tracking requests.
type DictationHandler struct {
	dictationService review.DictationService
	logger           *slog.Logger
}

// NewDictationHandler creates a new DictationHandler
func NewDictationHandler(
	dictationService review.DictationService,
	logger *slog.Logger,
) *DictationHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DictationHandler")
	}

	return &DictationHandler{
		dictationService: dictationService,
		logger:           logger.With(slog.String("component", "dictation_handler")),
	}
}

// SubmitDictation handles POST /sentences/{id}/dictation requests.
// It grades the submitted transcript against the sentence and applies the
// resulting practice and memory updates for the authenticated user.
func (h *DictationHandler) SubmitDictation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	pathSentenceID := chi.URLParam(r, "id")
	if pathSentenceID == "" {
		log.Warn("sentence ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Sentence ID is required")
		return
	}

	sentenceID, err := uuid.Parse(pathSentenceID)
	if err != nil {
		log.Warn("invalid sentence ID format", slog.String("sentence_id", pathSentenceID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid sentence ID format")
		return
	}

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req DictationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()),
			slog.String("sentence_id", sentenceID.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()),
			slog.String("sentence_id", sentenceID.String()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	result, err := h.dictationService.EvaluateDictation(
		r.Context(),
		userID,
		sentenceID,
		req.Text,
		req.Duration,
	)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to evaluate dictation"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("dictation evaluated",
		slog.String("user_id", userID.String()),
		slog.String("sentence_id", sentenceID.String()),
		slog.Int("score", result.Score))
	shared.RespondWithJSON(w, r, http.StatusOK, DictationResponse{
		Score:  result.Score,
		Diff:   result.Diff,
		Target: result.Target,
	})
}

// TrackWord handles POST /words/{id}/track requests.
// It starts spaced-repetition tracking for a word the user explicitly
// added to their vocabulary.
func (h *DictationHandler) TrackWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	pathWordID := chi.URLParam(r, "id")
	if pathWordID == "" {
		log.Warn("word ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word ID is required")
		return
	}

	wordID, err := uuid.Parse(pathWordID)
	if err != nil {
		log.Warn("invalid word ID format", slog.String("word_id", pathWordID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return
	}

	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	if err := h.dictationService.TrackWord(r.Context(), userID, wordID); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to track word"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("word tracked",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()))
	w.WriteHeader(http.StatusNoContent)
}
