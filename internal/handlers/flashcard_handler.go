// internal/handlers/flashcard_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_explorer/internal/model"
	"vocab_explorer/internal/service"
	"vocab_explorer/internal/webutil"
)

type FlashcardHandler struct {
	service service.FlashcardService
	logger  *slog.Logger
}

func NewFlashcardHandler(s service.FlashcardService, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FlashcardHandler{
		service: s,
		logger:  logger,
	}
}

// GetFlashcards は復習期限が来ている単語のカード一覧を返すハンドラ
func (h *FlashcardHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFlashcards"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	cards, err := h.service.GetFlashcards(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error getting flashcards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []*model.FlashcardResponse{}
	}
	logger.Info("Flashcards retrieved successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// GetFlashcardsCount は復習対象の枚数を返すハンドラ
func (h *FlashcardHandler) GetFlashcardsCount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFlashcardsCount"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}

	count, err := h.service.GetFlashcardsCount(r.Context(), tenantID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]int64{"count": count}, logger)
}

// SubmitResult は1枚分の正誤を記録するハンドラ
func (h *FlashcardHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitResult"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	termID, ok := uuidParam(w, r, logger, "term_id")
	if !ok {
		return
	}

	var req model.SubmitFlashcardResultRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.SubmitResult(r.Context(), tenantID, termID, *req.IsCorrect); err != nil {
		logger.Warn("Error submitting flashcard result in service", slog.Any("error", err), slog.String("term_id", termID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Flashcard result submitted", slog.String("term_id", termID.String()), slog.Bool("is_correct", *req.IsCorrect))
	w.WriteHeader(http.StatusNoContent)
}
