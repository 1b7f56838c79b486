// internal/handlers/history_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"vocab_explorer/internal/model"
	"vocab_explorer/internal/service"
	"vocab_explorer/internal/webutil"
)

type HistoryHandler struct {
	service service.HistoryService
	logger  *slog.Logger
}

func NewHistoryHandler(s service.HistoryService, logger *slog.Logger) *HistoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryHandler{
		service: s,
		logger:  logger,
	}
}

// GetHistory は完了したセッションの成績一覧を新しい順に返すハンドラ
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHistory"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limitの値が正しくありません。", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = n
	}

	results, err := h.service.ListResults(r.Context(), tenantID, limit)
	if err != nil {
		logger.Error("Error listing history in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if results == nil {
		results = []*model.QuizResult{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, results, logger)
}

// GetStats はアクティビティ種別ごとの成績集計を返すハンドラ
func (h *HistoryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	stats, err := h.service.GetStats(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error getting history stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
