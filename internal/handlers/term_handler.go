// internal/handlers/term_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"vocab_explorer/internal/model"
	"vocab_explorer/internal/service"
	"vocab_explorer/internal/webutil"
)

type TermHandler struct {
	service service.TermService
	logger  *slog.Logger
}

func NewTermHandler(s service.TermService, logger *slog.Logger) *TermHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TermHandler{
		service: s,
		logger:  logger,
	}
}

// LookupTerm はAIで語義を調べてライブラリに登録するハンドラ
func (h *TermHandler) LookupTerm(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "LookupTerm"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var req model.LookupTermRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	term, err := h.service.LookupTerm(r.Context(), tenantID, &req)
	if err != nil {
		logger.Warn("Error looking up term in service", slog.Any("error", err), slog.String("text", req.Text))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Term looked up successfully", slog.String("term_id", term.TermID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, term, logger)
}

// ExploreTerm は保存済み単語の詳細 (例文など) をAIで取得するハンドラ
func (h *TermHandler) ExploreTerm(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ExploreTerm"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	termID, ok := uuidParam(w, r, logger, "term_id")
	if !ok {
		return
	}

	term, err := h.service.ExploreTerm(r.Context(), tenantID, termID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Term not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error exploring term in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Term explored successfully", slog.String("term_id", term.TermID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, term, logger)
}

// PostTerm は語義を手入力で指定して単語を登録するハンドラ
func (h *TermHandler) PostTerm(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTerm"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var req model.PostTermRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	term, err := h.service.CreateTerm(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Error creating term in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Term created successfully", slog.String("term_id", term.TermID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, term, logger)
}

// GetTerms は単語一覧を取得するハンドラ。?status=learning|mastered で絞り込めます。
func (h *TermHandler) GetTerms(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTerms"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var status *model.TermStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := model.TermStatus(raw)
		if s != model.StatusLearning && s != model.StatusMastered {
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "statusの値が正しくありません。", "status", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		status = &s
	}

	terms, err := h.service.ListTerms(r.Context(), tenantID, status)
	if err != nil {
		logger.Error("Error listing terms in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if terms == nil {
		terms = []*model.Term{}
	}
	logger.Info("Terms listed successfully", slog.Int("count", len(terms)))
	webutil.RespondWithJSON(w, http.StatusOK, terms, logger)
}

// GetTerm は特定の単語を取得するハンドラ
func (h *TermHandler) GetTerm(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTerm"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	termID, ok := uuidParam(w, r, logger, "term_id")
	if !ok {
		return
	}

	term, err := h.service.GetTerm(r.Context(), tenantID, termID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Term not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting term from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, term, logger)
}

// PatchTermStatus は学習状態を手動で切り替えるハンドラ
func (h *TermHandler) PatchTermStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchTermStatus"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	termID, ok := uuidParam(w, r, logger, "term_id")
	if !ok {
		return
	}

	var req model.PatchTermStatusRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	term, err := h.service.UpdateTermStatus(r.Context(), tenantID, termID, &req)
	if err != nil {
		logger.Error("Error updating term status in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Term status updated successfully", slog.String("term_id", term.TermID.String()), slog.String("status", string(term.Status)))
	webutil.RespondWithJSON(w, http.StatusOK, term, logger)
}

// DeleteTerm は単語を削除するハンドラ
func (h *TermHandler) DeleteTerm(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTerm"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	termID, ok := uuidParam(w, r, logger, "term_id")
	if !ok {
		return
	}

	if err := h.service.DeleteTerm(r.Context(), tenantID, termID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Term not found for deletion", slog.Any("error", err))
		} else {
			logger.Error("Error deleting term in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Term deleted successfully", slog.String("term_id", termID.String()))
	w.WriteHeader(http.StatusNoContent)
}
