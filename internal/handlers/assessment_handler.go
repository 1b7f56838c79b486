// internal/handlers/assessment_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vocab_explorer/internal/model"
	"vocab_explorer/internal/service"
	"vocab_explorer/internal/webutil"
)

type AssessmentHandler struct {
	service service.AssessmentService
	logger  *slog.Logger
}

func NewAssessmentHandler(s service.AssessmentService, logger *slog.Logger) *AssessmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssessmentHandler{
		service: s,
		logger:  logger,
	}
}

// PostAssessment は評価セッションを開始するハンドラ。
// term_ids を省略すると学習中の全単語から出題します。
func (h *AssessmentHandler) PostAssessment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAssessment"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	req := &model.PostAssessmentRequest{}
	// ボディ省略可 (全単語から出題)
	if r.ContentLength > 0 {
		if !decodeAndValidate(w, r, logger, req) {
			return
		}
	}

	resp, err := h.service.StartAssessment(r.Context(), tenantID, req)
	if err != nil {
		logger.Warn("Error starting assessment in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assessment started", slog.String("session_id", resp.SessionID.String()), slog.Int("questions", len(resp.Questions)))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// SubmitAnswers は評価の解答を一括で受け取り採点するハンドラ
func (h *AssessmentHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswers"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	var req model.SubmitAnswersRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	result, err := h.service.SubmitAssessment(r.Context(), tenantID, sessionID, &req)
	if err != nil {
		logger.Warn("Error submitting assessment in service", slog.Any("error", err), slog.String("session_id", sessionID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Assessment submitted", slog.String("session_id", sessionID.String()), slog.Int("score", result.Score), slog.Int("total", result.Total))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// Redeem は間違えた単語だけで再挑戦を開始するハンドラ
func (h *AssessmentHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Redeem"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	resp, err := h.service.RedeemAssessment(r.Context(), tenantID, sessionID)
	if err != nil {
		logger.Warn("Error starting redeem run in service", slog.Any("error", err), slog.String("session_id", sessionID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Redeem run started", slog.String("session_id", sessionID.String()), slog.Int("questions", len(resp.Questions)))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// DeleteSession はセッションを途中終了するハンドラ。冪等です。
func (h *AssessmentHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSession"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}

	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	if err := h.service.CancelSession(r.Context(), tenantID, sessionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PostQuiz は4択のみのクイズセッションを開始するハンドラ
func (h *AssessmentHandler) PostQuiz(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuiz"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	req := &model.PostAssessmentRequest{}
	if r.ContentLength > 0 {
		if !decodeAndValidate(w, r, logger, req) {
			return
		}
	}

	resp, err := h.service.StartQuiz(r.Context(), tenantID, req)
	if err != nil {
		logger.Warn("Error starting quiz in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz started", slog.String("session_id", resp.SessionID.String()), slog.Int("questions", len(resp.Questions)))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// PostQuizAnswer はクイズの1問分の解答を採点して次へ進めるハンドラ
func (h *AssessmentHandler) PostQuizAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostQuizAnswer"))

	tenantID, ok := tenantFromContext(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	sessionID, ok := uuidParam(w, r, logger, "session_id")
	if !ok {
		return
	}

	var req model.SubmitQuizAnswerRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.SubmitQuizAnswer(r.Context(), tenantID, sessionID, &req)
	if err != nil {
		logger.Warn("Error submitting quiz answer in service", slog.Any("error", err), slog.String("session_id", sessionID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
