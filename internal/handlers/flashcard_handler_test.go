package handlers_test // テスト対象とは別のパッケージ名

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vocab_explorer/internal/handlers" // テスト対象
	"vocab_explorer/internal/model"

	svc_mocks "vocab_explorer/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: モックハンドラーのセットアップ ---
func setupTestFlashcardHandler(mockService *svc_mocks.FlashcardService) *handlers.FlashcardHandler {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil)) // ログ出力を抑制
	return handlers.NewFlashcardHandler(mockService, testLogger)
}

// --- ヘルパー: JSONボディの作成 ---
func newJsonRequestFlashcard(t *testing.T, method string, target string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: chi の RouteContext を設定 ---
func contextWithChiURLParamFlashcard(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func boolPtr(b bool) *bool { return &b }

// --- Test GetFlashcards ---
func TestFlashcardHandler_GetFlashcards(t *testing.T) {
	mockService := new(svc_mocks.FlashcardService)
	handler := setupTestFlashcardHandler(mockService)

	testTenantID := uuid.New()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)
	expectedCards := []*model.FlashcardResponse{
		{TermID: uuid.New(), Text: "diligent", Definition: "working hard", Level: 1},
		{TermID: uuid.New(), Text: "candid", Definition: "honest and direct", Level: 2},
	}

	tests := []struct {
		name           string
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "正常系: 複数件取得",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetFlashcards", mock.Anything, testTenantID).Return(expectedCards, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"term_id":"`, // 配列で始まる
		},
		{
			name:         "正常系: 0件取得",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetFlashcards", mock.Anything, testTenantID).Return([]*model.FlashcardResponse{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`, // 空の配列
		},
		{
			name:         "正常系: サービスがnilを返す",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetFlashcards", mock.Anything, testTenantID).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`, // ハンドラで空配列に変換
		},
		{
			name:           "異常系: 認証エラー",
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"code":"UNAUTHORIZED"`,
		},
		{
			name:         "異常系: サービスエラー",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetFlashcards", mock.Anything, testTenantID).Return(nil, errors.New("internal service error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"code":"INTERNAL_SERVER_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequestFlashcard(t, http.MethodGet, "/flashcards", nil)
			req = req.WithContext(tt.setupContext())

			rr := httptest.NewRecorder()
			handler.GetFlashcards(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test GetFlashcardsCount ---
func TestFlashcardHandler_GetFlashcardsCount(t *testing.T) {
	mockService := new(svc_mocks.FlashcardService)
	handler := setupTestFlashcardHandler(mockService)

	testTenantID := uuid.New()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	tests := []struct {
		name           string
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "正常系: 件数を返す",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetFlashcardsCount", mock.Anything, testTenantID).Return(int64(7), nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"count":7}`,
		},
		{
			name:           "異常系: 認証エラー",
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"code":"UNAUTHORIZED"`,
		},
		{
			name:         "異常系: サービスエラー",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetFlashcardsCount", mock.Anything, testTenantID).Return(int64(0), errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"code":"INTERNAL_SERVER_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequestFlashcard(t, http.MethodGet, "/flashcards/count", nil)
			req = req.WithContext(tt.setupContext())

			rr := httptest.NewRecorder()
			handler.GetFlashcardsCount(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test SubmitResult ---
func TestFlashcardHandler_SubmitResult(t *testing.T) {
	mockService := new(svc_mocks.FlashcardService)
	handler := setupTestFlashcardHandler(mockService)

	testTenantID := uuid.New()
	testTermID := uuid.New()
	validTermIDStr := testTermID.String()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	tests := []struct {
		name           string
		termIDParam    string
		reqBody        interface{}
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string // エラー時のメッセージ
	}{
		{
			name:         "正常系: 正解を送信",
			termIDParam:  validTermIDStr,
			reqBody:      &model.SubmitFlashcardResultRequest{IsCorrect: boolPtr(true)},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("SubmitResult", mock.Anything, testTenantID, testTermID, true).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent, // 成功時は 204
			expectedBody:   "",
		},
		{
			name:         "正常系: 不正解を送信",
			termIDParam:  validTermIDStr,
			reqBody:      &model.SubmitFlashcardResultRequest{IsCorrect: boolPtr(false)},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("SubmitResult", mock.Anything, testTenantID, testTermID, false).Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
			expectedBody:   "",
		},
		{
			name:           "異常系: 認証エラー",
			termIDParam:    validTermIDStr,
			reqBody:        &model.SubmitFlashcardResultRequest{IsCorrect: boolPtr(true)},
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"code":"UNAUTHORIZED"`,
		},
		{
			name:           "異常系: 不正なTermID形式",
			termIDParam:    "invalid-uuid",
			reqBody:        &model.SubmitFlashcardResultRequest{IsCorrect: boolPtr(true)},
			setupContext:   func() context.Context { return ctxWithTenant },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"INVALID_URL_PARAM"`,
		},
		{
			name:           "異常系: 不正なリクエストボディ (JSON)",
			termIDParam:    validTermIDStr,
			reqBody:        `{"is_correct":`, // 不正なJSON
			setupContext:   func() context.Context { return ctxWithTenant },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"INVALID_REQUEST_BODY"`,
		},
		{
			name:           "異常系: is_correct 未指定",
			termIDParam:    validTermIDStr,
			reqBody:        `{}`,
			setupContext:   func() context.Context { return ctxWithTenant },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VALIDATION_ERROR"`,
		},
		{
			name:         "異常系: サービスエラー (NotFound)",
			termIDParam:  validTermIDStr,
			reqBody:      &model.SubmitFlashcardResultRequest{IsCorrect: boolPtr(true)},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				appErr := model.NewAppError("NOT_FOUND", "対象の単語が見つかりません。", "", model.ErrNotFound)
				mockService.On("SubmitResult", mock.Anything, testTenantID, testTermID, true).Return(appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"code":"NOT_FOUND"`,
		},
		{
			name:         "異常系: サービスエラー (Internal)",
			termIDParam:  validTermIDStr,
			reqBody:      &model.SubmitFlashcardResultRequest{IsCorrect: boolPtr(false)},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("SubmitResult", mock.Anything, testTenantID, testTermID, false).Return(errors.New("internal service error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"code":"INTERNAL_SERVER_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			baseCtx := tt.setupContext()
			chiCtx := contextWithChiURLParamFlashcard(baseCtx, "term_id", tt.termIDParam)

			req := newJsonRequestFlashcard(t, http.MethodPost, "/flashcards/"+tt.termIDParam+"/result", tt.reqBody)
			req = req.WithContext(chiCtx)

			rr := httptest.NewRecorder()
			handler.SubmitResult(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			} else {
				assert.Empty(t, rr.Body.String()) // 204 No Content はボディ空
			}

			mockService.AssertExpectations(t)
		})
	}
}
