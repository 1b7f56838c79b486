// internal/service/flashcard_service_test.go
package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vocab_explorer/internal/config"
	"vocab_explorer/internal/model"
	"vocab_explorer/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.FlashcardLimit = 20
	return cfg
}

// --- Test calculateNextReview ---
func Test_calculateNextReview(t *testing.T) {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name         string
		current      model.ReviewLevel
		isCorrect    bool
		wantLevel    model.ReviewLevel
		wantMastered bool
		wantAfter    int // 復習日までのおおよその日数
	}{
		{
			name:      "正常系: レベル1で正解するとレベル2 (3日後)",
			current:   model.Level1,
			isCorrect: true,
			wantLevel: model.Level2,
			wantAfter: 3,
		},
		{
			name:      "正常系: レベル2で正解するとレベル3 (7日後)",
			current:   model.Level2,
			isCorrect: true,
			wantLevel: model.Level3,
			wantAfter: 7,
		},
		{
			name:         "正常系: レベル3で正解すると習得",
			current:      model.Level3,
			isCorrect:    true,
			wantLevel:    model.Level3,
			wantMastered: true,
			wantAfter:    14,
		},
		{
			name:      "正常系: 不正解はレベル1に戻る",
			current:   model.Level3,
			isCorrect: false,
			wantLevel: model.Level1,
			wantAfter: -1,
		},
		{
			name:      "異常系: 不正なレベルはレベル1にリセット",
			current:   model.ReviewLevel(99),
			isCorrect: true,
			wantLevel: model.Level1,
			wantAfter: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, next, mastered := calculateNextReview(tt.current, tt.isCorrect, testLogger)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantMastered, mastered)
			assert.WithinDuration(t, time.Now().AddDate(0, 0, tt.wantAfter), next, time.Second*5)
		})
	}
}

// --- Test GetFlashcards ---
func Test_flashcardService_GetFlashcards(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("正常系: 期限が来た単語をカード形式で返す", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)

		terms := []*model.Term{
			{
				TermID:      uuid.New(),
				TenantID:    tenantID,
				Text:        "ambiguous",
				Meanings:    testMeanings(),
				ReviewLevel: model.Level2,
				Details: &model.TermDetails{
					Examples: []string{"The contract was ambiguous in places."},
				},
			},
			{
				TermID:      uuid.New(),
				TenantID:    tenantID,
				Text:        "resilient",
				Meanings:    testMeanings(),
				ReviewLevel: model.Level1,
			},
		}
		termRepo.On("FindReviewable", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.AnythingOfType("time.Time"), 20).
			Return(terms, nil).Once()

		svc := NewFlashcardService(db, termRepo, resultRepo, testConfig())
		cards, err := svc.GetFlashcards(ctx, tenantID)

		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "ambiguous", cards[0].Text)
		assert.Equal(t, "The contract was ambiguous in places.", cards[0].Example)
		assert.Equal(t, 2, cards[0].Level)
		assert.Empty(t, cards[1].Example)
		termRepo.AssertExpectations(t)
	})
}

// --- Test GetFlashcardsCount ---
func Test_flashcardService_GetFlashcardsCount(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("正常系: COUNTクエリの結果をそのまま返す", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)

		// 件数は行のフェッチではなくCOUNTで取得する
		termRepo.On("CountReviewable", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, mock.AnythingOfType("time.Time")).
			Return(int64(12345), nil).Once()

		svc := NewFlashcardService(db, termRepo, resultRepo, testConfig())
		count, err := svc.GetFlashcardsCount(ctx, tenantID)

		require.NoError(t, err)
		assert.Equal(t, int64(12345), count)
		termRepo.AssertNotCalled(t, "FindReviewable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		termRepo.AssertExpectations(t)
	})
}

// --- Test SubmitResult ---
func Test_flashcardService_SubmitResult(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	termID := uuid.New()

	tests := []struct {
		name       string
		term       *model.Term
		isCorrect  bool
		wantLevel  model.ReviewLevel
		wantStatus model.TermStatus
		wantScore  int
	}{
		{
			name: "正常系: レベル1で正解",
			term: &model.Term{
				TermID: termID, TenantID: tenantID, Text: "ambiguous",
				Status: model.StatusLearning, ReviewLevel: model.Level1,
			},
			isCorrect:  true,
			wantLevel:  model.Level2,
			wantStatus: model.StatusLearning,
			wantScore:  1,
		},
		{
			name: "正常系: レベル3で正解するとmastered",
			term: &model.Term{
				TermID: termID, TenantID: tenantID, Text: "ambiguous",
				Status: model.StatusLearning, ReviewLevel: model.Level3,
			},
			isCorrect:  true,
			wantLevel:  model.Level3,
			wantStatus: model.StatusMastered,
			wantScore:  1,
		},
		{
			name: "正常系: 不正解はレベル1・learningに戻る",
			term: &model.Term{
				TermID: termID, TenantID: tenantID, Text: "ambiguous",
				Status: model.StatusLearning, ReviewLevel: model.Level2,
			},
			isCorrect:  false,
			wantLevel:  model.Level1,
			wantStatus: model.StatusLearning,
			wantScore:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB()
			termRepo := new(mocks.TermRepository)
			resultRepo := new(mocks.ResultRepository)

			termRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, termID).
				Return(tt.term, nil).Once()
			termRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), tt.term).
				Run(func(args mock.Arguments) {
					term := args.Get(2).(*model.Term)
					assert.Equal(t, tt.wantLevel, term.ReviewLevel)
					assert.Equal(t, tt.wantStatus, term.Status)
					require.NotNil(t, term.LastReviewedAt)
					if tt.wantStatus == model.StatusMastered {
						assert.NotNil(t, term.MasteredAt)
					} else {
						assert.Nil(t, term.MasteredAt)
					}
				}).Return(nil).Once()
			resultRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizResult")).
				Run(func(args mock.Arguments) {
					result := args.Get(2).(*model.QuizResult)
					assert.Equal(t, model.ActivityFlashcards, result.Activity)
					assert.Equal(t, tt.wantScore, result.Score)
					assert.Equal(t, 1, result.Total)
				}).Return(nil).Once()

			svc := NewFlashcardService(db, termRepo, resultRepo, testConfig())
			err := svc.SubmitResult(ctx, tenantID, termID, tt.isCorrect)

			require.NoError(t, err)
			termRepo.AssertExpectations(t)
			resultRepo.AssertExpectations(t)
		})
	}

	t.Run("異常系: 単語が存在しない", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)

		termRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, termID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewFlashcardService(db, termRepo, resultRepo, testConfig())
		err := svc.SubmitResult(ctx, tenantID, termID, true)

		assert.ErrorIs(t, err, model.ErrNotFound)
		termRepo.AssertExpectations(t)
	})
}
