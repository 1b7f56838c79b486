// internal/service/term_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	clientmocks "vocab_explorer/internal/client/mocks"
	"vocab_explorer/internal/model"
	"vocab_explorer/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testMeanings() []model.Meaning {
	return []model.Meaning{
		{PartOfSpeech: "adjective", Definition: "unclear or open to more than one interpretation"},
	}
}

// --- Test LookupTerm ---
func Test_termService_LookupTerm(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	tests := []struct {
		name      string
		req       *model.LookupTermRequest
		setupMock func(termRepo *mocks.TermRepository, dict *clientmocks.DictionaryClient)
		wantErr   error
		wantTerm  bool
	}{
		{
			name: "正常系: 新規単語の登録成功",
			req:  &model.LookupTermRequest{Text: "Ambiguous"},
			setupMock: func(termRepo *mocks.TermRepository, dict *clientmocks.DictionaryClient) {
				dict.On("Lookup", ctx, "Ambiguous").Return(testMeanings(), nil).Once()
				termRepo.On("FindByTextKey", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "ambiguous").
					Return(nil, model.ErrNotFound).Once()
				termRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Term")).
					Run(func(args mock.Arguments) {
						term := args.Get(2).(*model.Term)
						assert.Equal(t, tenantID, term.TenantID)
						assert.Equal(t, "Ambiguous", term.Text)
						assert.Equal(t, "ambiguous", term.TextKey)
						assert.Equal(t, model.StatusLearning, term.Status)
						assert.Equal(t, model.Level1, term.ReviewLevel)
						assert.WithinDuration(t, time.Now().AddDate(0, 0, 1), term.NextReviewDate, time.Second*5)
					}).Return(nil).Once()
			},
			wantErr:  nil,
			wantTerm: true,
		},
		{
			name: "正常系: 既存単語は語義だけ更新される",
			req:  &model.LookupTermRequest{Text: "ambiguous"},
			setupMock: func(termRepo *mocks.TermRepository, dict *clientmocks.DictionaryClient) {
				dict.On("Lookup", ctx, "ambiguous").Return(testMeanings(), nil).Once()
				existing := &model.Term{
					TermID:   uuid.New(),
					TenantID: tenantID,
					Text:     "ambiguous",
					TextKey:  "ambiguous",
					Meanings: []model.Meaning{{PartOfSpeech: "adjective", Definition: "old definition"}},
				}
				termRepo.On("FindByTextKey", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "ambiguous").
					Return(existing, nil).Once()
				termRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), existing).
					Run(func(args mock.Arguments) {
						term := args.Get(2).(*model.Term)
						assert.Equal(t, testMeanings(), term.Meanings)
					}).Return(nil).Once()
			},
			wantErr:  nil,
			wantTerm: true,
		},
		{
			name: "異常系: AI問い合わせ失敗時はDBに触らない",
			req:  &model.LookupTermRequest{Text: "ambiguous"},
			setupMock: func(termRepo *mocks.TermRepository, dict *clientmocks.DictionaryClient) {
				dict.On("Lookup", ctx, "ambiguous").Return(nil, model.ErrUpstream).Once()
				// termRepoは呼ばれないはず
			},
			wantErr:  model.ErrUpstream,
			wantTerm: false,
		},
		{
			name: "異常系: 空白のみの入力",
			req:  &model.LookupTermRequest{Text: "   "},
			setupMock: func(termRepo *mocks.TermRepository, dict *clientmocks.DictionaryClient) {
				// どちらも呼ばれないはず
			},
			wantErr:  model.ErrInvalidInput,
			wantTerm: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB()
			termRepo := new(mocks.TermRepository)
			dict := new(clientmocks.DictionaryClient)
			tt.setupMock(termRepo, dict)

			termService := NewTermService(db, termRepo, dict)
			term, err := termService.LookupTerm(ctx, tenantID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.wantTerm {
				require.NotNil(t, term)
				assert.Equal(t, testMeanings(), term.Meanings)
			} else {
				assert.Nil(t, term)
			}

			termRepo.AssertExpectations(t)
			dict.AssertExpectations(t)
		})
	}
}

// --- Test CreateTerm ---
func Test_termService_CreateTerm(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	tests := []struct {
		name      string
		req       *model.PostTermRequest
		setupMock func(termRepo *mocks.TermRepository)
		wantErr   error
	}{
		{
			name: "正常系: 手動登録成功",
			req:  &model.PostTermRequest{Text: "resilient", Meanings: testMeanings()},
			setupMock: func(termRepo *mocks.TermRepository) {
				termRepo.On("FindByTextKey", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "resilient").
					Return(nil, model.ErrNotFound).Once()
				termRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Term")).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 同じ単語が既に存在",
			req:  &model.PostTermRequest{Text: "Resilient", Meanings: testMeanings()},
			setupMock: func(termRepo *mocks.TermRepository) {
				termRepo.On("FindByTextKey", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, "resilient").
					Return(&model.Term{TermID: uuid.New(), Text: "resilient"}, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 語義が空",
			req:  &model.PostTermRequest{Text: "resilient"},
			setupMock: func(termRepo *mocks.TermRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB()
			termRepo := new(mocks.TermRepository)
			tt.setupMock(termRepo)

			termService := NewTermService(db, termRepo, new(clientmocks.DictionaryClient))
			term, err := termService.CreateTerm(ctx, tenantID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, term)
			} else {
				require.NoError(t, err)
				require.NotNil(t, term)
			}

			termRepo.AssertExpectations(t)
		})
	}
}

// --- Test ExploreTerm ---
func Test_termService_ExploreTerm(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	termID := uuid.New()

	details := &model.TermDetails{
		Examples:     []string{"The contract was ambiguous in places."},
		Collocations: []string{"deliberately ambiguous"},
		Synonyms:     []string{"vague"},
		UsageNote:    "Often used about wording or instructions.",
	}

	t.Run("正常系: 詳細を取得して保存する", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		dict := new(clientmocks.DictionaryClient)

		stored := &model.Term{
			TermID:   termID,
			TenantID: tenantID,
			Text:     "ambiguous",
			TextKey:  "ambiguous",
			Meanings: testMeanings(),
		}
		termRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, termID).
			Return(stored, nil).Once()
		dict.On("Explore", ctx, "ambiguous", testMeanings()).Return(details, nil).Once()
		termRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), stored).Return(nil).Once()

		termService := NewTermService(db, termRepo, dict)
		term, err := termService.ExploreTerm(ctx, tenantID, termID)

		require.NoError(t, err)
		require.NotNil(t, term)
		assert.Equal(t, details, term.Details)
		termRepo.AssertExpectations(t)
		dict.AssertExpectations(t)
	})

	t.Run("異常系: 単語が存在しない", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		dict := new(clientmocks.DictionaryClient)

		termRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, termID).
			Return(nil, model.ErrNotFound).Once()

		termService := NewTermService(db, termRepo, dict)
		_, err := termService.ExploreTerm(ctx, tenantID, termID)

		assert.True(t, errors.Is(err, model.ErrNotFound))
		termRepo.AssertExpectations(t)
	})
}

// --- Test UpdateTermStatus ---
func Test_termService_UpdateTermStatus(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	termID := uuid.New()

	t.Run("正常系: masteredへの切り替えで習得日時が入る", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)

		stored := &model.Term{
			TermID:      termID,
			TenantID:    tenantID,
			Text:        "ambiguous",
			Status:      model.StatusLearning,
			ReviewLevel: model.Level2,
		}
		termRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, termID).
			Return(stored, nil).Once()
		termRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), stored).
			Run(func(args mock.Arguments) {
				term := args.Get(2).(*model.Term)
				assert.Equal(t, model.StatusMastered, term.Status)
				require.NotNil(t, term.MasteredAt)
			}).Return(nil).Once()

		termService := NewTermService(db, termRepo, new(clientmocks.DictionaryClient))
		term, err := termService.UpdateTermStatus(ctx, tenantID, termID, &model.PatchTermStatusRequest{Status: model.StatusMastered})

		require.NoError(t, err)
		assert.Equal(t, model.StatusMastered, term.Status)
		termRepo.AssertExpectations(t)
	})

	t.Run("正常系: learningに戻すとレベル1から再開", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)

		mastered := time.Now()
		stored := &model.Term{
			TermID:      termID,
			TenantID:    tenantID,
			Text:        "ambiguous",
			Status:      model.StatusMastered,
			ReviewLevel: model.Level3,
			MasteredAt:  &mastered,
		}
		termRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, termID).
			Return(stored, nil).Once()
		termRepo.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), stored).Return(nil).Once()

		termService := NewTermService(db, termRepo, new(clientmocks.DictionaryClient))
		term, err := termService.UpdateTermStatus(ctx, tenantID, termID, &model.PatchTermStatusRequest{Status: model.StatusLearning})

		require.NoError(t, err)
		assert.Equal(t, model.StatusLearning, term.Status)
		assert.Equal(t, model.Level1, term.ReviewLevel)
		assert.Nil(t, term.MasteredAt)
		termRepo.AssertExpectations(t)
	})

	t.Run("正常系: 同じ状態への変更はno-op", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)

		stored := &model.Term{
			TermID:   termID,
			TenantID: tenantID,
			Status:   model.StatusLearning,
		}
		termRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, termID).
			Return(stored, nil).Once()
		// Saveは呼ばれないはず

		termService := NewTermService(db, termRepo, new(clientmocks.DictionaryClient))
		term, err := termService.UpdateTermStatus(ctx, tenantID, termID, &model.PatchTermStatusRequest{Status: model.StatusLearning})

		require.NoError(t, err)
		assert.Equal(t, model.StatusLearning, term.Status)
		termRepo.AssertExpectations(t)
	})
}
