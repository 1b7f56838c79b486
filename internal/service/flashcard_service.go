package service

import (
	"context"
	"log/slog"
	"time"

	"vocab_explorer/internal/config"
	"vocab_explorer/internal/middleware"
	"vocab_explorer/internal/model"
	"vocab_explorer/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardService interface {
	GetFlashcards(ctx context.Context, tenantID uuid.UUID) ([]*model.FlashcardResponse, error)
	GetFlashcardsCount(ctx context.Context, tenantID uuid.UUID) (int64, error)
	SubmitResult(ctx context.Context, tenantID, termID uuid.UUID, isCorrect bool) error
}

type flashcardService struct {
	db         *gorm.DB
	termRepo   repository.TermRepository
	resultRepo repository.ResultRepository
	cfg        *config.Config
}

func NewFlashcardService(db *gorm.DB, termRepo repository.TermRepository, resultRepo repository.ResultRepository, cfg *config.Config) FlashcardService {
	return &flashcardService{
		db:         db,
		termRepo:   termRepo,
		resultRepo: resultRepo,
		cfg:        cfg,
	}
}

func (s *flashcardService) GetFlashcards(ctx context.Context, tenantID uuid.UUID) ([]*model.FlashcardResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	terms, err := s.termRepo.FindReviewable(ctx, s.db, tenantID, time.Now(), s.cfg.App.FlashcardLimit)
	if err != nil {
		logger.Error("Failed to find reviewable terms from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習単語の取得に失敗しました。", "", err)
	}

	responses := make([]*model.FlashcardResponse, 0, len(terms))
	for _, t := range terms {
		responses = append(responses, &model.FlashcardResponse{
			TermID:     t.TermID,
			Text:       t.Text,
			Definition: t.FirstDefinition(),
			Example:    t.FirstExample(),
			Level:      int(t.ReviewLevel),
		})
	}

	logger.Info("Successfully retrieved flashcards", "count", len(responses))
	return responses, nil
}

func (s *flashcardService) GetFlashcardsCount(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	count, err := s.termRepo.CountReviewable(ctx, s.db, tenantID, time.Now())
	if err != nil {
		logger.Error("Failed to count reviewable terms", "error", err)
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "単語数の取得に失敗しました。", "", err)
	}

	return count, nil
}

// SubmitResult は1枚分の正誤を適用します。
// 正解でレベルが上がり、レベル3で正解すると mastered になります。
// 不正解はレベル1に戻し、learning に戻します。
func (s *flashcardService) SubmitResult(ctx context.Context, tenantID, termID uuid.UUID, isCorrect bool) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "term_id", termID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		term, err := s.termRepo.FindByID(ctx, tx, tenantID, termID)
		if err != nil {
			return err
		}

		now := time.Now()
		newLevel, nextReviewDate, mastered := calculateNextReview(term.ReviewLevel, isCorrect, logger)

		term.ReviewLevel = newLevel
		term.NextReviewDate = nextReviewDate
		term.LastReviewedAt = &now
		if mastered {
			term.Status = model.StatusMastered
			term.MasteredAt = &now
		} else {
			term.Status = model.StatusLearning
			term.MasteredAt = nil
		}

		if err := s.termRepo.Save(ctx, tx, term); err != nil {
			logger.Error("Error updating term review progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の更新に失敗しました。", "", err)
		}

		// フラッシュカードは1枚1問として履歴に積む
		score := 0
		if isCorrect {
			score = 1
		}
		result := &model.QuizResult{
			ResultID: uuid.New(),
			TenantID: tenantID,
			Activity: model.ActivityFlashcards,
			Score:    score,
			Total:    1,
		}
		if err := s.resultRepo.Create(ctx, tx, result); err != nil {
			logger.Error("Error recording flashcard result", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "履歴の記録に失敗しました。", "", err)
		}

		logger.Info("Flashcard result applied", "is_correct", isCorrect, "new_level", int(newLevel), "mastered", mastered)
		return nil
	})
}

// calculateNextReview は次のレベルと復習日を計算するヘルパー関数。
// レベル3で正解した場合のみ mastered=true を返します。
func calculateNextReview(current model.ReviewLevel, isCorrect bool, logger *slog.Logger) (model.ReviewLevel, time.Time, bool) {
	now := time.Now()

	if !isCorrect {
		// 間違えたら必ずレベル1に戻り、即日復習対象
		return model.Level1, now.AddDate(0, 0, -1), false
	}

	switch current {
	case model.Level1:
		return model.Level2, now.AddDate(0, 0, 3), false
	case model.Level2:
		return model.Level3, now.AddDate(0, 0, 7), false
	case model.Level3:
		return model.Level3, now.AddDate(0, 0, 14), true
	default:
		logger.Warn("Invalid review level found, resetting to Level 1", "invalid_level", int(current))
		return model.Level1, now.AddDate(0, 0, 1), false
	}
}
