package service

import (
	"context"

	"vocab_explorer/internal/middleware"
	"vocab_explorer/internal/model"
	"vocab_explorer/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 履歴一覧のデフォルト上限
const defaultHistoryLimit = 50

type HistoryService interface {
	ListResults(ctx context.Context, tenantID uuid.UUID, limit int) ([]*model.QuizResult, error)
	GetStats(ctx context.Context, tenantID uuid.UUID) (*model.HistoryStatsResponse, error)
}

type historyService struct {
	db         *gorm.DB
	resultRepo repository.ResultRepository
}

func NewHistoryService(db *gorm.DB, resultRepo repository.ResultRepository) HistoryService {
	return &historyService{
		db:         db,
		resultRepo: resultRepo,
	}
}

func (s *historyService) ListResults(ctx context.Context, tenantID uuid.UUID, limit int) ([]*model.QuizResult, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}

	results, err := s.resultRepo.FindByTenant(ctx, s.db, tenantID, limit)
	if err != nil {
		logger.Error("Failed to list quiz results", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "履歴の取得に失敗しました。", "", err)
	}
	return results, nil
}

func (s *historyService) GetStats(ctx context.Context, tenantID uuid.UUID) (*model.HistoryStatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	stats, err := s.resultRepo.StatsByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Failed to aggregate quiz result stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "成績集計の取得に失敗しました。", "", err)
	}

	resp := &model.HistoryStatsResponse{Stats: make([]model.ActivityStats, 0, len(stats))}
	for _, s := range stats {
		resp.Stats = append(resp.Stats, *s)
	}
	return resp, nil
}
