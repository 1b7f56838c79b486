//go:generate mockery --name ResultRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"vocab_explorer/internal/middleware"
	"vocab_explorer/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultRepository はクイズ・テスト結果の履歴テーブルへのアクセスを提供します
type ResultRepository interface {
	Create(ctx context.Context, tx *gorm.DB, result *model.QuizResult) error
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.QuizResult, error)
	StatsByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.ActivityStats, error)
}

type gormResultRepository struct{}

func NewGormResultRepository() ResultRepository {
	return &gormResultRepository{}
}

func (r *gormResultRepository) Create(ctx context.Context, tx *gorm.DB, quizResult *model.QuizResult) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(quizResult)
	if result.Error != nil {
		logger.Error("Error creating quiz result in DB",
			"error", result.Error,
			"tenant_id", quizResult.TenantID.String(),
			"activity", quizResult.Activity,
		)
		return fmt.Errorf("gormResultRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormResultRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.QuizResult, error) {
	logger := middleware.GetLogger(ctx)
	var results []*model.QuizResult
	query := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		logger.Error("Error finding quiz results in DB",
			"error", err,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormResultRepository.FindByTenant: %w", err)
	}
	return results, nil
}

// StatsByTenant はアクティビティ種別ごとの回数と得点合計を集計します
func (r *gormResultRepository) StatsByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.ActivityStats, error) {
	logger := middleware.GetLogger(ctx)
	var stats []*model.ActivityStats
	err := db.WithContext(ctx).
		Model(&model.QuizResult{}).
		Select("activity, COUNT(*) AS attempts, COALESCE(SUM(score), 0) AS total_score, COALESCE(SUM(total), 0) AS total_max").
		Where("tenant_id = ?", tenantID).
		Group("activity").
		Scan(&stats).Error
	if err != nil {
		logger.Error("Error aggregating quiz result stats in DB",
			"error", err,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormResultRepository.StatsByTenant: %w", err)
	}
	return stats, nil
}
