//go:generate mockery --name TermRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vocab_explorer/internal/middleware"
	"vocab_explorer/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TermRepository はライブラリ (単語テーブル) へのアクセスを提供します
type TermRepository interface {
	Create(ctx context.Context, tx *gorm.DB, term *model.Term) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, termID uuid.UUID) (*model.Term, error)
	FindByTextKey(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, textKey string) (*model.Term, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, status *model.TermStatus) ([]*model.Term, error)
	FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, termIDs []uuid.UUID) ([]*model.Term, error)
	FindReviewable(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, now time.Time, limit int) ([]*model.Term, error)
	CountReviewable(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, now time.Time) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID, termID uuid.UUID, updates map[string]interface{}) error
	Save(ctx context.Context, tx *gorm.DB, term *model.Term) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, termID uuid.UUID) error
}

type gormTermRepository struct{}

func NewGormTermRepository() TermRepository {
	return &gormTermRepository{}
}

func (r *gormTermRepository) Create(ctx context.Context, tx *gorm.DB, term *model.Term) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(term)
	if result.Error != nil {
		logger.Error("Error creating term in DB",
			"error", result.Error,
			"tenant_id", term.TenantID.String(),
			"text", term.Text,
		)
		return fmt.Errorf("gormTermRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTermRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, termID uuid.UUID) (*model.Term, error) {
	logger := middleware.GetLogger(ctx)
	var term model.Term
	result := db.WithContext(ctx).Where("tenant_id = ? AND term_id = ?", tenantID, termID).First(&term)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding term by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"term_id", termID.String(),
		)
		return nil, fmt.Errorf("gormTermRepository.FindByID: %w", result.Error)
	}
	return &term, nil
}

func (r *gormTermRepository) FindByTextKey(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, textKey string) (*model.Term, error) {
	logger := middleware.GetLogger(ctx)
	var term model.Term
	result := db.WithContext(ctx).Where("tenant_id = ? AND text_key = ?", tenantID, textKey).First(&term)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding term by text key in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"text_key", textKey,
		)
		return nil, fmt.Errorf("gormTermRepository.FindByTextKey: %w", result.Error)
	}
	return &term, nil
}

func (r *gormTermRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, status *model.TermStatus) ([]*model.Term, error) {
	logger := middleware.GetLogger(ctx)
	var terms []*model.Term
	query := db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	result := query.Order("created_at DESC").Find(&terms)
	if result.Error != nil {
		logger.Error("Error finding terms by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormTermRepository.FindByTenant: %w", result.Error)
	}
	return terms, nil
}

func (r *gormTermRepository) FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, termIDs []uuid.UUID) ([]*model.Term, error) {
	logger := middleware.GetLogger(ctx)
	var terms []*model.Term
	result := db.WithContext(ctx).Where("tenant_id = ? AND term_id IN ?", tenantID, termIDs).Find(&terms)
	if result.Error != nil {
		logger.Error("Error finding terms by IDs in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormTermRepository.FindByIDs: %w", result.Error)
	}
	return terms, nil
}

// FindReviewable は復習期限が来ている学習中の単語を返します (フラッシュカード用)
func (r *gormTermRepository) FindReviewable(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, now time.Time, limit int) ([]*model.Term, error) {
	logger := middleware.GetLogger(ctx)
	var terms []*model.Term
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND status = ? AND next_review_date <= ?", tenantID, model.StatusLearning, now).
		Order("next_review_date ASC").
		Limit(limit).
		Find(&terms)
	if result.Error != nil {
		logger.Error("Error finding reviewable terms in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormTermRepository.FindReviewable: %w", result.Error)
	}
	return terms, nil
}

// CountReviewable は復習期限が来ている学習中の単語数を返します
func (r *gormTermRepository) CountReviewable(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, now time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Term{}).
		Where("tenant_id = ? AND status = ? AND next_review_date <= ?", tenantID, model.StatusLearning, now).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting reviewable terms in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return 0, fmt.Errorf("gormTermRepository.CountReviewable: %w", result.Error)
	}
	return count, nil
}

func (r *gormTermRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, termID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Term{}).Where("tenant_id = ? AND term_id = ?", tenantID, termID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating term in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"term_id", termID.String(),
		)
		return fmt.Errorf("gormTermRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Save はJSONカラム (meanings/details) を含めて単語レコード全体を保存します
func (r *gormTermRepository) Save(ctx context.Context, tx *gorm.DB, term *model.Term) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(term)
	if result.Error != nil {
		logger.Error("Error saving term in DB",
			"error", result.Error,
			"tenant_id", term.TenantID.String(),
			"term_id", term.TermID.String(),
		)
		return fmt.Errorf("gormTermRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormTermRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, termID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.Term{}, termID)
	if result.Error != nil {
		logger.Error("Error deleting term in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"term_id", termID.String(),
		)
		return fmt.Errorf("gormTermRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
