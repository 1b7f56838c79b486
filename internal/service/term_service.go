package service

import (
	"context"
	"errors"
	"time"

	"vocab_explorer/internal/client"
	"vocab_explorer/internal/middleware"
	"vocab_explorer/internal/model"
	"vocab_explorer/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TermService interface {
	LookupTerm(ctx context.Context, tenantID uuid.UUID, req *model.LookupTermRequest) (*model.Term, error)
	ExploreTerm(ctx context.Context, tenantID, termID uuid.UUID) (*model.Term, error)
	CreateTerm(ctx context.Context, tenantID uuid.UUID, req *model.PostTermRequest) (*model.Term, error)
	GetTerm(ctx context.Context, tenantID, termID uuid.UUID) (*model.Term, error)
	ListTerms(ctx context.Context, tenantID uuid.UUID, status *model.TermStatus) ([]*model.Term, error)
	UpdateTermStatus(ctx context.Context, tenantID, termID uuid.UUID, req *model.PatchTermStatusRequest) (*model.Term, error)
	DeleteTerm(ctx context.Context, tenantID, termID uuid.UUID) error
}

type termService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	termRepo repository.TermRepository
	dict     client.DictionaryClient
}

func NewTermService(db *gorm.DB, termRepo repository.TermRepository, dict client.DictionaryClient) TermService {
	return &termService{
		db:       db,
		termRepo: termRepo,
		dict:     dict,
	}
}

// LookupTerm はAIで語義を取得し、ライブラリにupsertします。
// 取得に失敗した場合はライブラリを変更しません。
func (s *termService) LookupTerm(ctx context.Context, tenantID uuid.UUID, req *model.LookupTermRequest) (*model.Term, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	textKey := model.NormalizeTermText(req.Text)
	if textKey == "" {
		return nil, model.NewAppError("INVALID_INPUT", "単語を入力してください。", "text", model.ErrInvalidInput)
	}

	// 先にAIへ問い合わせる (失敗時はDBに触らない)
	meanings, err := s.dict.Lookup(ctx, req.Text)
	if err != nil {
		logger.Warn("Dictionary lookup failed", "text", req.Text, "error", err)
		return nil, err
	}

	var saved *model.Term
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.termRepo.FindByTextKey(ctx, tx, tenantID, textKey)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の確認中にエラーが発生しました。", "", err)
		}

		if existing != nil {
			// 既存エントリは語義だけ更新する
			existing.Meanings = meanings
			if err := s.termRepo.Save(ctx, tx, existing); err != nil {
				return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の更新に失敗しました。", "", err)
			}
			saved = existing
			return nil
		}

		term := newLearningTerm(tenantID, req.Text, meanings)
		if err := s.termRepo.Create(ctx, tx, term); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の登録に失敗しました。", "", err)
		}
		saved = term
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Term looked up and saved", "term_id", saved.TermID, "text", saved.Text)
	return saved, nil
}

// ExploreTerm は保存済みの単語について例文などの詳細をAIで取得し保存します
func (s *termService) ExploreTerm(ctx context.Context, tenantID, termID uuid.UUID) (*model.Term, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "term_id", termID)

	term, err := s.termRepo.FindByID(ctx, s.db, tenantID, termID)
	if err != nil {
		return nil, err
	}

	details, err := s.dict.Explore(ctx, term.Text, term.Meanings)
	if err != nil {
		logger.Warn("Dictionary explore failed", "text", term.Text, "error", err)
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		term.Details = details
		if err := s.termRepo.Save(ctx, tx, term); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語詳細の保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Term explored", "examples", len(details.Examples))
	return term, nil
}

func (s *termService) CreateTerm(ctx context.Context, tenantID uuid.UUID, req *model.PostTermRequest) (*model.Term, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	textKey := model.NormalizeTermText(req.Text)
	if textKey == "" || len(req.Meanings) == 0 {
		return nil, model.ErrInvalidInput
	}

	var created *model.Term
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 重複チェック (tenant内でtext_keyが一意)
		_, err := s.termRepo.FindByTextKey(ctx, tx, tenantID, textKey)
		if err == nil {
			return model.NewAppError("CONFLICT", "同じ単語が既に登録されています。", "text", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の確認中にエラーが発生しました。", "", err)
		}

		term := newLearningTerm(tenantID, req.Text, req.Meanings)
		if err := s.termRepo.Create(ctx, tx, term); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の登録に失敗しました。", "", err)
		}
		created = term
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Term created", "term_id", created.TermID, "text", created.Text)
	return created, nil
}

func (s *termService) GetTerm(ctx context.Context, tenantID, termID uuid.UUID) (*model.Term, error) {
	return s.termRepo.FindByID(ctx, s.db, tenantID, termID)
}

func (s *termService) ListTerms(ctx context.Context, tenantID uuid.UUID, status *model.TermStatus) ([]*model.Term, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	terms, err := s.termRepo.FindByTenant(ctx, s.db, tenantID, status)
	if err != nil {
		logger.Error("Failed to list terms", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	return terms, nil
}

// UpdateTermStatus は学習状態を手動で切り替えます。
// mastered への切り替えで習得日時を記録し、learning に戻すとレベル1から再開します。
func (s *termService) UpdateTermStatus(ctx context.Context, tenantID, termID uuid.UUID, req *model.PatchTermStatusRequest) (*model.Term, error) {
	var updated *model.Term

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		term, err := s.termRepo.FindByID(ctx, tx, tenantID, termID)
		if err != nil {
			return err
		}

		if term.Status == req.Status {
			updated = term
			return nil
		}

		now := time.Now()
		term.Status = req.Status
		if req.Status == model.StatusMastered {
			term.MasteredAt = &now
		} else {
			term.MasteredAt = nil
			term.ReviewLevel = model.Level1
			term.NextReviewDate = now.AddDate(0, 0, 1)
		}

		if err := s.termRepo.Save(ctx, tx, term); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習状態の更新に失敗しました。", "", err)
		}
		updated = term
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *termService) DeleteTerm(ctx context.Context, tenantID, termID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.termRepo.Delete(ctx, tx, tenantID, termID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の削除に失敗しました。", "", err)
		}
		return nil
	})
}

// newLearningTerm は学習中状態の新規エントリを組み立てます (翌日から復習対象)
func newLearningTerm(tenantID uuid.UUID, text string, meanings []model.Meaning) *model.Term {
	return &model.Term{
		TermID:         uuid.New(),
		TenantID:       tenantID,
		Text:           text,
		TextKey:        model.NormalizeTermText(text),
		Meanings:       meanings,
		Status:         model.StatusLearning,
		ReviewLevel:    model.Level1,
		NextReviewDate: time.Now().AddDate(0, 0, 1),
	}
}
