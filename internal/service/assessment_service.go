package service

import (
	"context"
	"errors"
	"math/rand"

	"vocab_explorer/internal/assessment"
	"vocab_explorer/internal/middleware"
	"vocab_explorer/internal/model"
	"vocab_explorer/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type AssessmentService interface {
	StartAssessment(ctx context.Context, tenantID uuid.UUID, req *model.PostAssessmentRequest) (*model.SessionResponse, error)
	SubmitAssessment(ctx context.Context, tenantID, sessionID uuid.UUID, req *model.SubmitAnswersRequest) (*model.SessionResult, error)
	RedeemAssessment(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.SessionResponse, error)
	CancelSession(ctx context.Context, tenantID, sessionID uuid.UUID) error
	StartQuiz(ctx context.Context, tenantID uuid.UUID, req *model.PostAssessmentRequest) (*model.SessionResponse, error)
	SubmitQuizAnswer(ctx context.Context, tenantID, sessionID uuid.UUID, req *model.SubmitQuizAnswerRequest) (*model.QuizAnswerResponse, error)
}

type assessmentService struct {
	db         *gorm.DB
	termRepo   repository.TermRepository
	resultRepo repository.ResultRepository
	store      *SessionStore
}

func NewAssessmentService(db *gorm.DB, termRepo repository.TermRepository, resultRepo repository.ResultRepository, store *SessionStore) AssessmentService {
	return &assessmentService{
		db:         db,
		termRepo:   termRepo,
		resultRepo: resultRepo,
		store:      store,
	}
}

func (s *assessmentService) StartAssessment(ctx context.Context, tenantID uuid.UUID, req *model.PostAssessmentRequest) (*model.SessionResponse, error) {
	return s.startSession(ctx, tenantID, req, model.ActivityAssessment)
}

func (s *assessmentService) StartQuiz(ctx context.Context, tenantID uuid.UUID, req *model.PostAssessmentRequest) (*model.SessionResponse, error) {
	return s.startSession(ctx, tenantID, req, model.ActivityQuiz)
}

func (s *assessmentService) startSession(ctx context.Context, tenantID uuid.UUID, req *model.PostAssessmentRequest, activity model.ActivityType) (*model.SessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "activity", activity)

	terms, err := s.collectTerms(ctx, tenantID, req.TermIDs)
	if err != nil {
		return nil, err
	}

	set, err := composeSet(terms, activity)
	if err != nil {
		if errors.Is(err, assessment.ErrNoQuestions) {
			return nil, model.NewAppError("UNPROCESSABLE_ENTITY", "出題できる単語がありません。単語を登録してください。", "", model.ErrUnprocessable)
		}
		logger.Error("Failed to compose question set", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "問題の生成に失敗しました。", "", err)
	}

	sess := assessment.NewSession(activity, set, terms, s.completionRecorder(tenantID))
	s.store.Put(tenantID, sess)

	logger.Info("Session started", "session_id", sess.ID, "questions", len(set.Questions))
	return sessionResponse(sess), nil
}

func (s *assessmentService) SubmitAssessment(ctx context.Context, tenantID, sessionID uuid.UUID, req *model.SubmitAnswersRequest) (*model.SessionResult, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "session_id", sessionID)

	var result *model.SessionResult
	err := s.store.With(tenantID, sessionID, func(sess *assessment.Session) error {
		if sess.Activity != model.ActivityAssessment {
			return model.ErrNotFound
		}
		r, err := sess.SubmitAll(ctx, req.Answers)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		if errors.Is(err, assessment.ErrSessionFinished) {
			return nil, model.NewAppError("CONFLICT", "このセッションは既に終了しています。", "", model.ErrConflict)
		}
		return nil, err
	}

	logger.Info("Assessment submitted", "score", result.Score, "total", result.Total)
	return result, nil
}

// RedeemAssessment は間違えた単語だけで問題集を作り直し、同じセッションで再挑戦させます
func (s *assessmentService) RedeemAssessment(ctx context.Context, tenantID, sessionID uuid.UUID) (*model.SessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "session_id", sessionID)

	var resp *model.SessionResponse
	err := s.store.With(tenantID, sessionID, func(sess *assessment.Session) error {
		if sess.Activity != model.ActivityAssessment {
			return model.ErrNotFound
		}
		if !sess.CanRedeem() {
			return assessment.ErrNothingToRedeem
		}

		wrongTerms := sess.WrongTerms()
		set, err := composeSet(wrongTerms, sess.Activity)
		if err != nil {
			logger.Error("Failed to compose redeem set", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "問題の生成に失敗しました。", "", err)
		}
		if err := sess.Redeem(set); err != nil {
			return err
		}
		resp = sessionResponse(sess)
		return nil
	})
	if err != nil {
		if errors.Is(err, assessment.ErrNothingToRedeem) {
			return nil, model.NewAppError("CONFLICT", "間違えた単語が無いため、再挑戦はできません。", "", model.ErrConflict)
		}
		return nil, err
	}

	logger.Info("Redeem run started", "questions", len(resp.Questions))
	return resp, nil
}

// CancelSession はセッションを破棄します。存在しないIDでもエラーにしません。
func (s *assessmentService) CancelSession(ctx context.Context, tenantID, sessionID uuid.UUID) error {
	s.store.Delete(tenantID, sessionID)
	middleware.GetLogger(ctx).Info("Session cancelled", "tenant_id", tenantID, "session_id", sessionID)
	return nil
}

func (s *assessmentService) SubmitQuizAnswer(ctx context.Context, tenantID, sessionID uuid.UUID, req *model.SubmitQuizAnswerRequest) (*model.QuizAnswerResponse, error) {
	var resp *model.QuizAnswerResponse
	err := s.store.With(tenantID, sessionID, func(sess *assessment.Session) error {
		if sess.Activity != model.ActivityQuiz {
			return model.ErrNotFound
		}

		q, ok := sess.CurrentQuestion()
		if !ok {
			return assessment.ErrSessionFinished
		}

		correct, result, err := sess.AnswerCurrent(ctx, req.Answer)
		if err != nil {
			return err
		}

		resp = &model.QuizAnswerResponse{
			Correct:       correct,
			CorrectAnswer: correctAnswerText(q),
			Finished:      result != nil,
			Result:        result,
		}
		if next, ok := sess.CurrentQuestion(); ok {
			sanitized := sanitizeQuestion(next)
			resp.Next = &sanitized
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, assessment.ErrSessionFinished) {
			return nil, model.NewAppError("CONFLICT", "このセッションは既に終了しています。", "", model.ErrConflict)
		}
		return nil, err
	}
	return resp, nil
}

// collectTerms は出題対象の単語を集めます。
// IDを指定しない場合は学習中の全単語、指定した場合は該当単語のみです。
func (s *assessmentService) collectTerms(ctx context.Context, tenantID uuid.UUID, termIDs []uuid.UUID) ([]model.Term, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	var (
		rows []*model.Term
		err  error
	)
	if len(termIDs) > 0 {
		rows, err = s.termRepo.FindByIDs(ctx, s.db, tenantID, termIDs)
		if err == nil && len(rows) != len(termIDs) {
			return nil, model.NewAppError("NOT_FOUND", "指定した単語の一部が見つかりません。", "term_ids", model.ErrNotFound)
		}
	} else {
		status := model.StatusLearning
		rows, err = s.termRepo.FindByTenant(ctx, s.db, tenantID, &status)
	}
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to collect terms for session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}

	return lo.Map(rows, func(t *model.Term, _ int) model.Term { return *t }), nil
}

// completionRecorder はセッション完了時に履歴を1行書くコールバックを返します。
// ctx には完了を引き起こした提出リクエストのものが渡されます
// (開始時のリクエストは完了時には既にキャンセル済みのため、ここで束縛してはいけない)。
// 記録失敗でユーザーの結果表示は妨げません (ログのみ)。
func (s *assessmentService) completionRecorder(tenantID uuid.UUID) assessment.CompletionFunc {
	return func(ctx context.Context, activity model.ActivityType, score, total int) {
		logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "activity", activity)
		result := &model.QuizResult{
			ResultID: uuid.New(),
			TenantID: tenantID,
			Activity: activity,
			Score:    score,
			Total:    total,
		}
		if err := s.resultRepo.Create(ctx, s.db, result); err != nil {
			logger.Error("Failed to record session result", "error", err)
			return
		}
		logger.Info("Session result recorded", "score", score, "total", total)
	}
}

func composeSet(terms []model.Term, activity model.ActivityType) (model.AssessmentSet, error) {
	composer := assessment.NewComposer(nil)
	if activity == model.ActivityQuiz {
		return composer.ComposeQuiz(terms)
	}
	return composer.Compose(terms)
}

func sessionResponse(sess *assessment.Session) *model.SessionResponse {
	return &model.SessionResponse{
		SessionID: sess.ID,
		Activity:  sess.Activity,
		Status:    sess.Status(),
		Title:     sess.Set.Title,
		Questions: lo.Map(sess.Set.Questions, func(q model.Question, _ int) model.Question {
			return sanitizeQuestion(q)
		}),
	}
}

// sanitizeQuestion は正解情報を取り除いた出題用コピーを返します。
// マッチ問題は Items と Targets が生成時に正解ペア順で揃っているため、
// 表示用の Targets は並べ替えてから返します (採点はIDのマップで行うので影響しない)。
func sanitizeQuestion(q model.Question) model.Question {
	out := model.Question{ID: q.ID, Type: q.Type}
	switch q.Type {
	case model.QuestionMatch:
		targets := make([]model.MatchTarget, len(q.Match.Targets))
		copy(targets, q.Match.Targets)
		rand.Shuffle(len(targets), func(i, j int) { targets[i], targets[j] = targets[j], targets[i] })
		out.Match = &model.MatchPayload{
			Items:   q.Match.Items,
			Targets: targets,
		}
	case model.QuestionMultipleChoice:
		out.MultipleChoice = &model.MultipleChoicePayload{
			Prompt:  q.MultipleChoice.Prompt,
			Options: q.MultipleChoice.Options,
		}
	case model.QuestionFillBlank:
		out.FillBlank = &model.FillBlankPayload{
			Sentence: q.FillBlank.Sentence,
		}
	case model.QuestionWritten:
		out.Written = &model.WrittenPayload{
			Prompt: q.Written.Prompt,
		}
	}
	return out
}

// correctAnswerText は逐次採点の応答に含める正解の文字列表現です
func correctAnswerText(q model.Question) string {
	switch q.Type {
	case model.QuestionMultipleChoice:
		return q.MultipleChoice.CorrectAnswer
	case model.QuestionFillBlank:
		return q.FillBlank.CorrectAnswer
	case model.QuestionWritten:
		return q.Written.ModelAnswer
	}
	return ""
}
