// internal/service/assessment_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"

	"vocab_explorer/internal/model"
	"vocab_explorer/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// serviceTestPool は相異なる表記の学習中単語をn個生成します
func serviceTestPool(tenantID uuid.UUID, n int) []*model.Term {
	texts := []string{
		"ambiguous", "resilient", "meticulous", "pragmatic", "tenacious",
		"eloquent", "frugal", "candid", "diligent", "prudent",
	}
	terms := make([]*model.Term, 0, n)
	for i := 0; i < n; i++ {
		text := texts[i%len(texts)]
		if i >= len(texts) {
			text = fmt.Sprintf("%s%d", text, i)
		}
		terms = append(terms, &model.Term{
			TermID:   uuid.New(),
			TenantID: tenantID,
			Text:     text,
			TextKey:  model.NormalizeTermText(text),
			Meanings: []model.Meaning{
				{PartOfSpeech: "adjective", Definition: fmt.Sprintf("definition of %s", text)},
			},
			Details: &model.TermDetails{
				Examples: []string{fmt.Sprintf("She is known for being %s at work.", text)},
			},
			Status: model.StatusLearning,
		})
	}
	return terms
}

// 出題用コピーから正解を作るヘルパー (クイズは4択のみ)
func quizCorrectAnswer(t *testing.T, pool []*model.Term, q model.Question) model.Answer {
	t.Helper()
	require.Equal(t, model.QuestionMultipleChoice, q.Type)
	for _, term := range pool {
		def := term.Meanings[0].Definition
		if q.MultipleChoice.Prompt == def {
			return model.Answer{Selected: term.Text}
		}
	}
	t.Fatalf("no pool term matches prompt %q", q.MultipleChoice.Prompt)
	return model.Answer{}
}

// --- Test StartAssessment ---
func Test_assessmentService_StartAssessment(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("正常系: 学習中の全単語からセッションを開始", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)
		pool := serviceTestPool(tenantID, 5)

		status := model.StatusLearning
		termRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, &status).
			Return(pool, nil).Once()

		svc := NewAssessmentService(db, termRepo, resultRepo, NewSessionStore())
		resp, err := svc.StartAssessment(ctx, tenantID, &model.PostAssessmentRequest{})

		require.NoError(t, err)
		assert.Equal(t, model.ActivityAssessment, resp.Activity)
		assert.Equal(t, model.SessionPlaying, resp.Status)
		assert.NotEmpty(t, resp.Questions)

		// 出題情報に正解が含まれていないこと
		for _, q := range resp.Questions {
			switch q.Type {
			case model.QuestionMatch:
				assert.Nil(t, q.Match.CorrectPairs)
			case model.QuestionMultipleChoice:
				assert.Empty(t, q.MultipleChoice.CorrectAnswer)
			case model.QuestionFillBlank:
				assert.Empty(t, q.FillBlank.CorrectAnswer)
			case model.QuestionWritten:
				assert.Empty(t, q.Written.ModelAnswer)
			}
		}
		termRepo.AssertExpectations(t)
	})

	t.Run("正常系: 単語IDを指定して開始", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		pool := serviceTestPool(tenantID, 4)
		ids := []uuid.UUID{pool[0].TermID, pool[1].TermID, pool[2].TermID, pool[3].TermID}

		termRepo.On("FindByIDs", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, ids).
			Return(pool, nil).Once()

		svc := NewAssessmentService(db, termRepo, new(mocks.ResultRepository), NewSessionStore())
		resp, err := svc.StartAssessment(ctx, tenantID, &model.PostAssessmentRequest{TermIDs: ids})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Questions)
		termRepo.AssertExpectations(t)
	})

	t.Run("異常系: 指定IDの一部が存在しない", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		pool := serviceTestPool(tenantID, 2)
		ids := []uuid.UUID{pool[0].TermID, pool[1].TermID, uuid.New()}

		termRepo.On("FindByIDs", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, ids).
			Return(pool, nil).Once()

		svc := NewAssessmentService(db, termRepo, new(mocks.ResultRepository), NewSessionStore())
		_, err := svc.StartAssessment(ctx, tenantID, &model.PostAssessmentRequest{TermIDs: ids})

		assert.ErrorIs(t, err, model.ErrNotFound)
		termRepo.AssertExpectations(t)
	})

	t.Run("異常系: 出題できる単語が無い", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)

		status := model.StatusLearning
		termRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, &status).
			Return([]*model.Term{}, nil).Once()

		svc := NewAssessmentService(db, termRepo, new(mocks.ResultRepository), NewSessionStore())
		_, err := svc.StartAssessment(ctx, tenantID, &model.PostAssessmentRequest{})

		assert.ErrorIs(t, err, model.ErrUnprocessable)
		termRepo.AssertExpectations(t)
	})
}

// --- Test SubmitAssessment / Redeem ---
func Test_assessmentService_SubmitAndRedeem(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	newStartedAssessment := func(t *testing.T, termRepo *mocks.TermRepository, resultRepo *mocks.ResultRepository, store *SessionStore) *model.SessionResponse {
		t.Helper()
		db := setupTestDB()
		pool := serviceTestPool(tenantID, 5)
		status := model.StatusLearning
		termRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, &status).
			Return(pool, nil).Once()

		svc := NewAssessmentService(db, termRepo, resultRepo, store)
		resp, err := svc.StartAssessment(ctx, tenantID, &model.PostAssessmentRequest{})
		require.NoError(t, err)
		return resp
	}

	t.Run("正常系: 無解答提出で全問不正解・履歴記録", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)
		store := NewSessionStore()
		started := newStartedAssessment(t, termRepo, resultRepo, store)

		resultRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizResult")).
			Run(func(args mock.Arguments) {
				result := args.Get(2).(*model.QuizResult)
				assert.Equal(t, model.ActivityAssessment, result.Activity)
				assert.Equal(t, len(started.Questions), result.Total)
			}).Return(nil).Once()

		svc := NewAssessmentService(db, termRepo, resultRepo, store)
		result, err := svc.SubmitAssessment(ctx, tenantID, started.SessionID, &model.SubmitAnswersRequest{Answers: map[string]model.Answer{}})

		require.NoError(t, err)
		assert.Equal(t, len(started.Questions), result.Total)
		assert.True(t, result.CanRedeem)
		assert.NotEmpty(t, result.WrongTerms)
		for _, v := range result.Verdicts {
			assert.False(t, v.Answered)
			assert.False(t, v.Correct)
		}
		resultRepo.AssertExpectations(t)
	})

	t.Run("正常系: 挽回は間違えた単語だけで再出題", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)
		store := NewSessionStore()
		started := newStartedAssessment(t, termRepo, resultRepo, store)

		resultRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizResult")).
			Return(nil).Once()

		svc := NewAssessmentService(db, termRepo, resultRepo, store)
		result, err := svc.SubmitAssessment(ctx, tenantID, started.SessionID, &model.SubmitAnswersRequest{Answers: map[string]model.Answer{}})
		require.NoError(t, err)
		require.True(t, result.CanRedeem)

		redeemed, err := svc.RedeemAssessment(ctx, tenantID, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, started.SessionID, redeemed.SessionID)
		assert.Equal(t, model.SessionPlaying, redeemed.Status)
		assert.NotEmpty(t, redeemed.Questions)
	})

	t.Run("異常系: 二重提出はconflict", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)
		store := NewSessionStore()
		started := newStartedAssessment(t, termRepo, resultRepo, store)

		resultRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizResult")).
			Return(nil).Once()

		svc := NewAssessmentService(db, termRepo, resultRepo, store)
		_, err := svc.SubmitAssessment(ctx, tenantID, started.SessionID, &model.SubmitAnswersRequest{Answers: map[string]model.Answer{}})
		require.NoError(t, err)

		_, err = svc.SubmitAssessment(ctx, tenantID, started.SessionID, &model.SubmitAnswersRequest{Answers: map[string]model.Answer{}})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("異常系: 他テナントのセッションには触れない", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)
		store := NewSessionStore()
		started := newStartedAssessment(t, termRepo, resultRepo, store)

		svc := NewAssessmentService(db, termRepo, resultRepo, store)
		_, err := svc.SubmitAssessment(ctx, uuid.New(), started.SessionID, &model.SubmitAnswersRequest{Answers: map[string]model.Answer{}})

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: キャンセルは存在しないIDでもエラーにしない", func(t *testing.T) {
		db := setupTestDB()
		svc := NewAssessmentService(db, new(mocks.TermRepository), new(mocks.ResultRepository), NewSessionStore())
		assert.NoError(t, svc.CancelSession(ctx, tenantID, uuid.New()))
	})

	t.Run("正常系: 開始リクエスト終了後の提出でも履歴が記録される", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)
		store := NewSessionStore()
		pool := serviceTestPool(tenantID, 5)

		startCtx, cancelStart := context.WithCancel(context.Background())
		status := model.StatusLearning
		termRepo.On("FindByTenant", startCtx, mock.AnythingOfType("*gorm.DB"), tenantID, &status).
			Return(pool, nil).Once()

		svc := NewAssessmentService(db, termRepo, resultRepo, store)
		started, err := svc.StartAssessment(startCtx, tenantID, &model.PostAssessmentRequest{})
		require.NoError(t, err)

		// 開始と提出は別リクエスト。開始側のコンテキストはここで終わっている
		cancelStart()

		// 履歴の書き込みには提出側の生きたコンテキストが使われること
		resultRepo.On("Create",
			mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }),
			mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizResult")).
			Return(nil).Once()

		_, err = svc.SubmitAssessment(ctx, tenantID, started.SessionID, &model.SubmitAnswersRequest{Answers: map[string]model.Answer{}})
		require.NoError(t, err)
		resultRepo.AssertExpectations(t)
	})

	t.Run("正常系: 組み合わせ問題は表示順どおりのペアでは常に正解にはならない", func(t *testing.T) {
		// シャッフルが偶然元の順になる回もあり得るため、複数セッションで見る
		const runs = 12
		correctRuns := 0
		for i := 0; i < runs; i++ {
			db := setupTestDB()
			termRepo := new(mocks.TermRepository)
			resultRepo := new(mocks.ResultRepository)
			store := NewSessionStore()
			pool := serviceTestPool(tenantID, 5)

			status := model.StatusLearning
			termRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, &status).
				Return(pool, nil).Once()
			resultRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizResult")).
				Return(nil).Once()

			svc := NewAssessmentService(db, termRepo, resultRepo, store)
			started, err := svc.StartAssessment(ctx, tenantID, &model.PostAssessmentRequest{})
			require.NoError(t, err)

			var matchQ *model.Question
			for qi := range started.Questions {
				if started.Questions[qi].Type == model.QuestionMatch {
					matchQ = &started.Questions[qi]
					break
				}
			}
			require.NotNil(t, matchQ)
			require.Len(t, matchQ.Match.Targets, len(matchQ.Match.Items))

			pairs := make(map[string]string, len(matchQ.Match.Items))
			for pi, item := range matchQ.Match.Items {
				pairs[item.ID] = matchQ.Match.Targets[pi].ID
			}
			result, err := svc.SubmitAssessment(ctx, tenantID, started.SessionID, &model.SubmitAnswersRequest{
				Answers: map[string]model.Answer{matchQ.ID.String(): {Pairs: pairs}},
			})
			require.NoError(t, err)

			for _, v := range result.Verdicts {
				if v.QuestionID == matchQ.ID && v.Correct {
					correctRuns++
				}
			}
		}
		assert.Less(t, correctRuns, runs/2)
	})

	t.Run("異常系: クイズセッションは評価の挽回経路では挽回できない", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)
		store := NewSessionStore()
		pool := serviceTestPool(tenantID, 5)

		status := model.StatusLearning
		termRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, &status).
			Return(pool, nil).Once()
		resultRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizResult")).
			Return(nil).Once()

		svc := NewAssessmentService(db, termRepo, resultRepo, store)
		started, err := svc.StartQuiz(ctx, tenantID, &model.PostAssessmentRequest{})
		require.NoError(t, err)

		// 全問不正解で解き切り、間違えた単語が残った状態にする
		for range started.Questions {
			_, err = svc.SubmitQuizAnswer(ctx, tenantID, started.SessionID, &model.SubmitQuizAnswerRequest{Answer: model.Answer{Selected: "no such option"}})
			require.NoError(t, err)
		}

		_, err = svc.RedeemAssessment(ctx, tenantID, started.SessionID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// --- Test quiz flow ---
func Test_assessmentService_QuizFlow(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("正常系: 逐次解答で最後に結果が返り履歴が積まれる", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		resultRepo := new(mocks.ResultRepository)
		pool := serviceTestPool(tenantID, 5)

		status := model.StatusLearning
		termRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, &status).
			Return(pool, nil).Once()
		resultRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.QuizResult")).
			Run(func(args mock.Arguments) {
				result := args.Get(2).(*model.QuizResult)
				assert.Equal(t, model.ActivityQuiz, result.Activity)
				assert.Equal(t, result.Total, result.Score)
			}).Return(nil).Once()

		svc := NewAssessmentService(db, termRepo, resultRepo, NewSessionStore())
		started, err := svc.StartQuiz(ctx, tenantID, &model.PostAssessmentRequest{})
		require.NoError(t, err)
		require.NotEmpty(t, started.Questions)

		// 全問正解で解き切る
		current := &started.Questions[0]
		for i := 0; i < len(started.Questions); i++ {
			ans := quizCorrectAnswer(t, pool, *current)
			resp, err := svc.SubmitQuizAnswer(ctx, tenantID, started.SessionID, &model.SubmitQuizAnswerRequest{Answer: ans})
			require.NoError(t, err)
			assert.True(t, resp.Correct)
			assert.NotEmpty(t, resp.CorrectAnswer)

			if i == len(started.Questions)-1 {
				assert.True(t, resp.Finished)
				require.NotNil(t, resp.Result)
				assert.Equal(t, resp.Result.Total, resp.Result.Score)
				assert.False(t, resp.Result.CanRedeem)
			} else {
				assert.False(t, resp.Finished)
				require.NotNil(t, resp.Next)
				assert.Empty(t, resp.Next.MultipleChoice.CorrectAnswer)
				current = resp.Next
			}
		}

		// 終了後の解答はconflict
		_, err = svc.SubmitQuizAnswer(ctx, tenantID, started.SessionID, &model.SubmitQuizAnswerRequest{Answer: model.Answer{Selected: "x"}})
		assert.ErrorIs(t, err, model.ErrConflict)

		termRepo.AssertExpectations(t)
		resultRepo.AssertExpectations(t)
	})

	t.Run("異常系: 評価セッションにクイズ解答は送れない", func(t *testing.T) {
		db := setupTestDB()
		termRepo := new(mocks.TermRepository)
		pool := serviceTestPool(tenantID, 5)

		status := model.StatusLearning
		termRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, &status).
			Return(pool, nil).Once()

		svc := NewAssessmentService(db, termRepo, new(mocks.ResultRepository), NewSessionStore())
		started, err := svc.StartAssessment(ctx, tenantID, &model.PostAssessmentRequest{})
		require.NoError(t, err)

		_, err = svc.SubmitQuizAnswer(ctx, tenantID, started.SessionID, &model.SubmitQuizAnswerRequest{Answer: model.Answer{Selected: "x"}})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
