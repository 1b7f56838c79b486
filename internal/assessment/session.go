// internal/assessment/session.go
package assessment

import (
	"context"
	"errors"
	"sort"

	"vocab_explorer/internal/model"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	// ErrSessionFinished は results 状態のセッションへの解答操作を表します
	ErrSessionFinished = errors.New("session already finished")
	// ErrSessionPlaying は playing 状態のセッションへの結果参照を表します
	ErrSessionPlaying = errors.New("session still in progress")
	// ErrNothingToRedeem は間違えた単語が無い状態での挽回要求を表します
	ErrNothingToRedeem = errors.New("no wrong terms to redeem")
)

// CompletionFunc はセッション完了時に一度だけ呼ばれるコールバックです。
// 履歴の永続化など外部への記録はホスト側の責務です。
// ctx は完了を引き起こした解答操作のものが渡されます。
type CompletionFunc func(ctx context.Context, activity model.ActivityType, score, total int)

// Session は1回の評価/クイズ実行の状態機械です。
// 状態は playing → results の一方向で、redeem により間違えた単語だけの
// 新しい playing 状態に戻れます。スレッドセーフではないため、並行アクセスは
// 呼び出し側 (セッションストア) が直列化します。
type Session struct {
	ID       uuid.UUID
	Activity model.ActivityType
	Set      model.AssessmentSet

	terms      []model.Term
	index      int
	answers    map[uuid.UUID]model.Answer
	wrong      map[string]model.Term // キー: 正規化した単語表記 (単語単位で重複排除)
	status     model.SessionStatus
	result     *model.SessionResult
	onComplete CompletionFunc
}

// NewSession は playing 状態の新しいセッションを生成します。
// terms は出題元の単語プール (挽回時のスコープ決定に使う) です。
func NewSession(activity model.ActivityType, set model.AssessmentSet, terms []model.Term, onComplete CompletionFunc) *Session {
	return &Session{
		ID:         uuid.New(),
		Activity:   activity,
		Set:        set,
		terms:      terms,
		answers:    make(map[uuid.UUID]model.Answer, len(set.Questions)),
		wrong:      make(map[string]model.Term),
		status:     model.SessionPlaying,
		onComplete: onComplete,
	}
}

// Status は現在の状態タグを返します
func (s *Session) Status() model.SessionStatus {
	return s.status
}

// CurrentQuestion は現在の問題を返します。全問解答済みなら false を返します。
func (s *Session) CurrentQuestion() (model.Question, bool) {
	if s.status != model.SessionPlaying || s.index >= len(s.Set.Questions) {
		return model.Question{}, false
	}
	return s.Set.Questions[s.index], true
}

// AnswerCurrent は現在の問題を即時採点して1問進めます (クイズフロー)。
// 最後の問題に解答すると finish まで進み、結果が返ります。
func (s *Session) AnswerCurrent(ctx context.Context, ans model.Answer) (bool, *model.SessionResult, error) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return false, nil, ErrSessionFinished
	}

	correct := Grade(q, ans)
	s.answers[q.ID] = ans
	if !correct {
		s.recordWrong(q)
	}
	s.index++

	if s.index >= len(s.Set.Questions) {
		return correct, s.finish(ctx), nil
	}
	return correct, nil, nil
}

// SubmitAll は全問の解答を一括で受け取り採点します (評価フロー)。
// キーは問題IDの文字列表現です。未提出の問題は不正解として数えます。
func (s *Session) SubmitAll(ctx context.Context, answers map[string]model.Answer) (*model.SessionResult, error) {
	if s.status != model.SessionPlaying {
		return nil, ErrSessionFinished
	}
	for key, ans := range answers {
		id, err := uuid.Parse(key)
		if err != nil {
			continue // 不明なキーは無視する
		}
		s.answers[id] = ans
	}
	s.index = len(s.Set.Questions)
	return s.finish(ctx), nil
}

// Result は results 状態の最終結果を返します
func (s *Session) Result() (*model.SessionResult, error) {
	if s.status != model.SessionResults || s.result == nil {
		return nil, ErrSessionPlaying
	}
	return s.result, nil
}

// WrongTerms は間違えた単語を重複なしで返します (表記順は安定)
func (s *Session) WrongTerms() []model.Term {
	terms := lo.Values(s.wrong)
	sort.Slice(terms, func(i, j int) bool {
		return model.NormalizeTermText(terms[i].Text) < model.NormalizeTermText(terms[j].Text)
	})
	return terms
}

// CanRedeem は挽回実行が可能 (results 状態かつ間違いが1語以上) かを返します
func (s *Session) CanRedeem() bool {
	return s.status == model.SessionResults && len(s.wrong) > 0
}

// Redeem は間違えた単語だけで作り直した問題集を受け取り、
// 新しい playing 状態に戻します。間違いが無い場合は no-op としてエラーを返します。
func (s *Session) Redeem(set model.AssessmentSet) error {
	if !s.CanRedeem() {
		return ErrNothingToRedeem
	}
	s.terms = s.WrongTerms()
	s.Set = set
	s.index = 0
	s.answers = make(map[uuid.UUID]model.Answer, len(set.Questions))
	s.wrong = make(map[string]model.Term)
	s.status = model.SessionPlaying
	s.result = nil
	return nil
}

// finish は全問を採点して results 状態へ遷移し、完了コールバックを一度だけ呼びます。
// スコア = 総問題数 − 間違えた単語数 (単語単位で重複排除)。
func (s *Session) finish(ctx context.Context) *model.SessionResult {
	verdicts := make([]model.QuestionVerdict, 0, len(s.Set.Questions))
	for _, q := range s.Set.Questions {
		ans, answered := s.answers[q.ID]
		correct := answered && Grade(q, ans)
		if !correct {
			s.recordWrong(q)
		}
		verdicts = append(verdicts, model.QuestionVerdict{
			QuestionID: q.ID,
			Correct:    correct,
			Answered:   answered,
		})
	}

	total := len(s.Set.Questions)
	score := total - len(s.wrong)
	if score < 0 {
		score = 0
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	s.result = &model.SessionResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Verdicts:   verdicts,
		WrongTerms: lo.Map(s.WrongTerms(), func(t model.Term, _ int) string { return t.Text }),
		CanRedeem:  len(s.wrong) > 0,
	}
	s.status = model.SessionResults

	if s.onComplete != nil {
		s.onComplete(ctx, s.Activity, score, total)
	}
	return s.result
}

func (s *Session) recordWrong(q model.Question) {
	for _, text := range q.TermTexts {
		key := model.NormalizeTermText(text)
		if _, ok := s.wrong[key]; ok {
			continue
		}
		term, found := lo.Find(s.terms, func(t model.Term) bool {
			return model.NormalizeTermText(t.Text) == key
		})
		if !found {
			term = model.Term{Text: text}
		}
		s.wrong[key] = term
	}
}
