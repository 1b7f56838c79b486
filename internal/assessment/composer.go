// internal/assessment/composer.go
package assessment

import (
	"errors"
	"fmt"
	"math/rand"

	"vocab_explorer/internal/model"
)

// MaxQuestions は1回の評価に含める問題数の上限
const MaxQuestions = 25

// ErrNoQuestions は1問も生成できなかった場合に返されます。
// 呼び出し側はこのエラーを受けたらセッションを開始してはいけません。
var ErrNoQuestions = errors.New("no questions could be generated")

// TargetQuestionCount は単語数に応じた目標問題数を返します:
// min(floor(n*1.2)+3, 25)。浮動小数点の丸め誤差を避けるため整数演算で計算します。
func TargetQuestionCount(termCount int) int {
	target := termCount*6/5 + 3
	if target > MaxQuestions {
		return MaxQuestions
	}
	return target
}

// Composer は単語リストから問題集を組み立てます
type Composer struct {
	rng *rand.Rand
}

// NewComposer は Composer を生成します。rng が nil の場合は時刻シードを使います。
func NewComposer(rng *rand.Rand) *Composer {
	if rng == nil {
		rng = NewRand()
	}
	return &Composer{rng: rng}
}

// Compose は評価用の問題集を組み立てます。
//  1. 入力リストを一度だけシャッフルし、以降すべての生成で同じ順序を使う
//  2. 組み合わせ問題を1問試行 (4語以上ある場合)
//  3. 各単語について 4択・穴埋めを試行し、作文は必ず生成
//  4. 生成できた問題をシャッフルして目標数に切り詰める
func (c *Composer) Compose(terms []model.Term) (model.AssessmentSet, error) {
	shuffled := Shuffle(c.rng, terms)

	var questions []model.Question
	if q, ok := NewMatchQuestion(shuffled); ok {
		questions = append(questions, q)
	}
	for _, t := range shuffled {
		if q, ok := NewMultipleChoiceQuestion(c.rng, t, shuffled); ok {
			questions = append(questions, q)
		}
		if q, ok := NewFillBlankQuestion(t); ok {
			questions = append(questions, q)
		}
		questions = append(questions, NewWrittenQuestion(t))
	}

	if len(questions) == 0 {
		return model.AssessmentSet{}, ErrNoQuestions
	}

	questions = Shuffle(c.rng, questions)
	if target := TargetQuestionCount(len(terms)); len(questions) > target {
		questions = questions[:target]
	}

	return model.AssessmentSet{
		Title:     fmt.Sprintf("Vocabulary Assessment (%d questions)", len(questions)),
		Questions: questions,
	}, nil
}

// ComposeQuiz は4択のみのクイズ用問題集を組み立てます。
// 逐次採点フローで使うため、問題形式は multiple_choice に限定されます。
func (c *Composer) ComposeQuiz(terms []model.Term) (model.AssessmentSet, error) {
	shuffled := Shuffle(c.rng, terms)

	var questions []model.Question
	for _, t := range shuffled {
		if q, ok := NewMultipleChoiceQuestion(c.rng, t, shuffled); ok {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return model.AssessmentSet{}, ErrNoQuestions
	}

	if target := TargetQuestionCount(len(terms)); len(questions) > target {
		questions = questions[:target]
	}

	return model.AssessmentSet{
		Title:     fmt.Sprintf("Vocabulary Quiz (%d questions)", len(questions)),
		Questions: questions,
	}, nil
}
