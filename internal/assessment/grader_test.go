// internal/assessment/grader_test.go
package assessment

import (
	"testing"

	"vocab_explorer/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGrade_Match(t *testing.T) {
	q := model.Question{
		ID:   uuid.New(),
		Type: model.QuestionMatch,
		Match: &model.MatchPayload{
			Items:   []model.MatchItem{{ID: "i1", Text: "a"}, {ID: "i2", Text: "b"}},
			Targets: []model.MatchTarget{{ID: "t1", Text: "def a"}, {ID: "t2", Text: "def b"}},
			CorrectPairs: map[string]string{
				"i1": "t1",
				"i2": "t2",
			},
		},
	}

	tests := []struct {
		name string
		ans  model.Answer
		want bool
	}{
		{name: "正常系: 完全一致で正解", ans: model.Answer{Pairs: map[string]string{"i1": "t1", "i2": "t2"}}, want: true},
		{name: "異常系: 1組でも違えば不正解", ans: model.Answer{Pairs: map[string]string{"i1": "t2", "i2": "t1"}}, want: false},
		{name: "異常系: ペア数が足りない", ans: model.Answer{Pairs: map[string]string{"i1": "t1"}}, want: false},
		{name: "異常系: ペア数が多い", ans: model.Answer{Pairs: map[string]string{"i1": "t1", "i2": "t2", "i3": "t3"}}, want: false},
		{name: "異常系: 未解答", ans: model.Answer{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(q, tt.ans))
		})
	}
}

func TestGrade_MultipleChoice(t *testing.T) {
	q := model.Question{
		ID:   uuid.New(),
		Type: model.QuestionMultipleChoice,
		MultipleChoice: &model.MultipleChoicePayload{
			Prompt:        "unclear in meaning",
			Options:       []string{"candid", "ambiguous", "vivid", "prudent"},
			CorrectAnswer: "ambiguous",
		},
	}

	tests := []struct {
		name string
		ans  model.Answer
		want bool
	}{
		{name: "正常系: 完全一致で正解", ans: model.Answer{Selected: "ambiguous"}, want: true},
		{name: "異常系: 別の選択肢", ans: model.Answer{Selected: "candid"}, want: false},
		{name: "異常系: 大文字小文字違いは不正解 (厳密一致)", ans: model.Answer{Selected: "Ambiguous"}, want: false},
		{name: "異常系: 未解答", ans: model.Answer{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(q, tt.ans))
		})
	}
}

func TestGrade_FillBlank(t *testing.T) {
	q := model.Question{
		ID:   uuid.New(),
		Type: model.QuestionFillBlank,
		FillBlank: &model.FillBlankPayload{
			Sentence:      "The contract was _____ in places.",
			CorrectAnswer: "ambiguous",
		},
	}

	tests := []struct {
		name string
		ans  model.Answer
		want bool
	}{
		{name: "正常系: 完全一致", ans: model.Answer{Text: "ambiguous"}, want: true},
		{name: "正常系: 大文字小文字と前後空白は無視", ans: model.Answer{Text: "  Ambiguous "}, want: true},
		{name: "異常系: 別の単語", ans: model.Answer{Text: "obvious"}, want: false},
		{name: "異常系: 未解答", ans: model.Answer{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(q, tt.ans))
		})
	}
}

func TestGrade_Written(t *testing.T) {
	q := model.Question{
		ID:   uuid.New(),
		Type: model.QuestionWritten,
		Written: &model.WrittenPayload{
			Prompt:      "Write your own sentence using the word \"vivid\".",
			ModelAnswer: "She has vivid memories.",
		},
	}

	tests := []struct {
		name string
		ans  model.Answer
		want bool
	}{
		{name: "正常系: 何か書いてあれば正解扱い", ans: model.Answer{Text: "My dream was vivid."}, want: true},
		{name: "異常系: 空文字", ans: model.Answer{Text: ""}, want: false},
		{name: "異常系: 空白のみ", ans: model.Answer{Text: "   \t  "}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(q, tt.ans))
		})
	}
}

func TestGrade_DoesNotMutateQuestion(t *testing.T) {
	q := model.Question{
		ID:   uuid.New(),
		Type: model.QuestionFillBlank,
		FillBlank: &model.FillBlankPayload{
			Sentence:      "A _____ sentence.",
			CorrectAnswer: "short",
		},
	}
	before := *q.FillBlank

	_ = Grade(q, model.Answer{Text: "SHORT"})
	_ = Grade(q, model.Answer{Text: "wrong"})

	assert.Equal(t, before, *q.FillBlank)
}
