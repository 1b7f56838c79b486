// internal/assessment/composer_test.go
package assessment

import (
	"math/rand"
	"testing"

	"vocab_explorer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetQuestionCount(t *testing.T) {
	tests := []struct {
		name      string
		termCount int
		want      int
	}{
		{name: "正常系: 10語 → floor(12)+3 = 15", termCount: 10, want: 15},
		{name: "正常系: 5語 → 6+3 = 9", termCount: 5, want: 9},
		{name: "正常系: 1語 → 1+3 = 4", termCount: 1, want: 4},
		{name: "正常系: 3語 → floor(3.6)+3 = 6", termCount: 3, want: 6},
		{name: "正常系: 上限25で頭打ち", termCount: 100, want: 25},
		{name: "正常系: 0語 → 3 (実際は生成失敗になる)", termCount: 0, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetQuestionCount(tt.termCount))
		})
	}
}

func TestComposer_Compose(t *testing.T) {
	t.Run("正常系: 10語から目標数ちょうどに切り詰める", func(t *testing.T) {
		c := NewComposer(rand.New(rand.NewSource(11)))
		terms := make([]model.Term, 0, 10)
		for _, p := range testPool(10) {
			p.Details = &model.TermDetails{Examples: []string{"An example sentence with " + p.Text + "."}}
			terms = append(terms, p)
		}

		set, err := c.Compose(terms)
		require.NoError(t, err)

		// 全単語が例文付きなので 1 (match) + 10*3 = 31問の候補があり、
		// 目標数 15 まで切り詰められる
		assert.Len(t, set.Questions, 15)
		assert.Contains(t, set.Title, "15")

		// 問題IDは問題集の中で一意
		seen := make(map[string]bool)
		for _, q := range set.Questions {
			assert.False(t, seen[q.ID.String()], "問題IDが重複している")
			seen[q.ID.String()] = true
		}
	})

	t.Run("正常系: 例文なし・3語では作文と4択以外が抜ける", func(t *testing.T) {
		c := NewComposer(rand.New(rand.NewSource(5)))
		terms := testPool(3)

		set, err := c.Compose(terms)
		require.NoError(t, err)

		// 3語: match不可・4択不可 (ダミー2語のみ)・穴埋め不可 → 作文3問のみ
		assert.Len(t, set.Questions, 3)
		for _, q := range set.Questions {
			assert.Equal(t, model.QuestionWritten, q.Type)
		}
	})

	t.Run("異常系: 単語ゼロでは ErrNoQuestions", func(t *testing.T) {
		c := NewComposer(rand.New(rand.NewSource(5)))
		_, err := c.Compose(nil)
		assert.ErrorIs(t, err, ErrNoQuestions)
	})
}

func TestComposer_ComposeQuiz(t *testing.T) {
	t.Run("正常系: 4択のみで構成される", func(t *testing.T) {
		c := NewComposer(rand.New(rand.NewSource(23)))
		set, err := c.ComposeQuiz(testPool(6))
		require.NoError(t, err)

		require.NotEmpty(t, set.Questions)
		for _, q := range set.Questions {
			assert.Equal(t, model.QuestionMultipleChoice, q.Type)
			require.NotNil(t, q.MultipleChoice)
			assert.Len(t, q.MultipleChoice.Options, 4)
		}
	})

	t.Run("異常系: 3語ではダミー不足で ErrNoQuestions", func(t *testing.T) {
		c := NewComposer(rand.New(rand.NewSource(23)))
		_, err := c.ComposeQuiz(testPool(3))
		assert.ErrorIs(t, err, ErrNoQuestions)
	})
}
