// internal/assessment/generator.go
package assessment

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"vocab_explorer/internal/model"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	matchTermCount    = 4
	distractorCount   = 3
	mdEmphasisMarkers = "*_"
)

// NewMatchQuestion は単語↔定義の組み合わせ問題を生成します。
// terms はシャッフル済みのリストを想定し、先頭4語を使います。
// 4語に満たない場合や定義を持たない単語が含まれる場合は生成をスキップします。
// 正解マップは位置対応 (item i ↔ target i) で作り、表示順の入れ替えは
// プレゼンテーション層の責務です。
func NewMatchQuestion(terms []model.Term) (model.Question, bool) {
	if len(terms) < matchTermCount {
		return model.Question{}, false
	}
	picked := terms[:matchTermCount]

	items := make([]model.MatchItem, 0, matchTermCount)
	targets := make([]model.MatchTarget, 0, matchTermCount)
	pairs := make(map[string]string, matchTermCount)
	termTexts := make([]string, 0, matchTermCount)

	for i, t := range picked {
		def := t.FirstDefinition()
		if def == "" {
			return model.Question{}, false
		}
		itemID := fmt.Sprintf("i%d", i+1)
		targetID := fmt.Sprintf("t%d", i+1)
		items = append(items, model.MatchItem{ID: itemID, Text: t.Text})
		targets = append(targets, model.MatchTarget{ID: targetID, Text: def})
		pairs[itemID] = targetID
		termTexts = append(termTexts, t.Text)
	}

	return model.Question{
		ID:        uuid.New(),
		Type:      model.QuestionMatch,
		TermTexts: termTexts,
		Match: &model.MatchPayload{
			Items:        items,
			Targets:      targets,
			CorrectPairs: pairs,
		},
	}, true
}

// NewMultipleChoiceQuestion は「この定義に合う単語はどれか」の4択問題を生成します。
// ダミー選択肢は pool の他の単語から重複なしで3つ無作為に選びます。
// 3つ確保できない場合や定義が無い場合はスキップします。
func NewMultipleChoiceQuestion(r *rand.Rand, term model.Term, pool []model.Term) (model.Question, bool) {
	prompt := term.FirstDefinition()
	if prompt == "" {
		return model.Question{}, false
	}

	key := model.NormalizeTermText(term.Text)
	candidates := lo.FilterMap(pool, func(t model.Term, _ int) (string, bool) {
		return t.Text, model.NormalizeTermText(t.Text) != key
	})
	candidates = lo.UniqBy(candidates, model.NormalizeTermText)
	if len(candidates) < distractorCount {
		return model.Question{}, false
	}

	// シャッフルして先頭3つ = 重複なしの一様抽出
	distractors := Shuffle(r, candidates)[:distractorCount]
	options := Shuffle(r, append(distractors, term.Text))

	return model.Question{
		ID:        uuid.New(),
		Type:      model.QuestionMultipleChoice,
		TermTexts: []string{term.Text},
		MultipleChoice: &model.MultipleChoicePayload{
			Prompt:        prompt,
			Options:       options,
			CorrectAnswer: term.Text,
		},
	}, true
}

// NewFillBlankQuestion は例文から穴埋め問題を生成します。
// 例文が1つも無い場合はスキップします。最初の例文からMarkdownの強調記号を
// 取り除き、単語の出現箇所 (大文字小文字を区別しない) をすべて空欄に置換します。
func NewFillBlankQuestion(term model.Term) (model.Question, bool) {
	example := term.FirstExample()
	if example == "" {
		return model.Question{}, false
	}

	sentence := stripEmphasis(example)
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term.Text))
	sentence = pattern.ReplaceAllString(sentence, model.BlankMarker)
	if !strings.Contains(sentence, model.BlankMarker) {
		// 例文中に単語そのものが現れない場合は問題として成立しない
		return model.Question{}, false
	}

	return model.Question{
		ID:        uuid.New(),
		Type:      model.QuestionFillBlank,
		TermTexts: []string{term.Text},
		FillBlank: &model.FillBlankPayload{
			Sentence:      sentence,
			CorrectAnswer: term.Text,
		},
	}, true
}

// NewWrittenQuestion は自由作文問題を生成します。前提条件は無く常に生成されます。
// 模範解答は最初の例文、無ければ汎用の文です。
func NewWrittenQuestion(term model.Term) model.Question {
	modelAnswer := term.FirstExample()
	if modelAnswer == "" {
		modelAnswer = fmt.Sprintf("I learned the word \"%s\" and I can use it in a sentence.", term.Text)
	}

	return model.Question{
		ID:        uuid.New(),
		Type:      model.QuestionWritten,
		TermTexts: []string{term.Text},
		Written: &model.WrittenPayload{
			Prompt:      fmt.Sprintf("Write your own sentence using the word \"%s\".", term.Text),
			ModelAnswer: modelAnswer,
		},
	}
}

// stripEmphasis はMarkdownの強調記号 (** __ * _) を取り除きます
func stripEmphasis(s string) string {
	for _, marker := range []string{"**", "__"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(mdEmphasisMarkers, r) {
			return -1
		}
		return r
	}, s)
}
