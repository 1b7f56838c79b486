// internal/assessment/grader.go
package assessment

import (
	"strings"

	"vocab_explorer/internal/model"
)

// Grade は1問分の正誤を判定します。問題データは変更せず、判定結果のみ返します。
// 形式ごとの判定基準:
//   - match:           提出されたペアが正解マップとサイズ・キーとも完全一致
//   - multiple_choice: 選択肢文字列の完全一致
//   - fill_blank:      前後空白を除去し小文字化した上での一致
//   - written:         空白を除いて空でなければ正解扱い (内容は採点しない)
//
// 未知の形式は不正解として扱います (fail closed)。
func Grade(q model.Question, ans model.Answer) bool {
	switch q.Type {
	case model.QuestionMatch:
		return gradeMatch(q.Match, ans.Pairs)
	case model.QuestionMultipleChoice:
		if q.MultipleChoice == nil {
			return false
		}
		return ans.Selected == q.MultipleChoice.CorrectAnswer
	case model.QuestionFillBlank:
		if q.FillBlank == nil {
			return false
		}
		return normalizeAnswer(ans.Text) == normalizeAnswer(q.FillBlank.CorrectAnswer)
	case model.QuestionWritten:
		return strings.TrimSpace(ans.Text) != ""
	default:
		return false
	}
}

func gradeMatch(payload *model.MatchPayload, pairs map[string]string) bool {
	if payload == nil || len(pairs) != len(payload.CorrectPairs) {
		return false
	}
	for itemID, targetID := range payload.CorrectPairs {
		if pairs[itemID] != targetID {
			return false
		}
	}
	return true
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
