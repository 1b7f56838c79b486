// internal/model/assessment.go
package model

import (
	"github.com/google/uuid"
)

// QuestionType は問題形式のタグ (tagged union の判別子)
type QuestionType string

const (
	QuestionMatch          QuestionType = "match"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionFillBlank      QuestionType = "fill_blank"
	QuestionWritten        QuestionType = "written"
)

// BlankMarker は穴埋め問題で単語の代わりに埋め込む記号
const BlankMarker = "_____"

// MatchItem は組み合わせ問題の左側 (単語) の1項目
type MatchItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MatchTarget は組み合わせ問題の右側 (定義) の1項目
type MatchTarget struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MatchPayload は単語と定義を結び付ける問題のデータ。
// CorrectPairs は item ID → target ID の全単射です。
type MatchPayload struct {
	Items        []MatchItem       `json:"items"`
	Targets      []MatchTarget     `json:"targets"`
	CorrectPairs map[string]string `json:"correct_pairs"`
}

// MultipleChoicePayload は4択問題のデータ
type MultipleChoicePayload struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// FillBlankPayload は穴埋め問題のデータ
type FillBlankPayload struct {
	Sentence      string `json:"sentence"`
	CorrectAnswer string `json:"correct_answer"`
}

// WrittenPayload は自由作文問題のデータ
type WrittenPayload struct {
	Prompt      string `json:"prompt"`
	ModelAnswer string `json:"model_answer"`
}

// Question は4形式のいずれかを表す tagged union。
// Type に対応するペイロードのみが非nilになります。
type Question struct {
	ID   uuid.UUID    `json:"id"`
	Type QuestionType `json:"type"`
	// 出題元の単語表記。間違えた単語の記録 (単語単位の重複排除) に使う。
	// 組み合わせ問題は複数の単語にまたがる。
	TermTexts []string `json:"-"`

	Match          *MatchPayload          `json:"match,omitempty"`
	MultipleChoice *MultipleChoicePayload `json:"multiple_choice,omitempty"`
	FillBlank      *FillBlankPayload      `json:"fill_blank,omitempty"`
	Written        *WrittenPayload        `json:"written,omitempty"`
}

// Answer はユーザーの1問分の解答。問題形式に応じたフィールドのみ使われます。
type Answer struct {
	Selected string            `json:"selected,omitempty"` // 4択: 選んだ選択肢
	Text     string            `json:"text,omitempty"`     // 穴埋め・作文: 入力テキスト
	Pairs    map[string]string `json:"pairs,omitempty"`    // 組み合わせ: item ID → target ID
}

// AssessmentSet は生成された問題集 (タイトル + 順序付き問題列)
type AssessmentSet struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// ActivityType は学習アクティビティの種別 (履歴記録用)
type ActivityType string

const (
	ActivityAssessment ActivityType = "assessment"
	ActivityQuiz       ActivityType = "quiz"
	ActivityFlashcards ActivityType = "flashcards"
)

// SessionStatus はセッションの状態タグ
type SessionStatus string

const (
	SessionPlaying SessionStatus = "playing"
	SessionResults SessionStatus = "results"
)

// QuestionVerdict は1問分の採点結果
type QuestionVerdict struct {
	QuestionID uuid.UUID `json:"question_id"`
	Correct    bool      `json:"correct"`
	Answered   bool      `json:"answered"`
}

// SessionResult は results 状態のセッションが公開する最終結果
type SessionResult struct {
	Score      int               `json:"score"`
	Total      int               `json:"total"`
	Percentage float64           `json:"percentage"`
	Verdicts   []QuestionVerdict `json:"verdicts"`
	WrongTerms []string          `json:"wrong_terms"`
	CanRedeem  bool              `json:"can_redeem"`
}

// --- API DTO ---

// PostAssessmentRequest は評価セッション生成リクエスト。
// TermIDs を省略すると学習中の全単語が対象になります。
type PostAssessmentRequest struct {
	TermIDs []uuid.UUID `json:"term_ids,omitempty" validate:"omitempty,min=1"`
}

// SubmitAnswersRequest は評価の一括解答送信リクエスト (問題ID → 解答)
type SubmitAnswersRequest struct {
	Answers map[string]Answer `json:"answers" validate:"required"`
}

// SubmitQuizAnswerRequest はクイズの逐次解答リクエスト
type SubmitQuizAnswerRequest struct {
	Answer Answer `json:"answer"`
}

// SessionResponse はセッション開始時に返す情報。
// 問題は正解情報を取り除いた形で含めます。
type SessionResponse struct {
	SessionID uuid.UUID     `json:"session_id"`
	Activity  ActivityType  `json:"activity"`
	Status    SessionStatus `json:"status"`
	Title     string        `json:"title"`
	Questions []Question    `json:"questions"`
}

// QuizAnswerResponse は逐次採点の1問分の応答
type QuizAnswerResponse struct {
	Correct       bool           `json:"correct"`
	CorrectAnswer string         `json:"correct_answer"`
	Finished      bool           `json:"finished"`
	Next          *Question      `json:"next,omitempty"`
	Result        *SessionResult `json:"result,omitempty"`
}
