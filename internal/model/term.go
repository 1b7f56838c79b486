// internal/model/term.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TermStatus は単語の学習状態を表します
type TermStatus string

const (
	StatusLearning TermStatus = "learning"
	StatusMastered TermStatus = "mastered"
)

// ReviewLevel はフラッシュカード復習の習熟レベル
type ReviewLevel int

const (
	Level1 ReviewLevel = iota + 1 // 1
	Level2                        // 2
	Level3                        // 3
)

// Meaning は品詞と定義のペアを表します
type Meaning struct {
	PartOfSpeech string `json:"part_of_speech"`
	Definition   string `json:"definition"`
}

// TermDetails は探索済みの詳細情報（例文・コロケーションなど）を保持します
type TermDetails struct {
	Examples     []string `json:"examples,omitempty"`
	Collocations []string `json:"collocations,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
	UsageNote    string   `json:"usage_note,omitempty"`
}

// Term はライブラリに保存される単語エントリを表します。
// テナントごとに小文字化した text が一意になります。
type Term struct {
	TermID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"term_id"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index:idx_tenant_term_key,unique" json:"-"`
	Text     string    `gorm:"not null" json:"text"` // 表示用の表記
	// 検索・一意性判定用のキー (小文字化したText)
	TextKey  string       `gorm:"not null;index:idx_tenant_term_key,unique" json:"-"`
	Meanings []Meaning    `gorm:"serializer:json;not null" json:"meanings"`
	Details  *TermDetails `gorm:"serializer:json" json:"details,omitempty"`

	Status         TermStatus  `gorm:"not null;default:learning" json:"status"`
	ReviewLevel    ReviewLevel `gorm:"not null;default:1" json:"review_level"`
	NextReviewDate time.Time   `gorm:"not null;index" json:"next_review_date"`
	LastReviewedAt *time.Time  `json:"last_reviewed_at,omitempty"`
	MasteredAt     *time.Time  `json:"mastered_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Term) TableName() string {
	return "terms"
}

// NormalizeTermText はライブラリのキーとして使う表記を返します
func NormalizeTermText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// FirstExample は最初の例文を返します (無ければ空文字)
func (t *Term) FirstExample() string {
	if t.Details == nil || len(t.Details.Examples) == 0 {
		return ""
	}
	return t.Details.Examples[0]
}

// FirstDefinition は最初の定義を返します (無ければ空文字)
func (t *Term) FirstDefinition() string {
	if len(t.Meanings) == 0 {
		return ""
	}
	return t.Meanings[0].Definition
}

// 単語検索 (AIルックアップ) リクエストDTO
type LookupTermRequest struct {
	Text string `json:"text" validate:"required,min=1,max=100"`
}

// 単語登録リクエストDTO (AIを介さず手動で登録する場合)
type PostTermRequest struct {
	Text     string    `json:"text" validate:"required,min=1,max=100"`
	Meanings []Meaning `json:"meanings" validate:"required,min=1,dive"`
}

// 学習状態更新リクエストDTO
type PatchTermStatusRequest struct {
	Status TermStatus `json:"status" validate:"required,oneof=learning mastered"`
}

// フラッシュカード結果送信リクエストDTO
type SubmitFlashcardResultRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}

// FlashcardResponse は復習対象単語のレスポンスDTO
type FlashcardResponse struct {
	TermID     uuid.UUID `json:"term_id"`
	Text       string    `json:"text"`
	Definition string    `json:"definition"` // 正解表示用に含める
	Example    string    `json:"example,omitempty"`
	Level      int       `json:"level"`
}
