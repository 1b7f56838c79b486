// internal/model/history.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizResult は完了したセッションの成績を1行として記録します。
// 完了コールバック (activity, score, total) の永続化先です。
type QuizResult struct {
	ResultID   uuid.UUID    `gorm:"type:uuid;primaryKey" json:"result_id"`
	TenantID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	Activity   ActivityType `gorm:"type:varchar(20);not null" json:"activity"`
	Score      int          `gorm:"not null" json:"score"`
	Total      int          `gorm:"not null" json:"total"`
	CreatedAt  time.Time    `json:"created_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

// ActivityStats はアクティビティ種別ごとの集計
type ActivityStats struct {
	Activity   ActivityType `json:"activity"`
	Attempts   int64        `json:"attempts"`
	TotalScore int64        `json:"total_score"`
	TotalMax   int64        `json:"total_max"`
}

// HistoryStatsResponse は成績集計のレスポンスDTO
type HistoryStatsResponse struct {
	Stats []ActivityStats `json:"stats"`
}
