// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "vocab-explorer"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultFlashcardLimit = 20
	DefaultGeminiModel    = "gemini-1.5-flash"
	DefaultGeminiTimeout  = 30 // 秒
)

// Gemini API のエンドポイント (モデル名とAPIキーを埋め込んで使う)
const GeminiAPIEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
