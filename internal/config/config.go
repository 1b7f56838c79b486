// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name           string `mapstructure:"name"`
		FlashcardLimit int    `mapstructure:"flashcard_limit"`
	} `mapstructure:"app"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	SES      SESConfig    `mapstructure:"ses"`
	Gemini   GeminiConfig `mapstructure:"gemini"`
	Frontend struct {
		BaseURL string `mapstructure:"base_url"` // 認証メールのリンク生成用
	} `mapstructure:"frontend"`
}

// SESConfig は AWS SES によるメール送信の設定です
type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Sender          string `mapstructure:"sender"`
}

// GeminiConfig は生成AI (Gemini) クライアントの設定です。
// FallbackAPIKey は主キーが認証/クォータで失敗した場合の再試行に使います。
type GeminiConfig struct {
	APIKey         string `mapstructure:"api_key"`
	FallbackAPIKey string `mapstructure:"fallback_api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数を自動で読み込む (例: APP_JWT_SECRET_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("gemini.fallback_api_key", "GEMINI_FALLBACK_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.App.Name == "" {
		Cfg.App.Name = AppName
	}
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.FlashcardLimit <= 0 {
		log.Printf("Flashcard limit not set or invalid, using default '%d'", DefaultFlashcardLimit)
		Cfg.App.FlashcardLimit = DefaultFlashcardLimit
	}
	if Cfg.JWT.AccessTokenTTL <= 0 {
		Cfg.JWT.AccessTokenTTL = 24 * time.Hour
	}
	if Cfg.Gemini.Model == "" {
		Cfg.Gemini.Model = DefaultGeminiModel
	}
	if Cfg.Gemini.TimeoutSeconds <= 0 {
		Cfg.Gemini.TimeoutSeconds = DefaultGeminiTimeout
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.Gemini.APIKey == "" {
		log.Println("Warning: Gemini API key is not set. Term lookup will fail.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Flashcard Limit: %d", Cfg.App.FlashcardLimit)
	log.Printf("Gemini Model: %s", Cfg.Gemini.Model)

	return nil
}
