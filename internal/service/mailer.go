package service

import (
	"context"
	"log/slog"

	"vocab_explorer/internal/config"
	"vocab_explorer/internal/middleware"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer はメールを送信せずログに出すだけの開発用実装です
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// NewMailer はSESの設定があればSESMailerを、無ければLogMailerを返します
func NewMailer(cfg *config.Config) Mailer {
	logger := slog.Default()
	if cfg.SES.Region != "" && cfg.SES.Sender != "" {
		logger.Info("Initializing SES mailer...", "region", cfg.SES.Region)
		return NewSESMailer(cfg)
	}
	logger.Info("Initializing Log mailer...")
	return &LogMailer{}
}
