// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"vocab_explorer/internal/client"
	"vocab_explorer/internal/config"
	"vocab_explorer/internal/handlers"
	"vocab_explorer/internal/middleware"
	"vocab_explorer/internal/repository"
	"vocab_explorer/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発環境では tint の色付きログ、それ以外では JSON ログを使う
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// データベース接続 (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	tenantRepo := repository.NewGormTenantRepository()
	tokenRepo := repository.NewGormTokenRepository()
	termRepo := repository.NewGormTermRepository()
	resultRepo := repository.NewGormResultRepository()

	dictClient := client.NewGeminiClient(config.Cfg.Gemini)
	mailer := service.NewMailer(&config.Cfg)
	sessionStore := service.NewSessionStore()

	authService := service.NewAuthService(db, tenantRepo, tokenRepo, mailer, &config.Cfg)
	termService := service.NewTermService(db, termRepo, dictClient)
	assessmentService := service.NewAssessmentService(db, termRepo, resultRepo, sessionStore)
	flashcardService := service.NewFlashcardService(db, termRepo, resultRepo, &config.Cfg)
	historyService := service.NewHistoryService(db, resultRepo)

	authHandler := handlers.NewAuthHandler(authService)
	termHandler := handlers.NewTermHandler(termService, logger)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, logger)
	flashcardHandler := handlers.NewFlashcardHandler(flashcardService, logger)
	historyHandler := handlers.NewHistoryHandler(historyService, logger)

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Get("/verify", authHandler.VerifyAccount)
			r.Post("/login", authHandler.Login)
			r.Post("/forgot-password", authHandler.RequestPasswordReset)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// --- Protected routes (require JWT) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/auth/me", authHandler.GetMe)

			// Term routes
			r.Route("/terms", func(r chi.Router) {
				r.Post("/lookup", termHandler.LookupTerm)
				r.Post("/", termHandler.PostTerm)
				r.Get("/", termHandler.GetTerms)
				r.Get("/{term_id}", termHandler.GetTerm)
				r.Post("/{term_id}/explore", termHandler.ExploreTerm)
				r.Patch("/{term_id}/status", termHandler.PatchTermStatus)
				r.Delete("/{term_id}", termHandler.DeleteTerm)
			})

			// Assessment routes (まとめて回答する一括テスト)
			r.Route("/assessments", func(r chi.Router) {
				r.Post("/", assessmentHandler.PostAssessment)
				r.Post("/{session_id}/submit", assessmentHandler.SubmitAnswers)
				r.Post("/{session_id}/redeem", assessmentHandler.Redeem)
				r.Delete("/{session_id}", assessmentHandler.DeleteSession)
			})

			// Quiz routes (1問ずつ回答する形式)
			r.Route("/quizzes", func(r chi.Router) {
				r.Post("/", assessmentHandler.PostQuiz)
				r.Post("/{session_id}/answers", assessmentHandler.PostQuizAnswer)
				r.Delete("/{session_id}", assessmentHandler.DeleteSession)
			})

			// Flashcard routes
			r.Route("/flashcards", func(r chi.Router) {
				r.Get("/", flashcardHandler.GetFlashcards)
				r.Get("/count", flashcardHandler.GetFlashcardsCount)
				r.Put("/{term_id}/result", flashcardHandler.SubmitResult)
			})

			// History routes
			r.Route("/history", func(r chi.Router) {
				r.Get("/", historyHandler.GetHistory)
				r.Get("/stats", historyHandler.GetStats)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second, // AI問い合わせを含むため長めに取る
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
