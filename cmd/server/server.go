package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"todopro-server/internal/config"
	"todopro-server/internal/domain/chat"
	"todopro-server/internal/domain/task"
	"todopro-server/internal/domain/tool"
	"todopro-server/internal/domain/user"
	"todopro-server/internal/infrastructure/auth"
	"todopro-server/internal/infrastructure/database"
	"todopro-server/internal/infrastructure/llmclient"
	"todopro-server/internal/infrastructure/logger"
	conversationrepo "todopro-server/internal/infrastructure/repository/conversation"
	taskrepo "todopro-server/internal/infrastructure/repository/task"
	userrepo "todopro-server/internal/infrastructure/repository/user"
	"todopro-server/internal/interfaces/httpserver"
	"todopro-server/internal/interfaces/httpserver/handlers"
)

type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	tokenService := auth.NewTokenService(cfg.JWTSecretKey, cfg.AccessTokenTTL)

	userRepository := userrepo.NewRepository(db)
	taskRepository := taskrepo.NewRepository(db)
	conversationRepository := conversationrepo.NewRepository(db)
	messageRepository := conversationrepo.NewMessageRepository(db)

	userService := user.NewService(userRepository, tokenService)
	taskService := task.NewService(taskRepository)

	registry := tool.NewRegistry(taskService)
	completer := llmclient.NewClient(llmclient.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})
	chatService := chat.NewService(conversationRepository, messageRepository, registry, completer, log)

	handlerProvider := handlers.NewProvider(userService, taskService, chatService, log)
	httpServer := httpserver.New(cfg, log, handlerProvider, tokenService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
