package main

import (
	"context"
	"log"
	"net/http"

	_ "github.com/s5redllms/NoteBuddy/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	"github.com/s5redllms/NoteBuddy/internal/cache"
	"github.com/s5redllms/NoteBuddy/internal/config"
	"github.com/s5redllms/NoteBuddy/internal/db"
	"github.com/s5redllms/NoteBuddy/internal/handler"
	"github.com/s5redllms/NoteBuddy/internal/ollama"
	"github.com/s5redllms/NoteBuddy/internal/repository"
	"github.com/s5redllms/NoteBuddy/internal/router"
	"github.com/s5redllms/NoteBuddy/internal/service"
)

// @title NoteBuddy API
// @version 1.0
// @description Personal productivity API with todos, rich-text notes, AI chat, and an admin panel.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}
	if err := db.Seed(context.Background(), gormDB); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	todoRepo := repository.NewTodoRepository(gormDB)
	noteRepo := repository.NewNoteRepository(gormDB)
	chatRepo := repository.NewChatRepository(gormDB)
	conversationRepo := repository.NewConversationRepository(gormDB)

	// Initialize session components
	tokens := auth.NewTokenService(cfg.SessionSecret)
	sessions := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, sessions)
	todoService := service.NewTodoService(todoRepo)
	noteService := service.NewNoteService(noteRepo)
	chatService := service.NewChatService(chatRepo, ollama.NewClient(cfg.OllamaURL, cfg.OllamaModel))
	conversationService := service.NewConversationService(conversationRepo)
	adminService := service.NewAdminService(userRepo, roleRepo, todoRepo, noteRepo, conversationRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, tokens)
	todoHandler := handler.NewTodoHandler(todoService)
	noteHandler := handler.NewNoteHandler(noteService)
	chatHandler := handler.NewChatHandler(chatService)
	conversationHandler := handler.NewConversationHandler(conversationService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		tokens,
		sessions,
		adminService,
		authHandler,
		todoHandler,
		noteHandler,
		chatHandler,
		conversationHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
