package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	database "github.com/sebuszqo/TriviaAPI/db"
	"github.com/sebuszqo/TriviaAPI/internal/config"
	"github.com/sebuszqo/TriviaAPI/internal/response"
	"github.com/sebuszqo/TriviaAPI/internal/trivia/application"
	"github.com/sebuszqo/TriviaAPI/internal/trivia/infrastructure"
	"github.com/sebuszqo/TriviaAPI/internal/trivia/interfaces"
)

type Server struct {
	router          *chi.Mux
	dbService       *database.DBService
	categoryHandler *interfaces.CategoryHandler
	questionHandler *interfaces.QuestionHandler
	quizHandler     *interfaces.QuizHandler
}

func NewServer(dbService *database.DBService, categoryHandler *interfaces.CategoryHandler, questionHandler *interfaces.QuestionHandler, quizHandler *interfaces.QuizHandler) *Server {
	return &Server{
		dbService:       dbService,
		categoryHandler: categoryHandler,
		questionHandler: questionHandler,
		quizHandler:     quizHandler,
		router:          chi.NewRouter(),
	}
}

// newServerFromDB wires repositories, services and handlers on top of an open database.
func newServerFromDB(dbService *database.DBService, selector *application.Selector) *Server {
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	questionRepo := infrastructure.NewQuestionRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo)
	questionService := application.NewQuestionService(questionRepo, categoryRepo)
	quizService := application.NewQuizService(questionRepo, selector)

	categoryHandler := interfaces.NewCategoryHandler(categoryService, questionService, response.JSON, response.Error)
	questionHandler := interfaces.NewQuestionHandler(questionService, response.JSON, response.Error)
	quizHandler := interfaces.NewQuizHandler(quizService, response.JSON, response.Error)

	server := NewServer(dbService, categoryHandler, questionHandler, quizHandler)
	server.RegisterRoutes()
	return server
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, s.dbService.Health(r.Context()))
}

func (s *Server) RegisterRoutes() {
	r := chi.NewRouter()
	r.Use(loggingMiddleware, recoverMiddleware, corsMiddleware)

	r.NotFound(interfaces.NotFoundHandler(response.Error))
	r.MethodNotAllowed(interfaces.MethodNotAllowedHandler(response.Error))

	r.Get("/health", s.handleHealth)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", s.categoryHandler.GetCategories)
		r.Get("/{categoryID}/questions", s.categoryHandler.GetCategoryQuestions)
	})

	r.Route("/questions", func(r chi.Router) {
		r.Get("/", s.questionHandler.GetQuestions)
		r.Post("/", s.questionHandler.CreateQuestion)
		r.Post("/search", s.questionHandler.SearchQuestions)
		r.Delete("/{questionID}", s.questionHandler.DeleteQuestion)
	})

	r.Post("/quizzes", s.quizHandler.PlayQuiz)

	s.router = r
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	dbService, err := database.NewDBService(cfg)
	if err != nil {
		slog.Error("Could not initialize database", "error", err)
		os.Exit(1)
	}
	defer dbService.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dbService.EnsureSchema(ctx); err != nil {
		slog.Error("Could not prepare schema", "error", err)
		os.Exit(1)
	}
	if cfg.SeedData {
		if err := dbService.Seed(ctx); err != nil {
			slog.Error("Could not seed database", "error", err)
			os.Exit(1)
		}
	}

	server := newServerFromDB(dbService, application.NewSelector())

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}()

	slog.Info("Server starting", "addr", cfg.Addr(), "driver", cfg.DBDriver)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
