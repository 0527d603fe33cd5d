// @title StudyFlow API
// @version 1.0
// @description AI-assisted study planning backend: exams, generated study graphs, quizzes and curriculum insights.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studyflow/internal/adapter"
	"studyflow/internal/cache"
	"studyflow/internal/config"
	"studyflow/internal/database"
	"studyflow/internal/domain"
	"studyflow/internal/genai"
	"studyflow/internal/handler"
	"studyflow/internal/logger"
	"studyflow/internal/middleware"
	"studyflow/internal/repository"
	"studyflow/internal/service"
	"studyflow/internal/validation"

	_ "studyflow/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with its outcome.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(cfg.GetDSN()); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}
	appLogger.Info("Database ready")

	// LLM provider
	ctx := context.Background()
	completer, err := genai.NewClient(ctx, cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))

	// Redis is optional; insights fall back to direct generation when
	// it is unreachable.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, insight caching disabled", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Redis cache initialized")
	}

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	examRepository := repository.NewSQLXExamRepository(db)
	planRepository := repository.NewSQLXPlanRepository(db)
	noteRepository := repository.NewSQLXNoteRepository(db)
	taskRepository := repository.NewSQLXTaskRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)
	recommendationRepository := repository.NewSQLXRecommendationRepository(db)

	// Services
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	userService := service.NewUserService(userRepository)
	examService := service.NewExamService(examRepository)
	noteService := service.NewNoteService(noteRepository)
	taskService := service.NewTaskService(taskRepository)
	planService := service.NewPlanService(completer, examRepository, planRepository)
	insightService := service.NewInsightService(completer, cacheAdapter, taskRepository, cfg.Cache.InsightTTL)
	quizService := service.NewQuizService(completer, quizRepository, recommendationRepository)

	// Handlers
	validator := validation.NewValidator()
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	examHandler := handler.NewExamHandler(examService, validator)
	noteHandler := handler.NewNoteHandler(noteService, validator)
	taskHandler := handler.NewTaskHandler(taskService, validator)
	planHandler := handler.NewPlanHandler(planService, validator)
	insightHandler := handler.NewInsightHandler(insightService, validator)
	quizHandler := handler.NewQuizHandler(quizService, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// User routes
	userGroup := apiGroup.Group("/users", middleware.Protected(authService))
	userGroup.Get("/me", userHandler.GetMyProfile)

	// Exam, note and task CRUD
	examGroup := apiGroup.Group("/exams", middleware.Protected(authService))
	examGroup.Post("/", examHandler.CreateExam)
	examGroup.Get("/", examHandler.GetExams)
	examGroup.Get("/:id", examHandler.GetExam)
	examGroup.Put("/:id", examHandler.UpdateExam)
	examGroup.Delete("/:id", examHandler.DeleteExam)

	noteGroup := apiGroup.Group("/notes", middleware.Protected(authService))
	noteGroup.Post("/", noteHandler.CreateNote)
	noteGroup.Get("/", noteHandler.GetNotes)
	noteGroup.Get("/:id", noteHandler.GetNote)
	noteGroup.Put("/:id", noteHandler.UpdateNote)
	noteGroup.Delete("/:id", noteHandler.DeleteNote)

	taskGroup := apiGroup.Group("/tasks", middleware.Protected(authService))
	taskGroup.Post("/", taskHandler.CreateTask)
	taskGroup.Get("/", taskHandler.GetTasks)
	taskGroup.Put("/:id", taskHandler.UpdateTask)
	taskGroup.Delete("/:id", taskHandler.DeleteTask)

	// Study plan generation
	apiGroup.Post("/study-plan", middleware.Protected(authService), planHandler.GeneratePlan)
	apiGroup.Get("/study-plan", middleware.Protected(authService), planHandler.GetPlan)

	// Curriculum insights; public, no per-user state involved
	apiGroup.Get("/chapters", insightHandler.GetChapters)
	apiGroup.Post("/chapters", insightHandler.GenerateChapters)
	apiGroup.Get("/topics", insightHandler.GetTopics)
	apiGroup.Post("/topics", insightHandler.GenerateTopics)
	apiGroup.Post("/all-topics", insightHandler.GetAllTopics)
	apiGroup.Post("/chapter-flow", insightHandler.GetChapterFlow)
	apiGroup.Post("/explain-concept", insightHandler.ExplainConcept)
	apiGroup.Get("/insights", middleware.Protected(authService), insightHandler.GetTaskInsights)

	// Quizzes and recommendations
	apiGroup.Post("/quiz/generate", middleware.Protected(authService), quizHandler.GenerateQuiz)
	apiGroup.Post("/quiz/submit", middleware.Protected(authService), quizHandler.SubmitQuiz)
	apiGroup.Get("/recommendations", middleware.Protected(authService), quizHandler.GetRecommendations)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
