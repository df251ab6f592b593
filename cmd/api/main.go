package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/safety-training-api/internal/config"
	"github.com/yourusername/safety-training-api/internal/handler"
	"github.com/yourusername/safety-training-api/internal/middleware"
	pgRepo "github.com/yourusername/safety-training-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/safety-training-api/internal/repository/redis"
	"github.com/yourusername/safety-training-api/internal/service"
	"github.com/yourusername/safety-training-api/pkg/auth"
	"github.com/yourusername/safety-training-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	accessCodeRepo := pgRepo.NewAccessCodeRepo(db)
	workerRepo := pgRepo.NewWorkerRepo(db)
	videoRepo := pgRepo.NewVideoRepo(db)
	progressRepo := pgRepo.NewProgressRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)
	adminRepo := pgRepo.NewAdminRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	accessCodeService := service.NewAccessCodeService(accessCodeRepo)
	workerService := service.NewWorkerService(workerRepo, accessCodeRepo, db)
	trainingService := service.NewTrainingService(progressRepo, videoRepo, workerRepo)
	questionService := service.NewQuestionService(questionRepo)
	videoService := service.NewVideoService(videoRepo, cacheRepo, cfg.Storage.VideoDir)
	examService := service.NewExamService(questionRepo, resultRepo, workerRepo, trainingService, db)
	resultService := service.NewResultService(resultRepo)
	adminAuthService := service.NewAdminAuthService(adminRepo, jwtService)

	// Бутстрап администратора по умолчанию (только для пустой таблицы)
	if err := adminAuthService.EnsureDefaultAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Printf("Failed to ensure default admin: %v", err)
		os.Exit(1)
	}

	// Инициализируем обработчики
	workerHandler := handler.NewWorkerHandler(workerService, accessCodeService)
	videoHandler := handler.NewVideoHandler(videoService, trainingService)
	examHandler := handler.NewExamHandler(examService)
	authHandler := handler.NewAuthHandler(adminAuthService)
	adminHandler := handler.NewAdminHandler(accessCodeService, questionService, videoService, workerService, resultService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(cacheRepo)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Проверка кода и регистрация работника
		api.POST("/verify-code", rateLimiter.Limit(middleware.CodeVerifyRateLimitConfig()), workerHandler.VerifyCode)

		workers := api.Group("/workers")
		{
			workers.POST("/register", rateLimiter.Limit(middleware.RegisterRateLimitConfig()), workerHandler.Register)
			workers.GET("/:employee_number", workerHandler.GetByEmployeeNumber)
		}

		// Каталог видео и прогресс просмотра
		videos := api.Group("/videos")
		{
			videos.GET("", videoHandler.ListVideos)
			videos.POST("/watch", videoHandler.MarkWatched)
			videos.GET("/progress/:worker_id",
				middleware.ExtractUintParam("worker_id", "workerID"), videoHandler.GetProgress)
			videos.GET("/stream/:id",
				middleware.ExtractUintParam("id", "videoID"), videoHandler.StreamVideo)
		}

		// Экзамен
		api.GET("/questions/random/:worker_id",
			middleware.ExtractUintParam("worker_id", "workerID"), examHandler.GetRandomQuestions)
		exam := api.Group("/exam")
		{
			exam.POST("/submit", examHandler.SubmitExam)
			exam.GET("/results/:worker_id",
				middleware.ExtractUintParam("worker_id", "workerID"), examHandler.GetWorkerResults)
		}

		// Панель администратора
		admin := api.Group("/admin")
		{
			admin.POST("/login", rateLimiter.Limit(middleware.AdminLoginRateLimitConfig()), authHandler.Login)

			authed := admin.Group("")
			authed.Use(authMiddleware.RequireAdmin())
			{
				codes := authed.Group("/access-codes")
				{
					codes.POST("", adminHandler.CreateAccessCode)
					codes.GET("", adminHandler.ListAccessCodes)
					codes.DELETE("/:id",
						middleware.ExtractUintParam("id", "codeID"), adminHandler.DeleteAccessCode)
				}

				questions := authed.Group("/questions")
				{
					questions.POST("", adminHandler.CreateQuestion)
					questions.GET("", adminHandler.ListQuestions)
					questions.PUT("/:id",
						middleware.ExtractUintParam("id", "questionID"), adminHandler.UpdateQuestion)
					questions.DELETE("/:id",
						middleware.ExtractUintParam("id", "questionID"), adminHandler.DeleteQuestion)
				}

				adminVideos := authed.Group("/videos")
				{
					adminVideos.POST("", adminHandler.UploadVideo)
					adminVideos.DELETE("/:id",
						middleware.ExtractUintParam("id", "videoID"), adminHandler.DeleteVideo)
				}

				adminWorkers := authed.Group("/workers")
				{
					adminWorkers.PUT("/:id/allow-retake",
						middleware.ExtractUintParam("id", "workerID"), adminHandler.AllowRetake)
					adminWorkers.DELETE("/:id",
						middleware.ExtractUintParam("id", "workerID"), adminHandler.DeleteWorker)
				}

				authed.GET("/results", adminHandler.ListResults)
				authed.GET("/results/export", adminHandler.ExportResults)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown по SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited")
}
