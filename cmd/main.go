package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prajwalb/sameeksha/config"
	"github.com/prajwalb/sameeksha/database"
	_ "github.com/prajwalb/sameeksha/docs" // Swagger docs - auto-generated
	"github.com/prajwalb/sameeksha/internal/controller"
	"github.com/prajwalb/sameeksha/internal/logger"
	"github.com/prajwalb/sameeksha/internal/middleware"
	"github.com/prajwalb/sameeksha/internal/model"
	"github.com/prajwalb/sameeksha/internal/repository"
	"github.com/prajwalb/sameeksha/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Sameeksha Survey API
// @version 1.0
// @description Bilingual (English/Kannada) survey data-collection backend: accounts, draft/submission lifecycle, questionnaire definitions, admin access.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			middleware.NewAuth,
			NewGinEngine, // Provides *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewResponseRepository,
			repository.NewQuestionRepository,
		),

		// Services layer
		fx.Provide(
			func(userRepo repository.UserRepository, auth *middleware.Auth) service.AuthService {
				return service.NewAuthService(userRepo, auth)
			},
			service.NewResponseService,
			service.NewQuestionService,
			func(cfg *config.Config) service.TranslationService {
				return service.NewTranslationService(cfg, nil)
			},
		),

		// API controllers layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewResponseController,
			controller.NewQuestionController,
			controller.NewTranslationController,
		),

		fx.Invoke(MigrateAndSeed),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Request logging through the global zerolog instance.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	auth *middleware.Auth,
	authCtrl *controller.AuthController,
	responseCtrl *controller.ResponseController,
	questionCtrl *controller.QuestionController,
	translationCtrl *controller.TranslationController,
) {
	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/me", auth.RequireAuth(), authCtrl.Me)

		responses := api.Group("/responses", auth.RequireAuth())
		responses.POST("", responseCtrl.Submit)
		responses.GET("", responseCtrl.ListMine)
		responses.POST("/draft", responseCtrl.SaveDraft)
		responses.GET("/draft", responseCtrl.GetDraft)
		responses.GET("/:id", responseCtrl.GetByID)
		responses.DELETE("/:id", middleware.RequireAdmin(), responseCtrl.Delete)

		admin := api.Group("/admin", auth.RequireAuth(), middleware.RequireAdmin())
		admin.GET("/responses", responseCtrl.ListAll)

		questions := api.Group("/questions")
		questions.GET("", questionCtrl.List)
		questions.GET("/:id", questionCtrl.GetByID)
		questions.GET("/id/:index", questionCtrl.GetByIndex)
		questions.POST("", auth.RequireAuth(), middleware.RequireAdmin(), questionCtrl.Create)
		questions.PUT("/:id", auth.RequireAuth(), middleware.RequireAdmin(), questionCtrl.Update)

		api.POST("/translate", translationCtrl.Translate)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Sameeksha API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// MigrateAndSeed runs schema migrations, installs the single-draft constraint,
// and provisions the administrator account.
func MigrateAndSeed(db *gorm.DB, cfg *config.Config, authService service.AuthService) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Response{},
		&model.Question{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	// AutoMigrate cannot express a partial index; this closes the race window
	// between concurrent draft saves at the store layer.
	err = db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_responses_single_draft
		 ON responses (user_id) WHERE status = 'draft' AND deleted_at IS NULL`,
	).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to create single-draft index")
		return err
	}

	if err := authService.SeedAdmin(cfg.Admin); err != nil {
		log.Error().Err(err).Msg("Failed to seed administrator account")
		return err
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
