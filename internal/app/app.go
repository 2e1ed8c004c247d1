package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	controller "inkwell/internal/controller/http"
	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/internal/usecase"
	"inkwell/pkg/cache"
	"inkwell/pkg/config"
	"inkwell/pkg/database"
	"inkwell/pkg/logger"
	"inkwell/pkg/s3"
	"inkwell/pkg/session"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	sessions    session.Store
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		return nil, err
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := session.NewRedisStore(redisClient, sessionTTL)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		sessions:    sessions,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	postRepo := persistent.NewPostRepository(a.db)
	userRepo := persistent.NewUserRepository(a.db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, a.s3Client, a.log)
	authUseCase := usecase.NewAuthUseCase(userRepo, a.log)

	// Initialize HTTP handlers
	postHandler := controller.NewPostHandler(postUseCase, a.log)
	authHandler := controller.NewAuthHandler(authUseCase, a.sessions, a.log)
	pageHandler := controller.NewPageHandler()

	// Setup router
	gin.SetMode(a.cfg.GinMode)
	r := gin.Default()
	r.LoadHTMLGlob(a.cfg.TemplateGlob)

	r.Use(secure.New(secure.Config{
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		FrameDeny:          true,
	}))

	sessionTTL := time.Duration(a.cfg.SessionTTLHours) * time.Hour
	r.Use(controller.SessionContext(a.sessions, authUseCase, sessionTTL, a.log))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Informational pages
	r.GET("/", pageHandler.Root)
	r.GET("/home", pageHandler.Home)
	r.GET("/Main", pageHandler.Main)
	r.GET("/library", pageHandler.Library)
	r.GET("/About", pageHandler.About)

	// Auth
	r.GET("/sign", authHandler.SignupForm)
	r.POST("/sign", authHandler.Signup)
	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// One identical route set per category
	for _, category := range entity.Categories {
		cat := category
		r.GET("/"+string(cat)+"/new", postHandler.NewForm(cat))
		r.POST("/"+string(cat), postHandler.Create(cat))
		r.GET("/"+string(cat), postHandler.List(cat))
		r.GET("/"+string(cat)+"/:id", postHandler.Show(cat))
		r.DELETE("/"+string(cat)+"/:id", postHandler.Delete(cat))
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: methodOverride(r),
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Inkwell starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

// methodOverride lets HTML forms issue DELETE through a
// POST /path?_method=DELETE request.
func methodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch strings.ToUpper(r.URL.Query().Get("_method")) {
			case http.MethodDelete:
				r.Method = http.MethodDelete
			case http.MethodPut:
				r.Method = http.MethodPut
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if err := a.redisClient.Close(); err != nil {
		a.log.Error("Error closing Redis: %v", err)
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Inkwell exited")
	return nil
}
