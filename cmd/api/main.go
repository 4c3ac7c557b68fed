package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"echocast/internal/config"
	"echocast/internal/database"
	"echocast/internal/middleware"
	"echocast/internal/modules/auth"
	"echocast/internal/modules/session"
	"echocast/internal/modules/upload"
	jwtsvc "echocast/internal/pkg/jwt"
	"echocast/internal/repository"
	"echocast/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	files, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	sessionService := session.NewService(sessionRepo)
	sessionHandler := session.NewHandler(sessionService)

	uploadService := upload.NewService(sessionRepo, files, cfg.MaxUploadSize)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadSize
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "EchoCast API is running!",
			"endpoints": gin.H{
				"auth":     "/api/v1/auth",
				"sessions": "/api/v1/sessions",
				"upload":   "/api/v1/upload",
			},
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/welcome", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to EchoCast API!",
			"getting_started": []string{
				"1. Register a new account: POST /api/v1/auth/signup",
				"2. Login to get token: POST /api/v1/auth/login",
				"3. Create a session: POST /api/v1/sessions",
				"4. Upload audio file: POST /api/v1/upload",
				"5. View your sessions: GET /api/v1/sessions",
			},
		})
	})

	// Uploaded files are served statically for later retrieval
	r.Static("/uploads", files.Root())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Authenticate(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			sessionHandler.RegisterRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
