package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"skillsconnect/internal/config"
	"skillsconnect/internal/database"
	"skillsconnect/internal/domain"
	"skillsconnect/internal/middleware"
	"skillsconnect/internal/modules/admin"
	"skillsconnect/internal/modules/ads"
	"skillsconnect/internal/modules/auth"
	"skillsconnect/internal/modules/directory"
	"skillsconnect/internal/modules/review"
	"skillsconnect/internal/modules/search"
	"skillsconnect/internal/modules/upload"
	jwtsvc "skillsconnect/internal/pkg/jwt"
	"skillsconnect/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.Artisan{},
		&domain.User{},
		&domain.Review{},
		&domain.Ad{},
		&domain.SearchRequestLog{},
		&upload.Document{},
	); err != nil {
		log.Fatal(err)
	}

	artisanRepo := repository.NewArtisanRepository(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	adRepo := repository.NewAdRepository(db)
	searchLogRepo := repository.NewSearchLogRepository(db)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	mailer := auth.NewConsoleMailer(!isProd(cfg.AppEnv))

	searchService := search.NewService(artisanRepo, searchLogRepo)
	searchHandler := search.NewHandler(searchService)

	directoryService := directory.NewService(artisanRepo, userRepo)
	directoryHandler := directory.NewHandler(directoryService)

	adminService := admin.NewService(artisanRepo, searchLogRepo, adRepo)
	adminHandler := admin.NewHandler(adminService)

	adsService := ads.NewService(adRepo)
	adsHandler := ads.NewHandler(adsService)

	authService := auth.NewService(userRepo, jwtService, mailer,
		cfg.VerificationCodePepper, cfg.VerifyCodeTTL, cfg.VerifyResendCooldown)
	authHandler := auth.NewHandler(authService)

	reviewService := review.NewService(reviewRepo, artisanRepo)
	reviewHandler := review.NewHandler(reviewService)

	uploadService := upload.NewService(upload.NewRepository(db), cfg.UploadDir, upload.StaticURLBase)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(upload.StaticURLBase, cfg.UploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		searchHandler.RegisterRoutes(v1)
		directoryHandler.RegisterRoutes(v1)
		adsHandler.RegisterRoutes(v1)
		authHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)

		// authenticated
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(jwtService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			directoryHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
		}

		// admin
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(jwtService), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
			adsHandler.RegisterAdminRoutes(adminGroup)
			directoryHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func isProd(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}
