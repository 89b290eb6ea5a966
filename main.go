package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kartify-commerce/kartify-backend/cascade"
	"github.com/kartify-commerce/kartify-backend/config"
	_ "github.com/kartify-commerce/kartify-backend/docs"
	"github.com/kartify-commerce/kartify-backend/middleware"
	"github.com/kartify-commerce/kartify-backend/routes"
	"github.com/kartify-commerce/kartify-backend/services"
	"github.com/kartify-commerce/kartify-backend/store"
)

// @title Kartify Backend API
// @version 1.0
// @description Multi-platform e-commerce backend with admin, client and device surfaces.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal().Err(err).Msg("[main] failed to load configuration")
	}
	config.InitLogger()
	config.InitDB()
	config.ConnectRedis()
	defer config.CloseDB()

	st := store.NewGormStore(config.DB)

	tokens, err := services.NewTokenService(
		config.App.AdminJWTSecret,
		config.App.DeviceJWTSecret,
		config.App.ClientJWTSecret,
		config.App.TokenExpiry,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("[main] failed to initialize token service")
	}

	var mailer services.Mailer
	var resend *services.ResendClient
	if config.App.ResendAPIKey != "" {
		resend = services.NewResendClient(config.App.ResendAPIKey, config.App.ResendFromEmail)
		mailer = resend
	}
	var sms services.SMSSender
	if config.App.SMSGatewayURL != "" {
		sms = services.NewHTTPSMSGateway(config.App.SMSGatewayURL, config.App.SMSGatewayKey)
	}

	authService := services.NewAuthService(st, tokens, mailer, sms, services.AuthServiceOptions{
		MaxLoginRetry:  config.App.MaxLoginRetry,
		ReactiveWindow: config.App.LoginReactiveTime,
		ResetExpiry:    config.App.ResetCodeExpiry,
		ResetWithEmail: config.App.ResetPasswordWithEmail,
		ResetWithSMS:   config.App.ResetPasswordWithSMS,
		AppBaseURL:     config.App.AppBaseURL,
	})

	var cld *services.CloudinaryService
	if config.App.CloudinaryCloudName != "" {
		cld, err = services.NewCloudinaryService(
			config.App.CloudinaryCloudName,
			config.App.CloudinaryAPIKey,
			config.App.CloudinaryAPISecret,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("[main] failed to initialize Cloudinary")
		}
	}

	deps := &routes.Deps{
		Store:                st,
		Tokens:               tokens,
		Auth:                 authService,
		Resolver:             cascade.NewResolver(st),
		Cloudinary:           cld,
		InvoiceMailer:        resend,
		Redis:                config.RedisClient,
		AllowUserWithoutRole: config.App.AllowUserWithoutRole,
	}

	if config.App.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}
	router.Use(cors.New(corsCfg))

	api := router.Group("")
	routes.SetupAdminRoutes(api, deps)
	routes.SetupClientRoutes(api, deps)
	routes.SetupDeviceRoutes(api, deps)
	log.Info().Msg("[main] routes registered")

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("port", config.App.Port).Msg("[main] server starting")
	if err := router.Run(":" + config.App.Port); err != nil {
		log.Fatal().Err(err).Msg("[main] server exited")
	}
}
