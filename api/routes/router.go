package routes

import (
	"hashlab/internal/config"
	"hashlab/internal/dao"
	"hashlab/internal/handlers"
	"hashlab/internal/handlers/web"
	"hashlab/internal/services"
	"hashlab/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InitRouter wires every service onto artifactDao. attackOpts are applied
// after the ones derived from cfg.
func InitRouter(artifactDao dao.ArtifactDAO, cfg *config.Config, attackOpts ...services.AttackOptFunc) *gin.Engine {
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(cors.Default())
	router.Use(RequestLogger(logger.Default()))
	router.Static("/static", "./static")

	configService := services.NewConfigService(cfg.AttackConfigDir)

	opts := append([]services.AttackOptFunc{
		services.WithCrackedPassword(cfg.CrackedPassword),
		services.WithDurationRange(cfg.MinSeconds, cfg.SpreadSeconds),
	}, attackOpts...)

	router.GET("/health", handlers.Health)
	InitHashRoutes(router, artifactDao)
	InitAttackRoutes(router, artifactDao, configService, opts...)

	// REST APIs
	api := router.Group("/api")
	{
		InitRuleRoutes(api, artifactDao)
		InitConfigRoutes(api, configService)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// web pages
	indexHandler := web.NewIndexHandler(configService)
	router.GET("/", indexHandler.HomePage)

	return router
}
