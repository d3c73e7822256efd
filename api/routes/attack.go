package routes

import (
	"hashlab/internal/dao"
	"hashlab/internal/handlers"
	"hashlab/internal/services"

	"github.com/gin-gonic/gin"
)

func InitAttackRoutes(router gin.IRoutes, artifactDao dao.ArtifactDAO, configService services.ConfigServiceMethods, opts ...services.AttackOptFunc) {
	attackService := services.NewAttackService(artifactDao, opts...)
	resultService := services.NewResultService(artifactDao)
	handler := handlers.NewAttackHandler(attackService, resultService, configService)

	router.POST("/run-hashcat", handler.RunAttack)
	router.GET("/results", handler.GetResults)
	router.GET("/history", handler.GetHistory)
}

func InitConfigRoutes(router *gin.RouterGroup, configService services.ConfigServiceMethods) {
	handler := handlers.NewAttackHandler(nil, nil, configService)

	router.GET("/attacks", handler.GetAttackProfiles)
}
