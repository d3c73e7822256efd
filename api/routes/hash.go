package routes

import (
	"hashlab/internal/dao"
	"hashlab/internal/handlers"
	"hashlab/internal/services"

	"github.com/gin-gonic/gin"
)

func InitHashRoutes(router gin.IRoutes, artifactDao dao.ArtifactDAO) {
	hashService := services.NewHashService(artifactDao)
	handler := handlers.NewHashHandler(hashService)

	router.POST("/generate-hash", handler.GenerateHash)
}

func InitRuleRoutes(router *gin.RouterGroup, artifactDao dao.ArtifactDAO) {
	ruleService := services.NewRuleService(artifactDao)
	handler := handlers.NewRuleHandler(ruleService)

	router.POST("/save-rules", handler.SaveRules)
}
