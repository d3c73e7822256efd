package handlers

import (
	"net/http"

	"hashlab/internal/services"
	"hashlab/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AttackHandler struct {
	attackService services.AttackServiceMethods
	resultService services.ResultServiceMethods
	configService services.ConfigServiceMethods
	logger        *logger.Logger
}

func NewAttackHandler(attackService services.AttackServiceMethods, resultService services.ResultServiceMethods, configService services.ConfigServiceMethods) *AttackHandler {
	return &AttackHandler{
		attackService: attackService,
		resultService: resultService,
		configService: configService,
		logger:        logger.Default(),
	}
}

func (h *AttackHandler) RunAttack(c *gin.Context) {
	var req AttackRequest
	err := c.ShouldBindJSON(&req)
	attackType, ok := req.Label()
	if err != nil || !ok {
		h.logger.WithContext(c).Warn("Rejected attack without attackType")
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrMsgAttackTypeRequired})
		return
	}

	h.logger.WithContext(c).WithField("attack_type", attackType).Info("Running simulated attack")
	run, err := h.attackService.RunAttack(attackType)
	if err != nil {
		respondError(c, h.logger, err, "Failed to run attack")
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *AttackHandler) GetResults(c *gin.Context) {
	results, err := h.resultService.GetResults()
	if err != nil {
		respondError(c, h.logger, err, "Failed to load results")
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *AttackHandler) GetHistory(c *gin.Context) {
	history, err := h.resultService.GetHistory()
	if err != nil {
		respondError(c, h.logger, err, "Failed to load history")
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *AttackHandler) GetAttackProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, h.configService.GetAttackProfiles())
}
