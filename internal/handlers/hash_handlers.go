package handlers

import (
	"net/http"

	"hashlab/internal/services"
	"hashlab/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HashHandler struct {
	hashService services.HashServiceMethods
	logger      *logger.Logger
}

func NewHashHandler(hashService services.HashServiceMethods) *HashHandler {
	return &HashHandler{hashService: hashService, logger: logger.Default()}
}

// GenerateHash treats an unreadable body the same as a missing password.
func (h *HashHandler) GenerateHash(c *gin.Context) {
	var req HashRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		h.logger.WithContext(c).Warn("Rejected empty password")
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrMsgPasswordEmpty})
		return
	}

	hash, err := h.hashService.GenerateHash(req.Password)
	if err != nil {
		respondError(c, h.logger, err, "Failed to store hash")
		return
	}
	c.JSON(http.StatusOK, HashResponse{Hash: hash})
}
