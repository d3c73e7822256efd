package handlers

import (
	"net/http"

	apperrors "hashlab/pkg/errors"
	"hashlab/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps validation failures to 400 and everything else to 500
// with fallback as the message.
func respondError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	if vErr, ok := apperrors.IsValidation(err); ok {
		log.WithContext(c).WithField("field", vErr.Field).Warn(vErr.Message)
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		return
	}

	log.WithContext(c).WithError(err).Error(fallback)
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
