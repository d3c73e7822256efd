package web

import (
	"net/http"

	"hashlab/internal/services"
	"hashlab/pkg/logger"
	"hashlab/templates"

	"github.com/gin-gonic/gin"
)

type IndexHandler struct {
	configService services.ConfigServiceMethods
	logger        *logger.Logger
}

func NewIndexHandler(configService services.ConfigServiceMethods) *IndexHandler {
	return &IndexHandler{
		configService: configService,
		logger:        logger.Default(),
	}
}

func (h *IndexHandler) HomePage(c *gin.Context) {
	profiles := h.configService.GetAttackProfiles()
	h.logger.WithFields(logger.Fields{"profile_count": len(profiles)}).Debug("Rendering home page")

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := templates.Home(profiles).Render(c, c.Writer); err != nil {
		h.logger.WithContext(c).WithError(err).Error("Failed to render home template")
		c.Status(http.StatusInternalServerError)
		return
	}
}
