package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"hashlab/internal/services"
	"hashlab/pkg/logger"
	"hashlab/pkg/rules"

	"github.com/gin-gonic/gin"
)

type RuleHandler struct {
	ruleService services.RuleServiceMethods
	logger      *logger.Logger
}

func NewRuleHandler(ruleService services.RuleServiceMethods) *RuleHandler {
	return &RuleHandler{ruleService: ruleService, logger: logger.Default()}
}

// SaveRules accepts any JSON object; flags are coerced by truthiness and
// unknown fields ignored. An empty body or a top-level array saves the
// identity rule only.
func (h *RuleHandler) SaveRules(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.WithContext(c).WithError(err).Error("Failed to read request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgInvalidPayload})
		return
	}

	body, ok := decodeFlagBody(raw)
	if !ok {
		h.logger.WithContext(c).Warn("Failed to decode rule flags")
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgInvalidPayload})
		return
	}

	summary, err := h.ruleService.SaveRules(rules.FlagsFromMap(body))
	if err != nil {
		respondError(c, h.logger, err, "Failed to save rules")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// decodeFlagBody returns the flag object of a save-rules body. Arrays carry
// no flags; null, scalars and malformed JSON are rejected.
func decodeFlagBody(raw []byte) (map[string]interface{}, bool) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]interface{}{}, true
	}

	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, false
	}

	switch body := decoded.(type) {
	case map[string]interface{}:
		return body, true
	case []interface{}:
		return map[string]interface{}{}, true
	default:
		return nil, false
	}
}
