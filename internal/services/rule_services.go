package services

import (
	"hashlab/internal/dao"
	"hashlab/internal/models"
	"hashlab/pkg/logger"
	"hashlab/pkg/rules"
)

type RuleServiceMethods interface {
	SaveRules(flags rules.Flags) (*models.RuleSetSummary, error)
}

type ruleService struct {
	artifactDao dao.ArtifactDAO
	logger      *logger.Logger
}

func NewRuleService(artifactDao dao.ArtifactDAO) RuleServiceMethods {
	return &ruleService{artifactDao: artifactDao, logger: logger.Default()}
}

// SaveRules replaces both the rule script and its metadata.
func (s *ruleService) SaveRules(flags rules.Flags) (*models.RuleSetSummary, error) {
	script := rules.Build(flags)

	if err := s.artifactDao.WriteArtifact(models.RuleSetArtifact, []byte(script.Text)); err != nil {
		s.logger.WithArtifact(models.RuleSetArtifact, "write").WithError(err).Error("Failed to store rule script")
		return nil, err
	}
	if err := writeJSON(s.artifactDao, models.RuleMetaArtifact, script.Meta); err != nil {
		s.logger.WithArtifact(models.RuleMetaArtifact, "write").WithError(err).Error("Failed to store rule metadata")
		return nil, err
	}

	s.logger.WithFields(logger.Fields{
		"rule_lines": script.LineCount(),
		"rules":      script.Lines(),
	}).Info("Rules saved")

	return &models.RuleSetSummary{
		Message:   "Rules saved",
		Meta:      script.Meta,
		RuleLines: script.LineCount(),
	}, nil
}
