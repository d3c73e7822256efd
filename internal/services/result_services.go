package services

import (
	"encoding/json"
	"strings"

	"hashlab/internal/dao"
	"hashlab/internal/models"
	apperrors "hashlab/pkg/errors"
	"hashlab/pkg/logger"
)

type ResultServiceMethods interface {
	GetResults() ([]models.CrackResult, error)
	GetHistory() ([]models.HistoryEntry, error)
}

type resultService struct {
	artifactDao dao.ArtifactDAO
	logger      *logger.Logger
}

func NewResultService(artifactDao dao.ArtifactDAO) ResultServiceMethods {
	return &resultService{artifactDao: artifactDao, logger: logger.Default()}
}

// GetResults pairs every result line with the current elapsed time and rule
// metadata. The time and metadata artifacts are read first, so a corrupt
// rules.json fails the request even when there is no result yet.
func (s *resultService) GetResults() ([]models.CrackResult, error) {
	elapsed, err := readOrDefault(s.artifactDao, models.ElapsedArtifact, []byte("0"))
	if err != nil {
		return nil, err
	}

	meta, err := readOrDefault(s.artifactDao, models.RuleMetaArtifact, []byte("{}"))
	if err != nil {
		return nil, err
	}
	if !json.Valid(meta) {
		err := apperrors.NewArtifactError(models.RuleMetaArtifact, "decode", errInvalidJSON)
		s.logger.WithArtifact(models.RuleMetaArtifact, "read").WithError(err).Error("Corrupt rule metadata")
		return nil, err
	}

	results := make([]models.CrackResult, 0)
	data, err := readOrDefault(s.artifactDao, models.ResultArtifact, nil)
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		hash, password, _ := strings.Cut(line, ":")
		results = append(results, models.CrackResult{
			Hash:     hash,
			Password: password,
			Time:     string(elapsed),
			Rules:    json.RawMessage(meta),
		})
	}

	s.logger.WithFields(logger.Fields{"result_count": len(results)}).Debug("Loaded results")
	return results, nil
}

func (s *resultService) GetHistory() ([]models.HistoryEntry, error) {
	history, err := loadHistory(s.artifactDao)
	if err != nil {
		s.logger.WithArtifact(models.HistoryArtifact, "read").WithError(err).Error("Failed to load history")
		return nil, err
	}
	return history, nil
}
