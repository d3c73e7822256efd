package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"hashlab/internal/dao"
	"hashlab/internal/metrics"
	"hashlab/internal/models"
	apperrors "hashlab/pkg/errors"
	"hashlab/pkg/logger"
)

const ErrMsgPasswordEmpty = "Password cannot be empty"

type HashServiceMethods interface {
	GenerateHash(password string) (string, error)
	CurrentHash() (string, error)
}

type hashService struct {
	artifactDao dao.ArtifactDAO
	logger      *logger.Logger
}

func NewHashService(artifactDao dao.ArtifactDAO) HashServiceMethods {
	return &hashService{artifactDao: artifactDao, logger: logger.Default()}
}

// Digest returns the lowercase hex SHA-256 of password's bytes.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// GenerateHash hashes password and replaces the stored hash with it.
func (s *hashService) GenerateHash(password string) (string, error) {
	if password == "" {
		return "", apperrors.NewValidationError("password", ErrMsgPasswordEmpty)
	}

	hash := Digest(password)
	if err := s.artifactDao.WriteArtifact(models.HashesArtifact, []byte(hash+"\n")); err != nil {
		s.logger.WithArtifact(models.HashesArtifact, "write").WithError(err).Error("Failed to store hash")
		return "", err
	}

	metrics.MetricHashesGenerated.Inc()
	s.logger.WithArtifact(models.HashesArtifact, "write").Debug("Stored hash")
	return hash, nil
}

// CurrentHash returns the stored hash, or "" if none was generated yet.
func (s *hashService) CurrentHash() (string, error) {
	data, err := readOrDefault(s.artifactDao, models.HashesArtifact, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
