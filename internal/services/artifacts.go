package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"hashlab/internal/dao"
	"hashlab/internal/models"
	apperrors "hashlab/pkg/errors"
)

var errInvalidJSON = errors.New("invalid JSON")

// readOrDefault returns def when the artifact has never been written.
func readOrDefault(d dao.ArtifactDAO, name string, def []byte) ([]byte, error) {
	data, err := d.ReadArtifact(name)
	if errors.Is(err, apperrors.ErrArtifactNotFound) {
		return def, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func loadHistory(d dao.ArtifactDAO) ([]models.HistoryEntry, error) {
	data, err := readOrDefault(d, models.HistoryArtifact, []byte("[]"))
	if err != nil {
		return nil, err
	}

	history := make([]models.HistoryEntry, 0)
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, apperrors.NewArtifactError(models.HistoryArtifact, "decode", err)
	}
	if history == nil {
		history = make([]models.HistoryEntry, 0)
	}
	return history, nil
}

// writeJSON stores v with two-space indentation.
func writeJSON(d dao.ArtifactDAO, name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.NewArtifactError(name, "encode", fmt.Errorf("marshal: %w", err))
	}
	return d.WriteArtifact(name, data)
}
