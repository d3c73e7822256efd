package dao

import (
	"errors"

	"hashlab/internal/models"
	apperrors "hashlab/pkg/errors"

	"gorm.io/gorm"
)

type gormArtifactDAO struct {
	db *gorm.DB
}

// NewGormArtifactDAO keeps each artifact as one row of the artifacts table.
func NewGormArtifactDAO(db *gorm.DB) ArtifactDAO {
	return &gormArtifactDAO{db: db}
}

func (dao *gormArtifactDAO) ReadArtifact(name string) ([]byte, error) {
	var artifact models.Artifact
	if err := dao.db.Where("name = ?", name).First(&artifact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArtifactNotFound
		}
		return nil, apperrors.NewArtifactError(name, "read", err)
	}
	return artifact.Content, nil
}

func (dao *gormArtifactDAO) WriteArtifact(name string, data []byte) error {
	artifact := models.Artifact{Name: name, Content: data}
	if err := dao.db.Save(&artifact).Error; err != nil {
		return apperrors.NewArtifactError(name, "write", err)
	}
	return nil
}
