package dao

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "hashlab/pkg/errors"
)

// ArtifactDAO stores whole-blob artifacts by name. ReadArtifact returns
// apperrors.ErrArtifactNotFound when the artifact was never written.
type ArtifactDAO interface {
	ReadArtifact(name string) ([]byte, error)
	WriteArtifact(name string, data []byte) error
}

type fileArtifactDAO struct {
	dir string
}

// NewFileArtifactDAO keeps each artifact as a plain file inside dir.
func NewFileArtifactDAO(dir string) ArtifactDAO {
	return &fileArtifactDAO{dir: dir}
}

func (dao *fileArtifactDAO) path(name string) string {
	return filepath.Join(dao.dir, filepath.Base(name))
}

func (dao *fileArtifactDAO) ReadArtifact(name string) ([]byte, error) {
	data, err := os.ReadFile(dao.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrArtifactNotFound
		}
		return nil, apperrors.NewArtifactError(name, "read", err)
	}
	return data, nil
}

// WriteArtifact replaces the artifact through a temp file and rename so
// readers never observe a partial write.
func (dao *fileArtifactDAO) WriteArtifact(name string, data []byte) error {
	if err := os.MkdirAll(dao.dir, 0755); err != nil {
		return apperrors.NewArtifactError(name, "write", fmt.Errorf("create data dir: %w", err))
	}

	tmp, err := os.CreateTemp(dao.dir, "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return apperrors.NewArtifactError(name, "write", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewArtifactError(name, "write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.NewArtifactError(name, "write", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return apperrors.NewArtifactError(name, "write", err)
	}
	if err := os.Rename(tmpName, dao.path(name)); err != nil {
		os.Remove(tmpName)
		return apperrors.NewArtifactError(name, "write", err)
	}
	return nil
}
