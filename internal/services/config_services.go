package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hashlab/internal/models"
	"hashlab/pkg/logger"

	"gopkg.in/yaml.v3"
)

// DefaultAttackProfiles is offered when no attack profile files exist.
var DefaultAttackProfiles = []models.AttackProfile{
	{Name: "SHA-256", Description: "Raw SHA-256 digest", HashMode: 1400},
	{Name: "MD5", Description: "Raw MD5 digest", HashMode: 0},
	{Name: "SHA-1", Description: "Raw SHA-1 digest", HashMode: 100},
	{Name: "NTLM", Description: "Windows NT hash", HashMode: 1000},
}

type ConfigServiceMethods interface {
	GetAttackProfiles() []models.AttackProfile
}

type configService struct {
	configPath string
	log        *logger.Logger
}

func NewConfigService(configPath string) ConfigServiceMethods {
	return &configService{
		configPath: configPath,
		log:        logger.Default(),
	}
}

// GetAttackProfiles reads every *.yaml file in the config directory, each a
// list of profiles. Files are read in name order; unreadable files are
// skipped.
func (c *configService) GetAttackProfiles() []models.AttackProfile {
	files, err := os.ReadDir(c.configPath)
	if err != nil {
		c.log.WithError(err).WithField("path", c.configPath).Debug("Attack config directory not readable, using defaults")
		return DefaultAttackProfiles
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !(strings.HasSuffix(file.Name(), ".yaml") || strings.HasSuffix(file.Name(), ".yml")) {
			continue
		}
		names = append(names, file.Name())
	}
	sort.Strings(names)

	profiles := make([]models.AttackProfile, 0)
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(c.configPath, name))
		if err != nil {
			c.log.WithError(err).WithField("file", name).Error("Failed to read attack config file")
			continue
		}

		var fileProfiles []models.AttackProfile
		if err := yaml.Unmarshal(data, &fileProfiles); err != nil {
			c.log.WithError(err).WithField("file", name).Error("Failed to parse attack config file")
			continue
		}

		for _, profile := range fileProfiles {
			if profile.Name == "" {
				continue
			}
			profiles = append(profiles, profile)
		}
	}

	if len(profiles) == 0 {
		return DefaultAttackProfiles
	}
	return profiles
}
