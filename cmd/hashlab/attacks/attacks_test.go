package attacks

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"hashlab/internal/services"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProfiles(t *testing.T) {
	color.NoColor = true

	dir := t.TempDir()
	profiles := "- name: bcrypt\n  description: OpenBSD bcrypt\n  hash_mode: 3200\n- name: WPA\n  hash_mode: 22000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte(profiles), 0644))

	var out bytes.Buffer
	listProfiles(&out, services.NewConfigService(dir))

	assert.Equal(t, "Available Attacks:\n==================\n"+
		"\n• bcrypt\n  Hash mode: 3200\n  Description: OpenBSD bcrypt\n"+
		"\n• WPA\n  Hash mode: 22000\n", out.String())
}

func TestListProfilesFallsBackToDefaults(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	listProfiles(&out, services.NewConfigService(filepath.Join(t.TempDir(), "missing")))

	for _, profile := range services.DefaultAttackProfiles {
		assert.Contains(t, out.String(), "• "+profile.Name+"\n")
	}
}
