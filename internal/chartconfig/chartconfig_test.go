package chartconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/jyotish/internal/contracts"
)

const sampleYAML = `meta:
  profile_id: south_indian_kp
  version: "2"
preferences:
  ayanamsha: kp
  house_system: placidus
  node_mode: "true"
  divisional_charts: [1, 9, 10, 60]
combustion_orbs:
  Jupiter: 13
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err, "profile load failed")

	assert.Equal(t, "south_indian_kp", cfg.Meta.ProfileID)
	assert.Equal(t, "2", cfg.Meta.Version)
	assert.Equal(t, contracts.AyanamshaKP, cfg.Preferences.Ayanamsha)
	assert.Equal(t, contracts.HousePlacidus, cfg.Preferences.HouseSystem)
	assert.Equal(t, contracts.NodeTrue, cfg.Preferences.NodeMode)
	assert.Len(t, cfg.Preferences.DivisionalCharts, 4)

	orbs := cfg.OrbOverrides()
	assert.Equal(t, 13.0, orbs[contracts.Jupiter])
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	bad := sampleYAML + "dashaa_system: vimshottari\n"
	_, err := Load(writeTemp(t, bad))
	assert.Error(t, err, "unknown top-level key should be rejected")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown ayanamsha", "meta:\n  profile_id: x\npreferences:\n  ayanamsha: vedic\n"},
		{"unknown orb planet", "meta:\n  profile_id: x\ncombustion_orbs:\n  Pluto: 5\n"},
		{"orb out of range", "meta:\n  profile_id: x\ncombustion_orbs:\n  Venus: 45\n"},
		{"blank profile id", "meta:\n  profile_id: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestHashDeterministic(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)

	h1, err := Hash(cfg)
	require.NoError(t, err)
	assert.Len(t, h1, 64)

	h2, err := Hash(cfg)
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "hash must be deterministic")

	// A different profile hashes differently.
	h3, err := Hash(Default())
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3, "distinct configs should not collide")

	t.Logf("config hash: %s", h1)
}

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}
