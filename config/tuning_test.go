package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	require.NoError(t, CurrentTuning().Validate())
}

func TestParseTuningKeepsUnsetFields(t *testing.T) {
	tuning, err := ParseTuning([]byte(`
adversary:
  detection_radius: 7
player:
  move_speed: 4.5
`))
	require.NoError(t, err)

	assert.Equal(t, 7.0, tuning.Adversary.DetectionRadius)
	assert.Equal(t, 4.5, tuning.Player.MoveSpeed)
	assert.Equal(t, Adversary.HitPoints, tuning.Adversary.HitPoints)
	assert.Equal(t, Player.Characters, tuning.Player.Characters)
	assert.Equal(t, 5.0, Adversary.DetectionRadius, "globals untouched until Apply")
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	_, err := ParseTuning([]byte("loop:\n  fixed_delta: 0\n"))
	assert.ErrorContains(t, err, "fixed_delta")

	_, err = ParseTuning([]byte("camera:\n  margin: 0.7\n"))
	assert.ErrorContains(t, err, "margin")

	_, err = ParseTuning([]byte("player: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse tuning")
}

func TestLoadTuningApplies(t *testing.T) {
	saved := CurrentTuning()
	t.Cleanup(saved.Apply)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projectile:\n  speed: 12\n"), 0o600))

	require.NoError(t, LoadTuning(path))
	assert.Equal(t, 12.0, Projectile.Speed)
	assert.Equal(t, 3.0, Projectile.Lifetime)
}

func TestLoadTuningMissingFile(t *testing.T) {
	err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
