package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/analysis"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 70.0, cfg.RiderWeightKg)
	assert.Equal(t, 190.0, cfg.MaxHeartRate)
	assert.Equal(t, 500, cfg.ProfileMaxPoints)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.False(t, cfg.Quiet)
	assert.Equal(t, analysis.DefaultOptions(), cfg.AnalyzerOptions())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RIDE_RIDER_WEIGHT_KG", "82.5")
	t.Setenv("RIDE_MAX_HEART_RATE", "178")
	t.Setenv("RIDE_PROFILE_MAX_POINTS", "-1")
	t.Setenv("RIDE_WORKERS", "3")
	t.Setenv("RIDE_QUIET", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		RiderWeightKg:    82.5,
		MaxHeartRate:     178,
		ProfileMaxPoints: -1,
		Workers:          3,
		Quiet:            true,
	}, cfg)
}

func TestLoadFileWithEnvironmentOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ride.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"RIDER_WEIGHT_KG": 64, "WORKERS": 2}`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 64.0, cfg.RiderWeightKg)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 190.0, cfg.MaxHeartRate)

	t.Setenv("RIDE_WORKERS", "6")
	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ride.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_heart_rate: 185\nquiet: true\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 185.0, cfg.MaxHeartRate)
	assert.True(t, cfg.Quiet)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"RIDER_WEIGHT_KG": -1}`), 0o644))
	_, err = LoadFile(bad)
	assert.ErrorContains(t, err, "rider_weight_kg")
}

func TestValidate(t *testing.T) {
	valid := Config{RiderWeightKg: 70, MaxHeartRate: 190, ProfileMaxPoints: 500, Workers: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero weight", func(c *Config) { c.RiderWeightKg = 0 }, "rider_weight_kg"},
		{"negative heart rate", func(c *Config) { c.MaxHeartRate = -5 }, "max_heart_rate"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
