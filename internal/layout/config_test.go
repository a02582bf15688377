package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockLogger struct {
	lines []string
}

func (m *MockLogger) Printf(format string, v ...interface{}) {
	m.lines = append(m.lines, fmt.Sprintf(format, v...))
}

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_RejectsInvertedRanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRoomWidth = 12
	cfg.MaxRoomWidth = 10

	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "minRoomWidth", cfgErr.Field)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumberOfFloors = 0
	cfg.LoopDoorChance = 1.5
	cfg.Strategy = "spiral"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numberOfFloors")
	assert.Contains(t, err.Error(), "loopDoorChance")
	assert.Contains(t, err.Error(), "strategy")
}

func TestLoadConfigFromFile_LayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"numberOfRooms": 8, "strategy": "snap"}`), 0o644))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.NumberOfRooms)
	assert.Equal(t, StrategySnap, cfg.Strategy)
	assert.Equal(t, DefaultConfig().WallHeight, cfg.WallHeight)
}

func TestLoadConfigFromFile_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"minComplexity": 5, "maxComplexity": 2}`), 0o644))

	_, err := LoadConfigFromFile(path)
	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestPresets_AllValid(t *testing.T) {
	for _, name := range PresetNames() {
		cfg, err := Preset(name)
		require.NoError(t, err, name)
		assert.NoError(t, cfg.Validate(), name)
	}
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("castle")
	assert.Error(t, err)
}
