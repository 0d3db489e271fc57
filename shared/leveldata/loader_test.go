package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSandbox(t *testing.T) {
	level, err := LoadLevel(os.DirFS("../../assets"), "levels/sandbox.tmx")
	require.NoError(t, err)

	assert.Equal(t, "sandbox", level.Name)
	assert.Equal(t, 24.0, level.Width)
	assert.Equal(t, 12.0, level.Height)

	// Bottom two rows span the map, one run each
	assert.Contains(t, level.Solids, Box{X: 0, Y: 0, W: 24, H: 1})
	assert.Contains(t, level.Solids, Box{X: 0, Y: 1, W: 24, H: 1})
	// Floating platform
	assert.Contains(t, level.Solids, Box{X: 5, Y: 5, W: 5, H: 1})
	// Pillar, one box per row
	for y := 2.0; y <= 8; y++ {
		assert.Contains(t, level.Solids, Box{X: 16, Y: y, W: 1, H: 1})
	}
	assert.Len(t, level.Solids, 30)

	require.Len(t, level.Spawns, 1)
	assert.Equal(t, SpawnPoint{X: 3.5, Y: 2.5, Index: 0}, level.Spawns[0])

	require.Len(t, level.Targets, 2)
	assert.Equal(t, TargetSpawn{Name: "dummy-a", Box: Box{X: 10, Y: 2, W: 1, H: 1}}, level.Targets[0])
	assert.Equal(t, TargetSpawn{Name: "dummy-b", Box: Box{X: 13, Y: 2, W: 1, H: 1}, MaxHealth: 20}, level.Targets[1])
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("../../assets"), "levels")
	require.NoError(t, err)
	assert.Contains(t, names, "sandbox")
	assert.NotNil(t, levels["sandbox"])
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	_, _, err := LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestLoadLevelMissing(t *testing.T) {
	_, err := LoadLevel(fstest.MapFS{}, "levels/nope.tmx")
	assert.Error(t, err)
}

func TestSpawnLookup(t *testing.T) {
	level := &Level{Spawns: []SpawnPoint{{X: 1, Index: 2}, {X: 4, Index: 0}}}

	s, ok := level.Spawn(0)
	assert.True(t, ok)
	assert.Equal(t, 4.0, s.X)

	s, ok = level.Spawn(7)
	assert.True(t, ok)
	assert.Equal(t, 1.0, s.X)

	_, ok = (&Level{}).Spawn(0)
	assert.False(t, ok)
}
