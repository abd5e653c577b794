package leveldata

import (
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/shared/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuildsBoxesAndSpawns(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "steps.tmx")
	require.NoError(t, err)

	assert.Equal(t, "steps", level.Name)
	assert.Equal(t, mgl64.Vec2{20, 30}, level.Max)
	require.Len(t, level.Boxes, 3)

	wall := level.Boxes[1]
	assert.Equal(t, "wall", wall.Name)
	assert.Equal(t, geometry.LayerClimbable, wall.Layer)
	assert.Equal(t, mgl64.Vec3{4, 0, 12}, wall.Min)
	assert.Equal(t, mgl64.Vec3{16, 8, 13}, wall.Max)

	assert.Equal(t, geometry.LayerGoal, level.Boxes[2].Layer)

	assert.Equal(t, mgl64.Vec3{10, 1, 2}, level.Player.Position)
	assert.Equal(t, mgl64.Vec3{10, 6, 1}, level.Drone.Start)
	assert.Equal(t, mgl64.Vec3{10, 6, 26}, level.Drone.End)
	assert.InDelta(t, 60, level.Drone.TimeToReach, 1e-9)
}

func TestLoadRequiresPlayerSpawn(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "nospawn.tmx")
	require.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestLevelSpaceAnswersQueries(t *testing.T) {
	level, err := Load(os.DirFS("testdata"), "steps.tmx")
	require.NoError(t, err)

	space := level.Space(2)
	hit, ok := space.Raycast(level.Player.Position, mgl64.Vec3{0, 0, 1}, 20, geometry.LayerClimbable)
	require.True(t, ok)
	assert.InDelta(t, 10, hit.Distance, 1e-9)
}
