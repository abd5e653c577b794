package assets

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/shared/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLevelsLoad(t *testing.T) {
	levels, names := NewLevelLoader().MustLoadLevels()
	require.Contains(t, names, "tower")

	tower := levels["tower"]
	space := tower.Space(2)

	// The spawn stands on the start floor.
	hit, ok := space.Raycast(tower.Player.Position, mgl64.Vec3{0, -1, 0}, 1.5, geometry.LayerSolid)
	require.True(t, ok)
	assert.InDelta(t, 0, hit.Point.Y(), 1e-9)

	assert.NotEmpty(t, space.BoxesOn(geometry.LayerClimbable))
	assert.NotEmpty(t, space.BoxesOn(geometry.LayerGoal))
	assert.NotEmpty(t, space.BoxesOn(geometry.LayerDeath))
	assert.Greater(t, tower.Drone.TimeToReach, 0.0)
}
