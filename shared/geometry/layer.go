// Package geometry holds the static level geometry as axis-aligned boxes and
// answers the overlap and raycast queries the gameplay code needs.
package geometry

import "strings"

// Layer is a bit mask of surface categories.
type Layer uint32

const (
	LayerClimbable Layer = 1 << iota
	LayerGround
	LayerGoal
	LayerDeath

	// LayerSolid is everything the rigid body collides with.
	LayerSolid = LayerClimbable | LayerGround
	LayerAll   = LayerClimbable | LayerGround | LayerGoal | LayerDeath
)

// Broadphase tags, one per layer bit.
const (
	TagClimbable = "climbable"
	TagGround    = "ground"
	TagGoal      = "goal"
	TagDeath     = "death"
	tagCursor    = "cursor"
)

var layerTags = []struct {
	layer Layer
	tag   string
}{
	{LayerClimbable, TagClimbable},
	{LayerGround, TagGround},
	{LayerGoal, TagGoal},
	{LayerDeath, TagDeath},
}

// Tags returns the broadphase tags for every bit set in l.
func (l Layer) Tags() []string {
	tags := make([]string, 0, len(layerTags))
	for _, lt := range layerTags {
		if l&lt.layer != 0 {
			tags = append(tags, lt.tag)
		}
	}
	return tags
}

// Has reports whether l shares any bit with mask.
func (l Layer) Has(mask Layer) bool {
	return l&mask != 0
}

func (l Layer) String() string {
	tags := l.Tags()
	if len(tags) == 0 {
		return "none"
	}
	return strings.Join(tags, "|")
}

// ParseLayer maps a level group name to its layer.
func ParseLayer(name string) (Layer, bool) {
	for _, lt := range layerTags {
		if strings.EqualFold(lt.tag, name) {
			return lt.layer, true
		}
	}
	return 0, false
}
