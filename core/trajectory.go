package core

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spidergame/spider/config"
	"github.com/spidergame/spider/shared/gamemath"
	"github.com/spidergame/spider/shared/geometry"
)

// TrajectoryResult describes where the previewed arc first meets a climbable
// surface. EndIndex is only meaningful when HasCollision is set.
type TrajectoryResult struct {
	EndIndex     int
	EndPoint     mgl64.Vec3
	HasCollision bool
}

// Predictor previews the ballistic arc of one hand's jump.
type Predictor struct {
	cfg     config.TrajectoryConfig
	gravity mgl64.Vec3
	geom    Geometry
	view    TrajectoryView

	segments []mgl64.Vec3
	result   TrajectoryResult
	active   bool
}

// NewPredictor allocates the sample buffer once; its length never changes.
func NewPredictor(geom Geometry, view TrajectoryView, gravity mgl64.Vec3, cfg config.TrajectoryConfig) *Predictor {
	if view == nil {
		view = nopView{}
	}
	n := cfg.SegmentCount
	if n < 2 {
		n = 2
	}
	return &Predictor{
		cfg:      cfg,
		gravity:  gravity,
		geom:     geom,
		view:     view,
		segments: make([]mgl64.Vec3, n),
	}
}

// Activate shows or hides the preview. Deactivating hides the line and marker
// and forgets the last result.
func (p *Predictor) Activate(active bool) {
	p.active = active
	if !active {
		p.result = TrajectoryResult{}
		p.view.HideLine()
		p.view.HideMarker()
	}
}

func (p *Predictor) Active() bool {
	return p.active
}

// Capacity is the fixed number of samples per arc.
func (p *Predictor) Capacity() int {
	return len(p.segments)
}

// Tick recomputes the arc from origin along forward and scans it for the
// first climbable hit. It does nothing while inactive.
func (p *Predictor) Tick(origin, forward mgl64.Vec3) TrajectoryResult {
	if !p.active {
		return TrajectoryResult{}
	}

	velocity := gamemath.LaunchVelocity(forward, p.cfg.LaunchSpeed)
	gravity := p.gravity.Mul(p.cfg.GravityMultiplier)
	gamemath.FillArc(p.segments, origin, velocity, gravity, p.cfg.FixedTickDuration, p.cfg.CurveLength)

	p.result = TrajectoryResult{}
	for i := 1; i < len(p.segments); i++ {
		step := p.segments[i].Sub(p.segments[i-1])
		dist := step.Len()
		if dist == 0 {
			continue
		}
		hit, ok := p.geom.Raycast(p.segments[i-1], step, dist, geometry.LayerClimbable)
		if !ok {
			continue
		}
		// Only the first hit counts.
		p.result = TrajectoryResult{EndIndex: i, EndPoint: hit.Point, HasCollision: true}
		break
	}

	p.view.ShowLine(p.segments)
	if p.result.HasCollision {
		p.view.ShowMarker(p.result.EndPoint)
	} else {
		p.view.HideMarker()
	}
	return p.result
}

// Segments returns the live sample buffer. Callers must not keep it across
// ticks; use Snapshot for that.
func (p *Predictor) Segments() []mgl64.Vec3 {
	return p.segments
}

func (p *Predictor) Result() TrajectoryResult {
	return p.result
}

// Snapshot copies the current arc and its result.
func (p *Predictor) Snapshot() ([]mgl64.Vec3, TrajectoryResult) {
	path := make([]mgl64.Vec3, len(p.segments))
	copy(path, p.segments)
	return path, p.result
}
