package components

import "github.com/go-gl/mathgl/mgl64"

// TrajectoryViewData holds what the renderer draws for one hand's jump
// preview. It satisfies core.TrajectoryView.
type TrajectoryViewData struct {
	Points        []mgl64.Vec3
	LineVisible   bool
	Marker        mgl64.Vec3
	MarkerVisible bool
}

func (v *TrajectoryViewData) ShowLine(points []mgl64.Vec3) {
	v.Points = append(v.Points[:0], points...)
	v.LineVisible = true
}

func (v *TrajectoryViewData) HideLine() {
	v.LineVisible = false
}

func (v *TrajectoryViewData) ShowMarker(at mgl64.Vec3) {
	v.Marker = at
	v.MarkerVisible = true
}

func (v *TrajectoryViewData) HideMarker() {
	v.MarkerVisible = false
}
