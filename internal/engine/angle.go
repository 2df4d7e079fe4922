package engine

import (
	"math"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/model"
)

// ComputeAngles derives the joint angle set of one frame for the joints
// the profile defines. Every profile joint is present in the result; a
// joint whose contributing landmarks are not all visible enough is marked
// undetectable rather than computed from unreliable data.
//
// Pure: the same frame and profile always yield the same result.
func ComputeAngles(frame *model.Frame, prof *model.SportProfile) model.JointAngleSet {
	set := make(model.JointAngleSet, len(prof.Joints))

	if !frame.Detected() {
		for name := range prof.Joints {
			set[name] = model.JointAngle{}
		}
		return set
	}

	for name, def := range prof.Joints {
		p, v, d := frame.Landmarks[def.Proximal], frame.Landmarks[def.Vertex], frame.Landmarks[def.Distal]
		if p.Visibility < constant.VisibilityThreshold ||
			v.Visibility < constant.VisibilityThreshold ||
			d.Visibility < constant.VisibilityThreshold {
			set[name] = model.JointAngle{}
			continue
		}

		angle, ok := vertexAngle(p, v, d)
		if !ok {
			// coincident landmarks, angle undefined
			set[name] = model.JointAngle{}
			continue
		}
		set[name] = model.JointAngle{Value: angle, Detectable: true}
	}

	return set
}

// vertexAngle computes the angle at v between the v->p and v->d vectors,
// in degrees within [0,180].
func vertexAngle(p, v, d model.Landmark) (float64, bool) {
	ax, ay, az := p.X-v.X, p.Y-v.Y, p.Z-v.Z
	bx, by, bz := d.X-v.X, d.Y-v.Y, d.Z-v.Z

	na := math.Sqrt(ax*ax + ay*ay + az*az)
	nb := math.Sqrt(bx*bx + by*by + bz*bz)
	if na == 0 || nb == 0 {
		return 0, false
	}

	cos := (ax*bx + ay*by + az*bz) / (na * nb)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * 180 / math.Pi, true
}

// rangeDeviation returns how far, in degrees, an angle lies outside an
// optimal range. Zero when inside.
func rangeDeviation(angle float64, def model.JointDefinition) float64 {
	switch {
	case angle < def.OptimalMin:
		return def.OptimalMin - angle
	case angle > def.OptimalMax:
		return angle - def.OptimalMax
	}
	return 0
}

// centerOfMass estimates the body's center of mass as the centroid of the
// torso landmarks (both shoulders and both hips). All four must be
// visible for the estimate to be usable.
func centerOfMass(frame *model.Frame) (x, y float64, ok bool) {
	if !frame.Detected() {
		return 0, 0, false
	}
	torso := [...]model.LandmarkIndex{
		model.LandmarkLeftShoulder, model.LandmarkRightShoulder,
		model.LandmarkLeftHip, model.LandmarkRightHip,
	}
	for _, idx := range torso {
		lm := frame.Landmarks[idx]
		if lm.Visibility < constant.VisibilityThreshold {
			return 0, 0, false
		}
		x += lm.X
		y += lm.Y
	}
	return x / float64(len(torso)), y / float64(len(torso)), true
}
