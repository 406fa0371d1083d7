package orekit

import (
	"github.com/gonum/matrix/mat64"
)

// PVCoordinates holds a position (m) and velocity (m/s) pair.
type PVCoordinates struct {
	Position []float64
	Velocity []float64
}

// NewPVCoordinates returns a new position/velocity pair.
func NewPVCoordinates(position, velocity []float64) PVCoordinates {
	return PVCoordinates{position, velocity}
}

// Transform is an immutable snapshot of the rigid spatial relationship
// between two frames at one instant. It maps the coordinates of a point
// from the origin frame to the destination frame as
//
//	pDest = R·pOrig + τ
//	vDest = R·vOrig - ω×(R·pOrig) + τ̇
//
// where R is the rotation, τ the translation, τ̇ the translation rate and
// ω the angular velocity of the destination frame with respect to the
// origin frame, expressed in destination axes.
type Transform struct {
	translation  []float64
	velocity     []float64
	rotation     *mat64.Dense
	rotationRate []float64
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{[]float64{0, 0, 0}, []float64{0, 0, 0}, Identity33(), []float64{0, 0, 0}}
}

// NewTranslation returns a pure translation transform.
func NewTranslation(τ []float64) Transform {
	return Transform{τ, []float64{0, 0, 0}, Identity33(), []float64{0, 0, 0}}
}

// NewTranslationWithRate returns a translation transform with a drift rate.
func NewTranslationWithRate(τ, τDot []float64) Transform {
	return Transform{τ, τDot, Identity33(), []float64{0, 0, 0}}
}

// NewRotation returns a pure rotation transform.
func NewRotation(r *mat64.Dense) Transform {
	return Transform{[]float64{0, 0, 0}, []float64{0, 0, 0}, r, []float64{0, 0, 0}}
}

// NewRotationWithRate returns a rotation transform spinning at ω, the
// angular velocity of the destination frame expressed in destination axes.
func NewRotationWithRate(r *mat64.Dense, ω []float64) Transform {
	return Transform{[]float64{0, 0, 0}, []float64{0, 0, 0}, r, ω}
}

// NewTransform returns a transform from all four components.
func NewTransform(τ, τDot []float64, r *mat64.Dense, ω []float64) Transform {
	return Transform{τ, τDot, r, ω}
}

// Translation returns the translation vector.
func (t Transform) Translation() []float64 { return t.translation }

// Velocity returns the translation rate vector.
func (t Transform) Velocity() []float64 { return t.velocity }

// Rotation returns the rotation matrix.
func (t Transform) Rotation() *mat64.Dense { return t.rotation }

// RotationRate returns the angular velocity of the destination frame with
// respect to the origin frame, in destination axes.
func (t Transform) RotationRate() []float64 { return t.rotationRate }

// Combine composes this transform with a second one: the result maps the
// origin frame of t to the destination frame of next. Composition is
// associative but not commutative, and the derivative terms are combined
// with the rotating-frame kinematics, not just added.
func (t Transform) Combine(next Transform) Transform {
	var r mat64.Dense
	r.Mul(next.rotation, t.rotation)
	τ := add(MxV33(next.rotation, t.translation), next.translation)
	ω := add(MxV33(next.rotation, t.rotationRate), next.rotationRate)
	τDot := sub(add(MxV33(next.rotation, t.velocity), next.velocity),
		cross(next.rotationRate, MxV33(next.rotation, t.translation)))
	return Transform{τ, τDot, &r, ω}
}

// Inverse returns the transform from the destination frame back to the
// origin frame. The rate terms are re-derived with the kinematic identity
// for a moving, rotating frame: the inverse translation rate depends on
// both the forward rate and the forward rotation rate.
func (t Transform) Inverse() Transform {
	var rT mat64.Dense
	rT.Clone(t.rotation.T())
	τ := scale(-1, MxV33(&rT, t.translation))
	ω := scale(-1, MxV33(&rT, t.rotationRate))
	τDot := scale(-1, MxV33(&rT, add(t.velocity, cross(t.rotationRate, t.translation))))
	return Transform{τ, τDot, &rT, ω}
}

// TransformPosition maps the coordinates of a point from the origin frame
// to the destination frame.
func (t Transform) TransformPosition(p []float64) []float64 {
	return add(MxV33(t.rotation, p), t.translation)
}

// TransformVector maps a free vector (no translation contribution).
func (t Transform) TransformVector(v []float64) []float64 {
	return MxV33(t.rotation, v)
}

// TransformPV maps a position/velocity pair, folding in the frame motion.
func (t Transform) TransformPV(pv PVCoordinates) PVCoordinates {
	rp := MxV33(t.rotation, pv.Position)
	p := add(rp, t.translation)
	v := add(sub(MxV33(t.rotation, pv.Velocity), cross(t.rotationRate, rp)), t.velocity)
	return PVCoordinates{p, v}
}
