package orekit

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/sidereal"
)

// TransformProvider computes the transform from a frame's parent to the
// frame itself at a given date. Providers may be expensive (e.g. solving a
// rotation model); the frame graph never caches their results.
type TransformProvider func(date AbsoluteDate) Transform

// Frame is a node of the frame tree. Every frame except the designated
// root is defined relative to its parent by a transform provider. Frames
// hold a non-owning reference to their parent only; the graph is acyclic
// by construction since a parent must exist before its children.
type Frame struct {
	name     string
	parent   *Frame
	depth    int
	provider TransformProvider
}

// NewRootFrame returns a new root inertial frame. There is no process-wide
// singleton: callers own their root frame and pass it around explicitly.
func NewRootFrame(name string) *Frame {
	return &Frame{name: name}
}

// NewFrame returns a new frame defined relative to its parent by the given
// provider. A nil parent or provider is a malformed graph and panics.
func NewFrame(parent *Frame, provider TransformProvider, name string) *Frame {
	if parent == nil {
		panic(fmt.Errorf("frame %s: nil parent (only a root frame has no parent)", name))
	}
	if provider == nil {
		panic(fmt.Errorf("frame %s: nil transform provider", name))
	}
	return &Frame{name: name, parent: parent, depth: parent.depth + 1, provider: provider}
}

// NewFixedFrame returns a frame at a constant transform from its parent.
func NewFixedFrame(parent *Frame, fixed Transform, name string) *Frame {
	return NewFrame(parent, func(AbsoluteDate) Transform { return fixed }, name)
}

// NewEarthFixedFrame returns a body-fixed frame rotating with Greenwich
// sidereal time about the parent's z axis.
func NewEarthFixedFrame(parent *Frame, name string) *Frame {
	return NewFrame(parent, func(date AbsoluteDate) Transform {
		gmst := sidereal.Apparent0UT(date.JD()).Angle().Rad()
		return NewRotationWithRate(R3(gmst), []float64{0, 0, EarthRotationRate})
	}, name)
}

// Name returns the name of this frame.
func (f *Frame) Name() string { return f.name }

// Parent returns the parent frame, or nil for a root frame.
func (f *Frame) Parent() *Frame { return f.parent }

// IsRoot returns whether this frame is a root frame.
func (f *Frame) IsRoot() bool { return f.parent == nil }

func (f *Frame) String() string { return f.name }

// commonAncestor returns the lowest common ancestor of both frames.
// Frames attached to different roots form a malformed graph and panic.
func commonAncestor(a, b *Frame) *Frame {
	for a.depth > b.depth {
		a = a.parent
	}
	for b.depth > a.depth {
		b = b.parent
	}
	for a != b {
		if a.parent == nil || b.parent == nil {
			panic(fmt.Errorf("frames %s and %s do not share a root", a.name, b.name))
		}
		a = a.parent
		b = b.parent
	}
	return a
}

// transformToAncestor composes the transform from this frame up to the
// given ancestor (which must be on the parent chain).
func (f *Frame) transformToAncestor(ancestor *Frame, date AbsoluteDate) Transform {
	t := IdentityTransform()
	for node := f; node != ancestor; node = node.parent {
		t = t.Combine(node.provider(date).Inverse())
	}
	return t
}

// TransformTo returns the transform from this frame to the destination
// frame at the given date, walking both parent chains to their lowest
// common ancestor and composing the per-link transforms.
func (f *Frame) TransformTo(to *Frame, date AbsoluteDate) Transform {
	if f == to {
		return IdentityTransform()
	}
	ancestor := commonAncestor(f, to)
	up := f.transformToAncestor(ancestor, date)
	down := to.transformToAncestor(ancestor, date).Inverse()
	return up.Combine(down)
}
