package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// BodyKind selects how the wrapped engine integrates a body.
type BodyKind int

const (
	KindDynamic BodyKind = iota
	KindKinematic
	KindStatic
)

// ShapeKind selects the collider geometry attached to a body.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
	ShapeSegment
	ShapePolygon
)

// ShapeDef describes the collider for one body. Only the fields of the
// selected Kind are read; Radius doubles as the rounding radius for
// segments and polygons.
type ShapeDef struct {
	Kind ShapeKind

	Width  float64
	Height float64

	Radius float64

	// Segment endpoints, relative to the body.
	A cp.Vector
	B cp.Vector

	Verts []cp.Vector

	Friction   float64
	Elasticity float64
	Sensor     bool
}

// BodyDef describes a rigid body plus its collider. Position and Angle are
// the optional initial translation and rotation applied before the first
// step.
type BodyDef struct {
	Kind BodyKind
	Mass float64

	Position cp.Vector
	Angle    float64

	// FixedRotation pins the body's angle by giving it infinite moment.
	FixedRotation bool
	// GravityImmune keeps the body out of the global gravity field while
	// still letting it collide and damp normally.
	GravityImmune bool

	Shape ShapeDef
}

// Binding ties an opaque scene object to its rigid body and collider.
// Bindings are created by World.Register and freed by World.Unregister.
type Binding struct {
	Target any
	Body   *cp.Body
	Shape  *cp.Shape
}

func momentFor(mass float64, s ShapeDef) float64 {
	switch s.Kind {
	case ShapeCircle:
		return cp.MomentForCircle(mass, 0, s.Radius, cp.Vector{})
	case ShapeSegment:
		return cp.MomentForSegment(mass, s.A, s.B, s.Radius)
	case ShapePolygon:
		return cp.MomentForPoly(mass, len(s.Verts), s.Verts, cp.Vector{}, s.Radius)
	default:
		return cp.MomentForBox(mass, s.Width, s.Height)
	}
}

func makeBody(def BodyDef) *cp.Body {
	switch def.Kind {
	case KindStatic:
		return cp.NewStaticBody()
	case KindKinematic:
		return cp.NewKinematicBody()
	default:
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := momentFor(mass, def.Shape)
		if def.FixedRotation {
			moment = math.Inf(1)
		}
		return cp.NewBody(mass, moment)
	}
}

func makeShape(body *cp.Body, s ShapeDef) *cp.Shape {
	switch s.Kind {
	case ShapeCircle:
		if s.Radius <= 0 {
			return nil
		}
		return cp.NewCircle(body, s.Radius, cp.Vector{})
	case ShapeSegment:
		return cp.NewSegment(body, s.A, s.B, s.Radius)
	case ShapePolygon:
		if len(s.Verts) < 3 {
			return nil
		}
		return cp.NewPolyShapeRaw(body, len(s.Verts), s.Verts, s.Radius)
	default:
		if s.Width <= 0 || s.Height <= 0 {
			return nil
		}
		return cp.NewBox(body, s.Width, s.Height, 0)
	}
}
