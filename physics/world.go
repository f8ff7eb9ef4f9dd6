package physics

import (
	"github.com/jakecoffman/cp"
)

// collisionTypeBinding marks every shape created through Register so the
// event queue's collision handler sees exactly the registered pairs.
const collisionTypeBinding cp.CollisionType = 1

// World owns the Chipmunk space, the flat list of scene-object bindings and
// the debug flag. It performs no simulation of its own; stepping, collision
// detection and solving are all Chipmunk's.
type World struct {
	space    *cp.Space
	cfg      Config
	bindings []*Binding

	debug bool
}

// NewWorld creates a space configured from cfg. Zero-valued tuning fields
// fall back to DefaultConfig values.
func NewWorld(cfg Config) *World {
	cfg = cfg.withDefaults()

	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cp.Vector{X: cfg.GravityX, Y: cfg.GravityY})
	space.SetDamping(cfg.Damping)
	if cfg.CollisionSlop > 0 {
		space.SetCollisionSlop(cfg.CollisionSlop)
	}
	if cfg.SleepTimeThreshold > 0 {
		space.SleepTimeThreshold = cfg.SleepTimeThreshold
	}

	return &World{space: space, cfg: cfg}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Config returns the tuning the world was created with.
func (w *World) Config() Config {
	if w == nil {
		return Config{}
	}
	return w.cfg
}

// SetDebug toggles debug wireframe drawing for this world.
func (w *World) SetDebug(enabled bool) {
	if w == nil {
		return
	}
	w.debug = enabled
}

// Debug reports whether debug wireframes should be drawn.
func (w *World) Debug() bool {
	if w == nil {
		return false
	}
	return w.debug
}

// Register creates a rigid body and collider for an opaque scene object,
// applies the def's initial translation and rotation, adds both to the
// space and records the binding. Returns nil when the def cannot produce a
// valid shape.
func (w *World) Register(target any, def BodyDef) *Binding {
	if w == nil || w.space == nil || target == nil {
		return nil
	}

	body := makeBody(def)
	body.SetPosition(def.Position)
	body.SetAngle(def.Angle)

	if def.GravityImmune && def.Kind == KindDynamic {
		body.SetVelocityUpdateFunc(func(b *cp.Body, _ cp.Vector, damping, dt float64) {
			cp.BodyUpdateVelocity(b, cp.Vector{}, damping, dt)
		})
	}

	shape := makeShape(body, def.Shape)
	if shape == nil {
		return nil
	}
	shape.SetFriction(def.Shape.Friction)
	shape.SetElasticity(def.Shape.Elasticity)
	shape.SetSensor(def.Shape.Sensor)
	shape.SetCollisionType(collisionTypeBinding)

	// static bodies are never added to the space, only their shapes
	if def.Kind != KindStatic {
		w.space.AddBody(body)
	}
	w.space.AddShape(shape)

	b := &Binding{Target: target, Body: body, Shape: shape}
	shape.UserData = b
	w.bindings = append(w.bindings, b)
	return b
}

// Unregister frees the body and collider of a previously registered scene
// object and drops its binding. Targets are compared by reference equality.
// Unknown targets are a no-op; the return value reports whether anything
// was removed.
func (w *World) Unregister(target any) bool {
	if w == nil || target == nil {
		return false
	}
	for i, b := range w.bindings {
		if b == nil || b.Target != target {
			continue
		}
		w.removeBinding(b)
		w.bindings = append(w.bindings[:i], w.bindings[i+1:]...)
		return true
	}
	return false
}

// Lookup returns the binding for a registered scene object, or nil.
func (w *World) Lookup(target any) *Binding {
	if w == nil || target == nil {
		return nil
	}
	for _, b := range w.bindings {
		if b != nil && b.Target == target {
			return b
		}
	}
	return nil
}

// Each calls fn for every live binding in registration order.
func (w *World) Each(fn func(*Binding)) {
	if w == nil || fn == nil {
		return
	}
	for _, b := range w.bindings {
		if b != nil {
			fn(b)
		}
	}
}

// Len returns the number of live bindings.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.bindings)
}

// Clear unregisters every binding, leaving the space empty but reusable.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for _, b := range w.bindings {
		if b != nil {
			w.removeBinding(b)
		}
	}
	w.bindings = w.bindings[:0]
}

// Step advances the simulation by one frame. A non-positive dt falls back
// to the configured fixed timestep; callers tie this to the framework's
// per-frame update callback.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	if dt <= 0 {
		dt = w.cfg.FixedTimestep
	}
	w.space.Step(dt)
}

func (w *World) removeBinding(b *Binding) {
	if w.space == nil || b == nil {
		return
	}
	if b.Shape != nil {
		w.space.RemoveShape(b.Shape)
		b.Shape.UserData = nil
	}
	if b.Body != nil && b.Body.GetType() != cp.BODY_STATIC {
		w.space.RemoveBody(b.Body)
	}
}
