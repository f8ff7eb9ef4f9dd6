package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/impulse/physics"
)

// SceneSpec is a yaml description of a sandbox scene: a list of bodies and
// an optional tengo spawn script that emits more of them.
type SceneSpec struct {
	Name   string     `yaml:"name"`
	Script string     `yaml:"script"`
	Bodies []BodySpec `yaml:"bodies"`
}

// BodySpec is one body in a scene document.
type BodySpec struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`  // dynamic, kinematic or static
	Shape string `yaml:"shape"` // box, circle, segment or polygon

	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
	Mass  float64 `yaml:"mass"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`

	// Segment second endpoint; the first endpoint is the body position.
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`

	Verts [][2]float64 `yaml:"verts"`

	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	Sensor        bool    `yaml:"sensor"`
	FixedRotation bool    `yaml:"fixed_rotation"`
	GravityImmune bool    `yaml:"gravity_immune"`
}

// LoadSpec loads and parses a yaml spec document of any shape.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("scene: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("scene: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadSceneSpec loads a scene document and resolves its spawn script, if
// any, appending the script's bodies to the spec's own list.
func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}

	if spec.Script != "" {
		src, err := LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("scene: load script %s: %w", spec.Script, err)
		}
		spawned, err := RunSpawnScript(src)
		if err != nil {
			return nil, err
		}
		spec.Bodies = append(spec.Bodies, spawned...)
	}

	return &spec, nil
}

// BodyDef translates a spec entry into the adapter's body definition.
func (s BodySpec) BodyDef() (physics.BodyDef, error) {
	def := physics.BodyDef{
		Mass:          s.Mass,
		Position:      cp.Vector{X: s.X, Y: s.Y},
		Angle:         s.Angle,
		FixedRotation: s.FixedRotation,
		GravityImmune: s.GravityImmune,
	}

	switch s.Kind {
	case "", "dynamic":
		def.Kind = physics.KindDynamic
	case "kinematic":
		def.Kind = physics.KindKinematic
	case "static":
		def.Kind = physics.KindStatic
	default:
		return physics.BodyDef{}, fmt.Errorf("scene: body %q: unknown kind %q", s.Name, s.Kind)
	}

	def.Shape = physics.ShapeDef{
		Friction:   s.Friction,
		Elasticity: s.Elasticity,
		Sensor:     s.Sensor,
	}

	switch s.Shape {
	case "", "box":
		def.Shape.Kind = physics.ShapeBox
		def.Shape.Width = s.Width
		def.Shape.Height = s.Height
	case "circle":
		def.Shape.Kind = physics.ShapeCircle
		def.Shape.Radius = s.Radius
	case "segment":
		def.Shape.Kind = physics.ShapeSegment
		// segments live on the static body, endpoints in world space
		def.Shape.A = cp.Vector{X: s.X, Y: s.Y}
		def.Shape.B = cp.Vector{X: s.X2, Y: s.Y2}
		def.Shape.Radius = s.Radius
		def.Position = cp.Vector{}
	case "polygon":
		if len(s.Verts) < 3 {
			return physics.BodyDef{}, fmt.Errorf("scene: body %q: polygon needs at least 3 verts, got %d", s.Name, len(s.Verts))
		}
		def.Shape.Kind = physics.ShapePolygon
		verts := make([]cp.Vector, 0, len(s.Verts))
		for _, v := range s.Verts {
			verts = append(verts, cp.Vector{X: v[0], Y: v[1]})
		}
		def.Shape.Verts = verts
		def.Shape.Radius = s.Radius
	default:
		return physics.BodyDef{}, fmt.Errorf("scene: body %q: unknown shape %q", s.Name, s.Shape)
	}

	return def, nil
}
