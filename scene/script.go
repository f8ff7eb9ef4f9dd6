package scene

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// RunSpawnScript executes a tengo spawn script and returns the bodies it
// emitted. The script sees one builtin, spawn(map), whose keys mirror the
// yaml BodySpec fields.
func RunSpawnScript(src []byte) ([]BodySpec, error) {
	var specs []BodySpec

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math", "rand", "fmt"))

	spawn := &tengo.UserFunction{
		Name: "spawn",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			spec, err := specFromObject(args[0])
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
			return tengo.UndefinedValue, nil
		},
	}
	if err := script.Add("spawn", spawn); err != nil {
		return nil, fmt.Errorf("scene: add spawn builtin: %w", err)
	}

	if _, err := script.Run(); err != nil {
		return nil, fmt.Errorf("scene: run spawn script: %w", err)
	}

	return specs, nil
}

func specFromObject(obj tengo.Object) (BodySpec, error) {
	m, ok := obj.(*tengo.Map)
	if !ok {
		return BodySpec{}, fmt.Errorf("spawn expects a map, got %s", obj.TypeName())
	}

	// spawn defaults lean dynamic; statics come from the yaml side
	spec := BodySpec{
		Kind:     "dynamic",
		Shape:    "box",
		Mass:     1,
		Friction: 0.8,
	}

	for key, val := range m.Value {
		switch key {
		case "name":
			spec.Name, _ = tengo.ToString(val)
		case "kind":
			spec.Kind, _ = tengo.ToString(val)
		case "shape":
			spec.Shape, _ = tengo.ToString(val)
		case "x":
			spec.X, _ = tengo.ToFloat64(val)
		case "y":
			spec.Y, _ = tengo.ToFloat64(val)
		case "angle":
			spec.Angle, _ = tengo.ToFloat64(val)
		case "mass":
			spec.Mass, _ = tengo.ToFloat64(val)
		case "width":
			spec.Width, _ = tengo.ToFloat64(val)
		case "height":
			spec.Height, _ = tengo.ToFloat64(val)
		case "radius":
			spec.Radius, _ = tengo.ToFloat64(val)
		case "x2":
			spec.X2, _ = tengo.ToFloat64(val)
		case "y2":
			spec.Y2, _ = tengo.ToFloat64(val)
		case "friction":
			spec.Friction, _ = tengo.ToFloat64(val)
		case "elasticity":
			spec.Elasticity, _ = tengo.ToFloat64(val)
		case "sensor":
			spec.Sensor = !val.IsFalsy()
		case "fixed_rotation":
			spec.FixedRotation = !val.IsFalsy()
		case "gravity_immune":
			spec.GravityImmune = !val.IsFalsy()
		default:
			return BodySpec{}, fmt.Errorf("spawn: unknown key %q", key)
		}
	}

	return spec, nil
}
