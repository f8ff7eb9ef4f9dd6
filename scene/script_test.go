package scene

import (
	"testing"
)

func TestRunSpawnScript(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
		check   func(t *testing.T, specs []BodySpec)
	}{
		{
			name: "loop_spawns_bodies",
			src: `
for i := 0; i < 3; i++ {
    spawn({
        name: "box-" + string(i),
        x: float(i) * 40.0,
        y: 100,
        width: 32,
        height: 32
    })
}`,
			check: func(t *testing.T, specs []BodySpec) {
				if len(specs) != 3 {
					t.Fatalf("expected 3 specs, got %d", len(specs))
				}
				if specs[2].Name != "box-2" || specs[2].X != 80 {
					t.Fatalf("unexpected third spec: %+v", specs[2])
				}
			},
		},
		{
			name: "spawn_defaults_apply",
			src:  `spawn({x: 5, y: 6, width: 10, height: 10})`,
			check: func(t *testing.T, specs []BodySpec) {
				if len(specs) != 1 {
					t.Fatalf("expected 1 spec, got %d", len(specs))
				}
				s := specs[0]
				if s.Kind != "dynamic" || s.Shape != "box" || s.Mass != 1 || s.Friction != 0.8 {
					t.Fatalf("defaults not applied: %+v", s)
				}
			},
		},
		{
			name: "circle_spawn",
			src:  `spawn({shape: "circle", x: 1, y: 2, radius: 9, elasticity: 0.4, sensor: true})`,
			check: func(t *testing.T, specs []BodySpec) {
				s := specs[0]
				if s.Shape != "circle" || s.Radius != 9 || !s.Sensor {
					t.Fatalf("unexpected spec: %+v", s)
				}
			},
		},
		{
			name: "empty_script_spawns_nothing",
			src:  `x := 1`,
			check: func(t *testing.T, specs []BodySpec) {
				if len(specs) != 0 {
					t.Fatalf("expected no specs, got %d", len(specs))
				}
			},
		},
		{
			name:    "non_map_argument_rejected",
			src:     `spawn(42)`,
			wantErr: true,
		},
		{
			name:    "unknown_key_rejected",
			src:     `spawn({x: 1, wobble: 2})`,
			wantErr: true,
		},
		{
			name:    "syntax_error_rejected",
			src:     `spawn({`,
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			specs, err := RunSpawnScript([]byte(c.src))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d specs", len(specs))
				}
				return
			}
			if err != nil {
				t.Fatalf("RunSpawnScript: %v", err)
			}
			c.check(t, specs)
		})
	}
}

func TestLoadEmbeddedScript(t *testing.T) {
	src, err := LoadScript("scripts/pyramid.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	specs, err := RunSpawnScript(src)
	if err != nil {
		t.Fatalf("RunSpawnScript: %v", err)
	}
	// 5+4+3+2+1 crates
	if len(specs) != 15 {
		t.Fatalf("expected 15 crates, got %d", len(specs))
	}
	for _, s := range specs {
		if s.Width != 36 || s.Height != 36 {
			t.Fatalf("crate size wrong: %+v", s)
		}
	}
}
