package physics

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "physics.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "overrides_merge_with_defaults",
			body: "gravity_y: -10\niterations: 30\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.GravityY != -10 {
					t.Fatalf("gravity_y = %g, want -10", cfg.GravityY)
				}
				if cfg.Iterations != 30 {
					t.Fatalf("iterations = %d, want 30", cfg.Iterations)
				}
				if cfg.Damping != DefaultConfig().Damping {
					t.Fatalf("unset damping should keep default, got %g", cfg.Damping)
				}
			},
		},
		{
			name: "empty_file_keeps_defaults",
			body: "",
			check: func(t *testing.T, cfg Config) {
				if cfg != DefaultConfig() {
					t.Fatalf("empty file should produce defaults, got %+v", cfg)
				}
			},
		},
		{
			name:    "negative_iterations_rejected",
			body:    "iterations: -1\n",
			wantErr: true,
		},
		{
			name:    "negative_timestep_rejected",
			body:    "fixed_timestep: -0.016\n",
			wantErr: true,
		},
		{
			name:    "malformed_yaml_rejected",
			body:    "gravity_y: [not a number\n",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, c.body))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			c.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNewWorldNormalizesZeroConfig(t *testing.T) {
	w := NewWorld(Config{})
	cfg := w.Config()
	if cfg.Iterations != DefaultConfig().Iterations {
		t.Fatalf("zero iterations should fall back to default, got %d", cfg.Iterations)
	}
	if cfg.FixedTimestep != DefaultConfig().FixedTimestep {
		t.Fatalf("zero timestep should fall back to default, got %g", cfg.FixedTimestep)
	}

	// zero gravity stays zero: a body should not fall
	b := w.Register(&fakeObject{name: "still"}, boxDef(50, 50))
	for i := 0; i < 30; i++ {
		w.Step(0)
	}
	if pos := b.Body.Position(); pos.Y != 50 {
		t.Fatalf("body should not fall without gravity, got Y=%g", pos.Y)
	}
}
