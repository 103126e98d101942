package mandelbrot

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateRejectsDegenerateValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "image size"},
		{"negative height", func(c *Config) { c.Height = -5 }, "image size"},
		{"zero iterations", func(c *Config) { c.MaxIter = 0 }, "iteration cap"},
		{"zero workers", func(c *Config) { c.Workers = 0 }, "worker count"},
		{"negative workers", func(c *Config) { c.Workers = -2 }, "worker count"},
		{"zero zoom", func(c *Config) { c.Zoom = 0 }, "zoom"},
		{"negative zoom", func(c *Config) { c.Zoom = -1 }, "zoom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() accepted %+v", cfg)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestConfigView(t *testing.T) {
	cfg := DefaultConfig()
	v := cfg.View()
	if v.CenterX != cfg.CenterX || v.CenterY != cfg.CenterY || v.Zoom != cfg.Zoom {
		t.Errorf("Config.View() = %+v, want view of %+v", v, cfg)
	}
}
