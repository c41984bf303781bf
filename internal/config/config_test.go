package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Box defaults
	if cfg.Box.Min != [3]float64{-50, -50, -50} || cfg.Box.Max != [3]float64{50, 50, 50} {
		t.Errorf("expected 100-unit cube, got %v..%v", cfg.Box.Min, cfg.Box.Max)
	}

	// Interaction defaults
	if cfg.Interaction.Margin != 10 {
		t.Errorf("expected margin 10, got %g", cfg.Interaction.Margin)
	}
	if cfg.Interaction.StepSize != 1 {
		t.Errorf("expected step 1, got %g", cfg.Interaction.StepSize)
	}
	if cfg.Interaction.ToggleKey != "c" {
		t.Errorf("expected toggle key 'c', got %q", cfg.Interaction.ToggleKey)
	}
	if cfg.Interaction.StartMode != StartCamera {
		t.Errorf("expected start mode camera, got %q", cfg.Interaction.StartMode)
	}

	// Graphics defaults
	if cfg.Graphics.Width != 640 || cfg.Graphics.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.FaceOpacity != 0.3 {
		t.Errorf("expected face opacity 0.3, got %f", cfg.Graphics.FaceOpacity)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
box:
  min: [0, 0, 0]
  max: [200, 100, 80]

interaction:
  margin: 5
  step_size: 2.5
  rotation_sensitivity: 45
  pick_depth: 0.5
  toggle_key: "m"
  start_mode: "manipulate"

camera:
  distance: 400
  fov: 45

graphics:
  width: 1280
  height: 720
  vsync: false

logging:
  level: "debug"
  log_file: "boxedit.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Box.Max != [3]float64{200, 100, 80} {
		t.Errorf("expected box max [200 100 80], got %v", cfg.Box.Max)
	}
	if cfg.Interaction.Margin != 5 {
		t.Errorf("expected margin 5, got %g", cfg.Interaction.Margin)
	}
	if cfg.Interaction.StepSize != 2.5 {
		t.Errorf("expected step 2.5, got %g", cfg.Interaction.StepSize)
	}
	if cfg.Interaction.ToggleKey != "m" {
		t.Errorf("expected toggle key 'm', got %q", cfg.Interaction.ToggleKey)
	}
	if cfg.Interaction.StartMode != StartManipulate {
		t.Errorf("expected manipulate start, got %q", cfg.Interaction.StartMode)
	}
	// Unset keys keep their defaults
	if cfg.Interaction.ResetKey != "r" {
		t.Errorf("expected reset key to stay 'r', got %q", cfg.Interaction.ResetKey)
	}
	if cfg.Camera.Distance != 400 || cfg.Camera.FOV != 45 {
		t.Errorf("camera not loaded: %+v", cfg.Camera)
	}
	if cfg.Camera.Near != 1 {
		t.Errorf("expected near to stay 1, got %g", cfg.Camera.Near)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Logging.LogFile != "boxedit.log" {
		t.Errorf("expected log file 'boxedit.log', got %s", cfg.Logging.LogFile)
	}

	b, err := cfg.Bounds()
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	if b.Span(2) != 80 {
		t.Errorf("expected z span 80, got %g", b.Span(2))
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
interaction:
  margin: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"flat box", func(c *Config) { c.Box.Max[1] = c.Box.Min[1] }, "box"},
		{"negative margin", func(c *Config) { c.Interaction.Margin = -1 }, "margin must not be negative"},
		{"margin too large", func(c *Config) { c.Interaction.Margin = 60 }, "too large"},
		{"zero step", func(c *Config) { c.Interaction.StepSize = 0 }, "step_size"},
		{"depth out of range", func(c *Config) { c.Interaction.PickDepth = 1.5 }, "pick_depth"},
		{"empty toggle", func(c *Config) { c.Interaction.ToggleKey = "" }, "toggle_key"},
		{"reset collides", func(c *Config) { c.Interaction.ResetKey = "c" }, "collides"},
		{"bad start mode", func(c *Config) { c.Interaction.StartMode = "orbit" }, "start_mode"},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "graphics size"},
		{"bad clip", func(c *Config) { c.Camera.Far = 0.5 }, "clip range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Interaction.Margin = 7
	cfg.Graphics.Width = 1024

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}

	if loaded.Interaction.Margin != 7 {
		t.Errorf("expected margin 7, got %g", loaded.Interaction.Margin)
	}
	if loaded.Graphics.Width != 1024 {
		t.Errorf("expected width 1024, got %d", loaded.Graphics.Width)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir should not return empty string")
	}
	if !strings.Contains(strings.ToLower(dir), "boxedit") {
		t.Errorf("ConfigDir should name the application, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(origDir)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "boxedit.yaml"), []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find boxedit.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "manipulate flag",
			setup: func() { *flagManipulate = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Interaction.StartMode != StartManipulate {
					t.Errorf("expected manipulate start, got %q", cfg.Interaction.StartMode)
				}
			},
			teardown: func() { *flagManipulate = false },
		},
		{
			name:  "zero margin flag",
			setup: func() { *flagMargin = 0 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Interaction.Margin != 0 {
					t.Errorf("expected margin 0, got %g", cfg.Interaction.Margin)
				}
			},
			teardown: func() { *flagMargin = -1 },
		},
		{
			name:  "step flag",
			setup: func() { *flagStep = 0.25 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Interaction.StepSize != 0.25 {
					t.Errorf("expected step 0.25, got %g", cfg.Interaction.StepSize)
				}
			},
			teardown: func() { *flagStep = 0 },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
interaction:
  step_size: 3
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Interaction.StepSize != 3 {
		t.Errorf("expected step 3 from file, got %g", cfg.Interaction.StepSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("interaction:\n  step_size: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "step_size") {
		t.Errorf("expected step_size validation error, got %v", err)
	}
}
