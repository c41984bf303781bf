package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagManipulate = flag.Bool("manipulate", false, "Start in face manipulation mode")
	flagMargin     = flag.Float64("margin", -1, "Inset between face edges and walls")
	flagStep       = flag.Float64("step", 0, "Accumulator step per move event")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagManipulate {
		cfg.Interaction.StartMode = StartManipulate
	}
	if *flagMargin >= 0 {
		cfg.Interaction.Margin = *flagMargin
	}
	if *flagStep > 0 {
		cfg.Interaction.StepSize = *flagStep
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
