package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagNoNormalize = flag.Bool("no-normalize", false, "Keep computed normals unnormalized")
	flagWidth       = flag.Int("width", 0, "Preview width in pixels")
	flagHeight      = flag.Int("height", 0, "Preview height in pixels")
	flagOut         = flag.String("out", "", "Preview output directory")
)

// ParseFlags parses command-line flags. Call this early in main().
// Arguments after the flags are left in flag.Args().
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
	if *flagNoNormalize {
		cfg.Normals.Normalize = false
	}
	if *flagWidth > 0 {
		cfg.Preview.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Preview.Height = *flagHeight
	}
	if *flagOut != "" {
		cfg.Preview.OutputDir = *flagOut
	}
}
