// meshtool is a CLI utility for inspecting and converting triangle meshes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/trimesh/internal/config"
	"github.com/Faultbox/trimesh/internal/logger"
)

var (
	errUsage       = errors.New("usage")
	errCheckFailed = errors.New("integrity check failed")
)

// app carries what every command needs.
type app struct {
	cfg *config.Config
	out io.Writer
	p   *message.Printer
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, os.Stderr, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	a := &app{
		cfg: cfg,
		out: os.Stdout,
		p:   message.NewPrinter(userLanguage()),
	}

	err = a.run(args[0], args[1:])
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	case errors.Is(err, errCheckFailed):
		logger.Sync()
		os.Exit(2)
	default:
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "info":
		return a.cmdInfo(args)
	case "check":
		return a.cmdCheck(args)
	case "convert":
		return a.cmdConvert(args)
	case "normals":
		return a.cmdNormals(args)
	case "ring":
		return a.cmdRing(args)
	case "preview":
		return a.cmdPreview(args)
	case "help", "-h", "--help":
		printUsage(a.out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `meshtool - triangle mesh utility

Usage:
  meshtool [flags] <command> [options]

Commands:
  info <mesh>                  Show counts, bounds and extra data
  check <mesh>                 Run the integrity checker
  convert <in> <out>           Convert between OFF and OBJ
  normals <in> <out>           Compute normals and save (OBJ keeps vertex normals)
  ring <mesh> <vertex>         List triangles and vertices around a vertex
  preview <mesh> [-o file]     Render a flat-shaded PNG or BMP preview

Flags:
  -config <file>   Config file (default: $MESHTOOL_CONFIG, else nearest meshtool.yaml)
  -debug           Enable debug logging
  -no-normalize    Keep computed normals unnormalized
  -width, -height  Preview size in pixels
  -out <dir>       Preview output directory

Examples:
  meshtool info bunny.off
  meshtool convert bunny.off bunny.obj
  meshtool ring bunny.obj 42
  meshtool -width 1024 preview bunny.obj`)
}

// userLanguage picks the message language from the POSIX locale variables.
func userLanguage() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if tag, ok := parseLocale(os.Getenv(key)); ok {
			return tag
		}
	}
	return language.English
}

// parseLocale converts a locale such as "de_DE.UTF-8" to a language tag.
func parseLocale(locale string) (language.Tag, bool) {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
