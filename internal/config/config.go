package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/aria-primitives/internal/anchor"
	"github.com/atomicstack/aria-primitives/internal/app"
	"github.com/atomicstack/aria-primitives/internal/typeahead"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	File     string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose   bool
	Inspector bool
}

const (
	envConfig           = "ARIA_PRIMITIVES_CONFIG"
	envWidth            = "ARIA_PRIMITIVES_WIDTH"
	envHeight           = "ARIA_PRIMITIVES_HEIGHT"
	envShowFooter       = "ARIA_PRIMITIVES_FOOTER"
	envInspector        = "ARIA_PRIMITIVES_INSPECTOR"
	envVerbose          = "ARIA_PRIMITIVES_VERBOSE"
	envTrace            = "ARIA_PRIMITIVES_TRACE"
	envLogFile          = "ARIA_PRIMITIVES_LOG_FILE"
	envDemo             = "ARIA_PRIMITIVES_DEMO"
	envPlacement        = "ARIA_PRIMITIVES_PLACEMENT"
	envOffset           = "ARIA_PRIMITIVES_OFFSET"
	envFlip             = "ARIA_PRIMITIVES_FLIP"
	envLoop             = "ARIA_PRIMITIVES_LOOP"
	envTypeAheadTimeout = "ARIA_PRIMITIVES_TYPEAHEAD_TIMEOUT"
	envTooltipOpen      = "ARIA_PRIMITIVES_TOOLTIP_OPEN_DELAY"
	envTooltipClose     = "ARIA_PRIMITIVES_TOOLTIP_CLOSE_DELAY"
)

// Keys read from the optional config file. Nested keys use viper's dotted
// form, so a YAML file can group the tooltip delays under "tooltip".
const (
	keyWidth            = "width"
	keyHeight           = "height"
	keyFooter           = "footer"
	keyInspector        = "inspector"
	keyVerbose          = "verbose"
	keyDemo             = "demo"
	keyPlacement        = "placement"
	keyOffset           = "offset"
	keyFlip             = "flip"
	keyLoop             = "loop"
	keyTypeAheadTimeout = "typeahead-timeout"
	keyTooltipOpen      = "tooltip.open-delay"
	keyTooltipClose     = "tooltip.close-delay"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// in order: flag, environment, config file, built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configPath := configFlag(args, envOrDefault(env, envConfig, ""))
	file, err := readFile(configPath)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("aria-primitives", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", configPath, "path to a YAML, TOML or JSON config file")
	width := fs.Int("width", envOrInt(env, envWidth, file.GetInt(keyWidth)), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.GetInt(keyHeight)), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, file.GetBool(keyFooter)), "enable footer hint row (disabled by default)")
	inspector := fs.Bool("inspector", envOrBool(env, envInspector, file.GetBool(keyInspector)), "show the attribute inspector for the focused element")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, file.GetBool(keyVerbose)), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	demo := fs.String("demo", envOrDefault(env, envDemo, file.GetString(keyDemo)), "open this demo instead of the catalogue")
	placement := fs.String("placement", envOrDefault(env, envPlacement, file.GetString(keyPlacement)), "popup placement, for example bottom-start")
	offset := fs.Float64("offset", envOrFloat(env, envOffset, file.GetFloat64(keyOffset)), "gap between a trigger and its popup in cells")
	flip := fs.Bool("flip", envOrBool(env, envFlip, file.GetBool(keyFlip)), "flip popups that overflow the viewport")
	loop := fs.Bool("loop", envOrBool(env, envLoop, file.GetBool(keyLoop)), "wrap arrow key navigation at the ends of a list")
	typeAhead := fs.Duration("typeahead-timeout", envOrDuration(env, envTypeAheadTimeout, file.GetDuration(keyTypeAheadTimeout)), "idle gap that resets the type-ahead buffer")
	tooltipOpen := fs.Duration("tooltip-open-delay", envOrDuration(env, envTooltipOpen, file.GetDuration(keyTooltipOpen)), "hover time before a tooltip opens")
	tooltipClose := fs.Duration("tooltip-close-delay", envOrDuration(env, envTooltipClose, file.GetDuration(keyTooltipClose)), "time before a tooltip closes once the pointer leaves")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	parsedPlacement, err := anchor.ParsePlacement(*placement)
	if err != nil {
		return Config{}, fmt.Errorf("placement: %w", err)
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Inspector:  *inspector,
			Verbose:    *verbose,
			RootDemo:   strings.TrimSpace(*demo),
			Tunables: app.Tunables{
				Placement:         parsedPlacement,
				Offset:            *offset,
				Flip:              *flip,
				Loop:              *loop,
				TypeAheadTimeout:  *typeAhead,
				TooltipOpenDelay:  *tooltipOpen,
				TooltipCloseDelay: *tooltipClose,
			},
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:   *verbose,
			Inspector: *inspector,
		},
		File: configPath,
		Flags: map[string]string{
			"config":            configPath,
			"width":             strconv.Itoa(*width),
			"height":            strconv.Itoa(*height),
			"footer":            strconv.FormatBool(*footer),
			"inspector":         strconv.FormatBool(*inspector),
			"trace":             strconv.FormatBool(*trace),
			"verbose":           strconv.FormatBool(*verbose),
			"logFile":           *logFile,
			"demo":              *demo,
			"placement":         parsedPlacement.String(),
			"offset":            strconv.FormatFloat(*offset, 'f', -1, 64),
			"flip":              strconv.FormatBool(*flip),
			"loop":              strconv.FormatBool(*loop),
			"typeaheadTimeout":  typeAhead.String(),
			"tooltipOpenDelay":  tooltipOpen.String(),
			"tooltipCloseDelay": tooltipClose.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// readFile loads the config file at path on top of the built-in defaults. An
// empty path yields the defaults alone.
func readFile(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(keyPlacement, "bottom-start")
	v.SetDefault(keyOffset, 0)
	v.SetDefault(keyFlip, true)
	v.SetDefault(keyLoop, true)
	v.SetDefault(keyFooter, false)
	v.SetDefault(keyInspector, true)
	v.SetDefault(keyTypeAheadTimeout, typeahead.DefaultTimeout)
	v.SetDefault(keyTooltipOpen, 700*time.Millisecond)
	v.SetDefault(keyTooltipClose, 300*time.Millisecond)
	if strings.TrimSpace(path) == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

// configFlag finds --config ahead of the full parse, since the file supplies
// the defaults of every other flag.
func configFlag(args []string, fallback string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return fallback
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects tunables the primitives cannot honour.
func Validate(cfg Config) error {
	t := cfg.App.Tunables
	if t.Offset < 0 {
		return fmt.Errorf("offset must be >= 0 (got %g)", t.Offset)
	}
	for name, d := range map[string]time.Duration{
		"typeahead-timeout":   t.TypeAheadTimeout,
		"tooltip-open-delay":  t.TooltipOpenDelay,
		"tooltip-close-delay": t.TooltipCloseDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must be >= 0 (got %s)", name, d)
		}
	}
	return nil
}
