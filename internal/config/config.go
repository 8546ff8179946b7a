package config

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tvgrid/internal/app"
	"github.com/atomicstack/tvgrid/internal/logging"
	"github.com/atomicstack/tvgrid/internal/resolve"
	"github.com/atomicstack/tvgrid/internal/ui/state"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	DefaultHomeURL = "https://cd-static.bamgrid.com/dp-117731241344/home.json"
	DefaultSetsURL = "https://cd-static.bamgrid.com/dp-117731241344/sets/"

	defaultFetchRetries = 2
	defaultTimeout      = 10 * time.Second
	defaultImageWorkers = 4
)

const (
	envHomeURL      = "TVGRID_HOME_URL"
	envSetsURL      = "TVGRID_SETS_URL"
	envAspectRatio  = "TVGRID_ASPECT_RATIO"
	envMoveInterval = "TVGRID_MOVE_INTERVAL"
	envFetchRetries = "TVGRID_FETCH_RETRIES"
	envTimeout      = "TVGRID_TIMEOUT"
	envProbeImages  = "TVGRID_PROBE_IMAGES"
	envImageWorkers = "TVGRID_IMAGE_WORKERS"
	envWidth        = "TVGRID_WIDTH"
	envHeight       = "TVGRID_HEIGHT"
	envShowFooter   = "TVGRID_FOOTER"
	envTrace        = "TVGRID_TRACE"
	envLogFile      = "TVGRID_LOG_FILE"
)

// Options holds the parsed flag values bound to a flag set by Register.
type Options struct {
	homeURL      *string
	setsURL      *string
	aspectRatio  *string
	moveInterval *time.Duration
	fetchRetries *int
	timeout      *time.Duration
	probeImages  *bool
	imageWorkers *int
	width        *int
	height       *int
	footer       *bool
	trace        *bool
	logFile      *string
}

// Register binds every flag to fs. Environment values become the flag
// defaults, so an explicit flag always wins.
func Register(fs *pflag.FlagSet, environ []string) *Options {
	env := parseEnv(environ)
	return &Options{
		homeURL:      fs.String("home-url", envOrDefault(env, envHomeURL, DefaultHomeURL), "catalog root document URL"),
		setsURL:      fs.String("sets-url", envOrDefault(env, envSetsURL, DefaultSetsURL), "URL prefix for dynamic sets (<prefix><id>.json)"),
		aspectRatio:  fs.String("aspect-ratio", envOrDefault(env, envAspectRatio, ""), "image aspect ratio bucket (empty detects from the terminal)"),
		moveInterval: fs.Duration("move-interval", envOrDuration(env, envMoveInterval, state.DefaultMoveInterval), "minimum interval between accepted directional moves"),
		fetchRetries: fs.Int("fetch-retries", envOrInt(env, envFetchRetries, defaultFetchRetries), "refetch attempts for a failed row when it re-enters view"),
		timeout:      fs.Duration("timeout", envOrDuration(env, envTimeout, defaultTimeout), "HTTP request timeout"),
		probeImages:  fs.Bool("probe-images", envOrBool(env, envProbeImages, true), "check tile images in the background and substitute the placeholder on failure"),
		imageWorkers: fs.Int("image-workers", envOrInt(env, envImageWorkers, defaultImageWorkers), "concurrent image probes"),
		width:        fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:       fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:       fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable the key help footer"),
		trace:        fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:      fs.String("log-file", envOrDefault(env, envLogFile, logging.DefaultFileName), "path to the log file"),
	}
}

// Config assembles the runtime configuration from parsed flags. args is
// recorded for startup tracing only.
func (o *Options) Config(args []string) Config {
	return Config{
		App: app.Config{
			HomeURL:      *o.homeURL,
			SetsURL:      *o.setsURL,
			AspectRatio:  resolve.AspectRatio(strings.TrimSpace(*o.aspectRatio)),
			MoveInterval: *o.moveInterval,
			FetchRetries: *o.fetchRetries,
			Timeout:      *o.timeout,
			ProbeImages:  *o.probeImages,
			ImageWorkers: *o.imageWorkers,
			Width:        *o.width,
			Height:       *o.height,
			ShowFooter:   *o.footer,
		},
		Logging: Logging{
			FilePath: *o.logFile,
			Trace:    *o.trace,
		},
		Flags: map[string]string{
			"homeURL":      *o.homeURL,
			"setsURL":      *o.setsURL,
			"aspectRatio":  *o.aspectRatio,
			"moveInterval": o.moveInterval.String(),
			"fetchRetries": strconv.Itoa(*o.fetchRetries),
			"timeout":      o.timeout.String(),
			"probeImages":  strconv.FormatBool(*o.probeImages),
			"imageWorkers": strconv.Itoa(*o.imageWorkers),
			"width":        strconv.Itoa(*o.width),
			"height":       strconv.Itoa(*o.height),
			"footer":       strconv.FormatBool(*o.footer),
		},
		Args: append([]string(nil), args...),
	}
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("tvgrid", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := Register(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := opts.Config(args)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the application cannot start with.
func Validate(cfg Config) error {
	a := cfg.App
	if err := validateURL("home-url", a.HomeURL); err != nil {
		return err
	}
	if a.SetsURL != "" {
		if err := validateURL("sets-url", a.SetsURL); err != nil {
			return err
		}
	}
	if a.AspectRatio != "" {
		if _, err := resolve.ParseAspectRatio(string(a.AspectRatio)); err != nil {
			return fmt.Errorf("aspect-ratio: %w", err)
		}
	}
	if a.MoveInterval < 0 {
		return fmt.Errorf("move-interval must be >= 0 (got %s)", a.MoveInterval)
	}
	if a.FetchRetries < 0 {
		return fmt.Errorf("fetch-retries must be >= 0 (got %d)", a.FetchRetries)
	}
	if a.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", a.Timeout)
	}
	if a.ImageWorkers < 0 {
		return fmt.Errorf("image-workers must be >= 0 (got %d)", a.ImageWorkers)
	}
	if a.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}
	return nil
}

func validateURL(name, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL (got %q)", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host (got %q)", name, raw)
	}
	return nil
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
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
