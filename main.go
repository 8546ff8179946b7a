package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tvgrid/internal/app"
	"github.com/atomicstack/tvgrid/internal/config"
	"github.com/atomicstack/tvgrid/internal/logging"
	"github.com/atomicstack/tvgrid/internal/logging/events"
	"github.com/atomicstack/tvgrid/internal/resolve"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	exitRuntime = 1
	exitConfig  = 2
)

// configError marks failures that happen before the program starts.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr))
}

func run(args, environ []string, stderr io.Writer) int {
	cmd := newRootCommand(args, environ)
	// a nil slice makes cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var cerr *configError
	if errors.As(err, &cerr) {
		fmt.Fprintf(stderr, "Configuration error: %v\n", cerr.err)
		return exitConfig
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitRuntime
}

func newRootCommand(args, environ []string) *cobra.Command {
	var opts *config.Options
	cmd := &cobra.Command{
		Use:   "tvgrid",
		Short: "Browse a streaming catalog as a grid of rows and tiles",
		Long: `tvgrid loads a streaming catalog and shows it as rows of title tiles.
Arrow keys move between tiles, enter opens the detail overlay and
backspace or esc closes it. Rows further down are fetched as they scroll
into view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, rest []string) error {
			if len(rest) > 0 {
				return &configError{fmt.Errorf("unexpected arguments: %v", rest)}
			}
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			cfg := opts.Config(args)
			if err := config.Validate(cfg); err != nil {
				return &configError{err}
			}
			return start(cfg)
		},
	}
	opts = config.Register(cmd.Flags(), environ)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &configError{err}
	})
	return cmd
}

func start(cfg config.Config) error {
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	tty := collectTTYDetails()
	if cfg.App.AspectRatio == "" {
		cfg.App.AspectRatio = detectAspectRatio(tty)
	}
	events.App.Start(startupTracePayload(cfg, tty))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		return err
	}
	return nil
}

// detectAspectRatio estimates the display shape from the terminal size. A
// cell is roughly twice as tall as it is wide.
func detectAspectRatio(tty ttyDetails) resolve.AspectRatio {
	if tty.Detected == nil {
		return resolve.DefaultAspectRatio
	}
	return resolve.AspectRatioFromSize(float64(tty.Detected.Width), float64(tty.Detected.Height*2))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, tty ttyDetails) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":        cfg.Args,
		"flags":       flags,
		"config":      cfg,
		"aspectRatio": string(cfg.App.AspectRatio),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = tty
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
