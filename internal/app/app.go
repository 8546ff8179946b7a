package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/atomicstack/tvgrid/internal/backend"
	"github.com/atomicstack/tvgrid/internal/resolve"
	"github.com/atomicstack/tvgrid/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	HomeURL      string
	SetsURL      string
	AspectRatio  resolve.AspectRatio
	MoveInterval time.Duration
	FetchRetries int
	Timeout      time.Duration
	ProbeImages  bool
	ImageWorkers int
	Width        int
	Height       int
	ShowFooter   bool
}

// imageProbeInterval spaces out image requests so a freshly loaded row does
// not burst the image host.
const imageProbeInterval = 25 * time.Millisecond

// Options builds the UI options for cfg, wiring the catalog client and, when
// enabled, the image watcher. The returned stop function must be called once
// the program exits.
func Options(cfg Config) (ui.Options, func(), error) {
	ratio := resolve.DefaultAspectRatio
	if cfg.AspectRatio != "" {
		parsed, err := resolve.ParseAspectRatio(string(cfg.AspectRatio))
		if err != nil {
			return ui.Options{}, nil, fmt.Errorf("aspect ratio: %w", err)
		}
		ratio = parsed
	}
	opts := ui.Options{
		Catalog:      backend.NewClient(cfg.HomeURL, cfg.SetsURL, cfg.Timeout),
		AspectRatio:  ratio,
		MoveInterval: cfg.MoveInterval,
		FetchRetries: cfg.FetchRetries,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
	}
	stop := func() {}
	if cfg.ProbeImages {
		watcher := backend.NewWatcher(backend.WatcherOptions{
			Loader:   backend.HTTPImageLoader{Client: &http.Client{Timeout: cfg.Timeout}},
			Workers:  cfg.ImageWorkers,
			Interval: imageProbeInterval,
		})
		opts.Images = watcher
		stop = func() {
			watcher.Stop()
			watcher.Wait()
		}
	}
	return opts, stop, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	opts, stop, err := Options(cfg)
	if err != nil {
		return err
	}
	defer stop()
	model := ui.NewModel(opts)
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
