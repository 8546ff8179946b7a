package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/atomicstack/tvgrid/internal/grid"
	"github.com/atomicstack/tvgrid/internal/logging/events"
)

// Kind identifies what a backend event reports.
type Kind int

const (
	KindImage Kind = iota
)

// Event reports an image that could not be loaded.
type Event struct {
	Kind   Kind
	TileID string
	URL    string
	Err    error
}

// ImageLoader fetches one image source.
type ImageLoader interface {
	Load(ctx context.Context, url string) error
}

// ImageLoaderFunc adapts a function to ImageLoader.
type ImageLoaderFunc func(ctx context.Context, url string) error

func (f ImageLoaderFunc) Load(ctx context.Context, url string) error { return f(ctx, url) }

// HTTPImageLoader treats any transport error or non-2xx response as a failed
// image load.
type HTTPImageLoader struct {
	Client *http.Client
}

func (l HTTPImageLoader) Load(ctx context.Context, url string) error {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return nil
}

// WatcherOptions configures an image watcher.
type WatcherOptions struct {
	Loader   ImageLoader
	Workers  int
	Interval time.Duration
}

// Watcher probes tile image sources in the background and publishes an event
// for every source that fails to load.
type Watcher struct {
	loader   ImageLoader
	throttle *throttle
	slots    chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	seen    map[string]struct{}

	events    chan Event
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewWatcher creates an image watcher. Workers below one are raised to one.
func NewWatcher(opts WatcherOptions) *Watcher {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	loader := opts.Loader
	if loader == nil {
		loader = HTTPImageLoader{Client: &http.Client{Timeout: 10 * time.Second}}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		loader:   loader,
		throttle: newThrottle(opts.Interval),
		slots:    make(chan struct{}, workers),
		ctx:      ctx,
		cancel:   cancel,
		seen:     make(map[string]struct{}),
		events:   make(chan Event, 16),
	}
}

// Events returns the failure channel. It is closed by Wait.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Submit queues a probe for a tile image. Placeholder sources, empty urls and
// (tile, url) pairs already submitted are skipped. It reports whether a probe
// was started.
func (w *Watcher) Submit(tileID, url string) bool {
	if url == "" || url == grid.PlaceholderImage {
		return false
	}
	key := tileID + "\x00" + url
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return false
	}
	if _, dup := w.seen[key]; dup {
		w.mu.Unlock()
		return false
	}
	w.seen[key] = struct{}{}
	w.wg.Add(1)
	w.mu.Unlock()

	go w.probe(tileID, url)
	return true
}

// Stop cancels pending probes. Probes already loading finish or fail on the
// cancelled context; their failures are not published.
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
	w.cancel()
}

// Wait blocks until every probe goroutine has exited, then closes the events
// channel. Call after Stop.
func (w *Watcher) Wait() {
	w.wg.Wait()
	w.closeOnce.Do(func() { close(w.events) })
}

func (w *Watcher) probe(tileID, url string) {
	defer w.wg.Done()

	select {
	case <-w.ctx.Done():
		return
	case w.slots <- struct{}{}:
	}
	defer func() { <-w.slots }()

	if !w.throttle.wait(w.ctx) {
		return
	}
	events.Image.Probe(tileID, url)
	err := w.loader.Load(w.ctx, url)
	if err == nil || w.ctx.Err() != nil {
		return
	}
	evt := Event{Kind: KindImage, TileID: tileID, URL: url, Err: fmt.Errorf("load image %s: %w", url, err)}
	select {
	case <-w.ctx.Done():
	case w.events <- evt:
	}
}
