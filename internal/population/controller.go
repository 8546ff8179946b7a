// Package population fills dynamic containers when they first scroll into
// view.
package population

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/tvgrid/internal/catalog"
	"github.com/atomicstack/tvgrid/internal/grid"
	"github.com/atomicstack/tvgrid/internal/logging"
	"github.com/atomicstack/tvgrid/internal/logging/events"
	"github.com/atomicstack/tvgrid/internal/resolve"
	"github.com/google/uuid"
)

// DefaultMaxRetries is the number of refetches allowed after a failed fetch.
const DefaultMaxRetries = 2

// Fetcher loads the items of one dynamic set.
type Fetcher interface {
	FetchSet(ctx context.Context, id string) ([]catalog.RawItem, error)
}

// Spawner runs a fetch job off the UI goroutine and delivers its Completion
// back to it.
type Spawner interface {
	Spawn(label string, job func() Completion)
}

// Completion is the outcome of one fetch job.
type Completion struct {
	ContainerID string
	RequestID   string
	Attempt     int
	Items       []catalog.RawItem
	Err         error
}

// Result describes what Complete changed.
type Result struct {
	ContainerID string
	// Tiles are the tiles installed by this completion.
	Tiles    []*grid.Tile
	Err      error
	Retrying bool
	Stale    bool
}

// Options configures a Controller.
type Options struct {
	Source     VisibilitySource
	Fetcher    Fetcher
	Spawner    Spawner
	Cache      *resolve.Cache
	MaxRetries int
	Context    context.Context
}

// Controller subscribes unpopulated containers to visibility and runs exactly
// one fetch per container per visibility entry.
type Controller struct {
	grid     *grid.Grid
	source   VisibilitySource
	fetcher  Fetcher
	spawner  Spawner
	cache    *resolve.Cache
	retries  int
	ctx      context.Context
	subs     map[string]SubscriptionHandle
	attempts map[string]int
}

// New returns a controller for g. Nothing is subscribed until Install.
func New(g *grid.Grid, opts Options) *Controller {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	cache := opts.Cache
	if cache == nil {
		cache = resolve.NewCache(resolve.DefaultAspectRatio)
	}
	retries := opts.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &Controller{
		grid:     g,
		source:   opts.Source,
		fetcher:  opts.Fetcher,
		spawner:  opts.Spawner,
		cache:    cache,
		retries:  retries,
		ctx:      ctx,
		subs:     make(map[string]SubscriptionHandle),
		attempts: make(map[string]int),
	}
}

// BuildGrid turns the catalog root into a grid. Containers that shipped with
// items are resolved and marked Populated immediately; the rest start
// Unpopulated.
func BuildGrid(home catalog.Home, cache *resolve.Cache) *grid.Grid {
	containers := make([]*grid.Container, 0, len(home.Containers))
	for _, payload := range home.Containers {
		c := grid.NewContainer(payload.ID(), payload.Title())
		if payload.Prepopulated() {
			c.AppendTiles(buildTiles(c.ID, payload.Items, cache)...)
			if err := c.MarkPopulated(); err != nil {
				logging.Error(err)
			}
		}
		containers = append(containers, c)
	}
	return grid.New(containers...)
}

func buildTiles(containerID string, items []catalog.RawItem, cache *resolve.Cache) []*grid.Tile {
	tiles := make([]*grid.Tile, 0, len(items))
	for _, item := range items {
		id := item.ID()
		display, err := cache.Resolve(id, item)
		if id == "" {
			id = "unresolved-" + uuid.NewString()
		}
		if err != nil {
			var unresolvable *resolve.UnresolvableRecordError
			if errors.As(err, &unresolvable) {
				events.Population.Unresolvable(containerID, id, err)
			}
			logging.Error(fmt.Errorf("container %s: %w", containerID, err))
		}
		tiles = append(tiles, grid.NewTile(id, item, display))
	}
	return tiles
}

// Install subscribes every unpopulated container. Calling it again only
// subscribes containers that are not subscribed yet.
func (c *Controller) Install() {
	for _, container := range c.grid.Containers() {
		if container.State() != grid.Unpopulated {
			continue
		}
		c.subscribe(container.ID)
	}
}

func (c *Controller) subscribe(id string) {
	if c.source == nil {
		return
	}
	if _, ok := c.subs[id]; ok {
		return
	}
	events.Population.Subscribe(id)
	c.subs[id] = c.source.Subscribe(id, c.handleVisible)
}

func (c *Controller) unsubscribe(id string) {
	handle, ok := c.subs[id]
	if !ok {
		return
	}
	delete(c.subs, id)
	handle.Unsubscribe()
	events.Population.Unsubscribe(id)
}

// Subscribed reports whether the container is waiting for visibility.
func (c *Controller) Subscribed(id string) bool {
	_, ok := c.subs[id]
	return ok
}

// Attempts returns how many fetches were started for the container.
func (c *Controller) Attempts(id string) int {
	return c.attempts[id]
}

func (c *Controller) handleVisible(id string) {
	container, _, ok := c.grid.Find(id)
	if !ok {
		c.unsubscribe(id)
		return
	}
	events.Population.Visible(id, container.State().String())
	if container.State() != grid.Unpopulated {
		c.unsubscribe(id)
		return
	}
	if err := container.MarkPending(); err != nil {
		logging.Error(err)
		return
	}
	c.unsubscribe(id)

	c.attempts[id]++
	attempt := c.attempts[id]
	requestID := uuid.NewString()
	events.Population.Fetch(id, requestID, attempt)

	if c.spawner == nil || c.fetcher == nil {
		logging.Errorf("container %s: no fetcher configured", id)
		return
	}
	fetcher, ctx := c.fetcher, c.ctx
	c.spawner.Spawn("fetch "+id, func() Completion {
		items, err := fetcher.FetchSet(ctx, id)
		return Completion{ContainerID: id, RequestID: requestID, Attempt: attempt, Items: items, Err: err}
	})
}

// Complete applies a fetch outcome. It must run on the goroutine that owns the
// grid.
func (c *Controller) Complete(done Completion) Result {
	res := Result{ContainerID: done.ContainerID, Err: done.Err}
	container, _, ok := c.grid.Find(done.ContainerID)
	if !ok || container.State() != grid.Pending {
		res.Stale = true
		return res
	}

	if done.Err != nil {
		res.Retrying = c.attempts[done.ContainerID] <= c.retries
		logging.Error(fmt.Errorf("populate container %s (attempt %d): %w", done.ContainerID, done.Attempt, done.Err))
		events.Population.Failed(done.ContainerID, done.RequestID, done.Err, res.Retrying)
		if res.Retrying {
			if err := container.Revert(); err != nil {
				logging.Error(err)
				res.Retrying = false
				return res
			}
			c.subscribe(done.ContainerID)
			return res
		}
		if err := container.Abandon(); err != nil {
			logging.Error(err)
		}
		return res
	}

	res.Tiles = buildTiles(done.ContainerID, done.Items, c.cache)
	container.AppendTiles(res.Tiles...)
	if err := container.MarkPopulated(); err != nil {
		logging.Error(err)
	}
	events.Population.Populated(done.ContainerID, done.RequestID, len(res.Tiles))
	return res
}

// Pending reports whether any container is waiting on a fetch. Abandoned
// containers stay Pending but wait on nothing.
func (c *Controller) Pending() bool {
	for _, container := range c.grid.Containers() {
		if container.State() == grid.Pending && !container.Abandoned() {
			return true
		}
	}
	return false
}

// Close drops every live subscription.
func (c *Controller) Close() {
	for id := range c.subs {
		c.unsubscribe(id)
	}
}
