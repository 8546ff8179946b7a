package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/tvgrid/internal/backend"
	"github.com/atomicstack/tvgrid/internal/catalog"
	"github.com/atomicstack/tvgrid/internal/data/dispatcher"
	"github.com/atomicstack/tvgrid/internal/grid"
	"github.com/atomicstack/tvgrid/internal/population"
	"github.com/atomicstack/tvgrid/internal/resolve"
	"github.com/atomicstack/tvgrid/internal/theme"
	"github.com/atomicstack/tvgrid/internal/ui/command"
	"github.com/atomicstack/tvgrid/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Catalog is the network side of the browser.
type Catalog interface {
	FetchHome(ctx context.Context) (catalog.Home, error)
	population.Fetcher
}

// ImageProber checks tile images in the background and reports failures.
type ImageProber interface {
	Submit(tileID, url string) bool
	Events() <-chan backend.Event
}

// Options configures a Model.
type Options struct {
	Catalog      Catalog
	Images       ImageProber
	AspectRatio  resolve.AspectRatio
	MoveInterval time.Duration
	FetchRetries int
	Width        int
	Height       int
	ShowFooter   bool
	// Now is the limiter clock; nil uses time.Now.
	Now func() time.Time
}

// Model implements the Bubble Tea model for the catalog grid.
type Model struct {
	catalog Catalog
	images  ImageProber
	ctx     context.Context

	home     catalog.Home
	grid     *grid.Grid
	cache    *resolve.Cache
	source   *population.ViewportSource
	lazy     *population.Controller
	loading  bool
	selected state.Selection
	rows     state.Viewport
	columns  []state.Viewport
	modal    *state.Modal
	limiter  *state.Limiter
	retries  int

	errMsg      string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	spinning bool

	handlers   map[reflect.Type]msgHandler
	bus        *command.Bus
	dispatcher *dispatcher.Dispatcher
}

// NewModel initialises the UI state. The catalog root is requested by Init.
func NewModel(opts Options) *Model {
	ratio := opts.AspectRatio
	if ratio == "" {
		ratio = resolve.DefaultAspectRatio
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	if styles.Loading != nil {
		s.Style = *styles.Loading
	}
	m := &Model{
		catalog:    opts.Catalog,
		images:     opts.Images,
		ctx:        context.Background(),
		cache:      resolve.NewCache(ratio),
		source:     population.NewViewportSource(),
		loading:    opts.Catalog != nil,
		modal:      &state.Modal{},
		limiter:    state.NewLimiter(opts.MoveInterval, opts.Now),
		retries:    opts.FetchRetries,
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		bus:        command.New(),
	}
	m.dispatcher = dispatcher.New(func() *grid.Grid { return m.grid }, m.modal)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.catalog != nil {
		cmds = append(cmds, loadHomeCmd(m.ctx, m.catalog))
	}
	if m.images != nil {
		cmds = append(cmds, waitForImageEvent(m.images))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):            m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):     m.handleWindowSizeMsg,
		reflect.TypeOf(homeLoadedMsg{}):         m.handleHomeLoadedMsg,
		reflect.TypeOf(population.Completion{}): m.handleCompletionMsg,
		reflect.TypeOf(imageEventMsg{}):         m.handleImageEventMsg,
		reflect.TypeOf(imageDoneMsg{}):          m.handleImageDoneMsg,
		reflect.TypeOf(spinner.TickMsg{}):       m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate flushes fetch jobs queued during the update and starts the
// row spinner when a container went pending.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.bus.Drain(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if !m.spinning && m.lazy != nil && m.lazy.Pending() {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if m.lazy == nil || !m.lazy.Pending() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// Selection returns the current selection.
func (m *Model) Selection() state.Selection { return m.selected }

// Grid returns the loaded grid, or nil before the catalog root arrives.
func (m *Model) Grid() *grid.Grid { return m.grid }

// Modal exposes the overlay state.
func (m *Model) Modal() *state.Modal { return m.modal }

// Close releases visibility subscriptions.
func (m *Model) Close() {
	if m.lazy != nil {
		m.lazy.Close()
	}
}
