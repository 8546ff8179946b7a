package ui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/tvgrid/internal/catalog"
	"github.com/atomicstack/tvgrid/internal/logging"
	"github.com/atomicstack/tvgrid/internal/resolve"
	"github.com/atomicstack/tvgrid/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeCatalog struct {
	home    catalog.Home
	homeErr error
	sets    map[string][]catalog.RawItem
	errs    map[string]error
	calls   map[string]int
}

func (f *fakeCatalog) FetchHome(context.Context) (catalog.Home, error) {
	if f.homeErr != nil {
		return catalog.Home{}, f.homeErr
	}
	return f.home, nil
}

func (f *fakeCatalog) FetchSet(_ context.Context, id string) ([]catalog.RawItem, error) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[id]++
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	items, ok := f.sets[id]
	if !ok {
		return nil, errors.New("unknown set " + id)
	}
	return items, nil
}

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func textOf(kind, title string) *catalog.Text {
	variant := &catalog.TextVariant{Default: &catalog.TextContent{Content: title}}
	full := catalog.FullTitle{}
	switch kind {
	case "series":
		full.Series = variant
	case "collection":
		full.Collection = variant
	case "set":
		full.Set = variant
	default:
		full.Program = variant
	}
	return &catalog.Text{Title: catalog.TitleText{Full: full}}
}

func imageSet(url string) catalog.ImageSet {
	return catalog.ImageSet{
		"1.78": {Default: &catalog.ImageVariant{Default: &catalog.ImageRef{URL: url}}},
	}
}

func item(id, title string) catalog.RawItem {
	return catalog.RawItem{
		ContentID: id,
		Text:      textOf("program", title),
		Image:     &catalog.Images{Tile: imageSet("https://img.example/" + id + ".jpg")},
		Releases:  []catalog.Release{{ReleaseYear: 1999}},
		Ratings:   []catalog.Rating{{Value: "TV-14"}},
	}
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		home: catalog.Home{
			Title: "Home",
			Containers: []catalog.ContainerPayload{
				{SetID: "featured", Text: textOf("set", "Featured"), Items: []catalog.RawItem{
					item("a", "Alpha"), item("b", "Bravo"), item("c", "Charlie"), item("d", "Delta"),
				}},
				{RefID: "trending", Text: textOf("set", "Trending")},
				{RefID: "more", Text: textOf("set", "More")},
				{RefID: "extra", Text: textOf("set", "Extra")},
			},
		},
		sets: map[string][]catalog.RawItem{
			"trending": {item("e", "Echo"), item("f", "Foxtrot")},
			"more":     {item("g", "Golf")},
			"extra":    {item("h", "Hotel")},
		},
	}
}

type fixture struct {
	t       *testing.T
	catalog *fakeCatalog
	clock   *testClock
	harness *Harness
}

// newFixture builds a model two rows tall and four tiles wide.
func newFixture(t *testing.T, cat *fakeCatalog, mutate func(*Options)) *fixture {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "tvgrid.log"))
	t.Cleanup(func() { logging.Configure("") })

	clock := &testClock{t: time.Unix(1_700_000_000, 0)}
	opts := Options{
		Catalog:      cat,
		AspectRatio:  resolve.DefaultAspectRatio,
		MoveInterval: state.DefaultMoveInterval,
		FetchRetries: 2,
		Width:        100,
		Height:       12,
		Now:          clock.now,
	}
	if mutate != nil {
		mutate(&opts)
	}
	h := NewHarness(NewModel(opts))
	h.Start()
	return &fixture{t: t, catalog: cat, clock: clock, harness: h}
}

// press sends a key after waiting out the move interval.
func (f *fixture) press(keyType tea.KeyType) {
	f.clock.t = f.clock.t.Add(time.Second)
	f.harness.Send(tea.KeyMsg{Type: keyType})
}

func (f *fixture) selection() state.Selection {
	return f.harness.Model().Selection()
}

func (f *fixture) expectSelection(container, tile int) {
	f.t.Helper()
	if got := f.selection(); got != (state.Selection{Container: container, Tile: tile}) {
		f.t.Fatalf("expected selection (%d,%d), got (%d,%d)", container, tile, got.Container, got.Tile)
	}
}
