package resolve

import (
	"testing"

	"github.com/atomicstack/tvgrid/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayForUsesPairWhenComplete(t *testing.T) {
	o := OverlayFor(Display{
		Title:             "Movie",
		HeroImageURL:      "hero",
		TitleTreatmentURL: "tt",
		ReleaseYear:       2001,
		Rating:            "PG",
	}, "tile")
	assert.Equal(t, Overlay{
		Title:             "Movie",
		HeroImageURL:      "hero",
		TitleTreatmentURL: "tt",
		ReleaseYear:       2001,
		Rating:            "PG",
	}, o)
	assert.True(t, o.HasReleaseYear())
	assert.True(t, o.HasRating())
}

func TestOverlayForFallsBackTogether(t *testing.T) {
	for _, d := range []Display{
		{Title: "A", HeroImageURL: "hero"},
		{Title: "A", TitleTreatmentURL: "tt"},
		{Title: "A"},
	} {
		o := OverlayFor(d, "assets/default-image.jpg")
		assert.True(t, o.FromTile)
		assert.Equal(t, "assets/default-image.jpg", o.HeroImageURL)
		assert.Empty(t, o.TitleTreatmentURL, "title treatment is dropped with the hero")
	}
}

func TestCacheResolvesOncePerID(t *testing.T) {
	c := NewCache("0.71")
	assert.Equal(t, AspectRatio("0.71"), c.AspectRatio())

	item := catalog.RawItem{ContentID: "a", Text: titled(catalog.FullTitle{Program: text("First")})}
	d, err := c.Resolve("a", item)
	require.NoError(t, err)
	assert.Equal(t, "First", d.Title)

	changed := catalog.RawItem{ContentID: "a", Text: titled(catalog.FullTitle{Program: text("Second")})}
	d, err = c.Resolve("a", changed)
	require.NoError(t, err)
	assert.Equal(t, "First", d.Title, "second resolution is served from the cache")
	assert.Equal(t, 1, c.Len())

	cached, ok := c.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "First", cached.Title)
}

func TestCacheRemembersFailures(t *testing.T) {
	c := NewCache(DefaultAspectRatio)
	_, err := c.Resolve("bad", catalog.RawItem{ContentID: "bad"})
	require.Error(t, err)
	_, err = c.Resolve("bad", catalog.RawItem{ContentID: "bad", Text: titled(catalog.FullTitle{Program: text("Late")})})
	require.Error(t, err)
}

func TestCacheSkipsEmptyIDs(t *testing.T) {
	c := NewCache(DefaultAspectRatio)
	_, _ = c.Resolve("", catalog.RawItem{})
	assert.Equal(t, 0, c.Len())
}
