// Package resolve normalizes raw catalog records into display models.
//
// Every lookup that falls back across record variants goes through
// FirstPresent, and the candidate order for each field is declared once in
// titleCandidates and imageCandidates.
package resolve

import (
	"fmt"

	"github.com/atomicstack/tvgrid/internal/catalog"
)

// Display is the normalized projection of a raw record. Optional fields are
// zero when the record lacks them.
type Display struct {
	Title             string
	TileImageURL      string
	HeroImageURL      string
	TitleTreatmentURL string
	ReleaseYear       int
	Rating            string
}

// HasTileImage reports whether a tile image source was found.
func (d Display) HasTileImage() bool { return d.TileImageURL != "" }

// HasReleaseYear reports whether the record carried a release year.
func (d Display) HasReleaseYear() bool { return d.ReleaseYear != 0 }

// HasRating reports whether the record carried a rating.
func (d Display) HasRating() bool { return d.Rating != "" }

// UnresolvableRecordError reports a record with none of the title variants.
// The accompanying Display is still usable: blank title, whatever images were
// found.
type UnresolvableRecordError struct {
	ID     string
	Reason string
}

func (e *UnresolvableRecordError) Error() string {
	id := e.ID
	if id == "" {
		id = "<no id>"
	}
	return fmt.Sprintf("unresolvable record %s: %s", id, e.Reason)
}

// FirstPresent returns the first candidate accepted by present.
func FirstPresent[T any](present func(T) bool, candidates ...T) (T, bool) {
	for _, candidate := range candidates {
		if present(candidate) {
			return candidate, true
		}
	}
	var zero T
	return zero, false
}

func titleCandidates(text *catalog.Text) []*catalog.TextVariant {
	if text == nil {
		return nil
	}
	full := text.Title.Full
	return []*catalog.TextVariant{full.Program, full.Series, full.Collection}
}

func imageCandidates(bucket *catalog.ImageBucket) []*catalog.ImageVariant {
	if bucket == nil {
		return nil
	}
	return []*catalog.ImageVariant{bucket.Program, bucket.Series, bucket.Default}
}

func textPresent(v *catalog.TextVariant) bool {
	return v != nil && v.Default != nil
}

func imagePresent(v *catalog.ImageVariant) bool {
	return v != nil && v.Default != nil && v.Default.URL != ""
}

// Title resolves the record title: program, then series, then collection.
func Title(item catalog.RawItem) (string, bool) {
	variant, ok := FirstPresent(textPresent, titleCandidates(item.Text)...)
	if !ok {
		return "", false
	}
	return variant.Default.Content, true
}

// ImageURL resolves one image kind under the given bucket: program, then
// series, then the generic default variant.
func ImageURL(set catalog.ImageSet, bucket AspectRatio) string {
	if set == nil {
		return ""
	}
	variant, ok := FirstPresent(imagePresent, imageCandidates(set[string(bucket)])...)
	if !ok {
		return ""
	}
	return variant.Default.URL
}

// Resolve maps a raw record to its display model. Tile images come from the
// requested ratio's bucket when that ratio is allowed and from the default
// bucket otherwise; hero and title-treatment images always use the default
// bucket. A record without any title variant yields the partial Display and an
// *UnresolvableRecordError.
func Resolve(item catalog.RawItem, requested AspectRatio) (Display, error) {
	var d Display
	title, ok := Title(item)
	d.Title = title
	if item.Image != nil {
		d.TileImageURL = ImageURL(item.Image.Tile, requested.Bucket())
		d.HeroImageURL = ImageURL(item.Image.HeroTile, DefaultAspectRatio)
		d.TitleTreatmentURL = ImageURL(item.Image.TitleTreatmentLayer, DefaultAspectRatio)
	}
	if len(item.Releases) > 0 {
		d.ReleaseYear = item.Releases[0].ReleaseYear
	}
	if len(item.Ratings) > 0 {
		d.Rating = item.Ratings[0].Value
	}
	if !ok {
		return d, &UnresolvableRecordError{ID: item.ID(), Reason: "no program, series or collection title"}
	}
	return d, nil
}
