package resolve

// Overlay is the content bound to the detail overlay.
type Overlay struct {
	Title             string
	HeroImageURL      string
	TitleTreatmentURL string
	// FromTile is set when the overlay reuses the tile's image because the
	// hero/title-treatment pair was incomplete.
	FromTile    bool
	ReleaseYear int
	Rating      string
}

// OverlayFor builds the overlay for a resolved tile. Hero and title treatment
// are used together or not at all: when either is missing, the overlay shows
// tileImage (whatever the tile currently displays) and no title treatment.
func OverlayFor(d Display, tileImage string) Overlay {
	o := Overlay{
		Title:       d.Title,
		ReleaseYear: d.ReleaseYear,
		Rating:      d.Rating,
	}
	if d.HeroImageURL == "" || d.TitleTreatmentURL == "" {
		o.HeroImageURL = tileImage
		o.FromTile = true
		return o
	}
	o.HeroImageURL = d.HeroImageURL
	o.TitleTreatmentURL = d.TitleTreatmentURL
	return o
}

// HasReleaseYear reports whether a release year should be shown.
func (o Overlay) HasReleaseYear() bool { return o.ReleaseYear != 0 }

// HasRating reports whether a rating should be shown.
func (o Overlay) HasRating() bool { return o.Rating != "" }
