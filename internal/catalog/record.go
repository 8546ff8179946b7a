package catalog

// TextContent is a single localized string.
type TextContent struct {
	Content string `json:"content"`
}

// TextVariant holds the default rendition of a text field.
type TextVariant struct {
	Default *TextContent `json:"default,omitempty"`
}

// FullTitle carries the title keyed by record variant. Items populate exactly
// one of Program, Series or Collection; container payloads use Set.
type FullTitle struct {
	Program    *TextVariant `json:"program,omitempty"`
	Series     *TextVariant `json:"series,omitempty"`
	Collection *TextVariant `json:"collection,omitempty"`
	Set        *TextVariant `json:"set,omitempty"`
}

type TitleText struct {
	Full FullTitle `json:"full"`
}

type Text struct {
	Title TitleText `json:"title"`
}

// ImageRef points at a single image asset.
type ImageRef struct {
	URL          string  `json:"url"`
	MasterID     string  `json:"masterId,omitempty"`
	MasterWidth  int     `json:"masterWidth,omitempty"`
	MasterHeight int     `json:"masterHeight,omitempty"`
	AspectRatio  float64 `json:"masterAspectRatio,omitempty"`
}

// ImageVariant holds the default rendition of an image.
type ImageVariant struct {
	Default *ImageRef `json:"default,omitempty"`
}

// ImageBucket is the set of variant images under one aspect ratio.
type ImageBucket struct {
	Program *ImageVariant `json:"program,omitempty"`
	Series  *ImageVariant `json:"series,omitempty"`
	Default *ImageVariant `json:"default,omitempty"`
}

// ImageSet maps aspect-ratio keys such as "1.78" to buckets.
type ImageSet map[string]*ImageBucket

// Images groups the image kinds used by the catalog.
type Images struct {
	Tile                ImageSet `json:"tile,omitempty"`
	HeroTile            ImageSet `json:"hero_tile,omitempty"`
	TitleTreatmentLayer ImageSet `json:"title_treatment_layer,omitempty"`
}

type Release struct {
	ReleaseYear int    `json:"releaseYear"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	ReleaseType string `json:"releaseType,omitempty"`
}

type Rating struct {
	Value  string `json:"value"`
	System string `json:"system,omitempty"`
}

// RawItem is a catalog record as delivered by either endpoint. It is one of
// three logical variants (program, series, collection) sharing this shape.
type RawItem struct {
	ContentID    string    `json:"contentId,omitempty"`
	CollectionID string    `json:"collectionId,omitempty"`
	Type         string    `json:"type,omitempty"`
	Text         *Text     `json:"text,omitempty"`
	Image        *Images   `json:"image,omitempty"`
	Releases     []Release `json:"releases,omitempty"`
	Ratings      []Rating  `json:"ratings,omitempty"`
}

// ID returns the content id, falling back to the collection id. It is empty
// when the record carries neither.
func (r RawItem) ID() string {
	if r.ContentID != "" {
		return r.ContentID
	}
	return r.CollectionID
}

// ContainerPayload describes one row of the catalog root.
type ContainerPayload struct {
	SetID string    `json:"setId,omitempty"`
	RefID string    `json:"refId,omitempty"`
	Type  string    `json:"type,omitempty"`
	Text  *Text     `json:"text,omitempty"`
	Items []RawItem `json:"items"`
}

// ID prefers setId over refId.
func (p ContainerPayload) ID() string {
	if p.SetID != "" {
		return p.SetID
	}
	return p.RefID
}

// Title returns the set's default title text.
func (p ContainerPayload) Title() string {
	if p.Text == nil || p.Text.Title.Full.Set == nil || p.Text.Title.Full.Set.Default == nil {
		return ""
	}
	return p.Text.Title.Full.Set.Default.Content
}

// Prepopulated reports whether the payload shipped with its items. An empty
// but present items list still counts.
func (p ContainerPayload) Prepopulated() bool {
	return p.Items != nil
}

// Home is the decoded catalog root.
type Home struct {
	Title      string
	Containers []ContainerPayload
}
