package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformedHome is returned when the root record has no collection.
	ErrMalformedHome = errors.New("catalog root has no StandardCollection")
	// ErrMalformedSet is returned when a dynamic set response carries none of
	// the known set shapes.
	ErrMalformedSet = errors.New("set response has no CuratedSet, PersonalizedCuratedSet or TrendingSet")
)

type containerEntry struct {
	Set ContainerPayload `json:"set"`
}

type standardCollection struct {
	Text       *Text            `json:"text,omitempty"`
	Containers []containerEntry `json:"containers"`
}

type homeDocument struct {
	Data struct {
		StandardCollection *standardCollection `json:"StandardCollection"`
	} `json:"data"`
}

// DecodeHome parses the catalog root.
func DecodeHome(r io.Reader) (Home, error) {
	var doc homeDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Home{}, fmt.Errorf("decode catalog root: %w", err)
	}
	coll := doc.Data.StandardCollection
	if coll == nil {
		return Home{}, ErrMalformedHome
	}
	home := Home{Containers: make([]ContainerPayload, 0, len(coll.Containers))}
	if coll.Text != nil && coll.Text.Title.Full.Collection != nil {
		if def := coll.Text.Title.Full.Collection.Default; def != nil {
			home.Title = def.Content
		}
	}
	for _, entry := range coll.Containers {
		home.Containers = append(home.Containers, entry.Set)
	}
	return home, nil
}

type itemSet struct {
	Items []RawItem `json:"items"`
}

type setShapes struct {
	CuratedSet             *itemSet `json:"CuratedSet,omitempty"`
	PersonalizedCuratedSet *itemSet `json:"PersonalizedCuratedSet,omitempty"`
	TrendingSet            *itemSet `json:"TrendingSet,omitempty"`
}

// first returns the first present shape in fixed order.
func (s setShapes) first() *itemSet {
	for _, candidate := range []*itemSet{s.CuratedSet, s.PersonalizedCuratedSet, s.TrendingSet} {
		if candidate != nil {
			return candidate
		}
	}
	return nil
}

type setDocument struct {
	Data *setShapes `json:"data,omitempty"`
	setShapes
}

// DecodeSet parses a dynamic set response and returns its items in response
// order. The set shapes are looked up under "data" first, then at the top level.
func DecodeSet(r io.Reader) ([]RawItem, error) {
	var doc setDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode set: %w", err)
	}
	var set *itemSet
	if doc.Data != nil {
		set = doc.Data.first()
	}
	if set == nil {
		set = doc.setShapes.first()
	}
	if set == nil {
		return nil, ErrMalformedSet
	}
	items := set.Items
	if items == nil {
		items = []RawItem{}
	}
	return items, nil
}
