package resolve

import (
	"fmt"
	"strconv"
	"strings"
)

// AspectRatio is an image bucket key such as "1.78".
type AspectRatio string

// DefaultAspectRatio is used whenever a requested ratio has no bucket, and
// always for overlay imagery.
const DefaultAspectRatio AspectRatio = "1.78"

// AllowedAspectRatios lists the ratios the catalog publishes tile buckets for.
var AllowedAspectRatios = []AspectRatio{"1.78", "2.29", "0.71", "0.75", "0.67"}

// Allowed reports whether a is one of AllowedAspectRatios.
func (a AspectRatio) Allowed() bool {
	for _, allowed := range AllowedAspectRatios {
		if a == allowed {
			return true
		}
	}
	return false
}

// Bucket returns the key to look tile images up under.
func (a AspectRatio) Bucket() AspectRatio {
	if a.Allowed() {
		return a
	}
	return DefaultAspectRatio
}

// ParseAspectRatio normalizes a numeric ratio to its two-decimal key, so
// "1.7777" and "1.78" select the same bucket.
func ParseAspectRatio(s string) (AspectRatio, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("empty aspect ratio")
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return "", fmt.Errorf("parse aspect ratio %q: %w", s, err)
	}
	if value <= 0 {
		return "", fmt.Errorf("aspect ratio must be positive (got %q)", s)
	}
	return AspectRatio(strconv.FormatFloat(value, 'f', 2, 64)), nil
}

// AspectRatioFromSize derives the ratio of a width × height surface. Non
// positive sizes yield DefaultAspectRatio.
func AspectRatioFromSize(width, height float64) AspectRatio {
	if width <= 0 || height <= 0 {
		return DefaultAspectRatio
	}
	return AspectRatio(strconv.FormatFloat(width/height, 'f', 2, 64))
}
