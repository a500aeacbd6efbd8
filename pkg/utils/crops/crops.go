// Package crops describes crop regions in normalized frame coordinates and
// turns them into crop filter expressions.
package crops

import (
	"fmt"
	"strconv"
	"strings"
)

// Crop is a named crop region. X and Y are the center of the region, Width
// and Height its size, all normalized to 0.0-1.0 of the frame.
type Crop struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name,omitempty"`
	AspectRatio string  `json:"aspect_ratio" yaml:"aspect_ratio,omitempty"`
	X           float64 `json:"x" yaml:"x,omitempty"`
	Y           float64 `json:"y" yaml:"y,omitempty"`
	Width       float64 `json:"width" yaml:"width,omitempty"`
	Height      float64 `json:"height" yaml:"height,omitempty"`
}

// CropArray is the set of crops a recipe can reference by ID.
type CropArray []Crop

// Find returns the crop with the given ID.
func (a CropArray) Find(id string) (Crop, bool) {
	for _, c := range a {
		if c.ID == id {
			return c, true
		}
	}
	return Crop{}, false
}

// Unsized reports whether any crop is given only by its aspect ratio.
func (a CropArray) Unsized() bool {
	for _, c := range a {
		if c.unsized() {
			return true
		}
	}
	return false
}

// Size centers every aspect-ratio-only crop in a width x height frame.
func (a CropArray) Size(width, height int) {
	for i, c := range a {
		if c.unsized() {
			a[i] = ForAspect(width, height, c)
		}
	}
}

func (c Crop) unsized() bool {
	return c.AspectRatio != "" && c.Width == 0 && c.Height == 0
}

// ParseAspect parses a "w:h" ratio such as "16:9" or "2.39:1".
func ParseAspect(s string) (float64, bool) {
	ws, hs, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	w, errW := strconv.ParseFloat(ws, 64)
	h, errH := strconv.ParseFloat(hs, 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, false
	}
	return w / h, true
}

// ForAspect returns c sized to the largest region of c.AspectRatio centered
// in a videoWidth x videoHeight frame. Unparseable ratios ("custom") give
// the full frame.
func ForAspect(videoWidth, videoHeight int, c Crop) Crop {
	c.X, c.Y, c.Width, c.Height = 0.5, 0.5, 1, 1

	target, ok := ParseAspect(c.AspectRatio)
	if !ok || videoWidth <= 0 || videoHeight <= 0 {
		return c
	}
	source := float64(videoWidth) / float64(videoHeight)
	if source > target {
		c.Width = target / source
	} else {
		c.Height = source / target
	}
	return c
}

// IsFullFrame reports whether a region covers the whole frame, within
// rounding of the stored coordinates.
func IsFullFrame(x, y, w, h float64) bool {
	return x >= 0.49 && x <= 0.51 && y >= 0.49 && y <= 0.51 && w >= 0.99 && h >= 0.99
}

// Exprs converts a normalized center and size into crop expressions of the
// input dimensions (w, h, x, y). ok is false when the region is the full
// frame.
func Exprs(centerX, centerY, width, height float64) (w, h, x, y string, ok bool) {
	if IsFullFrame(centerX, centerY, width, height) {
		return "", "", "", "", false
	}
	return fmt.Sprintf("iw*%.6f", width), fmt.Sprintf("ih*%.6f", height),
		fmt.Sprintf("iw*%.6f", centerX-width/2), fmt.Sprintf("ih*%.6f", centerY-height/2), true
}

// Exprs returns the crop expressions for c.
func (c Crop) Exprs() (w, h, x, y string, ok bool) {
	return Exprs(c.X, c.Y, c.Width, c.Height)
}
