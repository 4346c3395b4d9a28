package model

import (
	"github.com/goccy/go-json"
)

// ColorScaleEntry is the color of one level on the scale.
// Value is the normalized position of the level in [0, 1].
type ColorScaleEntry struct {
	Value float64
	RGBA  [4]float64
	Hex   string
}

// MarshalJSON encodes the entry as a [value, [r, g, b, a], hex] triple,
// the shape expected by plotly custom colorscales.
func (e ColorScaleEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.Value, e.RGBA, e.Hex})
}

