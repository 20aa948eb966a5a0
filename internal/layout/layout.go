// Package layout describes where each invoice field sits on the
// photographed document. Crop boxes are deployment-specific (camera
// mount, invoice format) and load from a JSON file rather than being
// compiled in.
package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mespinosa/fuelcap/constants"
)

// Region is a pixel-coordinate crop box, top-left origin.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Layout maps every invoice field to its crop region.
type Layout map[constants.Field]Region

// Default is the layout the system shipped with, for 3000x2000 invoice
// photos from the original deployment.
func Default() Layout {
	return Layout{
		constants.FieldNumeroEmbarque:  {X1: 2000, Y1: 500, X2: 2500, Y2: 900},
		constants.FieldFechaCarga:      {X1: 1650, Y1: 350, X2: 2000, Y2: 600},
		constants.FieldClaveEquipo:     {X1: 820, Y1: 1180, X2: 1150, Y2: 1420},
		constants.FieldCantidadNatural: {X1: 60, Y1: 1680, X2: 500, Y2: 1900},
		constants.FieldCantidad20C:     {X1: 420, Y1: 1700, X2: 820, Y2: 1900},
	}
}

// Load reads a layout file, validates it against the layout schema, and
// decodes it. The file must define a region for every invoice field.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes layout JSON.
func Parse(data []byte) (Layout, error) {
	if err := validateLayoutJSON(data); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	for f, r := range l {
		if r.X2 <= r.X1 || r.Y2 <= r.Y1 {
			return nil, fmt.Errorf("invalid layout: field %q has an empty crop box", f)
		}
	}
	return l, nil
}
