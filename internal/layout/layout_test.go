package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mespinosa/fuelcap/constants"
)

const validLayoutJSON = `{
	"numero_embarque":  {"x1": 2000, "y1": 500,  "x2": 2500, "y2": 900},
	"fecha_carga":      {"x1": 1650, "y1": 350,  "x2": 2000, "y2": 600},
	"clave_equipo":     {"x1": 820,  "y1": 1180, "x2": 1150, "y2": 1420},
	"cantidad_natural": {"x1": 60,   "y1": 1680, "x2": 500,  "y2": 1900},
	"cantidad_20c":     {"x1": 420,  "y1": 1700, "x2": 820,  "y2": 1900}
}`

func TestParseValid(t *testing.T) {
	l, err := Parse([]byte(validLayoutJSON))
	require.NoError(t, err)

	assert.Len(t, l, len(constants.Fields))
	assert.Equal(t, Region{X1: 2000, Y1: 500, X2: 2500, Y2: 900}, l[constants.FieldNumeroEmbarque])
}

func TestParseRejectsMissingField(t *testing.T) {
	_, err := Parse([]byte(`{
		"numero_embarque": {"x1": 0, "y1": 0, "x2": 10, "y2": 10}
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid layout")
}

func TestParseRejectsUnknownField(t *testing.T) {
	bad := validLayoutJSON[:len(validLayoutJSON)-1] +
		`, "totales": {"x1": 0, "y1": 0, "x2": 1, "y2": 1}}`
	_, err := Parse([]byte(bad))
	require.Error(t, err)
}

func TestParseRejectsEmptyCropBox(t *testing.T) {
	_, err := Parse([]byte(`{
		"numero_embarque":  {"x1": 100, "y1": 100, "x2": 100, "y2": 900},
		"fecha_carga":      {"x1": 1650, "y1": 350,  "x2": 2000, "y2": 600},
		"clave_equipo":     {"x1": 820,  "y1": 1180, "x2": 1150, "y2": 1420},
		"cantidad_natural": {"x1": 60,   "y1": 1680, "x2": 500,  "y2": 1900},
		"cantidad_20c":     {"x1": 420,  "y1": 1700, "x2": 820,  "y2": 1900}
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty crop box")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, os.WriteFile(path, []byte(validLayoutJSON), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), l)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestDefaultCoversAllFields(t *testing.T) {
	d := Default()
	for _, f := range constants.Fields {
		r, ok := d[f]
		require.True(t, ok, "missing region for %s", f)
		assert.Greater(t, r.X2, r.X1)
		assert.Greater(t, r.Y2, r.Y1)
	}
}
