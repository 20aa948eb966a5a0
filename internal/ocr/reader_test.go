package ocr

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mespinosa/fuelcap/internal/layout"
)

type fakeRunner struct {
	stdout  string
	err     error
	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return []byte(f.stdout), nil, f.err
}

func writeTestImage(t *testing.T, dir string) string {
	t.Helper()
	img := imaging.New(200, 100, color.White)
	path := filepath.Join(dir, "invoice.png")
	require.NoError(t, imaging.Save(img, path))
	return path
}

func TestOpenMissingFile(t *testing.T) {
	r := NewReader(Config{WorkDir: t.TempDir()}, nil)

	_, err := r.Open(filepath.Join(t.TempDir(), "missing.jpg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open invoice image")
}

func TestReadRegionRunsTesseract(t *testing.T) {
	dir := t.TempDir()
	work := filepath.Join(dir, "work")

	r := NewReader(Config{Lang: "spa", PSM: 6, WorkDir: work}, nil)
	fake := &fakeRunner{stdout: "257288\n"}
	r.runner = fake

	im, err := r.Open(writeTestImage(t, dir))
	require.NoError(t, err)

	txt, err := im.ReadRegion(context.Background(), layout.Region{X1: 0, Y1: 0, X2: 100, Y2: 50})
	require.NoError(t, err)
	assert.Equal(t, "257288", txt)

	assert.Equal(t, "tesseract", fake.gotName)
	assert.Contains(t, fake.gotArgs, "-l")
	assert.Contains(t, fake.gotArgs, "spa")
	assert.Contains(t, fake.gotArgs, "--psm")
	assert.Contains(t, fake.gotArgs, "6")

	// staged crop is cleaned up after the read
	entries, err := os.ReadDir(work)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadRegionDefaults(t *testing.T) {
	r := NewReader(Config{}, nil)
	assert.Equal(t, "tesseract", r.cfg.Tesseract)
	assert.Equal(t, "spa", r.cfg.Lang)
	assert.Equal(t, 6, r.cfg.PSM)
}

func TestReadRegionPropagatesOCRFailure(t *testing.T) {
	dir := t.TempDir()
	r := NewReader(Config{WorkDir: filepath.Join(dir, "work")}, nil)
	r.runner = &fakeRunner{err: assert.AnError}

	im, err := r.Open(writeTestImage(t, dir))
	require.NoError(t, err)

	_, err = im.ReadRegion(context.Background(), layout.Region{X1: 0, Y1: 0, X2: 10, Y2: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
}
