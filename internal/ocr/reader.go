// Package ocr reads text out of invoice photo regions. Cropping and
// preprocessing happen in-process; the actual character recognition is
// tesseract invoked as an external command.
package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/mespinosa/fuelcap/internal/layout"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Lang string // OCR language hint, default "spa"
	PSM  int    // page segmentation mode; 6 suits a uniform block of text

	TessdataDir string
	WorkDir     string // where cropped regions are staged for tesseract
}

// Reader opens invoice photos and OCRs rectangular regions of them.
type Reader struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewReader(cfg Config, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "spa"
	}
	if cfg.PSM <= 0 {
		cfg.PSM = 6
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = "./tmp"
	}
	return &Reader{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Open decodes an invoice photo. A file that cannot be opened or decoded
// is an operator mistake (wrong path, corrupt capture) and surfaces as an
// error rather than empty text.
func (r *Reader) Open(path string) (*Image, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open invoice image %q: %w", path, err)
	}
	return &Image{src: src, path: path, reader: r}, nil
}

// Image is one decoded invoice photo, ready for region reads.
type Image struct {
	src    image.Image
	path   string
	reader *Reader
}

// ReadRegion crops the region, enhances it for recognition, and runs
// tesseract over it. Returns the raw recognized text, trimmed.
func (im *Image) ReadRegion(ctx context.Context, reg layout.Region) (string, error) {
	r := im.reader

	cropped := imaging.Crop(im.src, image.Rect(reg.X1, reg.Y1, reg.X2, reg.Y2))

	// grayscale + contrast + sharpen to help tesseract with photographed paper
	img := imaging.Grayscale(cropped)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)

	if err := os.MkdirAll(r.cfg.WorkDir, 0o755); err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	staged := filepath.Join(r.cfg.WorkDir, "region-"+uuid.NewString()+".png")
	if err := imaging.Save(img, staged); err != nil {
		return "", fmt.Errorf("stage region image: %w", err)
	}
	defer func() {
		if rmErr := os.Remove(staged); rmErr != nil {
			r.logger.Warn("remove staged region", "path", staged, "error", rmErr)
		}
	}()

	txt, err := r.tesseractOCR(ctx, staged)
	if err != nil {
		return "", err
	}

	r.logger.Debug("region read",
		"image", im.path,
		"region", fmt.Sprintf("%d,%d-%d,%d", reg.X1, reg.Y1, reg.X2, reg.Y2),
		"text_bytes", len(txt),
	)
	return strings.TrimSpace(txt), nil
}

// tesseract <file> stdout -l <lang> --psm <n>
func (r *Reader) tesseractOCR(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", r.cfg.Lang, "--psm", strconv.Itoa(r.cfg.PSM)}
	if r.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", r.cfg.TessdataDir)
	}

	out, _, err := r.runner.Run(ctx, r.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}
