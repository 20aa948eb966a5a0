package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mespinosa/fuelcap/internal/common"
	"github.com/mespinosa/fuelcap/internal/extract"
	"github.com/mespinosa/fuelcap/internal/invoice"
	"github.com/mespinosa/fuelcap/internal/layout"
	"github.com/mespinosa/fuelcap/internal/ocr"
)

// fieldscan runs region OCR + field extraction against a single invoice
// photo and prints the resulting record as JSON. Useful for tuning the
// layout file without touching the workbook.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "fieldscan <image-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	regions := layout.Default()
	if l, err := layout.Load(cfg.OCR.LayoutPath); err == nil {
		regions = l
	} else {
		logger.Info("layout.using_default", "path", cfg.OCR.LayoutPath, "reason", err)
	}

	reader := ocr.NewReader(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		PSM:         cfg.OCR.PSM,
		TessdataDir: cfg.OCR.TessdataDir,
		WorkDir:     cfg.OCR.WorkDir,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.OCR.Timeout)
	defer cancel()

	start := time.Now()
	img, err := reader.Open(path)
	if err != nil {
		logger.Error("open image", "path", path, "error", err)
		os.Exit(1)
	}

	builder := invoice.NewBuilder(regions, extract.New(cfg.Extract.ClavePrefix), logger)
	rec, err := builder.Build(ctx, img)
	if err != nil {
		logger.Error("build record", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("fieldscan.done", "path", path, "duration_ms", time.Since(start).Milliseconds())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
