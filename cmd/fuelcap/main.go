package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mespinosa/fuelcap/constants"
	"github.com/mespinosa/fuelcap/internal/archive"
	"github.com/mespinosa/fuelcap/internal/common"
	"github.com/mespinosa/fuelcap/internal/extract"
	"github.com/mespinosa/fuelcap/internal/invoice"
	"github.com/mespinosa/fuelcap/internal/layout"
	"github.com/mespinosa/fuelcap/internal/ledger"
	"github.com/mespinosa/fuelcap/internal/ocr"
	"github.com/mespinosa/fuelcap/internal/report"
	"github.com/mespinosa/fuelcap/internal/shift"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	cfg := common.LoadConfig()

	var (
		workbook = flag.String("workbook", cfg.Workbook.Path, "path to the shift workbook (xlsx)")
		layoutP  = flag.String("layout", cfg.OCR.LayoutPath, "path to the region layout file (json)")
		outdir   = flag.String("outdir", cfg.Report.OutputDir, "directory for the exported PDF report")
		exported = flag.Bool("pdf", true, "export the finished report to PDF")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	// prompts go to stdout; logs stay on stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg, *workbook, *layoutP, *outdir, *exported, logger); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *common.Config, workbook, layoutPath, outdir string, exportPDF bool, logger *slog.Logger) error {
	ctx := context.Background()
	stdin := bufio.NewScanner(os.Stdin)

	fmt.Println("==== Captura de Facturas de Combustible ====")

	s, err := shift.Prompt(stdin, os.Stdout)
	if err != nil {
		return err
	}

	store := ledger.NewStore(workbook, logger)
	sheet, err := store.EnsureSheet(ledger.SheetName(s.Fecha, s.Turno), cfg.Workbook.TemplateSheet)
	if err != nil {
		return err
	}
	logger.Info("shift.sheet_ready", "sheet", sheet, "workbook", workbook)

	regions, err := loadLayout(layoutPath, logger)
	if err != nil {
		return err
	}

	reader := ocr.NewReader(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		PSM:         cfg.OCR.PSM,
		TessdataDir: cfg.OCR.TessdataDir,
		WorkDir:     cfg.OCR.WorkDir,
	}, logger)
	builder := invoice.NewBuilder(regions, extract.New(cfg.Extract.ClavePrefix), logger)
	appender := ledger.NewAppender(store, logger)

	hist, err := archive.Open(ctx, cfg.Archive.Path, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := hist.Close(); cerr != nil {
			logger.Warn("close archive", "error", cerr)
		}
	}()

	if err := processInvoices(ctx, cfg, stdin, sheet, reader, builder, appender, hist, logger); err != nil {
		return err
	}

	totals, err := ledger.NewAggregator(store, logger).Aggregate(sheet)
	if err != nil {
		return err
	}
	fmt.Printf("Total litros al natural: %.3f\n", totals.Natural)
	fmt.Printf("Total litros a 20 °C:    %.3f\n", totals.Normalized20C)

	if !exportPDF {
		return nil
	}
	pdf, err := report.NewFinalizer(store, report.Config{
		Converter: cfg.Report.Converter,
		OutputDir: outdir,
	}, logger).Finalize(ctx, sheet, report.ShiftSummary{
		Fecha:       s.Fecha,
		Turno:       s.Turno,
		Responsable: s.Responsable,
		Totals:      totals,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Reporte exportado: %s\n", pdf)
	return nil
}

// processInvoices loops over image paths typed by the operator until an
// empty line. An unreadable image only skips that invoice; workbook
// failures abort the shift.
func processInvoices(
	ctx context.Context,
	cfg *common.Config,
	sc *bufio.Scanner,
	sheet string,
	reader *ocr.Reader,
	builder *invoice.Builder,
	appender *ledger.Appender,
	hist *archive.Archive,
	logger *slog.Logger,
) error {
	for {
		fmt.Print("Ruta de la imagen (ENTER para terminar): ")
		if !sc.Scan() {
			return sc.Err()
		}
		path := strings.TrimSpace(sc.Text())
		if path == "" {
			return nil
		}

		octx, cancel := context.WithTimeout(ctx, cfg.OCR.Timeout)
		rec, err := captureOne(octx, path, reader, builder)
		cancel()
		if err != nil {
			// wrong path or corrupt photo: let the operator retry
			printError("No se pudo procesar %q: %v\n", path, err)
			continue
		}

		row, err := appender.Append(sheet, rec)
		if err != nil {
			if errors.Is(err, ledger.ErrSheetNotFound) {
				return err
			}
			return fmt.Errorf("guardar factura: %w", err)
		}

		if _, err := hist.Log(ctx, sheet, row, rec); err != nil {
			logger.Warn("archive.log_failed", "error", err)
		}

		fmt.Printf("Factura procesada (fila %d): %s\n", row, formatRecord(rec))
	}
}

func captureOne(ctx context.Context, path string, reader *ocr.Reader, builder *invoice.Builder) (invoice.Record, error) {
	img, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	return builder.Build(ctx, img)
}

func formatRecord(rec invoice.Record) string {
	parts := make([]string, 0, len(rec))
	for _, f := range constants.Fields {
		v := rec.Get(f)
		if v == "" {
			v = "(vacío)"
		}
		parts = append(parts, fmt.Sprintf("%s=%s", f, v))
	}
	return strings.Join(parts, " ")
}

func loadLayout(path string, logger *slog.Logger) (layout.Layout, error) {
	if path == "" {
		return layout.Default(), nil
	}
	l, err := layout.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("layout.using_default", "path", path)
			return layout.Default(), nil
		}
		return nil, err
	}
	return l, nil
}
