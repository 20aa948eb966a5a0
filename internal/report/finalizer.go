// Package report fills in the end-of-shift summary cells of a shift
// sheet and exports the workbook as a PDF for distribution.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mespinosa/fuelcap/constants"
	"github.com/mespinosa/fuelcap/internal/ledger"
	"github.com/mespinosa/fuelcap/internal/ocr"
)

type Config struct {
	Converter string // pdf converter binary; if empty -> "soffice"
	OutputDir string // where the exported PDF lands; if empty -> "."
}

// ShiftSummary is what the finalizer writes into the report cells.
type ShiftSummary struct {
	Fecha       string // dd/mm/yyyy
	Turno       string // HH:MM-HH:MM
	Responsable string
	Totals      ledger.Totals
}

// Finalizer writes shift metadata and totals into fixed template cells
// and exports the finished sheet to PDF.
type Finalizer struct {
	store  *ledger.Store
	cfg    Config
	runner ocr.Runner
	logger *slog.Logger
}

func NewFinalizer(store *ledger.Store, cfg Config, logger *slog.Logger) *Finalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Converter == "" {
		cfg.Converter = "soffice"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return &Finalizer{store: store, cfg: cfg, runner: ocr.NewRunner(), logger: logger}
}

// Finalize updates the report cells, switches the sheet to landscape, and
// exports the workbook to PDF. Returns the path of the exported PDF.
func (z *Finalizer) Finalize(ctx context.Context, sheet string, sum ShiftSummary) (string, error) {
	err := z.store.Update(sheet, func(f *excelize.File) error {
		cells := map[string]any{
			constants.ReportCellFecha:        sum.Fecha,
			constants.ReportCellTurno:        sum.Turno,
			constants.ReportCellResponsable:  sum.Responsable,
			constants.ReportCellTotalNatural: sum.Totals.Natural,
			constants.ReportCellTotal20C:     sum.Totals.Normalized20C,
		}
		for cell, v := range cells {
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}

		orientation := "landscape"
		if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
			Orientation: &orientation,
		}); err != nil {
			return fmt.Errorf("set page layout: %w", err)
		}

		if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
			f.SetActiveSheet(idx)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	z.logger.Info("report.finalized", "sheet", sheet)

	return z.exportPDF(ctx, sum)
}

// exportPDF shells out to the converter and renames its output to the
// canonical report name.
func (z *Finalizer) exportPDF(ctx context.Context, sum ShiftSummary) (string, error) {
	wb := z.store.Path()
	if err := os.MkdirAll(z.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	// soffice --headless --convert-to pdf --outdir <dir> <workbook>
	_, _, err := z.runner.Run(ctx, z.cfg.Converter,
		"--headless", "--convert-to", "pdf", "--outdir", z.cfg.OutputDir, wb)
	if err != nil {
		return "", fmt.Errorf("export pdf: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(wb), filepath.Ext(wb))
	produced := filepath.Join(z.cfg.OutputDir, base+".pdf")
	final := filepath.Join(z.cfg.OutputDir, PDFName(sum.Fecha, sum.Turno))
	if err := os.Rename(produced, final); err != nil {
		return "", fmt.Errorf("rename report pdf: %w", err)
	}

	z.logger.Info("report.exported", "pdf", final)
	return final, nil
}

// PDFName derives the report file name:
// "23/08/2025" + "07:00-15:00" -> "Reporte_23-08-2025_Turno0700-1500.pdf".
func PDFName(fecha, turno string) string {
	turno = strings.TrimSpace(strings.TrimPrefix(turno, "Turno"))
	return fmt.Sprintf("Reporte_%s_Turno%s.pdf",
		strings.ReplaceAll(fecha, "/", "-"),
		strings.ReplaceAll(turno, ":", ""),
	)
}
