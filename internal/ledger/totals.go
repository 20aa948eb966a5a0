package ledger

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mespinosa/fuelcap/constants"
)

// Totals holds the two running volume sums for a shift.
type Totals struct {
	Natural       float64
	Normalized20C float64
}

// Aggregator recomputes shift totals from scratch on every call by
// scanning the full populated ledger range. Nothing is cached, so
// external edits to the workbook are picked up on the next call.
type Aggregator struct {
	store  *Store
	logger *slog.Logger
}

func NewAggregator(store *Store, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{store: store, logger: logger}
}

// Aggregate sums the natural and 20 °C quantity columns over all populated
// rows. A missing sheet is reported and yields zero totals rather than an
// error: totals are a best-effort end-of-shift step. Rows where either
// quantity fails to parse contribute to neither sum, keeping the two
// totals drawn from the same set of invoices.
func (g *Aggregator) Aggregate(sheet string) (Totals, error) {
	var (
		totals  Totals
		rows    int
		skipped int
	)
	err := g.store.View(sheet, func(f *excelize.File) error {
		row := constants.LedgerStartRow
		for {
			key, err := cellValue(f, sheet, constants.ColNumeroEmbarque, row)
			if err != nil {
				return err
			}
			if strings.TrimSpace(key) == "" {
				return nil
			}
			rows++

			natural, err := cellValue(f, sheet, constants.ColCantidadNatural, row)
			if err != nil {
				return err
			}
			norm20, err := cellValue(f, sheet, constants.ColCantidad20C, row)
			if err != nil {
				return err
			}

			n, errN := strconv.ParseFloat(strings.TrimSpace(natural), 64)
			v, errV := strconv.ParseFloat(strings.TrimSpace(norm20), 64)
			if errN != nil || errV != nil {
				skipped++
				g.logger.Debug("aggregate.skip_row", "sheet", sheet, "row", row)
			} else {
				totals.Natural += n
				totals.Normalized20C += v
			}
			row++
		}
	})
	if errors.Is(err, ErrSheetNotFound) {
		g.logger.Warn("aggregate.sheet_missing", "sheet", sheet, "workbook", g.store.Path())
		return Totals{}, nil
	}
	if err != nil {
		return Totals{}, err
	}

	g.logger.Info("aggregate.done",
		"sheet", sheet,
		"rows", rows,
		"skipped", skipped,
		"total_natural", totals.Natural,
		"total_20c", totals.Normalized20C,
	)
	return totals, nil
}

func cellValue(f *excelize.File, sheet string, col, row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return f.GetCellValue(sheet, cell)
}
