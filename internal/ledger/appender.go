package ledger

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mespinosa/fuelcap/constants"
	"github.com/mespinosa/fuelcap/internal/invoice"
)

// Appender writes invoice records into the next free ledger row. The
// ledger is an append log: identical records land in distinct rows, and
// no deduplication happens here.
type Appender struct {
	store  *Store
	logger *slog.Logger
}

func NewAppender(store *Store, logger *slog.Logger) *Appender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Appender{store: store, logger: logger}
}

// Append writes rec into the first row at or below the start offset whose
// key column (shipment number) is empty, and returns that 1-based row.
// Columns outside the five field positions are left untouched.
func (a *Appender) Append(sheet string, rec invoice.Record) (int, error) {
	var row int
	err := a.store.Update(sheet, func(f *excelize.File) error {
		var err error
		row, err = nextFreeRow(f, sheet)
		if err != nil {
			return err
		}
		for _, field := range constants.Fields {
			cell, err := excelize.CoordinatesToCellName(constants.FieldColumn[field], row)
			if err != nil {
				return fmt.Errorf("cell name for %q: %w", field, err)
			}
			if err := f.SetCellStr(sheet, cell, rec.Get(field)); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	a.logger.Info("ledger.append",
		"sheet", sheet,
		"row", row,
		"numero_embarque", rec.NumeroEmbarque(),
	)
	return row, nil
}

// nextFreeRow scans the key column downward from the start offset. Rows
// fill contiguously, so the first empty key cell is the next free row.
func nextFreeRow(f *excelize.File, sheet string) (int, error) {
	row := constants.LedgerStartRow
	for {
		cell, err := excelize.CoordinatesToCellName(constants.ColNumeroEmbarque, row)
		if err != nil {
			return 0, err
		}
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", cell, err)
		}
		if strings.TrimSpace(v) == "" {
			return row, nil
		}
		row++
	}
}
