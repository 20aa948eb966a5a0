// Package archive keeps a local history of every invoice the system has
// appended, one row per append, keyed by shift sheet. The workbook stays
// the source of truth; the archive exists so an operator can see what a
// shift has already captured without opening Excel.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mespinosa/fuelcap/constants"
	"github.com/mespinosa/fuelcap/internal/invoice"
)

const schema = `
CREATE TABLE IF NOT EXISTS invoice_log (
	id               TEXT PRIMARY KEY,
	sheet            TEXT NOT NULL,
	ledger_row       INTEGER NOT NULL,
	numero_embarque  TEXT NOT NULL,
	fecha_carga      TEXT NOT NULL,
	clave_equipo     TEXT NOT NULL,
	cantidad_natural TEXT NOT NULL,
	cantidad_20c     TEXT NOT NULL,
	created_at       TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invoice_log_sheet ON invoice_log (sheet);
`

// Entry is one archived append.
type Entry struct {
	ID        uuid.UUID
	Sheet     string
	LedgerRow int
	Record    invoice.Record
	CreatedAt time.Time
}

type Archive struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the archive database at path. Use ":memory:"
// for a throwaway archive.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Archive, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init archive schema: %w", err)
	}
	return &Archive{db: db, logger: logger}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// Log records one appended invoice and returns its archive id.
func (a *Archive) Log(ctx context.Context, sheet string, ledgerRow int, rec invoice.Record) (uuid.UUID, error) {
	id := uuid.New()
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO invoice_log
			(id, sheet, ledger_row, numero_embarque, fecha_carga, clave_equipo,
			 cantidad_natural, cantidad_20c, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), sheet, ledgerRow,
		rec.Get(constants.FieldNumeroEmbarque),
		rec.Get(constants.FieldFechaCarga),
		rec.Get(constants.FieldClaveEquipo),
		rec.Get(constants.FieldCantidadNatural),
		rec.Get(constants.FieldCantidad20C),
		time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("archive append: %w", err)
	}

	a.logger.Debug("archive.logged", "id", id, "sheet", sheet, "row", ledgerRow)
	return id, nil
}

// BySheet lists the archived appends for one shift sheet, oldest first.
func (a *Archive) BySheet(ctx context.Context, sheet string) ([]Entry, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, sheet, ledger_row, numero_embarque, fecha_carga, clave_equipo,
		       cantidad_natural, cantidad_20c, created_at
		FROM invoice_log
		WHERE sheet = ?
		ORDER BY created_at, ledger_row`, sheet)
	if err != nil {
		return nil, fmt.Errorf("query archive: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			a.logger.Warn("close archive rows", "error", cerr)
		}
	}()

	var entries []Entry
	for rows.Next() {
		var (
			e     Entry
			idStr string
			rec   = make(invoice.Record, len(constants.Fields))

			emb, fecha, clave, natural, norm20 string
		)
		if err := rows.Scan(&idStr, &e.Sheet, &e.LedgerRow,
			&emb, &fecha, &clave, &natural, &norm20, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan archive row: %w", err)
		}
		e.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("archive id %q: %w", idStr, err)
		}
		rec[constants.FieldNumeroEmbarque] = emb
		rec[constants.FieldFechaCarga] = fecha
		rec[constants.FieldClaveEquipo] = clave
		rec[constants.FieldCantidadNatural] = natural
		rec[constants.FieldCantidad20C] = norm20
		e.Record = rec
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archive rows: %w", err)
	}
	return entries, nil
}
