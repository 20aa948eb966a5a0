// Package ledger keeps the per-shift invoice ledger inside an xlsx
// workbook. The workbook is reopened and saved on every operation, so
// the next-free-row scan always sees the latest on-disk state, including
// edits made by the operator between invoices.
package ledger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

var (
	ErrSheetNotFound    = errors.New("sheet not found")
	ErrTemplateNotFound = errors.New("template sheet not found")
)

// Store wraps one on-disk workbook. It holds no open handle between
// operations; each call is a full open -> mutate -> save cycle.
type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the workbook location on disk.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", s.path, err)
	}
	return f, nil
}

// View opens the workbook, requires sheet to exist, and runs fn read-only.
func (s *Store) View(sheet string, fn func(f *excelize.File) error) error {
	f, err := s.open()
	if err != nil {
		return err
	}
	defer closeQuietly(f, s.logger)

	if !hasSheet(f, sheet) {
		return fmt.Errorf("%w: %q in %q", ErrSheetNotFound, sheet, s.path)
	}
	return fn(f)
}

// Update opens the workbook, requires sheet to exist, runs fn, and saves.
func (s *Store) Update(sheet string, fn func(f *excelize.File) error) error {
	f, err := s.open()
	if err != nil {
		return err
	}
	defer closeQuietly(f, s.logger)

	if !hasSheet(f, sheet) {
		return fmt.Errorf("%w: %q in %q", ErrSheetNotFound, sheet, s.path)
	}
	if err := fn(f); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save workbook %q: %w", s.path, err)
	}
	return nil
}

// HasSheet reports whether the workbook contains the named sheet.
func (s *Store) HasSheet(sheet string) (bool, error) {
	f, err := s.open()
	if err != nil {
		return false, err
	}
	defer closeQuietly(f, s.logger)
	return hasSheet(f, sheet), nil
}

func hasSheet(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

func closeQuietly(f *excelize.File, logger *slog.Logger) {
	if err := f.Close(); err != nil {
		logger.Warn("close workbook", "error", err)
	}
}
