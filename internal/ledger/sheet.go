package ledger

import (
	"fmt"
	"strings"

	"github.com/mespinosa/fuelcap/constants"
)

// SheetName derives the canonical sheet name for a shift:
// "23/08/2025" + "07:00-15:00" -> "23-08-2025_Turno0700-1500".
func SheetName(fecha, turno string) string {
	return fmt.Sprintf("%s_Turno%s",
		strings.ReplaceAll(fecha, "/", "-"),
		strings.ReplaceAll(turno, ":", ""),
	)
}

// EnsureSheet makes sure the shift sheet exists, duplicating the template
// sheet when it doesn't. Returns the sheet name either way. Fails when the
// workbook or the template sheet is missing: the template carries the
// report formatting and cannot be recreated here.
func (s *Store) EnsureSheet(name, template string) (string, error) {
	if template == "" {
		template = constants.DefaultTemplateSheet
	}

	f, err := s.open()
	if err != nil {
		return "", err
	}
	defer closeQuietly(f, s.logger)

	tmplIdx, err := f.GetSheetIndex(template)
	if err != nil || tmplIdx < 0 {
		return "", fmt.Errorf("%w: %q in %q", ErrTemplateNotFound, template, s.path)
	}

	if hasSheet(f, name) {
		s.logger.Debug("sheet.exists", "sheet", name)
		return name, nil
	}

	idx, err := f.NewSheet(name)
	if err != nil {
		return "", fmt.Errorf("create sheet %q: %w", name, err)
	}
	if err := f.CopySheet(tmplIdx, idx); err != nil {
		return "", fmt.Errorf("copy template %q to %q: %w", template, name, err)
	}
	if err := f.Save(); err != nil {
		return "", fmt.Errorf("save workbook %q: %w", s.path, err)
	}

	s.logger.Info("sheet.created", "sheet", name, "template", template)
	return name, nil
}
