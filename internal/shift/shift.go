// Package shift carries the operator-entered metadata for one work
// shift: the download date, the shift range, and who is responsible.
package shift

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mespinosa/fuelcap/internal/common"
)

// Shift identifies one work period. One sheet in the workbook holds the
// ledger for one Shift.
type Shift struct {
	Fecha       string // dd/mm/yyyy
	Turno       string // HH:MM-HH:MM, e.g. "07:00-15:00"
	Responsable string
}

// Validate checks the shift fields against their expected formats.
func (s Shift) Validate() error {
	v := common.NewValidator()
	v.Field("fecha_descarga", s.Fecha, common.Required, common.DateDDMMYYYY)
	v.Field("turno", s.Turno, common.Required, common.ShiftRange)
	v.Field("responsable", s.Responsable, common.Required)
	return v.Error()
}

// Prompt asks the operator for the shift data, one line per field, and
// validates the result. The scanner is shared with the caller so that
// later reads continue where the prompt left off.
func Prompt(sc *bufio.Scanner, out io.Writer) (Shift, error) {
	ask := func(label string) (string, error) {
		if _, err := fmt.Fprint(out, label); err != nil {
			return "", err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	var (
		s   Shift
		err error
	)
	if s.Fecha, err = ask("Ingrese la fecha de descarga (dd/mm/yyyy): "); err != nil {
		return Shift{}, err
	}
	if s.Turno, err = ask("Ingrese el turno (HH:MM-HH:MM): "); err != nil {
		return Shift{}, err
	}
	if s.Responsable, err = ask("Ingrese el responsable: "); err != nil {
		return Shift{}, err
	}

	if err := s.Validate(); err != nil {
		return Shift{}, fmt.Errorf("datos de turno: %w", err)
	}
	return s, nil
}
