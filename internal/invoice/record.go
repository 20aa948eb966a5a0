package invoice

import (
	"github.com/mespinosa/fuelcap/constants"
)

// Record holds the normalized values extracted from one invoice photo.
// Every field key is always present; a value is empty when the field
// could not be read, so the operator can spot and correct it before
// the shift is finalized.
type Record map[constants.Field]string

// Get returns the value for f, or "" when unset.
func (r Record) Get(f constants.Field) string {
	return r[f]
}

// NumeroEmbarque is the ledger key; a record without it still appends,
// but lands in a row the next free-row scan will reuse.
func (r Record) NumeroEmbarque() string {
	return r[constants.FieldNumeroEmbarque]
}
