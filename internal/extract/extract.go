// Package extract turns raw OCR text for one invoice field into a
// normalized value. OCR noise is routine here: no match is a valid
// outcome, reported as an empty value, never as an error.
package extract

import (
	"regexp"
	"strings"

	"github.com/mespinosa/fuelcap/constants"
)

// DefaultClavePrefix is the fleet prefix matched by the strict
// equipment-code pattern.
const DefaultClavePrefix = "FZN"

var (
	reNewlines = regexp.MustCompile(`[\r\n]+`)

	reEmbarque = regexp.MustCompile(`\d{6}`)
	reFecha    = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

	// relaxed fallback: any 3 uppercase letters + 4 digits
	reClaveRelaxed = regexp.MustCompile(`[A-Z]{3}\d{4}`)

	// quantities like 31,999.000 or 31999.000; exactly 3 decimals
	reCantidad = regexp.MustCompile(`\d{2,3},?\d{3}\.\d{3}`)
)

// Extractor normalizes OCR output per field. Zero value is not usable;
// construct with New.
type Extractor struct {
	claveStrict *regexp.Regexp
}

// New builds an Extractor whose strict equipment-code pattern matches
// clavePrefix followed by 4 digits. Empty prefix falls back to
// DefaultClavePrefix.
func New(clavePrefix string) *Extractor {
	if clavePrefix == "" {
		clavePrefix = DefaultClavePrefix
	}
	return &Extractor{
		claveStrict: regexp.MustCompile(regexp.QuoteMeta(clavePrefix) + `\d{4}`),
	}
}

// Clean normalizes raw OCR text for the given field. Newlines are collapsed
// to spaces and the result trimmed before matching; only the first match
// counts. Unrecognized fields pass through whitespace-normalized.
func (e *Extractor) Clean(field constants.Field, raw string) string {
	text := strings.TrimSpace(reNewlines.ReplaceAllString(raw, " "))

	switch field {
	case constants.FieldNumeroEmbarque:
		return reEmbarque.FindString(text)

	case constants.FieldFechaCarga:
		return reFecha.FindString(text)

	case constants.FieldClaveEquipo:
		// A well-formed strict code wins over any relaxed match found
		// elsewhere in the text.
		if m := e.claveStrict.FindString(text); m != "" {
			return m
		}
		return reClaveRelaxed.FindString(text)

	case constants.FieldCantidadNatural, constants.FieldCantidad20C:
		m := reCantidad.FindString(text)
		if m == "" {
			return ""
		}
		// strip the thousands separator; decimals kept verbatim
		return strings.ReplaceAll(m, ",", "")
	}

	return text
}
