package constants

// Ledger layout within a shift sheet. Rows fill contiguously downward from
// LedgerStartRow; a row is free when its key column (shipment number) is empty.
const (
	LedgerStartRow = 18

	ColNumeroEmbarque  = 2 // key column
	ColFechaCarga      = 3
	ColClaveEquipo     = 4
	ColCantidadNatural = 6
	ColCantidad20C     = 7
)

// FieldColumn maps an invoice field to its ledger column. Columns 1 and 5
// belong to the sheet template and are never written by this system.
var FieldColumn = map[Field]int{
	FieldNumeroEmbarque:  ColNumeroEmbarque,
	FieldFechaCarga:      ColFechaCarga,
	FieldClaveEquipo:     ColClaveEquipo,
	FieldCantidadNatural: ColCantidadNatural,
	FieldCantidad20C:     ColCantidad20C,
}

// Report cells: well-known positions in the shift sheet template that the
// finalizer fills in at end of shift.
const (
	ReportCellFecha        = "D9"
	ReportCellTurno        = "C11"
	ReportCellResponsable  = "J32"
	ReportCellTotalNatural = "F26"
	ReportCellTotal20C     = "G26"
)

// DefaultTemplateSheet is the pre-formatted sheet duplicated once per shift.
const DefaultTemplateSheet = "Plantilla"
