package constants

// Field is the canonical identifier for one extracted invoice field.
type Field string

// Stable values (used as record keys and layout file keys, never renamed).
const (
	FieldNumeroEmbarque  Field = "numero_embarque"  // shipment number
	FieldFechaCarga      Field = "fecha_carga"      // load date
	FieldClaveEquipo     Field = "clave_equipo"     // equipment code
	FieldCantidadNatural Field = "cantidad_natural" // volume at ambient conditions
	FieldCantidad20C     Field = "cantidad_20c"     // volume normalized to 20 °C
)

// Fields lists every invoice field in processing order.
var Fields = []Field{
	FieldNumeroEmbarque,
	FieldFechaCarga,
	FieldClaveEquipo,
	FieldCantidadNatural,
	FieldCantidad20C,
}
