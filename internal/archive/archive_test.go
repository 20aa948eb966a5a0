package archive

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mespinosa/fuelcap/constants"
	"github.com/mespinosa/fuelcap/internal/invoice"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(context.Background(), filepath.Join(t.TempDir(), "fuelcap.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })
	return a
}

func sampleRecord(embarque string) invoice.Record {
	return invoice.Record{
		constants.FieldNumeroEmbarque:  embarque,
		constants.FieldFechaCarga:      "01/06/2024",
		constants.FieldClaveEquipo:     "FZN1234",
		constants.FieldCantidadNatural: "31999.000",
		constants.FieldCantidad20C:     "31688.000",
	}
}

func TestLogAndListBySheet(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	id1, err := a.Log(ctx, "turno-a", 18, sampleRecord("111111"))
	require.NoError(t, err)
	id2, err := a.Log(ctx, "turno-a", 19, sampleRecord("222222"))
	require.NoError(t, err)
	_, err = a.Log(ctx, "turno-b", 18, sampleRecord("333333"))
	require.NoError(t, err)

	entries, err := a.BySheet(ctx, "turno-a")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, id1, entries[0].ID)
	assert.Equal(t, 18, entries[0].LedgerRow)
	assert.Equal(t, "111111", entries[0].Record.NumeroEmbarque())
	assert.Equal(t, "31999.000", entries[0].Record.Get(constants.FieldCantidadNatural))

	assert.Equal(t, id2, entries[1].ID)
	assert.Equal(t, 19, entries[1].LedgerRow)
}

func TestLogKeepsEmptyFields(t *testing.T) {
	a := openTestArchive(t)
	ctx := context.Background()

	rec := sampleRecord("444444")
	rec[constants.FieldClaveEquipo] = ""

	_, err := a.Log(ctx, "turno-a", 18, rec)
	require.NoError(t, err)

	entries, err := a.BySheet(ctx, "turno-a")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Record.Get(constants.FieldClaveEquipo))
}

func TestBySheetEmpty(t *testing.T) {
	a := openTestArchive(t)

	entries, err := a.BySheet(context.Background(), "nunca-visto")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpenTwiceIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fuelcap.db")
	ctx := context.Background()

	a, err := Open(ctx, path, nil)
	require.NoError(t, err)
	_, err = a.Log(ctx, "s", 18, sampleRecord("555555"))
	require.NoError(t, err)
	require.NoError(t, a.Close())

	// reopen against the same file; schema init must not clobber data
	b, err := Open(ctx, path, nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, b.Close()) }()

	entries, err := b.BySheet(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
