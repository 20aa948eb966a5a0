package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("f", "x"))
	assert.NotNil(t, Required("f", ""))
	assert.NotNil(t, Required("f", "   "))
	assert.NotNil(t, Required("f", nil))
}

func TestDateDDMMYYYY(t *testing.T) {
	assert.Nil(t, DateDDMMYYYY("f", "23/08/2025"))
	assert.NotNil(t, DateDDMMYYYY("f", "2025-08-23"))
	assert.NotNil(t, DateDDMMYYYY("f", "23/8/2025"))
	assert.NotNil(t, DateDDMMYYYY("f", 42))
}

func TestShiftRange(t *testing.T) {
	assert.Nil(t, ShiftRange("f", "07:00-15:00"))
	assert.Nil(t, ShiftRange("f", "23:00-07:00"))
	assert.NotNil(t, ShiftRange("f", "7-15"))
	assert.NotNil(t, ShiftRange("f", "07:00–15:00"))
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator()
	v.Field("fecha", "bad", Required, DateDDMMYYYY)
	v.Field("turno", "07:00-15:00", Required, ShiftRange)

	assert.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 1)
	assert.ErrorContains(t, v.Error(), "fecha")
}

func TestValidatorNoErrors(t *testing.T) {
	v := NewValidator()
	v.Field("fecha", "23/08/2025", Required, DateDDMMYYYY)

	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
}
