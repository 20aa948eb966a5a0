package shift

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Shift
		wantErr bool
	}{
		{"valid", Shift{"23/08/2025", "07:00-15:00", "Ing. Mario Espinosa"}, false},
		{"night shift", Shift{"01/01/2026", "23:00-07:00", "R. Lopez"}, false},
		{"bad date", Shift{"2025-08-23", "07:00-15:00", "x"}, true},
		{"bad turno", Shift{"23/08/2025", "7-15", "x"}, true},
		{"missing responsable", Shift{"23/08/2025", "07:00-15:00", "  "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrompt(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("23/08/2025\n07:00-15:00\nIng. Mario Espinosa\n"))
	var out bytes.Buffer

	s, err := Prompt(in, &out)
	require.NoError(t, err)

	assert.Equal(t, Shift{
		Fecha:       "23/08/2025",
		Turno:       "07:00-15:00",
		Responsable: "Ing. Mario Espinosa",
	}, s)
	assert.Contains(t, out.String(), "fecha de descarga")
}

func TestPromptTrimsInput(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("  23/08/2025 \n 07:00-15:00\nR. Lopez \n"))
	var out bytes.Buffer

	s, err := Prompt(in, &out)
	require.NoError(t, err)
	assert.Equal(t, "23/08/2025", s.Fecha)
	assert.Equal(t, "R. Lopez", s.Responsable)
}

func TestPromptRejectsInvalid(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("not-a-date\n07:00-15:00\nR. Lopez\n"))
	var out bytes.Buffer

	_, err := Prompt(in, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fecha_descarga")
}

func TestPromptEOF(t *testing.T) {
	_, err := Prompt(bufio.NewScanner(strings.NewReader("")), &bytes.Buffer{})
	require.Error(t, err)
}
