package iban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownValid = "IR430600500901007959216001"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "known valid", raw: knownValid},
		{name: "lowercase with spaces", raw: "ir43 0600 5009 0100 7959 2160 01"},
		{name: "empty", raw: "", wantErr: ErrEmpty},
		{name: "whitespace only", raw: "   ", wantErr: ErrEmpty},
		{name: "wrong country", raw: "DE430600500901007959216001", wantErr: ErrBadPrefix},
		{name: "too short", raw: "IR4306005009010079592160", wantErr: ErrBadLength},
		{name: "too long", raw: knownValid + "00", wantErr: ErrBadLength},
		{name: "letters in body", raw: "IR43060050090100795921600A", wantErr: ErrBadDigits},
		{name: "checksum mismatch", raw: "IR000000000000000000000000", wantErr: ErrChecksum},
		{name: "single digit altered", raw: "IR430600500901007959216002", wantErr: ErrChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, knownValid, got.Clean)
			assert.Equal(t, "IR43 0600 5009 0100 7959 2160 01", got.Formatted)
		})
	}
}

// every production destination baked into the terminal config must pass
func TestValidate_KnownDestinations(t *testing.T) {
	for _, raw := range []string{
		"IR170180000000000306824171",
		"IR740190000000100663926004",
		"IR540560611828005136987401",
	} {
		_, err := Validate(raw)
		assert.NoError(t, err, raw)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	v, err := Validate(knownValid)
	require.NoError(t, err)
	// formatting then cleaning yields the original identifier
	assert.Equal(t, v.Clean, Clean(v.Formatted))

	reparsed, err := Validate(v.Formatted)
	require.NoError(t, err)
	assert.Equal(t, v.Clean, reparsed.Clean)
}
