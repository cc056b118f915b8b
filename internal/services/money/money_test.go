package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain number", raw: "150000", want: "150000"},
		{name: "thousands separators", raw: "1,250,000", want: "1250000"},
		{name: "persian digits", raw: "۱۲۳۴۵", want: "12345"},
		{name: "persian separator", raw: "۱٬۰۰۰", want: "1000"},
		{name: "arabic-indic digits", raw: "٣٤٥", want: "345"},
		{name: "blank is unpriced", raw: "", want: "0"},
		{name: "whitespace only", raw: "  ", want: "0"},
		{name: "negative rejected", raw: "-100", wantErr: true},
		{name: "garbage rejected", raw: "abc", wantErr: true},
		{name: "mixed garbage rejected", raw: "12x0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1,250,000", Format(decimal.NewFromInt(1250000)))
	assert.Equal(t, "999", Format(decimal.NewFromInt(999)))
	assert.Equal(t, "1,000", Format(decimal.NewFromInt(1000)))
	assert.Equal(t, "0", Format(decimal.Zero))
	assert.Equal(t, "-45,000", Format(decimal.NewFromInt(-45000)))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, "300000", ToMinorUnits(decimal.NewFromInt(30000)))
	assert.Equal(t, "0", ToMinorUnits(decimal.Zero))
	// fractional tomans round before conversion
	assert.Equal(t, "1010", ToMinorUnits(decimal.RequireFromString("100.6")))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, raw := range []string{"1,000", "123", "45,000,000"} {
		d, err := Parse(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, Format(d))
	}
}
