package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "0,00 MAD"},
		{"small", 42.5, "42,50 MAD"},
		{"thousands", 1234.56, "1 234,56 MAD"},
		{"millions", 1234567.89, "1 234 567,89 MAD"},
		{"negative", -900, "-900,00 MAD"},
		{"negative thousands", -12345.6, "-12 345,60 MAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestSignedCurrency(t *testing.T) {
	assert.Equal(t, "+200,00 MAD", SignedCurrency(200))
	assert.Equal(t, "-120,00 MAD", SignedCurrency(-120))
	assert.Equal(t, "+0,00 MAD", SignedCurrency(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "16,67 %", Percent(16.666666))
	assert.Equal(t, "0,00 %", Percent(0))
}
