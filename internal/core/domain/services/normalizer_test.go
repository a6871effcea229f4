package services_test

import (
	"testing"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_NormalizePostal(t *testing.T) {
	n := services.NewNormalizer(kernel.ElliotLake())

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty yields prefix", "", "P5A"},
		{"blank yields prefix", "   ", "P5A"},
		{"local half gets prefix", "2s9", "P5A 2S9"},
		{"local half with inner space", "2 s9", "P5A 2S9"},
		{"contiguous code gets space", "p5a2s9", "P5A 2S9"},
		{"already normalized", "P5A 2S9", "P5A 2S9"},
		{"tabs and newlines stripped", "P5A\t2S9\n", "P5A 2S9"},
		{"unexpected length passes through", "P5A2S", "P5A2S"},
		{"non postal text passes through", "unknown", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizePostal(tt.raw))
		})
	}
}

func TestNormalizer_NormalizePostal_Idempotent(t *testing.T) {
	n := services.NewNormalizer(kernel.ElliotLake())

	for _, raw := range []string{"2s9", "p5a2s9", "P5A 2S9", "k1a 0b1", "X", "ABCDEFGH", "P5A"} {
		once := n.NormalizePostal(raw)
		assert.Equal(t, once, n.NormalizePostal(once), raw)
	}
}

func TestNormalizer_NormalizeAddress(t *testing.T) {
	n := services.NewNormalizer(kernel.ElliotLake())

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty yields locality", "", "Elliot Lake, ON"},
		{"street only", "12 Main St", "12 Main St, Elliot Lake, ON"},
		{"city without province", "12 Main St, Elliot Lake", "12 Main St, Elliot Lake, ON"},
		{"misspelled city", "12 Main St, ELLIOTT LAKE", "12 Main St, ELLIOTT LAKE, ON"},
		{"complete", "12 Main St, Elliot Lake, ON", "12 Main St, Elliot Lake, ON"},
		{"province spelled out", "12 Main St, Elliot Lake, Ontario", "12 Main St, Elliot Lake, Ontario"},
		{"province only", "12 Main St, on", "12 Main St, on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizeAddress(tt.raw, "P5A 2S9"))
		})
	}
}

func TestNormalizer_NormalizeAddress_Idempotent(t *testing.T) {
	n := services.NewNormalizer(kernel.ElliotLake())

	for _, raw := range []string{"", "12 Main St", "12 Main St, Elliot Lake", "PO Box 4"} {
		once := n.NormalizeAddress(raw, "")
		assert.Equal(t, once, n.NormalizeAddress(once, ""), raw)
	}
}

func TestNormalizer_PostalDoesNotAffectAddress(t *testing.T) {
	n := services.NewNormalizer(kernel.ElliotLake())

	assert.Equal(t,
		n.NormalizeAddress("12 Main St", ""),
		n.NormalizeAddress("12 Main St", "K1A 0B1"))
}

func TestNormalizer_CustomRegion(t *testing.T) {
	region, err := kernel.NewRegion("Blind River", nil, "ON", "Ontario", "P0R")
	require.NoError(t, err)
	n := services.NewNormalizer(region)

	assert.Equal(t, "P0R 1B0", n.NormalizePostal("1b0"))
	assert.Equal(t, "5 Hudson St, Blind River, ON", n.NormalizeAddress("5 Hudson St", ""))
}

func TestStreetOf(t *testing.T) {
	assert.Equal(t, "12 Main St", services.StreetOf("12 Main St, Elliot Lake, ON"))
	assert.Equal(t, "12 Main St", services.StreetOf(" 12 Main St "))
	assert.Empty(t, services.StreetOf(""))
}
