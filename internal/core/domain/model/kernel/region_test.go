package kernel_test

import (
	"testing"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegion(t *testing.T) {
	t.Run("trims and uppercases codes", func(t *testing.T) {
		r, err := kernel.NewRegion(" Blind River ", []string{"", " Blind-River "}, "on", "Ontario", "p0r")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "Blind River", r.City())
		assert.Equal(t, "ON", r.ProvinceCode())
		assert.Equal(t, "P0R", r.PostalPrefix())
		assert.Equal(t, []string{"Blind River", "Blind-River"}, r.CityNames())
		assert.Equal(t, "Blind River, ON", r.Locality())
	})

	t.Run("collects every problem", func(t *testing.T) {
		_, err := kernel.NewRegion("", nil, "", "", "P5")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "province code")
		assert.Contains(t, err.Error(), "postal prefix")
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var r kernel.Region

		assert.Equal(t, kernel.ErrRegionIsNotConstructed, r.Validate())
	})
}

func TestElliotLake(t *testing.T) {
	r := kernel.ElliotLake()

	require.NoError(t, r.Validate())
	assert.Equal(t, "Elliot Lake", r.City())
	assert.Equal(t, "Ontario", r.ProvinceName())
	assert.Equal(t, "P5A", r.PostalPrefix())
	assert.Contains(t, r.CityNames(), "Elliott Lake")
}
