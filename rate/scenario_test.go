package rate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaloney/stix-tmrate/rate"
	"github.com/samaloney/stix-tmrate/tm"
)

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	contents := `products:
  - product: light_curve
    energies: 5
    integrationSec: 4
  - product: xray_level1
    energies: 1
    pixelSets: 12
    detectorMasks: 30
    integrationSec: 60
`
	filename := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o644))

	s, err := rate.LoadScenario(filename)
	require.NoError(t, err)
	require.Len(t, s.Products, 2)

	assert.Equal(t, "light_curve", s.Products[0].Product)
	assert.Equal(t, 5, s.Products[0].Energies)
	assert.Equal(t, 4.0, s.Products[0].IntegrationSec)

	assert.Equal(t, tm.Params{Energies: 1, PixelSets: 12, DetectorMasks: 30}, s.Products[1].Params())

	for _, entry := range s.Products {
		_, err := entry.Compute()
		assert.NoError(t, err, entry.Product)
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	t.Parallel()

	_, err := rate.LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	filename := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("products: {not: [a, list"), 0o644))
	_, err = rate.LoadScenario(filename)
	require.Error(t, err)
}

func TestEntryUnknownProduct(t *testing.T) {
	t.Parallel()

	entry := rate.Entry{Product: "no_such_product", IntegrationSec: 4}
	_, err := entry.Compute()
	require.Error(t, err)
	assert.ErrorIs(t, err, rate.ErrUnknownProduct)
}

func TestDefaultScenario(t *testing.T) {
	t.Parallel()

	scenario := rate.DefaultScenario()
	require.Len(t, scenario.Products, 7)

	var total float64
	for _, entry := range scenario.Products {
		product, ok := tm.Lookup(entry.Product)
		require.True(t, ok, entry.Product)
		assert.False(t, product.XrayUser, entry.Product)

		est, err := entry.Compute()
		require.NoError(t, err, entry.Product)
		total += est.BitsPerDay
	}
	assert.Positive(t, total)
}
