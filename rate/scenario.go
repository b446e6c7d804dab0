package rate

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/samaloney/stix-tmrate/tm"
)

// ErrUnknownProduct reports a scenario entry naming a product that is not
// in the catalog
var ErrUnknownProduct = errors.New("unknown product")

// An Entry is one product to estimate: the catalog name, its structural
// parameters and the integration cadence in seconds
type Entry struct {
	Product        string  `yaml:"product"`
	Energies       int     `yaml:"energies"`
	PixelSets      int     `yaml:"pixelSets"`
	DetectorMasks  int     `yaml:"detectorMasks"`
	IntegrationSec float64 `yaml:"integrationSec"`
}

// Params returns the structural parameters of the entry
func (e Entry) Params() tm.Params {
	return tm.Params{
		Energies:      e.Energies,
		PixelSets:     e.PixelSets,
		DetectorMasks: e.DetectorMasks,
	}
}

// Compute resolves the entry's product in the catalog and projects its
// daily rate
func (e Entry) Compute() (Estimate, error) {
	product, ok := tm.Lookup(e.Product)
	if !ok {
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnknownProduct, e.Product)
	}
	return Compute(product, e.Params(), e.IntegrationSec)
}

// A Scenario is a set of products with the parameters and cadences to
// estimate them at
type Scenario struct {
	Products []Entry `yaml:"products"`
}

// LoadScenario reads a scenario from a YAML file
func LoadScenario(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", filename, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", filename, err)
	}
	return &s, nil
}

// DefaultScenario returns the quick look set with the example parameters
// and cadences from the ICD
func DefaultScenario() *Scenario {
	return &Scenario{
		Products: []Entry{
			{Product: "light_curve", Energies: 5, IntegrationSec: 4},
			{Product: "background", Energies: 5, IntegrationSec: 8},
			{Product: "spectra", Energies: 32, IntegrationSec: 32},
			{Product: "variance", IntegrationSec: 4},
			{Product: "flare_flag_location", IntegrationSec: 8},
			{Product: "flarelist_tm_mgmt", IntegrationSec: 288},
			{Product: "calibration_spectra", Energies: 64, IntegrationSec: 56.25},
		},
	}
}
