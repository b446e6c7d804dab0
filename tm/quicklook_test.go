package tm

import "testing"

// TestQuicklookSizes checks the quick look structures against hand-computed
// totals of the ICD field widths
func TestQuicklookSizes(t *testing.T) {
	cases := []struct {
		name     string
		f        SizeFunc
		p        Params
		fixed    int
		variable int
	}{
		{"light_curve", LightCurve, Params{Samples: 1, Energies: 5}, 288, 56},
		{"light_curve", LightCurve, Params{Samples: 3, Energies: 5}, 288, 168},
		{"light_curve", LightCurve, Params{Samples: 1, Energies: 1}, 224, 24},
		{"background", Background, Params{Samples: 1, Energies: 5}, 224, 48},
		{"background", Background, Params{Samples: 2, Energies: 5}, 224, 96},
		{"variance", Variance, Params{Samples: 1}, 184, 8},
		{"variance", Variance, Params{Samples: 10, Energies: 99}, 184, 80},
		{"spectra", Spectra, Params{Samples: 1}, 120, 280},
		{"spectra", Spectra, Params{Samples: 4, Energies: 32}, 120, 1120},
		{"flare_flag_location", FlareFlagLocation, Params{Samples: 1}, 88, 24},
		{"flare_flag_location", FlareFlagLocation, Params{Samples: 5}, 88, 120},
		{"flarelist_tm_mgmt", FlareListTMMgmt, Params{Samples: 1}, 88, 128},
		{"flarelist_tm_mgmt", FlareListTMMgmt, Params{Samples: 7}, 88, 896},
		{"calibration_spectra", CalibrationSpectra, Params{Samples: 1, Energies: 64}, 458, 544},
		{"calibration_spectra", CalibrationSpectra, Params{Samples: 2, Energies: 1}, 458, 80},
	}

	for _, c := range cases {
		size := c.f(c.p)
		if size.Fixed != c.fixed {
			t.Errorf("%s%+v: fixed=%d, want %d", c.name, c.p, size.Fixed, c.fixed)
		}
		if size.Variable != c.variable {
			t.Errorf("%s%+v: variable=%d, want %d", c.name, c.p, size.Variable, c.variable)
		}
	}
}

// TestQuicklookDeterministic checks that repeated queries agree
func TestQuicklookDeterministic(t *testing.T) {
	p := Params{Samples: 3, Energies: 7}
	for _, product := range Products {
		first := product.Size(p)
		for i := 0; i < 4; i++ {
			if got := product.Size(p); got != first {
				t.Errorf("%s: size changed between calls: %+v then %+v", product.Name, first, got)
			}
		}
	}
}

// TestVariableMonotonic checks that the variable size never decreases as a
// structural parameter grows
func TestVariableMonotonic(t *testing.T) {
	grow := []func(p *Params){
		func(p *Params) { p.Samples++ },
		func(p *Params) { p.Energies++ },
		func(p *Params) { p.PixelSets++ },
		func(p *Params) { p.DetectorMasks++ },
	}

	for _, product := range Products {
		for _, g := range grow {
			p := Params{Samples: 1, Energies: 1, PixelSets: 1, DetectorMasks: 1}
			prev := product.Size(p)
			for i := 0; i < 8; i++ {
				g(&p)
				next := product.Size(p)
				if next.Variable < prev.Variable {
					t.Errorf("%s: variable decreased from %d to %d at %+v", product.Name, prev.Variable, next.Variable, p)
				}
				if next.Fixed < prev.Fixed {
					t.Errorf("%s: fixed decreased from %d to %d at %+v", product.Name, prev.Fixed, next.Fixed, p)
				}
				prev = next
			}
		}
	}
}

// TestSizesNonNegative checks the catalog over a parameter grid
func TestSizesNonNegative(t *testing.T) {
	for _, product := range Products {
		for samples := 0; samples <= 4; samples++ {
			for energies := 0; energies <= 4; energies++ {
				p := Params{Samples: samples, Energies: energies, PixelSets: 2, DetectorMasks: 2}
				size := product.Size(p)
				if size.Fixed < 0 || size.Variable < 0 {
					t.Errorf("%s%+v: negative size %+v", product.Name, p, size)
				}
			}
		}
	}
}
