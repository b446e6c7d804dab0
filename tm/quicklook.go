package tm

// Quick look (QL) product structures: light curve, background, variance,
// spectra, flare flag and location, TM management status and flare list,
// and energy calibration spectra.

// LightCurve returns the size of the QL light curve structure
func LightCurve(p Params) Size {
	fixed := ssidBits +
		scetCoarseBits +
		scetFineBits +
		integrationBits +
		detectorMaskBits +
		4 + pixelMaskBits + // spare + pixel mask
		1 + // spare
		schemaBits + // compression schema light curve
		schemaBits + // compression schema trigger
		1 + // energy bin mask upper boundary
		4*8 + // energy bin mask lower boundary
		1*8 + // number of energies
		p.Energies*2*8 + // per-energy number of data points
		2*8 + // number of data points
		2*8 // number of trigger data points

	variable := p.Energies*p.Samples*8 + // compressed light curves
		p.Samples*8 + // compressed triggers
		p.Samples*8 // RCR

	return Size{Fixed: fixed, Variable: variable}
}

// Background returns the size of the QL background monitor structure
func Background(p Params) Size {
	fixed := ssidBits +
		scetCoarseBits +
		scetFineBits +
		integrationBits +
		schemaBits + // compression schema background
		schemaBits + // compression schema trigger
		1 + // energy bin mask upper boundary
		4*8 + // energy bin mask lower boundary
		1 + // spare
		1*8 + // number of energies
		p.Energies*2*8 + // per-energy number of data points
		2*8 // number of data points

	variable := p.Energies*p.Samples*8 + // compressed background
		p.Samples*8 // compressed triggers

	return Size{Fixed: fixed, Variable: variable}
}

// Variance returns the size of the QL variance structure.
// The energy-bin parameter is unused; the energy range is fixed by the
// energy mask in the header.
func Variance(p Params) Size {
	fixed := ssidBits +
		scetCoarseBits +
		scetFineBits +
		integrationBits +
		1*8 + // samples per variance
		detectorMaskBits +
		4*8 + // energy mask
		4 + pixelMaskBits + // spare + pixel mask
		1 + // spare
		schemaBits + // compression schema variance
		2*8 // number of data points

	variable := p.Samples * 1 * 8 // compressed variance data points

	return Size{Fixed: fixed, Variable: variable}
}

// Spectra returns the size of the QL spectra structure.  Each record is one
// detector's full 32-channel spectrum, so the energy-bin parameter is unused.
func Spectra(p Params) Size {
	fixed := ssidBits +
		scetCoarseBits +
		scetFineBits +
		integrationBits +
		1 + // spare
		schemaBits + // compression schema spectra
		1 + // spare
		schemaBits + // compression schema trigger
		4 + pixelMaskBits + // spare + pixel mask
		2*8 // number of data samples

	variable := p.Samples * (1*8 + // detector index
		32*8 + // spectrum, 32 channels
		1*8 + // trigger
		1*8) // number of integrations

	return Size{Fixed: fixed, Variable: variable}
}

// FlareFlagLocation returns the size of the QL flare flag and location structure
func FlareFlagLocation(p Params) Size {
	fixed := ssidBits +
		scetCoarseBits +
		scetFineBits +
		integrationBits +
		2*8 // number of data samples

	variable := p.Samples * (1*8 + // flare flag
		1*8 + // flare location z (arcmin)
		1*8) // flare location y (arcmin)

	return Size{Fixed: fixed, Variable: variable}
}

// FlareListTMMgmt returns the size of the QL TM management status and flare
// list structure.  Samples counts flares here.
func FlareListTMMgmt(p Params) Size {
	fixed := ssidBits +
		4*8 + // UBSD counter
		4*8 + // PALD counter
		2*8 // number of flares

	variable := p.Samples * (4*8 + // start time
		4*8 + // end time
		1*8 + // highest flare flag
		4*8 + // TM byte volume
		1*8 + // average z location
		1*8 + // average y location
		1*8) // processing status

	return Size{Fixed: fixed, Variable: variable}
}

// CalibrationSpectra returns the size of the QL energy calibration spectra
// structure
func CalibrationSpectra(p Params) Size {
	fixed := ssidBits +
		scetCoarseBits +
		4*8 + // duration
		2*8 + // quiet time
		4*4 + // live time
		2*8 + // average temperature
		1 + // spare
		schemaBits + // compression schema accumulators
		detectorMaskBits +
		4 + pixelMaskBits + // spare + pixel mask
		1*8 + // sub spectrum mask
		2 + // spare
		8*(2+ // spare
			10+ // number of spectral points
			10+ // number of summed channels per spectral point
			10) + // lowest channel in sub spectrum
		2*8 // number of structures in packet

	variable := p.Samples * (4 + // spare
		5 + // detector ID
		4 + // pixel ID
		3 + // sub spectrum ID
		16 + // number of compressed spectral points
		p.Energies*1*8) // compressed spectral points

	return Size{Fixed: fixed, Variable: variable}
}
