package tm

// Bulk science data structures: compressed x-ray data levels 0-3,
// spectrogram and aspect.
//
// The x-ray levels and the spectrogram are user-requested products; their
// packets carry CommonXrayUserBits of shared header on top of the fixed
// sizes computed here (the ICD specifies the common part once, outside the
// per-level structure tables).

// XrayLevel0 returns the size of the level 0 (uncompressed) x-ray structure
func XrayLevel0(p Params) Size {
	fixed := 2*8 + // starting time
		1*8 + // RCR
		integrationBits +
		4 + pixelMaskBits + // spare + pixel mask
		detectorMaskBits +
		triggerAccumBits +
		2*8 // number of samples M

	variable := p.Samples * (4 + // pixel ID
		5 + // detector index
		5 + // energy ID
		2 + // continuation bits
		2*8) // counts, worst case 2 octets

	return Size{Fixed: fixed, Variable: variable}
}

// XrayLevel1 returns the size of the level 1 (compressed counts) x-ray
// structure.  Energies counts energy groups here.
func XrayLevel1(p Params) Size {
	fixed := 2*8 + // starting time
		1*8 + // RCR
		1*8 + // number of pixel sets P
		p.PixelSets*(4+pixelMaskBits) + // spare + pixel mask, per set
		detectorMaskBits +
		integrationBits +
		triggerAccumBits +
		1*8 // number of energy groups

	variable := p.Energies * (3 + // spare
		5 + // E1 low bound
		3 + // spare
		5 + // E2 high bound
		16 + // number of data elements
		p.PixelSets*p.DetectorMasks*8) // compressed counts

	return Size{Fixed: fixed, Variable: variable}
}

// XrayLevel2 returns the size of the level 2 (summed pixel counts) x-ray
// structure.  Levels 1 and 2 share the same wire structure; only the
// onboard processing differs.
func XrayLevel2(p Params) Size {
	return XrayLevel1(p)
}

// XrayLevel3 returns the size of the level 3 (visibility) x-ray structure.
// Energies counts energy groups here.
func XrayLevel3(p Params) Size {
	fixed := 2*8 + // starting time
		1*8 + // RCR
		1*8 + // duration
		5*(4+pixelMaskBits) + // spare + pixel mask, five masks
		detectorMaskBits +
		triggerAccumBits +
		1*8 // number of energy groups

	variable := p.Energies * (3 + // spare
		5 + // E1 low bound
		3 + // spare
		5 + // E2 high bound
		8 + // flux
		8 + // number of detectors N
		p.DetectorMasks*(8+ // detector ID
			8+ // real visibility component
			8)) // imaginary visibility component

	return Size{Fixed: fixed, Variable: variable}
}

// Spectrogram returns the size of the x-ray spectrogram structure
func Spectrogram(p Params) Size {
	fixed := 4 + pixelMaskBits + // spare + pixel mask
		detectorMaskBits +
		1*8 + // RCR
		1 + // spare
		5 + // Emin
		5 + // Emax
		5 + // E unit
		2*8 + // number of samples N
		2*8 // closing time offset

	variable := p.Samples * (2*8 + // delta time
		1*8 + // compressed combined trigger count
		1*8 + // number of energies M
		p.Energies*8) // compressed counts

	return Size{Fixed: fixed, Variable: variable}
}

// Aspect returns the size of the aspect system structure
func Aspect(p Params) Size {
	fixed := ssidBits +
		scetCoarseBits +
		scetFineBits +
		1*8 + // summing value
		2*8 // number of samples N

	variable := p.Samples * (2*8 + // channel A diode 0 voltage
		2*8 + // channel A diode 1 voltage
		2*8 + // channel B diode 0 voltage
		2*8) // channel B diode 1 voltage

	return Size{Fixed: fixed, Variable: variable}
}
