// Package tm models the bit-level layout of STIX telemetry products.
//
// For each product the package computes the exact size of the fixed data
// header and of one repeated record, as laid out in the STIX TMTC ICD
// (STIX-ICD-0812-ESC, I4R1, 17/09/2019).  No packet bytes are produced or
// consumed; the package only predicts sizes.
package tm

// A Size is the bit cost of one telemetry data structure, split into the
// constant header part and the repeated record part.  Variable covers the
// number of samples in the query; sized with Params.Samples = 1 it is the
// exact cost of one record.
type Size struct {
	Fixed    int // fixed header, bits
	Variable int // repeated records, bits
}

// Params are the structural parameters of a single sizing query.
// Products ignore the fields they do not use.
type Params struct {
	Samples       int // number of data samples (or flares)
	Energies      int // number of energy bins or energy groups
	PixelSets     int // number of pixel sets (x-ray level 1/2)
	DetectorMasks int // number of detector masks
}

// A SizeFunc computes the structure size for one parameter set.
// Sizing is pure arithmetic: a SizeFunc never fails and never validates.
type SizeFunc func(p Params) Size

// A Product ties a telemetry product name and SSID to its size function
type Product struct {
	Name     string
	SSID     int
	XrayUser bool // carries the common x-ray user-data header (SSIDs 20-24)
	Size     SizeFunc
}

// Products is the full catalog, fixed by the ICD
var Products = []Product{
	{Name: "xray_level0", SSID: 20, XrayUser: true, Size: XrayLevel0},
	{Name: "xray_level1", SSID: 21, XrayUser: true, Size: XrayLevel1},
	{Name: "xray_level2", SSID: 22, XrayUser: true, Size: XrayLevel2},
	{Name: "xray_level3", SSID: 23, XrayUser: true, Size: XrayLevel3},
	{Name: "spectrogram", SSID: 24, XrayUser: true, Size: Spectrogram},
	{Name: "light_curve", SSID: 30, Size: LightCurve},
	{Name: "background", SSID: 31, Size: Background},
	{Name: "spectra", SSID: 32, Size: Spectra},
	{Name: "variance", SSID: 33, Size: Variance},
	{Name: "flare_flag_location", SSID: 34, Size: FlareFlagLocation},
	{Name: "calibration_spectra", SSID: 41, Size: CalibrationSpectra},
	{Name: "aspect", SSID: 42, Size: Aspect},
	{Name: "flarelist_tm_mgmt", SSID: 43, Size: FlareListTMMgmt},
}

// Lookup finds a catalog entry by product name
func Lookup(name string) (Product, bool) {
	for _, p := range Products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}
