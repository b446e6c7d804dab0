// Package rate projects telemetry packet counts and downlink volume from
// the product structure sizes in package tm.
package rate

import (
	"errors"
	"fmt"
	"math"

	"github.com/samaloney/stix-tmrate/tm"
)

// SecondsPerDay is the observation window all projections are made over
const SecondsPerDay = 24 * 60 * 60

// Estimation fails only on bad caller input; there are no transient
// conditions to retry.
var (
	// ErrCadence reports an integration period that does not tile the day exactly
	ErrCadence = errors.New("integration period does not evenly divide one day")

	// ErrRecordSize reports a record size that makes packing undefined:
	// zero or negative, or larger than the free packet space
	ErrRecordSize = errors.New("degenerate record size")

	// ErrFixedOverflow reports a fixed header that leaves no room for data
	ErrFixedOverflow = errors.New("fixed header exceeds packet capacity")
)

// An Estimate holds the packing figures and rate projection for one product
// at one cadence.  All bit fields are exact integers except the two daily
// figures, which are real-valued averages.
type Estimate struct {
	Product          string
	CapacityBits     int // maximum source data length of one packet
	FixedBits        int // fixed header of the product structure
	SpaceBits        int // capacity remaining after the fixed header
	VariableBits     int // one record
	RecordsPerPacket int
	RemainderBits    int // free bits left after the last whole record
	RecordsPerDay    int

	// PacketsPerDay is an average rate for budgeting.  It is deliberately
	// not rounded up: a fractional packet is carried into the next day,
	// so this is not a count of dispatchable packets.
	PacketsPerDay float64
	BitsPerDay    float64
}

// BitsPerSecond converts the daily volume to a mean downlink rate
func (e Estimate) BitsPerSecond() float64 {
	return e.BitsPerDay / SecondsPerDay
}

// Pack splits the packet space left after the fixed header into whole
// records, returning the record count and the unused remainder bits.
// The quotient and remainder are reported together because the remainder
// is diagnostic output, not an implementation detail.
func Pack(capacityBits, fixedBits, variableBits int) (records, remainder int, err error) {
	space := capacityBits - fixedBits
	if space <= 0 {
		return 0, 0, fmt.Errorf("%w: fixed header %d bits, capacity %d bits",
			ErrFixedOverflow, fixedBits, capacityBits)
	}
	if variableBits <= 0 {
		return 0, 0, fmt.Errorf("%w: %d bits per record", ErrRecordSize, variableBits)
	}
	records = space / variableBits
	remainder = space % variableBits
	if records == 0 {
		return 0, 0, fmt.Errorf("%w: record of %d bits does not fit in %d free bits",
			ErrRecordSize, variableBits, space)
	}
	return records, remainder, nil
}

// Compute projects the daily packet and bit volume for one product sampled
// at the given integration cadence.  The cadence must tile the day exactly;
// non-integral periods such as 56.25 s are fine as long as they do.
//
// The product is sized with exactly one sample so that the variable size is
// the cost of one record.  For the x-ray levels 1-3, whose repeated unit is
// the energy group rather than the sample, pass Energies 1 for per-record
// packing.
func Compute(product tm.Product, params tm.Params, integrationSec float64) (Estimate, error) {
	if integrationSec <= 0 {
		return Estimate{}, fmt.Errorf("%s: %w: %v s", product.Name, ErrCadence, integrationSec)
	}
	recordsPerDay := SecondsPerDay / integrationSec
	if recordsPerDay != math.Trunc(recordsPerDay) {
		return Estimate{}, fmt.Errorf("%s: %w: %v s", product.Name, ErrCadence, integrationSec)
	}

	// Size the structure with exactly one record to obtain the pair
	params.Samples = 1
	size := product.Size(params)

	records, remainder, err := Pack(tm.MaxDataBits, size.Fixed, size.Variable)
	if err != nil {
		return Estimate{}, fmt.Errorf("%s: %w", product.Name, err)
	}

	packetsPerDay := recordsPerDay / float64(records)

	return Estimate{
		Product:          product.Name,
		CapacityBits:     tm.MaxDataBits,
		FixedBits:        size.Fixed,
		SpaceBits:        tm.MaxDataBits - size.Fixed,
		VariableBits:     size.Variable,
		RecordsPerPacket: records,
		RemainderBits:    remainder,
		RecordsPerDay:    int(recordsPerDay),
		PacketsPerDay:    packetsPerDay,
		BitsPerDay:       packetsPerDay * float64(size.Fixed+records*size.Variable),
	}, nil
}
