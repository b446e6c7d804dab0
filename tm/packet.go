package tm

// Packet envelope sizes from the STIX TMTC ICD (STIX-ICD-0812-ESC, I4R1).
// All values are in bits.

// PacketHeaderBits is the CCSDS source packet header
const PacketHeaderBits = 6 * 8

// DataHeaderBits is the PUS data field header
const DataHeaderBits = 10 * 8

// MaxDataBits is the maximum source data length of one packet
const MaxDataBits = 4096 * 8

// MaxPacketBits is the largest packet that can appear on the wire
const MaxPacketBits = PacketHeaderBits + DataHeaderBits + MaxDataBits

// CommonXrayUserBits is the common fixed overhead carried by every
// user-requested x-ray data packet (SSIDs 20-24) ahead of the individual
// science data structure: TC packet ID and sequence-control references,
// the unique request number, the two compression schemas, the SCET of the
// first sample and the sample count.
const CommonXrayUserBits = 8 + // SSID
	16 + // reference to user TC packet ID
	16 + // reference to user TC packet sequence control
	32 + // unique data request number
	1 + schemaBits + // spare + compression schema accumulators
	1 + schemaBits + // spare + compression schema triggers
	48 + // SCET of first data sample
	16 // number of samples N

// Field widths shared by several product structures
const (
	ssidBits         = 1 * 8
	scetCoarseBits   = 4 * 8
	scetFineBits     = 2 * 8
	integrationBits  = 2 * 8
	detectorMaskBits = 4 * 8
	pixelMaskBits    = 12
	schemaBits       = 1 + 3 + 3 // compression schema S, K, M
	triggerAccumBits = 15 * 8
)
