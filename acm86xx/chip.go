package acm86xx

// A Chip describes one amplifier variant: its mandatory DSP preboot
// sequence, its gain lookup table, and where in the banked register
// space the per-channel gain coefficients live. The two supported
// variants are defined in the acm8623 and acm8635 packages.
type Chip struct {
	Name string

	// DefaultAddress is the chip's I2C device address when the config
	// doesn't override it.
	DefaultAddress byte

	// Preboot is written before anything else on every bring-up,
	// regardless of which DSP config is ultimately applied.
	Preboot []byte

	// DefaultDSPConfig is the compiled-in configuration applied when no
	// external blob is available and RequireDSPConfig is false.
	DefaultDSPConfig []byte

	// RequireDSPConfig makes a missing external DSP config blob a fatal
	// bring-up error instead of a silent fall back to DefaultDSPConfig.
	RequireDSPConfig bool

	// GainTable maps gain indices to the DSP's fixed-point gain codes,
	// monotonically increasing from -110dB in 1dB steps; index
	// VolumeZeroDB is 0dB.
	GainTable []uint32

	// GainPage is the register page holding the DSP gain coefficients.
	// GainOffsets are the page-relative burst offsets for the left and
	// right channels.
	GainPage    byte
	GainOffsets [2]byte
}

// VolumeZeroDB is the gain table index mapping to 0dB on every variant.
const VolumeZeroDB = 110

// VolumeRange returns the lowest and highest valid gain indices.
func (c *Chip) VolumeRange() (int, int) {
	return 0, len(c.GainTable) - 1
}

func (c *Chip) volumeValid(v int) bool {
	return v >= 0 && v < len(c.GainTable)
}
