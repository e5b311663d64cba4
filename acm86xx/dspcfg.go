package acm86xx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultFirmwareDir is where external DSP config blobs are looked up,
// matching where the platform keeps device firmware.
const DefaultFirmwareDir = "/lib/firmware"

var errDSPConfigInvalid = errors.New("DSP config must be a non-empty, even-length sequence of register/value pairs")

// validateDSPConfig checks that a blob is usable as a register/value
// pair stream: at least one pair, even byte count.
func validateDSPConfig(data []byte) error {
	if len(data) < 2 || len(data)%2 != 0 {
		return errDSPConfigInvalid
	}
	return nil
}

// loadDSPConfig resolves the one DSP configuration an amp will use for
// its whole lifetime: the named external blob when present, else the
// chip's compiled-in default when its policy allows one.
func loadDSPConfig(chip *Chip, dir, name string) ([]byte, error) {
	if dir == "" {
		dir = DefaultFirmwareDir
	}
	if name == "" {
		name = "default"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_dsp_%s.bin", chip.Name, name))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !chip.RequireDSPConfig {
			return chip.DefaultDSPConfig, nil
		}
		return nil, errors.Wrapf(err, "can't load DSP config for %s", chip.Name)
	}
	if err := validateDSPConfig(data); err != nil {
		return nil, errors.Wrapf(err, "DSP config %q", path)
	}
	return data, nil
}
