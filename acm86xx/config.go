package acm86xx

import (
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// Config is used to configure a single amplifier instance.
type Config struct {
	// I2CAddress overrides the chip's default I2C device address.
	I2CAddress int `json:"i2c_addr,omitempty"`

	// DSPConfigName selects the named external DSP config blob,
	// <chip>_dsp_<name>.bin, under FirmwareDir. Defaults to "default".
	DSPConfigName string `json:"dsp_config_name,omitempty"`

	// FirmwareDir is where DSP config blobs are looked up. Defaults to
	// DefaultFirmwareDir.
	FirmwareDir string `json:"firmware_dir,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.I2CAddress < 0 || cfg.I2CAddress > 0x7f {
		return goutils.NewConfigValidationError(path,
			errors.Errorf("i2c_addr %#x is not a valid 7-bit address", cfg.I2CAddress))
	}
	return nil
}
