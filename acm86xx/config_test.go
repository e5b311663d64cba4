package acm86xx

import (
	"testing"

	"go.viam.com/test"
)

func TestConfigValidate(t *testing.T) {
	for _, addr := range []int{0, 0x2c, 0x7f} {
		cfg := Config{I2CAddress: addr}
		test.That(t, cfg.Validate("amp"), test.ShouldBeNil)
	}

	for _, addr := range []int{-1, 0x80, 0x200} {
		cfg := Config{I2CAddress: addr}
		err := cfg.Validate("amp")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "7-bit")
	}
}
