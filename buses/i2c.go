// Package buses offers access to I2C buses on generic Linux systems.
package buses

import (
	"context"
)

// I2C represents a shareable I2C bus on the host.
type I2C interface {
	// OpenHandle locks the bus for the device at the given address and
	// returns a handle that MUST be closed when done. You cannot have 2
	// open for the same bus.
	OpenHandle(addr byte) (I2CHandle, error)
}

// I2CHandle is similar to an io handle. It MUST be closed to release the bus.
type I2CHandle interface {
	ReadByteData(ctx context.Context, register byte) (byte, error)
	WriteByteData(ctx context.Context, register, data byte) error

	// WriteBlockData writes the data bytes as one burst starting at the
	// given register.
	WriteBlockData(ctx context.Context, register byte, data []byte) error

	// Close closes the handle and releases the lock on the bus.
	Close() error
}
