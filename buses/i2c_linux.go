package buses

import (
	"context"
	"sync"

	i2clib "github.com/d2r2/go-i2c"
	"github.com/pkg/errors"
)

// NewLinuxI2C returns access to /dev/i2c-<busNumber>. Handles opened
// from it hold an exclusive lock on the bus until closed, so a
// multi-write register sequence is never interleaved with traffic to
// another device on the same bus.
func NewLinuxI2C(busNumber int) I2C {
	return &linuxI2C{number: busNumber}
}

type linuxI2C struct {
	mu     sync.Mutex
	number int
}

func (bus *linuxI2C) OpenHandle(addr byte) (I2CHandle, error) {
	bus.mu.Lock()
	dev, err := i2clib.NewI2C(addr, bus.number)
	if err != nil {
		bus.mu.Unlock()
		return nil, errors.Wrapf(err, "can't open I2C device %#x on bus %d", addr, bus.number)
	}
	return &linuxI2CHandle{bus: bus, dev: dev}, nil
}

// We want to use the i2clib.I2C struct, but we also want it to conform
// to the I2CHandle interface, and we cannot define new functions on
// non-local types. So, we create a local struct that contains the
// non-local one, upon which we can define the extra functions.
type linuxI2CHandle struct {
	bus *linuxI2C
	dev *i2clib.I2C
}

func (h *linuxI2CHandle) ReadByteData(ctx context.Context, register byte) (byte, error) {
	return h.dev.ReadRegU8(register)
}

func (h *linuxI2CHandle) WriteByteData(ctx context.Context, register, data byte) error {
	return h.dev.WriteRegU8(register, data)
}

func (h *linuxI2CHandle) WriteBlockData(ctx context.Context, register byte, data []byte) error {
	// The I2C library we're using doesn't have a specialized "write many
	// bytes to a register" function, but on devices that use registers,
	// this should be equivalent to writing the register address and then
	// the relevant bytes.
	raw := make([]byte, len(data)+1)
	raw[0] = register
	copy(raw[1:], data)
	written, err := h.dev.WriteBytes(raw)
	if err != nil {
		return err
	}
	if written != len(raw) {
		return errors.Errorf("not all bytes were written to I2C register %#x: had %d, wrote %d",
			register, len(data), written-1)
	}
	return nil
}

func (h *linuxI2CHandle) Close() error {
	defer h.bus.mu.Unlock()
	return h.dev.Close()
}
