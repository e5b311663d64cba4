// Package inject provides dependency injected structures for mocking
// the I2C interfaces in tests.
package inject

import (
	"context"

	"github.com/wenhaoy/acm86xx-drivers/buses"
)

// I2C is an injected I2C.
type I2C struct {
	buses.I2C
	OpenHandleFunc func(addr byte) (buses.I2CHandle, error)
}

// OpenHandle calls the injected OpenHandleFunc or the real version.
func (i *I2C) OpenHandle(addr byte) (buses.I2CHandle, error) {
	if i.OpenHandleFunc == nil {
		return i.I2C.OpenHandle(addr)
	}
	return i.OpenHandleFunc(addr)
}

// I2CHandle is an injected I2CHandle.
type I2CHandle struct {
	buses.I2CHandle
	ReadByteDataFunc   func(ctx context.Context, register byte) (byte, error)
	WriteByteDataFunc  func(ctx context.Context, register, data byte) error
	WriteBlockDataFunc func(ctx context.Context, register byte, data []byte) error
	CloseFunc          func() error
}

// ReadByteData calls the injected ReadByteDataFunc or the real version.
func (h *I2CHandle) ReadByteData(ctx context.Context, register byte) (byte, error) {
	if h.ReadByteDataFunc == nil {
		return h.I2CHandle.ReadByteData(ctx, register)
	}
	return h.ReadByteDataFunc(ctx, register)
}

// WriteByteData calls the injected WriteByteDataFunc or the real version.
func (h *I2CHandle) WriteByteData(ctx context.Context, register, data byte) error {
	if h.WriteByteDataFunc == nil {
		return h.I2CHandle.WriteByteData(ctx, register, data)
	}
	return h.WriteByteDataFunc(ctx, register, data)
}

// WriteBlockData calls the injected WriteBlockDataFunc or the real version.
func (h *I2CHandle) WriteBlockData(ctx context.Context, register byte, data []byte) error {
	if h.WriteBlockDataFunc == nil {
		return h.I2CHandle.WriteBlockData(ctx, register, data)
	}
	return h.WriteBlockDataFunc(ctx, register, data)
}

// Close calls the injected CloseFunc or the real version.
func (h *I2CHandle) Close() error {
	if h.CloseFunc == nil {
		return h.I2CHandle.Close()
	}
	return h.CloseFunc()
}
