package acm8635

import (
	"context"
	"sync"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"
	"go.viam.com/utils/testutils"

	"github.com/wenhaoy/acm86xx-drivers/acm86xx"
	"github.com/wenhaoy/acm86xx-drivers/buses"
	"github.com/wenhaoy/acm86xx-drivers/inject"
)

func TestChipTables(t *testing.T) {
	test.That(t, len(volumeTable), test.ShouldEqual, 159)
	test.That(t, volumeTable[acm86xx.VolumeZeroDB], test.ShouldEqual, uint32(0x00800000))
	for i := 1; i < len(volumeTable); i++ {
		test.That(t, volumeTable[i], test.ShouldBeGreaterThan, volumeTable[i-1])
	}

	test.That(t, len(prebootSequence), test.ShouldEqual, 24)
	test.That(t, len(prebootSequence)%2, test.ShouldEqual, 0)

	// The compiled-in DSP config must itself be a usable pair stream.
	test.That(t, len(defaultDSPConfig), test.ShouldBeGreaterThanOrEqualTo, 2)
	test.That(t, len(defaultDSPConfig)%2, test.ShouldEqual, 0)

	volMin, volMax := Chip.VolumeRange()
	test.That(t, volMin, test.ShouldEqual, 0)
	test.That(t, volMax, test.ShouldEqual, 158)
}

func TestFallsBackToBuiltinConfig(t *testing.T) {
	logger := golog.NewTestLogger(t)

	var mu sync.Mutex
	var writes int
	bursts := map[byte][]byte{}
	handle := &inject.I2CHandle{
		ReadByteDataFunc: func(ctx context.Context, register byte) (byte, error) { return 0, nil },
		WriteByteDataFunc: func(ctx context.Context, register, data byte) error {
			mu.Lock()
			defer mu.Unlock()
			writes++
			return nil
		},
		WriteBlockDataFunc: func(ctx context.Context, register byte, data []byte) error {
			mu.Lock()
			defer mu.Unlock()
			buf := make([]byte, len(data))
			copy(buf, data)
			bursts[register] = buf
			return nil
		},
		CloseFunc: func() error { return nil },
	}
	bus := &inject.I2C{OpenHandleFunc: func(addr byte) (buses.I2CHandle, error) {
		return handle, nil
	}}

	// No external blob anywhere: creation succeeds and bring-up uses
	// the compiled-in configuration.
	amp, err := New(context.Background(), bus, acm86xx.Config{FirmwareDir: t.TempDir()}, logger)
	test.That(t, err, test.ShouldBeNil)

	amp.Start(context.Background())
	testutils.WaitForAssertion(t, func(tb testing.TB) {
		tb.Helper()
		test.That(tb, amp.Powered(), test.ShouldBeTrue)
	})

	testutils.WaitForAssertion(t, func(tb testing.TB) {
		tb.Helper()
		mu.Lock()
		defer mu.Unlock()
		// Preboot, full built-in config, and the refresh's two
		// page selects plus the state write.
		test.That(tb, writes, test.ShouldEqual, len(prebootSequence)/2+len(defaultDSPConfig)/2+3)
		test.That(tb, bursts[0x7c], test.ShouldResemble, []byte{0x00, 0x80, 0x00, 0x00})
		test.That(tb, bursts[0x80], test.ShouldResemble, []byte{0x00, 0x80, 0x00, 0x00})
	})

	test.That(t, amp.Close(context.Background()), test.ShouldBeNil)
}
