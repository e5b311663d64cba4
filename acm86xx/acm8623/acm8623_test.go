package acm8623

import (
	"context"
	"os"
	"path/filepath"
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
	test.That(t, len(volumeTable), test.ShouldEqual, 135)
	test.That(t, volumeTable[acm86xx.VolumeZeroDB], test.ShouldEqual, uint32(0x08000000))
	for i := 1; i < len(volumeTable); i++ {
		test.That(t, volumeTable[i], test.ShouldBeGreaterThan, volumeTable[i-1])
	}

	test.That(t, len(prebootSequence), test.ShouldEqual, 24)
	test.That(t, len(prebootSequence)%2, test.ShouldEqual, 0)

	volMin, volMax := Chip.VolumeRange()
	test.That(t, volMin, test.ShouldEqual, 0)
	test.That(t, volMax, test.ShouldEqual, 134)
}

func TestExternalDSPConfigIsMandatory(t *testing.T) {
	logger := golog.NewTestLogger(t)
	bus := &inject.I2C{}

	// No blob on disk: bring-up must fail, there is no compiled-in
	// fallback for this chip.
	_, err := New(context.Background(), bus, acm86xx.Config{FirmwareDir: t.TempDir()}, logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestZeroDBGainBurst(t *testing.T) {
	logger := golog.NewTestLogger(t)

	var mu sync.Mutex
	bursts := map[byte][]byte{}
	handle := &inject.I2CHandle{
		ReadByteDataFunc:  func(ctx context.Context, register byte) (byte, error) { return 0, nil },
		WriteByteDataFunc: func(ctx context.Context, register, data byte) error { return nil },
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
		test.That(t, addr, test.ShouldEqual, byte(0x2c))
		return handle, nil
	}}

	dir := t.TempDir()
	blob := []byte{0x00, 0x00, 0x04, 0x02}
	test.That(t, os.WriteFile(filepath.Join(dir, "acm8623_dsp_eq.bin"), blob, 0o600), test.ShouldBeNil)

	amp, err := New(context.Background(), bus, acm86xx.Config{FirmwareDir: dir, DSPConfigName: "eq"}, logger)
	test.That(t, err, test.ShouldBeNil)

	amp.Start(context.Background())
	testutils.WaitForAssertion(t, func(tb testing.TB) {
		tb.Helper()
		mu.Lock()
		defer mu.Unlock()
		test.That(tb, bursts[0xc4], test.ShouldResemble, []byte{0x08, 0x00, 0x00, 0x00})
		test.That(tb, bursts[0xc0], test.ShouldResemble, []byte{0x08, 0x00, 0x00, 0x00})
	})

	test.That(t, amp.Close(context.Background()), test.ShouldBeNil)
}
