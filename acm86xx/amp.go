// Package acm86xx implements power sequencing, DSP configuration, and
// volume control shared by the ACM86xx family of I2C audio amplifiers.
//
// The amplifier's onboard DSP boots from a mandatory preboot register
// sequence, then takes a configuration blob of register/value pairs,
// and only then accepts gain and play-state programming. Bring-up is
// triggered when the audio clock becomes stable (Start) and runs on a
// background goroutine because of the settle delays involved;
// power-down (Stop) waits for any in-flight bring-up to finish before
// touching the device, so the two register sequences never interleave.
package acm86xx

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"github.com/wenhaoy/acm86xx-drivers/buses"
)

// We mustn't issue any I2C transactions until the I2S clock is stable,
// and we must allow a delay after the preboot writes for the DSP to
// boot before configuring it.
const (
	clockSettleDelay = 5 * time.Millisecond
	dspBootDelay     = 5 * time.Millisecond
)

// An Amp is a single amplifier instance on an I2C bus. All of its
// methods are safe for concurrent use; one mutex serializes state
// changes and the register traffic they cause.
type Amp struct {
	chip   *Chip
	bus    buses.I2C
	addr   byte
	logger golog.Logger
	clk    clock.Clock

	mu        sync.Mutex
	dspCfg    []byte
	vol       [2]int
	isPowered bool
	isMuted   bool

	bootScheduled bool
	bootAborted   bool
	bootWorkers   sync.WaitGroup
}

// New creates an amplifier controller for the given chip variant. The
// DSP config blob is resolved exactly once here; a malformed external
// blob (or a missing one, for chips that require it) fails creation
// outright rather than running without a configured DSP.
func New(ctx context.Context, chip *Chip, bus buses.I2C, cfg Config, logger golog.Logger) (*Amp, error) {
	if err := cfg.Validate(""); err != nil {
		return nil, err
	}

	dspCfg, err := loadDSPConfig(chip, cfg.FirmwareDir, cfg.DSPConfigName)
	if err != nil {
		return nil, err
	}

	addr := chip.DefaultAddress
	if cfg.I2CAddress != 0 {
		addr = byte(cfg.I2CAddress)
	}

	return &Amp{
		chip:   chip,
		bus:    bus,
		addr:   addr,
		logger: logger,
		clk:    clock.New(),
		dspCfg: dspCfg,
		vol:    [2]int{VolumeZeroDB, VolumeZeroDB},
	}, nil
}

// Start schedules the DSP bring-up sequence. Call it when the audio
// clock starts, resumes, or is released from pause. Scheduling while a
// bring-up is already pending or running is a no-op, so at most one
// boot sequence is ever in flight per instance.
func (a *Amp) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.bootScheduled {
		return
	}
	a.logger.Debug("clock start")
	a.bootScheduled = true
	a.bootWorkers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer a.bootWorkers.Done()
		a.bootDSP()
	})
}

// bootDSP runs the full bring-up under the lock: clock settle delay,
// preboot writes, DSP boot delay, configuration writes, then the first
// refresh. The lock is held across the delays so a concurrent volume
// or mute change observes either the pre-boot or fully booted device.
func (a *Amp) bootDSP() {
	ctx := context.Background()

	a.mu.Lock()
	defer a.mu.Unlock()
	defer func() {
		a.bootScheduled = false
		a.bootAborted = false
	}()
	if a.bootAborted {
		return
	}

	a.logger.Debug("DSP startup")

	// No bus traffic at all until the bit clock has settled.
	a.clk.Sleep(clockSettleDelay)

	h, err := a.bus.OpenHandle(a.addr)
	if err != nil {
		a.logger.Errorw("can't open amplifier for DSP startup", "error", err)
		return
	}
	defer goutils.UncheckedErrorFunc(h.Close)

	a.sendSequence(ctx, h, a.chip.Preboot)
	a.clk.Sleep(dspBootDelay)
	a.sendSequence(ctx, h, a.dspCfg)

	a.isPowered = true
	if err := a.refreshOn(ctx, h); err != nil {
		a.logger.Errorw("refresh failed during DSP startup", "error", err)
	}
}

// Stop powers the amplifier down. Call it when the DAC is about to
// lose its clock. Any pending bring-up is cancelled and joined first;
// a scheduled-but-unstarted boot runs no register I/O at all. When the
// amp is not powered this performs no register traffic. Fault state is
// read out and logged before the outputs go high-impedance.
func (a *Amp) Stop(ctx context.Context) error {
	a.cancelAndJoinBoot()

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.isPowered {
		return nil
	}

	a.logger.Debug("DSP shutdown")
	a.isPowered = false

	h, err := a.bus.OpenHandle(a.addr)
	if err != nil {
		return errors.Wrap(err, "can't open amplifier for shutdown")
	}
	defer goutils.UncheckedErrorFunc(h.Close)

	if err := h.WriteByteData(ctx, regPage, 0x00); err != nil {
		a.logger.Errorw("page select failed during shutdown", "error", err)
	}

	channelState, err1 := h.ReadByteData(ctx, regStateReport)
	global1, err2 := h.ReadByteData(ctx, regGlobalFault1)
	global2, err3 := h.ReadByteData(ctx, regGlobalFault2)
	global3, err4 := h.ReadByteData(ctx, regGlobalFault3)
	if err := multierr.Combine(err1, err2, err3, err4); err != nil {
		a.logger.Errorw("fault register read failed during shutdown", "error", err)
	} else {
		a.logger.Debugf("fault regs: CHANNEL=%02x, GLOBAL1=%02x, GLOBAL2=%02x, GLOBAL3=%02x",
			channelState, global1, global2, global3)
	}

	return h.WriteByteData(ctx, regDeviceState, stateHiZ)
}

// Close powers the amplifier down and cancels any scheduled bring-up.
func (a *Amp) Close(ctx context.Context) error {
	return a.Stop(ctx)
}

// cancelAndJoinBoot prevents a scheduled-but-unstarted boot from
// touching the device and waits for a running one to complete. The
// delays inside bootDSP are not interruptible, so boot and shutdown
// are mutually exclusive in time, not just under the lock.
func (a *Amp) cancelAndJoinBoot() {
	a.mu.Lock()
	if a.bootScheduled {
		a.bootAborted = true
	}
	a.mu.Unlock()
	a.bootWorkers.Wait()
}

// Volume returns the current left and right gain indices.
func (a *Amp) Volume() (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.vol[0], a.vol[1]
}

// VolumeRange returns the valid gain index bounds for this amp's chip.
func (a *Amp) VolumeRange() (int, int) {
	return a.chip.VolumeRange()
}

// SetVolume updates the left and right gain indices and reports
// whether anything changed. When the amp is powered, a change is
// programmed into the device immediately. Indices outside the chip's
// gain table are rejected without touching any state.
func (a *Amp) SetVolume(ctx context.Context, left, right int) (bool, error) {
	if !a.chip.volumeValid(left) || !a.chip.volumeValid(right) {
		_, volMax := a.chip.VolumeRange()
		return false, errors.Errorf("invalid volume %d/%d: indices must be in [0, %d]", left, right, volMax)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.vol[0] == left && a.vol[1] == right {
		return false, nil
	}
	a.vol[0], a.vol[1] = left, right
	a.logger.Debugw("set volume", "vol_l", left, "vol_r", right, "powered", a.isPowered)
	if !a.isPowered {
		return true, nil
	}
	return true, a.refreshLocked(ctx)
}

// SetMute sets the digital soft-mute flag, programming it into the
// device immediately when powered. Mute composes with whatever gains
// are stored; it does not alter them.
func (a *Amp) SetMute(ctx context.Context, mute bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger.Debugw("set mute", "mute", mute, "powered", a.isPowered)
	a.isMuted = mute
	if !a.isPowered {
		return nil
	}
	return a.refreshLocked(ctx)
}

// Muted returns whether digital soft-mute is set.
func (a *Amp) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isMuted
}

// Powered returns whether the DSP has completed bring-up.
func (a *Amp) Powered() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isPowered
}

func (a *Amp) refreshLocked(ctx context.Context) error {
	h, err := a.bus.OpenHandle(a.addr)
	if err != nil {
		return errors.Wrap(err, "can't open amplifier for refresh")
	}
	defer goutils.UncheckedErrorFunc(h.Close)
	return a.refreshOn(ctx, h)
}

// refreshOn reprograms both channel gains and the play/mute state. The
// gain coefficients live in a banked page, so the page register is
// switched there and back before the device-state write; state and
// gain addresses are page-relative, so the ordering matters.
func (a *Amp) refreshOn(ctx context.Context, h buses.I2CHandle) error {
	a.logger.Debugw("refresh", "muted", a.isMuted, "vol_l", a.vol[0], "vol_r", a.vol[1])

	var errs error
	errs = multierr.Append(errs, h.WriteByteData(ctx, regPage, a.chip.GainPage))
	errs = multierr.Append(errs, a.writeGainScale(ctx, h, a.chip.GainOffsets[0], a.vol[0]))
	errs = multierr.Append(errs, a.writeGainScale(ctx, h, a.chip.GainOffsets[1], a.vol[1]))
	errs = multierr.Append(errs, h.WriteByteData(ctx, regPage, 0x00))

	// Set/clear digital soft-mute together with the play state.
	state := byte(statePlay)
	if a.isMuted {
		state |= stateMute
	}
	errs = multierr.Append(errs, h.WriteByteData(ctx, regDeviceState, state))
	return errs
}

// writeGainScale writes one channel's gain code as a 4-byte big-endian
// burst at a page-relative offset. The caller must have selected the
// chip's gain page already.
func (a *Amp) writeGainScale(ctx context.Context, h buses.I2CHandle, offset byte, vol int) error {
	var v [4]byte
	binary.BigEndian.PutUint32(v[:], a.chip.GainTable[vol])
	return h.WriteBlockData(ctx, offset, v[:])
}

// sendSequence writes a register/value pair stream in order; a
// trailing odd byte is ignored. Individual write failures are logged
// and skipped, never retried: register programming is fire and forget
// at the hardware level and there is nothing to roll back.
func (a *Amp) sendSequence(ctx context.Context, h buses.I2CHandle, seq []byte) {
	for i := 0; i+1 < len(seq); i += 2 {
		if err := h.WriteByteData(ctx, seq[i], seq[i+1]); err != nil {
			a.logger.Errorw("register write failed", "register", seq[i], "error", err)
		}
	}
}
