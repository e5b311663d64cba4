// Package main contains a command to bring up and control an ACM86xx
// audio amplifier over a Linux I2C bus.
package main

import (
	"context"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"github.com/wenhaoy/acm86xx-drivers/acm86xx"
	"github.com/wenhaoy/acm86xx-drivers/acm86xx/acm8623"
	"github.com/wenhaoy/acm86xx-drivers/acm86xx/acm8635"
	"github.com/wenhaoy/acm86xx-drivers/buses"
)

var logger = golog.NewDevelopmentLogger("acmampctl")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	Chip      string `flag:"chip,default=acm8635,usage=amplifier variant (acm8623 or acm8635)"`
	I2CBus    int    `flag:"i2c-bus,default=1,usage=I2C bus number"`
	I2CAddr   int    `flag:"i2c-addr,usage=I2C device address (defaults to the chip's)"`
	DSPConfig string `flag:"dsp-config,usage=named DSP config blob to apply"`
	Volume    int    `flag:"volume,default=110,usage=gain index for both channels (110 = 0dB)"`
	Mute      bool   `flag:"mute,usage=start muted"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}

	var chip *acm86xx.Chip
	switch argsParsed.Chip {
	case "acm8623":
		chip = &acm8623.Chip
	case "acm8635":
		chip = &acm8635.Chip
	default:
		return errors.Errorf("unknown chip %q", argsParsed.Chip)
	}

	bus := buses.NewLinuxI2C(argsParsed.I2CBus)
	amp, err := acm86xx.New(ctx, chip, bus, acm86xx.Config{
		I2CAddress:    argsParsed.I2CAddr,
		DSPConfigName: argsParsed.DSPConfig,
	}, logger)
	if err != nil {
		return err
	}

	return runAmp(ctx, amp, argsParsed)
}

func runAmp(ctx context.Context, amp *acm86xx.Amp, args Arguments) (err error) {
	defer func() {
		err = multierr.Combine(err, amp.Close(context.Background()))
	}()

	if _, err := amp.SetVolume(ctx, args.Volume, args.Volume); err != nil {
		return err
	}
	if err := amp.SetMute(ctx, args.Mute); err != nil {
		return err
	}
	amp.Start(ctx)

	<-ctx.Done()
	return nil
}
