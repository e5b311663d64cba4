// Package acm8635 implements a driver for the ACM8635 audio amplifier.
//
// Unlike the ACM8623, the ACM8635 carries a compiled-in DSP
// configuration and silently falls back to it when no external config
// blob is available.
package acm8635

import (
	"context"

	"github.com/edaniels/golog"

	"github.com/wenhaoy/acm86xx-drivers/acm86xx"
	"github.com/wenhaoy/acm86xx-drivers/buses"
)

// Chip describes the ACM8635 variant.
var Chip = acm86xx.Chip{
	Name:             "acm8635",
	DefaultAddress:   0x2c,
	Preboot:          prebootSequence,
	DefaultDSPConfig: defaultDSPConfig,
	GainTable:        volumeTable,
	GainPage:         0x04,
	GainOffsets:      [2]byte{0x7c, 0x80},
}

// New creates a controller for an ACM8635 on the given bus.
func New(ctx context.Context, bus buses.I2C, cfg acm86xx.Config, logger golog.Logger) (*acm86xx.Amp, error) {
	return acm86xx.New(ctx, &Chip, bus, cfg, logger)
}

// This sequence of register writes must always be sent, prior to the
// delay while we wait for the DSP to boot.
var prebootSequence = []byte{
	0x00, 0x00, 0x04, 0x00, 0xfc, 0x86, 0xfd, 0x25,
	0xfe, 0x53, 0x00, 0x01, 0x02, 0x20, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// defaultDSPConfig is a conservative stereo bridge-tied-load setup
// used when no external DSP config blob is supplied.
var defaultDSPConfig = []byte{
	0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x09,
	0xe4, 0x80, 0xe5, 0x9e, 0xe6, 0x02, 0xe7, 0x9e,
	0xe8, 0x80, 0xe9, 0x9e, 0xea, 0x03, 0xeb, 0x9e,
	0x00, 0x04, 0x94, 0x00, 0x95, 0xe2, 0x96, 0xc4,
	0x97, 0x6b, 0x28, 0x00, 0x29, 0x40, 0x2a, 0x26,
	0x2b, 0xe7, 0x2c, 0x00, 0x2d, 0x40, 0x2e, 0x26,
	0x2f, 0xe7, 0x00, 0x0c, 0x60, 0x00, 0x61, 0x1b,
	0x62, 0x4b, 0x63, 0x98, 0x64, 0x00, 0x65, 0x22,
	0x66, 0x1d, 0x67, 0x95, 0x68, 0x00, 0x69, 0x06,
	0x6a, 0xd3, 0x6b, 0x72, 0x6c, 0x00, 0x6d, 0x00,
	0x6e, 0x00, 0x6f, 0x00, 0x70, 0x00, 0x71, 0x00,
	0x72, 0x00, 0x73, 0x00, 0x74, 0xff, 0x75, 0x81,
	0x76, 0x47, 0x77, 0xae, 0x78, 0xf5, 0x79, 0xb3,
	0x7a, 0xb7, 0x7b, 0xc8, 0x7c, 0xfe, 0x7d, 0x01,
	0x7e, 0xc0, 0x7f, 0x79, 0x80, 0x00, 0x81, 0x00,
	0x82, 0x00, 0x83, 0x00, 0x84, 0x00, 0x85, 0x00,
	0x86, 0x00, 0x87, 0x00, 0x00, 0x01, 0x01, 0x00,
	0x00, 0x00, 0x11, 0x03, 0x02, 0x00, 0x06, 0xb0,
	0x05, 0xf0, 0x28, 0x03, 0x03, 0x05, 0x01, 0x84,
	0x00, 0x01, 0x09, 0x04, 0x00, 0x00, 0x04, 0x02,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x04, 0x03,
}

// volumeTable holds the DSP's 9.23 fixed-point gain codes in 1dB steps.
var volumeTable = []uint32{
	0x0000001B, // 0: -110dB
	0x0000001E, // 1: -109dB
	0x00000021, // 2: -108dB
	0x00000025, // 3: -107dB
	0x0000002A, // 4: -106dB
	0x0000002F, // 5: -105dB
	0x00000035, // 6: -104dB
	0x0000003B, // 7: -103dB
	0x00000043, // 8: -102dB
	0x0000004B, // 9: -101dB
	0x00000054, // 10: -100dB
	0x0000005E, // 11: -99dB
	0x0000006A, // 12: -98dB
	0x00000076, // 13: -97dB
	0x00000085, // 14: -96dB
	0x00000095, // 15: -95dB
	0x000000A7, // 16: -94dB
	0x000000BC, // 17: -93dB
	0x000000D3, // 18: -92dB
	0x000000EC, // 19: -91dB
	0x00000109, // 20: -90dB
	0x0000012A, // 21: -89dB
	0x0000014E, // 22: -88dB
	0x00000177, // 23: -87dB
	0x000001A4, // 24: -86dB
	0x000001D8, // 25: -85dB
	0x00000211, // 26: -84dB
	0x00000252, // 27: -83dB
	0x0000029A, // 28: -82dB
	0x000002EC, // 29: -81dB
	0x00000347, // 30: -80dB
	0x000003AD, // 31: -79dB
	0x00000420, // 32: -78dB
	0x000004A1, // 33: -77dB
	0x00000532, // 34: -76dB
	0x000005D4, // 35: -75dB
	0x0000068A, // 36: -74dB
	0x00000756, // 37: -73dB
	0x0000083B, // 38: -72dB
	0x0000093C, // 39: -71dB
	0x00000A5D, // 40: -70dB
	0x00000BA0, // 41: -69dB
	0x00000D0C, // 42: -68dB
	0x00000EA3, // 43: -67dB
	0x0000106C, // 44: -66dB
	0x0000126D, // 45: -65dB
	0x000014AD, // 46: -64dB
	0x00001733, // 47: -63dB
	0x00001A07, // 48: -62dB
	0x00001D34, // 49: -61dB
	0x000020C5, // 50: -60dB
	0x000024C4, // 51: -59dB
	0x00002941, // 52: -58dB
	0x00002E49, // 53: -57dB
	0x000033EF, // 54: -56dB
	0x00003A45, // 55: -55dB
	0x00004161, // 56: -54dB
	0x0000495C, // 57: -53dB
	0x0000524F, // 58: -52dB
	0x00005C5A, // 59: -51dB
	0x0000679F, // 60: -50dB
	0x00007444, // 61: -49dB
	0x00008274, // 62: -48dB
	0x0000925F, // 63: -47dB
	0x0000A43B, // 64: -46dB
	0x0000B845, // 65: -45dB
	0x0000CEC1, // 66: -44dB
	0x0000E7FB, // 67: -43dB
	0x00010449, // 68: -42dB
	0x0001240C, // 69: -41dB
	0x000147AE, // 70: -40dB
	0x00016FAA, // 71: -39dB
	0x00019C86, // 72: -38dB
	0x0001CEDC, // 73: -37dB
	0x00020756, // 74: -36dB
	0x000246B5, // 75: -35dB
	0x00028DCF, // 76: -34dB
	0x0002DD96, // 77: -33dB
	0x00033718, // 78: -32dB
	0x00039B87, // 79: -31dB
	0x00040C37, // 80: -30dB
	0x00048AA7, // 81: -29dB
	0x00051884, // 82: -28dB
	0x0005B7B1, // 83: -27dB
	0x00066A4A, // 84: -26dB
	0x000732AE, // 85: -25dB
	0x00081385, // 86: -24dB
	0x00090FCC, // 87: -23dB
	0x000A2ADB, // 88: -22dB
	0x000B6873, // 89: -21dB
	0x000CCCCD, // 90: -20dB
	0x000E5CA1, // 91: -19dB
	0x00101D3F, // 92: -18dB
	0x0012149A, // 93: -17dB
	0x00144961, // 94: -16dB
	0x0016C311, // 95: -15dB
	0x00198A13, // 96: -14dB
	0x001CA7D7, // 97: -13dB
	0x002026F3, // 98: -12dB
	0x00241347, // 99: -11dB
	0x00287A27, // 100: -10dB
	0x002D6A86, // 101: -9dB
	0x0032F52D, // 102: -8dB
	0x00392CEE, // 103: -7dB
	0x004026E7, // 104: -6dB
	0x0047FACD, // 105: -5dB
	0x0050C336, // 106: -4dB
	0x005A9DF8, // 107: -3dB
	0x0065AC8C, // 108: -2dB
	0x00721483, // 109: -1dB
	0x00800000, // 110: 0dB
	0x008F9E4D, // 111: 1dB
	0x00A12478, // 112: 2dB
	0x00B4CE08, // 113: 3dB
	0x00CADDC8, // 114: 4dB
	0x00E39EA9, // 115: 5dB
	0x00FF64C1, // 116: 6dB
	0x011E8E6A, // 117: 7dB
	0x0141857F, // 118: 8dB
	0x0168C0C6, // 119: 9dB
	0x0194C584, // 120: 10dB
	0x01C62940, // 121: 11dB
	0x01FD93C2, // 122: 12dB
	0x023BC148, // 123: 13dB
	0x02818508, // 124: 14dB
	0x02CFCC01, // 125: 15dB
	0x0327A01A, // 126: 16dB
	0x038A2BAD, // 127: 17dB
	0x03F8BD7A, // 128: 18dB
	0x0474CD1B, // 129: 19dB
	0x05000000, // 130: 20dB
	0x059C2F02, // 131: 21dB
	0x064B6CAE, // 132: 22dB
	0x07100C4D, // 133: 23dB
	0x07ECA9CD, // 134: 24dB
	0x08E43299, // 135: 25dB
	0x09F9EF8E, // 136: 26dB
	0x0B319025, // 137: 27dB
	0x0C8F36F2, // 138: 28dB
	0x0E1787B8, // 139: 29dB
	0x0FCFB725, // 140: 30dB
	0x11BD9C84, // 141: 31dB
	0x13E7C594, // 142: 32dB
	0x16558CCB, // 143: 33dB
	0x190F3254, // 144: 34dB
	0x1C1DF80E, // 145: 35dB
	0x1F8C4107, // 146: 36dB
	0x2365B4BF, // 147: 37dB
	0x27B766C2, // 148: 38dB
	0x2C900313, // 149: 39dB
	0x32000000, // 150: 40dB
	0x3819D612, // 151: 41dB
	0x3EF23ECA, // 152: 42dB
	0x46A07B07, // 153: 43dB
	0x4F3EA203, // 154: 44dB
	0x58E9F9F9, // 155: 45dB
	0x63C35B8E, // 156: 46dB
	0x6FEFA16D, // 157: 47dB
	0x7D982575, // 158: 48dB
}
