// Package acm8623 implements a driver for the ACM8623 audio amplifier.
//
// The ACM8623 has no usable compiled-in DSP configuration: an external
// DSP config blob is mandatory, and creating an amp without one fails.
package acm8623

import (
	"context"

	"github.com/edaniels/golog"

	"github.com/wenhaoy/acm86xx-drivers/acm86xx"
	"github.com/wenhaoy/acm86xx-drivers/buses"
)

// Chip describes the ACM8623 variant.
var Chip = acm86xx.Chip{
	Name:             "acm8623",
	DefaultAddress:   0x2c,
	Preboot:          prebootSequence,
	RequireDSPConfig: true,
	GainTable:        volumeTable,
	GainPage:         0x05,
	GainOffsets:      [2]byte{0xc4, 0xc0},
}

// New creates a controller for an ACM8623 on the given bus.
func New(ctx context.Context, bus buses.I2C, cfg acm86xx.Config, logger golog.Logger) (*acm86xx.Amp, error) {
	return acm86xx.New(ctx, &Chip, bus, cfg, logger)
}

// This sequence of register writes must always be sent, prior to the
// delay while we wait for the DSP to boot.
var prebootSequence = []byte{
	0x00, 0x00, 0x04, 0x00, 0xfc, 0x86, 0xfd, 0x22,
	0xfe, 0x25, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// volumeTable holds the DSP's 5.27 fixed-point gain codes in 1dB steps.
var volumeTable = []uint32{
	0x000001A8, // 0: -110dB
	0x000001DC, // 1: -109dB
	0x00000216, // 2: -108dB
	0x00000258, // 3: -107dB
	0x000002A1, // 4: -106dB
	0x000002F3, // 5: -105dB
	0x0000034F, // 6: -104dB
	0x000003B6, // 7: -103dB
	0x0000042A, // 8: -102dB
	0x000004AC, // 9: -101dB
	0x0000053E, // 10: -100dB
	0x000005E2, // 11: -99dB
	0x0000069A, // 12: -98dB
	0x00000768, // 13: -97dB
	0x0000084F, // 14: -96dB
	0x00000953, // 15: -95dB
	0x00000A76, // 16: -94dB
	0x00000BBD, // 17: -93dB
	0x00000D2B, // 18: -92dB
	0x00000EC7, // 19: -91dB
	0x00001094, // 20: -90dB
	0x0000129A, // 21: -89dB
	0x000014DF, // 22: -88dB
	0x0000176B, // 23: -87dB
	0x00001A47, // 24: -86dB
	0x00001D7C, // 25: -85dB
	0x00002115, // 26: -84dB
	0x0000251E, // 27: -83dB
	0x000029A5, // 28: -82dB
	0x00002EBA, // 29: -81dB
	0x0000346E, // 30: -80dB
	0x00003AD3, // 31: -79dB
	0x00004201, // 32: -78dB
	0x00004A0F, // 33: -77dB
	0x00005318, // 34: -76dB
	0x00005D3C, // 35: -75dB
	0x0000689C, // 36: -74dB
	0x00007560, // 37: -73dB
	0x000083B2, // 38: -72dB
	0x000093C4, // 39: -71dB
	0x0000A5CB, // 40: -70dB
	0x0000BA06, // 41: -69dB
	0x0000D0B9, // 42: -68dB
	0x0000EA31, // 43: -67dB
	0x000106C4, // 44: -66dB
	0x000126D4, // 45: -65dB
	0x00014ACE, // 46: -64dB
	0x0001732B, // 47: -63dB
	0x0001A075, // 48: -62dB
	0x0001D346, // 49: -61dB
	0x00020C4A, // 50: -60dB
	0x00024C43, // 51: -59dB
	0x0002940A, // 52: -58dB
	0x0002E494, // 53: -57dB
	0x00033EF1, // 54: -56dB
	0x0003A455, // 55: -55dB
	0x00041618, // 56: -54dB
	0x000495BC, // 57: -53dB
	0x000524F4, // 58: -52dB
	0x0005C5A5, // 59: -51dB
	0x000679F2, // 60: -50dB
	0x0007443E, // 61: -49dB
	0x0008273A, // 62: -48dB
	0x000925E9, // 63: -47dB
	0x000A43AA, // 64: -46dB
	0x000B844A, // 65: -45dB
	0x000CEC09, // 66: -44dB
	0x000E7FAD, // 67: -43dB
	0x00104491, // 68: -42dB
	0x001240B9, // 69: -41dB
	0x00147AE1, // 70: -40dB
	0x0016FA9C, // 71: -39dB
	0x0019C865, // 72: -38dB
	0x001CEDC4, // 73: -37dB
	0x00207568, // 74: -36dB
	0x00246B4E, // 75: -35dB
	0x0028DCEC, // 76: -34dB
	0x002DD959, // 77: -33dB
	0x00337185, // 78: -32dB
	0x0039B872, // 79: -31dB
	0x0040C371, // 80: -30dB
	0x0048AA71, // 81: -29dB
	0x00518848, // 82: -28dB
	0x005B7B16, // 83: -27dB
	0x0066A4A5, // 84: -26dB
	0x00732AE2, // 85: -25dB
	0x00813856, // 86: -24dB
	0x0090FCBF, // 87: -23dB
	0x00A2ADAD, // 88: -22dB
	0x00B68738, // 89: -21dB
	0x00CCCCCD, // 90: -20dB
	0x00E5CA15, // 91: -19dB
	0x0101D3F3, // 92: -18dB
	0x012149A6, // 93: -17dB
	0x0144960C, // 94: -16dB
	0x016C310E, // 95: -15dB
	0x0198A135, // 96: -14dB
	0x01CA7D76, // 97: -13dB
	0x02026F31, // 98: -12dB
	0x0241346F, // 99: -11dB
	0x0287A26C, // 100: -10dB
	0x02D6A867, // 101: -9dB
	0x032F52D0, // 102: -8dB
	0x0392CED9, // 103: -7dB
	0x04026E74, // 104: -6dB
	0x047FACCF, // 105: -5dB
	0x050C335D, // 106: -4dB
	0x05A9DF7B, // 107: -3dB
	0x065AC8C3, // 108: -2dB
	0x0721482C, // 109: -1dB
	0x08000000, // 110: 0dB
	0x08F9E4D0, // 111: 1dB
	0x0A12477C, // 112: 2dB
	0x0B4CE07C, // 113: 3dB
	0x0CADDC7B, // 114: 4dB
	0x0E39EA8E, // 115: 5dB
	0x0FF64C17, // 116: 6dB
	0x11E8E6A1, // 117: 7dB
	0x141857EA, // 118: 8dB
	0x168C0C5A, // 119: 9dB
	0x194C583B, // 120: 10dB
	0x1C629406, // 121: 11dB
	0x1FD93C1F, // 122: 12dB
	0x23BC1479, // 123: 13dB
	0x28185086, // 124: 14dB
	0x2CFCC016, // 125: 15dB
	0x327A01A4, // 126: 16dB
	0x38A2BACB, // 127: 17dB
	0x3F8BD79E, // 128: 18dB
	0x474CD1B8, // 129: 19dB
	0x50000000, // 130: 20dB
	0x59C2F01D, // 131: 21dB
	0x64B6CADD, // 132: 22dB
	0x7100C4D8, // 133: 23dB
	0x7ECA9CD2, // 134: 24dB
}
