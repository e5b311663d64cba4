package acm86xx

// Page 0 register addresses. The register space is banked: address 0
// selects the active page, and every other address is relative to it.
const (
	regPage         = 0x00
	regDeviceState  = 0x04
	regStateReport  = 0x16
	regGlobalFault1 = 0x17
	regGlobalFault2 = 0x18
	regGlobalFault3 = 0x19
)

// DEVICE_STATE register values.
const (
	stateDeepSleep = 0x00
	stateSleep     = 0x01
	stateHiZ       = 0x02
	statePlay      = 0x03

	stateMute = 0x0C
)
