// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

// baseAddress is the fixed physical address of the radio peripheral's
// register block on an nRF52 part.
const baseAddress = 0x40001000

// registerMapSize is large enough to cover every register used below,
// including the reserved gaps between register groups.
const registerMapSize = 0x1000

// registers mirrors the radio peripheral's memory-mapped register block, in
// the order the peripheral's product specification lays them out: tasks,
// then events, then SHORTS/interrupt control, then status and configuration
// registers. Reserved gaps between groups are modeled as fixed-size uint32
// arrays so later fields land on the real offsets; nothing ever reads or
// writes through a _reserved field.
//
// Every field here is a raw uint32. Bitfield slices (MODE, PCNF0/1, CRCCNF,
// CCACTRL, ...) are packed by small helper functions and constants rather
// than a generated bitfield type, matching how the rest of this tree reads
// and writes peripheral registers directly.
type registers struct {
	// Tasks: writing any non-zero value triggers the task.
	TXEN       uint32
	RXEN       uint32
	START      uint32
	STOP       uint32
	DISABLE    uint32
	RSSISTART  uint32
	RSSISTOP   uint32
	BCSTART    uint32
	BCSTOP     uint32
	_reserved0 [2]uint32
	CCASTART   uint32
	CCASTOP    uint32
	_reserved1 [51]uint32

	// Events: read-to-check latches (non-zero means set); writing eventClear
	// (0) clears them.
	READY      uint32
	ADDRESS    uint32
	PAYLOAD    uint32
	END        uint32
	DISABLED   uint32
	DEVMATCH   uint32
	DEVMISS    uint32
	RSSIEND    uint32
	_reserved2 [2]uint32
	BCMATCH    uint32
	_reserved3 uint32
	CRCOK      uint32
	CRCERROR   uint32
	FRAMESTART uint32
	_reserved4 [2]uint32
	CCAIDLE    uint32
	CCABUSY    uint32
	_reserved5 [45]uint32

	// SHORTS: event->task shortcut bitmap.
	SHORTS     uint32
	_reserved6 [64]uint32

	// Interrupt enable set/clear.
	INTENSET   uint32
	INTENCLR   uint32
	_reserved7 [61]uint32

	// Status.
	CRCSTATUS  uint32
	_reserved8 uint32
	RXMATCH    uint32
	RXCRC      uint32
	DAI        uint32
	_reserved9 [60]uint32

	// Configuration.
	PACKETPTR    uint32
	FREQUENCY    uint32
	TXPOWER      uint32
	MODE         uint32
	PCNF0        uint32
	PCNF1        uint32
	BASE0        uint32
	BASE1        uint32
	PREFIX0      uint32
	PREFIX1      uint32
	TXADDRESS    uint32
	RXADDRESSES  uint32
	CRCCNF       uint32
	CRCPOLY      uint32
	CRCINIT      uint32
	_reservedA   uint32
	TIFS         uint32
	RSSISAMPLE   uint32
	_reservedB   uint32
	STATE        uint32
	DATAWHITEIV  uint32
	_reservedC   [2]uint32
	BCC          uint32
	_reservedD   [39]uint32
	DAB          [8]uint32
	DAP          [8]uint32
	DACNF        uint32
	MHRMATCHCONF uint32
	MHRMATCHMAS  uint32
	_reservedE   uint32
	MODECNF0     uint32
	_reservedF   [6]uint32
	CCACTRL      uint32
	_reserved10  [611]uint32

	// Power: clearing then setting this register resets and re-enables the
	// peripheral; clearing it alone powers the peripheral down.
	POWER uint32
}

// Task bits (any non-zero value triggers the task; 1 is conventional).
const taskTrigger uint32 = 1

// Event-clear value: writing 0 clears a latched event.
const eventClear uint32 = 0

// POWER register values: clearing it powers the peripheral down; clearing
// then setting it resets and re-enables the peripheral.
const (
	powerDisable uint32 = 0
	powerEnable  uint32 = 1
)

func (r *registers) eventIsSet(event *uint32) bool {
	return *event != 0
}

// Interrupt bit positions within INTENSET/INTENCLR.
const (
	intenReady      = 1 << 0
	intenAddress    = 1 << 1
	intenPayload    = 1 << 2
	intenEnd        = 1 << 3
	intenDisabled   = 1 << 4
	intenFramestart = 1 << 17
	intenCCAIdle    = 1 << 18
	intenCCABusy    = 1 << 19
)

// runInterruptSet is the set of events this driver re-enables at the end of
// every interrupt pass.
const runInterruptSet = intenReady | intenCCAIdle | intenCCABusy | intenEnd | intenFramestart

// mode register value for IEEE 802.15.4, 250 kbit/s O-QPSK.
const modeIEEE802154_250Kbit uint32 = 15

// pcnf0 field values.
const (
	pcnf0LFLEN              = 8 // length-field width in bits
	pcnf0PLENThirtyTwoZeros = 2 << 24
	pcnf0CRCIncLen          = 1 << 26 // CRCINC: length field includes CRC
)

func pcnf0Value() uint32 {
	return pcnf0LFLEN | pcnf0PLENThirtyTwoZeros | pcnf0CRCIncLen
}

// pcnf1 MAXLEN occupies bits [7:0].
func pcnf1Value(maxLen uint8) uint32 {
	return uint32(maxLen)
}

// crccnf field values: LEN=2 (bits [1:0]=2), SKIPADDR=IEEE802154 (bits
// [9:8]=2).
const (
	crccnfLenTwo           = 2
	crccnfSkipAddrIEEE80215 = 2 << 8
)

func crccnfValue() uint32 {
	return crccnfLenTwo | crccnfSkipAddrIEEE80215
}

// modecnf0: RU=FAST (bit 0), DTX=CENTER (bits [9:8] = 2).
const modecnf0RuFastDtxCenter uint32 = 1 | (2 << 8)

// CCA control register fields, packed as the peripheral expects:
// CCAMODE[2:0], CCAEDTHRES[15:8], CCACORRTHRES[23:16], CCACORRCNT[31:24].
func ccaCtrlValue(mode, edThresh, corrThresh, corrCount uint8) uint32 {
	return uint32(mode) | uint32(edThresh)<<8 | uint32(corrThresh)<<16 | uint32(corrCount)<<24
}

// 802.15.4 CCA and CRC constants (platform-fixed, not user-configurable).
const (
	ccaModeEnergyDetect uint8 = 0
	ccaEDThreshold      uint8 = 0x14
	ccaCorrThreshold    uint8 = 0x14
	ccaCorrCount        uint8 = 0x02

	crcPolyIEEE802154 uint32 = 0x011021
	crcInitIEEE802154 uint32 = 0
)
