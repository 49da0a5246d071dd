// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

// Buffer is a static frame buffer owned by either the engine or a client,
// never both at once. Byte 0 is reserved for binary compatibility with a
// sibling SPI-attached radio driver; byte 1 (MIMIC_PSDU_OFFSET) carries the
// PHY length field; bytes 2..2+frame_len carry the MAC frame; the trailing
// two bytes are left for the hardware-appended CRC.
type Buffer []byte

// Buffer layout constants, see EXTERNAL INTERFACES.
const (
	// PayloadLength is the maximum PSDU payload the peripheral accepts.
	PayloadLength = 255
	// PSDUOffset is where the MAC frame starts in a real 802.15.4 PSDU.
	PSDUOffset = 2
	// MimicPSDUOffset is where this driver's buffer layout holds the PHY
	// length byte, one before PSDUOffset; the DMA pointer starts here.
	MimicPSDUOffset = 1
	// MFRSize is the trailing MAC-footer (CRC) size appended by hardware.
	MFRSize = 2
)

// TxClient is notified when a transmit attempt completes.
type TxClient interface {
	// SendDone is called exactly once per successful Transmit call. acked is
	// always false: this driver does not implement link-layer
	// acknowledgements. err is nil on success, ErrBusy if CSMA-CA exhausted
	// its retries.
	SendDone(buf Buffer, acked bool, err error)
}

// RxClient is notified whenever a frame is received, successfully or not.
type RxClient interface {
	// Receive is called once per physical frame. crcOK reports the
	// hardware's CRC verdict; err is ErrFail when crcOK is false, nil
	// otherwise.
	Receive(buf Buffer, frameLen int, crcOK bool, err error)
}
