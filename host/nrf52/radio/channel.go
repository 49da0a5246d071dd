// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

import (
	"fmt"

	"periph.io/x/nrf52154/conn/physic"
)

// Channel is an IEEE 802.15.4 channel number in the 2.4 GHz band, 11..26.
type Channel uint8

// MinChannel and MaxChannel bound the legal 802.15.4 2.4 GHz channel range.
const (
	MinChannel Channel = 11
	MaxChannel Channel = 26
)

// NewChannel validates k and returns the corresponding Channel, or
// ErrNotSupported if k falls outside 11..26.
func NewChannel(k int) (Channel, error) {
	if k < int(MinChannel) || k > int(MaxChannel) {
		return 0, fmt.Errorf("radio: channel %d: %w", k, ErrNotSupported)
	}
	return Channel(k), nil
}

// Frequency returns the channel's center frequency as an offset above 2400
// MHz: FREQUENCY = 5*(k-11) + 5 MHz.
func (c Channel) Frequency() physic.Frequency {
	offsetMHz := int64(5*(int(c)-int(MinChannel)) + 5)
	return physic.Frequency(offsetMHz) * physic.MegaHertz
}

// frequencyRegister returns the raw value to program into the FREQUENCY
// register: the same offset, as a register-sized integer.
func (c Channel) frequencyRegister() uint32 {
	return uint32(5*(int(c)-int(MinChannel)) + 5)
}

func (c Channel) String() string {
	return fmt.Sprintf("channel %d (%s)", uint8(c), c.Frequency())
}
