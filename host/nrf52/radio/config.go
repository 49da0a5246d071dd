// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

// This file is the configuration facade (component D): a thin
// record-and-forward layer over the fields Engine already carries. Every
// setter here stages a value; none of them touch hardware directly. The
// staged channel and TX power reach the registers on the next Initialize
// (which ConfigCommit and Transmit both run); the short address, extended
// address and PAN ID are stored for queries only and never written to
// hardware.

// Address returns the cached 16-bit short address.
func (e *Engine) Address() uint16 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addr16
}

// SetAddress stores a new 16-bit short address. It is not programmed into
// hardware.
func (e *Engine) SetAddress(addr uint16) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addr16 = addr
}

// AddressLong returns the cached 8-byte extended address.
func (e *Engine) AddressLong() [8]byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addrLong
}

// SetAddressLong stages a new extended address.
func (e *Engine) SetAddressLong(addr [8]byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addrLong = addr
}

// PAN returns the cached 16-bit PAN identifier.
func (e *Engine) PAN() uint16 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pan
}

// SetPAN stages a new PAN identifier.
func (e *Engine) SetPAN(pan uint16) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pan = pan
}

// Channel returns the cached channel.
func (e *Engine) Channel() Channel {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.channel
}

// SetChannel validates and stages k. It takes effect on the next
// ConfigCommit or Initialize.
func (e *Engine) SetChannel(k int) error {
	c, err := NewChannel(k)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.channel = c
	return nil
}

// TxPower returns the cached transmit power.
func (e *Engine) TxPower() TxPower {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.txPower
}

// SetTxPower validates and stages dBm. It takes effect on the next
// ConfigCommit or Initialize.
func (e *Engine) SetTxPower(dBm int) error {
	p, err := NewTxPower(dBm)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.txPower = p
	return nil
}

// ConfigCommit powers the radio off and re-runs Initialize, applying the
// staged channel and TX power.
func (e *Engine) ConfigCommit() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.radioOffLocked()
	return e.initializeLocked()
}
