// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

import "fmt"

// TxPower is a transmit output power level, in dBm.
type TxPower int8

// The set of output power levels the peripheral accepts. Any other value is
// rejected with ErrNotSupported.
const (
	TxPowerPos4 TxPower = 4
	TxPowerPos3 TxPower = 3
	TxPower0    TxPower = 0
	TxPowerNeg4 TxPower = -4
	TxPowerNeg8 TxPower = -8
	TxPowerNeg12 TxPower = -12
	TxPowerNeg16 TxPower = -16
	TxPowerNeg20 TxPower = -20
	TxPowerNeg40 TxPower = -40
)

// validTxPowers is consulted by NewTxPower; order does not matter.
var validTxPowers = [...]TxPower{
	TxPowerPos4, TxPowerPos3, TxPower0, TxPowerNeg4, TxPowerNeg8,
	TxPowerNeg12, TxPowerNeg16, TxPowerNeg20, TxPowerNeg40,
}

// NewTxPower validates dBm against the peripheral's enumerated power levels.
func NewTxPower(dBm int) (TxPower, error) {
	for _, v := range validTxPowers {
		if int(v) == dBm {
			return v, nil
		}
	}
	return 0, fmt.Errorf("radio: tx power %ddBm: %w", dBm, ErrNotSupported)
}

// register returns the raw byte the peripheral's TXPOWER register expects:
// the signed dBm value reinterpreted as an unsigned byte (two's complement).
func (p TxPower) register() uint32 {
	return uint32(uint8(p))
}

func (p TxPower) String() string {
	return fmt.Sprintf("%ddBm", int8(p))
}
