// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

// PeripheralState is the radio's hardware state, as read from the STATE
// register. It is purely observational: the engine never writes to STATE,
// it only changes as a side effect of tasks the engine triggers (or, on a
// fake register block, through PeripheralSim.SetState).
//
// Legal transitions follow the peripheral's documented diagram: Disabled <->
// {Rx,Tx}Ru <-> {Rx,Tx}Idle <-> {Rx,Tx}, {Rx,Tx}Idle -> {Rx,Tx}Disabled ->
// Disabled. Crossing from the RX family to the TX family (or back) always
// passes through Disabled.
type PeripheralState uint32

// The nine states the STATE register can report.
const (
	Disabled PeripheralState = 0
	RxRu     PeripheralState = 1
	RxIdle   PeripheralState = 2
	Rx       PeripheralState = 3
	RxDisabled PeripheralState = 4
	TxRu     PeripheralState = 9
	TxIdle    PeripheralState = 10
	Tx        PeripheralState = 11
	TxDisabled PeripheralState = 12
)

// IsEnabled reports whether the peripheral is in any state other than
// Disabled.
func (s PeripheralState) IsEnabled() bool {
	return s != Disabled
}

// IsTxFamily reports whether s is one of the TX-side states.
func (s PeripheralState) IsTxFamily() bool {
	switch s {
	case TxRu, TxIdle, Tx, TxDisabled:
		return true
	default:
		return false
	}
}

// IsRxFamily reports whether s is one of the RX-side states.
func (s PeripheralState) IsRxFamily() bool {
	switch s {
	case RxRu, RxIdle, Rx, RxDisabled:
		return true
	default:
		return false
	}
}

func (s PeripheralState) String() string {
	switch s {
	case Disabled:
		return "Disabled"
	case RxRu:
		return "RxRu"
	case RxIdle:
		return "RxIdle"
	case Rx:
		return "Rx"
	case RxDisabled:
		return "RxDisabled"
	case TxRu:
		return "TxRu"
	case TxIdle:
		return "TxIdle"
	case Tx:
		return "Tx"
	case TxDisabled:
		return "TxDisabled"
	default:
		return "Unknown"
	}
}
