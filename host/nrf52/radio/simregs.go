// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

// PeripheralSim exposes direct register pokes that stand in for what the
// hardware itself would do: latching an event, settling into a new STATE,
// reporting a CRC verdict. It is only meaningful with an Engine bound to a
// fake register block (see radiotest); a real peripheral drives these
// registers on its own and nothing in firmware ever needs to reach past
// Engine's normal API to touch them.
type PeripheralSim struct {
	e *Engine
}

// Sim returns a PeripheralSim bound to e's register block.
func (e *Engine) Sim() PeripheralSim {
	return PeripheralSim{e: e}
}

// SetState pokes the STATE register, simulating the peripheral settling
// into st on its own.
func (s PeripheralSim) SetState(st PeripheralState) {
	s.e.regs.STATE = uint32(st)
}

// SetCRCStatus pokes CRCSTATUS.
func (s PeripheralSim) SetCRCStatus(ok bool) {
	if ok {
		s.e.regs.CRCSTATUS = 1
	} else {
		s.e.regs.CRCSTATUS = 0
	}
}

// FireReady, FireFramestart, FireCCAIdle, FireCCABusy, FireEnd and
// FireDisabled latch the corresponding event register, as the hardware
// would on the condition the event name describes.
func (s PeripheralSim) FireReady()      { s.e.regs.READY = 1 }
func (s PeripheralSim) FireFramestart() { s.e.regs.FRAMESTART = 1 }
func (s PeripheralSim) FireCCAIdle()    { s.e.regs.CCAIDLE = 1 }
func (s PeripheralSim) FireCCABusy()    { s.e.regs.CCABUSY = 1 }
func (s PeripheralSim) FireEnd()        { s.e.regs.END = 1 }
func (s PeripheralSim) FireDisabled()   { s.e.regs.DISABLED = 1 }

// Frequency, TxPowerRegister and Mode read back the configuration values
// Initialize last programmed, for assertions in tests.
func (s PeripheralSim) Frequency() uint32     { return s.e.regs.FREQUENCY }
func (s PeripheralSim) TxPowerRegister() uint32 { return s.e.regs.TXPOWER }
func (s PeripheralSim) Mode() uint32          { return s.e.regs.MODE }

// InterruptsEnabled reports the current INTENSET value, for assertions that
// HandleInterrupt re-armed the expected event set.
func (s PeripheralSim) InterruptsEnabled() uint32 {
	return s.e.regs.INTENSET
}
