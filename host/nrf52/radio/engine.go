// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package radio drives the nRF52's integrated IEEE 802.15.4 radio
// peripheral: the register map (registers.go), the interrupt-driven
// CSMA-CA/TX/RX state machine (this file), the peripheral-state tracker
// (state.go) and the configuration facade (config.go).
package radio

import (
	"reflect"
	"sync"
	"time"
	"unsafe"

	"periph.io/x/nrf52154/host/mmio"
)

// CSMA-CA tuning constants from the 802.15.4 channel-access algorithm.
const (
	MaxPollingAttempts uint = 4
	MinBE              uint = 3
	MaxBE              uint = 5
)

// disableWaitIterations bounds the busy-wait for the DISABLED event. The
// peripheral is specified to settle in low single-digit microseconds; this
// iteration count is generous enough that a legitimate wait never trips it,
// while a wedged peripheral is reported instead of hanging the core forever.
const disableWaitIterations = 1 << 20

// Engine is the nRF52 radio driver. One Engine owns one MMIO register block;
// it is not meaningful to have more than one bound to the same peripheral.
//
// All exported methods are safe to call from both thread-mode client code
// and from HandleInterrupt, which is expected to run with the radio's own
// interrupt masked by the caller (there is exactly one radio IRQ line and
// it is not reentrant). The mutex here is what the rest of this tree calls
// a single-writer cell: on real hardware masking the IRQ is what actually
// prevents concurrent entry, the mutex only documents + defends the same
// invariant when this engine is driven from goroutines in tests.
type Engine struct {
	mu sync.Mutex

	regs *registers

	// Logger receives low-volume diagnostic lines. Defaults to NopLogger.
	Logger Logger

	txPower  TxPower
	addr16   uint16
	addrLong [8]byte
	pan      uint16
	channel  Channel

	txBuf        Buffer
	rxBuf        Buffer
	transmitting bool

	ccaCount uint
	ccaBE    uint

	nonce *xorshift32
	timer Alarm

	rxClient RxClient
	txClient TxClient

	state PeripheralState
}

// NewEngine binds an Engine onto mem, which must be at least large enough
// for the register struct (see registerMapSize), and wires alarm as the
// engine's CSMA-CA backoff timer.
//
// On real hardware mem is mmio.Map(baseAddress, registerMapSize); tests use
// mmio.NewFake or radiotest's fake peripheral.
func NewEngine(mem mmio.Slice, alarm Alarm) (*Engine, error) {
	e := &Engine{
		channel: MinChannel + 4, // channel 15, an arbitrary mid-band default
		txPower: TxPower0,
		ccaBE:   MinBE,
		nonce:   newXorshift32(),
		timer:   alarm,
		Logger:  NopLogger{},
	}
	if err := mem.Bind(reflect.ValueOf(&e.regs)); err != nil {
		return nil, err
	}
	if alarm != nil {
		alarm.SetAlarmClient(e)
	}
	return e, nil
}

// NewHardwareEngine binds an Engine directly onto the radio peripheral's
// real memory-mapped register block. It is only valid on the target MCU;
// calling it on a hosted development machine will fault the first time a
// register is touched.
func NewHardwareEngine(alarm Alarm) (*Engine, error) {
	return NewEngine(mmio.Map(baseAddress, registerMapSize), alarm)
}

// String implements periph.Driver.
func (e *Engine) String() string { return "nrf52-radio" }

// Prerequisites implements periph.Driver: the radio depends on its alarm
// client having registered itself first.
func (e *Engine) Prerequisites() []string { return []string{"nrf52-alarm"} }

// Init implements periph.Driver by calling Initialize.
func (e *Engine) Init() (bool, error) {
	if err := e.Initialize(); err != nil {
		return true, err
	}
	return true, nil
}

// SetReceiveClient registers the client notified by Receive callbacks.
func (e *Engine) SetReceiveClient(c RxClient) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rxClient = c
}

// SetReceiveBuffer hands the engine a buffer to receive the next frame
// into. Required before the engine can usefully stay in RX after a frame
// completes: the engine clears its rxBuf slot on every Receive callback and
// waits for a replacement.
func (e *Engine) SetReceiveBuffer(buf Buffer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rxBuf = buf
}

// SetTransmitClient registers the client notified by SendDone callbacks.
func (e *Engine) SetTransmitClient(c TxClient) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.txClient = c
}

// IsOn reports whether the peripheral is in any state other than Disabled,
// per the peripheral-state tracker's last reading.
func (e *Engine) IsOn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.IsEnabled()
}

// State returns the peripheral-state tracker's last reading.
func (e *Engine) State() PeripheralState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// RandomNonce advances and returns the engine's CSMA-CA backoff generator.
// Exposed so callers (and tests) can verify the deterministic sequence from
// the fixed seed.
func (e *Engine) RandomNonce() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nonce.next()
}

// Initialize powers the radio down, reprograms every configuration
// register from the engine's current staged values, and re-enters RX. It
// is idempotent and safe to call at any time; Transmit and ConfigCommit
// both call it internally to apply pending configuration.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initializeLocked()
}

// Startup is a historical alias for Initialize: the original driver this
// was derived from exposed both names for the same idempotent bring-up
// sequence.
func (e *Engine) Startup() error {
	return e.Initialize()
}

func (e *Engine) initializeLocked() error {
	e.radioOnLocked()

	e.regs.DISABLE = taskTrigger
	if err := e.waitDisabledLocked(); err != nil {
		return err
	}
	e.regs.DISABLED = eventClear

	e.regs.MODE = modeIEEE802154_250Kbit
	e.regs.PCNF0 = pcnf0Value()
	e.regs.PCNF1 = pcnf1Value(PayloadLength)
	e.regs.CRCCNF = crccnfValue()
	e.regs.CRCPOLY = crcPolyIEEE802154
	e.regs.CRCINIT = crcInitIEEE802154
	e.regs.MODECNF0 = modecnf0RuFastDtxCenter
	e.regs.CCACTRL = ccaCtrlValue(ccaModeEnergyDetect, ccaEDThreshold, ccaCorrThreshold, ccaCorrCount)

	// Logical address 0 is used for both TX and RX; hardware address
	// filtering is not exercised by this driver (addresses are stored for
	// client queries only).
	e.regs.TXADDRESS = 0
	e.regs.RXADDRESSES = 1

	e.regs.FREQUENCY = e.channel.frequencyRegister()
	e.regs.TXPOWER = e.txPower.register()

	e.rx()
	return nil
}

// Transmit attempts to send buf, a frame of frameLen bytes laid out per
// Buffer's convention. It returns ErrBusy if another transmit is already in
// flight, ErrSize if frameLen leaves no room for the hardware-appended CRC.
// On success, Transmit returns nil immediately; completion (success or
// ErrBusy from CSMA-CA exhaustion) is reported later through the
// registered TxClient's SendDone.
func (e *Engine) Transmit(buf Buffer, frameLen int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.transmitting || e.txBuf != nil {
		return ErrBusy
	}
	if PSDUOffset+frameLen >= len(buf) {
		return ErrSize
	}
	buf[MimicPSDUOffset] = byte(frameLen + MFRSize)
	e.txBuf = buf
	e.transmitting = true
	e.ccaCount = 0
	e.ccaBE = MinBE
	e.radioOffLocked()
	return e.initializeLocked()
}

// rx enters the RX state, programming the DMA pointer to whichever buffer
// is currently active: the transmit buffer when a CSMA-CA attempt is in
// flight (RX is also the required precondition for CCA), the receive
// buffer otherwise.
func (e *Engine) rx() {
	buf := e.activeBuffer()
	if buf != nil {
		e.programDMA(buf)
	}
	e.regs.RXEN = taskTrigger
}

func (e *Engine) activeBuffer() Buffer {
	if e.transmitting && e.txBuf != nil {
		return e.txBuf
	}
	return e.rxBuf
}

func (e *Engine) programDMA(buf Buffer) {
	e.regs.PACKETPTR = uint32(uintptr(unsafe.Pointer(&buf[MimicPSDUOffset])))
}

// radioOnLocked resets and re-enables the peripheral's power, the first
// step of the bring-up sequence: writing POWER clear then set mirrors the
// hardware's own reset-then-enable latch.
func (e *Engine) radioOnLocked() {
	e.regs.POWER = powerDisable
	e.regs.POWER = powerEnable
}

// radioOffLocked powers the peripheral down. The DISABLE task and its
// settle-wait are not part of powering off: they belong to initializeLocked,
// which always runs next and issues them itself as the first step of
// bringing the peripheral back up.
func (e *Engine) radioOffLocked() {
	e.regs.POWER = powerDisable
}

func (e *Engine) waitDisabledLocked() error {
	for i := 0; i < disableWaitIterations; i++ {
		if e.regs.eventIsSet(&e.regs.DISABLED) {
			return nil
		}
	}
	return ErrTimeout
}

func (e *Engine) readState() PeripheralState {
	e.state = PeripheralState(e.regs.STATE)
	return e.state
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// AlarmFired implements AlarmClient. It re-enters RX so the next READY
// event drives another CCA attempt; transmitting is still set from the
// original Transmit call.
func (e *Engine) AlarmFired() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rx()
}

// HandleInterrupt runs one pass of the radio's interrupt handler: it masks
// the radio's interrupts, drains every latched event in a fixed order, acts
// on each, and re-enables the interrupt set before returning. The caller
// must not invoke HandleInterrupt reentrantly — on real hardware this is
// guaranteed by the radio having a single, non-reentrant IRQ vector.
func (e *Engine) HandleInterrupt() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.regs.INTENCLR = ^uint32(0)

	if e.regs.eventIsSet(&e.regs.READY) {
		e.regs.READY = eventClear
		e.regs.END = eventClear
		st := e.readState()
		if e.transmitting && st == RxIdle {
			e.regs.CCASTART = taskTrigger
		} else {
			e.regs.START = taskTrigger
		}
	}

	if e.regs.eventIsSet(&e.regs.FRAMESTART) {
		e.regs.FRAMESTART = eventClear
		// TODO: hook point for ACK timing (AckTime); not implemented, this
		// driver does not transmit or validate link-layer acknowledgements.
	}

	if e.regs.eventIsSet(&e.regs.CCAIDLE) {
		e.regs.CCAIDLE = eventClear
		e.regs.TXEN = taskTrigger
	}

	if e.regs.eventIsSet(&e.regs.CCABUSY) {
		e.handleCCABusyLocked()
	}

	if e.regs.eventIsSet(&e.regs.END) {
		e.handleEndLocked()
	}

	e.regs.INTENSET = runInterruptSet
}

func (e *Engine) handleCCABusyLocked() {
	e.regs.CCABUSY = eventClear
	e.regs.READY = eventClear
	e.regs.DISABLE = taskTrigger
	if err := e.waitDisabledLocked(); err != nil {
		e.logger().Printf("radio: CCABUSY disable wait: %v", err)
	}
	e.regs.DISABLED = eventClear

	if e.ccaCount < MaxPollingAttempts {
		e.ccaCount++
		if e.ccaBE < MaxBE {
			e.ccaBE++
		}
		window := uint32(1)<<e.ccaBE - 1
		delay := e.nonce.next() & window
		e.logger().Printf("radio: CSMA backoff: attempt=%d be=%d delay=%d periods", e.ccaCount, e.ccaBE, delay)
		if e.timer != nil {
			e.timer.SetAlarm(time.Duration(delay) * BackoffPeriod)
		}
		return
	}

	buf := e.txBuf
	e.txBuf = nil
	e.transmitting = false
	e.logger().Printf("radio: CSMA-CA exhausted after %d attempts", e.ccaCount)
	if e.txClient != nil && buf != nil {
		e.txClient.SendDone(buf, false, ErrBusy)
	}
}

func (e *Engine) handleEndLocked() {
	e.regs.END = eventClear
	crcOK := e.regs.CRCSTATUS&1 == 1
	st := e.readState()

	switch {
	case st.IsTxFamily():
		buf := e.txBuf
		e.txBuf = nil
		e.transmitting = false
		if e.txClient != nil && buf != nil {
			// TX CRC status reflects what the peripheral just transmitted,
			// not what it received: it carries no success/failure meaning
			// here, so SendDone always reports Ok.
			e.txClient.SendDone(buf, false, nil)
		}
	case st.IsRxFamily():
		buf := e.rxBuf
		e.rxBuf = nil
		if buf != nil {
			frameLen := int(buf[MimicPSDUOffset]) - MFRSize
			var err error
			if !crcOK {
				err = ErrFail
			}
			if e.rxClient != nil {
				e.rxClient.Receive(buf, frameLen, crcOK, err)
			}
		}
	}

	e.radioOffLocked()
	// initializeLocked's final step is rx(), completing the full power
	// cycle the peripheral requires between every frame.
	if err := e.initializeLocked(); err != nil {
		e.logger().Printf("radio: re-initialize after END: %v", err)
	}
}
