// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package radiotest provides a fake nRF52 radio peripheral and a fake alarm
// for exercising host/nrf52/radio without real hardware.
package radiotest

import (
	"time"

	"periph.io/x/nrf52154/host/mmio"
	"periph.io/x/nrf52154/host/nrf52/radio"
)

// NewEngine builds a radio.Engine bound to a fake, in-memory register block
// and a fresh FakeAlarm, returning both so the caller can drive simulated
// hardware events and alarm callbacks.
func NewEngine() (*radio.Engine, *FakeAlarm) {
	alarm := &FakeAlarm{}
	mem := mmio.NewFake(0x1000)
	e, err := radio.NewEngine(mem, alarm)
	if err != nil {
		// Only reachable if the register struct no longer fits the fixed
		// fake size above; a programming error, not a runtime condition.
		panic(err)
	}
	return e, alarm
}

// FakeAlarm is a radio.Alarm that records the last scheduled delay instead
// of actually waiting, so tests can assert on it and fire it on demand.
type FakeAlarm struct {
	client   radio.AlarmClient
	Scheduled time.Duration
	FireCount int
}

// SetAlarmClient implements radio.Alarm.
func (a *FakeAlarm) SetAlarmClient(c radio.AlarmClient) {
	a.client = c
}

// SetAlarm implements radio.Alarm by recording d instead of waiting.
func (a *FakeAlarm) SetAlarm(d time.Duration) {
	a.Scheduled = d
}

// Fire invokes the registered client's AlarmFired, as if the Scheduled
// delay had elapsed.
func (a *FakeAlarm) Fire() {
	a.FireCount++
	if a.client != nil {
		a.client.AlarmFired()
	}
}

// RecordingRxClient implements radio.RxClient by appending every call it
// receives, for assertions in tests.
type RecordingRxClient struct {
	Calls []RxCall
}

// RxCall is one recorded radio.RxClient.Receive invocation.
type RxCall struct {
	Buf      radio.Buffer
	FrameLen int
	CRCOK    bool
	Err      error
}

// Receive implements radio.RxClient.
func (r *RecordingRxClient) Receive(buf radio.Buffer, frameLen int, crcOK bool, err error) {
	r.Calls = append(r.Calls, RxCall{Buf: buf, FrameLen: frameLen, CRCOK: crcOK, Err: err})
}

// RecordingTxClient implements radio.TxClient by appending every call it
// receives, for assertions in tests.
type RecordingTxClient struct {
	Calls []TxCall
}

// TxCall is one recorded radio.TxClient.SendDone invocation.
type TxCall struct {
	Buf   radio.Buffer
	Acked bool
	Err   error
}

// SendDone implements radio.TxClient.
func (t *RecordingTxClient) SendDone(buf radio.Buffer, acked bool, err error) {
	t.Calls = append(t.Calls, TxCall{Buf: buf, Acked: acked, Err: err})
}
