// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio_test

import (
	"errors"
	"testing"

	"periph.io/x/nrf52154/host/nrf52/radio"
	"periph.io/x/nrf52154/host/nrf52/radio/radiotest"
)

func TestEngine_InitializeProgramsConfig(t *testing.T) {
	e, _ := radiotest.NewEngine()
	e.Sim().FireDisabled()
	if err := e.SetChannel(15); err != nil {
		t.Fatal(err)
	}
	if err := e.SetTxPower(0); err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	if got := e.Sim().Mode(); got != 15 {
		t.Errorf("MODE = %d, want 15", got)
	}
	if got := e.Sim().Frequency(); got != 25 {
		t.Errorf("FREQUENCY = %d, want 25", got)
	}
	if got := e.Sim().TxPowerRegister(); got != 0 {
		t.Errorf("TXPOWER = %d, want 0", got)
	}
}

func TestEngine_TransmitSuccess(t *testing.T) {
	e, _ := radiotest.NewEngine()
	tx := &radiotest.RecordingTxClient{}
	e.SetTransmitClient(tx)

	e.Sim().FireDisabled()
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}

	buf := make(radio.Buffer, 260)
	e.Sim().FireDisabled()
	if err := e.Transmit(buf, 10); err != nil {
		t.Fatal(err)
	}
	if got, want := buf[radio.MimicPSDUOffset], byte(10+radio.MFRSize); got != want {
		t.Errorf("buf[MimicPSDUOffset] = %d, want %d", got, want)
	}

	// READY while in RxIdle with a transmit in flight starts CCA.
	e.Sim().SetState(radio.RxIdle)
	e.Sim().FireReady()
	e.HandleInterrupt()

	// CCA comes back idle: the handler issues TXEN; the next READY (now
	// in TxIdle) starts the actual transmission.
	e.Sim().FireCCAIdle()
	e.HandleInterrupt()
	e.Sim().SetState(radio.TxIdle)
	e.Sim().FireReady()
	e.HandleInterrupt()

	// The peripheral reports END from the TX family.
	e.Sim().SetState(radio.TxIdle)
	e.Sim().FireDisabled()
	e.Sim().FireEnd()
	e.HandleInterrupt()

	if len(tx.Calls) != 1 {
		t.Fatalf("got %d SendDone calls, want 1", len(tx.Calls))
	}
	call := tx.Calls[0]
	if call.Acked {
		t.Error("acked should always be false")
	}
	if call.Err != nil {
		t.Errorf("got err %v, want nil (TX CRC status is not meaningful)", call.Err)
	}
}

func TestEngine_TransmitBusyWhileInFlight(t *testing.T) {
	e, _ := radiotest.NewEngine()
	e.Sim().FireDisabled()
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	buf1 := make(radio.Buffer, 260)
	buf2 := make(radio.Buffer, 260)
	e.Sim().FireDisabled()
	if err := e.Transmit(buf1, 10); err != nil {
		t.Fatal(err)
	}
	if err := e.Transmit(buf2, 10); !errors.Is(err, radio.ErrBusy) {
		t.Fatalf("got %v, want ErrBusy", err)
	}
}

func TestEngine_TransmitTooLarge(t *testing.T) {
	e, _ := radiotest.NewEngine()
	e.Sim().FireDisabled()
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	buf := make(radio.Buffer, 10)
	if err := e.Transmit(buf, 250); !errors.Is(err, radio.ErrSize) {
		t.Fatalf("got %v, want ErrSize", err)
	}
}

func TestEngine_CSMAExhaustion(t *testing.T) {
	e, alarm := radiotest.NewEngine()
	tx := &radiotest.RecordingTxClient{}
	e.SetTransmitClient(tx)

	e.Sim().FireDisabled()
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	buf := make(radio.Buffer, 260)
	e.Sim().FireDisabled()
	if err := e.Transmit(buf, 10); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < int(radio.MaxPollingAttempts); i++ {
		e.Sim().FireDisabled()
		e.Sim().FireCCABusy()
		e.HandleInterrupt()
		if len(tx.Calls) != 0 {
			t.Fatalf("SendDone fired early after %d CCABUSY events", i+1)
		}
		alarm.Fire()
	}

	// One more CCABUSY past the retry budget reports failure.
	e.Sim().FireDisabled()
	e.Sim().FireCCABusy()
	e.HandleInterrupt()

	if len(tx.Calls) != 1 {
		t.Fatalf("got %d SendDone calls, want 1", len(tx.Calls))
	}
	if !errors.Is(tx.Calls[0].Err, radio.ErrBusy) {
		t.Errorf("got err %v, want ErrBusy", tx.Calls[0].Err)
	}
}

func TestEngine_ReceiveCRCOK(t *testing.T) {
	e, _ := radiotest.NewEngine()
	rx := &radiotest.RecordingRxClient{}
	e.SetReceiveClient(rx)

	buf := make(radio.Buffer, 260)
	buf[radio.MimicPSDUOffset] = 17
	e.SetReceiveBuffer(buf)

	e.Sim().FireDisabled()
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}

	e.Sim().SetState(radio.RxIdle)
	e.Sim().SetCRCStatus(true)
	e.Sim().FireDisabled()
	e.Sim().FireEnd()
	e.HandleInterrupt()

	if len(rx.Calls) != 1 {
		t.Fatalf("got %d Receive calls, want 1", len(rx.Calls))
	}
	call := rx.Calls[0]
	if call.FrameLen != 15 {
		t.Errorf("frameLen = %d, want 15", call.FrameLen)
	}
	if !call.CRCOK || call.Err != nil {
		t.Errorf("got crcOK=%v err=%v, want true, nil", call.CRCOK, call.Err)
	}
}

func TestEngine_ReceiveCRCFail(t *testing.T) {
	e, _ := radiotest.NewEngine()
	rx := &radiotest.RecordingRxClient{}
	e.SetReceiveClient(rx)

	buf := make(radio.Buffer, 260)
	buf[radio.MimicPSDUOffset] = 17
	e.SetReceiveBuffer(buf)

	e.Sim().FireDisabled()
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}

	e.Sim().SetState(radio.RxIdle)
	e.Sim().SetCRCStatus(false)
	e.Sim().FireDisabled()
	e.Sim().FireEnd()
	e.HandleInterrupt()

	if len(rx.Calls) != 1 {
		t.Fatalf("got %d Receive calls, want 1", len(rx.Calls))
	}
	call := rx.Calls[0]
	if call.CRCOK {
		t.Error("expected crcOK=false")
	}
	if !errors.Is(call.Err, radio.ErrFail) {
		t.Errorf("got err %v, want ErrFail", call.Err)
	}
}

func TestEngine_SetChannelRejectsOutOfRange(t *testing.T) {
	e, _ := radiotest.NewEngine()
	if err := e.SetChannel(10); !errors.Is(err, radio.ErrNotSupported) {
		t.Fatalf("got %v, want ErrNotSupported", err)
	}
	if err := e.SetChannel(26); err != nil {
		t.Fatalf("channel 26 should be accepted: %v", err)
	}
	e.Sim().FireDisabled()
	if err := e.ConfigCommit(); err != nil {
		t.Fatal(err)
	}
	if got := e.Sim().Frequency(); got != 80 {
		t.Errorf("FREQUENCY = %d, want 80", got)
	}
}

func TestEngine_RandomNonceDeterministic(t *testing.T) {
	a, _ := radiotest.NewEngine()
	b, _ := radiotest.NewEngine()
	for i := 0; i < 3; i++ {
		if got, want := a.RandomNonce(), b.RandomNonce(); got != want {
			t.Fatalf("iteration %d: got %#x, want %#x", i, got, want)
		}
	}
}
