// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

import "time"

// BackoffPeriod is one CSMA-CA backoff unit: 20 symbol times at the 250
// kbit/s O-QPSK rate used by 802.15.4 in the 2.4 GHz band.
const BackoffPeriod = 320 * time.Microsecond

// AckTime is the symbol-time constant for an 802.15.4 acknowledgement frame.
// Kept as a named constant for a future ACK implementation; this driver
// never transmits or validates ACKs (see FRAMESTART handling in engine.go).
const AckTime = 512 * time.Microsecond

// AlarmClient receives the one-shot callback scheduled through Alarm.
// Engine implements this interface to resume a CSMA-CA retry.
type AlarmClient interface {
	AlarmFired()
}

// Alarm is the sub-millisecond one-shot timer this driver depends on but
// does not implement. A real board wires this to its alarm/timer
// peripheral; tests use radiotest's fake.
type Alarm interface {
	// SetAlarmClient registers the callback target. Called once, before the
	// first SetAlarm.
	SetAlarmClient(c AlarmClient)
	// SetAlarm schedules c.AlarmFired to run after d elapses, replacing any
	// previously scheduled alarm.
	SetAlarm(d time.Duration)
}
