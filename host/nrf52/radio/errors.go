// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

import "errors"

// The error kinds that cross the driver boundary. Callers distinguish them
// with errors.Is.
var (
	// ErrBusy is returned when a transmit is requested while another is
	// already in flight, or when CSMA-CA exhausts its retry budget with the
	// channel still busy.
	ErrBusy = errors.New("radio: busy")

	// ErrSize is returned when the supplied frame would not fit in the
	// supplied buffer once the two-byte hardware CRC is accounted for.
	ErrSize = errors.New("radio: frame too large for buffer")

	// ErrNotSupported is returned by SetChannel/SetTxPower for an
	// out-of-enumeration value.
	ErrNotSupported = errors.New("radio: value not supported")

	// ErrFail is delivered to the receive client when the hardware reports
	// a CRC error on a received frame.
	ErrFail = errors.New("radio: CRC check failed")

	// ErrTimeout is returned by the bounded wait for the DISABLED event.
	// The original driver this was derived from spins forever here; this
	// implementation bounds the wait and reports failure instead of
	// hanging on a hardware fault.
	ErrTimeout = errors.New("radio: timed out waiting for peripheral")
)
