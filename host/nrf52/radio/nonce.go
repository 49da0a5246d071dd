// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

// nonceSeed is the fixed seed every engine's xorshift generator starts from.
// Determinism is a tested property: given this seed, the first few outputs
// must be reproducible across implementations.
const nonceSeed uint32 = 0xDEADBEEF

// xorshift32 is a minimal, non-cryptographic pseudo-random generator used
// only to pick a CSMA backoff window. It is not safe for concurrent use;
// the engine only calls it with Engine.mu held.
type xorshift32 struct {
	state uint32
}

func newXorshift32() *xorshift32 {
	return &xorshift32{state: nonceSeed}
}

// next advances and returns the generator's state: x ^= x<<13; x ^= x>>17;
// x ^= x<<5.
func (x *xorshift32) next() uint32 {
	v := x.state
	v ^= v << 13
	v ^= v >> 17
	v ^= v << 5
	x.state = v
	return v
}
