// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mmio

// NewFake returns a Slice backed by a plain Go allocation, for binding a
// register struct in tests without touching real memory.
func NewFake(size int) Slice {
	return make(Slice, size)
}
