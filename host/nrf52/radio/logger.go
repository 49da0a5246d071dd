// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package radio

import "log"

// Logger receives low-volume diagnostic lines: CSMA-CA backoffs and
// exhaustion, and wait errors inside the interrupt handler. Peripheral state
// changes are not logged. The default is silent; set Engine.Logger to trace
// a stuck link.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything. It is Engine's default Logger.
type NopLogger struct{}

// Printf implements Logger.
func (NopLogger) Printf(string, ...interface{}) {}

// StdLogger adapts the standard library's *log.Logger to Logger.
type StdLogger struct {
	*log.Logger
}
