// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package physic declares the physical units used to describe the radio
// peripheral: channel center frequency.
//
// Frequency is kept as a S.I. unit type (micro Hertz resolution) so the
// value printed in logs and returned from Channel.Frequency() is
// unambiguous and matches the convention used across the periph tree for
// other physical quantities.
package physic
