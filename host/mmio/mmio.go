// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mmio binds a Go struct directly onto a memory-mapped peripheral
// register block.
//
// Unlike periph's host/pmem, which maps a window of physical memory into a
// Linux process' address space via /dev/mem or /dev/gpiomem, this package
// targets bare-metal firmware: there is no MMU window to open, the
// peripheral's registers already live at a fixed physical address visible to
// every core. Map simply reinterprets that address as a []byte of the
// requested size; Slice.Bind then does the same reflection trick pmem.Slice
// used to let a typed register struct alias the raw bytes, so that a field
// write in Go compiles to the exact volatile store the hardware expects.
package mmio

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

// Slice is a fixed-size byte window that can be viewed as a typed register
// struct. It carries no allocation of its own: the backing array is either a
// real MMIO window (Map) or a fake peripheral for tests (NewFake).
type Slice []byte

// Bind makes pp (a **T, with *T nil) alias this Slice's backing memory.
//
// pp must be a pointer to a pointer to a struct and the pointee pointer must
// be nil. Returns an error otherwise. After Bind, every field read or write
// through *pp happens directly in s's memory; there is no copy and no
// caching, so callers must perform their own volatile-style discipline
// (single writer, one write per intended register access).
func (s *Slice) Bind(pp reflect.Value) error {
	if k := pp.Kind(); k != reflect.Ptr {
		return fmt.Errorf("mmio: require Ptr, got %s", k)
	}
	if pp.IsNil() {
		return errors.New("mmio: require Ptr to be valid")
	}
	p := pp.Elem()
	if k := p.Kind(); k != reflect.Ptr {
		return fmt.Errorf("mmio: require Ptr to Ptr, got %s", k)
	}
	if !p.IsNil() {
		return errors.New("mmio: require Ptr to Ptr to be nil")
	}
	t := p.Type().Elem()
	if k := t.Kind(); k != reflect.Struct {
		return fmt.Errorf("mmio: require Ptr to Ptr to a struct, got Ptr to Ptr to %s", k)
	}
	if size := int(t.Size()); size > len(*s) {
		return fmt.Errorf("mmio: can't bind struct %s (size %d) on [%d]byte", t, size, len(*s))
	}
	dest := unsafe.Pointer(&(*s)[0])
	p.Set(reflect.NewAt(t, dest))
	return nil
}

// Map reinterprets the physical address base as a Slice of the given size.
//
// This is only valid on a platform where base is a real, always-resident
// MMIO region (no page tables to set up, no cache line to invalidate beyond
// what the peripheral's bus already guarantees). Calling Map on an address
// that isn't backed by a peripheral will fault the first time the memory is
// touched.
func Map(base uintptr, size int) Slice {
	var s []byte
	h := (*reflect.SliceHeader)(unsafe.Pointer(&s))
	h.Data = base
	h.Len = size
	h.Cap = size
	return s
}
