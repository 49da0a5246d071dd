// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command radio-info brings up the radio driver registry and prints the
// engine's configuration.
//
// On real nRF52 firmware the engine would be bound to mmio.Map(0x40001000,
// ...) and wired to the board's actual alarm peripheral; there is no such
// physical memory to map on a hosted development machine, so this tool
// always drives the driver through radiotest's fake peripheral and fake
// alarm. It is meant to be read alongside the host/nrf52/radio package, not
// run against real hardware.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"periph.io/x/nrf52154"
	"periph.io/x/nrf52154/host/nrf52/radio"
	"periph.io/x/nrf52154/host/nrf52/radio/radiotest"
)

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "radio-info: %s.\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	verbose := flag.Bool("v", false, "verbose mode")
	channel := flag.Int("channel", 15, "802.15.4 channel, 11..26")
	txPower := flag.Int("tx-power", 0, "transmit power in dBm")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)

	engine, _ := radiotest.NewEngine()
	if *verbose {
		engine.Logger = radio.StdLogger{Logger: log.Default()}
	}
	if err := engine.SetChannel(*channel); err != nil {
		return err
	}
	if err := engine.SetTxPower(*txPower); err != nil {
		return err
	}

	// The fake peripheral never settles on its own; poke the event the
	// first (and only, in this demo) disable-wait is blocked on so
	// Initialize proceeds the way real hardware would within microseconds.
	engine.Sim().FireDisabled()

	periph.MustRegister(radioDriver{engine})
	state, err := periph.Init()
	if err != nil {
		return err
	}

	fmt.Printf("Using drivers:\n")
	for _, d := range state.Loaded {
		fmt.Printf("- %s\n", d)
	}
	fmt.Printf("Drivers failed to load:\n")
	for _, f := range state.Failed {
		fmt.Printf("- %s: %v\n", f.D, f.Err)
	}

	fmt.Printf("\nchannel:   %s\n", engine.Channel())
	fmt.Printf("tx power:  %s\n", engine.TxPower())
	fmt.Printf("state:     %s\n", engine.State())
	fmt.Printf("is on:     %v\n", engine.IsOn())
	return nil
}

// radioDriver adapts a pre-built *radio.Engine to periph.Driver.
type radioDriver struct {
	e *radio.Engine
}

func (d radioDriver) String() string             { return d.e.String() }
func (d radioDriver) Prerequisites() []string    { return nil }
func (d radioDriver) Init() (bool, error)        { return d.e.Init() }
