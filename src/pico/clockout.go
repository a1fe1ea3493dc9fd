//go:build rp2040

/*
 * Copyright 2026 The picopll authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package pico

import (
	"errors"
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"

	"picopll/src/pll"
)

//go:generate pioasm -o go squarewave.pio squarewave.go

var errClockOutRange = errors.New("clockout: frequency not reachable from clk_sys")

// ClockOut drives a square wave derived from clk_sys onto a pin, so the
// generated system clock can be put on a counter or a scope. One output
// period costs two state machine cycles; the state machine divider does the
// rest.
type ClockOut struct {
	sm pio.StateMachine
}

// NewClockOut claims sm for the square-wave program and attaches it to pin.
// The output is stopped until SetFrequency is called.
func NewClockOut(sm pio.StateMachine, pin machine.Pin) (*ClockOut, error) {
	sm.TryClaim()
	offset, err := sm.PIO().AddProgram(squarewaveInstructions, squarewaveOrigin)
	if err != nil {
		return nil, err
	}
	pin.Configure(machine.PinConfig{Mode: sm.PIO().PinMode()})
	sm.SetPindirsConsecutive(pin, 1, true)
	cfg := squarewaveProgramDefaultConfig(offset)
	cfg.SetSetPins(pin, 1)
	sm.Init(offset, cfg)
	return &ClockOut{sm: sm}, nil
}

// SetFrequency retunes the output to outHz. The reachable range runs from
// clk_sys/2 down to clk_sys/2 divided by the 16.8 state machine divider;
// in between, the nearest representable divider is used.
func (c *ClockOut) SetFrequency(outHz uint64) error {
	whole, frac, ok := pll.ClockDiv(SysClockHz(), 2*outHz, 0xffff)
	if !ok {
		return errClockOutRange
	}
	c.sm.SetEnabled(false)
	c.sm.SetClkDiv(uint16(whole), frac)
	c.sm.ClkDivRestart()
	c.sm.SetEnabled(true)
	return nil
}

// Stop disables the state machine, freezing the output pin.
func (c *ClockOut) Stop() {
	c.sm.SetEnabled(false)
}
