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

import "device/rp"

// Sources measurable by the on-chip frequency counter (datasheet §2.15.7,
// FC0_SRC values).
const (
	FCSrcPLLSys  = 0x01
	FCSrcPLLUSB  = 0x02
	FCSrcXOSC    = 0x05
	FCSrcClkSys  = 0x09
	FCSrcClkPeri = 0x0a
	FCSrcClkUSB  = 0x0b
	FCSrcClkAdc  = 0x0c
)

/*
MeasureClockKHz runs the CLOCKS block's built-in frequency counter against
the chosen source and returns the result in kHz. The counter times the
source against clk_ref, so it measures what the hardware really produces
rather than what we programmed, which makes it the cheap way to confirm a
PLL configuration took effect. One measurement occupies the counter for
2^interval microseconds; this uses ~1ms for roughly 1kHz resolution.

The counter is a single shared resource with no arbitration; don't call
this from more than one goroutine.
*/
func MeasureClockKHz(src uint32) uint32 {
	c := rp.CLOCKS
	for c.FC0_STATUS.HasBits(rp.CLOCKS_FC0_STATUS_RUNNING) {
	}
	c.FC0_REF_KHZ.Set(12_000) // clk_ref runs straight off the crystal
	c.FC0_MIN_KHZ.Set(0)
	c.FC0_MAX_KHZ.Set(0x1ffffff)
	c.FC0_INTERVAL.Set(10)
	c.FC0_DELAY.Set(3)
	c.FC0_SRC.Set(src) // writing the source starts the measurement
	for !c.FC0_STATUS.HasBits(rp.CLOCKS_FC0_STATUS_DONE) {
	}
	r := c.FC0_RESULT.Get() >> rp.CLOCKS_FC0_RESULT_KHZ_Pos
	c.FC0_SRC.Set(0)
	return r
}
