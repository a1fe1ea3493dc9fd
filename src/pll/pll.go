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

package pll

// Range is a closed interval of divider values.
type Range struct {
	Min, Max int
}

/*
Params describes the fixed constraints of a PLL for one chip family: the
crystal frequency feeding it, the lowest reference frequency the phase
detector accepts, the band the VCO can lock in, and the legal settings of
the three divider registers. All frequencies are in Hz.

The values never change while the device runs; they are compiled in and
passed to Search explicitly so the engine can be exercised against other
hardware in tests.
*/
type Params struct {
	InputHz  uint64
	RefMinHz uint64
	VCOMinHz uint64
	VCOMaxHz uint64
	RefDiv   Range
	FBDiv    Range
	PostDiv  Range
}

// DefaultParams returns the constraints of the RP2040 system PLL: a 12MHz
// crystal, 5MHz minimum reference, and a VCO that locks between 750MHz and
// 1600MHz (RP2040 datasheet §2.18).
func DefaultParams() Params {
	return Params{
		InputHz:  12_000_000,
		RefMinHz: 5_000_000,
		VCOMinHz: 750_000_000,
		VCOMaxHz: 1_600_000_000,
		RefDiv:   Range{1, 63},
		FBDiv:    Range{16, 320},
		PostDiv:  Range{1, 7},
	}
}

// Config holds the four divider register values that produce one output
// frequency. By construction PostDiv1 >= PostDiv2; the larger divider must
// come first in the cascade.
type Config struct {
	RefDiv   uint8
	FBDiv    uint16
	PostDiv1 uint8
	PostDiv2 uint8
}

// Evaluated is a Config together with the frequencies it produces and its
// distance from the requested output. Values are never mutated once
// computed.
type Evaluated struct {
	Config
	RefHz uint64 // input / RefDiv
	VCOHz uint64 // RefHz * FBDiv
	OutHz uint64 // VCOHz / (PostDiv1 * PostDiv2)
	ErrHz uint64 // |OutHz - target|
}

// Evaluate recomputes the frequencies a configuration produces under the
// given constraints, relative to targetHz. The divisions truncate, exactly
// as in Search.
func Evaluate(c Config, p Params, targetHz uint64) Evaluated {
	ref := p.InputHz / uint64(c.RefDiv)
	vco := ref * uint64(c.FBDiv)
	out := vco / (uint64(c.PostDiv1) * uint64(c.PostDiv2))
	return Evaluated{
		Config: c,
		RefHz:  ref,
		VCOHz:  vco,
		OutHz:  out,
		ErrHz:  absDiff(out, targetHz),
	}
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
