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

import (
	"errors"
	"fmt"
	"math"
)

// RefClock holds divider settings for a Si5351 clock generator used as an
// external bench reference when checking what the system PLL actually
// produces. The chip synthesizes xtal * (PLLMul + PLLNum/PLLDenom) /
// (Div + DivNum/DivDenom) / R.
type RefClock struct {
	PLLMul   uint32 // feedback integer part, 15..90
	PLLNum   uint32
	PLLDenom uint32
	Div      uint32 // multisynth integer part
	DivNum   uint32
	DivDenom uint32
	R        uint32  // final power-of-two divider, 1..128
	OutHz    float64 // frequency actually produced
	ErrHz    float64 // request minus OutHz
}

const refDenomMax = 1 << 20 // both fractional denominators are 20-bit fields

/*
RefClockSettings computes Si5351 dividers that produce outHz from a crystal
of xtalHz. The chip's internal PLL must sit between 600 and 900MHz; outputs
above 150MHz force an integer relationship, and low outputs are reached by
doubling the R divider until the multisynth ratio falls inside its 2048
limit. Fractional parts come from NearestFraction so the output lands as
close to the request as the 20-bit denominators allow.
*/
func RefClockSettings(xtalHz, outHz float64) (RefClock, error) {
	if xtalHz < 10e6 || xtalHz > 27e6 {
		return RefClock{}, errors.New("refclock: invalid crystal frequency")
	}
	if outHz > 200e6 {
		return RefClock{}, errors.New("refclock: output frequency > 200MHz")
	}

	var pllHz float64
	switch {
	case outHz > 150e6:
		pllHz = 4 * outHz
	case outHz >= 100e6:
		pllHz = 6 * outHz
	case outHz < 5e6:
		pllHz = 600e6
	default:
		pllHz = 800e6
	}

	z := pllHz / xtalHz
	if z < 15 || z > 90 {
		return RefClock{}, fmt.Errorf("refclock: feedback ratio %.2f out of range", z)
	}
	b, c, _ := NearestFraction(uint64(z*1e12), 1_000_000_000_000, refDenomMax)
	r := RefClock{
		PLLMul:   uint32(b / c),
		PLLNum:   uint32(b % c),
		PLLDenom: uint32(c),
	}

	pllActual := xtalHz * (float64(r.PLLMul) + float64(r.PLLNum)/float64(r.PLLDenom))
	z = pllActual / outHz
	// The multisynth only divides by 4, 6, or anything from 8 up. The
	// tolerance absorbs the wobble the fractional feedback approximation
	// puts on a ratio that is pinned to exactly 4 or 6.
	if !near(z, 4, 1e-6) && !near(z, 6, 1e-6) && z < 8 {
		return RefClock{}, fmt.Errorf("refclock: multisynth ratio %.3f not usable", z)
	}
	r.R = 1
	for z/float64(r.R) > 2048 && r.R <= 128 {
		r.R *= 2
	}
	if r.R > 128 {
		return RefClock{}, errors.New("refclock: output frequency too low for R divider")
	}
	b, c, _ = NearestFraction(uint64(z*1e12/float64(r.R)), 1_000_000_000_000, refDenomMax)
	r.Div = uint32(b / c)
	r.DivNum = uint32(b % c)
	r.DivDenom = uint32(c)

	r.OutHz = pllActual / (float64(r.Div) + float64(r.DivNum)/float64(r.DivDenom)) / float64(r.R)
	r.ErrHz = outHz - r.OutHz
	if math.Abs(r.ErrHz)/outHz > 1e-7 {
		return RefClock{}, fmt.Errorf("refclock: residual error %.4fHz too large", r.ErrHz)
	}
	return r, nil
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
