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

/*
NearestFraction finds the best approximation c/d ≈ a/b with d <= maxDenom.
Returns c, d and the error a/b - c/d as floating point.

The approximation comes from expanding a/b as a continued fraction and
cutting it off just before the denominator of its rational value would
exceed maxDenom. Truncated continued fractions are the best rational
approximations available for a given denominator bound, which matters for
dividers of the form a + b/c with a large denominator field: the Si5351
reference generator used on the bench takes c up to 2^20, and picking the
nearest fraction instead of pinning c at its maximum keeps the output within
a millihertz of the request instead of within half a hertz.
*/
func NearestFraction(a, b, maxDenom uint64) (c, d uint64, eps float64) {
	c, d = continuedFraction(a, b, 0, 1, maxDenom)
	eps = float64(a)/float64(b) - float64(c)/float64(d)
	return c, d, eps
}

/*
continuedFraction computes a rational approximation of a/b by recursive
continued-fraction expansion. Any rational a/b can be written

	cf(a, b) = floor(a/b) + rem(a/b) / b

and the second term inverts to give

	cf(a, b) = floor(a/b) + 1 / cf(b, rem(a/b))

The recursion stops when the denominator of the accumulated rational value
would exceed maxDenom; e and f carry the two previous denominators needed to
detect that (start them at 0 and 1).
*/
func continuedFraction(a, b, e, f, maxDenom uint64) (c, d uint64) {
	term := a / b
	denom := f + term*e
	if denom > maxDenom {
		return 1, 0
	}
	ax := a - term*b
	if ax == 0 {
		return term, 1
	}
	// a/b = term + ax/b = term + 1/cf(b, ax); with cx/dx = cf(b, ax)
	// a/b = term + dx/cx = (term*cx + dx) / cx
	cx, dx := continuedFraction(b, ax, denom, e, maxDenom)
	return term*cx + dx, cx
}

// ClockDiv converts a desired division ratio srcHz/outHz into the whole and
// fractional parts of an int.frac8 divider register, rounded to the nearest
// representable 1/256. outHz must not exceed srcHz (the divider cannot
// multiply) and the whole part must fit the register; ok reports whether
// the ratio was representable at all.
func ClockDiv(srcHz, outHz uint64, maxWhole uint32) (whole uint32, frac uint8, ok bool) {
	if outHz == 0 || outHz > srcHz {
		return 0, 0, false
	}
	fixed := ((srcHz << 8) + outHz/2) / outHz
	if fixed>>8 > uint64(maxWhole) {
		return 0, 0, false
	}
	return uint32(fixed >> 8), uint8(fixed & 0xff), true
}
