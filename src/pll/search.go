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
Search enumerates every divider combination allowed by p and returns the one
whose output frequency is closest to targetHz, or ok == false if nothing in
the space comes acceptably close.

The search walks the reference divider upward, the feedback divider downward,
and the two post dividers upward with PostDiv2 never exceeding PostDiv1.
A candidate displaces the running best only on strictly smaller error, so
among equal-error solutions the first one found wins: the one with the
highest VCO frequency (less phase noise at the output) and then the smallest
post-divider values. The error bound starts at targetHz itself, so a
configuration that misses by as much as the whole requested frequency is not
a solution; targets below everything the post dividers can reach come back
as absence rather than as a wild nearest value.

Absence is an expected outcome, not an error: the caller decides whether to
fall back or reject the request. All arithmetic is integer Hz; the output
division truncates.
*/
func Search(targetHz uint64, p Params) (best Evaluated, ok bool) {
	bestErr := targetHz
	for rd := p.RefDiv.Min; rd <= p.RefDiv.Max; rd++ {
		ref := p.InputHz / uint64(rd)
		if ref < p.RefMinHz {
			// the reference only drops from here on
			break
		}
		for fb := p.FBDiv.Max; fb >= p.FBDiv.Min; fb-- {
			vco := ref * uint64(fb)
			if vco > p.VCOMaxHz {
				continue
			}
			if vco < p.VCOMinHz {
				// descending feedback divider, the VCO only drops too
				break
			}
			for pd1 := p.PostDiv.Min; pd1 <= p.PostDiv.Max; pd1++ {
				for pd2 := p.PostDiv.Min; pd2 <= pd1; pd2++ {
					out := vco / uint64(pd1*pd2)
					err := absDiff(out, targetHz)
					if err >= bestErr {
						continue
					}
					bestErr = err
					best = Evaluated{
						Config: Config{
							RefDiv:   uint8(rd),
							FBDiv:    uint16(fb),
							PostDiv1: uint8(pd1),
							PostDiv2: uint8(pd2),
						},
						RefHz: ref,
						VCOHz: vco,
						OutHz: out,
						ErrHz: err,
					}
					ok = true
					if err == 0 {
						// nothing can beat an exact match
						return best, true
					}
				}
			}
		}
	}
	return best, ok
}

// ForFrequencyKHz is the boundary used by callers that hold a frequency
// literal in kHz, the unit clock registers are usually quoted in. A zero
// frequency is rejected outright; everything else is attempted under the
// RP2040 constraints.
func ForFrequencyKHz(khz uint32) (Evaluated, bool) {
	if khz == 0 {
		return Evaluated{}, false
	}
	return Search(uint64(khz)*1000, DefaultParams())
}
