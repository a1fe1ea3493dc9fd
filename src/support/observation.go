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

package support

/*
ReduceObservation combines reads of a split counter into one consistent
64-bit value. The RP2040's microsecond timer exposes its raw count as two
32-bit halves that cannot be read in the same cycle, so the high half is
sampled before and after the low half. If the two high reads agree, no
carry happened anywhere near the low read and the pair (th1, tl1) is
consistent as it stands. If they disagree, exactly one carry happened in
between: a small tl1 must have been read after the carry (pair it with the
newer high word), a large tl1 before it (pair it with the older one).

This assumes the low half advances by much less than half its range during
the observation, which holds by many orders of magnitude for registers read
back-to-back by the CPU.
*/
func ReduceObservation(scale uint64, th1 uint32, tl1 uint32, th2 uint32, tl2 uint32) uint64 {
	if th1 == th2 {
		return uint64(th1)*scale + uint64(tl1)
	}
	if tl1 < tl2 {
		// no rollover between the low reads, so both came after the carry
		return uint64(th2)*scale + uint64(tl1)
	}
	// tl1 was read before the carry
	return uint64(th1)*scale + uint64(tl1)
}
