/*
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package crtrig

// Thresholds and constants for the three-tier argument reduction scheme
// (see reduce.go). All splits of pi/256 and 256/pi below are generated
// offline from a 400-digit decimal evaluation, the same way the table in
// coeff_table.go was produced, and are ported here as the dedicated
// "generated numeric data" file, mirroring the teacher's testdata-file
// convention.

const (
	// xmaxCW2 bounds the regime where two-term Cody-Waite reduction (one
	// binary64 multiply-subtract against each of cw2Ch/cw2Cl) keeps enough
	// bits of cancellation to be trustworthy.
	xmaxCW2 = 0x1p45

	// xmaxDDRR bounds the regime where three-term double-double reduction
	// (ddCh/ddCm/ddCl) is trustworthy. Beyond this, only full Payne-Hanek
	// multi-word reduction (reduce_slow.go) is valid.
	xmaxDDRR = 0x1p79
)

// Two-term Cody-Waite split of pi/256, each term truncated to fit
// exactly so that x*cw2Ch is computed without rounding for |x| < xmaxCW2.
const (
	cw2Ch = 0x1.921fb54400000p-7
	cw2Cl = 0x1.0b4611a626331p-41
)

// Three-term Cody-Waite split of pi/256; each of ch/cm is truncated to 21
// bits. No reduction tier reads it: the double-double reduction in
// reduce.go uses ddCh/ddCm/ddCl below.
const (
	cw3Ch = 0x1.921fb00000000p-7
	cw3Cm = 0x1.5110b00000000p-29
	cw3Cl = 0x1.18469898cc517p-51
)

// Full double-double split of pi/256: ddCh+ddCm exactly represents the
// double-double high part, ddCl is the residual correction term used by
// the three-term DD reduction in reduce.go.
const (
	ddCh = 0x1.921fb54442d18p-7
	ddCm = 0x1.1a62633145c07p-61
	ddCl = -0x1.f1976b7ed8fbcp-117
)

// invPio256 is 256/pi rounded to nearest binary64, the multiplier used to
// get a first estimate of the reduced index before any correction terms
// are subtracted.
const invPio256 = 0x1.45f306dc9c883p+6

// invPio256Digits holds the base-2^30 digits of 256/pi, most-significant
// word first, used by the Payne-Hanek multi-word reducer in
// reduce_slow.go. Digit i contributes invPio256Digits[i] * 2^(30*(n-1-i))
// relative to a binary point 1300 bits to the right of the first digit;
// equivalently, treating the array as a big fixed-point fraction gives
// 256/pi to roughly 1300 bits of precision, far more than any binary64
// exponent can demand of the reducer.
var invPio256Digits = [44]uint32{
	0x000145f3, 0x01b72722, 0x02a53f84, 0x3abe8fa9, 0x29bb81b6, 0x314acc9e, 0x0872083f, 0x328b1d5e,
	0x3d778ac3, 0x1b92371d, 0x0849ba5c, 0x00324977, 0x1413a324, 0x0e7f0ef5, 0x23962534, 0x39f74411,
	0x2bea5d76, 0x224274ce, 0x0e04d68b, 0x3bf209cc, 0x23ac7306, 0x299cfa4e, 0x108bf177, 0x2fc941d8,
	0x3ff12fff, 0x2f02cc07, 0x3de5e231, 0x1ad05368, 0x3eda6cfd, 0x2793e584, 0x36e9e8c7, 0x3b34f2ff,
	0x145aea4f, 0x1d63f5f2, 0x3e2f67a0, 0x39cfbc52, 0x2525d4d7, 0x3dafd88f, 0x31aba10a, 0x30198237,
	0x38f6d757, 0x3867de10, 0x135e86c3, 0x2d4f1c8b,
}

// invPio256DigitsBinPoint is the number of bits separating the binary
// point from the start of invPio256Digits: invPio256Digits, read as an
// unsigned fixed-point fraction with this many fractional bits, equals
// 256/pi.
const invPio256DigitsBinPoint = 1300

// Rounding-test thresholds. roundCstRN is the amplifying constant used by
// roundTestRN (roundtest.go): rh+rl*roundCstRN is computed in binary64, and
// equals rh only when rl is far enough from the rounding boundary
// ulp(rh)/2 that the proven error bound of the dd evaluation cannot flip
// the rounding decision. It must be an amplifying constant on the order of
// 2^52, not a sub-unity one - a sub-unity value makes rl*roundCstRN too
// small to ever perturb rh, so the test would falsely certify boundary
// cases. roundCstDir and the tan-specific constants below use the other,
// "shrinking threshold" test form (see eval.go) and are unaffected by this.
// These are pragmatic, conservatively chosen margins rather than
// Gappa-proof-derived bounds (see DESIGN.md, Open Question: rounding-test
// constants).
const (
	roundCstRN     = 0x1.0p+52
	roundCstDir    = 0x1.0p-63
	rnCstTanCase21 = 0x1.0p-61
	rnCstTanCase22 = 0x1.0p-67
)
