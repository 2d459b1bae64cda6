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

import "math"

// reduced is the outcome of range-reducing a finite x: x == k*(pi/256) +
// (yh+yl) mathematically, with |yh+yl| <= pi/512*(1+2^-52). octant and
// index are derived from k by the caller (see index/quadrant below).
type reduced struct {
	k int64
	y dd
}

// index returns (k & 127) << 2, the table-lookup index into the 65-entry
// sin/cos table (after the standard i<=64 vs i>64 reflection applied by
// lookup in coeff_table.go operates on index>>2).
func (r reduced) index() int {
	return int(r.k&127) << 2
}

// quadrant returns (k >> 7) & 3, selecting which of the four quarter-turn
// sign/swap rules applies during reconstruction in eval.go.
func (r reduced) quadrant() int {
	return int(r.k>>7) & 3
}

// reduceCW2 implements regime 1: two-constant Cody-Waite reduction, valid
// for |x| < xmaxCW2. Exact except for the final kd*cw2Ch subtraction.
func reduceCW2(x float64) reduced {
	k := math.Round(x * invPio256)
	kd := k
	yh, yl := twoSum(x-kd*cw2Ch, -kd*cw2Cl)
	return reduced{k: int64(k), y: dd{yh, yl}}
}

// reduceDD implements regime 2: double-double reduction using the
// three-piece split of pi/256 (ddCh, ddCm, ddCl), valid for
// xmaxCW2 <= |x| < xmaxDDRR.
func reduceDD(x float64) reduced {
	k := math.Round(x * invPio256)
	kd := k

	p1h, p1e := twoProd(kd, ddCh)
	p2h, p2e := twoProd(kd, ddCm)

	acc := ddAdd(dd{x, 0}, dd{-p1h, -p1e})
	acc = ddAdd(acc, dd{-p2h, -p2e})
	acc = ddAdd(acc, dd{-kd * ddCl, 0})

	// x*invPio256 is rounded to binary64, so for large |x| k can miss the
	// nearest integer; one more step brings the residue into range. k is
	// kept mod 512, all that index and quadrant read.
	kmod := math.Mod(k, 512)
	if c := math.Round(acc.hi * invPio256); c != 0 {
		c1h, c1e := twoProd(c, ddCh)
		c2h, c2e := twoProd(c, ddCm)
		acc = ddAdd(acc, dd{-c1h, -c1e})
		acc = ddAdd(acc, dd{-c2h, -c2e})
		acc = ddAdd(acc, dd{-c * ddCl, 0})
		kmod += c
	}
	return reduced{k: int64(kmod), y: acc}
}

// reduce dispatches across the three regimes of 4.3, applying the
// index==0 escalation rule: a fast/DD reduction landing exactly on a
// table boundary (index==0) is escalated to the next tier, since the
// reconstruction there has no table contribution to absorb reduction
// error. Regime 3 (Payne-Hanek) is implemented in reduce_slow.go.
func reduce(x float64) reduced {
	requireFinite("reduce", x)
	ax := math.Abs(x)

	if ax < xmaxCW2 {
		r := reduceCW2(x)
		if r.index() != 0 {
			return r
		}
		// Escalate to DD reduction; fall through to regime-2 logic below
		// (by the spec's own escalation rule, regime 2 never needs
		// further escalation check on this path because |x| < xmaxCW2
		// < xmaxDDRR, but we must still re-check index after escalating
		// per "regime 2 always escalates to regime 3 when index==0").
		r2 := reduceDD(x)
		if r2.index() != 0 {
			return r2
		}
		return reducePayneHanek(x)
	}

	if ax < xmaxDDRR {
		r := reduceDD(x)
		if r.index() != 0 {
			return r
		}
		return reducePayneHanek(x)
	}

	return reducePayneHanek(x)
}
