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

// evalResult is the dd approximation of a trig function before any final
// rounding-mode adjustment, together with the sign-flip flag the quadrant
// fold needs to apply.
type evalResult struct {
	r          dd
	changesign bool
}

// polyPhase computes the two polynomial approximations shared by every
// reconstruction path: ts approximates sin(y)/y-1, tc approximates
// cos(y)-1, both evaluated at yh (the high half of the reduced residue;
// yl only matters again once a sum is formed with full dd precision).
func polyPhase(yh float64) (ts, tc float64) {
	y2 := yh * yh
	ts = y2 * (s3 + y2*(s5+y2*s7))
	tc = y2 * (c2 + y2*(c4+y2*c6))
	return
}

// sinBranch reconstructs sin(k*pi/256 + y) ignoring quadrant sign, for
// the given reduced (k, yh, yl): the index==0 direct path when there is
// no table contribution, otherwise the table-plus-polynomial
// reconstruction of 4.4.
func sinBranch(r reduced, ts, tc float64) dd {
	yh, yl := r.y.hi, r.y.lo
	idx := r.index() >> 2
	if idx == 0 {
		return ddAdd(dd{yh, 0}, dd{yl + ts*yh, 0})
	}

	sah, sal, cah, cal := lookup(idx)
	cyh, cye := twoProd(cah, yh)
	thi, tlo0 := twoSum(sah, cyh)
	tlo := tc*sah + (ts*cyh + (sal + (tlo0 + (cye + (cal*yh + cah*yl)))))
	return ddAdd(dd{thi, 0}, dd{tlo, 0})
}

// cosBranch reconstructs cos(k*pi/256 + y) ignoring quadrant sign.
func cosBranch(r reduced, ts, tc float64) dd {
	yh, yl := r.y.hi, r.y.lo
	idx := r.index() >> 2
	if idx == 0 {
		return ddAdd(dd{1, 0}, dd{tc, 0})
	}

	sah, sal, cah, cal := lookup(idx)
	syh, sye := twoProd(sah, yh)
	thi, tlo0 := twoSum(cah, -syh)
	tlo := tc*cah - (ts*syh - (cal + (tlo0 - (sye + (sal*yh + sah*yl)))))
	return ddAdd(dd{thi, 0}, dd{tlo, 0})
}

// evalSin computes sin(x) for the given reduced argument via the
// quadrant fold of 4.4: sin_branch is used directly in quadrants 0/2 and
// cos_branch in quadrants 1/3, with changesign set for quadrants 2/3.
func evalSin(r reduced) evalResult {
	ts, tc := polyPhase(r.y.hi)
	q := r.quadrant()
	var res dd
	if q&1 == 0 {
		res = sinBranch(r, ts, tc)
	} else {
		res = cosBranch(r, ts, tc)
	}
	return evalResult{r: res, changesign: q == 2 || q == 3}
}

// evalCos computes cos(x) for the given reduced argument: cos_branch
// directly in quadrants 0/2, sin_branch in quadrants 1/3, changesign for
// quadrants 1/2.
func evalCos(r reduced) evalResult {
	ts, tc := polyPhase(r.y.hi)
	q := r.quadrant()
	var res dd
	if q&1 == 0 {
		res = cosBranch(r, ts, tc)
	} else {
		res = sinBranch(r, ts, tc)
	}
	return evalResult{r: res, changesign: q == 1 || q == 2}
}

// tanCase2 evaluates tan(y) for small y directly from the tangent-odd
// polynomial (t3h/t3l..t15), bypassing the sin/cos branches and their
// division, and reports whether the loose first-tier rounding constant
// (rnCstTanCase21) certifies the result.
func tanCase2(y float64) (dd, bool) {
	y2 := y * y
	poly := y2 * (t5 + y2*(t7+y2*(t9+y2*(t11+y2*(t13+y2*t15)))))
	th, tl0 := twoSum(y, y*y2*t3h)
	tl := tl0 + y*(y2*t3l+poly*y2)
	res := dd{th, tl}
	return res, absFloat(tl) <= rnCstTanCase21*absFloat(th)
}

// tanCase2Refined re-evaluates the same small-y approximation with the
// dominant t3 term carried through a full double-double product instead
// of a plain float64 one, certifying against the tighter second-tier
// constant (rnCstTanCase22) before the caller falls back to the full
// reduction pipeline.
func tanCase2Refined(y float64) (dd, bool) {
	y2 := y * y
	poly := y2 * (t5 + y2*(t7+y2*(t9+y2*(t11+y2*(t13+y2*t15)))))
	t3 := ddMul(dd{y2, 0}, dd{t3h, t3l})
	corr := ddAdd(t3, dd{poly * y2, 0})
	res := ddAdd(dd{y, 0}, ddMul(dd{y, 0}, corr))
	return res, absFloat(res.lo) <= rnCstTanCase22*absFloat(res.hi)
}

// evalTan computes tan(x) via dd_div of the sin and cos branches. In odd
// quadrants tan(x+pi/2) = -cot(x), so the two branches swap roles and the
// numerator is negated; no changesign flag is needed since the division
// itself carries the sign.
func evalTan(r reduced) evalResult {
	ts, tc := polyPhase(r.y.hi)
	q := r.quadrant()
	s := sinBranch(r, ts, tc)
	c := cosBranch(r, ts, tc)
	if q&1 != 0 {
		s, c = c, s
		s = ddNeg(s)
	}
	return evalResult{r: ddDiv(s, c), changesign: false}
}
