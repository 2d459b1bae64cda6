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

// Small-x fast-path thresholds (4.4): below these magnitudes the
// reduction pipeline is skipped entirely because the polynomial alone
// (or, below the smallest threshold, the identity itself) already meets
// the target accuracy.
const (
	xmaxReturnXForSin = 0x1p-27
	xmaxReturn1ForCos = 0x1.6a09e6p-27 // sqrt(2^-53) scale, cos(x)=1 region
	xmaxSinCase2      = 0x1p-7
	xmaxTanCase2      = 0x1p-7
)

// dispatch runs the shared core shape of all twelve entry points:
// special-value filter, small-x fast paths, then reduction plus
// evaluation guarded by the rounding test, falling back to the slow path
// collaborator on failure to certify.
func dispatch(x float64, fn function, mode Mode) float64 {
	if isNaNOrInf(x) {
		return x - x
	}
	if x == 0 {
		return zeroResult(x, fn)
	}

	if r, ok := smallXFastPath(x, fn, mode); ok {
		return r
	}

	red := reduce(x)
	var ev evalResult
	switch fn {
	case fnSin:
		ev = evalSin(red)
	case fnCos:
		ev = evalCos(red)
	case fnTan:
		ev = evalTan(red)
	}

	rh, rl := ev.r.hi, ev.r.lo
	if ev.changesign {
		rh, rl = -rh, -rl
	}

	if res, ok := roundTest(rh, rl, mode); ok {
		return res
	}

	countSlowPath()
	return activeSlowPath.Eval(x, fn, mode)
}

// zeroResult implements the signed-zero/one special cases: sin(+-0) =
// +-0, cos(+-0) = 1 exactly regardless of mode (§8 scenario 10: the zero
// short-circuit returns the bit-exact value, never a directed neighbor),
// tan(+-0) = +-0.
func zeroResult(x float64, fn function) float64 {
	if fn == fnCos {
		return 1
	}
	return x
}

// smallXFastPath implements the bypass-reduction tiers of 4.4. Returns
// ok=false when x is too large for any of these shortcuts and the full
// reduction pipeline must run.
func smallXFastPath(x float64, fn function, mode Mode) (float64, bool) {
	ax := math.Abs(x)

	switch fn {
	case fnSin, fnTan:
		if ax < xmaxReturnXForSin {
			return directedIdentity(x, fn, mode), true
		}
	case fnCos:
		if ax < xmaxReturn1ForCos {
			return directedOne(mode), true
		}
	}

	tier2 := xmaxSinCase2
	if fn == fnTan {
		tier2 = xmaxTanCase2
	}
	if ax >= tier2 {
		return 0, false
	}

	if fn == fnTan {
		if res, ok := tanCase2(x); ok {
			if r, ok := roundTest(res.hi, res.lo, mode); ok {
				return r, true
			}
		}
		if res, ok := tanCase2Refined(x); ok {
			if r, ok := roundTest(res.hi, res.lo, mode); ok {
				return r, true
			}
		}
	}

	ts, tc := polyPhase(x)
	var rh, rl float64
	switch fn {
	case fnSin:
		res := ddAdd(dd{x, 0}, dd{ts * x, 0})
		rh, rl = res.hi, res.lo
	case fnCos:
		res := ddAdd(dd{1, 0}, dd{tc, 0})
		rh, rl = res.hi, res.lo
	case fnTan:
		s := ddAdd(dd{x, 0}, dd{ts * x, 0})
		c := ddAdd(dd{1, 0}, dd{tc, 0})
		res := ddDiv(s, c)
		rh, rl = res.hi, res.lo
	}

	if res, ok := roundTest(rh, rl, mode); ok {
		return res, true
	}
	countSlowPath()
	return activeSlowPath.Eval(x, fn, mode), true
}

// directedIdentity returns x itself for RN, or the mode-appropriate
// neighbor of x for directed modes, matching the "sin(x)=x (or x+-ulp)"
// contract of 4.4 for |x| below xmaxReturnXForSin. For such nonzero x,
// |tan(x)| is slightly above |x| and |sin(x)| slightly below it.
func directedIdentity(x float64, fn function, mode Mode) float64 {
	if mode == ToNearestEven || x == 0 {
		return x
	}
	awayFromZero := fn == fnTan
	switch mode {
	case TowardPositive:
		if (x > 0) == awayFromZero {
			return nextUp(x)
		}
		return x
	case TowardNegative:
		if (x < 0) == awayFromZero {
			return nextDown(x)
		}
		return x
	case TowardZero:
		if awayFromZero {
			return x
		}
		if x > 0 {
			return nextDown(x)
		}
		return nextUp(x)
	}
	return x
}

// directedOne returns 1 for RN, or the mode-appropriate neighbor of 1
// for directed modes, matching the "cos(x)=1 (or neighbor)" contract.
func directedOne(mode Mode) float64 {
	switch mode {
	case TowardNegative, TowardZero:
		return nextDown(1)
	default:
		return 1
	}
}

// Sin returns sin(x) correctly rounded to nearest, ties to even.
func Sin(x float64) float64 { return dispatch(x, fnSin, ToNearestEven) }

// SinRoundUp returns sin(x) correctly rounded toward positive infinity.
func SinRoundUp(x float64) float64 { return dispatch(x, fnSin, TowardPositive) }

// SinRoundDown returns sin(x) correctly rounded toward negative infinity.
func SinRoundDown(x float64) float64 { return dispatch(x, fnSin, TowardNegative) }

// SinRoundZero returns sin(x) correctly rounded toward zero.
func SinRoundZero(x float64) float64 { return dispatch(x, fnSin, TowardZero) }

// Cos returns cos(x) correctly rounded to nearest, ties to even.
func Cos(x float64) float64 { return dispatch(x, fnCos, ToNearestEven) }

// CosRoundUp returns cos(x) correctly rounded toward positive infinity.
func CosRoundUp(x float64) float64 { return dispatch(x, fnCos, TowardPositive) }

// CosRoundDown returns cos(x) correctly rounded toward negative infinity.
func CosRoundDown(x float64) float64 { return dispatch(x, fnCos, TowardNegative) }

// CosRoundZero returns cos(x) correctly rounded toward zero.
func CosRoundZero(x float64) float64 { return dispatch(x, fnCos, TowardZero) }

// Tan returns tan(x) correctly rounded to nearest, ties to even.
func Tan(x float64) float64 { return dispatch(x, fnTan, ToNearestEven) }

// TanRoundUp returns tan(x) correctly rounded toward positive infinity.
func TanRoundUp(x float64) float64 { return dispatch(x, fnTan, TowardPositive) }

// TanRoundDown returns tan(x) correctly rounded toward negative infinity.
func TanRoundDown(x float64) float64 { return dispatch(x, fnTan, TowardNegative) }

// TanRoundZero returns tan(x) correctly rounded toward zero.
func TanRoundZero(x float64) float64 { return dispatch(x, fnTan, TowardZero) }
