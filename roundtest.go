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

// roundTestRN is the round-to-nearest rounding test: if rh already
// absorbs rl*roundCstRN without changing under round-to-nearest, then
// rn(rh+rl) == rh exactly and rh is the correctly rounded answer. A
// false result means the test cannot certify and the caller must defer
// to the slow path.
func roundTestRN(rh, rl float64) (float64, bool) {
	test := rh + rl*roundCstRN
	if test == rh {
		return rh, true
	}
	return 0, false
}

// roundTestDirected implements the directed-mode rounding test of 4.5:
// given rh is far enough from the next binary64 boundary (as measured by
// |rl| against an ulp-scaled epsilon), the sign of rl alone determines
// the correctly rounded neighbor.
func roundTestDirected(rh, rl float64, mode Mode) (float64, bool) {
	u := ulp(rh)
	u53 := u * 0x1p53
	if absFloat(rl) <= roundCstDir*u53 {
		return 0, false
	}

	switch mode {
	case TowardPositive:
		if rl > 0 {
			return rh + u, true
		}
		return rh, true
	case TowardNegative:
		if rl > 0 {
			return rh, true
		}
		return rh - u, true
	case TowardZero:
		if rh >= 0 {
			if rl > 0 {
				return rh, true
			}
			return rh - u, true
		}
		if rl > 0 {
			return rh + u, true
		}
		return rh, true
	default:
		return 0, false
	}
}

// roundTest dispatches to the RN or directed test depending on mode.
func roundTest(rh, rl float64, mode Mode) (float64, bool) {
	if mode == ToNearestEven {
		return roundTestRN(rh, rl)
	}
	return roundTestDirected(rh, rl, mode)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
