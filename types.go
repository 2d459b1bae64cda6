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

// Mode selects the IEEE-754 rounding-direction attribute applied to the
// infinitely-precise mathematical result before it is returned as a
// binary64 value.
type Mode uint8

const (
	// ToNearestEven rounds to the closest representable value, ties to even.
	ToNearestEven Mode = iota
	// TowardPositive rounds toward positive infinity.
	TowardPositive
	// TowardNegative rounds toward negative infinity.
	TowardNegative
	// TowardZero truncates toward zero.
	TowardZero
)

func (m Mode) String() string {
	switch m {
	case ToNearestEven:
		return "RN"
	case TowardPositive:
		return "RU"
	case TowardNegative:
		return "RD"
	case TowardZero:
		return "RZ"
	default:
		return "unknown"
	}
}

// function names the trigonometric family being evaluated. Unexported:
// callers select a function by calling one of the twelve public entry
// points in api.go, never by passing this value around.
type function uint8

const (
	fnSin function = iota
	fnCos
	fnTan
)

// dd is an unevaluated double-double pair representing hi+lo, with
// hi = RN(hi+lo) and |lo| <= ulp(hi)/2.
type dd struct {
	hi, lo float64
}

var ddZero = dd{0, 0}

// sincosEntry is one row of the 65-entry sin/cos table: double-double
// approximations of sin(i*pi/256) and cos(i*pi/256).
type sincosEntry struct {
	sah, sal, cah, cal float64
}
