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

// This file implements the double-double (DD) arithmetic kernel: a small
// set of error-free transformations and extended-precision operations that
// every other component is built on. None of these functions can fail in
// the sense of returning an error; operating outside a documented domain
// (see twoProdCondLimit below) is a precondition violation, not a runtime
// condition to recover from.

// twoSumFast returns s = rn(a+b) and e = (a+b)-s, computed exactly, under
// the precondition |a| >= |b|. s+e equals a+b exactly as reals.
func twoSumFast(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return
}

// twoSum is the same error-free transformation as twoSumFast but without
// the |a| >= |b| precondition, at the cost of three extra floating-point
// operations.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	v := s - a
	e = (a - (s - v)) + (b - v)
	return
}

// splitter is Dekker's constant, 2^27+1, used to split a 53-bit
// significand into two halves that each fit in 26 bits without rounding.
const splitter = 134217729.0 // 2^27 + 1

func split(a float64) (hi, lo float64) {
	c := splitter * a
	hi = c - (c - a)
	lo = a - hi
	return
}

// twoProd returns p = rn(a*b) and e = a*b-p, computed exactly via Dekker
// splitting. Valid for |a|, |b| < twoProdCondLimit; see twoProdCond for
// inputs outside that domain.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	ah, al := split(a)
	bh, bl := split(b)
	e = ((ah*bh - p) + ah*bl + al*bh) + al*bl
	return
}

// twoProdCondLimit is the largest magnitude for which twoProd's
// intermediate splitting cannot overflow binary64 range.
const twoProdCondLimit = 0x1p970

// twoProdCond extends twoProd to operands that may approach the binary64
// overflow boundary. Each operand is checked and scaled by 2^-53
// independently, and the exact product/error pair is rescaled by 2^53 once
// per operand that was scaled, so a single oversized operand paired with an
// ordinary one is handled correctly.
func twoProdCond(a, b float64) (p, e float64) {
	scaledA := math.Abs(a) >= twoProdCondLimit
	scaledB := math.Abs(b) >= twoProdCondLimit
	if scaledA {
		a *= 0x1p-53
	}
	if scaledB {
		b *= 0x1p-53
	}
	p, e = twoProd(a, b)
	if scaledA {
		p *= 0x1p53
		e *= 0x1p53
	}
	if scaledB {
		p *= 0x1p53
		e *= 0x1p53
	}
	return
}

// renormalize folds a loosely-paired (hi, lo) back into the DD invariant
// hi = rn(hi+lo), assuming |hi| >= |lo| (true whenever lo came from an
// error term of a computation seeded by hi).
func renormalize(hi, lo float64) dd {
	s, e := twoSumFast(hi, lo)
	return dd{s, e}
}

// ddAddFast adds two DD values under the precondition |x.hi| >= |y.hi|.
// Relative error <= 2^-103.
func ddAddFast(x, y dd) dd {
	s, e := twoSumFast(x.hi, y.hi)
	e += x.lo + y.lo
	s, e = twoSumFast(s, e)
	return dd{s, e}
}

// ddAdd adds two DD values without the ordering precondition, at the cost
// of one extra magnitude comparison.
func ddAdd(x, y dd) dd {
	if math.Abs(x.hi) < math.Abs(y.hi) {
		x, y = y, x
	}
	return ddAddFast(x, y)
}

// ddMul multiplies two DD values. Relative error <= 2^-102. Requires
// |components| < twoProdCondLimit.
func ddMul(x, y dd) dd {
	p, e := twoProd(x.hi, y.hi)
	e += x.hi*y.lo + x.lo*y.hi
	s, t := twoSumFast(p, e)
	return dd{s, t}
}

// ddDiv divides two DD values. Relative error <= 2^-104. Seeds the
// quotient with one binary64 division, reconstructs y*ch with one
// twoProd, and folds in a correction term.
func ddDiv(x, y dd) dd {
	ch := x.hi / y.hi
	p, e := twoProd(ch, y.hi)
	cl := (x.hi - p - e + x.lo - ch*y.lo) / y.hi
	s, t := twoSumFast(ch, cl)
	return dd{s, t}
}

// ddNeg negates a DD value exactly.
func ddNeg(x dd) dd {
	return dd{-x.hi, -x.lo}
}
