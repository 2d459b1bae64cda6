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

import "math/big"

// SlowPath is the collaborator PublicAPI defers to whenever RoundTest
// cannot certify a fast-path result (§1, §4.6, §7: "deferred to slow
// path" is a control-flow decision, not an error). Twelve symmetric
// entry points with identical correctness contracts to the fast path,
// named generically here as one function/mode dispatch rather than
// twelve methods, since the caller already knows both at the call site.
type SlowPath interface {
	Eval(x float64, fn function, mode Mode) float64
}

// DefaultSlowPath is the SlowPath collaborator used by the twelve public
// entry points unless overridden with SetSlowPath. It is a correct, if
// unoptimized, multi-precision Taylor evaluator, standing in for the SCS
// fallback the original links against as an external C library.
var DefaultSlowPath SlowPath = bigFloatSlowPath{}

var activeSlowPath = DefaultSlowPath

// SetSlowPath overrides the collaborator the public API defers to when
// its rounding test cannot certify a result. Exists so tests can install
// a stricter oracle, or so a host binary can plug in a faster/verified
// multi-precision backend without touching the fast-path core.
func SetSlowPath(sp SlowPath) {
	activeSlowPath = sp
}

// bigFloatPrec is the working precision, in bits, the reference slow
// path evaluates at: comfortably more than the ~11 extra bits directed
// rounding ever needs beyond binary64, with wide margin for the Taylor
// series' own truncation error.
const bigFloatPrec = 200

// bigFloatSlowPath implements SlowPath with math/big.Float Taylor-series
// evaluation, in the spirit of the arbitrary-precision trig routines in
// the wider example corpus (lattigo's cosine approximation package,
// rsned's bigmath Sin). It is deliberately simple rather than fast: the
// spec treats the slow path as an assumed-available external
// collaborator, not a component under this module's performance budget.
type bigFloatSlowPath struct{}

var _ SlowPath = bigFloatSlowPath{}

func (bigFloatSlowPath) Eval(x float64, fn function, mode Mode) float64 {
	bx := big.NewFloat(x).SetPrec(bigFloatPrec)

	var result *big.Float
	switch fn {
	case fnSin:
		result = bigSin(bx)
	case fnCos:
		result = bigCos(bx)
	case fnTan:
		result = new(big.Float).SetPrec(bigFloatPrec).Quo(bigSin(bx), bigCos(bx))
	}

	return roundBigFloat(result, mode)
}

// bigSin evaluates sin(x) as a big.Float Taylor series after reducing x
// modulo 2*pi, summing terms until they stop moving the accumulator at
// the working precision.
func bigSin(x *big.Float) *big.Float {
	r := bigReduce2Pi(x)
	term := new(big.Float).SetPrec(bigFloatPrec).Set(r)
	sum := new(big.Float).SetPrec(bigFloatPrec).Set(r)
	r2 := new(big.Float).SetPrec(bigFloatPrec).Mul(r, r)

	sign := -1
	for n := 3; n < 200; n += 2 {
		term = new(big.Float).SetPrec(bigFloatPrec).Mul(term, r2)
		denom := bigFactorial(n)
		t := new(big.Float).SetPrec(bigFloatPrec).Quo(term, denom)
		if sign < 0 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		sign = -sign
		if bigIsNegligible(t, sum) {
			break
		}
	}
	return sum
}

// bigCos evaluates cos(x) the same way, as a Taylor series in x^2.
func bigCos(x *big.Float) *big.Float {
	r := bigReduce2Pi(x)
	r2 := new(big.Float).SetPrec(bigFloatPrec).Mul(r, r)
	term := big.NewFloat(1).SetPrec(bigFloatPrec)
	sum := big.NewFloat(1).SetPrec(bigFloatPrec)

	sign := -1
	for n := 2; n < 200; n += 2 {
		term = new(big.Float).SetPrec(bigFloatPrec).Mul(term, r2)
		denom := bigFactorial(n)
		t := new(big.Float).SetPrec(bigFloatPrec).Quo(term, denom)
		if sign < 0 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		sign = -sign
		if bigIsNegligible(t, sum) {
			break
		}
	}
	return sum
}

// bigPi is pi at the working precision, computed once via Machin's
// formula, the same identity used offline to generate the coefficient
// and table data in coeff_table.go/reduction_constants.go.
var bigPi = computeBigPi(bigFloatPrec + 64)

func computeBigPi(prec uint) *big.Float {
	arctanInv := func(inv int64) *big.Float {
		x := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1).SetPrec(prec), big.NewFloat(float64(inv)).SetPrec(prec))
		x2 := new(big.Float).SetPrec(prec).Mul(x, x)
		term := new(big.Float).SetPrec(prec).Set(x)
		sum := new(big.Float).SetPrec(prec).Set(x)
		sign := -1
		for n := int64(3); n < 2000; n += 2 {
			term = new(big.Float).SetPrec(prec).Mul(term, x2)
			t := new(big.Float).SetPrec(prec).Quo(term, big.NewFloat(float64(n)).SetPrec(prec))
			if sign < 0 {
				sum.Sub(sum, t)
			} else {
				sum.Add(sum, t)
			}
			sign = -sign
			if t.MantExp(nil) < -int(prec) {
				break
			}
		}
		return sum
	}
	a := arctanInv(5)
	b := arctanInv(239)
	a.Mul(a, big.NewFloat(4).SetPrec(prec))
	b.Mul(b, big.NewFloat(1).SetPrec(prec))
	pi := new(big.Float).SetPrec(prec).Sub(a, b)
	pi.Mul(pi, big.NewFloat(4).SetPrec(prec))
	return pi
}

// bigReduce2Pi reduces x into [-pi, pi] by subtracting the nearest
// multiple of 2*pi, using plain big.Float division/rounding since the
// slow path has no performance budget to meet.
func bigReduce2Pi(x *big.Float) *big.Float {
	twoPi := new(big.Float).SetPrec(bigFloatPrec).Mul(bigPi, big.NewFloat(2))
	q := new(big.Float).SetPrec(bigFloatPrec).Quo(x, twoPi)
	qf, _ := q.Float64()
	n := int64(qf)
	if float64(n) > qf {
		n--
	}
	if qf-float64(n) > 0.5 {
		n++
	}
	nTwoPi := new(big.Float).SetPrec(bigFloatPrec).Mul(twoPi, big.NewFloat(float64(n)))
	return new(big.Float).SetPrec(bigFloatPrec).Sub(x, nTwoPi)
}

func bigFactorial(n int) *big.Float {
	f := big.NewFloat(1).SetPrec(bigFloatPrec)
	for i := int64(2); i <= int64(n); i++ {
		f.Mul(f, big.NewFloat(float64(i)).SetPrec(bigFloatPrec))
	}
	return f
}

func bigIsNegligible(term, sum *big.Float) bool {
	if term.Sign() == 0 {
		return true
	}
	tExp := term.MantExp(nil)
	sExp := sum.MantExp(nil)
	return tExp < sExp-int(bigFloatPrec)
}

// roundBigFloat converts a big.Float result to binary64 under the
// requested rounding mode. math/big.Float.Float64 always rounds to
// nearest; directed modes nudge the result by one ulp when the discarded
// remainder's sign disagrees with the requested direction.
func roundBigFloat(v *big.Float, mode Mode) float64 {
	rn, acc := v.Float64()
	if mode == ToNearestEven {
		return rn
	}

	switch mode {
	case TowardPositive:
		if acc == big.Below {
			return nextUp(rn)
		}
	case TowardNegative:
		if acc == big.Above {
			return nextDown(rn)
		}
	case TowardZero:
		if rn >= 0 && acc == big.Above {
			return nextDown(rn)
		}
		if rn < 0 && acc == big.Below {
			return nextUp(rn)
		}
	}
	return rn
}
