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

import (
	"math"
	"testing"

	"github.com/ericlagergren/decimal"
)

// This file is the decimal-backed arbitrary-precision oracle named in
// SPEC_FULL.md's ambient test tooling section, playing the same role the
// teacher's decf/decu/deci helpers play in fix64_testdata.go: a
// dependency-backed source of ground truth that plain float64 arithmetic
// cannot produce, used here to certify correct rounding on sampled
// inputs instead of an MPFR binding this module does not need.

const oraclePrec = 80

func decFromFloat(f float64) *decimal.Big {
	return decimal.WithPrecision(oraclePrec).SetFloat64(f)
}

// oracleSin evaluates sin(x) at oraclePrec decimal digits via its Taylor
// series around x reduced into [-pi, pi], sufficient to distinguish
// correct rounding at the 53-bit binary64 level.
func oracleSin(x float64) *decimal.Big {
	pi := oraclePi()
	twoPi := decimal.WithPrecision(oraclePrec).Mul(pi, decimal.New(2, 0))
	r := oracleReduce(decFromFloat(x), twoPi)

	term := decimal.WithPrecision(oraclePrec).Copy(r)
	sum := decimal.WithPrecision(oraclePrec).Copy(r)
	r2 := decimal.WithPrecision(oraclePrec).Mul(r, r)

	sign := -1
	for n := int64(3); n < 80; n += 2 {
		term = decimal.WithPrecision(oraclePrec).Mul(term, r2)
		denom := oracleFactorial(n)
		t := decimal.WithPrecision(oraclePrec).Quo(term, denom)
		if sign < 0 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		sign = -sign
		if t.Sign() == 0 {
			break
		}
	}
	return sum
}

func oracleCos(x float64) *decimal.Big {
	pi := oraclePi()
	twoPi := decimal.WithPrecision(oraclePrec).Mul(pi, decimal.New(2, 0))
	r := oracleReduce(decFromFloat(x), twoPi)

	r2 := decimal.WithPrecision(oraclePrec).Mul(r, r)
	term := decimal.WithPrecision(oraclePrec).SetUint64(1)
	sum := decimal.WithPrecision(oraclePrec).SetUint64(1)

	sign := -1
	for n := int64(2); n < 80; n += 2 {
		term = decimal.WithPrecision(oraclePrec).Mul(term, r2)
		denom := oracleFactorial(n)
		t := decimal.WithPrecision(oraclePrec).Quo(term, denom)
		if sign < 0 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		sign = -sign
		if t.Sign() == 0 {
			break
		}
	}
	return sum
}

func oracleReduce(x, twoPi *decimal.Big) *decimal.Big {
	q := decimal.WithPrecision(oraclePrec).Quo(x, twoPi)
	qf, _ := q.Float64()
	n := math.Round(qf)
	nTwoPi := decimal.WithPrecision(oraclePrec).Mul(twoPi, decFromFloat(n))
	return decimal.WithPrecision(oraclePrec).Sub(x, nTwoPi)
}

func oracleFactorial(n int64) *decimal.Big {
	f := decimal.WithPrecision(oraclePrec).SetUint64(1)
	for i := int64(2); i <= n; i++ {
		f.Mul(f, decimal.WithPrecision(oraclePrec).SetUint64(uint64(i)))
	}
	return f
}

var cachedPi *decimal.Big

func oraclePi() *decimal.Big {
	if cachedPi != nil {
		return cachedPi
	}
	arctanInv := func(inv int64) *decimal.Big {
		x := decimal.WithPrecision(oraclePrec).Quo(decimal.New(1, 0), decimal.New(inv, 0))
		x2 := decimal.WithPrecision(oraclePrec).Mul(x, x)
		term := decimal.WithPrecision(oraclePrec).Copy(x)
		sum := decimal.WithPrecision(oraclePrec).Copy(x)
		sign := -1
		for n := int64(3); n < 400; n += 2 {
			term = decimal.WithPrecision(oraclePrec).Mul(term, x2)
			t := decimal.WithPrecision(oraclePrec).Quo(term, decimal.New(n, 0))
			if sign < 0 {
				sum.Sub(sum, t)
			} else {
				sum.Add(sum, t)
			}
			sign = -sign
			if t.Sign() == 0 {
				break
			}
		}
		return sum
	}
	a := arctanInv(5)
	a.Mul(a, decimal.New(4, 0))
	b := arctanInv(239)
	pi := decimal.WithPrecision(oraclePrec).Sub(a, b)
	pi.Mul(pi, decimal.New(4, 0))
	cachedPi = pi
	return pi
}

func decToFloat64RN(d *decimal.Big) float64 {
	f, _ := d.Float64()
	return f
}

func TestOracleAgreesWithMathSinCos(t *testing.T) {
	xs := []float64{0.1, 0.5, 1.0, 1.5, 2.0, 3.0, 10.0, 100.0}
	for _, x := range xs {
		sOracle := decToFloat64RN(oracleSin(x))
		cOracle := decToFloat64RN(oracleCos(x))
		if math.Abs(sOracle-math.Sin(x)) > 1e-12 {
			t.Errorf("oracleSin(%v)=%v disagrees with math.Sin=%v", x, sOracle, math.Sin(x))
		}
		if math.Abs(cOracle-math.Cos(x)) > 1e-12 {
			t.Errorf("oracleCos(%v)=%v disagrees with math.Cos=%v", x, cOracle, math.Cos(x))
		}
	}
}

func TestFastPathAgreesWithOracle(t *testing.T) {
	xs := []float64{0.1, 0.25, 0.5, 1.0, 1.5, 2.0, 3.0, 7.5, 10.0, 100.0, 12345.6789}
	for _, x := range xs {
		gotSin := Sin(x)
		wantSin := decToFloat64RN(oracleSin(x))
		if math.Abs(gotSin-wantSin) > 1e-12 {
			t.Errorf("Sin(%v)=%v disagrees with oracle=%v", x, gotSin, wantSin)
		}

		gotCos := Cos(x)
		wantCos := decToFloat64RN(oracleCos(x))
		if math.Abs(gotCos-wantCos) > 1e-12 {
			t.Errorf("Cos(%v)=%v disagrees with oracle=%v", x, gotCos, wantCos)
		}
	}
}
