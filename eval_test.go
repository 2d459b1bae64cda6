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
)

func TestEvalSinMatchesMathSin(t *testing.T) {
	for _, x := range []float64{0.5, 1.0, 2.0, 10.0, 100.0, 12345.6789} {
		r := reduce(x)
		ev := evalSin(r)
		got := ev.r.hi
		if ev.changesign {
			got = -got
		}
		want := math.Sin(x)
		if math.Abs(got-want) > 1e-13 {
			t.Errorf("evalSin(%v) = %v, want approx %v", x, got, want)
		}
	}
}

func TestEvalCosMatchesMathCos(t *testing.T) {
	for _, x := range []float64{0.5, 1.0, 2.0, 10.0, 100.0, 12345.6789} {
		r := reduce(x)
		ev := evalCos(r)
		got := ev.r.hi
		if ev.changesign {
			got = -got
		}
		want := math.Cos(x)
		if math.Abs(got-want) > 1e-13 {
			t.Errorf("evalCos(%v) = %v, want approx %v", x, got, want)
		}
	}
}

func TestEvalTanMatchesMathTan(t *testing.T) {
	for _, x := range []float64{0.5, 1.0, 2.0, 10.0, 100.0} {
		r := reduce(x)
		ev := evalTan(r)
		want := math.Tan(x)
		if math.Abs(ev.r.hi-want) > 1e-10*math.Max(1, math.Abs(want)) {
			t.Errorf("evalTan(%v) = %v, want approx %v", x, ev.r.hi, want)
		}
	}
}

func TestPolyPhaseSmallY(t *testing.T) {
	ts, tc := polyPhase(0.01)
	// sin(y)/y - 1 ~ -y^2/6 for small y; cos(y)-1 ~ -y^2/2.
	wantTs := -0.01 * 0.01 / 6
	wantTc := -0.01 * 0.01 / 2
	if math.Abs(ts-wantTs) > 1e-9 {
		t.Errorf("polyPhase ts = %v, want approx %v", ts, wantTs)
	}
	if math.Abs(tc-wantTc) > 1e-9 {
		t.Errorf("polyPhase tc = %v, want approx %v", tc, wantTc)
	}
}
