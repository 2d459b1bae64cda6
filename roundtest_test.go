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

import "testing"

func TestRoundTestRNCertifiesTinyResidue(t *testing.T) {
	rh := 1.0
	rl := 0x1p-120
	got, ok := roundTestRN(rh, rl)
	if !ok || got != rh {
		t.Fatalf("roundTestRN should certify tiny residue: ok=%v got=%v", ok, got)
	}
}

func TestRoundTestRNDefersOnBoundary(t *testing.T) {
	rh := 1.0
	rl := ulp(rh) / 2
	_, ok := roundTestRN(rh, rl)
	if ok {
		t.Fatalf("roundTestRN should defer near a rounding boundary")
	}
}

func TestRoundTestDirectedUp(t *testing.T) {
	rh := 1.0
	rl := ulp(rh)
	got, ok := roundTestDirected(rh, rl, TowardPositive)
	if !ok {
		t.Fatalf("roundTestDirected should certify a clear-cut case")
	}
	if got <= rh {
		t.Fatalf("TowardPositive with positive residue should round up, got %v", got)
	}
}

func TestRoundTestDirectedDown(t *testing.T) {
	rh := 1.0
	rl := -ulp(rh)
	got, ok := roundTestDirected(rh, rl, TowardNegative)
	if !ok {
		t.Fatalf("roundTestDirected should certify a clear-cut case")
	}
	if got >= rh {
		t.Fatalf("TowardNegative with negative residue should round down, got %v", got)
	}
}

func TestRoundTestDefersOnSmallResidue(t *testing.T) {
	rh := 1.0
	rl := ulp(rh) * 1e-20
	_, ok := roundTestDirected(rh, rl, TowardPositive)
	if ok {
		t.Fatalf("roundTestDirected should defer when residue is too small to certify direction")
	}
}
