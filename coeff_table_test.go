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

func TestLookupDirect(t *testing.T) {
	for i := 0; i <= 64; i++ {
		sah, sal, cah, cal := lookup(i)
		e := sincosTable[i]
		if sah != e.sah || sal != e.sal || cah != e.cah || cal != e.cal {
			t.Fatalf("lookup(%d) direct entry mismatch", i)
		}
	}
}

func TestLookupReflection(t *testing.T) {
	for i := 65; i <= 128; i++ {
		sah, sal, cah, cal := lookup(i)
		esah, esal, ecah, ecal := lookup(128 - i)
		if sah != ecah || sal != ecal || cah != esah || cal != esal {
			t.Fatalf("lookup(%d) reflection mismatch against lookup(%d)", i, 128-i)
		}
	}
}

func TestTableEndpoints(t *testing.T) {
	sah, sal, cah, cal := lookup(0)
	if sah != 0 || sal != 0 {
		t.Fatalf("sin(0) table entry should be zero, got %v %v", sah, sal)
	}
	if cah != 1 || cal != 0 {
		t.Fatalf("cos(0) table entry should be one, got %v %v", cah, cal)
	}

	sah64, _, cah64, _ := lookup(64)
	// sin(64*pi/256) == sin(pi/4) == cos(pi/4), both approx 0.70710678...
	if sah64 < 0.7 || sah64 > 0.71 || cah64 < 0.7 || cah64 > 0.71 {
		t.Fatalf("lookup(64) out of expected range: sah=%v cah=%v", sah64, cah64)
	}
}
