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

import "sync/atomic"

// slowPathInvocations is the optional EVAL_PERF-style counter from 5: a
// single global integer with no correctness role, best-effort under
// concurrent access, off by default in the sense that nothing reads it
// unless a caller opts in via SlowPathInvocations.
var slowPathInvocations atomic.Int64

// SlowPathInvocations returns the number of times the slow-path
// collaborator has been invoked since process start. Purely diagnostic;
// never consulted by any correctness-relevant code path.
func SlowPathInvocations() int64 {
	return slowPathInvocations.Load()
}

func countSlowPath() {
	slowPathInvocations.Add(1)
}
