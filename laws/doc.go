// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package laws provides property-based checks of the algebraic laws that
// ftl instances promise.
//
// Each constructor returns a *gopter.Properties so the checks can run from
// a test with TestingRun, or from a program with [Run]:
//
//	func TestMyMonoid(t *testing.T) {
//		laws.Monoid[Span](nil, SpanMonoid{}, genSpan, Span.Equal).TestingRun(t)
//	}
//
// [Suites] lists the built-in suites covering the instances shipped with ftl.
package laws
