// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotAlternative reports a type that is not one of a union's alternatives.
	ErrNotAlternative = errors.New("not an alternative")

	// ErrAmbiguousAlternative reports a type that occurs more than once among
	// a union's alternatives, so typed access cannot pick a position.
	ErrAmbiguousAlternative = errors.New("ambiguous alternative")

	// ErrNonExhaustive reports an alternative covered by no case and no fallback.
	ErrNonExhaustive = errors.New("non-exhaustive match")

	// ErrDuplicateCase reports an alternative covered by more than one case.
	ErrDuplicateCase = errors.New("duplicate case")

	// ErrUnusedCase reports a case whose parameter type matches no alternative.
	ErrUnusedCase = errors.New("case matches no alternative")

	// ErrFallbackPosition reports an Else case that is not the last case.
	ErrFallbackPosition = errors.New("fallback case must be last")

	// ErrNotUnionValue reports a Matcher type parameter that is not a union
	// value type such as Sum3[A, B, C].
	ErrNotUnionValue = errors.New("not a union value type")
)

// MatchError describes an invalid case set passed to [Match] or [NewMatcher].
// Type is the offending alternative or case parameter type; it is nil for
// errors that concern the case set as a whole.
type MatchError struct {
	Type reflect.Type
	Err  error
}

func (e *MatchError) Error() string {
	if e.Type == nil {
		return "ftl: " + e.Err.Error()
	}
	return fmt.Sprintf("ftl: %v: %s", e.Err, e.Type)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}
