// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import "github.com/samber/mo"

// Conversions to and from the samber/mo option and either types.

// ToOption converts m to an mo.Option.
func ToOption[A any](m Maybe[A]) mo.Option[A] {
	if v, ok := m.Get(); ok {
		return mo.Some(v)
	}
	return mo.None[A]()
}

// FromOption converts an mo.Option to a Maybe.
func FromOption[A any](o mo.Option[A]) Maybe[A] {
	if v, ok := o.Get(); ok {
		return Just(v)
	}
	return None[A]()
}

// ToEither converts s to an mo.Either: the first alternative becomes Left,
// the second Right.
func ToEither[L, R any](s Sum2[L, R]) mo.Either[L, R] {
	return Match2(s,
		func(l L) mo.Either[L, R] { return mo.Left[L, R](l) },
		func(r R) mo.Either[L, R] { return mo.Right[L, R](r) },
	)
}

// FromEither converts an mo.Either to a Sum2.
func FromEither[L, R any](e mo.Either[L, R]) Sum2[L, R] {
	if l, ok := e.Left(); ok {
		return NewSum2Arg1[L, R](l)
	}
	return NewSum2Arg2[L](e.MustRight())
}

// ToEither3 converts s to an mo.Either3 with matching argument positions.
func ToEither3[A, B, C any](s Sum3[A, B, C]) mo.Either3[A, B, C] {
	return Match3(s,
		func(a A) mo.Either3[A, B, C] { return mo.NewEither3Arg1[A, B, C](a) },
		func(b B) mo.Either3[A, B, C] { return mo.NewEither3Arg2[A, B, C](b) },
		func(c C) mo.Either3[A, B, C] { return mo.NewEither3Arg3[A, B, C](c) },
	)
}

// FromEither3 converts an mo.Either3 to a Sum3.
func FromEither3[A, B, C any](e mo.Either3[A, B, C]) Sum3[A, B, C] {
	if a, ok := e.Arg1(); ok {
		return NewSum3Arg1[A, B, C](a)
	}
	if b, ok := e.Arg2(); ok {
		return NewSum3Arg2[A, B, C](b)
	}
	return NewSum3Arg3[A, B](e.MustArg3())
}
