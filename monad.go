// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

// Functor and monad operations.
//
// Maybe is a monad in its value. Sum2[E, A] is a right-biased monad in its
// second alternative, the Either encoding: the first alternative
// short-circuits Bind and passes through Map unchanged.

// MapMaybe applies f to the value of m. Nothing maps to Nothing.
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if v, ok := m.Get(); ok {
		return Just(f(v))
	}
	return None[B]()
}

// BindMaybe sequences m with f (monadic bind).
// Nothing short-circuits; f is not called.
func BindMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if v, ok := m.Get(); ok {
		return f(v)
	}
	return None[B]()
}

// ThenMaybe returns n if m holds a value, discarding it, and Nothing otherwise.
func ThenMaybe[A, B any](m Maybe[A], n Maybe[B]) Maybe[B] {
	if m.IsValue() {
		return n
	}
	return None[B]()
}

// FlattenMaybe removes one level of nesting.
func FlattenMaybe[A any](m Maybe[Maybe[A]]) Maybe[A] {
	if v, ok := m.Get(); ok {
		return v
	}
	return None[A]()
}

// ModifyMaybe applies a mutating operation to the value of m in place, if
// there is one, and returns m. f receives a pointer into m's storage.
func ModifyMaybe[A any](m *Maybe[A], f func(*A)) *Maybe[A] {
	m.s.VisitRef(func(*Nothing) {}, f)
	return m
}

// MapArg2 applies f to the second alternative of s.
// A live first alternative passes through unchanged.
func MapArg2[E, A, B any](s Sum2[E, A], f func(A) B) Sum2[E, B] {
	if v, ok := s.Get2(); ok {
		return NewSum2Arg2[E](f(v))
	}
	return NewSum2Arg1[E, B](s.UnsafeGet1())
}

// MapArg1 applies f to the first alternative of s.
func MapArg1[E, F, A any](s Sum2[E, A], f func(E) F) Sum2[F, A] {
	if e, ok := s.Get1(); ok {
		return NewSum2Arg1[F, A](f(e))
	}
	return NewSum2Arg2[F](s.UnsafeGet2())
}

// BindArg2 sequences s with f when the second alternative is live.
func BindArg2[E, A, B any](s Sum2[E, A], f func(A) Sum2[E, B]) Sum2[E, B] {
	if v, ok := s.Get2(); ok {
		return f(v)
	}
	return NewSum2Arg1[E, B](s.UnsafeGet1())
}
