// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

// Scoped release of unions and other Releaser values.
//
// PT is the pointer type of T; every SumN satisfies it, as does any type
// with a pointer-receiver Release.

// Bracket acquires a value, passes a pointer to it to use, and releases it
// when use returns. Release runs even if use returns an error or panics.
// If acquire fails, use is not called and nothing is released.
func Bracket[T any, PT interface {
	*T
	Releaser
}, A any](acquire func() (T, error), use func(PT) (A, error)) (A, error) {
	v, err := acquire()
	if err != nil {
		var zero A
		return zero, err
	}
	p := PT(&v)
	defer p.Release()
	return use(p)
}

// OnError runs body on v and releases v only if body fails.
// On success ownership of v stays with the caller.
func OnError[T any, PT interface {
	*T
	Releaser
}, A any](v PT, body func(PT) (A, error)) (A, error) {
	a, err := body(v)
	if err != nil {
		v.Release()
	}
	return a, err
}
