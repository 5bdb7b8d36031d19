// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import (
	"reflect"
	"sync"
)

// Lifecycle hooks for alternatives.
//
// Go values are copied bitwise by assignment. Alternatives that need more
// than that implement one or more of the hooks below; a union whose
// alternatives implement none of them is trivial and every lifecycle
// operation on it reduces to plain assignment, with no hook lookup.
//
// Hooks are discovered through structural assertions on a pointer to the
// live value, so both value and pointer receivers are found. For an
// interface-typed alternative the hooks of the dynamic value are used;
// its Copy may return the dynamic type or the interface type.

// Copier is implemented by alternatives whose copies must not share state
// with the original. Copy may fail; a failing Copy during [Sum2.Assign] or
// [Sum2.Copy] leaves the destination untouched and the error is returned
// to the caller unmodified.
type Copier[T any] interface {
	Copy() (T, error)
}

// Releaser is implemented by alternatives that own resources.
// Release is called exactly once when the value stops being live: the
// union is reassigned, moved over or released, or a same-alternative Set
// overwrites it on a type without [Assigner].
type Releaser interface {
	Release()
}

// Assigner is implemented by *T for alternatives with a dedicated
// in-place assignment. Setting a union that already holds T calls Assign
// instead of releasing and replacing the value; Assign is then
// responsible for any resource the old value owns.
type Assigner[T any] interface {
	Assign(T)
}

// copyOf returns a copy of v suitable for storing in another union.
func copyOf[T any](v T) (T, error) {
	if isInterface[T]() {
		return copyDynamic(v)
	}
	if c, ok := any(&v).(Copier[T]); ok {
		return c.Copy()
	}
	return v, nil
}

var errorType = reflect.TypeFor[error]()

// copyDynamic runs the Copy method of the dynamic value held by the
// interface value v, if it has one of the form Copy() (X, error) with X
// assignable to T.
func copyDynamic[T any](v T) (T, error) {
	dv := any(v)
	if dv == nil {
		return v, nil
	}
	if c, ok := dv.(Copier[T]); ok {
		return c.Copy()
	}
	m := reflect.ValueOf(dv).MethodByName("Copy")
	if !m.IsValid() {
		return v, nil
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 2 || mt.Out(1) != errorType ||
		!mt.Out(0).AssignableTo(reflect.TypeFor[T]()) {
		return v, nil
	}
	out := m.Call(nil)
	if err, _ := out[1].Interface().(error); err != nil {
		var zero T
		return zero, err
	}
	c, _ := out[0].Interface().(T)
	return c, nil
}

// releaseValue runs the Releaser hook of *v, if any.
func releaseValue[T any](v *T) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
		return
	}
	if isInterface[T]() {
		if r, ok := any(*v).(Releaser); ok {
			r.Release()
		}
	}
}

// assignValue stores v over the same-typed live value at dst. Without an
// Assigner the old value is released before it is overwritten.
func assignValue[T any](dst *T, v T) {
	if a, ok := any(dst).(Assigner[T]); ok {
		a.Assign(v)
		return
	}
	releaseValue(dst)
	*dst = v
}

func isInterface[T any]() bool {
	return reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface
}

// trivialCache maps the pointer type of a union instantiation to its
// triviality.
var trivialCache sync.Map

// trivialUnion returns the triviality of union type U, running compute
// only for the first lookup of U.
func trivialUnion[U any](compute func() bool) bool {
	key := reflect.TypeOf((*U)(nil))
	if t, ok := trivialCache.Load(key); ok {
		return t.(bool)
	}
	t := compute()
	trivialCache.Store(key, t)
	return t
}

var releaserType = reflect.TypeFor[Releaser]()

// trivial reports whether T is statically known to carry no lifecycle hook.
// Interface types are never trivial: their dynamic values may carry hooks.
// A nested union is trivial when its own alternatives are.
func trivial[T any]() bool {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return false
	}
	if u, ok := any(new(T)).(interface{ Trivial() bool }); ok {
		return u.Trivial()
	}
	p := reflect.PointerTo(t)
	switch {
	case p.Implements(reflect.TypeFor[Copier[T]]()):
		return false
	case t.Implements(releaserType), p.Implements(releaserType):
		return false
	case p.Implements(reflect.TypeFor[Assigner[T]]()):
		return false
	}
	return true
}

// equalValues compares two values of the same alternative.
// An Equal(T) bool method takes precedence over ==, which panics for
// non-comparable dynamic types.
func equalValues[T any](x, y T) bool {
	if e, ok := any(x).(interface{ Equal(T) bool }); ok {
		return e.Equal(y)
	}
	return any(x) == any(y)
}
