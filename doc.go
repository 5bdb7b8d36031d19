// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ftl provides type-safe tagged unions and a small set of functional
// abstractions built on them.
//
// A tagged union holds exactly one value drawn from a fixed list of
// alternative types, together with a discriminant naming which one.
// Go has no variadic type parameters, so unions come in fixed arities:
// [Sum2], [Sum3] and [Sum4]. All of them implement the arity-independent
// [Union] interface.
//
// # Design Philosophy
//
// ftl provides:
//   - Value types with no hidden allocation: one field per alternative, the
//     inactive ones always zero
//   - Compile-time exhaustiveness for positional matching; run-time
//     validation only where Go's type system cannot decide
//   - Strong exception safety for copy assignment when an alternative's
//     copy can fail
//
// # Construction
//
//   - [NewSum2Arg1], [NewSum2Arg2], ...: Store a value as alternative K
//   - [Type], [Tag]: Zero-size tag naming an alternative by type
//   - [NewSum2], [NewSum3], [NewSum4]: Construct through a tag (panics on a
//     non-member or duplicate type)
//
// The zero value of a union holds the zero value of its first alternative.
//
// # Lifecycle
//
// Plain Go assignment copies a union bitwise. Alternatives that own
// resources or must not share state implement lifecycle hooks, found by
// structural assertion:
//
//   - [Copier]: Copy() (T, error), may fail
//   - [Releaser]: Release(), run once when the alternative stops being live
//   - [Assigner]: Assign(T) on *T, in-place same-type assignment
//
// Union operations that honor the hooks:
//
//   - [Sum2.Copy]: Copy through the live alternative's Copier
//   - [Sum2.Assign]: Copy assignment; a failing Copier leaves the receiver unchanged
//   - [Sum2.MoveFrom]: Transfer without copying; the source keeps its
//     discriminant and is reset to that alternative's zero value
//   - [Sum2.Release]: Release the live alternative and reset to the zero union
//   - [Sum2.Set1], [Sum2.Set2]: Store a value; same-alternative stores use
//     the Assigner without Copy or Release, else release the old value
//   - [Sum2.Trivial]: Reports whether no alternative carries a hook; trivial
//     unions skip hook lookup entirely
//
// # Inspection
//
//   - [Sum2.Index], [Sum2.Is1], [Sum2.Get1]: Positional
//   - [Is], [Get]: Typed, on any [Union]
//   - [Sum2.UnsafeGet1], [UnsafeGet]: Unchecked, for callers that already know
//     the live alternative
//   - [Sum2.Equal], [Equal2], [EqualFunc2]: Equality
//
// # Visitation
//
// Positional matching is exhaustive by construction:
//
//   - [Match2], [Match3], [Match4]: One handler per alternative, in order
//   - [MatchRef2], ...: Handlers receive pointers into the union
//   - [Sum2.Visit], [Sum2.VisitRef]: Void forms
//
// Case sets list handlers in any order, typed by alternative or by an
// interface the alternatives implement, with an optional fallback:
//
//   - [On], [Else]: Case constructors
//   - [Match]: Validate and dispatch (panics with [*MatchError])
//   - [NewMatcher], [MustMatcher]: Validate once, dispatch many times
//
// # Maybe
//
// [Maybe] is Sum2[Nothing, A] and forwards its lifecycle hooks:
//
//   - [Just], [None], [FromPtr]: Constructors
//   - [MapMaybe], [BindMaybe], [ThenMaybe], [FlattenMaybe]: Functor and monad
//   - [ModifyMaybe]: Mutate the value in place when present
//   - [MatchMaybe], [CompareMaybe], [EqualMaybe]
//
// # Concepts
//
//   - [Monoid]: Dictionary with Empty and Append; instances [AddMonoid],
//     [MulMonoid], [StringMonoid], [SliceMonoid], [MaybeMonoid],
//     [FirstMonoid], [LastMonoid], [MonoidFunc]
//   - [Concat], [FoldMap]: Folds over a monoid
//   - [MapArg2], [MapArg1], [BindArg2]: Sum2 as a right-biased Either
//   - [MapValues], [MapValuesInPlace], [MapSlice]: Functor over collections
//
// The laws of these instances are checked by package
// code.hybscloud.com/ftl/laws.
//
// # Interop
//
//   - [ToOption], [FromOption]: Maybe and mo.Option
//   - [ToEither], [FromEither]: Sum2 and mo.Either
//   - [ToEither3], [FromEither3]: Sum3 and mo.Either3
//
// # Example
//
//	type Shape = ftl.Sum3[Circle, Rect, Triangle]
//
//	s := ftl.NewSum3Arg2[Circle, Rect, Triangle](Rect{W: 2, H: 3})
//
//	area := ftl.Match3(s,
//		func(c Circle) float64 { return math.Pi * c.R * c.R },
//		func(r Rect) float64 { return r.W * r.H },
//		func(t Triangle) float64 { return t.B * t.H / 2 },
//	)
//	// area == 6
package ftl
