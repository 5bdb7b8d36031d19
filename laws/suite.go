// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"code.hybscloud.com/ftl"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

var (
	// ErrLawViolated is returned by Run when at least one property fails.
	ErrLawViolated = errors.New("laws: property violated")

	// ErrUnknownSuite is returned by Select for a name matching no suite.
	ErrUnknownSuite = errors.New("laws: unknown suite")
)

// Suite is a named set of properties.
type Suite struct {
	Name       string
	Properties *gopter.Properties
}

// Result is the outcome of running one suite.
type Result struct {
	Suite  string
	Passed bool
}

// Parameters returns gopter test parameters. A zero seed selects a time
// based seed; a non-positive minSuccessful keeps gopter's default.
func Parameters(seed int64, minSuccessful int) *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	if seed != 0 {
		params = gopter.DefaultTestParametersWithSeed(seed)
	}
	if minSuccessful > 0 {
		params.MinSuccessfulTests = minSuccessful
	}
	return params
}

func equal[T comparable](a, b T) bool { return a == b }

func halve(n int) ftl.Maybe[int] {
	if n%2 != 0 {
		return ftl.None[int]()
	}
	return ftl.Just(n / 2)
}

func positive(n int) ftl.Maybe[int] {
	if n <= 0 {
		return ftl.None[int]()
	}
	return ftl.Just(n)
}

// Suites returns the built-in suites, in a stable order.
func Suites(params *gopter.TestParameters) []Suite {
	inc := func(n int) int { return n + 1 }
	double := func(n int) int { return n * 2 }
	return []Suite{
		{"monoid/add", Monoid[int](params, ftl.AddMonoid[int]{}, gen.Int(), equal[int])},
		{"monoid/mul", Monoid[int](params, ftl.MulMonoid[int]{}, gen.IntRange(-1000, 1000), equal[int])},
		{"monoid/string", Monoid[string](params, ftl.StringMonoid{}, gen.AlphaString(), equal[string])},
		{"monoid/slice", Monoid[[]int](params, ftl.SliceMonoid[int]{}, gen.SliceOf(gen.Int()), slices.Equal[[]int, int])},
		{"monoid/maybe", Monoid[ftl.Maybe[string]](params, ftl.MaybeMonoid[string]{Inner: ftl.StringMonoid{}},
			GenMaybe[string](gen.AlphaString()), equal[ftl.Maybe[string]])},
		{"monoid/first", Monoid[ftl.Maybe[int]](params, ftl.FirstMonoid[int]{}, GenMaybe[int](gen.Int()), equal[ftl.Maybe[int]])},
		{"monoid/last", Monoid[ftl.Maybe[int]](params, ftl.LastMonoid[int]{}, GenMaybe[int](gen.Int()), equal[ftl.Maybe[int]])},
		{"maybe/functor", MaybeFunctor[int](params, gen.Int(), inc, double)},
		{"maybe/monad", MaybeMonad[int](params, gen.Int(), halve, positive)},
		{"sum/functor", SumFunctor[string, int](params, gen.AlphaString(), gen.Int(), inc, double)},
		{"map/functor", MapFunctor[string, int](params, gen.MapOf(gen.AlphaString(), gen.Int()), inc, double)},
		{"union/lifecycle", UnionLifecycle(params)},
	}
}

// Names returns the names of suites.
func Names(suites []Suite) []string {
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name
	}
	return names
}

// Select keeps the suites named by names. A name selects a suite by exact
// match or by its group prefix ("monoid" selects "monoid/add", ...).
// An empty names selects every suite.
func Select(suites []Suite, names []string) ([]Suite, error) {
	if len(names) == 0 {
		return suites, nil
	}
	var out []Suite
	for _, name := range names {
		found := false
		for _, s := range suites {
			if s.Name != name && !strings.HasPrefix(s.Name, name+"/") {
				continue
			}
			found = true
			if !slices.ContainsFunc(out, func(o Suite) bool { return o.Name == s.Name }) {
				out = append(out, s)
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSuite, name)
		}
	}
	return out, nil
}

// Run runs suites in order, reporting gopter output to out.
// It stops early when ctx is done. A nil logger discards log output.
// The returned error wraps ErrLawViolated when any suite fails.
func Run(ctx context.Context, suites []Suite, out io.Writer, verbose bool, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reporter := gopter.NewFormatedReporter(verbose, 80, out)
	results := make([]Result, 0, len(suites))
	var failed []string
	for _, s := range suites {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.Debug("running suite", "suite", s.Name)
		passed := s.Properties.Run(reporter)
		results = append(results, Result{Suite: s.Name, Passed: passed})
		if !passed {
			logger.Error("law violated", "suite", s.Name)
			failed = append(failed, s.Name)
			continue
		}
		logger.Info("suite passed", "suite", s.Name)
	}
	if len(failed) > 0 {
		return results, fmt.Errorf("%w: %s", ErrLawViolated, strings.Join(failed, ", "))
	}
	return results, nil
}
