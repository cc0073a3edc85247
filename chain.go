package springnative

import (
	"fmt"
	"math"
	"sort"

	"github.com/albertocavalcante/go-springnative/gradle"
)

// Precedence bounds. Customizers with a lower order run first.
const (
	HighestPrecedence = math.MinInt32
	LowestPrecedence  = math.MaxInt32
)

// Order is the default order of the Spring Native customizer: close to the
// end of the chain so that its removals and additions are not undone by more
// general customizers.
const Order = LowestPrecedence - 10

// BuildCustomizer mutates a build during a generation pass.
type BuildCustomizer interface {
	Customize(b *gradle.Build) error
	Order() int
}

// CustomizerFunc adapts a function to BuildCustomizer with a fixed order.
func CustomizerFunc(order int, fn func(b *gradle.Build) error) BuildCustomizer {
	return funcCustomizer{order: order, fn: fn}
}

type funcCustomizer struct {
	order int
	fn    func(b *gradle.Build) error
}

func (f funcCustomizer) Customize(b *gradle.Build) error { return f.fn(b) }
func (f funcCustomizer) Order() int                      { return f.order }

// Apply runs customizers on b in ascending order. Customizers with the same
// order run in the order given. The first error stops the chain.
func Apply(b *gradle.Build, customizers ...BuildCustomizer) error {
	sorted := make([]BuildCustomizer, len(customizers))
	copy(sorted, customizers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})

	for i, c := range sorted {
		if err := c.Customize(b); err != nil {
			return fmt.Errorf("customizer %d (order %d): %w", i, c.Order(), err)
		}
	}
	return nil
}
