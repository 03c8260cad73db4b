package orion

import (
	"github.com/oliverbestmann/rcore/rcore"
)

var currentCore global[*rcore.CoreData]

type global[T any] struct {
	value    T
	hasValue bool
}

func (g *global[T]) set(value T) *global[T] {
	if g.hasValue {
		panic("value already set")
	}

	g.value = value
	g.hasValue = true
	return g
}

func (g *global[T]) reset() {
	var tZero T
	g.value = tZero
	g.hasValue = false
}

func (g *global[T]) Get() T {
	if !g.hasValue {
		panic("must only be called after RunGame")
	}

	return g.value
}

// Core exposes the core of the running game. Use it for everything
// not covered by the shortcuts of this package.
func Core() *rcore.CoreData {
	return currentCore.Get()
}
