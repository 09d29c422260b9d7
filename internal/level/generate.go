// Package level builds the block layouts the arena is played on.
//
// Low level numbers map to hand-authored recipes; numbers at or above the
// procedural threshold are generated from clusters seeded with the level
// number itself, so nothing is ever persisted and any layout can be rebuilt
// on demand. Everything in this package is pure.
package level

// Generator produces block layouts for level numbers.
type Generator struct {
	params Params
}

// NewGenerator creates a generator with the given parameters.
func NewGenerator(p Params) *Generator {
	return &Generator{params: p}
}

// Params returns the generator's parameters.
func (g *Generator) Params() Params {
	return g.params
}

// Generate returns a fresh block list for level n. Curated numbers use
// their recipe, numbers at or above the threshold are seeded, and anything
// else yields an empty layout.
func (g *Generator) Generate(n int) []Block {
	if r, ok := Lookup(n); ok {
		return r.Build(g.params)
	}
	if g.IsProcedural(n) {
		return buildSeeded(n, g.params)
	}
	return nil
}

// IsProcedural reports whether level n is generated from a seed.
func (g *Generator) IsProcedural(n int) bool {
	return n >= g.params.Threshold && !Exists(n)
}

// Known reports whether level n has a layout.
func (g *Generator) Known(n int) bool {
	return Exists(n) || n >= g.params.Threshold
}

// Generate builds level n with the default parameters.
func Generate(n int) []Block {
	return NewGenerator(DefaultParams()).Generate(n)
}
