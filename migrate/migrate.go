// Package migrate upgrades stored block attributes to the current schema.
// Every step is a pure function returning a patch with the keys it changes,
// a pipeline runs the steps a block has not seen yet according to its stored
// blockVersion.
package migrate

import (
	"maps"
	"slices"

	"gbcss/attrs"
)

// VersionKey is the attribute holding schema version of a block.
const VersionKey = "blockVersion"

// StepFunc inspects attributes and returns patch, empty when nothing has to
// change.
type StepFunc func(a attrs.Set) attrs.Set

// Step is a migration upgrading block to Version.
type Step struct {
	Name    string
	Version int
	Apply   StepFunc
}

// Options describe the block being loaded.
type Options struct {
	// JustInserted marks brand new blocks, they never need migration.
	JustInserted bool
}

// Pipeline keeps migrations of a single block type.
type Pipeline struct {
	Block   string
	Current int
	// Always run on every load before versioned steps.
	Always []Step
	// Steps run when stored version is below their Version.
	Steps []Step
}

// StoredVersion returns blockVersion of attributes, 0 when absent.
func StoredVersion(a attrs.Set) int {
	v, _ := a.Get(VersionKey).Int()
	return v
}

// Run returns single patch bringing attributes to the current version.
// Every versioned step sees attributes as stored, not results of earlier
// steps, later steps win on conflicting keys. Patch of a block which is
// already current contains only changes of Always steps.
func (p Pipeline) Run(a attrs.Set, opts Options) attrs.Set {
	patch := attrs.Set{}
	for _, s := range p.Always {
		maps.Copy(patch, s.Apply(a))
	}

	if opts.JustInserted {
		if !a.Has(VersionKey) {
			patch[VersionKey] = p.Current
		}
		return patch
	}

	stored := StoredVersion(a)
	if stored >= p.Current {
		return patch
	}
	for _, s := range p.pending(stored) {
		maps.Copy(patch, s.Apply(a))
	}
	patch[VersionKey] = p.Current
	return patch
}

// pending returns steps needed by stored version in ascending version
// order, steps of the same version keep declaration order.
func (p Pipeline) pending(stored int) []Step {
	var out []Step
	for _, s := range p.Steps {
		if s.Version > stored && s.Version <= p.Current {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(x, y Step) int { return x.Version - y.Version })
	return out
}

// Migrate runs pipeline and applies resulting patch, returning new
// attributes and the patch.
func (p Pipeline) Migrate(a attrs.Set, opts Options) (attrs.Set, attrs.Set) {
	patch := p.Run(a, opts)
	return attrs.Apply(a, patch), patch
}

// Pipe chains steps explicitly: every step sees attributes with patches of
// previous steps applied. Returns accumulated patch.
func Pipe(a attrs.Set, steps ...StepFunc) attrs.Set {
	patch := attrs.Set{}
	cur := a
	for _, fn := range steps {
		p := fn(cur)
		if len(p) == 0 {
			continue
		}
		maps.Copy(patch, p)
		cur = attrs.Apply(cur, p)
	}
	return patch
}

// Chain returns step running steps through Pipe, so each of them sees
// results of the previous ones.
func Chain(steps ...StepFunc) StepFunc {
	return func(a attrs.Set) attrs.Set {
		return Pipe(a, steps...)
	}
}
