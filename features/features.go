// Package features contains independent CSS generators, one per group of
// block settings. Every generator reads values of a single breakpoint and
// pushes declarations to a rule set; it never falls back to wider
// breakpoints, inheritance is decided by the caller.
package features

import (
	"gbcss/attrs"
	"gbcss/common"
	"gbcss/css"
)

// Generator is the common shape of feature generators.
type Generator func(rs *css.RuleSet, selector string, a attrs.Set, bp common.Breakpoint)

// MediaResolver looks up attachment URL for the requested image size.
type MediaResolver interface {
	AttachmentURL(id int64, size string) (string, bool)
}

// Env carries data which does not come from block attributes.
type Env struct {
	// FeaturedImage is the URL of current post thumbnail, empty when post
	// has none.
	FeaturedImage string
	// Media resolves image attachments by id, may be nil.
	Media MediaResolver
}

// decl builds declaration for the breakpoint variant of key.
func decl(a attrs.Set, property, key string, bp common.Breakpoint) css.Declaration {
	return css.Declaration{Property: property, Value: a.At(key, bp).String()}
}
