package content

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gbcss/attrs"
)

// Resolver gives access to stored reusable content.
type Resolver interface {
	// ReusableBlock returns serialized content of reusable block. found is
	// false when post does not exist or is not a reusable block.
	ReusableBlock(ctx context.Context, id int64) (content string, found bool, err error)
}

// scope is carried by value down the tree.
type scope struct {
	grids []string // unique ids of grid ancestors, nearest last
}

func (s scope) withGrid(id string) scope {
	grids := make([]string, len(s.grids), len(s.grids)+1)
	copy(grids, s.grids)
	s.grids = append(grids, id)
	return s
}

func (s scope) nearestGrid() (string, bool) {
	if len(s.grids) == 0 {
		return "", false
	}
	return s.grids[len(s.grids)-1], true
}

type collector struct {
	ctx      context.Context
	resolver Resolver
	log      *zap.Logger
	data     *Data
	visiting map[int64]bool
	errs     error
}

// Collect walks block tree and gathers attribute sets of styled blocks.
// Containers marked as grid items get gridId of their nearest grid ancestor,
// headlines get hasWrapper and buttons hasUrl inferred from saved markup.
// References to reusable blocks are resolved and walked in place, resolver
// errors are accumulated and returned together with whatever was collected.
// Resolver may be nil, references are skipped then.
func Collect(ctx context.Context, blocks []Block, resolver Resolver, log *zap.Logger) (*Data, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &collector{
		ctx:      ctx,
		resolver: resolver,
		log:      log.Named("collector"),
		data:     &Data{},
		visiting: make(map[int64]bool),
	}
	c.walk(blocks, scope{})
	return c.data, c.errs
}

func (c *collector) walk(blocks []Block, sc scope) {
	for i := range blocks {
		b := &blocks[i]
		inner := sc

		switch typ := blockType(b.Name); typ {
		case TypeGrid:
			a := b.Attrs.Clone()
			c.data.Add(typ, a)
			inner = sc.withGrid(a.String("uniqueId"))
		case TypeContainer:
			a := b.Attrs.Clone()
			if gridID, ok := sc.nearestGrid(); ok && a.Bool("isGrid") {
				if a == nil {
					a = attrs.Set{}
				}
				a["gridId"] = gridID
			}
			c.data.Add(typ, a)
		case TypeHeadline:
			a := b.Attrs.Clone()
			if strings.HasPrefix(strings.TrimSpace(b.InnerHTML), `<div class="gb-headline-wrapper`) {
				if a == nil {
					a = attrs.Set{}
				}
				a["hasWrapper"] = true
			}
			c.data.Add(typ, a)
		case TypeButton:
			a := b.Attrs.Clone()
			if _, set := a["hasUrl"]; !set && strings.HasPrefix(strings.TrimSpace(b.InnerHTML), "<a") {
				if a == nil {
					a = attrs.Set{}
				}
				a["hasUrl"] = true
			}
			c.data.Add(typ, a)
		case "":
			if b.Name == "core/block" {
				c.reusable(b, sc)
			}
		default:
			c.data.Add(typ, b.Attrs.Clone())
		}

		if len(b.Inner) > 0 {
			c.walk(b.Inner, inner)
		}
	}
}

func (c *collector) reusable(b *Block, sc scope) {
	ref, ok := b.Attrs.Get("ref").Int()
	if !ok || c.resolver == nil {
		return
	}
	id := int64(ref)
	if c.visiting[id] {
		c.log.Warn("Reusable block references itself, skipping", zap.Int64("ref", id))
		return
	}

	text, found, err := c.resolver.ReusableBlock(c.ctx, id)
	if err != nil {
		c.errs = multierr.Append(c.errs, fmt.Errorf("unable to resolve reusable block %d: %w", id, err))
		return
	}
	if !found {
		c.log.Debug("Reusable block not found", zap.Int64("ref", id))
		return
	}
	blocks, err := ParseString(text)
	if err != nil {
		c.errs = multierr.Append(c.errs, fmt.Errorf("unable to parse reusable block %d: %w", id, err))
		return
	}

	c.visiting[id] = true
	c.walk(blocks, sc)
	delete(c.visiting, id)
}

// EnsureUniqueIDs assigns fresh uniqueId to styled blocks which have none or
// share one with a block seen earlier. Returns number of changed blocks.
func EnsureUniqueIDs(blocks []Block) int {
	seen := make(map[string]bool)
	var changed int
	Walk(blocks, func(b *Block) bool {
		if blockType(b.Name) == "" || blockType(b.Name) == TypeSection {
			return true
		}
		id := b.Attrs.String("uniqueId")
		if id == "" || seen[id] {
			if b.Attrs == nil {
				b.Attrs = attrs.Set{}
			}
			for id = attrs.NewUniqueID(); seen[id]; id = attrs.NewUniqueID() {
			}
			b.Attrs["uniqueId"] = id
			changed++
		}
		seen[id] = true
		return true
	})
	return changed
}
