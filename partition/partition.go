package partition

import (
	"fmt"
	"iter"
	"sort"

	"github.com/jimisaacs/spandex/backend"
	"github.com/jimisaacs/spandex/geom"
	"github.com/jimisaacs/spandex/rect"
)

// Partition holds one backend.Backend per attribute key. Each key's
// store is an independent LWW rectangle partition; Query is what joins
// them back into a single overlay.
type Partition struct {
	factory func() backend.Backend
	stores  map[string]backend.Backend
}

// New returns an empty Partition whose per-key stores are produced by
// factory (typically zorder.New or rtree.New).
func New(factory func() backend.Backend) *Partition {
	return &Partition{factory: factory, stores: make(map[string]backend.Backend)}
}

func (p *Partition) storeFor(key string) backend.Backend {
	s, ok := p.stores[key]
	if !ok {
		s = p.factory()
		p.stores[key] = s
	}
	return s
}

// Set writes v as the new last writer over r for a single attribute
// key, leaving every other key's store untouched.
func (p *Partition) Set(key string, r rect.Rectangle, v any) error {
	if err := backend.Validate(r); err != nil {
		return err
	}
	return p.storeFor(key).Insert(r, v)
}

// Insert writes every attribute in bundle as the new last writer over
// r, as one logical multi-attribute write.
func (p *Partition) Insert(r rect.Rectangle, bundle map[string]any) error {
	if err := backend.Validate(r); err != nil {
		return err
	}
	for key, v := range bundle {
		if err := p.storeFor(key).Insert(r, v); err != nil {
			return fmt.Errorf("partition: insert key %q: %w", key, err)
		}
	}
	return nil
}

// Extent returns the bounding geometry across every attribute's store.
func (p *Partition) Extent() geom.Extent {
	var rects []rect.Rectangle
	for _, s := range p.stores {
		for r := range backend.QueryAll(s) {
			rects = append(rects, r)
		}
	}
	return geom.ExtentOfRects(rects)
}

// Keys returns the attribute keys with at least one stored fragment,
// in sorted order.
func (p *Partition) Keys() []string {
	keys := make([]string, 0, len(p.stores))
	for k, s := range p.stores {
		if s.Len() > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// SizeOf reports the fragment count of a single attribute's store, or
// 0 if the key has never been written.
func (p *Partition) SizeOf(key string) int {
	s, ok := p.stores[key]
	if !ok {
		return 0
	}
	return s.Len()
}

// QueryKey queries a single attribute's store directly, bypassing the
// multi-attribute join, and reports ErrUnknownKey if key has never
// been written.
func (p *Partition) QueryKey(key string, q rect.Rectangle) (iter.Seq2[rect.Rectangle, any], error) {
	s, ok := p.stores[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return s.Query(q), nil
}

// IsEmpty reports whether every attribute's store is empty.
func (p *Partition) IsEmpty() bool {
	for _, s := range p.stores {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}

// Clear drops every attribute's store. A subsequent Insert or Set
// rebuilds stores lazily via the factory.
func (p *Partition) Clear() {
	p.stores = make(map[string]backend.Backend)
}
