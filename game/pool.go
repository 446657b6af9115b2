package game

// Pool is dense arena storage for one kind of entity.
// Removal during a pass only marks the slot; Compact drops marked slots
// afterwards while keeping the survivors in insertion order, so index
// iteration stays valid for the whole pass.
type Pool[T any] struct {
	items   []T
	removed []bool
	pending int
}

// NewPool creates a pool with preallocated capacity
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		items:   make([]T, 0, capacity),
		removed: make([]bool, 0, capacity),
	}
}

// Add appends an item to the end of the pool
func (p *Pool[T]) Add(item T) {
	p.items = append(p.items, item)
	p.removed = append(p.removed, false)
}

// Len returns the number of slots, including ones marked for removal
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Live returns the number of slots not marked for removal
func (p *Pool[T]) Live() int {
	return len(p.items) - p.pending
}

// At returns a pointer to the item in slot i.
// The pointer is invalidated by Add, Compact and Clear.
func (p *Pool[T]) At(i int) *T {
	return &p.items[i]
}

// Remove marks slot i for removal at the next Compact
func (p *Pool[T]) Remove(i int) {
	if p.removed[i] {
		return
	}
	p.removed[i] = true
	p.pending++
}

// Removed reports whether slot i is marked for removal
func (p *Pool[T]) Removed(i int) bool {
	return p.removed[i]
}

// Compact drops every marked slot, preserving the order of the rest
func (p *Pool[T]) Compact() {
	if p.pending == 0 {
		return
	}
	var zero T
	n := 0
	for i := range p.items {
		if p.removed[i] {
			continue
		}
		p.items[n] = p.items[i]
		p.removed[n] = false
		n++
	}
	for i := n; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:n]
	p.removed = p.removed[:n]
	p.pending = 0
}

// Clear empties the pool, keeping its capacity
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
	p.removed = p.removed[:0]
	p.pending = 0
}

// Snapshot copies the live items into a new slice
func (p *Pool[T]) Snapshot() []T {
	out := make([]T, 0, p.Live())
	for i, item := range p.items {
		if !p.removed[i] {
			out = append(out, item)
		}
	}
	return out
}
