// package vec implements a growable vector data
// structure which supports:
//  1. amortized O(1) appends with doubling growth
//  2. bounds checked, non-panicking element access
//  3. snapshot forward cursors over the occupied prefix
//
// The vector owns a single contiguous backing block whose length is the
// capacity.  Every slot holds a valid value of T at all times, the zero
// value when unoccupied.  Growth never resizes in place: a new block is
// allocated, elements are moved over index by index, and the old block is
// dropped for the garbage collector to reclaim.
package vec

import "fmt"

// Vec is a growable vector of T.  The zero value is not usable; construct
// with New or WithCapacity.
type Vec[T any] struct {
	slots []T
	used  uint
}

// New creates an empty vector with capacity 0.  The first Push allocates.
func New[T any]() *Vec[T] {
	return WithCapacity[T](0)
}

// WithCapacity creates an empty vector backed by a block of n zero-valued
// slots.  Use it when the number of entries is known ahead of time to
// avoid growth copies.
func WithCapacity[T any](n uint) *Vec[T] {
	return &Vec[T]{slots: make([]T, n)}
}

// Len returns the number of occupied slots
func (v *Vec[T]) Len() uint {
	return v.used
}

// Cap returns the number of allocated slots
func (v *Vec[T]) Cap() uint {
	return uint(len(v.slots))
}

// Push appends value after the last occupied slot, growing the backing
// block first when it is full.  Growth moves every existing element, so
// pointers obtained from Get before a growing Push must not be retained
// across it.
func (v *Vec[T]) Push(value T) {
	if v.used == v.Cap() {
		v.grow()
	}
	v.slots[v.used] = value
	v.used++
}

// grow replaces the backing block with one of double the capacity (or
// capacity 1 when the vector has never allocated), preserving element
// order and index identity.
func (v *Vec[T]) grow() {
	target := v.Cap() * 2
	if target == 0 {
		target = 1
	}
	block := make([]T, target)
	for i := uint(0); i < v.used; i++ {
		block[i] = v.slots[i]
	}
	v.slots = block
}

// Get returns a pointer to the element at ix, or (nil, false) when ix is
// at or beyond the occupied prefix.  It never panics.
func (v *Vec[T]) Get(ix uint) (*T, bool) {
	if ix < v.used {
		return &v.slots[ix], true
	}
	return nil, false
}

// GetOr returns Get(ix) when present, else def
func (v *Vec[T]) GetOr(ix uint, def *T) *T {
	if p, ok := v.Get(ix); ok {
		return p
	}
	return def
}

// Pop removes and returns the last occupied element.  On an empty vector
// it returns the zero value and false, and is safe to call repeatedly.
// The vacated slot is reset to the zero value so the vector retains no
// reachable copy of the returned value.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.used == 0 {
		return zero, false
	}
	v.used--
	value := v.slots[v.used]
	v.slots[v.used] = zero
	return value, true
}

// DebugDump prints a textual representation of the vector to stdout
func (v *Vec[T]) DebugDump() {
	fmt.Printf("\n    slot  value->\n")
	for i := uint(0); i < v.used; i++ {
		fmt.Printf("%8d  %v\n", i, v.slots[i])
	}
	if free := v.Cap() - v.used; free > 0 {
		fmt.Printf("          ... %d free slots\n", free)
	}
}
