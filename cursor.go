// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

// Cursor is a one-pass forward traversal over a vector's occupied prefix.
// It snapshots the backing block and length at creation time.  The vector
// must not be mutated while the cursor, or any pointer it has yielded, is
// still in use; create a new cursor to traverse again.
type Cursor[T any] struct {
	slots []T
	len   uint
	pos   uint
}

// Cursor creates a cursor positioned before the first element
func (v *Vec[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{
		slots: v.slots,
		len:   v.used,
	}
}

// Next returns a pointer to the next element and advances the cursor.
// Once the snapshot length is reached it returns (nil, false) on every
// subsequent call.
func (c *Cursor[T]) Next() (*T, bool) {
	if c.pos >= c.len {
		return nil, false
	}
	p := &c.slots[c.pos]
	c.pos++
	return p, true
}
