package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorYieldsInOrder(t *testing.T) {
	v := New[int]()
	v.Push(10)
	v.Push(20)
	v.Push(30)

	cur := v.Cursor()
	for _, want := range []int{10, 20, 30} {
		got, ok := cur.Next()
		if !assert.True(t, ok) {
			return
		}
		assert.Equal(t, want, *got)
	}
	for i := 0; i < 3; i++ {
		got, ok := cur.Next()
		assert.False(t, ok, "cursor not exhausted on call %d past the end", i)
		assert.Nil(t, got)
	}
}

func TestCursorEmpty(t *testing.T) {
	cur := New[string]().Cursor()
	got, ok := cur.Next()
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCursorOnePass(t *testing.T) {
	v := New[string]()
	for _, s := range testWords {
		v.Push(s)
	}

	cur := v.Cursor()
	seen := 0
	for {
		got, ok := cur.Next()
		if !ok {
			break
		}
		assert.Equal(t, testWords[seen], *got)
		seen++
	}
	assert.Equal(t, len(testWords), seen)

	// a fresh cursor restarts from the first element
	again, ok := v.Cursor().Next()
	assert.True(t, ok)
	assert.Equal(t, testWords[0], *again)
}

func TestCursorYieldsElementPointers(t *testing.T) {
	v := New[int]()
	v.Push(1)
	fromGet, ok := v.Get(0)
	assert.True(t, ok)
	fromCursor, ok := v.Cursor().Next()
	assert.True(t, ok)
	assert.Equal(t, fromGet, fromCursor, "cursor should reference the slot, not a copy")
}
