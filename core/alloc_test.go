package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenAllocatorSequence(t *testing.T) {
	a := NewTokenAllocator()
	assert.Equal(t, "a", a.Alloc())
	assert.Equal(t, "b", a.Alloc())
}

func TestTokenAllocatorSkipsReservedAndInUse(t *testing.T) {
	a := NewTokenAllocator()
	a.Reserve("a")
	assert.Equal(t, "b", a.Alloc())
}

func TestTokenAllocatorAt199Fresh(t *testing.T) {
	a := NewTokenAllocator()
	var last string
	for i := 0; i < 200; i++ {
		last = a.Alloc()
	}
	assert.Equal(t, "cS", last)
}

func TestTokenAllocatorAt199WithBReserved(t *testing.T) {
	a := NewTokenAllocator()
	a.Reserve("b")
	var last string
	for i := 0; i < 200; i++ {
		last = a.Alloc()
	}
	assert.Equal(t, "cT", last)
}
