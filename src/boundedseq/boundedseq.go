// Package boundedseq implements the bounded sequence described in spec
// §4.2: a dynamic array whose length fits in a classfile-native count
// width (U1, U2, or U4), with push failing deterministically at the
// boundary. One generic implementation is shared across all three
// widths, the way spec §9 ("Bounded sequences") recommends, with the
// width picked wherever the wire format requires it (annotation/
// parameter-annotation arrays at U1, most classfile arrays at U2, code
// bytes and raw attribute payloads at U4).
package boundedseq

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by Push when the sequence is already at its
// width's maximum length.
var ErrOutOfBounds = errors.New("boundedseq: push exceeds width bound")

// ErrSourceTooBig is returned by FromSlice when the source is longer
// than the target width can address.
var ErrSourceTooBig = errors.New("boundedseq: source exceeds width bound")

// Width identifies which classfile count width a sequence is bounded to.
type Width int

const (
	// W1 bounds a sequence to 2^8-1 elements, serialized with a u1
	// length prefix (annotation arrays, parameter-annotation counts).
	W1 Width = 1
	// W2 bounds a sequence to 2^16-1 elements, serialized with a u2
	// length prefix (most classfile arrays: fields, methods, CP-sized
	// collections, interfaces, attributes).
	W2 Width = 2
	// W4 bounds a sequence to 2^32-1 elements, serialized with a u4
	// length prefix (code bytes, raw attribute payloads).
	W4 Width = 4
)

// Max returns the maximum element count for w: the largest count its
// u1, u2 or u4 length prefix can encode (2^8-1, 2^16-1 or 2^32-1).
func (w Width) Max() uint64 {
	switch w {
	case W1:
		return 1<<8 - 1
	case W2:
		return 1<<16 - 1
	case W4:
		return 1<<32 - 1
	default:
		panic(fmt.Sprintf("boundedseq: invalid width %d", w))
	}
}

// Seq is a dynamic array of T bounded to width's maximum element count.
// The zero value is not usable; construct with New.
type Seq[T any] struct {
	width Width
	items []T
}

// New constructs an empty sequence bounded to width.
func New[T any](width Width) *Seq[T] {
	return &Seq[T]{width: width}
}

// FromSlice builds a sequence from an existing slice, failing with
// ErrSourceTooBig if src is longer than width allows (spec §4.2: "fallible
// conversion from an unbounded sequence").
func FromSlice[T any](width Width, src []T) (*Seq[T], error) {
	if uint64(len(src)) > width.Max() {
		return nil, ErrSourceTooBig
	}
	items := make([]T, len(src))
	copy(items, src)
	return &Seq[T]{width: width, items: items}, nil
}

// Width reports the sequence's bound.
func (s *Seq[T]) Width() Width {
	return s.width
}

// Len returns the current element count.
func (s *Seq[T]) Len() int {
	return len(s.items)
}

// Push appends v, returning its zero-based index, or fails with
// ErrOutOfBounds if the sequence is already at its width's maximum.
func (s *Seq[T]) Push(v T) (int, error) {
	if uint64(len(s.items)) >= s.width.Max() {
		return 0, ErrOutOfBounds
	}
	s.items = append(s.items, v)
	return len(s.items) - 1, nil
}

// At returns the element at idx and true, or the zero value and false if
// idx is out of range.
func (s *Seq[T]) At(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(s.items) {
		return zero, false
	}
	return s.items[idx], true
}

// AtPtr returns a mutable pointer to the element at idx, or nil if idx is
// out of range.
func (s *Seq[T]) AtPtr(idx int) *T {
	if idx < 0 || idx >= len(s.items) {
		return nil
	}
	return &s.items[idx]
}

// All returns the elements in insertion order. The returned slice shares
// storage with the sequence and must not be mutated by the caller.
func (s *Seq[T]) All() []T {
	return s.items
}
