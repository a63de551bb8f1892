// Package sink implements the classfile format's big-endian primitive
// writer over any append-capable byte destination (spec §4.1). The
// classfile format is always big-endian and never padded; floating-point
// values are written as their IEEE-754 bit patterns, preserving NaN
// payloads exactly as the caller supplied them. No value is recoded here
// — the caller is responsible for the value already representing the
// desired classfile encoding.
package sink

import (
	"encoding/binary"
	"math"
)

// Sink is any append-capable byte destination: an in-memory buffer, a
// file, a network stream. This package makes exactly one forward pass
// and never seeks.
type Sink interface {
	Write(p []byte) (n int, err error)
}

// Writer wraps a Sink with typed, fixed-width big-endian writes.
type Writer struct {
	dst Sink
	err error
}

// NewWriter wraps dst. Once a write fails, every subsequent write on the
// same Writer is a no-op and Err returns the first error encountered —
// callers that build up a class in many small steps can defer error
// checking to the end of the sequence.
func NewWriter(dst Sink) *Writer {
	return &Writer{dst: dst}
}

// Err returns the first error encountered by any write on this Writer,
// or nil if none occurred.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.dst.Write(p)
}

// U1 writes a single unsigned byte.
func (w *Writer) U1(v uint8) {
	w.write([]byte{v})
}

// U2 writes a big-endian unsigned 16-bit integer.
func (w *Writer) U2(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.write(buf[:])
}

// U4 writes a big-endian unsigned 32-bit integer.
func (w *Writer) U4(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	w.write(buf[:])
}

// U8 writes a big-endian unsigned 64-bit integer.
func (w *Writer) U8(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	w.write(buf[:])
}

// I4 writes a signed 32-bit integer using its two's-complement bit
// pattern.
func (w *Writer) I4(v int32) {
	w.U4(uint32(v))
}

// I8 writes a signed 64-bit integer using its two's-complement bit
// pattern.
func (w *Writer) I8(v int64) {
	w.U8(uint64(v))
}

// F4 writes an IEEE-754 binary32 value as its raw bit pattern, preserving
// NaN payloads exactly.
func (w *Writer) F4(v float32) {
	w.U4(math.Float32bits(v))
}

// F8 writes an IEEE-754 binary64 value as its raw bit pattern, preserving
// NaN payloads exactly.
func (w *Writer) F8(v float64) {
	w.U8(math.Float64bits(v))
}

// Bytes appends a raw byte slice verbatim, with no length prefix.
func (w *Writer) Bytes(p []byte) {
	w.write(p)
}
