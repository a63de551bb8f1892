package sink

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterBigEndianPrimitives(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.U1(0xCA)
	w.U2(0xFEBA)
	w.U4(0xBEBAFECA)
	w.U8(0x0102030405060708)

	require.NoError(t, w.Err())
	require.Equal(t, []byte{
		0xCA,
		0xFE, 0xBA,
		0xBE, 0xBA, 0xFE, 0xCA,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}, buf.Bytes())
}

func TestWriterSignedIntegersUseTwosComplement(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.I4(-1)
	w.I8(-1)

	require.NoError(t, w.Err())
	require.Equal(t, []byte{
		0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}, buf.Bytes())
}

func TestWriterFloatPreservesNaNPayload(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	nan := math.Float64frombits(0x7ff8000000000001)
	w.F8(nan)

	require.NoError(t, w.Err())
	require.Equal(t, uint64(0x7ff8000000000001), math.Float64bits(nan))
	got := make([]byte, 8)
	copy(got, buf.Bytes())
	require.Equal(t, uint64(0x7ff8000000000001), bigEndianU64(got))
}

func bigEndianU64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

func TestWriterSticksOnFirstError(t *testing.T) {
	w := NewWriter(&failingSink{failAfter: 1})
	w.U1(1)
	w.U1(2) // triggers the failing write
	w.U1(3) // must be a no-op: Err() should report the second write's error only once
	require.Error(t, w.Err())
}

type failingSink struct {
	calls     int
	failAfter int
}

func (f *failingSink) Write(p []byte) (int, error) {
	f.calls++
	if f.calls > f.failAfter {
		return 0, bytes.ErrTooLarge
	}
	return len(p), nil
}
