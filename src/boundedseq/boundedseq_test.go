package boundedseq

import (
	"bytes"
	"testing"

	"github.com/JarvisCraft/javac-rs/src/sink"
	"github.com/stretchr/testify/require"
)

func TestPushReturnsInsertionOrderIndex(t *testing.T) {
	s := New[string](W2)
	i0, err := s.Push("first")
	require.NoError(t, err)
	require.Equal(t, 0, i0)

	i1, err := s.Push("second")
	require.NoError(t, err)
	require.Equal(t, 1, i1)

	require.Equal(t, 2, s.Len())
	v, ok := s.At(1)
	require.True(t, ok)
	require.Equal(t, "second", v)
}

func TestAtOutOfRangeReturnsZeroValueAndFalse(t *testing.T) {
	s := New[int](W1)
	v, ok := s.At(0)
	require.False(t, ok)
	require.Zero(t, v)
}

func TestPushFailsAtWidthBoundary(t *testing.T) {
	s := New[byte](W1)
	for i := 0; i < int(W1.Max()); i++ {
		_, err := s.Push(byte(i))
		require.NoError(t, err)
	}
	_, err := s.Push(0xFF)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFromSliceFailsWhenSourceExceedsWidth(t *testing.T) {
	src := make([]int, int(W1.Max())+1)
	_, err := FromSlice(W1, src)
	require.ErrorIs(t, err, ErrSourceTooBig)
}

func TestFromSliceCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	s, err := FromSlice(W2, src)
	require.NoError(t, err)
	src[0] = 99 // mutating the source must not affect the sequence
	v, _ := s.At(0)
	require.Equal(t, 1, v)
}

func TestEmitWritesWidthSizedLengthPrefixThenElements(t *testing.T) {
	s := New[uint16](W2)
	_, _ = s.Push(0x0001)
	_, _ = s.Push(0x0002)

	var buf bytes.Buffer
	w := sink.NewWriter(&buf)
	s.Emit(w, func(w *sink.Writer, v uint16) { w.U2(v) })

	require.NoError(t, w.Err())
	require.Equal(t, []byte{0x00, 0x02, 0x00, 0x01, 0x00, 0x02}, buf.Bytes())
}
