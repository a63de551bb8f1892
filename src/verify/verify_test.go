package verify

import (
	"bytes"
	"testing"

	"github.com/JarvisCraft/javac-rs/src/sink"
	"github.com/stretchr/testify/require"
)

func emitted(t *testing.T, f Frame) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := sink.NewWriter(&buf)
	f.Emit(w)
	require.NoError(t, w.Err())
	return buf.Bytes()
}

func TestSameFrameUsesShortFormWithinRange(t *testing.T) {
	b := emitted(t, SameFrame(10))
	require.Equal(t, []byte{10}, b)
}

func TestSameFrameUsesExtendedFormBeyondRange(t *testing.T) {
	b := emitted(t, SameFrame(200))
	require.Equal(t, byte(251), b[0])
	require.Len(t, b, 3)
}

func TestSameLocals1StackItemShortForm(t *testing.T) {
	b := emitted(t, SameLocals1StackItemFrame(5, Integer()))
	require.Equal(t, []byte{64 + 5, byte(VInteger)}, b)
}

func TestChopFrameEncodesDroppedCount(t *testing.T) {
	f, err := ChopFrame(20, 2)
	require.NoError(t, err)
	b := emitted(t, f)
	require.Equal(t, byte(251-2), b[0])
}

func TestChopFrameRejectsOutOfRangeCount(t *testing.T) {
	_, err := ChopFrame(20, 4)
	require.Error(t, err)
}

func TestAppendFrameEncodesAddedLocalsCount(t *testing.T) {
	f, err := AppendFrame(3, []VerificationType{Integer(), Float()})
	require.NoError(t, err)
	b := emitted(t, f)
	require.Equal(t, byte(251+2), b[0])
}

func TestFullFrameEmitsLocalsAndStackCounts(t *testing.T) {
	f := FullFrame(0, []VerificationType{Object(5)}, nil)
	b := emitted(t, f)
	require.Equal(t, byte(255), b[0])
	// offset_delta(2) + locals_count(2) + one VerificationType(1 tag + 2 idx) + stack_count(2)
	require.Equal(t, 1+2+2+3+2, len(b))
}
