package constpool

import (
	"bytes"
	"testing"

	"github.com/JarvisCraft/javac-rs/src/sink"
	"github.com/stretchr/testify/require"
)

func TestSlotZeroIsReservedAndEmpty(t *testing.T) {
	p := New()
	require.Equal(t, uint16(1), p.Count())
}

func TestDedupReturnsSameIndexForEqualValues(t *testing.T) {
	p := New()
	i1, err := p.StoreClass("java/lang/Object")
	require.NoError(t, err)
	i2, err := p.StoreClass("java/lang/Object")
	require.NoError(t, err)
	require.Equal(t, i1, i2)

	i3, err := p.StoreClass("java/lang/String")
	require.NoError(t, err)
	require.NotEqual(t, i1.Raw(), i3.Raw())
}

func TestStoreClassThreeTimesAddsExactlyOneUtf8AndOneClassEntry(t *testing.T) {
	p := New()
	before := p.Count()

	for i := 0; i < 3; i++ {
		_, err := p.StoreClass("java/lang/Object")
		require.NoError(t, err)
	}

	require.Equal(t, before+2, p.Count()) // one Utf8 + one ConstClass
}

func TestLongAndDoubleOccupyTwoSlots(t *testing.T) {
	p := New()
	firstIdx, err := p.StoreLong(42)
	require.NoError(t, err)

	nextIdx, err := p.StoreInteger(7)
	require.NoError(t, err)

	require.Equal(t, firstIdx.Raw()+2, nextIdx.Raw())
}

func TestDoubleAndFollowingStoreIndexSkipsFillerSlot(t *testing.T) {
	p := New()
	d, err := p.StoreDouble(3.14)
	require.NoError(t, err)
	n, err := p.StoreUtf8("x")
	require.NoError(t, err)

	require.EqualValues(t, d.Raw()+2, n.Raw())
}

func TestMethodHandleRejectsIllegalRefKind(t *testing.T) {
	p := New()
	class, err := p.StoreClass("java/lang/Object")
	require.NoError(t, err)
	fieldRef, err := p.StoreFieldRef(class, "value", "I")
	require.NoError(t, err)

	_, err = p.StoreMethodHandleToField(RefInvokeVirtual, fieldRef)
	require.ErrorIs(t, err, ErrIllegalMethodHandle)

	_, err = p.StoreMethodHandleToField(RefGetField, fieldRef)
	require.NoError(t, err)
}

func TestStoreUtf8RejectsOversizedPayload(t *testing.T) {
	p := New()
	huge := make([]byte, 1<<16)
	_, err := p.StoreUtf8(string(huge))
	require.ErrorIs(t, err, ErrSourceTooBig)
}

func TestEmitSkipsEmptySlots(t *testing.T) {
	p := New()
	_, err := p.StoreDouble(1.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := sink.NewWriter(&buf)
	p.Emit(w)
	require.NoError(t, w.Err())

	require.Equal(t, byte(TagDouble), buf.Bytes()[0])
	require.Equal(t, 1+8, buf.Len()) // tag byte + 8-byte double body, no filler bytes
}

func TestClassInternalNameRoundTrips(t *testing.T) {
	p := New()
	class, err := p.StoreClass("java/lang/Object")
	require.NoError(t, err)

	name, ok := p.ClassInternalNameAt(class)
	require.True(t, ok)
	require.Equal(t, "java/lang/Object", name)
}

func TestStoreLoadableMaterializesCorrectEntryKind(t *testing.T) {
	p := New()

	_, tag, err := p.StoreLoadable(LoadableInt(7))
	require.NoError(t, err)
	require.Equal(t, TagInteger, tag)

	_, tag, err = p.StoreLoadable(LoadableString("hi"))
	require.NoError(t, err)
	require.Equal(t, TagString, tag)
}
