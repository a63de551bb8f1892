package bytecode

import (
	"testing"

	"github.com/JarvisCraft/javac-rs/src/attribute"
	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/stretchr/testify/require"
)

func TestConstantPushesTrackMaxStack(t *testing.T) {
	b := New(1)
	_, err := b.Iconst1()
	require.NoError(t, err)
	require.Equal(t, uint16(1), b.Stack())
	require.Equal(t, uint16(1), b.MaxStack())

	_, err = b.Iconst2()
	require.NoError(t, err)
	require.Equal(t, uint16(2), b.Stack())
	require.Equal(t, uint16(2), b.MaxStack())
}

func TestPopUnderflowFailsWithoutMutatingState(t *testing.T) {
	b := New(0)
	_, err := b.Pop()
	require.ErrorIs(t, err, ErrCorruptedStack)
	require.Equal(t, uint16(0), b.Stack())
	require.Equal(t, uint16(0), b.MaxStack())
}

func TestLocalIndexFormSelection(t *testing.T) {
	b := New(1000)
	offset, err := b.Iload(3)
	require.NoError(t, err)
	require.Equal(t, []byte{opIload0 + 3}, b.code.All()[offset:])

	b2 := New(1000)
	offset, err = b2.Iload(10)
	require.NoError(t, err)
	require.Equal(t, []byte{opIload, 10}, b2.code.All()[offset:])

	b3 := New(1000)
	offset, err = b3.Iload(500)
	require.NoError(t, err)
	require.Equal(t, []byte{opWide, opIload, 1, 244}, b3.code.All()[offset:])
}

func TestLoadStoreOutOfBoundsLocalFails(t *testing.T) {
	b := New(2)
	_, err := b.Istore(5)
	require.ErrorIs(t, err, ErrLocalIndexOutOfBounds)
}

func TestLongLocalsOccupyTwoSlotsOnTheStack(t *testing.T) {
	b := New(4)
	_, err := b.Lconst0()
	require.NoError(t, err)
	require.Equal(t, uint16(2), b.Stack())
	_, err = b.Lstore(0)
	require.NoError(t, err)
	require.Equal(t, uint16(0), b.Stack())
}

func TestInvokeInterfacePopsReceiverPlusArgsAndEmitsCountAndZeroByte(t *testing.T) {
	p := constpool.New()
	class, err := p.StoreClass("java/util/List")
	require.NoError(t, err)
	method, err := p.StoreInterfaceMethodRef(class, "add", "(Ljava/lang/Object;)Z")
	require.NoError(t, err)

	b := New(2)
	_, err = b.Aload(0)
	require.NoError(t, err)
	_, err = b.Aload(1)
	require.NoError(t, err)
	offset, err := b.InvokeInterface(method, 1, 1)
	require.NoError(t, err)
	require.Equal(t, uint16(1), b.Stack())
	require.Equal(t, byte(2), b.code.All()[offset+3])
	require.Equal(t, byte(0), b.code.All()[offset+4])
}

func TestInvokeStaticWithTooManyArgumentsFails(t *testing.T) {
	p := constpool.New()
	class, err := p.StoreClass("com/example/Big")
	require.NoError(t, err)
	method, err := p.StoreMethodRef(class, "manyArgs", "()V")
	require.NoError(t, err)

	b := New(0)
	_, err = b.InvokeStatic(method, 256, 0)
	require.ErrorIs(t, err, ErrTooMuchMethodParameters)
}

func TestNewarrayRejectsNonPrimitiveType(t *testing.T) {
	b := New(1)
	_, err := b.Newarray(ArrayType(99))
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestNewarrayAcceptsPrimitiveTypeAndPushesArrayRef(t *testing.T) {
	b := New(1)
	_, err := b.Iconst5()
	require.NoError(t, err)
	_, err = b.Newarray(ArrayInt)
	require.NoError(t, err)
	require.Equal(t, uint16(1), b.Stack())
}

func TestMultianewarrayRejectsZeroDimensions(t *testing.T) {
	p := constpool.New()
	class, err := p.StoreClass("[[I")
	require.NoError(t, err)
	b := New(0)
	_, err = b.Multianewarray(class, 0)
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestGotoUsesShortFormForNearbyBackwardBranch(t *testing.T) {
	b := New(1)
	loopTop, err := b.Iconst0()
	require.NoError(t, err)
	_, err = b.Pop()
	require.NoError(t, err)
	offset, err := b.Goto(int32(loopTop))
	require.NoError(t, err)
	require.Equal(t, byte(opGoto), b.code.All()[offset])
}

func TestIfgtPatchedAfterForwardTargetIsKnown(t *testing.T) {
	b := New(1)
	_, err := b.Iconst1()
	require.NoError(t, err)
	branch, err := b.Ifgt(0)
	require.NoError(t, err)
	_, err = b.Iconst0()
	require.NoError(t, err)
	end := b.Offset()
	require.NoError(t, b.PatchBranch(branch, int32(end)))
	hi, lo := b.code.All()[branch+1], b.code.All()[branch+2]
	rel := int16(uint16(hi)<<8 | uint16(lo))
	require.Equal(t, int32(end)-int32(branch), int32(rel))
}

func TestAddExceptionAndAddAttributeCarryThroughToFinalize(t *testing.T) {
	p := constpool.New()
	class, err := p.StoreClass("java/lang/Throwable")
	require.NoError(t, err)

	b := New(0)
	_, err = b.Return()
	require.NoError(t, err)
	require.NoError(t, b.AddException(0, 1, 1, class))

	synthetic, err := attribute.NewSynthetic(p)
	require.NoError(t, err)
	require.NoError(t, b.AddAttribute(synthetic))

	attr, err := b.Finalize(p)
	require.NoError(t, err)
	require.Equal(t, attribute.KindCode, attr.Kind())
}

// TestHelloWorldShapedBodyFinalizes builds the classic
// System.out.println(42) method body and confirms it finalizes into a
// balanced Code attribute.
func TestHelloWorldShapedBodyFinalizes(t *testing.T) {
	p := constpool.New()
	system, err := p.StoreClass("java/lang/System")
	require.NoError(t, err)
	printStream, err := p.StoreClass("java/io/PrintStream")
	require.NoError(t, err)
	out, err := p.StoreFieldRef(system, "out", "Ljava/io/PrintStream;")
	require.NoError(t, err)
	printlnMethod, err := p.StoreMethodRef(printStream, "println", "(I)V")
	require.NoError(t, err)

	b := New(0)
	_, err = b.Getstatic(out, 1)
	require.NoError(t, err)
	_, err = b.Bipush(42)
	require.NoError(t, err)
	_, err = b.InvokeVirtual(printlnMethod, 1, 0)
	require.NoError(t, err)
	_, err = b.Return()
	require.NoError(t, err)
	require.Equal(t, uint16(0), b.Stack())

	attr, err := b.Finalize(p)
	require.NoError(t, err)
	require.Equal(t, attribute.KindCode, attr.Kind())
}

// TestLoopShapedBodyStaysBalanced exercises a `while (i < n) { i++; }`
// shaped body: a backward branch whose target is already known at
// emission time, plus a forward branch patched in afterward.
func TestLoopShapedBodyStaysBalanced(t *testing.T) {
	b := New(2)
	_, err := b.Iconst0()
	require.NoError(t, err)
	_, err = b.Istore(0)
	require.NoError(t, err)

	top := b.Offset()
	_, err = b.Iload(0)
	require.NoError(t, err)
	_, err = b.Iload(1)
	require.NoError(t, err)
	exitBranch, err := b.IfIcmpge(0)
	require.NoError(t, err)

	_, err = b.Iinc(0, 1)
	require.NoError(t, err)
	_, err = b.Goto(int32(top))
	require.NoError(t, err)

	exit := b.Offset()
	require.NoError(t, b.PatchBranch(exitBranch, int32(exit)))
	_, err = b.Return()
	require.NoError(t, err)

	require.Equal(t, uint16(0), b.Stack())
	require.True(t, b.MaxStack() >= 2)
}
