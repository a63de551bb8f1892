package class

import (
	"bytes"
	"testing"

	"github.com/JarvisCraft/javac-rs/src/attribute"
	"github.com/JarvisCraft/javac-rs/src/bytecode"
	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/JarvisCraft/javac-rs/src/emitconfig"
	"github.com/JarvisCraft/javac-rs/src/flagset"
	"github.com/JarvisCraft/javac-rs/src/sink"
	"github.com/stretchr/testify/require"
)

func TestNewInternsThisAndSuperAndZeroesSuperForObject(t *testing.T) {
	p := constpool.New()
	c, err := New(p, 61, 0, flagset.Empty().Set(flagset.AccPublic).Set(flagset.AccSuper), "com/example/Hello", "")
	require.NoError(t, err)
	require.Zero(t, c.Super().Raw())
	require.NotZero(t, c.This().Raw())
}

func TestNewFromConfigUsesDefaultConfigVersionWhenNilAndCfgVersionOtherwise(t *testing.T) {
	p := constpool.New()
	c, err := NewFromConfig(p, nil, flagset.Empty(), "com/example/Hello", "java/lang/Object")
	require.NoError(t, err)
	require.Equal(t, emitconfig.DefaultConfig().Classfile.DefaultMajorVersion, c.MajorVersion)

	p2 := constpool.New()
	cfg := emitconfig.DefaultConfig()
	cfg.Classfile.DefaultMajorVersion = 55
	cfg.Classfile.DefaultMinorVersion = 3
	c2, err := NewFromConfig(p2, cfg, flagset.Empty(), "com/example/Hello", "java/lang/Object")
	require.NoError(t, err)
	require.Equal(t, uint16(55), c2.MajorVersion)
	require.Equal(t, uint16(3), c2.MinorVersion)
}

func TestAddFieldInternsNameAndDescriptorAndReturnsIndex(t *testing.T) {
	p := constpool.New()
	c, err := New(p, 61, 0, flagset.Empty(), "com/example/Hello", "java/lang/Object")
	require.NoError(t, err)

	idx, err := c.AddField(flagset.Empty().Set(flagset.AccPrivate), "count", "I")
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	second, err := c.AddField(flagset.Empty(), "name", "Ljava/lang/String;")
	require.NoError(t, err)
	require.Equal(t, 1, second)
}

func TestFieldAddAttributeRejectsOutOfBoundsIndex(t *testing.T) {
	p := constpool.New()
	c, err := New(p, 61, 0, flagset.Empty(), "com/example/Hello", "java/lang/Object")
	require.NoError(t, err)

	synthetic, err := attribute.NewSynthetic(p)
	require.NoError(t, err)
	err = c.FieldAddAttribute(0, synthetic)
	require.ErrorIs(t, err, ErrMemberIndexOutOfBounds)
}

func TestAddBootstrapMethodAppendsAttributeOnlyWhenNonEmpty(t *testing.T) {
	p := constpool.New()
	c, err := New(p, 61, 0, flagset.Empty().Set(flagset.AccPublic).Set(flagset.AccSuper), "com/example/Hello", "java/lang/Object")
	require.NoError(t, err)

	var buf bytes.Buffer
	w := sink.NewWriter(&buf)
	require.NoError(t, c.Emit(w))
	withoutBootstraps := buf.Len()

	lambdaClass, err := p.StoreClass("java/lang/invoke/LambdaMetafactory")
	require.NoError(t, err)
	fieldRef, err := p.StoreFieldRef(lambdaClass, "IMPL_LOOKUP", "Ljava/lang/invoke/MethodHandles$Lookup;")
	require.NoError(t, err)
	handle, err := p.StoreMethodHandleToField(constpool.RefGetStatic, fieldRef)
	require.NoError(t, err)
	c.AddBootstrapMethod(handle, nil)

	var buf2 bytes.Buffer
	w2 := sink.NewWriter(&buf2)
	require.NoError(t, c.Emit(w2))
	require.Greater(t, buf2.Len(), withoutBootstraps)
}

// TestHelloWorldClassEmitsStringLdcAndPrintlnString builds
// `public static void main(String[] args) { System.out.println("Hello
// world!"); }` end to end: getstatic, ldc of a string constant,
// invokevirtual println(String)V, return.
func TestHelloWorldClassEmitsStringLdcAndPrintlnString(t *testing.T) {
	p := constpool.New()
	c, err := New(p, 61, 0, flagset.Empty().Set(flagset.AccPublic).Set(flagset.AccSuper), "com/example/Hello", "java/lang/Object")
	require.NoError(t, err)

	mainIdx, err := c.AddMethod(flagset.Empty().Set(flagset.AccPublic).Set(flagset.AccStatic), "main", "([Ljava/lang/String;)V")
	require.NoError(t, err)

	system, err := p.StoreClass("java/lang/System")
	require.NoError(t, err)
	printStream, err := p.StoreClass("java/io/PrintStream")
	require.NoError(t, err)
	out, err := p.StoreFieldRef(system, "out", "Ljava/io/PrintStream;")
	require.NoError(t, err)
	printlnMethod, err := p.StoreMethodRef(printStream, "println", "(Ljava/lang/String;)V")
	require.NoError(t, err)
	greeting, err := p.StoreString("Hello world!")
	require.NoError(t, err)

	body := bytecode.New(1)
	_, err = body.Getstatic(out, 1)
	require.NoError(t, err)
	_, err = body.LdcString(greeting)
	require.NoError(t, err)
	_, err = body.InvokeVirtual(printlnMethod, 1, 0)
	require.NoError(t, err)
	_, err = body.Return()
	require.NoError(t, err)
	require.Equal(t, uint16(0), body.Stack())

	code, err := body.Finalize(p)
	require.NoError(t, err)
	require.NoError(t, c.MethodAddAttribute(mainIdx, code))

	var buf bytes.Buffer
	require.NoError(t, c.Emit(sink.NewWriter(&buf)))
	require.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE}, buf.Bytes()[:4])
}

// TestCountdownLoopClassEmitsPerIterationPrintln builds a `for (int i =
// 5; i >= 0; i--) System.out.println(i);` shaped body: a backward
// branch to a known target, a forward exit branch patched after the
// fact, and a println(int)V call inside the loop body on every
// iteration rather than once after it.
func TestCountdownLoopClassEmitsPerIterationPrintln(t *testing.T) {
	p := constpool.New()
	c, err := New(p, 61, 0, flagset.Empty().Set(flagset.AccPublic).Set(flagset.AccSuper), "com/example/Countdown", "java/lang/Object")
	require.NoError(t, err)

	mainIdx, err := c.AddMethod(flagset.Empty().Set(flagset.AccPublic).Set(flagset.AccStatic), "main", "([Ljava/lang/String;)V")
	require.NoError(t, err)

	system, err := p.StoreClass("java/lang/System")
	require.NoError(t, err)
	printStream, err := p.StoreClass("java/io/PrintStream")
	require.NoError(t, err)
	out, err := p.StoreFieldRef(system, "out", "Ljava/io/PrintStream;")
	require.NoError(t, err)
	printlnMethod, err := p.StoreMethodRef(printStream, "println", "(I)V")
	require.NoError(t, err)

	body := bytecode.New(1)
	_, err = body.Iconst5()
	require.NoError(t, err)
	_, err = body.Istore(0)
	require.NoError(t, err)

	top := body.Offset()
	_, err = body.Iload(0)
	require.NoError(t, err)
	exitBranch, err := body.Iflt(0)
	require.NoError(t, err)

	_, err = body.Getstatic(out, 1)
	require.NoError(t, err)
	_, err = body.Iload(0)
	require.NoError(t, err)
	_, err = body.InvokeVirtual(printlnMethod, 1, 0)
	require.NoError(t, err)

	_, err = body.Iinc(0, -1)
	require.NoError(t, err)
	_, err = body.Goto(int32(top))
	require.NoError(t, err)

	exit := body.Offset()
	require.NoError(t, body.PatchBranch(exitBranch, int32(exit)))
	_, err = body.Return()
	require.NoError(t, err)
	require.Equal(t, uint16(0), body.Stack())
	require.True(t, body.MaxStack() >= 1)

	code, err := body.Finalize(p)
	require.NoError(t, err)
	require.NoError(t, c.MethodAddAttribute(mainIdx, code))

	var buf bytes.Buffer
	require.NoError(t, c.Emit(sink.NewWriter(&buf)))
	require.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE}, buf.Bytes()[:4])
}

func TestMinimalClassRoundTripsThroughEmit(t *testing.T) {
	p := constpool.New()
	c, err := New(p, 61, 0, flagset.Empty().Set(flagset.AccPublic).Set(flagset.AccSuper), "com/example/Hello", "java/lang/Object")
	require.NoError(t, err)

	ctorIdx, err := c.AddMethod(flagset.Empty().Set(flagset.AccPublic), "<init>", "()V")
	require.NoError(t, err)

	body := bytecode.New(1)
	_, err = body.Aload(0)
	require.NoError(t, err)
	objectInit, err := p.StoreMethodRef(c.Super(), "<init>", "()V")
	require.NoError(t, err)
	_, err = body.InvokeSpecial(objectInit, 0, 0)
	require.NoError(t, err)
	_, err = body.Return()
	require.NoError(t, err)

	code, err := body.Finalize(p)
	require.NoError(t, err)
	require.NoError(t, c.MethodAddAttribute(ctorIdx, code))

	var buf bytes.Buffer
	w := sink.NewWriter(&buf)
	require.NoError(t, c.Emit(w))

	b := buf.Bytes()
	require.Equal(t, []byte{0xCA, 0xFE, 0xBA, 0xBE}, b[:4])
	require.Equal(t, uint16(0), uint16(b[4])<<8|uint16(b[5])) // minor version
	require.Equal(t, uint16(61), uint16(b[6])<<8|uint16(b[7]))
}
