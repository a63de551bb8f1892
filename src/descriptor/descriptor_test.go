package descriptor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimitiveDescriptorStrings(t *testing.T) {
	cases := map[Primitive]string{
		Byte: "B", Char: "C", Double: "D", Float: "F",
		Int: "I", Long: "J", Short: "S", Boolean: "Z",
	}
	for p, want := range cases {
		require.Equal(t, want, NewPrimitive(p).String())
	}
}

func TestClassDescriptorString(t *testing.T) {
	d := NewClass("java/lang/Object")
	require.Equal(t, "Ljava/lang/Object;", d.String())
}

func TestArrayDescriptorNesting(t *testing.T) {
	d := ArrayOf(NewPrimitive(Int), 2)
	require.Equal(t, "[[I", d.String())

	component, ok := d.Component()
	require.True(t, ok)
	require.Equal(t, "[I", component.String())
}

func TestArrayOfZeroDimsReturnsComponentUnchanged(t *testing.T) {
	base := NewClass("java/lang/String")
	require.Equal(t, base, ArrayOf(base, 0))
}

func TestRoundTripParse(t *testing.T) {
	descriptors := []Descriptor{
		NewPrimitive(Boolean),
		NewClass("java/lang/String"),
		NewArray(NewPrimitive(Double)),
		ArrayOf(NewClass("java/lang/String"), 3),
	}
	for _, d := range descriptors {
		parsed, err := Parse(d.String())
		require.NoError(t, err)
		require.Equal(t, d.String(), parsed.String())
	}
}

func TestParseRejectsTrailingData(t *testing.T) {
	_, err := Parse("IJ")
	require.Error(t, err)
}

func TestParseRejectsUnterminatedClass(t *testing.T) {
	_, err := Parse("Ljava/lang/String")
	require.Error(t, err)
}
