package constpool

// RawIndex is the untyped 1-based constant-pool index that is actually
// serialized onto the wire (spec §3 "Typed pool index": "the typed form
// is coerced to the raw form before serialization").
type RawIndex uint16

// Index is a 1-based constant-pool index carrying a phantom marker K of
// the referenced entry's kind. Go has no phantom type parameters that
// vanish at the value level the way Rust's do, but an uninstantiated
// generic parameter on a otherwise-empty wrapper costs nothing at
// runtime (no field of type K is ever stored) and still gives the
// compiler static proof that a FieldRef-typed index is never passed
// where a ClassRef-typed index is expected (spec §9 "Typed indices").
type Index[K any] RawIndex

// Raw coerces a typed index to its untyped, serializable form.
func (i Index[K]) Raw() RawIndex {
	return RawIndex(i)
}

// Marker types for each CP entry kind a typed Index can reference.
type (
	Utf8Marker               struct{}
	IntegerMarker            struct{}
	FloatMarker              struct{}
	LongMarker                struct{}
	DoubleMarker              struct{}
	ClassMarker               struct{}
	StringMarker              struct{}
	FieldRefMarker            struct{}
	MethodRefMarker           struct{}
	InterfaceMethodRefMarker  struct{}
	NameAndTypeMarker         struct{}
	MethodHandleMarker        struct{}
	MethodTypeMarker          struct{}
	DynamicMarker             struct{}
	InvokeDynamicMarker       struct{}
	ModuleMarker              struct{}
	PackageMarker             struct{}
)
