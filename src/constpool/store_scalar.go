package constpool

// StoreUtf8 interns s as a Utf8 entry, failing with ErrSourceTooBig if
// its UTF-8 byte length exceeds the u2 bound the classfile format
// allows.
func (p *Pool) StoreUtf8(s string) (Index[Utf8Marker], error) {
	if len(s) > 1<<16-1 {
		return 0, ErrSourceTooBig
	}
	idx, err := p.findOrPush(entry{tag: TagUtf8, utf8: s})
	return Index[Utf8Marker](idx), err
}

// StoreInteger interns a 32-bit int constant.
func (p *Pool) StoreInteger(v int32) (Index[IntegerMarker], error) {
	idx, err := p.findOrPush(entry{tag: TagInteger, intVal: v})
	return Index[IntegerMarker](idx), err
}

// StoreFloat interns a binary32 float constant.
func (p *Pool) StoreFloat(v float32) (Index[FloatMarker], error) {
	idx, err := p.findOrPush(entry{tag: TagFloat, floatVal: v})
	return Index[FloatMarker](idx), err
}

// StoreLong interns a 64-bit long constant. Per spec §4.3 "Slot
// accounting", this occupies two logical slots; the returned index is
// that of the first.
func (p *Pool) StoreLong(v int64) (Index[LongMarker], error) {
	idx, err := p.findOrPush(entry{tag: TagLong, longVal: v})
	return Index[LongMarker](idx), err
}

// StoreDouble interns a binary64 double constant, occupying two logical
// slots like StoreLong.
func (p *Pool) StoreDouble(v float64) (Index[DoubleMarker], error) {
	idx, err := p.findOrPush(entry{tag: TagDouble, doubleVal: v})
	return Index[DoubleMarker](idx), err
}

// StoreClass interns a ConstClass entry referencing internalName,
// first interning internalName itself as a Utf8 entry (spec §4.3:
// "Composite entries... first store their dependent primitives... and
// then store themselves — so the dependents are always emitted before
// the dependent's reference").
func (p *Pool) StoreClass(internalName string) (Index[ClassMarker], error) {
	nameIdx, err := p.StoreUtf8(internalName)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagClass, nameIdx: RawIndex(nameIdx)})
	return Index[ClassMarker](idx), err
}

// StoreString interns a ConstString entry wrapping a char literal's
// host-language string is not applicable here (spec Non-goals: no
// string literals in the source grammar) — this exists for the scalar
// "loadable value" surface (ldc of a String constant built elsewhere,
// e.g. by a bootstrap method) and for completeness of the CP tag table.
func (p *Pool) StoreString(value string) (Index[StringMarker], error) {
	utfIdx, err := p.StoreUtf8(value)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagString, nameIdx: RawIndex(utfIdx)})
	return Index[StringMarker](idx), err
}

// StoreNameAndType interns a NameAndType entry, interning name and
// descriptor as Utf8 entries first.
func (p *Pool) StoreNameAndType(name, descriptor string) (Index[NameAndTypeMarker], error) {
	nameIdx, err := p.StoreUtf8(name)
	if err != nil {
		return 0, err
	}
	descIdx, err := p.StoreUtf8(descriptor)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagNameAndType, ntNameIdx: RawIndex(nameIdx), ntDescIdx: RawIndex(descIdx)})
	return Index[NameAndTypeMarker](idx), err
}

// StoreMethodType interns a MethodType entry over a method descriptor
// string.
func (p *Pool) StoreMethodType(descriptor string) (Index[MethodTypeMarker], error) {
	descIdx, err := p.StoreUtf8(descriptor)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagMethodType, methodTypeDescIdx: RawIndex(descIdx)})
	return Index[MethodTypeMarker](idx), err
}
