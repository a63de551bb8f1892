// Package class assembles a whole classfile from its constituent
// subsystems (spec §4.6): version, constant pool, access flags,
// this/super, interfaces, fields, methods, and attributes. Grounded on
// jacobin's ParsedClass/ClData (src/classloader/classloader.go), but
// inverted: jacobin converts an already-parsed tree into a postable
// class (convertToPostableClass), whereas Class here is built up
// directly by a caller that never reads a classfile back in.
package class

import (
	"errors"

	"github.com/JarvisCraft/javac-rs/src/attribute"
	"github.com/JarvisCraft/javac-rs/src/boundedseq"
	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/JarvisCraft/javac-rs/src/emitconfig"
	"github.com/JarvisCraft/javac-rs/src/flagset"
	"github.com/JarvisCraft/javac-rs/src/javatypes"
	"github.com/JarvisCraft/javac-rs/src/sink"
)

// ClassFileMagic is the four-byte signature every classfile begins with.
const ClassFileMagic = 0xCAFEBABE

var (
	// ErrMemberIndexOutOfBounds is returned by *AddAttribute when the
	// given field or method index was never handed out by AddField or
	// AddMethod.
	ErrMemberIndexOutOfBounds = errors.New("class: member index out of bounds")
)

// Member is one FieldInfo or MethodInfo row: access flags, interned
// name/descriptor, and whatever attributes were attached after
// creation (spec §4.6: "add_*_attribute... appends to its attribute
// list").
type Member struct {
	AccessFlags flagset.FlagSet
	Name        constpool.Index[constpool.Utf8Marker]
	Descriptor  constpool.Index[constpool.Utf8Marker]
	Attributes  *boundedseq.Seq[attribute.NamedAttribute]
}

func (m *Member) emit(w *sink.Writer) {
	w.U2(m.AccessFlags.Raw())
	w.U2(uint16(m.Name.Raw()))
	w.U2(uint16(m.Descriptor.Raw()))
	m.Attributes.Emit(w, func(w *sink.Writer, a attribute.NamedAttribute) { a.Emit(w) })
}

// Class accumulates one classfile (spec §4.6 "Operations: construct...
// add_interface... add_field/method... add_*_attribute").
type Class struct {
	MajorVersion uint16
	MinorVersion uint16

	pool *constpool.Pool

	accessFlags flagset.FlagSet
	this        constpool.Index[constpool.ClassMarker]
	super       constpool.Index[constpool.ClassMarker]

	interfaces *boundedseq.Seq[constpool.Index[constpool.ClassMarker]]
	fields     *boundedseq.Seq[Member]
	methods    *boundedseq.Seq[Member]
	attributes *boundedseq.Seq[attribute.NamedAttribute]

	bootstraps []attribute.BootstrapMethod
}

// New records the class's version, access flags, and interned
// this/super names (spec §4.6: "construct (records version, access
// flags, interns class and super names)"). super may be the zero Index
// for java/lang/Object, whose superclass_index is legitimately 0.
func New(p *constpool.Pool, majorVersion, minorVersion uint16, flags flagset.FlagSet, thisName, superName string) (*Class, error) {
	this, err := p.StoreClass(thisName)
	if err != nil {
		return nil, err
	}
	var super constpool.Index[constpool.ClassMarker]
	if superName != "" {
		super, err = p.StoreClass(superName)
		if err != nil {
			return nil, err
		}
	}
	return &Class{
		MajorVersion: majorVersion,
		MinorVersion: minorVersion,
		pool:         p,
		accessFlags:  flags,
		this:         this,
		super:        super,
		interfaces:   boundedseq.New[constpool.Index[constpool.ClassMarker]](boundedseq.W2),
		fields:       boundedseq.New[Member](boundedseq.W2),
		methods:      boundedseq.New[Member](boundedseq.W2),
		attributes:   boundedseq.New[attribute.NamedAttribute](boundedseq.W2),
	}, nil
}

// NewFromConfig is New with majorVersion/minorVersion taken from cfg's
// Classfile.DefaultMajorVersion/DefaultMinorVersion (SPEC_FULL §3),
// letting a caller's emitconfig.toml drive classfile construction
// instead of hardcoding a version at every call site. A nil cfg behaves
// as emitconfig.DefaultConfig().
func NewFromConfig(p *constpool.Pool, cfg *emitconfig.Config, flags flagset.FlagSet, thisName, superName string) (*Class, error) {
	if cfg == nil {
		cfg = emitconfig.DefaultConfig()
	}
	return New(p, cfg.Classfile.DefaultMajorVersion, cfg.Classfile.DefaultMinorVersion, flags, thisName, superName)
}

// Pool returns the constant pool this class interns into, so callers
// can build bytecode and attributes that need to address it.
func (c *Class) Pool() *constpool.Pool { return c.pool }

// This and Super report the class's own and superclass's pool indices.
func (c *Class) This() constpool.Index[constpool.ClassMarker]  { return c.this }
func (c *Class) Super() constpool.Index[constpool.ClassMarker] { return c.super }

// AddInterface interns name and appends it to the implements list,
// failing deterministically once the list is already at its u2 bound
// (spec §4.2/§4.6).
func (c *Class) AddInterface(name string) (constpool.Index[constpool.ClassMarker], error) {
	idx, err := c.pool.StoreClass(name)
	if err != nil {
		return 0, err
	}
	if _, err := c.interfaces.Push(idx); err != nil {
		javatypes.Errorf("class: %v", err)
		return 0, err
	}
	return idx, nil
}

// AddField interns name and descriptor, appends a FieldInfo with an
// empty attribute list, and returns its index for later attribute
// attachment via FieldAddAttribute.
func (c *Class) AddField(flags flagset.FlagSet, name, descriptor string) (int, error) {
	return addMember(c.pool, c.fields, flags, name, descriptor)
}

// AddMethod interns name and descriptor, appends a MethodInfo with an
// empty attribute list, and returns its index.
func (c *Class) AddMethod(flags flagset.FlagSet, name, descriptor string) (int, error) {
	return addMember(c.pool, c.methods, flags, name, descriptor)
}

func addMember(p *constpool.Pool, members *boundedseq.Seq[Member], flags flagset.FlagSet, name, descriptor string) (int, error) {
	nameIdx, err := p.StoreUtf8(name)
	if err != nil {
		return 0, err
	}
	descIdx, err := p.StoreUtf8(descriptor)
	if err != nil {
		return 0, err
	}
	return members.Push(Member{
		AccessFlags: flags,
		Name:        nameIdx,
		Descriptor:  descIdx,
		Attributes:  boundedseq.New[attribute.NamedAttribute](boundedseq.W2),
	})
}

// FieldAddAttribute looks up the field by index and appends attr to
// its attribute list.
func (c *Class) FieldAddAttribute(fieldIndex int, attr attribute.NamedAttribute) error {
	return addMemberAttribute(c.fields, fieldIndex, attr)
}

// MethodAddAttribute looks up the method by index and appends attr to
// its attribute list.
func (c *Class) MethodAddAttribute(methodIndex int, attr attribute.NamedAttribute) error {
	return addMemberAttribute(c.methods, methodIndex, attr)
}

func addMemberAttribute(members *boundedseq.Seq[Member], index int, attr attribute.NamedAttribute) error {
	member := members.AtPtr(index)
	if member == nil {
		javatypes.Errorf("class: member index %d out of bounds", index)
		return ErrMemberIndexOutOfBounds
	}
	_, err := member.Attributes.Push(attr)
	if err != nil {
		javatypes.Errorf("class: %v", err)
	}
	return err
}

// AddAttribute appends a class-level attribute (spec §4.6
// "add_*_attribute for each well-known attribute"), failing
// deterministically once the class attribute list is already at its u2
// bound.
func (c *Class) AddAttribute(attr attribute.NamedAttribute) error {
	_, err := c.attributes.Push(attr)
	if err != nil {
		javatypes.Errorf("class: %v", err)
	}
	return err
}

// AddBootstrapMethod appends a row to the class's BootstrapMethods
// table (spec §5 supplement #5) and returns the index `invokedynamic`/
// dynamic-constant pool entries address it by.
func (c *Class) AddBootstrapMethod(method constpool.Index[constpool.MethodHandleMarker], arguments []constpool.RawIndex) uint16 {
	c.bootstraps = append(c.bootstraps, attribute.BootstrapMethod{Method: method, Arguments: arguments})
	return uint16(len(c.bootstraps) - 1)
}

// Emit serializes the whole classfile: magic, version, constant pool,
// access flags, this/super, interfaces, fields, methods, and
// attributes (JVMS §4.1 ClassFile structure). If any bootstrap methods
// were registered, a BootstrapMethods attribute carrying them is
// appended to the class attribute list automatically.
func (c *Class) Emit(w *sink.Writer) error {
	attrs := c.attributes
	if len(c.bootstraps) > 0 {
		bsm, err := attribute.NewBootstrapMethods(c.pool, c.bootstraps)
		if err != nil {
			return err
		}
		combined := append(append([]attribute.NamedAttribute{}, c.attributes.All()...), bsm)
		attrs, err = boundedseq.FromSlice(boundedseq.W2, combined)
		if err != nil {
			return err
		}
	}

	w.U4(ClassFileMagic)
	w.U2(c.MinorVersion)
	w.U2(c.MajorVersion)
	w.U2(c.pool.Count())
	c.pool.Emit(w)
	w.U2(c.accessFlags.Raw())
	w.U2(uint16(c.this.Raw()))
	w.U2(uint16(c.super.Raw()))

	c.interfaces.Emit(w, func(w *sink.Writer, iface constpool.Index[constpool.ClassMarker]) {
		w.U2(uint16(iface.Raw()))
	})
	c.fields.Emit(w, func(w *sink.Writer, m Member) { m.emit(w) })
	c.methods.Emit(w, func(w *sink.Writer, m Member) { m.emit(w) })
	attrs.Emit(w, func(w *sink.Writer, a attribute.NamedAttribute) { a.Emit(w) })

	return w.Err()
}
