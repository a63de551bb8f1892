// Package constpool implements the deduplicating constant pool described
// in spec §4.3: a store of typed pool entries that issues typed 1-based
// indices and serializes entries in insertion order, respecting the
// double-slot occupancy of Long/Double constants. It is grounded on
// jacobin's read-direction CPutils.go/classloader.go (CpType,
// FetchCPentry, the parallel cpIndex/IntConsts/ClassRefs/... arrays),
// inverted here into intern-on-insert.
package constpool

import (
	"math"

	"github.com/JarvisCraft/javac-rs/src/javatypes"
)

const maxSlots = 1<<16 - 1 // u2 range; slot 0 counts toward this too

// entry is the pool's internal tagged-union representation. All fields
// are comparable, so structural equality (==) is the dedup comparison
// spec §4.3 calls for ("storing V twice yields equal indices"), except
// that findOrPush compares Float/Double payloads by bit pattern: NaN
// then matches itself and -0.0 stays distinct from 0.0.
type entry struct {
	tag Tag

	utf8 string // TagUtf8

	intVal    int32   // TagInteger
	floatVal  float32 // TagFloat
	longVal   int64   // TagLong
	doubleVal float64 // TagDouble

	nameIdx RawIndex // TagClass (class name), TagString (utf8), TagModule, TagPackage

	classIdx  RawIndex // TagFieldRef/TagMethodRef/TagInterfaceMethodRef
	natIdx    RawIndex // TagFieldRef/TagMethodRef/TagInterfaceMethodRef: NameAndType index

	ntNameIdx RawIndex // TagNameAndType.name
	ntDescIdx RawIndex // TagNameAndType.descriptor

	refKind  RefKind  // TagMethodHandle
	refIndex RawIndex // TagMethodHandle: FieldRef/MethodRef/InterfaceMethodRef index

	methodTypeDescIdx RawIndex // TagMethodType

	bootstrapMethodAttrIdx uint16   // TagDynamic/TagInvokeDynamic: index into the class's bootstrap_methods table
	dynamicNatIdx          RawIndex // TagDynamic/TagInvokeDynamic: NameAndType index
}

// Pool is the owned, mutable constant pool of a single class (spec §5:
// "The constant pool is owned by its containing class and is mutated
// through class-level operations"). The zero value is not usable;
// construct with New.
type Pool struct {
	entries []entry // entries[0] is always the reserved Empty sentinel
}

// New constructs a pool containing only the reserved slot-0 Empty entry.
func New() *Pool {
	return &Pool{entries: []entry{{tag: tagEmpty}}}
}

// Count returns the classfile's constant_pool_count field: the total
// slot count including the reserved slot 0 and any long/double filler
// slots (spec §4.3 "Slot accounting").
func (p *Pool) Count() uint16 {
	return uint16(len(p.entries))
}

// push appends e (and, for Long/Double, a filler Empty slot after it),
// returning the 1-based index of e's own slot. It fails with
// ErrOutOfSpace if the pool would exceed the u2 slot range.
func (p *Pool) push(e entry, wide bool) (RawIndex, error) {
	extra := 1
	if wide {
		extra = 2
	}
	if len(p.entries)+extra > maxSlots {
		javatypes.Errorf("constpool: pool exhausted interning tag %v (%d entries, +%d needed)", e.tag, len(p.entries), extra)
		return 0, ErrOutOfSpace
	}
	idx := RawIndex(len(p.entries))
	p.entries = append(p.entries, e)
	if wide {
		p.entries = append(p.entries, entry{tag: tagEmpty})
	}
	javatypes.Tracef("constpool: interned new tag %v at index %d", e.tag, idx)
	return idx, nil
}

// findOrPush scans for an entry structurally equal to e and returns its
// index; otherwise pushes a new one. This is the pool's one dedup path
// (spec §4.3 "Interning"); a linear scan is acceptable for modest class
// sizes per spec §9, with a structural-hash map as the documented
// scale-up path for large pools.
func (p *Pool) findOrPush(e entry) (RawIndex, error) {
	for i := 1; i < len(p.entries); i++ {
		c := p.entries[i]
		same := c == e
		switch e.tag {
		case TagFloat:
			same = c.tag == e.tag && math.Float32bits(c.floatVal) == math.Float32bits(e.floatVal)
		case TagDouble:
			same = c.tag == e.tag && math.Float64bits(c.doubleVal) == math.Float64bits(e.doubleVal)
		}
		if same {
			javatypes.Tracef("constpool: dedup hit for tag %v, reusing index %d", e.tag, i)
			return RawIndex(i), nil
		}
	}
	return p.push(e, isWide(e.tag))
}

func isWide(tag Tag) bool {
	return tag == TagLong || tag == TagDouble
}
