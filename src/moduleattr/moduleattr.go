// Package moduleattr models the value objects nested inside a Module
// attribute (JVMS §4.7.25): requires, exports, opens, uses, and
// provides entries. Grounded on the original javac-rs-classfile's
// module.rs, which keeps these as five small structs rather than one
// flat Module record (spec §3/§4.5 "Module metadata").
package moduleattr

import (
	"github.com/JarvisCraft/javac-rs/src/boundedseq"
	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/JarvisCraft/javac-rs/src/flagset"
	"github.com/JarvisCraft/javac-rs/src/sink"
)

const (
	FlagOpen      flagset.Bit = 0x0020
	FlagSynthetic flagset.Bit = 0x1000
	FlagMandated  flagset.Bit = 0x8000
)

const (
	RequiresFlagTransitive  flagset.Bit = 0x0020
	RequiresFlagStaticPhase flagset.Bit = 0x0040
	RequiresFlagSynthetic   flagset.Bit = 0x1000
	RequiresFlagMandated    flagset.Bit = 0x8000
)

const (
	ExportsFlagSynthetic flagset.Bit = 0x1000
	ExportsFlagMandated  flagset.Bit = 0x8000
)

const (
	OpensFlagSynthetic flagset.Bit = 0x1000
	OpensFlagMandated  flagset.Bit = 0x8000
)

// Requires is one entry of the Module attribute's requires table.
type Requires struct {
	Module        constpool.Index[constpool.ModuleMarker]
	Flags         flagset.FlagSet
	VersionIndex  constpool.Index[constpool.Utf8Marker] // 0 when absent
}

func (r Requires) Emit(w *sink.Writer) {
	w.U2(uint16(r.Module.Raw()))
	w.U2(uint16(r.Flags.Raw()))
	w.U2(uint16(r.VersionIndex.Raw()))
}

// ExportsEntry is one entry of the Module attribute's exports table: a
// package exported, optionally restricted to a set of modules.
type ExportsEntry struct {
	Package constpool.Index[constpool.PackageMarker]
	Flags   flagset.FlagSet
	To      *boundedseq.Seq[constpool.Index[constpool.ModuleMarker]]
}

func NewExportsEntry(pkg constpool.Index[constpool.PackageMarker], flags flagset.FlagSet) ExportsEntry {
	return ExportsEntry{Package: pkg, Flags: flags, To: boundedseq.New[constpool.Index[constpool.ModuleMarker]](boundedseq.W2)}
}

func (e ExportsEntry) Emit(w *sink.Writer) {
	w.U2(uint16(e.Package.Raw()))
	w.U2(uint16(e.Flags.Raw()))
	e.To.Emit(w, func(w *sink.Writer, m constpool.Index[constpool.ModuleMarker]) { w.U2(uint16(m.Raw())) })
}

// OpensEntry is one entry of the Module attribute's opens table: a
// package opened for deep reflection, optionally restricted to a set of
// modules.
type OpensEntry struct {
	Package constpool.Index[constpool.PackageMarker]
	Flags   flagset.FlagSet
	To      *boundedseq.Seq[constpool.Index[constpool.ModuleMarker]]
}

func NewOpensEntry(pkg constpool.Index[constpool.PackageMarker], flags flagset.FlagSet) OpensEntry {
	return OpensEntry{Package: pkg, Flags: flags, To: boundedseq.New[constpool.Index[constpool.ModuleMarker]](boundedseq.W2)}
}

func (o OpensEntry) Emit(w *sink.Writer) {
	w.U2(uint16(o.Package.Raw()))
	w.U2(uint16(o.Flags.Raw()))
	o.To.Emit(w, func(w *sink.Writer, m constpool.Index[constpool.ModuleMarker]) { w.U2(uint16(m.Raw())) })
}

// Uses is one entry of the Module attribute's uses table: a service
// interface this module consumes. No flags, no targets — a bare class
// reference (spec's module.rs: `pub type ModuleUses = ConstPoolIndex<ConstClassInfo>`).
type Uses = constpool.Index[constpool.ClassMarker]

// ProvidesEntry is one entry of the Module attribute's provides table: a
// service interface and the concrete classes implementing it.
type ProvidesEntry struct {
	Provides constpool.Index[constpool.ClassMarker]
	With     *boundedseq.Seq[constpool.Index[constpool.ClassMarker]]
}

func NewProvidesEntry(provides constpool.Index[constpool.ClassMarker]) ProvidesEntry {
	return ProvidesEntry{Provides: provides, With: boundedseq.New[constpool.Index[constpool.ClassMarker]](boundedseq.W2)}
}

func (p ProvidesEntry) Emit(w *sink.Writer) {
	w.U2(uint16(p.Provides.Raw()))
	p.With.Emit(w, func(w *sink.Writer, c constpool.Index[constpool.ClassMarker]) { w.U2(uint16(c.Raw())) })
}

// Module is the full body of a Module attribute (JVMS §4.7.25), minus
// the name-index/length-prefix envelope that src/attribute writes.
type Module struct {
	Name    constpool.Index[constpool.ModuleMarker]
	Flags   flagset.FlagSet
	Version constpool.Index[constpool.Utf8Marker] // 0 when absent

	Requires *boundedseq.Seq[Requires]
	Exports  *boundedseq.Seq[ExportsEntry]
	Opens    *boundedseq.Seq[OpensEntry]
	Uses     *boundedseq.Seq[Uses]
	Provides *boundedseq.Seq[ProvidesEntry]
}

// New constructs an empty Module body naming module name, to which
// requires/exports/opens/uses/provides entries are appended.
func New(name constpool.Index[constpool.ModuleMarker], flags flagset.FlagSet, version constpool.Index[constpool.Utf8Marker]) *Module {
	return &Module{
		Name:     name,
		Flags:    flags,
		Version:  version,
		Requires: boundedseq.New[Requires](boundedseq.W2),
		Exports:  boundedseq.New[ExportsEntry](boundedseq.W2),
		Opens:    boundedseq.New[OpensEntry](boundedseq.W2),
		Uses:     boundedseq.New[Uses](boundedseq.W2),
		Provides: boundedseq.New[ProvidesEntry](boundedseq.W2),
	}
}

// Emit writes the Module attribute's body in JVMS §4.7.25 order.
func (m *Module) Emit(w *sink.Writer) {
	w.U2(uint16(m.Name.Raw()))
	w.U2(uint16(m.Flags.Raw()))
	w.U2(uint16(m.Version.Raw()))
	m.Requires.Emit(w, func(w *sink.Writer, r Requires) { r.Emit(w) })
	m.Exports.Emit(w, func(w *sink.Writer, e ExportsEntry) { e.Emit(w) })
	m.Opens.Emit(w, func(w *sink.Writer, o OpensEntry) { o.Emit(w) })
	m.Uses.Emit(w, func(w *sink.Writer, u Uses) { w.U2(uint16(u.Raw())) })
	m.Provides.Emit(w, func(w *sink.Writer, p ProvidesEntry) { p.Emit(w) })
}
