package moduleattr

import (
	"bytes"
	"testing"

	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/JarvisCraft/javac-rs/src/flagset"
	"github.com/JarvisCraft/javac-rs/src/sink"
	"github.com/stretchr/testify/require"
)

func TestModuleEmitsHeaderAndEmptyTables(t *testing.T) {
	p := constpool.New()
	name, err := p.StoreModule("com.example.app")
	require.NoError(t, err)

	m := New(name, flagset.Empty().Set(FlagOpen), 0)

	var buf bytes.Buffer
	w := sink.NewWriter(&buf)
	m.Emit(w)
	require.NoError(t, w.Err())

	// name(2) + flags(2) + version(2) + 5 table counts of 0 (2 bytes each)
	require.Equal(t, 2+2+2+5*2, buf.Len())
}

func TestRequiresEntryRoundTripsThroughSeq(t *testing.T) {
	p := constpool.New()
	name, err := p.StoreModule("com.example.app")
	require.NoError(t, err)
	dep, err := p.StoreModule("java.base")
	require.NoError(t, err)

	m := New(name, flagset.Empty(), 0)
	_, err = m.Requires.Push(Requires{Module: dep, Flags: flagset.Empty().Set(RequiresFlagTransitive)})
	require.NoError(t, err)

	require.Equal(t, 1, m.Requires.Len())
	entry, ok := m.Requires.At(0)
	require.True(t, ok)
	require.True(t, entry.Flags.Has(RequiresFlagTransitive))
}

func TestExportsEntryCanRestrictToModules(t *testing.T) {
	p := constpool.New()
	pkg, err := p.StorePackage("com/example/internal")
	require.NoError(t, err)
	to, err := p.StoreModule("com.example.friend")
	require.NoError(t, err)

	e := NewExportsEntry(pkg, flagset.Empty())
	_, err = e.To.Push(to)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := sink.NewWriter(&buf)
	e.Emit(w)
	require.NoError(t, w.Err())
	require.Equal(t, 2+2+2+2, buf.Len()) // package + flags + to_count + one entry
}

func TestProvidesEntryListsImplementations(t *testing.T) {
	p := constpool.New()
	service, err := p.StoreClass("com/example/Service")
	require.NoError(t, err)
	impl, err := p.StoreClass("com/example/ServiceImpl")
	require.NoError(t, err)

	provides := NewProvidesEntry(service)
	_, err = provides.With.Push(impl)
	require.NoError(t, err)
	require.Equal(t, 1, provides.With.Len())
}
