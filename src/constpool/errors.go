package constpool

import "errors"

// ErrOutOfSpace is returned when storing an entry would push the pool's
// total slot count past 2^16-1 (spec §4.3 "Failure modes").
var ErrOutOfSpace = errors.New("constpool: out of space (index would exceed u2 range)")

// ErrSourceTooBig is returned when a Utf8 payload exceeds the u2
// byte-length bound the classfile format allows (spec §4.3).
var ErrSourceTooBig = errors.New("constpool: utf8 payload exceeds u2 length bound")

// ErrIllegalMethodHandle is returned when a MethodHandle's reference kind
// is not legal against the referenced entry's kind (spec §5 supplement
// #2).
var ErrIllegalMethodHandle = errors.New("constpool: method handle reference kind illegal for referent")

// ErrDanglingIndex reports an index that does not reference an entry
// owned by this pool. No Store method returns it: composite Store
// methods take the typed indices they are given without checking them
// against the pool.
var ErrDanglingIndex = errors.New("constpool: index does not reference an entry owned by this pool")
