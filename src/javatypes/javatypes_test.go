package javatypes

import "testing"

func TestTraceIsSilentByDefault(t *testing.T) {
	if TraceLevel != 0 {
		t.Fatalf("TraceLevel default changed to %d; Trace/Tracef assume 0 means silent", TraceLevel)
	}
	Trace("this should not panic or require a sink")
	Tracef("neither should this: %d", 42)
}

func TestNumericConversionBoundaries(t *testing.T) {
	if IntMinAsUnsigned != 1<<31 {
		t.Fatalf("IntMinAsUnsigned = %d, want 2^31", IntMinAsUnsigned)
	}
	if LongMinAsUnsigned != 1<<63 {
		t.Fatalf("LongMinAsUnsigned = %d, want 2^63", LongMinAsUnsigned)
	}
	if MaxUint32AsLiteral != 1<<32-1 {
		t.Fatalf("MaxUint32AsLiteral = %d, want 2^32-1", MaxUint32AsLiteral)
	}
}
