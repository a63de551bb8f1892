package flagset

// Named bit positions per JVMS §4.1 (class), §4.5 (field), §4.6 (method),
// and §4.7.6 (nested class / InnerClasses). Values are data-driven per
// spec §9 ("tag computation should be data-driven... whenever the
// mapping is dense") rather than duplicated across per-kind constant
// blocks: callers pick the table matching the member kind they're
// building and the underlying representation (a plain masked uint16) is
// shared.
const (
	AccPublic     Bit = 0x0001
	AccPrivate    Bit = 0x0002
	AccProtected  Bit = 0x0004
	AccStatic     Bit = 0x0008
	AccFinal      Bit = 0x0010
	AccSuper      Bit = 0x0020 // class only; ACC_SYNCHRONIZED reuses this bit for methods
	AccSynchronized Bit = 0x0020
	AccOpen       Bit = 0x0020 // module only
	AccVolatile   Bit = 0x0040
	AccBridge     Bit = 0x0040
	AccTransitive Bit = 0x0020
	AccTransient  Bit = 0x0080
	AccVarargs    Bit = 0x0080
	AccNative     Bit = 0x0100
	AccInterface  Bit = 0x0200
	AccAbstract   Bit = 0x0400
	AccStrict     Bit = 0x0800
	AccSynthetic  Bit = 0x1000
	AccAnnotation Bit = 0x2000
	AccEnum       Bit = 0x4000
	AccModule     Bit = 0x8000
	AccMandated   Bit = 0x8000
)
