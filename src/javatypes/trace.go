// Package javatypes holds the primitive-name aliases and small ambient
// helpers (tracing, error logging) shared by every other package in this
// module. Nothing here is classfile- or grammar-specific.
package javatypes

import "log"

// TraceLevel gates Trace/Tracef the way jacobin's trace package and
// tools_jvm_autodeps's vlog.Level gate their own verbose logging: the
// caller bumps it once (typically from a test or an embedding tool), and
// Trace/Tracef themselves check it before formatting a message, so
// callers throughout constpool, bytecode, attribute, and class can log
// on every interned entry and error return without paying for string
// formatting while tracing is off.
var TraceLevel = 0

// Trace logs msg when TraceLevel > 0. It never allocates or formats when
// tracing is disabled.
func Trace(msg string) {
	if TraceLevel > 0 {
		log.Println("[trace] " + msg)
	}
}

// Tracef is Trace with fmt.Sprintf-style formatting.
func Tracef(format string, args ...interface{}) {
	if TraceLevel > 0 {
		log.Printf("[trace] "+format, args...)
	}
}

// Error logs an error-level message unconditionally, mirroring jacobin's
// trace.Error(errMsg) calls that always surface regardless of verbosity.
func Error(msg string) {
	log.Println("[error] " + msg)
}

// Errorf is Error with fmt.Sprintf-style formatting.
func Errorf(format string, args ...interface{}) {
	log.Printf("[error] "+format, args...)
}
