// Package shadenative lets a relocated (shaded) native shared library
// discover, at load time, the package prefix under which its managed-runtime
// counterpart classes were renamed, and bind native method tables against
// those relocated class identifiers.
//
// The two lifecycle entry points, OnLoad and OnUnload, are the only surface
// collaborators need. OnLoad resolves the on-disk path of the module that is
// currently executing, recovers the mangled package prefix embedded in its
// filename, and hands both the runtime environment and the prefix to the
// caller's load callback. Everything else here is the supporting utility
// surface for callbacks that need finer control.
package shadenative

import "errors"

// InterfaceVersion is the host runtime interface revision this library is
// built against. Environment acquisition fails when the runtime cannot
// serve it.
const InterfaceVersion uint32 = 0x00010006

// ErrVersionMismatch reports that the host runtime could not provide an
// environment at InterfaceVersion. This is fatal to the affected library
// load and never retried.
var ErrVersionMismatch = errors.New("shadenative: host runtime interface version mismatch")

// Class is an opaque handle to a resolved class in the host runtime.
type Class uintptr

// Env is a per-thread view of the host runtime's class and symbol tables.
type Env interface {
	// FindClass resolves a fully qualified, slash-delimited class
	// identifier.
	FindClass(name string) (Class, error)

	// RegisterNatives binds every descriptor in methods to class. The
	// runtime may retain the signature buffer addresses while the
	// bindings exist.
	RegisterNatives(class Class, methods []NativeMethod) error

	// UnregisterNatives removes all native bindings previously attached
	// to class.
	UnregisterNatives(class Class) error
}

// VM is the process-wide host runtime handle passed to the lifecycle hooks.
type VM interface {
	// Env returns the environment bound to the calling thread, or an
	// error when the runtime cannot serve the requested interface
	// version.
	Env(version uint32) (Env, error)
}

// NativeMethod describes one native implementation to bind to a class
// method: a name, a type signature, and the implementing function's
// address.
type NativeMethod struct {
	Name      string
	Signature *CString
	Fn        uintptr
}

// LoadFunc is the caller-supplied load callback. It takes ownership of
// packagePrefix; an empty string means the library was not relocated.
type LoadFunc func(env Env, packagePrefix string) error

// UnloadFunc is the caller-supplied unload callback.
type UnloadFunc func(env Env)
