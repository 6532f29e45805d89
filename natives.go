package shadenative

import (
	"fmt"

	"github.com/sliverarmory/shadenative/prefix"
)

// RegisterNatives composes the relocated class identifier from
// packagePrefix and className, resolves it, and binds every descriptor in
// methods to it. The composed identifier is transient and not retained.
func RegisterNatives(env Env, packagePrefix, className string, methods []NativeMethod) error {
	name := prefix.Prepend(packagePrefix, className)
	class, err := env.FindClass(name)
	if err != nil {
		return fmt.Errorf("shadenative: find class %s: %w", name, err)
	}
	if err := env.RegisterNatives(class, methods); err != nil {
		return fmt.Errorf("shadenative: register natives on %s: %w", name, err)
	}
	return nil
}

// UnregisterNatives composes the same identifier as RegisterNatives and
// removes all native bindings from the class it resolves to.
func UnregisterNatives(env Env, packagePrefix, className string) error {
	name := prefix.Prepend(packagePrefix, className)
	class, err := env.FindClass(name)
	if err != nil {
		return fmt.Errorf("shadenative: find class %s: %w", name, err)
	}
	if err := env.UnregisterNatives(class); err != nil {
		return fmt.Errorf("shadenative: unregister natives on %s: %w", name, err)
	}
	return nil
}

// FreeDynamicTable releases the allocator-owned signatures of the
// dynamically built tail of a method table. Entries below fixedCount are
// compile-time constants owned by the caller and are left untouched. A nil
// table is a no-op. Freeing continues past an entry that fails so the
// table never ends up half-released; the first error is returned.
func FreeDynamicTable(table []NativeMethod, fixedCount, totalCount int) error {
	if table == nil {
		return nil
	}
	if fixedCount < 0 || totalCount < fixedCount || totalCount > len(table) {
		return fmt.Errorf("shadenative: invalid dynamic table bounds [%d, %d) for %d methods", fixedCount, totalCount, len(table))
	}

	var firstErr error
	for i := fixedCount; i < totalCount; i++ {
		if sig := table[i].Signature; sig != nil {
			if err := sig.Free(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		table[i] = NativeMethod{}
	}
	return firstErr
}

// FreeDynamicName releases a dynamically composed identifier and clears
// the caller's reference. Safe on nil and on an already-cleared name.
func FreeDynamicName(name **CString) error {
	if name == nil || *name == nil {
		return nil
	}
	err := (*name).Free()
	*name = nil
	return err
}
