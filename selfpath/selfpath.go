// Package selfpath discovers the absolute on-disk path of the shared
// object that contains this package's code, by asking the platform's
// dynamic loader which module holds the address of an anchor symbol.
package selfpath

import (
	"errors"
	"reflect"
)

// ErrNoContainingModule reports that no loaded module covers the anchor
// address. Path resolution failure is fatal to the current library load
// and never retried.
var ErrNoContainingModule = errors.New("selfpath: no loaded module contains the anchor address")

// Resolve returns the platform-native absolute path of the shared object
// containing this package. On platforms whose loaded modules carry archive
// members the result is formatted as "path(member)".
func Resolve() (string, error) {
	return resolve()
}

// anchor exists only so its address can be used to ask the loader "which
// module am I in". It must stay in this package.
func anchor() {}

func anchorAddress() uintptr {
	return reflect.ValueOf(anchor).Pointer()
}

type addrRange struct {
	start, end uintptr
}

func (r addrRange) contains(addr uintptr) bool {
	return addr >= r.start && addr < r.end
}

// moduleRecord describes one loaded module: its file path, an optional
// archive member, and its mapped text and data ranges.
type moduleRecord struct {
	path   string
	member string
	text   addrRange
	data   addrRange
}

func (m moduleRecord) contains(addr uintptr) bool {
	return m.text.contains(addr) || m.data.contains(addr)
}

func (m moduleRecord) location() string {
	if m.member == "" {
		return m.path
	}
	return m.path + "(" + m.member + ")"
}

// moduleForAddress walks a loaded-module list and returns the location of
// the module whose text or data range covers addr.
func moduleForAddress(modules []moduleRecord, addr uintptr) (string, bool) {
	for _, module := range modules {
		if module.contains(addr) {
			return module.location(), true
		}
	}
	return "", false
}
