package shadenative

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unsafe"
)

var (
	// ErrStaticFree reports an attempt to free a compile-time constant
	// string. Fixed method-table entries are never freed.
	ErrStaticFree = errors.New("shadenative: cannot free a static string")

	// ErrAlreadyFreed reports a second free of the same buffer, or a free
	// through an allocator that never owned it.
	ErrAlreadyFreed = errors.New("shadenative: string already freed or not owned by its allocator")
)

// CString is a NUL-terminated byte buffer whose address may be handed to
// the host runtime for as long as a binding exists. Static instances live
// for the whole process; dynamic ones are owned by an Allocator and must
// be freed exactly once, when the table holding them is freed.
type CString struct {
	buf   []byte
	owner *Allocator
}

// StaticCString wraps a compile-time constant signature or name. It
// panics when s contains a NUL byte.
func StaticCString(s string) *CString {
	c, err := newCString(s, nil)
	if err != nil {
		panic(err)
	}
	return c
}

func newCString(s string, owner *Allocator) (*CString, error) {
	if strings.ContainsRune(s, '\x00') {
		return nil, errors.New("shadenative: string contains NUL")
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &CString{buf: buf, owner: owner}, nil
}

// String returns the buffer contents without the trailing NUL. It returns
// "" on a nil or freed string.
func (c *CString) String() string {
	if c == nil || c.buf == nil {
		return ""
	}
	return string(c.buf[:len(c.buf)-1])
}

// Addr returns the address of the first byte, or 0 on a nil or freed
// string.
func (c *CString) Addr() uintptr {
	if c == nil || c.buf == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(&c.buf[0]))
}

// Free returns the buffer to its owning allocator. It is a no-op on nil,
// errors on a static string, and errors on a second free.
func (c *CString) Free() error {
	if c == nil {
		return nil
	}
	if c.owner == nil {
		return ErrStaticFree
	}
	return c.owner.free(c)
}

// Allocator tracks ownership of load-time string buffers so the unload
// path can verify that every dynamic allocation is returned exactly once.
// The zero value is ready to use. An Allocator is safe for use from
// independent goroutines loading distinct libraries.
type Allocator struct {
	mu   sync.Mutex
	live map[*CString]struct{}
}

// NewCString allocates an owned NUL-terminated copy of s.
func (a *Allocator) NewCString(s string) (*CString, error) {
	c, err := newCString(s, a)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	if a.live == nil {
		a.live = make(map[*CString]struct{})
	}
	a.live[c] = struct{}{}
	a.mu.Unlock()
	return c, nil
}

// Sprintf allocates an owned string from a format, for signatures and
// identifiers composed at load time.
func (a *Allocator) Sprintf(format string, args ...any) (*CString, error) {
	return a.NewCString(fmt.Sprintf(format, args...))
}

// Live reports how many allocations are outstanding. A balanced
// load/unload cycle leaves it at zero.
func (a *Allocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

func (a *Allocator) free(c *CString) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.live[c]; !ok {
		return ErrAlreadyFreed
	}
	delete(a.live, c)
	c.buf = nil
	return nil
}
