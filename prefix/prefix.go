// Package prefix recovers the relocated package prefix mangled into a
// shaded native library's filename.
//
// A relocation (shading) tool that renames a library's managed-runtime
// counterpart classes also renames the library file itself, embedding the
// new package path between the platform's library marker and the original
// library name. In that embedded segment '.' has been replaced by '_' and
// a literal '_' by "_1". Parse inverts the mangling, so a single compiled
// library serves correctly under arbitrarily many relocated namespaces
// without a compile-time constant.
package prefix

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLibraryNameNotFound reports that the library name does not occur
	// in its own resolved path, which indicates a packaging
	// inconsistency.
	ErrLibraryNameNotFound = errors.New("prefix: library name not found in library path")

	// ErrMissingLibAnchor reports a POSIX library path with no "lib"
	// marker before the library name.
	ErrMissingLibAnchor = errors.New(`prefix: no "lib" anchor before library name`)
)

// UnsupportedEscapeError reports a mangled prefix using a digit escape
// this grammar does not define. Only "_1" is valid.
type UnsupportedEscapeError struct {
	Escape byte
}

func (e *UnsupportedEscapeError) Error() string {
	return fmt.Sprintf("prefix: unsupported escape pattern %q in mangled prefix", "_"+string(e.Escape))
}

type pathStyle int

const (
	posixStyle pathStyle = iota
	windowsStyle
)

// Parse extracts the package prefix mangled into libraryPath. A non-empty
// result is slash-delimited and ends in a trailing slash. An empty result
// with a nil error means the library carries no prefix, which is not an
// error: the library simply was not relocated.
func Parse(libraryPath, libraryName string) (string, error) {
	return parse(libraryPath, libraryName, hostStyle)
}

func parse(libraryPath, libraryName string, style pathStyle) (string, error) {
	if libraryName == "" {
		return "", ErrLibraryNameNotFound
	}

	// A shaded name can contain the target name as a substring more than
	// once, so only the last match is structural.
	matchStart := strings.LastIndex(libraryPath, libraryName)
	if matchStart < 0 {
		return "", ErrLibraryNameNotFound
	}

	var regionStart int
	switch style {
	case windowsStyle:
		// The path is allowed to be a bare filename with no directory.
		if sep := strings.LastIndexByte(libraryPath[:matchStart], '\\'); sep >= 0 {
			regionStart = sep + 1
		}
	default:
		anchor := ReverseFind(libraryPath, matchStart, 0, "lib")
		if anchor < 0 {
			return "", ErrMissingLibAnchor
		}
		regionStart = anchor + len("lib")
	}

	mangled := libraryPath[regionStart:matchStart]
	if mangled == "" {
		return "", nil
	}
	return unmangle(mangled)
}

func unmangle(mangled string) (string, error) {
	var out strings.Builder
	out.Grow(len(mangled) + 1)

	for i := 0; i < len(mangled); i++ {
		ch := mangled[i]
		if ch != '_' {
			out.WriteByte(ch)
			continue
		}
		// A trailing lone '_' is treated as a package separator.
		if i+1 == len(mangled) {
			out.WriteByte('/')
			continue
		}
		next := mangled[i+1]
		switch {
		case next < '0' || next > '9':
			out.WriteByte('/')
		case next == '1':
			i++
			out.WriteByte('_')
		default:
			return "", &UnsupportedEscapeError{Escape: next}
		}
	}

	s := out.String()
	if s[len(s)-1] != '/' {
		s += "/"
	}
	return s, nil
}

// Prepend returns the concatenation of an optional package prefix and a
// base class name. An empty prefix returns name unchanged.
func Prepend(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + name
}

// ReverseFind returns the start index of the rightmost occurrence of
// needle in s that ends at or before start, scanning no further back than
// floor. It returns -1 when there is no such occurrence. The backward
// orientation matters: the filename can contain the target library's own
// name as a substring of a longer, shaded name, so structural markers must
// be located before a previously found anchor, never after.
func ReverseFind(s string, start, floor int, needle string) int {
	if floor < 0 {
		floor = 0
	}
	if start > len(s) {
		start = len(s)
	}
	for i := start - len(needle); i >= floor; i-- {
		if s[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
