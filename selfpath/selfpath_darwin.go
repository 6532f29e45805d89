//go:build darwin

package selfpath

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// dlInfo mirrors the layout of Dl_info from <dlfcn.h>.
type dlInfo struct {
	fname unsafe.Pointer
	fbase unsafe.Pointer
	sname unsafe.Pointer
	saddr unsafe.Pointer
}

func resolve() (string, error) {
	dladdr, err := purego.Dlsym(purego.RTLD_DEFAULT, "dladdr")
	if err != nil {
		return "", fmt.Errorf("selfpath: resolve dladdr: %w", err)
	}

	var info dlInfo
	ret, _, _ := purego.SyscallN(dladdr, anchorAddress(), uintptr(unsafe.Pointer(&info)))
	if ret == 0 || info.fname == nil {
		return "", errors.New("selfpath: dladdr could not locate the anchor address")
	}
	return cStringFromPtr(uintptr(info.fname)), nil
}

func cStringFromPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	const maxLen = 1 << 20
	buf := make([]byte, 0, 64)
	for i := 0; i < maxLen; i++ {
		ch := *(*byte)(unsafe.Pointer(ptr + uintptr(i)))
		if ch == 0 {
			return string(buf)
		}
		buf = append(buf, ch)
	}
	return string(buf)
}
