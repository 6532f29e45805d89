//go:build windows

package selfpath

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const maxModulePathLen = 2048

func resolve() (string, error) {
	var module windows.Handle
	flags := uint32(windows.GET_MODULE_HANDLE_EX_FLAG_FROM_ADDRESS | windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT)
	anchorName := (*uint16)(unsafe.Pointer(anchorAddress()))
	if err := windows.GetModuleHandleEx(flags, anchorName, &module); err != nil {
		return "", fmt.Errorf("selfpath: GetModuleHandleEx: %w", err)
	}

	// The oldest supported GetModuleFileName variants do not guarantee
	// NUL termination, so the buffer keeps a spare slot that is
	// terminated explicitly.
	buf := make([]uint16, maxModulePathLen+1)
	n, err := windows.GetModuleFileName(module, &buf[0], maxModulePathLen)
	if err != nil {
		return "", fmt.Errorf("selfpath: GetModuleFileName: %w", err)
	}
	buf[n] = 0
	return windows.UTF16ToString(buf[:n]), nil
}
