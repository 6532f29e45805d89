//go:build windows

package prefix

const hostStyle = windowsStyle
