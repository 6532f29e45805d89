//go:build !windows

package prefix

const hostStyle = posixStyle
