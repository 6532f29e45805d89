//go:build !linux && !darwin && !windows

package selfpath

import "errors"

func resolve() (string, error) {
	return "", errors.New("selfpath: path resolution is only supported on linux, darwin, and windows")
}
