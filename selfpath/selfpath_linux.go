//go:build linux

package selfpath

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func resolve() (string, error) {
	modules, err := loadedModules()
	if err != nil {
		return "", err
	}
	path, ok := moduleForAddress(modules, anchorAddress())
	if !ok {
		return "", ErrNoContainingModule
	}
	return path, nil
}

func loadedModules() ([]moduleRecord, error) {
	raw, err := os.ReadFile("/proc/self/maps")
	if err != nil {
		return nil, fmt.Errorf("selfpath: read /proc/self/maps: %w", err)
	}
	return parseProcMaps(raw)
}

// parseProcMaps turns the process mapping list into module records.
// Executable mappings become text ranges and writable ones data ranges;
// anonymous and pseudo mappings are skipped.
func parseProcMaps(raw []byte) ([]moduleRecord, error) {
	lines := strings.Split(string(raw), "\n")
	modules := make([]moduleRecord, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}

		perms := fields[1]
		executable := strings.Contains(perms, "x")
		writable := strings.Contains(perms, "w")
		if !executable && !writable {
			continue
		}

		rangeParts := strings.SplitN(fields[0], "-", 2)
		if len(rangeParts) != 2 {
			continue
		}
		start, startErr := parseHexUintptr(rangeParts[0])
		end, endErr := parseHexUintptr(rangeParts[1])
		if startErr != nil || endErr != nil || end <= start {
			continue
		}

		path := strings.Join(fields[5:], " ")
		path = strings.TrimSuffix(path, " (deleted)")
		if path == "" || !strings.HasPrefix(path, "/") {
			continue
		}

		module := moduleRecord{path: path}
		if executable {
			module.text = addrRange{start: start, end: end}
		} else {
			module.data = addrRange{start: start, end: end}
		}
		modules = append(modules, module)
	}
	return modules, nil
}

func parseHexUintptr(s string) (uintptr, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("selfpath: invalid hex address %q: %w", s, err)
	}
	return uintptr(v), nil
}
