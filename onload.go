//go:build !shadenative_static

package shadenative

import (
	"fmt"

	"github.com/sliverarmory/shadenative/internal/diag"
	"github.com/sliverarmory/shadenative/prefix"
	"github.com/sliverarmory/shadenative/selfpath"
)

// Swappable for tests; production always resolves through selfpath.
var resolveLibraryPath = selfpath.Resolve

// OnLoad is the load hook. It acquires the runtime environment for the
// current thread, resolves the path of the shared object that is currently
// executing, recovers the package prefix mangled into that path, and
// invokes load with the environment and the prefix. load takes ownership
// of the prefix. Any earlier failure aborts the load and is reported to
// the process diagnostic stream.
func OnLoad(vm VM, libraryName string, load LoadFunc) error {
	env, err := acquireEnv(vm)
	if err != nil {
		return err
	}

	libraryPath, err := resolveLibraryPath()
	if err != nil {
		diag.Fatalf("%s: resolving own library path: %v", libraryName, err)
		return fmt.Errorf("shadenative: resolve library path: %w", err)
	}

	packagePrefix, err := prefix.Parse(libraryPath, libraryName)
	if err != nil {
		diag.Fatalf("%s: unexpected library path %q: %v", libraryName, libraryPath, err)
		return fmt.Errorf("shadenative: parse package prefix from %q: %w", libraryPath, err)
	}

	return load(env, packagePrefix)
}
