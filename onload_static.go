//go:build shadenative_static

package shadenative

// OnLoad is the load hook for statically linked builds. Static linkage
// implies no relocation, so path resolution and prefix parsing are skipped
// and load receives an empty prefix.
func OnLoad(vm VM, libraryName string, load LoadFunc) error {
	_ = libraryName

	env, err := acquireEnv(vm)
	if err != nil {
		return err
	}
	return load(env, "")
}
