package shadenative

import "github.com/sliverarmory/shadenative/internal/diag"

func acquireEnv(vm VM) (Env, error) {
	env, err := vm.Env(InterfaceVersion)
	if err != nil {
		diag.Fatalf("host runtime interface version mismatch: %v", err)
		return nil, ErrVersionMismatch
	}
	return env, nil
}

// OnUnload is the unload hook. It acquires the environment the same way as
// OnLoad and hands it to the unload callback; there is no other state to
// tear down at this level. On version mismatch it reports the condition
// and returns without invoking the callback.
func OnUnload(vm VM, unload UnloadFunc) {
	env, err := acquireEnv(vm)
	if err != nil {
		return
	}
	unload(env)
}
