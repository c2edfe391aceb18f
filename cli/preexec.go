package cli

// PreExec is a function that may run before execution of a [Command]
type PreExec func() error

type preExecHooks struct {
	fns []PreExec
}

func (h *preExecHooks) run() error {
	if h == nil {
		return nil
	}
	for _, fn := range h.fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// AddPreExec registers a function that will be executed right before any [Command] in this set, or nested under it, runs.
// Flags have already been parsed when it runs, so it's a good place for setup that every command needs.
// If an error is returned from a [PreExec], then the [Command] will not be executed, and the error will be returned from Exec instead.
// Note that no [PreExec] is executed when only usage is printed.
//
// Passing a nil [PreExec] function to this method will panic.
func (s *CommandSet) AddPreExec(fn PreExec) {
	if fn == nil {
		panic("nil pre-exec function")
	}
	hooks := s.preExecHooks()
	hooks.fns = append(hooks.fns, fn)
}
