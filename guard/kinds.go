package guard

// Always returns a guard whose action runs on every exit from the scope, unless
// it is dismissed first. Use it for unconditional cleanup such as closing a handle
// or releasing a lock.
func Always(action func(), opts ...Option) *Guard {
	return newGuard(KindAlways, nil, action, opts)
}

// OnError returns a guard whose action runs only if the scope is left while an
// error is propagating: a panic unwinding through Exit, or *errp turning non-nil
// after construction. errp may be nil, in which case only panics count.
func OnError(errp *error, action func(), opts ...Option) *Guard {
	return newGuard(KindOnError, errp, action, opts)
}

// OnSuccess is the mirror of OnError: its action runs only if the scope is left
// without a panic and without a new error in *errp.
func OnSuccess(errp *error, action func(), opts ...Option) *Guard {
	return newGuard(KindOnSuccess, errp, action, opts)
}
