// Package guard provides scope guards: actions bound to the end of a function scope.
//
// A guard owns a zero-argument action and evaluates it exactly once, when the
// surrounding function returns. The evaluation point is the deferred Exit call
// that must directly follow construction:
//
//	g := guard.Always(unlock)
//	defer g.Exit()
//
// # Kinds
//
//   - Always runs its action however the scope is left.
//   - OnError runs its action only if the scope is left because of an error.
//   - OnSuccess runs its action only if the scope is left normally.
//
// Any guard can be dismissed before exit; a dismissed guard never runs.
//
// # What counts as an error?
//
// Go propagates failures in two ways, and guards sense both:
//
//   - a panic unwinding through the deferred Exit call, and
//   - a non-nil error result, observed through the pointer handed to OnError or
//     OnSuccess (usually the address of a named result).
//
// Both are compared against what was already true when the guard was built. A
// panic that was in flight before the guard existed is invisible to it, and an
// error result that was already set at construction does not count as a new
// failure. The decision is made from the state at exit: a panic recovered inside
// the guarded scope, or an error that was set and cleared again, is a normal exit.
//
// Panics are recovered only to be observed. The same value is panicked again after
// the action has run, so callers further up see the original panic.
//
// # Actions must not panic
//
// An action that panics during a normal exit simply panics out of Exit. During a
// failing exit the original panic is raised again on top of it, so the crash
// report shows both and recover upstream returns the original value.
//
// # Binding arguments
//
// Bind, Bind2 and Bind3 bind typed arguments into an action. BindArgs does the same
// reflectively and validates the call at construction. Collect turns an
// error-returning action into one whose error is appended to the function's result:
//
//	func write(path string) (err error) {
//	    f, err := os.Create(path)
//	    if err != nil {
//	        return err
//	    }
//	    closer := guard.Always(guard.Collect(&err, f.Close))
//	    defer closer.Exit()
//
//	    cleanup := guard.OnError(&err, guard.Bind(removeFile, path))
//	    defer cleanup.Exit()
//	    ...
//	}
//
// Guards are not safe for concurrent use. Several guards in one function run in
// reverse order of construction, as deferred calls do.
package guard
