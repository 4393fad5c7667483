package guard

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind selects when a guard's action runs.
type Kind uint8

const (
	// KindAlways runs the action on every exit.
	KindAlways Kind = iota

	// KindOnError runs the action only when the scope fails.
	KindOnError

	// KindOnSuccess runs the action only when the scope completes normally.
	KindOnSuccess
)

func (k Kind) String() string {
	switch k {
	case KindAlways:
		return "always"
	case KindOnError:
		return "on_error"
	case KindOnSuccess:
		return "on_success"
	default:
		return "unknown"
	}
}

// State is the lifecycle position of a guard.
type State uint8

const (
	// StateArmed is the initial state: the action is still pending.
	StateArmed State = iota

	// StateDismissed is terminal: the action will never run.
	StateDismissed

	// StateFired is terminal: the action has run.
	StateFired
)

func (s State) String() string {
	switch s {
	case StateArmed:
		return "armed"
	case StateDismissed:
		return "dismissed"
	case StateFired:
		return "fired"
	default:
		return "unknown"
	}
}

// noCopy makes go vet's copylocks check report copies of a Guard.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard runs a bound action once, when the scope that deferred its Exit ends.
//
// A Guard is owned by the goroutine and the function that created it. It has no
// internal synchronization and must not be shared or copied.
type Guard struct {
	_ noCopy

	id     string
	name   string
	kind   Kind
	state  State
	action func()

	// errp is the watched error result; nil means only panics are sensed.
	errp *error
	// hadErr records whether *errp was already set at construction.
	hadErr bool

	logger *zap.Logger
}

func newGuard(kind Kind, errp *error, action func(), opts []Option) *Guard {
	if action == nil {
		panic("guard: nil action")
	}
	g := &Guard{
		id:     uuid.New().String(),
		kind:   kind,
		state:  StateArmed,
		action: action,
		errp:   errp,
		hadErr: errp != nil && *errp != nil,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger.Debug("guard armed", g.fields()...)
	return g
}

// ID returns the identifier used in this guard's log entries.
func (g *Guard) ID() string { return g.id }

// Kind returns the policy the guard was built with.
func (g *Guard) Kind() Kind { return g.kind }

// State returns the current lifecycle state.
func (g *Guard) State() State { return g.state }

// Dismiss cancels the pending action. It is idempotent and has no effect once the
// action has run.
func (g *Guard) Dismiss() {
	if g.state == StateArmed {
		g.state = StateDismissed
	}
}

// Exit ends the guard's lifetime. It must be called through defer, directly:
//
//	defer g.Exit()
//
// Calling it any other way still runs the policy, but a propagating panic cannot be
// observed and the exit is treated as normal. A second Exit is a no-op.
func (g *Guard) Exit() {
	r := recover()
	if r != nil {
		// Deferred so the original value wins even if the action panics.
		defer panic(r)
	}
	g.exit(r != nil)
}

func (g *Guard) exit(panicking bool) {
	if g.state != StateArmed {
		return
	}

	failed := g.failed(panicking)
	switch {
	case g.kind == KindOnError && !failed:
		g.Dismiss()
		g.logger.Debug("guard skipped", g.fields(zap.String("reason", "no error"))...)
		return
	case g.kind == KindOnSuccess && failed:
		g.Dismiss()
		g.logger.Debug("guard skipped", g.fields(zap.String("reason", "error propagating"), zap.Bool("panicking", panicking))...)
		return
	}

	// Fired before the call so a panicking action cannot run twice.
	g.state = StateFired
	g.logger.Debug("guard fired", g.fields(zap.Bool("failed", failed), zap.Bool("panicking", panicking))...)
	g.action()
}

// failed reports whether an error started propagating while the guard was alive.
func (g *Guard) failed(panicking bool) bool {
	if panicking {
		return true
	}
	return g.errp != nil && *g.errp != nil && !g.hadErr
}

func (g *Guard) fields(extra ...zap.Field) []zap.Field {
	fields := make([]zap.Field, 0, 3+len(extra))
	fields = append(fields, zap.String("guardId", g.id), zap.Stringer("kind", g.kind))
	if g.name != "" {
		fields = append(fields, zap.String("name", g.name))
	}
	return append(fields, extra...)
}
