// Package demo appends a greeting to a file under scope guards, reproducing the
// three classic guard examples: plain close, report on error, report on success.
package demo

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/on-the-ground/defer_ive_go/guard"
	"go.uber.org/zap"
)

// Scenario names one of the guarded write examples.
type Scenario string

const (
	// Basic closes the file with an always-guard.
	Basic Scenario = "basic"

	// Error additionally reports failures with an error-guard.
	Error Scenario = "error"

	// Return additionally reports success with a success-guard.
	Return Scenario = "return"
)

// Scenarios lists every scenario in the order they are demonstrated.
var Scenarios = []Scenario{Basic, Error, Return}

const (
	Greeting      = "hello world\n"
	FailureReport = "there is something wrong"
	SuccessReport = "all is ok!"

	// interruption is the panic value used when Config.Panic is set.
	interruption = "write interrupted"
)

var (
	ErrUnknownScenario = errors.New("unknown scenario")
	ErrShortWrite      = fmt.Errorf("greeting: %w", io.ErrShortWrite)
)

// PanicError carries a panic stopped at the scenario boundary.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Config controls one scenario run.
type Config struct {
	Path string

	// Fail makes the write come up short.
	Fail bool
	// Panic makes the write panic after the greeting is written.
	Panic bool

	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// ParseScenario validates a scenario name.
func ParseScenario(name string) (Scenario, error) {
	for _, s := range Scenarios {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

// Run executes the scenario. It is the outer boundary of the guarded write: a
// panic raised inside is returned as *PanicError after every guard has run.
func Run(s Scenario, cfg Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return write(s, cfg)
}

func write(s Scenario, cfg Config) (err error) {
	if _, err := ParseScenario(string(s)); err != nil {
		return err
	}

	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.Path, err)
	}

	closer := guard.Always(guard.Collect(&err, f.Close), cfg.options("close")...)
	defer closer.Exit()

	switch s {
	case Error:
		report := guard.OnError(&err, guard.Bind2(say, cfg.Stderr, FailureReport), cfg.options("report failure")...)
		defer report.Exit()
	case Return:
		report := guard.OnSuccess(&err, guard.Bind2(say, cfg.Stdout, SuccessReport), cfg.options("report success")...)
		defer report.Exit()
	}

	var w io.Writer = f
	if cfg.Fail {
		w = halfWriter{w: f}
	}
	n, err := io.WriteString(w, Greeting)
	if cfg.Panic {
		panic(interruption)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", cfg.Path, err)
	}
	if n != len(Greeting) {
		return ErrShortWrite
	}
	return nil
}

func (cfg Config) options(name string) []guard.Option {
	return []guard.Option{guard.WithLogger(cfg.Logger), guard.WithName(name)}
}

func say(w io.Writer, msg string) {
	if w != nil {
		fmt.Fprintln(w, msg)
	}
}

// halfWriter accepts only the first half of every write.
type halfWriter struct {
	w io.Writer
}

func (h halfWriter) Write(p []byte) (int, error) {
	return h.w.Write(p[:len(p)/2])
}
