package guard_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/defer_ive_go/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_EvaluatesArgumentsAtConstruction(t *testing.T) {
	var got []int
	record := func(n int) { got = append(got, n) }

	n := 1
	action := guard.Bind(record, n)
	n = 2
	action()

	assert.Equal(t, []int{1}, got)
}

func TestBind3(t *testing.T) {
	var sum int
	guard.Bind3(func(a, b, c int) { sum = a + b + c }, 1, 2, 3)()
	assert.Equal(t, 6, sum)
}

func TestBindArgs_SingleReference(t *testing.T) {
	i := 0
	func() {
		g := guard.OnSuccess(nil, guard.MustBindArgs(func(i *int) { *i++ }, &i))
		defer g.Exit()
		require.Equal(t, 0, i)
	}()
	assert.Equal(t, 1, i)
}

func TestBindArgs_TwoArguments(t *testing.T) {
	i, j := 0, 0
	func() {
		var err error
		g := guard.OnError(&err, guard.MustBindArgs(func(i, j *int) {
			*i++
			*j += 2
		}, &i, &j))
		defer g.Exit()
	}()
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, j)
}

func TestBindArgs_Variadic(t *testing.T) {
	var got []string
	call, err := guard.BindArgs(func(prefix string, parts ...string) {
		got = append([]string{prefix}, parts...)
	}, "a", "b", "c")
	require.NoError(t, err)
	call()
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestBindArgs_NilForNilableParameter(t *testing.T) {
	called := false
	call, err := guard.BindArgs(func(err error) { called = err == nil }, nil)
	require.NoError(t, err)
	call()
	assert.True(t, called)
}

func TestBindArgs_DiscardsResults(t *testing.T) {
	call, err := guard.BindArgs(func(n int) (int, error) { return n, errors.New("ignored") }, 3)
	require.NoError(t, err)
	assert.NotPanics(t, call)
}

func TestBindArgs_Rejects(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		args []any
		want error
	}{
		{name: "not a function", fn: 42, want: guard.ErrNotFunc},
		{name: "nil function", fn: (func())(nil), want: guard.ErrNotFunc},
		{name: "untyped nil", fn: nil, want: guard.ErrNotFunc},
		{name: "too few", fn: func(int, int) {}, args: []any{1}, want: guard.ErrArity},
		{name: "too many", fn: func(int) {}, args: []any{1, 2}, want: guard.ErrArity},
		{name: "variadic missing fixed", fn: func(string, ...int) {}, want: guard.ErrArity},
		{name: "wrong type", fn: func(int) {}, args: []any{"one"}, want: guard.ErrArgType},
		{name: "wrong variadic type", fn: func(...int) {}, args: []any{1, "two"}, want: guard.ErrArgType},
		{name: "nil for value type", fn: func(int) {}, args: []any{nil}, want: guard.ErrArgType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, err := guard.BindArgs(tt.fn, tt.args...)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, call)
		})
	}
}

func TestMustBindArgs_PanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() { guard.MustBindArgs(func(int) {}, "x") })
}

type closer struct {
	err    error
	closed int
}

func (c *closer) Close() error {
	c.closed++
	return c.err
}

func TestCollect_AppendsActionError(t *testing.T) {
	errClose := errors.New("close failed")
	c := &closer{err: errClose}

	err := func() (err error) {
		g := guard.Always(guard.Collect(&err, c.Close))
		defer g.Exit()
		return errBoom
	}()

	assert.Equal(t, 1, c.closed)
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, err, errClose)
}

func TestCollect_NilErrorLeavesResult(t *testing.T) {
	c := &closer{}
	err := func() (err error) {
		g := guard.Always(guard.Collect(&err, c.Close))
		defer g.Exit()
		return nil
	}()
	assert.NoError(t, err)
	assert.Equal(t, 1, c.closed)
}

func TestCollect_FailedCommitTriggersRollback(t *testing.T) {
	errCommit := errors.New("commit failed")
	var rolledBack bool

	err := func() (err error) {
		rollback := guard.OnError(&err, func() { rolledBack = true })
		defer rollback.Exit()
		commit := guard.OnSuccess(&err, guard.Collect(&err, func() error { return errCommit }))
		defer commit.Exit()
		return nil
	}()

	assert.ErrorIs(t, err, errCommit)
	assert.True(t, rolledBack, "a failing success action is an error for guards that exit later")
}

func TestCollect_NilPointerPanics(t *testing.T) {
	assert.Panics(t, func() { guard.Collect(nil, func() error { return nil }) })
}
