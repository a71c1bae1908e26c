package wiring

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropchain/pkg/rop/chain"
)

func accept(want int) chain.Handler[int, string] {
	return chain.HandlerFunc[int, string](func(_ context.Context, i int) chain.Step[int, string] {
		if i == want {
			return chain.Finish[int]("accepted")
		}
		return chain.Forward[int, string](i)
	})
}

func registry(t *testing.T, names ...string) *Registry[int, string] {
	t.Helper()

	r := NewRegistry[int, string]()
	for i, name := range names {
		require.NoError(t, r.Register(chain.MustNew(name, accept(i))))
	}
	return r
}

func TestParse(t *testing.T) {
	t.Parallel()

	l, err := Parse([]byte("routes:\n  - [a, b, c]\n  - [c, a]\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"c", "a"}}, l.Routes)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("  \n"))
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = Parse([]byte("routes: [\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("routes: []\n"))
	assert.ErrorIs(t, err, ErrInvalidRoute)

	_, err = Parse([]byte("routes:\n  - [a]\n"))
	assert.ErrorIs(t, err, ErrInvalidRoute)

	_, err = Parse([]byte("routes:\n  - [a, \" \"]\n"))
	assert.ErrorIs(t, err, ErrInvalidRoute)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("routes:\n  - [a, b]\n"), 0o600))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, l.Routes)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApply(t *testing.T) {
	t.Parallel()

	r := registry(t, "a", "b", "c")
	l, err := Parse([]byte("routes:\n  - [a, b, c]\n  - [c, a]\n"))
	require.NoError(t, err)
	require.NoError(t, Apply(l, r))

	a, _ := r.Get("a")
	b, _ := r.Get("b")
	c, _ := r.Get("c")

	next, err := a.Next()
	require.NoError(t, err)
	assert.Same(t, b, next)
	next, _ = c.Next()
	assert.Same(t, a, next)

	out := b.Dispatch(context.Background(), 0)
	assert.Equal(t, chain.Done, out.State())
	assert.Same(t, a, out.Node())

	out = a.Dispatch(context.Background(), 7)
	assert.Equal(t, chain.EndOfChain, out.State())
	assert.Same(t, c, out.Node())
}

func TestApply_UnknownNodeLeavesLinks(t *testing.T) {
	t.Parallel()

	r := registry(t, "a", "b")
	err := Apply(Layout{Routes: [][]string{{"a", "b"}, {"b", "zzz"}}}, r)
	assert.ErrorIs(t, err, ErrUnknownNode)

	a, _ := r.Get("a")
	_, err = a.Next()
	assert.ErrorIs(t, err, chain.ErrInvalidChain)
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	r := registry(t, "a")
	err := r.Register(chain.MustNew("a", accept(0)))
	assert.ErrorIs(t, err, ErrDuplicateNode)
}

func TestRegister_TrimsNames(t *testing.T) {
	t.Parallel()

	r := NewRegistry[int, string]()
	padded := chain.MustNew(" a ", accept(0))
	require.NoError(t, r.Register(padded, chain.MustNew("b", accept(1))))

	got, err := r.Get("a")
	require.NoError(t, err)
	assert.Same(t, padded, got)

	err = r.Register(chain.MustNew("a", accept(2)))
	assert.ErrorIs(t, err, ErrDuplicateNode)

	require.NoError(t, Apply(Layout{Routes: [][]string{{"a", " b"}}}, r))
	next, err := padded.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", next.Name())

	assert.ErrorIs(t, r.Register(chain.MustNew("  ", accept(0))), ErrBlankName)
}

func TestRegister_FailureAddsNothing(t *testing.T) {
	t.Parallel()

	r := registry(t, "a")

	err := r.Register(chain.MustNew("x", accept(1)), chain.MustNew("a", accept(2)))
	assert.ErrorIs(t, err, ErrDuplicateNode)
	_, err = r.Get("x")
	assert.ErrorIs(t, err, ErrUnknownNode)

	err = r.Register(chain.MustNew("y", accept(1)), chain.MustNew("y", accept(2)))
	assert.ErrorIs(t, err, ErrDuplicateNode)
	_, err = r.Get("y")
	assert.ErrorIs(t, err, ErrUnknownNode)

	require.NoError(t, r.Register(chain.MustNew("x", accept(1))))
}
