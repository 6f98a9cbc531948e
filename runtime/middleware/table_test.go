package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trellis-fw/trellis/runtime/reflection"
)

func TestTable_ResolvePreservesOrder(t *testing.T) {
	var calls []string
	table := NewTable()
	table.Register("auth", tracer("auth", &calls))
	table.Register("log", tracer("log", &calls))
	table.Register("cache", tracer("cache", &calls))

	chain, err := table.Chain([]string{"auth", "log", "cache"})
	require.NoError(t, err)

	handler := chain.ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "handler")
	})
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t,
		[]string{"auth-before", "log-before", "cache-before", "handler", "cache-after", "log-after", "auth-after"},
		calls)
}

func TestTable_UnknownNameFails(t *testing.T) {
	table := NewTable()
	table.Register("auth", func(next http.Handler) http.Handler { return next })

	_, err := table.Resolve([]string{"auth", "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, reflection.ErrNotFound))
	assert.Contains(t, err.Error(), "nope")
}

func TestTable_RegisterOverwrites(t *testing.T) {
	var calls []string
	table := NewTable()
	table.Register("auth", tracer("old", &calls))
	table.Register("auth", tracer("new", &calls))

	chain, err := table.Chain([]string{"auth"})
	require.NoError(t, err)

	chain.ThenFunc(func(w http.ResponseWriter, r *http.Request) {}).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"new-before", "new-after"}, calls)
}
