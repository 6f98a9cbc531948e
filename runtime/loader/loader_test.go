package loader

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/trellis-fw/trellis/runtime/annotate"
	"github.com/trellis-fw/trellis/runtime/reflection"
)

type fooController struct{}

// mustCfg adapts a registration function's (Configurator, error) pair so
// annotations can be declared inline in test fixtures.
func mustCfg(t *testing.T) func(annotate.Configurator, error) annotate.Configurator {
	return func(cfg annotate.Configurator, err error) annotate.Configurator {
		t.Helper()
		require.NoError(t, err)
		return cfg
	}
}

// The canonical flow: class-level before('auth','log') plus method-level
// before('cache') on Get must yield the effective list [auth log cache].
func TestLoad_EndToEnd(t *testing.T) {
	reg := reflection.NewRegistry()
	l := New(reg, zaptest.NewLogger(t))
	must := mustCfg(t)

	err := l.Load(Class{
		Path: "/foo.go",
		Type: reflect.TypeOf(fooController{}),
		Configurators: []annotate.Configurator{
			must(annotate.Before("auth", "log")),
		},
		Methods: map[string][]annotate.Configurator{
			"Get": {must(annotate.Before("cache"))},
		},
	})
	require.NoError(t, err)

	rec, err := reg.Reflect("/foo.go")
	require.NoError(t, err)

	assert.Equal(t, []string{"auth", "log"}, rec.Metadata().StringList("before", "middleware"))
	assert.Equal(t, []string{"auth", "log", "cache"}, rec.MethodMetadata("Get").StringList("before", "middleware"))
	assert.Equal(t, []string{"auth", "log"}, rec.MethodMetadata("List").StringList("before", "middleware"))
}

func TestLoad_FailsFastOnBadConfigurator(t *testing.T) {
	reg := reflection.NewRegistry()
	l := New(reg, nil)

	empty, err := annotate.Before()
	require.NoError(t, err)

	err = l.Load(Class{
		Path:          "/foo.go",
		Type:          reflect.TypeOf(fooController{}),
		Configurators: []annotate.Configurator{empty},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, reflection.ErrNotFound))
	assert.Contains(t, err.Error(), "/foo.go")
}

func TestLoad_RegistersAllClasses(t *testing.T) {
	reg := reflection.NewRegistry()
	l := New(reg, nil)

	err := l.Load(
		Class{Path: "/a.go", Type: reflect.TypeOf(fooController{})},
		Class{Path: "/b.go", Type: reflect.TypeOf(fooController{})},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.go", "/b.go"}, reg.KnownClasses())
}
