package reflection

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndReflect(t *testing.T) {
	reg := NewRegistry()
	reg.Register("/app/user.go", userType)

	rec, err := reg.Reflect("/app/user.go")
	require.NoError(t, err)
	assert.Equal(t, "/app/user.go", rec.Path())
	assert.Equal(t, userType, rec.Class())
	assert.False(t, rec.RegisteredAt().IsZero())
}

func TestReflect_UnknownPath(t *testing.T) {
	reg := NewRegistry()

	rec, err := reg.Reflect("/app/missing.go")
	assert.Nil(t, rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "/app/missing.go", nf.Name)
}

func TestRegister_OverwritesWithFreshTimestamp(t *testing.T) {
	reg := NewRegistry()

	first := reg.Register("/app/user.go", userType)
	second := reg.Register("/app/user.go", postType)

	rec, err := reg.Reflect("/app/user.go")
	require.NoError(t, err)
	assert.Same(t, second, rec)
	assert.Equal(t, postType, rec.Class())
	assert.False(t, second.RegisteredAt().Before(first.RegisteredAt()))

	// Re-registration replaces the record, it does not duplicate the path.
	assert.Equal(t, []string{"/app/user.go"}, reg.KnownClasses())
}

func TestKnownClasses_CompleteAndOrdered(t *testing.T) {
	reg := NewRegistry()
	reg.Register("/app/a.go", userType)
	reg.Register("/app/b.go", postType)
	reg.Register("/app/c.go", userType)

	assert.Equal(t, []string{"/app/a.go", "/app/b.go", "/app/c.go"}, reg.KnownClasses())
}

func TestKnownClasses_SnapshotNotLive(t *testing.T) {
	reg := NewRegistry()
	reg.Register("/app/a.go", userType)

	snapshot := reg.KnownClasses()
	reg.Register("/app/b.go", postType)

	assert.Equal(t, []string{"/app/a.go"}, snapshot)
	assert.Equal(t, []string{"/app/a.go", "/app/b.go"}, reg.KnownClasses())
}

func TestRegistries_AreIsolated(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.Register("/app/user.go", userType)
	a.Store().PutClassMeta(userType, "before", "middleware", []string{"auth"})

	_, err := b.Reflect("/app/user.go")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Empty(t, b.Store().ClassMeta(userType))
}

func TestRecord_MetadataViewIsLive(t *testing.T) {
	reg := NewRegistry()
	rec := reg.Register("/app/user.go", userType)

	// Registration functions may run after the class is registered.
	assert.Empty(t, rec.Metadata())
	reg.Store().PutClassMeta(userType, "before", "middleware", []string{"auth"})

	got := rec.Metadata().StringList("before", "middleware")
	assert.Equal(t, []string{"auth"}, got)
}

func TestDefaultRegistry(t *testing.T) {
	defer Reset()

	Register("/app/user.go", reflect.TypeOf(userController{}))

	rec, err := Reflect("/app/user.go")
	require.NoError(t, err)
	assert.Equal(t, userType, rec.Class())
	assert.Equal(t, []string{"/app/user.go"}, KnownClasses())

	Reset()
	assert.Empty(t, KnownClasses())
	_, err = Reflect("/app/user.go")
	assert.True(t, errors.Is(err, ErrNotFound))
}
