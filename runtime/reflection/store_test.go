package reflection

import (
	"reflect"
	"testing"
)

type userController struct{}
type postController struct{}

var (
	userType = reflect.TypeOf(userController{})
	postType = reflect.TypeOf(postController{})
)

func TestClassMeta_Empty(t *testing.T) {
	store := NewMetadataStore()

	meta := store.ClassMeta(userType)
	if meta == nil {
		t.Fatal("ClassMeta returned nil for unknown class")
	}
	if len(meta) != 0 {
		t.Errorf("Expected empty metadata, got %v", meta)
	}
}

func TestPutClassMeta_Roundtrip(t *testing.T) {
	store := NewMetadataStore()
	store.PutClassMeta(userType, "before", "middleware", []string{"auth", "log"})

	meta := store.ClassMeta(userType)
	got := meta.StringList("before", "middleware")
	if len(got) != 2 || got[0] != "auth" || got[1] != "log" {
		t.Errorf("Unexpected middleware list: %v", got)
	}
}

func TestPutClassMeta_Overwrite(t *testing.T) {
	store := NewMetadataStore()
	store.PutClassMeta(userType, "before", "middleware", []string{"auth"})
	store.PutClassMeta(userType, "before", "middleware", []string{"log"})

	got := store.ClassMeta(userType).StringList("before", "middleware")
	if len(got) != 1 || got[0] != "log" {
		t.Errorf("Expected overwrite to [log], got %v", got)
	}
}

func TestClassMeta_Isolation(t *testing.T) {
	store := NewMetadataStore()
	store.PutClassMeta(userType, "before", "middleware", []string{"auth"})

	if got := store.ClassMeta(postType); len(got) != 0 {
		t.Errorf("Metadata for userController leaked to postController: %v", got)
	}
}

func TestMethodMeta_IsolatedFromClassLevel(t *testing.T) {
	store := NewMetadataStore()
	store.PutClassMeta(userType, "before", "middleware", []string{"auth"})
	store.PutMethodMeta(userType, "Get", "before", "middleware", []string{"cache"})

	got := store.MethodMeta(userType, "Get").StringList("before", "middleware")
	if len(got) != 1 || got[0] != "cache" {
		t.Errorf("Expected method-level view [cache], got %v", got)
	}
}

func TestMergedMeta_StringListsAreAdditive(t *testing.T) {
	store := NewMetadataStore()
	store.PutClassMeta(userType, "before", "middleware", []string{"auth", "log"})
	store.PutMethodMeta(userType, "Get", "before", "middleware", []string{"cache"})

	got := store.MergedMeta(userType, "Get").StringList("before", "middleware")
	want := []string{"auth", "log", "cache"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merged middleware: got %v, want %v", got, want)
	}

	// A method with no entry of its own sees the class level only.
	got = store.MergedMeta(userType, "List").StringList("before", "middleware")
	want = []string{"auth", "log"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merged middleware for List: got %v, want %v", got, want)
	}
}

func TestMergedMeta_ScalarsOverride(t *testing.T) {
	store := NewMetadataStore()
	store.PutClassMeta(userType, "mapping", "prefix", "/users")
	store.PutMethodMeta(userType, "Get", "mapping", "prefix", "/people")

	if got := store.MergedMeta(userType, "Get").String("mapping", "prefix"); got != "/people" {
		t.Errorf("Expected method-level override /people, got %q", got)
	}
}

func TestMeta_ViewIsACopy(t *testing.T) {
	store := NewMetadataStore()
	store.PutClassMeta(userType, "before", "middleware", []string{"auth"})

	view := store.ClassMeta(userType)
	view["before"]["middleware"] = []string{"tampered"}

	got := store.ClassMeta(userType).StringList("before", "middleware")
	if len(got) != 1 || got[0] != "auth" {
		t.Errorf("Store mutated through a returned view: %v", got)
	}
}
