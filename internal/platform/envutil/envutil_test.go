package envutil

import (
	"reflect"
	"testing"
)

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "nope")
	if got := Int("ENVUTIL_TEST_INT", 42, nil); got != 42 {
		t.Fatalf("Int: got=%d want=42", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", " 7 ")
	if got := Int("ENVUTIL_TEST_INT", 42, nil); got != 7 {
		t.Fatalf("Int: got=%d want=7", got)
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{"": true, "off": false, "YES": true, "maybe": true}
	for raw, want := range cases {
		t.Setenv("ENVUTIL_TEST_BOOL", raw)
		if got := Bool("ENVUTIL_TEST_BOOL", true, nil); got != want {
			t.Fatalf("Bool(%q): got=%v want=%v", raw, got, want)
		}
	}
}

func TestList(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_LIST", " a, ,b ,")
	got := List("ENVUTIL_TEST_LIST", nil, nil)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("List: got=%v", got)
	}
	t.Setenv("ENVUTIL_TEST_LIST", "")
	if got := List("ENVUTIL_TEST_LIST", []string{"x"}, nil); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("List default: got=%v", got)
	}
}

func TestSecret(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_SECRET", " hunter2 ")
	if got := Secret("ENVUTIL_TEST_SECRET", "", nil); got != "hunter2" {
		t.Fatalf("Secret: got=%q", got)
	}
	t.Setenv("ENVUTIL_TEST_SECRET", "")
	if got := Secret("ENVUTIL_TEST_SECRET", "fallback", nil); got != "fallback" {
		t.Fatalf("Secret default: got=%q", got)
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_FLOAT", "0.25")
	if got := Float("ENVUTIL_TEST_FLOAT", 0.1, nil); got != 0.25 {
		t.Fatalf("Float: got=%v", got)
	}
	t.Setenv("ENVUTIL_TEST_FLOAT", "a quarter")
	if got := Float("ENVUTIL_TEST_FLOAT", 0.1, nil); got != 0.1 {
		t.Fatalf("Float garbage: got=%v", got)
	}
}
