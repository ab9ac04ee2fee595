package util

import (
	"reflect"
	"testing"
)

func TestNormalizePatternPath(t *testing.T) {
	cases := map[string]string{
		"./src/app.py":    "src/app.py",
		"src\\app\\a.go":  "src/app/a.go",
		"  src/a.py  ":    "src/a.py",
		".":               "",
		"src//nested/../": "src",
	}
	for in, want := range cases {
		if got := NormalizePatternPath(in); got != want {
			t.Errorf("NormalizePatternPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPathTokens(t *testing.T) {
	got := PathTokens("src/Controllers/user_controller.py")
	want := []string{"src", "controllers", "user_controller", "user", "controller"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PathTokens = %v, want %v", got, want)
	}
}

func TestNameWords(t *testing.T) {
	got := NameWords("ProcessAndStoreManager")
	want := []string{"process", "and", "store", "manager"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NameWords = %v, want %v", got, want)
	}
}

func TestWholeWordCount(t *testing.T) {
	if n := WholeWordCount("process_and_validate_manager", []string{"process", "validate", "handle"}); n != 2 {
		t.Errorf("Expected 2 word matches, got %d", n)
	}
	// "manager" must not match "manage" as a whole word.
	if n := WholeWordCount("manager", []string{"manage"}); n != 0 {
		t.Errorf("Expected 0 word matches, got %d", n)
	}
}

func TestClip(t *testing.T) {
	if Clip(-0.5) != 0 || Clip(1.5) != 1 || Clip(0.4) != 0.4 {
		t.Error("Clip out of range")
	}
}

func TestSortedStringKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	if got := SortedStringKeys(m); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected order: %v", got)
	}
}
