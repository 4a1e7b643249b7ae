package domain

import (
	"reflect"
	"testing"
)

func TestWordCount_AddAndTotal(t *testing.T) {
	t.Parallel()

	wc := WordCount{}
	wc.Add("hello", 1)
	wc.Add("hello", 2)
	wc.Add("world", 1)
	wc.Add("ignored", 0)
	wc.Add("ignored", -3)

	if wc["hello"] != 3 {
		t.Errorf("hello = %d, want 3", wc["hello"])
	}
	if _, ok := wc["ignored"]; ok {
		t.Error("non-positive increments must not create keys")
	}
	if got := wc.Total(); got != 4 {
		t.Errorf("Total() = %d, want 4", got)
	}
}

func TestWordCount_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	orig := WordCount{"a": 1}
	clone := orig.Clone()
	clone["a"] = 5
	clone["b"] = 1

	if orig["a"] != 1 || len(orig) != 1 {
		t.Errorf("original mutated: %v", orig)
	}

	var nilWC WordCount
	if got := nilWC.Clone(); got == nil || len(got) != 0 {
		t.Errorf("nil Clone() = %v, want empty non-nil map", got)
	}
}

func TestWordCount_Ranked(t *testing.T) {
	t.Parallel()

	wc := WordCount{"world": 1, "hello": 2, "again": 1, "zebra": 3, "line": 1}
	want := []WordFrequency{
		{"zebra", 3},
		{"hello", 2},
		{"again", 1},
		{"line", 1},
		{"world", 1},
	}

	for range 5 {
		if got := wc.Ranked(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Ranked() = %v, want %v", got, want)
		}
	}
}
