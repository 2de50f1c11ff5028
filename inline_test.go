// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package mmtrie

import "testing"

func TestInlineString22SetAndString(t *testing.T) {
	var s InlineString22
	s.Set("bug")

	if got := s.String(); got != "bug" {
		t.Errorf("String() = %q, want %q", got, "bug")
	}
	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestInlineString22SetOverwritesPreviousContent(t *testing.T) {
	var s InlineString22
	s.Set("longlonglonglonglonglong"[:22])
	s.Set("hi")

	if got := s.String(); got != "hi" {
		t.Errorf("String() = %q, want %q (stale bytes from previous Set leaked)", got, "hi")
	}
}

func TestInlineString22SetTooLongPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Set with an over-length key did not panic")
		}
	}()
	var s InlineString22
	s.Set("this string is far longer than twenty two bytes")
}

func TestInlineStringCommonPrefixLen(t *testing.T) {
	var s InlineString22
	s.Set("buggin")

	cases := []struct {
		key  string
		want int
	}{
		{"bug", 3},
		{"buggin", 6},
		{"bugginX", 6},
		{"cat", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := s.CommonPrefixLen(c.key); got != c.want {
			t.Errorf("CommonPrefixLen(%q) = %d, want %d", c.key, got, c.want)
		}
	}
}

func TestInlineStringMatchesIsPrefixMatch(t *testing.T) {
	var s InlineString22
	s.Set("bug")

	if !s.Matches("buggin") {
		t.Error("Matches(\"buggin\") = false, want true (stored string is a prefix of key)")
	}
	if !s.Matches("bu") {
		t.Error("Matches(\"bu\") = false, want true (key shorter than stored string still matches up to min length, as when walking a partially-typed edge)")
	}
	if s.Matches("bag") {
		t.Error("Matches(\"bag\") = true, want false")
	}
}

func TestInlineStringEmptyMatchesAnything(t *testing.T) {
	var s InlineString22 // zero value: the leaf-sentinel shape (§4.8)
	if !s.Matches("anything") {
		t.Error("empty InlineString22 should trivially match any key; walkers must explicitly skip it")
	}
}

func TestInlineString1SingleByte(t *testing.T) {
	var s InlineString1
	s.Set("a")

	if got := s.String(); got != "a" {
		t.Errorf("String() = %q, want %q", got, "a")
	}
	if !s.Matches("aardvark") {
		t.Error("Matches(\"aardvark\") = false, want true")
	}
	if s.Matches("bat") {
		t.Error("Matches(\"bat\") = true, want false")
	}
}
