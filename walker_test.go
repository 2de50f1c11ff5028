// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package mmtrie

import "testing"

func TestWalkToNoMatchFails(t *testing.T) {
	tr, _ := NewInMemory(16)
	mustInsert(t, tr, "bug")

	res := tr.Walk("zzz")
	if res.Success {
		t.Errorf("Walk(\"zzz\") = %+v, want failure", res)
	}
}

func TestBestCompletionExactLeafReturnsWholeKey(t *testing.T) {
	tr, _ := NewInMemory(32)
	mustInsert(t, tr, "bug")

	if got := tr.BestCompletion("bug"); got != "bug" {
		t.Errorf("BestCompletion(\"bug\") = %q, want %q", got, "bug")
	}
}

func TestBestCompletionCompletesUnambiguousPrefix(t *testing.T) {
	tr, _ := NewInMemory(32)
	mustInsert(t, tr, "banana")

	got := tr.BestCompletion("ban")
	if got != "banana" {
		t.Errorf("BestCompletion(\"ban\") = %q, want %q (only one candidate, no ambiguity)", got, "banana")
	}
}

func TestBestCompletionFavorsRecentlyTouchedEdge(t *testing.T) {
	tr, _ := NewInMemory(64)
	mustInsert(t, tr, "cats", "cars")
	// Touch "cars" twice more so its edges rank ahead of "cats" by cost.
	// A single extra touch is not enough: the "ca" edge is also rewarded
	// by the split, and the 1.8 stop rule then halts at "ca".
	mustInsert(t, tr, "cars", "cars")

	got := tr.BestCompletion("ca")
	if got != "cars" {
		t.Errorf("BestCompletion(\"ca\") = %q, want %q (most recently touched branch)", got, "cars")
	}
}

func TestBestCompletionUnknownPrefixReturnsEmpty(t *testing.T) {
	tr, _ := NewInMemory(16)
	mustInsert(t, tr, "bug")

	if got := tr.BestCompletion("zzz"); got != "" {
		t.Errorf("BestCompletion(\"zzz\") = %q, want empty string", got)
	}
}

func TestBestCompletionEmptyPrefixPicksBestOverall(t *testing.T) {
	tr, _ := NewInMemory(32)
	mustInsert(t, tr, "aaa")

	got := tr.BestCompletion("")
	if got != "aaa" {
		t.Errorf("BestCompletion(\"\") = %q, want %q", got, "aaa")
	}
}

func TestGetChildInBlockSkipsZeroLengthSentinel(t *testing.T) {
	tr, _ := NewInMemory(32)
	mustInsert(t, tr, "bug", "buggin")

	// The sentinel for "bug" lives in the child block of the root's "bug"
	// edge, not in the root itself.
	sentinelBlock := tr.blocks.At(0).entryAt(0).Child()
	if _, ok := tr.getChildInBlock(sentinelBlock, "x"); ok {
		t.Error("getChildInBlock matched an unrelated key against the sentinel edge")
	}
}
