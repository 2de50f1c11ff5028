// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

// Package mmtrie provides a persistent, memory-mapped prefix index for
// interactive autocompletion: given a typed prefix, it finds the
// best-scoring completion, biased toward recently inserted or re-inserted
// entries.
//
// The core structure is a single contiguous array of fixed-size blocks
// ([BlockArray] of [TrieBlock]) that can be memory-mapped from a file,
// shared read-only across processes, and grown by appending blocks
// without ever rewriting existing ones. Each block holds either a single
// long edge ("tall") or up to eight short edges ("wide"); a full tall
// block promotes one-way to wide, and a full wide block spills into a
// sibling via a next-block link.
//
// [Open] and [Create] map an index file with github.com/edsrzf/mmap-go;
// [NewInMemory] builds the same structure over a plain Go slice for
// tests and in-process use without a backing file. [Trie.Insert] drives
// the split/promote/spill/sort procedure; [Trie.Walk] performs an exact
// prefix match; [Trie.BestCompletion] walks the exact prefix and then
// greedily extends into the most recently touched edges.
//
// Insert is not safe for concurrent use; callers performing cross-process
// writes must serialize them externally. Walk and BestCompletion perform
// no stores and may run concurrently with each other.
package mmtrie
