// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package mmtrie

import "errors"

// Sentinel errors for the header-validation and capacity failure modes
// described in spec §7. Callers test for them with [errors.Is].
var (
	// ErrInvalidMagicNumber is returned by Open when the first four bytes
	// of the file do not match [magic].
	ErrInvalidMagicNumber = errors.New("mmtrie: invalid magic number")

	// ErrInvalidVersion is returned by Open when the on-disk version byte
	// does not match [fileVersion].
	ErrInvalidVersion = errors.New("mmtrie: invalid version")

	// ErrTruncatedFile is returned by Open when the file's actual size
	// does not match the size_in_bytes header field.
	ErrTruncatedFile = errors.New("mmtrie: truncated file")

	// ErrCapacityExhausted is returned by BlockArray.Append when the
	// backing array has no free slot left. The caller is responsible for
	// growing the backing file (§6 resize contract); this package does
	// not implement that protocol.
	ErrCapacityExhausted = errors.New("mmtrie: block array capacity exhausted")

	// ErrKeyTooLongForSlot is the value inlineSet panics with if an
	// insertion driver ever tries to place a segment longer than the
	// inline string slot; it is never returned as an error. The
	// recursive splitting in Insert re-slices at block-length boundaries
	// so this should never occur; it exists as a defensive backstop.
	ErrKeyTooLongForSlot = errors.New("mmtrie: key segment too long for slot")

	// ErrCorruptChildIndex is returned by Verify when a next or child
	// index exceeds the current length of the block array. The walk path
	// (WalkTo, WalkToHeuristic, getChildInBlock, chainIndices) never
	// constructs this error at all: it bounds-checks every next/child
	// index against BlockArray.Len before dereferencing it and degrades
	// straight to "no further match" instead, so readers stay robust
	// against torn writes (§5, §7).
	ErrCorruptChildIndex = errors.New("mmtrie: corrupt child or sibling index")
)
