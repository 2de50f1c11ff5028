// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package mmtrie

// NodeEntry packs the tuple {child_or_leaf: u30, exists: bool, is_leaf: bool}
// (§3) into a single uint32, the same bit-packing idiom
// peterheb/gotoken's internal.serializedTrie uses for its trie node words
// (token#/leaf-flag/byte packed into one uint32). Packing keeps a
// NodeGroup's entries array a flat, fixed-width slice suitable for
// mmap'ing directly.
//
// Layout, low bit to high bit:
//
//	bits [0, 30)  child_or_leaf index (u30)
//	bit  30       exists
//	bit  31       is_leaf
type NodeEntry uint32

const (
	entryChildMask = 1<<30 - 1
	entryExistsBit = uint32(1) << 30
	entryLeafBit   = uint32(1) << 31
)

// Exists reports whether this slot is occupied.
func (e NodeEntry) Exists() bool { return uint32(e)&entryExistsBit != 0 }

// IsLeaf reports whether this slot terminates a stored string. Only
// meaningful when Exists is true.
func (e NodeEntry) IsLeaf() bool { return uint32(e)&entryLeafBit != 0 }

// Child returns the block index of the continuation block for an internal
// (non-leaf) edge. Only meaningful when Exists is true and IsLeaf is
// false.
func (e NodeEntry) Child() uint32 { return uint32(e) & entryChildMask }

// emptyEntry is the zero-value NodeEntry: exists=false.
const emptyEntry = NodeEntry(0)

// newLeafEntry builds an occupied, leaf NodeEntry.
func newLeafEntry() NodeEntry {
	return NodeEntry(entryExistsBit | entryLeafBit)
}

// newChildEntry builds an occupied, internal NodeEntry pointing at child.
func newChildEntry(child uint32) NodeEntry {
	return NodeEntry(entryExistsBit | (child & entryChildMask))
}
