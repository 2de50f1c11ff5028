// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package mmtrie

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// blockSize is the fixed on-disk/in-memory size of a single TrieBlock
// record, computed once at package init.
var blockSize = int(unsafe.Sizeof(TrieBlock{}))

// Trie is a persistent, memory-mapped prefix index (§1-§3). The zero
// value is not usable; construct one with [Create], [Open] or
// [NewInMemory].
type Trie struct {
	blocks *BlockArray[TrieBlock]

	// mm and file are nil for an in-memory Trie built with NewInMemory.
	mm   mmap.MMap
	file *os.File
}

// Create makes a brand new index file at path with room for capacity
// blocks, memory-maps it, and initializes the header and the empty tall
// root block (§3 "If the array is empty, the root is created as an empty
// tall block"). capacity is rounded up to at least 1.
func Create(path string, capacity int) (*Trie, error) {
	if capacity < 1 {
		capacity = 1
	}
	totalSize := headerSize + capacity*blockSize

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("mmtrie: create %s: %w", path, err)
	}
	if err := f.Truncate(int64(totalSize)); err != nil {
		f.Close()
		return nil, fmt.Errorf("mmtrie: truncate %s: %w", path, err)
	}

	region, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmtrie: mmap %s: %w", path, err)
	}

	hdr := (*header)(unsafe.Pointer(&region[0]))
	hdr.magic = magic
	hdr.version = fileVersion
	hdr.sizeInBytes = int32(totalSize)
	hdr.length = 0

	t, err := newTrieFromRegion(region, f, capacity)
	if err != nil {
		region.Unmap()
		f.Close()
		return nil, err
	}
	return t, nil
}

// Open maps an existing index file at path, validating its header (§6,
// §7) before use.
func Open(path string) (*Trie, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("mmtrie: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmtrie: stat %s: %w", path, err)
	}
	if info.Size() < headerSize {
		f.Close()
		return nil, fmt.Errorf("%w: file smaller than header", ErrTruncatedFile)
	}

	region, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmtrie: mmap %s: %w", path, err)
	}

	hdr := (*header)(unsafe.Pointer(&region[0]))
	if err := hdr.validate(info.Size()); err != nil {
		region.Unmap()
		f.Close()
		return nil, err
	}

	capacity := (len(region) - headerSize) / blockSize
	return newTrieFromRegion(region, f, capacity)
}

// NewInMemory builds a Trie backed by a plain Go slice instead of a
// mapped file, for tests and callers that want the structure without a
// backing file. capacity is rounded up to at least 1.
func NewInMemory(capacity int) (*Trie, error) {
	if capacity < 1 {
		capacity = 1
	}
	data := make([]TrieBlock, capacity)
	length := new(atomic.Uint64)
	blocks := newBlockArray(data, length)

	t := &Trie{blocks: blocks}
	if _, err := blocks.Append(TrieBlock{}); err != nil {
		return nil, err
	}
	return t, nil
}

// newTrieFromRegion wraps a validated, already-mapped region into a Trie,
// deriving the BlockArray's data slice and shared length cell directly
// from the mapped bytes (§5: the length cell must live alongside the
// blocks it gates so cross-process readers see both through one mapping).
// offset 16 (length) and 24 (blocks) are both 8-byte aligned by
// construction of [header] and [headerSize], and the mapping itself is
// page-aligned by the OS, so both unsafe casts below satisfy Go's
// alignment requirements.
func newTrieFromRegion(region mmap.MMap, f *os.File, capacity int) (*Trie, error) {
	lengthPtr := (*atomic.Uint64)(unsafe.Pointer(&region[16]))
	blocksPtr := (*TrieBlock)(unsafe.Pointer(&region[headerSize]))
	data := unsafe.Slice(blocksPtr, capacity)

	blocks := newBlockArray(data, lengthPtr)
	t := &Trie{blocks: blocks, mm: region, file: f}

	if blocks.Len() == 0 {
		if _, err := blocks.Append(TrieBlock{}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Close unmaps the backing file, if any, and closes the file handle. It
// is a no-op for a Trie built with NewInMemory.
func (t *Trie) Close() error {
	if t.mm == nil {
		return nil
	}
	if err := t.mm.Unmap(); err != nil {
		return fmt.Errorf("mmtrie: unmap: %w", err)
	}
	t.mm = nil
	if t.file != nil {
		if err := t.file.Close(); err != nil {
			return fmt.Errorf("mmtrie: close: %w", err)
		}
	}
	return nil
}

// Len returns the number of blocks currently in use.
func (t *Trie) Len() uint32 { return t.blocks.Len() }

// Cap returns the total number of block slots in the backing storage.
// When Len reaches Cap, Insert returns ErrCapacityExhausted; growing the
// backing file is the §6 resize contract, which this package does not
// implement.
func (t *Trie) Cap() int { return t.blocks.Cap() }
