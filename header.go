// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package mmtrie

import "fmt"

// fileVersion is the current on-disk format version (§6).
const fileVersion = 3

// magic identifies an mmtrie index file. 4 ASCII bytes, per §6.
var magic = [4]byte{'M', 'T', 'R', '1'}

// headerSize is the fixed size in bytes of the persisted header (§6):
// magic(4) + version(1) + reserved(3) + size_in_bytes(4) + reserved(4) +
// len(8) = 24. The block array begins immediately after, at offset 24.
const headerSize = 24

// header mirrors the on-disk layout of §6 exactly, native byte order and
// native struct packing (the format is explicitly not portable across
// ABIs). Every field is laid out at an offset that already satisfies its
// own alignment requirement, so the Go compiler inserts no additional
// padding: magic@0, version@4, reserved@5, sizeInBytes@8, reserved@12,
// length@16, total size 24.
type header struct {
	magic       [4]byte
	version     uint8
	_           [3]byte
	sizeInBytes int32
	_           [4]byte
	length      uint64
}

// validate checks the header against §6/§7: magic, version, and that
// fileSize (the actual size of the backing file) matches the
// size_in_bytes field.
func (h *header) validate(fileSize int64) error {
	if h.magic != magic {
		return fmt.Errorf("%w: got %q", ErrInvalidMagicNumber, h.magic[:])
	}
	if h.version != fileVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidVersion, h.version, fileVersion)
	}
	if int64(h.sizeInBytes) != fileSize {
		return fmt.Errorf("%w: header says %d bytes, file is %d bytes", ErrTruncatedFile, h.sizeInBytes, fileSize)
	}
	return nil
}
