// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package mmtrie

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Verify walks the whole reachable block graph from the root, checking
// invariants I3 (cost ordering), I4 (chain acyclicity), I5 (slot
// density) and I6 (bounded indices), per §8. Leaf-sentinel edges (I9) are
// not inspected. It returns the first violation found, or nil if none. Verify
// is read-only and safe to run concurrently with other readers, but not
// with a writer (§5).
func (t *Trie) Verify() error {
	visited := bitset.New(uint(t.Len()))
	return t.verifyNode(0, visited)
}

// verifyNode checks one logical node (blockIdx plus its sibling chain)
// and then recurses into every internal edge's child.
func (t *Trie) verifyNode(rootIdx uint32, visited *bitset.BitSet) error {
	chainVisited := bitset.New(uint(t.Len()))

	var prevCost uint16
	haveCost := false

	cur := rootIdx
	limit := t.blocks.Cap() + 1
	for step := 0; ; step++ {
		if step > limit {
			return fmt.Errorf("%w: sibling chain from block %d exceeds capacity bound", ErrCorruptChildIndex, rootIdx)
		}
		if cur != 0 && cur >= t.Len() {
			return fmt.Errorf("%w: sibling index %d >= len %d", ErrCorruptChildIndex, cur, t.Len())
		}
		if chainVisited.Test(uint(cur)) {
			return fmt.Errorf("%w: cycle in sibling chain at block %d", ErrCorruptChildIndex, cur)
		}
		chainVisited.Set(uint(cur))
		if visited.Test(uint(cur)) {
			return fmt.Errorf("%w: block %d reachable from more than one logical node", ErrCorruptChildIndex, cur)
		}
		visited.Set(uint(cur))

		b := t.blocks.At(cur)
		n := b.capacity()
		seenEmpty := false
		for i := 0; i < n; i++ {
			exists := b.entryAt(i).Exists()
			if !exists {
				seenEmpty = true
				continue
			}
			if seenEmpty {
				return fmt.Errorf("%w: block %d has a used slot after an empty one (I5)", ErrCorruptChildIndex, cur)
			}

			cost := b.costAt(i)
			if haveCost && cost < prevCost {
				return fmt.Errorf("%w: block %d slot %d cost %d out of order after %d (I3)", ErrCorruptChildIndex, cur, i, cost, prevCost)
			}
			prevCost, haveCost = cost, true

			entry := b.entryAt(i)
			if !entry.IsLeaf() {
				child := entry.Child()
				if child >= t.Len() {
					return fmt.Errorf("%w: block %d slot %d child %d >= len %d (I6)", ErrCorruptChildIndex, cur, i, child, t.Len())
				}
				if err := t.verifyNode(child, visited); err != nil {
					return err
				}
			}
		}

		if b.next == 0 {
			break
		}
		cur = b.next
	}

	return nil
}
