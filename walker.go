// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package mmtrie

// heuristicFactor is the fixed constant from §4.7's stop condition. It is
// reproduced bit-exactly (as a float64 multiplication) rather than turned
// into an integer ratio, matching the spec's instruction that it is "a
// tunable but fixed constant of the algorithm."
const heuristicFactor = 1.8

// WalkResult is the outcome of walking a prefix through the trie (§4.6).
type WalkResult struct {
	// Success is false if the walk reached a block where no edge matched
	// the remaining prefix, even after earlier edges matched; all other
	// fields are then zero.
	Success bool
	// Consumed is the number of leading characters of the queried prefix
	// that were matched.
	Consumed int
	// Extension is the remainder of the last matched edge beyond the
	// consumed slice.
	Extension string
	// Cost is the rank of the last matched edge (lower is better).
	Cost uint16
	// ReachedLeaf is true if the last matched edge terminates a stored
	// string.
	ReachedLeaf bool
}

// TrieWalker is a read-only cursor into a Trie (§2, §4.6-§4.7). It issues
// no stores, so any number of walkers may run concurrently with each other
// (though never concurrently with a writer, §5). It is not allocation-free:
// WalkTo (when checking for a sentinel) and WalkToHeuristic build
// temporary slices of the sibling-chain slots they scan.
type TrieWalker struct {
	trie  *Trie
	block uint32
}

// NewWalker returns a walker positioned at the trie's root.
func (t *Trie) NewWalker() *TrieWalker {
	return &TrieWalker{trie: t, block: 0}
}

// Walk runs WalkTo from a fresh walker at the root; it is the
// walk(prefix) operation of §6's external API.
func (t *Trie) Walk(prefix string) WalkResult {
	return t.NewWalker().WalkTo(prefix)
}

// BestCompletion returns the best completion for prefix: the exact walk
// plus, when the walk lands inside the trie rather than on a leaf, a
// heuristic extension favoring the most recently touched edges (§4.7).
// It is the best_completion(prefix) operation of §6's external API.
//
// An empty prefix is not covered explicitly by §6 or §8; here it is
// treated as "suggest anything" and runs the heuristic directly from the
// root. It does not go through WalkTo, which for an empty prefix takes the
// root's first non-empty edge without consuming anything, regardless of
// cost.
func (t *Trie) BestCompletion(prefix string) string {
	if prefix == "" {
		return t.NewWalker().WalkToHeuristic(baseCost)
	}

	w := t.NewWalker()
	res := w.WalkTo(prefix)
	if !res.Success {
		return ""
	}

	out := prefix[:res.Consumed] + res.Extension
	if res.ReachedLeaf {
		return out
	}
	return out + w.WalkToHeuristic(res.Cost)
}

// WalkTo advances the walker from its current block, consuming prefix
// until either the prefix is exhausted, a leaf is reached, or no edge
// matches and no sibling remains (§4.6). On success where the match ends
// on an internal edge, the walker's cursor is left positioned at the
// child block so a subsequent WalkToHeuristic call can continue the
// completion from there.
func (w *TrieWalker) WalkTo(prefix string) WalkResult {
	t := w.trie
	charID := 0

	for {
		if w.block >= t.blocks.Len() {
			// A next or child index corrupted beyond the array's current
			// length (a crash mid-write, or a hand-corrupted file opened
			// via Open) degrades to "no further match" here rather than
			// panicking through BlockArray.At, matching verify.go's
			// cur >= t.Len() guard (§5, §7).
			return WalkResult{}
		}
		k := prefix[charID:]
		i, ok := t.getChildInBlock(w.block, k)
		if ok {
			b := t.blocks.At(w.block)
			storedLen := b.stringLenAt(i)
			consumed := storedLen
			if len(k) < consumed {
				consumed = len(k)
			}
			charID += consumed

			stored := b.stringAt(i)
			extension := stored[consumed:]
			cost := b.costAt(i)
			entry := b.entryAt(i)

			if entry.IsLeaf() {
				return WalkResult{Success: true, Consumed: charID, Extension: extension, Cost: cost, ReachedLeaf: true}
			}

			w.block = entry.Child()
			if charID >= len(prefix) {
				// The prefix ends exactly at this node. Whether that
				// counts as reaching a leaf depends on whether a
				// leaf-beneath-node sentinel (§4.8) was ever recorded
				// here by a shorter string terminating at this same
				// split point (e.g. "bug" once "buggin" also exists);
				// get_child itself cannot see that, since it skips
				// zero-length edges (§4.6, I9).
				if sCost, ok := t.sentinelLeafCost(w.block); ok {
					return WalkResult{Success: true, Consumed: charID, Extension: extension, Cost: sCost, ReachedLeaf: true}
				}
				return WalkResult{Success: true, Consumed: charID, Extension: extension, Cost: cost, ReachedLeaf: false}
			}
			continue
		}

		b := t.blocks.At(w.block)
		if b.next != 0 && b.next < t.blocks.Len() {
			w.block = b.next
			continue
		}
		return WalkResult{}
	}
}

// sentinelLeafCost scans blockIdx's whole sibling chain for the
// leaf-beneath-node sentinel (§4.8): a zero-length, is_leaf edge marking
// that some previously inserted string terminates exactly at this
// logical node. It reports the sentinel's cost and whether one exists.
func (t *Trie) sentinelLeafCost(blockIdx uint32) (uint16, bool) {
	for _, r := range t.collectChainSlots(blockIdx) {
		str, entry, cost := t.getTriple(r)
		if str == "" && entry.IsLeaf() {
			return cost, true
		}
	}
	return 0, false
}

// getChildInBlock finds the first edge in blockIdx whose stored string
// matches k as a prefix, skipping zero-length (leaf-sentinel) edges
// (§4.6, §4.8, I9). It reports "not found" for a blockIdx that has
// drifted past the array's current length, the same guard verify.go
// applies before dereferencing a chain index.
func (t *Trie) getChildInBlock(blockIdx uint32, k string) (int, bool) {
	if blockIdx >= t.blocks.Len() {
		return 0, false
	}
	b := t.blocks.At(blockIdx)
	n := b.occupiedCount()
	for i := 0; i < n; i++ {
		if b.stringLenAt(i) == 0 {
			continue
		}
		if b.matchesAt(i, k) {
			return i, true
		}
	}
	return 0, false
}

// WalkToHeuristic greedily extends the walker's output into the best
// child until ambiguity rises, per §4.7. entryCost is the cost of the
// edge the walker arrived on (or baseCost, the neutral sentinel, when
// starting from the root). The comparison is scoped to the walker's
// current logical node (its block plus sibling chain), matching the
// effective edge set defined in §4.4.
func (w *TrieWalker) WalkToHeuristic(entryCost uint16) string {
	t := w.trie
	out := completionBuilders.Get()
	defer completionBuilders.Put(out)

	for {
		refs := t.collectChainSlots(w.block)
		n := len(refs)
		if n == 0 {
			break
		}

		bestStr, bestEntry, bestCost := t.getTriple(refs[0])

		var total int64
		for _, r := range refs {
			_, _, c := t.getTriple(r)
			total += int64(baseCost) - int64(c)
		}

		prevScore := int64(baseCost) - int64(entryCost)
		stopScore := prevScore - total
		bestScore := int64(baseCost) - int64(bestCost)

		if float64(stopScore)*heuristicFactor > float64(bestScore) {
			break
		}

		out.WriteString(bestStr)
		entryCost = bestCost

		if bestEntry.IsLeaf() {
			break
		}
		w.block = bestEntry.Child()
		if w.block >= t.blocks.Len() {
			// Corrupt child index: stop extending rather than let the
			// next iteration's collectChainSlots walk off the array.
			break
		}
	}

	return out.String()
}
