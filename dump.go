// Copyright (c) 2025 The mmtrie Authors
// SPDX-License-Identifier: MIT

package mmtrie

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// dumpEntry is one stored key surfaced by a Fprint walk, together with its
// current cost (lower is fresher/more likely to be offered first by
// BestCompletion).
type dumpEntry struct {
	key  string
	cost uint16
}

// String returns a hierarchical listing of every stored key, just a
// wrapper for [Trie.Fprint]. If Fprint returns an error, String panics —
// the same contract bart.Table.String uses around bart.Table.Fprint.
func (t *Trie) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes one line per edge to w, labelled with the full prefix
// from the root to the end of that edge, ordered by ascending cost within
// each logical node and indented by depth. Internal prefixes that are not
// stored keys get a line too, and zero-length sentinel edges get none, so
// a key ending at an internal node appears only as its edge's line. After
// inserting "cat", "car" and "care" the output is:
//
//	└─ ca (cost 65533)
//	   ├─ car (cost 65534)
//	      └─ care (cost 65535)
//	   └─ cat (cost 65535)
//
// This is a debugging aid for the recency ranking (§4.4/§4.5/§4.7), not a
// wire format: no code in this package parses Fprint's output back.
func (t *Trie) Fprint(w io.Writer) error {
	if t == nil || w == nil {
		return nil
	}
	return t.fprintNode(w, 0, "", 0)
}

func (t *Trie) fprintNode(w io.Writer, blockIdx uint32, prefix string, depth int) error {
	refs := t.collectChainSlots(blockIdx)
	sort.SliceStable(refs, func(i, j int) bool {
		_, _, ci := t.getTriple(refs[i])
		_, _, cj := t.getTriple(refs[j])
		return ci < cj
	})

	for i, r := range refs {
		str, entry, cost := t.getTriple(r)
		if str == "" {
			// The leaf-beneath-node sentinel (§4.8): prefix itself is a
			// stored key, not an additional edge to draw.
			continue
		}

		last := i == len(refs)-1
		branch := "├─ "
		if last {
			branch = "└─ "
		}

		key := prefix + str
		if _, err := fmt.Fprintf(w, "%s%s%s (cost %d)\n", strings.Repeat("   ", depth), branch, key, cost); err != nil {
			return err
		}

		if !entry.IsLeaf() {
			if err := t.fprintNode(w, entry.Child(), key, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
