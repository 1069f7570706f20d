package huffman

import "container/heap"

// node is a Huffman tree node. Leaves carry a symbol; branches carry two
// non-nil children. The tree is a pure hierarchy — no node is shared
// between subtrees — so ordinary pointers suffice without reference
// counting.
type node struct {
	leaf    bool
	symbol  byte
	freq    uint64
	minByte byte // smallest leaf byte value anywhere in this subtree
	left    *node
	right   *node
}

// frequencyTable counts occurrences of each byte value in a single pass.
func frequencyTable(data []byte) map[byte]uint64 {
	freq := make(map[byte]uint64)
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// pqEntry is a priority-queue slot ordered ascending by (freq, minByte,
// seq) — frequency first, ties broken by the smallest leaf byte value the
// subtree contains, remaining ties broken by insertion order. This
// matches the source's min-heap-by-frequency behavior while making the
// internal-node tie-break (unspecified in the original comparator)
// deterministic.
type pqEntry struct {
	n   *node
	seq int
}

type nodeHeap []pqEntry

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.n.freq != b.n.freq {
		return a.n.freq < b.n.freq
	}
	if a.n.minByte != b.n.minByte {
		return a.n.minByte < b.n.minByte
	}
	return a.seq < b.seq
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(pqEntry)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buildTree constructs the Huffman tree for a non-empty frequency table
// with at least two distinct bytes. Pops the two smallest nodes (the first
// pop is "right", the second is "left" — see spec step 4), merges them,
// and repeats until one node remains.
func buildTree(freq map[byte]uint64) *node {
	h := &nodeHeap{}
	heap.Init(h)

	seq := 0
	for b := 0; b < 256; b++ {
		f, ok := freq[byte(b)]
		if !ok {
			continue
		}
		heap.Push(h, pqEntry{n: &node{leaf: true, symbol: byte(b), freq: f, minByte: byte(b)}, seq: seq})
		seq++
	}

	for h.Len() > 1 {
		right := heap.Pop(h).(pqEntry).n
		left := heap.Pop(h).(pqEntry).n

		merged := &node{
			freq:    left.freq + right.freq,
			minByte: minByte(left.minByte, right.minByte),
			left:    left,
			right:   right,
		}
		heap.Push(h, pqEntry{n: merged, seq: seq})
		seq++
	}

	return heap.Pop(h).(pqEntry).n
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

// code is one byte's bit string, MSB-first, represented as a
// packed value plus a bit length (codes never exceed 255 bits for any
// alphabet this spec admits — at most 256 symbols).
type code struct {
	bits uint64
	len  uint8
}

// generateCodes walks the tree by DFS, assigning 0 on left descent and 1
// on right descent. A root that is itself a leaf is assigned the single
// bit 0.
func generateCodes(root *node) map[byte]code {
	table := make(map[byte]code)
	if root == nil {
		return table
	}
	if root.leaf {
		table[root.symbol] = code{bits: 0, len: 1}
		return table
	}
	var walk func(n *node, bits uint64, depth uint8)
	walk = func(n *node, bits uint64, depth uint8) {
		if n.leaf {
			table[n.symbol] = code{bits: bits, len: depth}
			return
		}
		walk(n.left, bits<<1, depth+1)
		walk(n.right, (bits<<1)|1, depth+1)
	}
	walk(root, 0, 0)
	return table
}
