package lzw

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// trieNode is one node of the compression-side dictionary: a byte-indexed
// trie where the path from the root to a node spells out the byte
// sequence that node's code represents. The root itself represents the
// empty sequence and is never assigned a code.
//
// Each node also carries a rolling hash of its path, derived from its
// parent's hash the same way lpm16's minimal perfect hash construction
// rederives probe seeds: hash(child) = xxhash(hash(parent) || b). This
// gives long dictionary entries a cheap fingerprint without having to
// rebuild their byte sequence from the trie path.
type trieNode struct {
	code     uint16
	depth    int
	hash     uint64
	children map[byte]*trieNode
}

func childHash(parentHash uint64, b byte) uint64 {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], parentHash)
	buf[8] = b
	return xxhash.Sum64(buf[:])
}

func newTrieChild(parent *trieNode, b byte, code uint16) *trieNode {
	return &trieNode{
		code:     code,
		depth:    parent.depth + 1,
		hash:     childHash(parent.hash, b),
		children: make(map[byte]*trieNode),
	}
}

// newSeedTrie returns a fresh root with the 256 single-byte entries
// pre-inserted at codes 0..255, matching the seeded compression
// dictionary required at stream start and after every CLEAR.
func newSeedTrie() *trieNode {
	root := &trieNode{children: make(map[byte]*trieNode, 256)}
	for b := 0; b < 256; b++ {
		root.children[byte(b)] = newTrieChild(root, byte(b), uint16(b))
	}
	return root
}
