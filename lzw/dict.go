package lzw

// dictEntry is one slot of the decompression-side dictionary: codes 0..255
// are base single-byte entries with no parent; every later entry extends
// some earlier entry by one trailing byte. Walking parent pointers back to
// a base entry reconstructs the full byte sequence without the quadratic
// cost of repeated string concatenation.
type dictEntry struct {
	parent int32 // -1 for the 256 base entries and the two reserved codes
	suffix byte
}

// newSeedDict returns the 258-entry decoding dictionary required at
// stream start and after every CLEAR: 256 base single-byte entries
// followed by the two reserved placeholders at clearCode and stopCode.
func newSeedDict() []dictEntry {
	entries := make([]dictEntry, 258)
	for b := 0; b < 256; b++ {
		entries[b] = dictEntry{parent: -1, suffix: byte(b)}
	}
	entries[clearCode] = dictEntry{parent: -1, suffix: 0}
	entries[stopCode] = dictEntry{parent: -1, suffix: 0}
	return entries
}

// resolve reconstructs the byte sequence stored at code by walking parent
// pointers back to a base entry and reversing the collected bytes.
func resolve(entries []dictEntry, code int) []byte {
	var rev []byte
	for code != -1 {
		e := entries[code]
		rev = append(rev, e.suffix)
		code = int(e.parent)
	}
	out := make([]byte, len(rev))
	for i, b := range rev {
		out[len(rev)-1-i] = b
	}
	return out
}
