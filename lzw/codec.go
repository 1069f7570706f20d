// Package lzw implements LZW coding with escalating code widths: a
// dictionary-based scheme that grows a table of byte-sequence-to-code
// mappings as it scans the input, widening the code width as the table
// fills and resetting it with an explicit control code when full.
package lzw

import (
	"bytes"
	"errors"

	"github.com/swe-robertkibet/go-filecompress/bitio"
)

const (
	clearCode = 256
	stopCode  = 257

	firstUserCode = 258
	minCodeWidth  = 9
	maxCodeWidth  = 15
	maxDictSize   = 1 << maxCodeWidth // 32768
)

// ErrCorruptCode is returned by Decompress when a code falls outside the
// range the current dictionary state can explain: neither an existing
// entry nor the one entry a KwKwK synthesis would legitimately produce.
var ErrCorruptCode = errors.New("lzw: corrupt or out-of-range code")

// CompressionStats reports dictionary-growth diagnostics collected
// alongside an ordinary Compress call: how many times the dictionary
// filled and had to be reset, and a fingerprint of the longest entry the
// dictionary ever grew to hold.
type CompressionStats struct {
	ClearCount         int
	LongestEntryLength int
	LongestEntryHash   uint64
}

// Compress encodes data as a raw MSB-first bitstream of variable-width
// codes, starting at 9 bits, widening up to 15 as the dictionary fills,
// and resetting via CLEAR if the dictionary reaches capacity. The stream
// always ends with STOP.
func Compress(data []byte) []byte {
	out, _ := CompressWithStats(data)
	return out
}

// CompressWithStats behaves exactly like Compress but also returns
// dictionary-growth diagnostics gathered during the same pass.
func CompressWithStats(data []byte) ([]byte, CompressionStats) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	root := newSeedTrie()
	node := root
	nextCode := firstUserCode
	codeWidth := minCodeWidth
	var stats CompressionStats

	for _, b := range data {
		if child, ok := node.children[b]; ok {
			node = child
			continue
		}

		_ = w.WriteBits(uint32(node.code), codeWidth)

		if nextCode < maxDictSize {
			child := newTrieChild(node, b, uint16(nextCode))
			node.children[b] = child
			if child.depth > stats.LongestEntryLength {
				stats.LongestEntryLength = child.depth
				stats.LongestEntryHash = child.hash
			}
			nextCode++
			if nextCode > (1<<codeWidth) && codeWidth < maxCodeWidth {
				codeWidth++
			}
		} else {
			_ = w.WriteBits(clearCode, codeWidth)
			stats.ClearCount++
			root = newSeedTrie()
			nextCode = firstUserCode
			codeWidth = minCodeWidth
		}

		node = root.children[b]
	}

	if node != root {
		_ = w.WriteBits(uint32(node.code), codeWidth)
	}
	_ = w.WriteBits(stopCode, codeWidth)
	_ = w.Flush()

	return buf.Bytes(), stats
}

// Decompress reverses Compress. A stream that runs out of bits before a
// STOP code is reached is treated as truncated: whatever was decoded up
// to that point is returned rather than treated as an error, since the
// underlying bit reader cannot distinguish absent trailing bits from
// zero-valued ones.
func Decompress(data []byte) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(data))
	entries := newSeedDict()
	nextCode := firstUserCode
	codeWidth := minCodeWidth
	out := []byte{}

	readCode := func() (int, bool) {
		if !r.HasData() {
			return 0, false
		}
		v, _ := r.ReadBits(codeWidth)
		return int(v), true
	}

	code, ok := readCode()
	if !ok {
		return out, nil
	}
	for code == clearCode {
		entries = newSeedDict()
		nextCode = firstUserCode
		codeWidth = minCodeWidth
		code, ok = readCode()
		if !ok {
			return out, nil
		}
	}
	if code == stopCode {
		return out, nil
	}
	if code < 0 || code >= len(entries) {
		return nil, ErrCorruptCode
	}

	prevCode := code
	prevString := resolve(entries, code)
	out = append(out, prevString...)

	for {
		code, ok = readCode()
		if !ok {
			return out, nil
		}
		if code == stopCode {
			break
		}
		if code == clearCode {
			entries = newSeedDict()
			nextCode = firstUserCode
			codeWidth = minCodeWidth
			code, ok = readCode()
			if !ok {
				return out, nil
			}
			if code == stopCode {
				break
			}
			if code < 0 || code >= len(entries) {
				return nil, ErrCorruptCode
			}
			prevCode = code
			prevString = resolve(entries, code)
			out = append(out, prevString...)
			continue
		}

		var current []byte
		if code >= 0 && code < len(entries) {
			current = resolve(entries, code)
		} else if code == nextCode {
			current = append(append([]byte{}, prevString...), prevString[0])
		} else {
			return nil, ErrCorruptCode
		}
		out = append(out, current...)

		if nextCode < maxDictSize {
			entries = append(entries, dictEntry{parent: int32(prevCode), suffix: current[0]})
			nextCode++
			// The decoder's dictionary trails the encoder's by one entry, so
			// it widens one insert earlier to switch width at the same code.
			if nextCode+1 > (1<<codeWidth) && codeWidth < maxCodeWidth {
				codeWidth++
			}
		}

		prevCode = code
		prevString = current
	}

	return out, nil
}
