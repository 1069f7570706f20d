// Package huffman implements static Huffman coding over byte streams: a
// frequency-ordered prefix tree built once per call, serialized alongside
// the encoded payload in a self-contained container.
package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/swe-robertkibet/go-filecompress/bitio"
)

var (
	// ErrTruncatedTree is returned when the serialized tree runs out of
	// bits before a complete tree could be read back.
	ErrTruncatedTree = errors.New("huffman: truncated or malformed tree encoding")
	// ErrTruncatedPayload is returned when the input holds fewer payload
	// bytes than the encoded_bit_count header calls for.
	ErrTruncatedPayload = errors.New("huffman: truncated payload")
	// ErrSizeMismatch is returned when the decoded byte count does not
	// match the original_size header — corruption the tree walk alone
	// would not otherwise surface.
	ErrSizeMismatch = errors.New("huffman: decoded size does not match header")
	// ErrShortFile is returned when the input is too small to contain
	// the original_size header, or ends before the tree_bit_count or
	// encoded_bit_count header.
	ErrShortFile = errors.New("huffman: file too short to contain a header")
)

// Compress encodes data into the container format described in the
// package's accompanying design notes: a 4-byte original size header,
// followed either by nothing (empty input), a single repeated symbol
// (single-symbol input), or a serialized tree plus bit-packed payload.
func Compress(data []byte) []byte {
	var out bytes.Buffer

	if len(data) == 0 {
		writeUint32(&out, 0)
		return out.Bytes()
	}

	freq := frequencyTable(data)
	if len(freq) == 1 {
		writeUint32(&out, uint32(len(data)))
		for b := range freq {
			out.WriteByte(b)
		}
		return out.Bytes()
	}

	root := buildTree(freq)
	codes := generateCodes(root)

	var treeBuf bytes.Buffer
	treeWriter := bitio.NewWriter(&treeBuf)
	treeBits, _ := serializeTree(treeWriter, root)
	_ = treeWriter.Flush()

	var payloadBuf bytes.Buffer
	payloadWriter := bitio.NewWriter(&payloadBuf)
	var encodedBits int
	for _, b := range data {
		c := codes[b]
		for i := int(c.len) - 1; i >= 0; i-- {
			bit := uint32((c.bits >> uint(i)) & 1)
			_ = payloadWriter.WriteBits(bit, 1)
		}
		encodedBits += int(c.len)
	}
	_ = payloadWriter.Flush()

	writeUint32(&out, uint32(len(data)))
	writeUint32(&out, uint32(treeBits))
	out.Write(treeBuf.Bytes())
	writeUint32(&out, uint32(encodedBits))
	out.Write(payloadBuf.Bytes())

	return out.Bytes()
}

// Decompress reverses Compress. See the package design notes for the
// single-symbol short-form detection rule (file length, not read
// failure).
func Decompress(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, ErrShortFile
	}

	originalSize := binary.LittleEndian.Uint32(data[:4])
	if originalSize == 0 {
		return []byte{}, nil
	}

	if len(data) == 5 {
		symbol := data[4]
		out := make([]byte, originalSize)
		for i := range out {
			out[i] = symbol
		}
		return out, nil
	}

	if len(data) < 8 {
		return nil, ErrShortFile
	}

	treeBitCount := binary.LittleEndian.Uint32(data[4:8])
	treeByteLen := int((treeBitCount + 7) / 8)
	offset := 8
	if offset+treeByteLen > len(data) {
		return nil, ErrTruncatedTree
	}

	treeReader := bitio.NewReader(bytes.NewReader(data[offset : offset+treeByteLen]))
	cursor := &bitCursor{r: treeReader, remaining: int(treeBitCount)}
	root, err := deserializeTree(cursor)
	if err != nil {
		return nil, err
	}
	offset += treeByteLen

	if offset+4 > len(data) {
		return nil, ErrShortFile
	}
	encodedBitCount := binary.LittleEndian.Uint32(data[offset : offset+4])
	offset += 4
	encodedByteLen := int((encodedBitCount + 7) / 8)
	if offset+encodedByteLen > len(data) {
		return nil, ErrTruncatedPayload
	}

	payloadReader := bitio.NewReader(bytes.NewReader(data[offset : offset+encodedByteLen]))

	out := make([]byte, 0, originalSize)
	node := root
	for i := uint32(0); i < encodedBitCount && uint32(len(out)) < originalSize; i++ {
		bit, err := payloadReader.ReadBits(1)
		if err != nil {
			return nil, err
		}
		if bit == 0 {
			node = node.left
		} else {
			node = node.right
		}
		if node == nil {
			return nil, ErrTruncatedTree
		}
		if node.leaf {
			out = append(out, node.symbol)
			node = root
		}
	}

	if uint32(len(out)) != originalSize {
		return nil, ErrSizeMismatch
	}
	return out, nil
}

// serializeTree writes root in preorder: 1 followed by the 8-bit symbol at
// leaves, 0 before recursing left then right at internal nodes. It
// returns the number of bits written.
func serializeTree(w *bitio.Writer, n *node) (int, error) {
	if n.leaf {
		if err := w.WriteBits(1, 1); err != nil {
			return 0, err
		}
		if err := w.WriteBits(uint32(n.symbol), 8); err != nil {
			return 0, err
		}
		return 9, nil
	}

	if err := w.WriteBits(0, 1); err != nil {
		return 0, err
	}
	leftBits, err := serializeTree(w, n.left)
	if err != nil {
		return 0, err
	}
	rightBits, err := serializeTree(w, n.right)
	if err != nil {
		return 0, err
	}
	return 1 + leftBits + rightBits, nil
}

// bitCursor reads from a bitio.Reader under an explicit bit budget, so
// deserializeTree can detect truncation instead of silently reading
// padding bits as if they were tree structure.
type bitCursor struct {
	r         *bitio.Reader
	remaining int
}

func (c *bitCursor) readBit() (uint32, error) {
	if c.remaining <= 0 {
		return 0, ErrTruncatedTree
	}
	v, err := c.r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	c.remaining--
	return v, nil
}

func (c *bitCursor) readByte() (byte, error) {
	if c.remaining < 8 {
		return 0, ErrTruncatedTree
	}
	v, err := c.r.ReadBits(8)
	if err != nil {
		return 0, err
	}
	c.remaining -= 8
	return byte(v), nil
}

func deserializeTree(c *bitCursor) (*node, error) {
	bit, err := c.readBit()
	if err != nil {
		return nil, err
	}
	if bit == 1 {
		sym, err := c.readByte()
		if err != nil {
			return nil, err
		}
		return &node{leaf: true, symbol: sym}, nil
	}

	left, err := deserializeTree(c)
	if err != nil {
		return nil, err
	}
	right, err := deserializeTree(c)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}

func writeUint32(w io.Writer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, _ = w.Write(b[:])
}
