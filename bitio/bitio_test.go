package bitio

import (
	"bytes"
	"testing"
)

func TestWriterFlushPadsTrailingByte(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteBits(0b101, 3); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got := buf.Bytes()
	want := []byte{0b10100000}
	if !bytes.Equal(got, want) {
		t.Errorf("got %08b, want %08b", got, want)
	}
}

func TestWriterEmitsFullWordAt32Bits(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	for i := 0; i < 4; i++ {
		if err := w.WriteBits(0xFF, 8); err != nil {
			t.Fatalf("WriteBits: %v", err)
		}
	}

	if buf.Len() != 4 {
		t.Fatalf("expected 4 bytes emitted eagerly at word boundary, got %d", buf.Len())
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestWriteReadRoundTripAcrossWordBoundary(t *testing.T) {
	widths := []int{9, 10, 11, 12, 13, 14, 15}
	values := []uint32{0, 1, 255, 256, 511, 1000, 4095, 16383}

	var buf bytes.Buffer
	w := NewWriter(&buf)

	var written []uint32
	for i := 0; i < 50; i++ {
		width := widths[i%len(widths)]
		val := values[i%len(values)] & ((1 << uint(width)) - 1)
		if err := w.WriteBits(val, width); err != nil {
			t.Fatalf("WriteBits: %v", err)
		}
		written = append(written, val)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	r := NewReader(&buf)
	for i, want := range written {
		width := widths[i%len(widths)]
		got, err := r.ReadBits(width)
		if err != nil {
			t.Fatalf("ReadBits(%d): %v", width, err)
		}
		if got != want {
			t.Errorf("entry %d (width %d): got %d, want %d", i, width, got, want)
		}
	}
}

func TestReadBitsRejectsInvalidWidth(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBits(1, 0); err == nil {
		t.Error("expected error for numBits == 0")
	}
	if err := w.WriteBits(1, 33); err == nil {
		t.Error("expected error for numBits > 32")
	}

	r := NewReader(&buf)
	if _, err := r.ReadBits(0); err == nil {
		t.Error("expected error for numBits == 0")
	}
	if _, err := r.ReadBits(33); err == nil {
		t.Error("expected error for numBits > 32")
	}
}

func TestHasDataAfterExhaustion(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	_ = w.WriteBits(1, 1)
	_ = w.Flush()

	r := NewReader(&buf)
	if !r.HasData() {
		t.Fatal("expected HasData true before consuming the single byte")
	}
	if _, err := r.ReadBits(8); err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if r.HasData() {
		t.Error("expected HasData false once the buffered byte is exhausted")
	}
}

func TestWriteBits32AtWordBoundary(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBits(0xDEADBEEF, 32); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %v, want %v", buf.Bytes(), want)
	}
}
