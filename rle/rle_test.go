package rle

import (
	"bytes"
	"testing"
)

func TestCompressWorkedExample(t *testing.T) {
	input := []byte("AAAAABBBCCDAA")
	want := []byte{0x05, 0x41, 0x03, 0x42, 0x02, 0x43, 0x01, 0x44, 0x02, 0x41}

	got := Compress(input)
	if !bytes.Equal(got, want) {
		t.Errorf("Compress(%q) = % x, want % x", input, got, want)
	}

	back, err := Decompress(got)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(back, input) {
		t.Errorf("round trip mismatch: got %q, want %q", back, input)
	}
}

func TestRunSaturationAt255(t *testing.T) {
	input := bytes.Repeat([]byte{'A'}, 300)
	want := []byte{0xFF, 0x41, 0x2D, 0x41}

	got := Compress(input)
	if !bytes.Equal(got, want) {
		t.Errorf("Compress(300 A's) = % x, want % x", got, want)
	}

	back, err := Decompress(got)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(back, input) {
		t.Errorf("round trip mismatch: got %d bytes, want %d", len(back), len(input))
	}
}

func TestEmptyInput(t *testing.T) {
	got := Compress(nil)
	if len(got) != 0 {
		t.Errorf("Compress(nil) = % x, want empty", got)
	}

	back, err := Decompress(got)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(back) != 0 {
		t.Errorf("Decompress(empty) = % x, want empty", back)
	}
}

func TestSingleByte(t *testing.T) {
	got := Compress([]byte{0x58})
	want := []byte{0x01, 0x58}
	if !bytes.Equal(got, want) {
		t.Errorf("Compress single byte = % x, want % x", got, want)
	}
}

func TestDecompressRejectsOddLength(t *testing.T) {
	_, err := Decompress([]byte{0x01})
	if err != ErrOddLength {
		t.Errorf("expected ErrOddLength, got %v", err)
	}
}

func TestIsValidFile(t *testing.T) {
	cases := []struct {
		data []byte
		want bool
	}{
		{nil, false},
		{[]byte{}, false},
		{[]byte{1}, false},
		{[]byte{1, 2}, true},
		{[]byte{1, 2, 3}, false},
	}
	for _, c := range cases {
		if got := IsValidFile(c.data); got != c.want {
			t.Errorf("IsValidFile(% x) = %v, want %v", c.data, got, c.want)
		}
	}
}

func TestLargeRunCounts(t *testing.T) {
	for _, n := range []int{1, 255, 256, 1_000_000} {
		input := bytes.Repeat([]byte{'Z'}, n)
		compressed := Compress(input)

		wantRecords := (n + 254) / 255
		if len(compressed) != wantRecords*2 {
			t.Errorf("n=%d: compressed length = %d, want %d", n, len(compressed), wantRecords*2)
		}

		back, err := Decompress(compressed)
		if err != nil {
			t.Fatalf("n=%d: Decompress: %v", n, err)
		}
		if !bytes.Equal(back, input) {
			t.Errorf("n=%d: round trip mismatch", n)
		}
	}
}

func TestAlphabetFrontier(t *testing.T) {
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}

	compressed := Compress(input)
	back, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(back, input) {
		t.Errorf("round trip mismatch over 00..FF input")
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("a"))
	f.Add([]byte("AAAAABBBCCDAA"))
	f.Add(bytes.Repeat([]byte{'x'}, 1000))

	f.Fuzz(func(t *testing.T, data []byte) {
		compressed := Compress(data)
		back, err := Decompress(compressed)
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if !bytes.Equal(back, data) {
			t.Errorf("round trip mismatch for % x", data)
		}
	})
}
