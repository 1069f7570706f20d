// Package compressapi dispatches to the rle, huffman, and lzw codecs over
// files on disk and reports timing and size metrics, mirroring the shape
// of a C-style compression ABI without its thread-local error slot.
package compressapi

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/swe-robertkibet/go-filecompress/huffman"
	"github.com/swe-robertkibet/go-filecompress/lzw"
	"github.com/swe-robertkibet/go-filecompress/rle"
)

// Algorithm selects which codec a dispatch call should use.
type Algorithm int

const (
	AlgorithmRLE Algorithm = iota
	AlgorithmHuffman
	AlgorithmLZW
)

// AlgorithmName returns the human-readable name of algo, or "Unknown" for
// any value outside the three defined algorithms.
func AlgorithmName(algo Algorithm) string {
	switch algo {
	case AlgorithmRLE:
		return "Run-Length Encoding"
	case AlgorithmHuffman:
		return "Huffman Coding"
	case AlgorithmLZW:
		return "LZW"
	default:
		return "Unknown"
	}
}

// Metrics reports the outcome of a single CompressFile or DecompressFile
// call: sizes, timings, throughput, and a human-readable error on failure.
type Metrics struct {
	OriginalSizeBytes      uint64
	CompressedSizeBytes    uint64
	CompressionRatio       float64 // compressed/original * 100
	CompressionTimeMS      float64
	DecompressionTimeMS    float64
	CompressionSpeedMBPS   float64
	DecompressionSpeedMBPS float64
	Success                bool
	ErrorMessage           string

	// LZWDictionaryResets and LZWLongestEntryHash are populated only by a
	// CompressFile call with AlgorithmLZW; they report how many times the
	// dictionary filled and reset via CLEAR, and a fingerprint of the
	// longest entry the dictionary grew to hold. Zero for every other
	// algorithm.
	LZWDictionaryResets int
	LZWLongestEntryHash uint64
}

var lastError atomic.Value

func init() {
	lastError.Store("")
}

// LastError returns the message from the most recent InvalidParameters
// failure, mirroring the slot semantics of a C ABI's thread-local error
// buffer. It is not meaningful for ordinary codec failures, which are
// returned directly as Go errors instead.
func LastError() string {
	return lastError.Load().(string)
}

func setLastError(msg string) {
	lastError.Store(msg)
}

// GetFileSize reports the size in bytes of the file at path.
func GetFileSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

func calculateSpeedMBPS(bytes uint64, timeMS float64) float64 {
	if timeMS <= 0 {
		return 0
	}
	seconds := timeMS / 1000.0
	megabytes := float64(bytes) / (1024.0 * 1024.0)
	return megabytes / seconds
}

func isValidAlgorithm(algo Algorithm) bool {
	switch algo {
	case AlgorithmRLE, AlgorithmHuffman, AlgorithmLZW:
		return true
	default:
		return false
	}
}

func decompressFor(algo Algorithm) (decompress func([]byte) ([]byte, error), err error) {
	switch algo {
	case AlgorithmRLE:
		return rle.Decompress, nil
	case AlgorithmHuffman:
		return huffman.Decompress, nil
	case AlgorithmLZW:
		return lzw.Decompress, nil
	default:
		return nil, fmt.Errorf("compressapi: invalid algorithm %d", algo)
	}
}

// compressWithMetrics runs algo's compressor over data, folding any
// algorithm-specific diagnostics (currently only LZW's dictionary stats)
// into m as it goes.
func compressWithMetrics(algo Algorithm, data []byte, m *Metrics) ([]byte, error) {
	switch algo {
	case AlgorithmRLE:
		return rle.Compress(data), nil
	case AlgorithmHuffman:
		return huffman.Compress(data), nil
	case AlgorithmLZW:
		compressed, stats := lzw.CompressWithStats(data)
		m.LZWDictionaryResets = stats.ClearCount
		m.LZWLongestEntryHash = stats.LongestEntryHash
		return compressed, nil
	default:
		return nil, fmt.Errorf("compressapi: invalid algorithm %d", algo)
	}
}

// CompressFile reads inputPath, compresses it with algo, and writes the
// result to outputPath. On an invalid-parameters failure it also records
// the message retrievable via LastError, matching the ABI's error-slot
// convention for that one failure kind; all other failures are returned
// directly.
func CompressFile(algo Algorithm, inputPath, outputPath string) (Metrics, error) {
	var m Metrics

	if inputPath == "" || outputPath == "" {
		setLastError("Invalid parameters")
		return m, fmt.Errorf("compressapi: invalid parameters")
	}

	originalSize, err := GetFileSize(inputPath)
	if err != nil {
		m.ErrorMessage = "Input file does not exist"
		return m, fmt.Errorf("compressapi: input file does not exist: %w", err)
	}
	m.OriginalSizeBytes = originalSize

	if !isValidAlgorithm(algo) {
		m.ErrorMessage = "Invalid algorithm"
		return m, fmt.Errorf("compressapi: invalid algorithm %d", algo)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		m.ErrorMessage = "I/O error reading input"
		return m, fmt.Errorf("compressapi: reading input: %w", err)
	}

	start := time.Now()
	compressed, err := compressWithMetrics(algo, data, &m)
	m.CompressionTimeMS = float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		m.ErrorMessage = "Invalid algorithm"
		return m, err
	}

	if err := os.WriteFile(outputPath, compressed, 0o644); err != nil {
		m.ErrorMessage = "I/O error writing output"
		return m, fmt.Errorf("compressapi: writing output: %w", err)
	}

	m.CompressedSizeBytes = uint64(len(compressed))
	if m.OriginalSizeBytes > 0 {
		m.CompressionRatio = (float64(m.CompressedSizeBytes) / float64(m.OriginalSizeBytes)) * 100.0
	}
	m.CompressionSpeedMBPS = calculateSpeedMBPS(m.OriginalSizeBytes, m.CompressionTimeMS)
	m.Success = true
	return m, nil
}

// DecompressFile reads inputPath, decompresses it with algo, and writes
// the result to outputPath.
func DecompressFile(algo Algorithm, inputPath, outputPath string) (Metrics, error) {
	var m Metrics

	if inputPath == "" || outputPath == "" {
		setLastError("Invalid parameters")
		return m, fmt.Errorf("compressapi: invalid parameters")
	}

	compressedSize, err := GetFileSize(inputPath)
	if err != nil {
		m.ErrorMessage = "Input file does not exist"
		return m, fmt.Errorf("compressapi: input file does not exist: %w", err)
	}
	m.CompressedSizeBytes = compressedSize

	decompress, err := decompressFor(algo)
	if err != nil {
		m.ErrorMessage = "Invalid algorithm"
		return m, err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		m.ErrorMessage = "I/O error reading input"
		return m, fmt.Errorf("compressapi: reading input: %w", err)
	}

	start := time.Now()
	original, err := decompress(data)
	m.DecompressionTimeMS = float64(time.Since(start).Microseconds()) / 1000.0
	if err != nil {
		m.ErrorMessage = err.Error()
		return m, fmt.Errorf("compressapi: decompression failed: %w", err)
	}

	if err := os.WriteFile(outputPath, original, 0o644); err != nil {
		m.ErrorMessage = "I/O error writing output"
		return m, fmt.Errorf("compressapi: writing output: %w", err)
	}

	m.OriginalSizeBytes = uint64(len(original))
	if m.OriginalSizeBytes > 0 {
		m.CompressionRatio = (float64(m.CompressedSizeBytes) / float64(m.OriginalSizeBytes)) * 100.0
	}
	m.DecompressionSpeedMBPS = calculateSpeedMBPS(m.OriginalSizeBytes, m.DecompressionTimeMS)
	m.Success = true
	return m, nil
}
