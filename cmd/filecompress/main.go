// Command filecompress drives the rle, huffman, and lzw codecs from the
// command line: pick an algorithm and a mode, point it at an input and
// output file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/swe-robertkibet/go-filecompress/compressapi"
	"github.com/swe-robertkibet/go-filecompress/rle"
)

var algorithmsByName = map[string]compressapi.Algorithm{
	"rle":     compressapi.AlgorithmRLE,
	"huffman": compressapi.AlgorithmHuffman,
	"lzw":     compressapi.AlgorithmLZW,
}

func usage() {
	fmt.Fprintln(os.Stderr, "Multi-Algorithm Compression Tool")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nExample usage:")
	fmt.Fprintln(os.Stderr, "  filecompress -algo rle -mode compress -input sample.txt -output sample.rle")
	fmt.Fprintln(os.Stderr, "  filecompress -algo rle -mode decompress -input sample.rle -output restored.txt")
	fmt.Fprintln(os.Stderr, "  filecompress -algo huffman -mode compress -input sample.txt -output sample.huf")
	fmt.Fprintln(os.Stderr, "  filecompress -algo lzw -mode decompress -input sample.lzw -output restored.txt")
}

func main() {
	log.SetFlags(0)

	algo := flag.String("algo", "", "compression algorithm: rle, huffman, or lzw")
	mode := flag.String("mode", "", "operation mode: compress or decompress")
	input := flag.String("input", "", "input file path")
	output := flag.String("output", "", "output file path")
	flag.Usage = usage
	flag.Parse()

	if *algo == "" {
		log.Println("Error: -algo parameter is required")
		usage()
		os.Exit(1)
	}
	if *mode == "" {
		log.Println("Error: -mode parameter is required")
		usage()
		os.Exit(1)
	}
	if *input == "" {
		log.Println("Error: -input parameter is required")
		usage()
		os.Exit(1)
	}
	if *output == "" {
		log.Println("Error: -output parameter is required")
		usage()
		os.Exit(1)
	}

	algorithm, ok := algorithmsByName[*algo]
	if !ok {
		log.Fatalf("Error: supported algorithms are 'rle', 'huffman', and 'lzw'")
	}
	if *mode != "compress" && *mode != "decompress" {
		log.Fatalf("Error: mode must be either 'compress' or 'decompress'")
	}
	if *input == *output {
		log.Fatalf("Error: input and output files cannot be the same")
	}

	log.Println("Multi-Algorithm Compression Tool")
	log.Printf("Algorithm: %s", *algo)
	log.Printf("Mode: %s", *mode)
	log.Printf("Input: %s", *input)
	log.Printf("Output: %s", *output)
	log.Println("---")

	if *mode == "decompress" && algorithm == compressapi.AlgorithmRLE {
		if data, err := os.ReadFile(*input); err == nil && !rle.IsValidFile(data) {
			log.Println("Warning: input file may not be a valid RLE compressed file")
		}
	}

	var (
		m   compressapi.Metrics
		err error
	)
	if *mode == "compress" {
		m, err = compressapi.CompressFile(algorithm, *input, *output)
	} else {
		m, err = compressapi.DecompressFile(algorithm, *input, *output)
	}

	if err != nil || !m.Success {
		log.Printf("Operation failed: %v", err)
		os.Exit(1)
	}

	log.Println("Operation completed successfully!")
	log.Printf("Original size: %d bytes", m.OriginalSizeBytes)
	log.Printf("Compressed size: %d bytes", m.CompressedSizeBytes)
	log.Printf("Ratio: %.2f%%", m.CompressionRatio)
	if *mode == "compress" {
		log.Printf("Compression time: %.3f ms (%.2f MB/s)", m.CompressionTimeMS, m.CompressionSpeedMBPS)
		if algorithm == compressapi.AlgorithmLZW {
			log.Printf("Dictionary resets: %d", m.LZWDictionaryResets)
			log.Printf("Longest entry fingerprint: %016x", m.LZWLongestEntryHash)
		}
	} else {
		log.Printf("Decompression time: %.3f ms (%.2f MB/s)", m.DecompressionTimeMS, m.DecompressionSpeedMBPS)
	}
}
