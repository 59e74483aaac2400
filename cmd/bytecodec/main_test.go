package main

import (
	"bytes"
	"testing"
)

func TestParseArgsDefaults(t *testing.T) {
	opt, err := parseArgs([]string{"-in", "a.txt", "-out", "b.bin"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opt.decompress {
		t.Errorf("decompress = true, want false (default is compress)")
	}
	if opt.codecName != "huffman" {
		t.Errorf("codecName = %q, want %q", opt.codecName, "huffman")
	}
	if opt.inPath != "a.txt" || opt.outPath != "b.bin" {
		t.Errorf("inPath/outPath = %q/%q, want a.txt/b.bin", opt.inPath, opt.outPath)
	}
}

func TestParseArgsMissingIn(t *testing.T) {
	if _, err := parseArgs([]string{"-out", "b.bin"}); err == nil {
		t.Fatalf("expected an error for missing -in")
	}
}

func TestParseArgsMissingOut(t *testing.T) {
	if _, err := parseArgs([]string{"-in", "a.txt"}); err == nil {
		t.Fatalf("expected an error for missing -out")
	}
}

func TestParseArgsDanglingValueFlag(t *testing.T) {
	if _, err := parseArgs([]string{"-in"}); err == nil {
		t.Fatalf("expected an error for a dangling -in")
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	if _, err := parseArgs([]string{"-bogus"}); err == nil {
		t.Fatalf("expected an error for an unknown flag")
	}
}

func TestParseArgsDecompressAndCodec(t *testing.T) {
	opt, err := parseArgs([]string{"-d", "-codec", "rice", "-in", "a", "-out", "b", "-verbose"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !opt.decompress {
		t.Errorf("decompress = false, want true")
	}
	if opt.codecName != "rice" {
		t.Errorf("codecName = %q, want rice", opt.codecName)
	}
	if !opt.verbose {
		t.Errorf("verbose = false, want true")
	}
}

func TestCodecByNameUnknown(t *testing.T) {
	if _, err := CodecByName("bogus"); err == nil {
		t.Fatalf("expected an error for an unknown codec name")
	}
}

func testRoundTrip(t *testing.T, name string, in []byte) {
	t.Helper()

	tag, err := CodecByName(name)
	if err != nil {
		t.Fatalf("CodecByName(%q): %v", name, err)
	}

	container, err := compress(tag, in)
	if err != nil {
		t.Fatalf("compress: %v", err)
	}

	out, err := decompress(container)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}

	if !bytes.Equal(out, in) {
		t.Fatalf("round trip mismatch for %s: got %v, want %v", name, out, in)
	}
}

func TestContainerRoundTrip(t *testing.T) {
	in := []byte("aaaaabbbccccccccccdddddddddddddddd")

	for _, name := range []string{"rle", "rle8", "huffman", "rice"} {
		t.Run(name, func(t *testing.T) {
			testRoundTrip(t, name, in)
		})
	}
}

func TestDecompressRejectsBadMagic(t *testing.T) {
	if _, err := decompress([]byte("not a container at all")); err == nil {
		t.Fatalf("expected an error for a non-container input")
	}
}

func TestDecompressRejectsUnknownTag(t *testing.T) {
	container, err := compress(tagRice, []byte("hello"))
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	container[len(magic)] = byte(99)

	if _, err := decompress(container); err == nil {
		t.Fatalf("expected an error for an unknown codec tag")
	}
}
