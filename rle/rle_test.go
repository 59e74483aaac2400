package rle

import (
	"bytes"
	"testing"
)

func TestEncodeScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"AAAABBBCC", "AAAABBBCC", []byte{0x04, 'A', 0x03, 'B', 0x02, 'C'}},
		{"ABC", "ABC", []byte{0x01, 'A', 0x01, 'B', 0x01, 'C'}},
		{"18 identical bytes", string(bytes.Repeat([]byte{0x11}, 18)), []byte{0x12, 0x11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EasyEncode(Width8, []byte(tt.in))
			if err != nil {
				t.Fatalf("EasyEncode: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("encoded = % x, want % x", got, tt.want)
			}

			decoded, err := EasyDecode(Width8, got, len(tt.in))
			if err != nil {
				t.Fatalf("EasyDecode: %v", err)
			}
			if string(decoded) != tt.in {
				t.Errorf("decoded = %q, want %q", decoded, tt.in)
			}
		})
	}
}

func TestWidth16SaturatesAtMaxRun(t *testing.T) {
	in := bytes.Repeat([]byte{0x7A}, Width16.MaxRun()+10)

	encoded, err := EasyEncode(Width16, in)
	if err != nil {
		t.Fatalf("EasyEncode: %v", err)
	}
	if len(encoded) != 2*3 {
		t.Fatalf("expected two packets (max run + remainder), got %d bytes", len(encoded))
	}

	decoded, err := EasyDecode(Width16, encoded, len(in))
	if err != nil {
		t.Fatalf("EasyDecode: %v", err)
	}
	if !bytes.Equal(decoded, in) {
		t.Fatalf("round trip mismatch for saturated run")
	}
}

func TestWidth16LittleEndianWire(t *testing.T) {
	// A run of exactly 300 (0x012C) bytes must be written as count=0x2C,0x01
	// (little-endian).
	in := bytes.Repeat([]byte{0x5A}, 300)

	encoded, err := EasyEncode(Width16, in)
	if err != nil {
		t.Fatalf("EasyEncode: %v", err)
	}
	if len(encoded) != 3 {
		t.Fatalf("expected a single 3-byte packet, got %d bytes", len(encoded))
	}
	if encoded[0] != 0x2C || encoded[1] != 0x01 {
		t.Errorf("count field = % x, want 2c 01 (little-endian 300)", encoded[:2])
	}
}

func TestEncodeOutputTooSmall(t *testing.T) {
	in := []byte("AAAABBBCC")
	out := make([]byte, 3) // room for exactly one packet
	n, err := Encode(Width8, in, out)
	if err == nil {
		t.Fatalf("expected ErrOutputTooSmall, got n=%d, err=nil", n)
	}
	if _, ok := err.(ErrOutputTooSmall); !ok {
		t.Errorf("expected ErrOutputTooSmall, got %T: %v", err, err)
	}
}

func TestDecodeOutputTooSmall(t *testing.T) {
	encoded, err := EasyEncode(Width8, []byte("AAAABBBCC"))
	if err != nil {
		t.Fatalf("EasyEncode: %v", err)
	}

	out := make([]byte, 5)
	_, err = Decode(Width8, encoded, out)
	if err == nil {
		t.Fatalf("expected ErrOutputTooSmall")
	}
	if _, ok := err.(ErrOutputTooSmall); !ok {
		t.Errorf("expected ErrOutputTooSmall, got %T: %v", err, err)
	}
}

func TestEncodeEmptyInputEmitsNothing(t *testing.T) {
	n, err := Encode(Width8, nil, nil)
	if err != nil {
		t.Fatalf("Encode(nil): %v", err)
	}
	if n != 0 {
		t.Errorf("Encode(nil) wrote %d bytes, want 0", n)
	}
}

func TestNoZeroCountEverWritten(t *testing.T) {
	in := []byte("aabbccddeeffgg")
	encoded, err := EasyEncode(Width8, in)
	if err != nil {
		t.Fatalf("EasyEncode: %v", err)
	}
	for pos := 0; pos+2 <= len(encoded); pos += 2 {
		if encoded[pos] == 0 {
			t.Fatalf("packet at offset %d has a zero count", pos)
		}
	}
}
