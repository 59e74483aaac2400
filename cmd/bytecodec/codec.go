package main

import (
	"encoding/binary"
	"fmt"

	"github.com/glampert/bytecodec/huffman"
	"github.com/glampert/bytecodec/rice"
	"github.com/glampert/bytecodec/rle"
)

// codecTag identifies which algorithm produced a container's payload.
type codecTag byte

const (
	tagRLE8    codecTag = 1
	tagRLE16   codecTag = 2
	tagHuffman codecTag = 3
	tagRice    codecTag = 4
)

// magic marks the start of a container; headerSize is its fixed length
// in bytes: magic(4) + tag(1) + meta(8). meta carries whatever each
// codec's EasyDecode needs to drive its own termination: the original
// byte count for rle/rice (neither is self-terminating), or the exact
// encoded bit count for huffman (self-terminating given that, but not
// given a byte-rounded approximation of it).
const magic = "BYCC"

const headerSize = len(magic) + 1 + 8

// CodecByName maps a command-line codec name to its tag.
func CodecByName(name string) (codecTag, error) {
	switch name {
	case "rle":
		return tagRLE16, nil
	case "rle8":
		return tagRLE8, nil
	case "huffman":
		return tagHuffman, nil
	case "rice":
		return tagRice, nil
	default:
		return 0, fmt.Errorf("unknown codec %q (want rle, rle8, huffman or rice)", name)
	}
}

// compress runs the codec named by tag over in and returns a
// self-contained container: a small header recording the tag and a
// codec-specific meta value, followed by the codec's payload.
func compress(tag codecTag, in []byte) ([]byte, error) {
	var payload []byte
	var meta uint64
	var err error

	switch tag {
	case tagRLE8:
		payload, err = rle.EasyEncode(rle.Width8, in)
		meta = uint64(len(in))
	case tagRLE16:
		payload, err = rle.EasyEncode(rle.Width16, in)
		meta = uint64(len(in))
	case tagHuffman:
		payload, meta = huffman.EasyEncode(in)
	case tagRice:
		payload = rice.EasyEncode(in)
		meta = uint64(len(in))
	default:
		return nil, fmt.Errorf("compress: unknown codec tag %d", tag)
	}
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize+len(payload))
	copy(out, magic)
	out[len(magic)] = byte(tag)
	binary.LittleEndian.PutUint64(out[len(magic)+1:], meta)
	copy(out[headerSize:], payload)
	return out, nil
}

// decompress reverses compress: it reads the container header to learn
// the codec and its meta value, then dispatches to that codec's
// EasyDecode over the remaining bytes.
func decompress(in []byte) ([]byte, error) {
	if len(in) < headerSize || string(in[:len(magic)]) != magic {
		return nil, fmt.Errorf("decompress: not a bytecodec container")
	}

	tag := codecTag(in[len(magic)])
	meta := binary.LittleEndian.Uint64(in[len(magic)+1:])
	payload := in[headerSize:]

	switch tag {
	case tagRLE8:
		return rle.EasyDecode(rle.Width8, payload, int(meta))
	case tagRLE16:
		return rle.EasyDecode(rle.Width16, payload, int(meta))
	case tagHuffman:
		return huffman.EasyDecode(payload, meta)
	case tagRice:
		return rice.EasyDecode(payload, int(meta))
	default:
		return nil, fmt.Errorf("decompress: unknown codec tag %d in container", tag)
	}
}
