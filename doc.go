/*
Package bytecodec provides a small family of lossless, byte-oriented
compression codecs operating over raw octet buffers: run-length encoding
(package rle), Huffman coding (package huffman), and Rice/Golomb coding
(package rice). Each codec exposes a one-shot EasyEncode/EasyDecode pair
plus lower-level Encode/Decode functions for callers who want to reuse a
bitstream.Writer or inspect internals.

The codecs share a single bit-stream substrate (package bitstream): a
growable, LSB-first bit writer and its borrowing reader counterpart. This
root package holds the pieces the codecs share: the packed (bits, length)
Code value and a shared fatal-error boundary. It also provides a
standalone byte-frequency histogram helper, which the codecs themselves
do not call.
*/
package bytecodec
