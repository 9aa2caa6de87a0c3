package gzipscan

import "errors"

// ErrUnsupportedBlock is raised when the DEFLATE stream contains a stored
// (type 0) or fixed-Huffman (type 1) block; spec.md §4.4 requires only
// dynamic Huffman (type 2) support and treats the others as fatal.
var ErrUnsupportedBlock = errors.New("gzipscan: unsupported DEFLATE block type")

// ErrUnsupportedFormat names an input that is neither a gzip member, a zlib
// stream, nor raw DEFLATE. Inflate does not return it: input without a gzip
// or zlib header is always decoded as raw DEFLATE.
var ErrUnsupportedFormat = errors.New("gzipscan: unsupported compressed format")
