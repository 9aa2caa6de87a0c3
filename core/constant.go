package core

// CompressCharacterWidth is the compressor's alphabet width: 26 lowercase
// plus 26 uppercase letters, used both by the token allocator's base-52
// digit encoding and by the cost predicate's predicted-alias-length term.
const CompressCharacterWidth = 52
