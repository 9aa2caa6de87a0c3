package gzipscan

// codeCodeLengthOrder is the RFC 1951 order in which a dynamic Huffman
// block's 19 code-length code lengths are transmitted.
var codeCodeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

var lengthBase = [29]int{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31, 35, 43, 51, 59,
	67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]int{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

var distanceBase = [30]int{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25,
	33, 49, 65, 97, 129, 193, 257, 385, 513, 769,
	1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distanceExtraBits = [30]int{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

func parseLengthCode(r *bitReader, lengthCode int) int {
	base := lengthBase[lengthCode-257]
	extra := lengthExtraBits[lengthCode-257]
	return base + r.bits(extra)
}

func parseDistanceCode(r *bitReader, distanceCode int) int {
	base := distanceBase[distanceCode]
	extra := distanceExtraBits[distanceCode]
	return base + r.bits(extra)
}
