// Package srcmap generates and composes JSON source-map v3 documents.
// gopkg.in/sourcemap.v1 only parses maps — there is no writer in that
// package — so the VLQ encoder here is hand-rolled to the Mozilla source
// map spec, while an input map supplied by the caller is decoded with the
// library during chain composition.
package srcmap

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ appends the base64-VLQ encoding of value to dst and returns the
// extended slice. The sign bit occupies the low bit of the first digit, as
// the source-map spec requires.
func encodeVLQ(dst []byte, value int) []byte {
	v := value << 1
	if value < 0 {
		v = (-value << 1) | 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		dst = append(dst, base64Chars[digit])
		if v == 0 {
			break
		}
	}
	return dst
}
