package ommin

import (
	"encoding/binary"
	"fmt"

	"github.com/minio/highwayhash"
)

// hashKey is a fixed 32-byte HighwayHash key; content hashing here is a
// fingerprint for cache invalidation, not a security boundary, so a
// constant key (as the teacher's own graph hasher uses) is fine.
var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Result is what Transform returns: the rewritten source, its content hash,
// and, when a source map was requested, the map's JSON.
type Result struct {
	Content     string
	Map         *string
	ContentHash string
}

// contentHash returns the hex-encoded HighwayHash-64 fingerprint of
// content, the SUPPLEMENTED feature of spec.md's Result type.
func contentHash(content string) (string, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return "", fmt.Errorf("%w: building content hash: %v", ErrInternal, err)
	}
	if _, err := hash.Write([]byte(content)); err != nil {
		return "", fmt.Errorf("%w: hashing content: %v", ErrInternal, err)
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], hash.Sum64())
	return fmt.Sprintf("%x", buf), nil
}
