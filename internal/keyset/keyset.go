// Package keyset fingerprints a set<F> cache-key component so that two
// sets with the same members, presented in any order, collide on the same
// cache key. Uses the same highwayhash key material and algorithm as the
// graph-hashing helper it's adapted from, applied here to a sorted,
// delimited join of the set's string-formatted members instead of a raw
// byte blob.
package keyset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Key is an order-independent fingerprint: Hash is the fast comparison
// path, Canonical is the collision-proof fallback used as the actual map
// key (two distinct member sets could in principle collide on Hash).
type Key struct {
	Hash      uint64
	Canonical string
}

// Of builds a Key for a set of comparable members, formatted with
// fmt.Sprint so any comparable F (ids, strings, small structs) can be
// fingerprinted without requiring it to implement Stringer itself.
func Of[F comparable](members []F) Key {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, fmt.Sprint(m))
	}
	sort.Strings(parts)
	canonical := strings.Join(parts, "\x1f")

	h, err := highwayhash.New64(hashKey)
	if err != nil {
		// hashKey is a fixed 32-byte constant; New64 only fails on bad key length.
		panic(err)
	}
	_, _ = h.Write([]byte(canonical))
	return Key{Hash: h.Sum64(), Canonical: canonical}
}
