// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cow

import (
	"cmp"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Delegated identity. Equality, ordering and hashing act on the viewed
// content only; the ownership state and the encoding strategy are never
// part of a value's identity, so a borrowed value compares equal to a
// content-equal owned value, across strategies.

// Equal reports whether a and b view equal element sequences. The two
// values may use different capacity strategies.
func Equal[V, O any, E comparable, F1, F2 any, S Ownable[V, O, E], C1 Capacity[F1], C2 Capacity[F2]](
	a Cow[V, O, E, F1, S, C1], b Cow[V, O, E, F2, S, C2],
) bool {
	return slices.Equal(a.elems(), b.elems())
}

// Compare orders a and b lexicographically over their viewed element
// sequences, returning -1, 0 or 1 as in [slices.Compare]. The two
// values may use different capacity strategies.
func Compare[V, O any, E cmp.Ordered, F1, F2 any, S Ownable[V, O, E], C1 Capacity[F1], C2 Capacity[F2]](
	a Cow[V, O, E, F1, S, C1], b Cow[V, O, E, F2, S, C2],
) int {
	return slices.Compare(a.elems(), b.elems())
}

// Hash64 returns the xxhash digest of a byte-element value's viewed
// content. Content-equal values hash identically regardless of
// ownership state or strategy.
func Hash64[V, O, F any, S Ownable[V, O, byte], C Capacity[F]](c Cow[V, O, byte, F, S, C]) uint64 {
	return xxhash.Sum64(c.elems())
}
