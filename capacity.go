// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cow

import "math/bits"

// Capacity encoding strategies.
//
// A strategy is a stateless zero-size struct chosen at the type level;
// it decides how length, capacity and the ownership discriminant pack
// into the field type F. The borrowed state is always the encoding in
// which the capacity half decodes to zero — no strategy spends a
// dedicated tag bit.

// Capacity is the constraint for capacity encoding strategies over the
// packed field type F.
//
// Laws, for every strategy and all representable (l, c):
//
//	Unpack(Store(l, c)) == (l, c)
//	Unpack(Empty(l))    == (l, 0)
//	Maybe(f) reports owned iff the decoded capacity is nonzero
type Capacity[F any] interface {
	// Empty encodes the borrowed state for a view of the given length.
	Empty(length int) F

	// Store encodes an owned buffer's length and true capacity.
	// Panics if either exceeds the strategy's representable range;
	// silent truncation would corrupt the later reconstruction.
	Store(length, capacity int) F

	// Unpack decodes length and capacity. Total over both states:
	// a borrowed field decodes to capacity 0.
	Unpack(field F) (length, capacity int)

	// Maybe is the ownership test: the decoded capacity and whether it
	// is nonzero. O(1), no side effects.
	Maybe(field F) (capacity int, owned bool)
}

// Wide is the 3-word strategy: length and capacity each occupy a full
// word, so any buffer the host can allocate is representable. A zero
// capacity word is the borrowed sentinel.
type Wide struct{}

// WideField is the packed field of the [Wide] strategy.
type WideField struct {
	len, cap uintptr
}

func (Wide) Empty(length int) WideField {
	return WideField{len: uintptr(length)}
}

func (Wide) Store(length, capacity int) WideField {
	return WideField{len: uintptr(length), cap: uintptr(capacity)}
}

func (Wide) Unpack(field WideField) (length, capacity int) {
	return int(field.len), int(field.cap)
}

func (Wide) Maybe(field WideField) (capacity int, owned bool) {
	return int(field.cap), field.cap != 0
}

const (
	leanShift  = bits.UintSize / 2
	leanMaskLo = uintptr(1)<<leanShift - 1
)

// Lean is the 2-word strategy: length and capacity split a single word
// down the middle, so both are limited to half the machine word
// (32 bits on 64-bit hosts). A zero high half is the borrowed sentinel.
type Lean struct{}

func (Lean) Empty(length int) uintptr {
	if uintptr(length) > leanMaskLo {
		panic("cow: length exceeds Lean encoding range")
	}
	return uintptr(length)
}

func (Lean) Store(length, capacity int) uintptr {
	if uintptr(length) > leanMaskLo {
		panic("cow: length exceeds Lean encoding range")
	}
	if uintptr(capacity) > leanMaskLo {
		panic("cow: capacity exceeds Lean encoding range")
	}
	return uintptr(length) | uintptr(capacity)<<leanShift
}

func (Lean) Unpack(field uintptr) (length, capacity int) {
	return int(field & leanMaskLo), int(field >> leanShift)
}

func (Lean) Maybe(field uintptr) (capacity int, owned bool) {
	c := field >> leanShift
	return int(c), c != 0
}

const skinnyMask = uint64(1)<<32 - 1

// Skinny packs length and capacity into a fixed 32/32 split of a
// uint64, independent of the machine word width. The encoded form is
// identical on every architecture; both halves are limited to 32 bits.
// A zero high half is the borrowed sentinel.
type Skinny struct{}

func (Skinny) Empty(length int) uint64 {
	if uint64(length) > skinnyMask {
		panic("cow: length exceeds Skinny encoding range")
	}
	return uint64(length)
}

func (Skinny) Store(length, capacity int) uint64 {
	if uint64(length) > skinnyMask {
		panic("cow: length exceeds Skinny encoding range")
	}
	if uint64(capacity) > skinnyMask {
		panic("cow: capacity exceeds Skinny encoding range")
	}
	return uint64(length) | uint64(capacity)<<32
}

func (Skinny) Unpack(field uint64) (length, capacity int) {
	return int(field & skinnyMask), int(field >> 32)
}

func (Skinny) Maybe(field uint64) (capacity int, owned bool) {
	c := field >> 32
	return int(c), c != 0
}
