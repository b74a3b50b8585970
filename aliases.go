// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cow

// Concrete family/strategy pairings. The aliases share the full method
// set of [Cow]; the constructors pin down every type parameter so call
// sites read like ordinary functions.

// Str is the 3-word clone-on-write string.
type Str = Cow[string, []byte, byte, WideField, Text, Wide]

// LeanStr is the 2-word clone-on-write string. Length and capacity are
// limited to half the machine word.
type LeanStr = Cow[string, []byte, byte, uintptr, Text, Lean]

// SkinnyStr is the clone-on-write string with an architecture-
// independent 32/32 packed field.
type SkinnyStr = Cow[string, []byte, byte, uint64, Text, Skinny]

// Slice is the 3-word clone-on-write slice of E.
type Slice[E any] = Cow[[]E, []E, E, WideField, List[E], Wide]

// LeanSlice is the 2-word clone-on-write slice of E. Length and
// capacity are limited to half the machine word.
type LeanSlice[E any] = Cow[[]E, []E, E, uintptr, List[E], Lean]

// SkinnySlice is the clone-on-write slice of E with an architecture-
// independent 32/32 packed field.
type SkinnySlice[E any] = Cow[[]E, []E, E, uint64, List[E], Skinny]

// BorrowedStr returns a [Str] viewing s without copying.
func BorrowedStr(s string) Str {
	return Borrowed[string, []byte, byte, WideField, Text, Wide](s)
}

// OwnedStr returns a [Str] taking ownership of buf without copying.
func OwnedStr(buf []byte) Str {
	return Owned[string, []byte, byte, WideField, Text, Wide](buf)
}

// LeanBorrowedStr returns a [LeanStr] viewing s without copying.
func LeanBorrowedStr(s string) LeanStr {
	return Borrowed[string, []byte, byte, uintptr, Text, Lean](s)
}

// LeanOwnedStr returns a [LeanStr] taking ownership of buf without
// copying. Panics if buf's length or capacity exceeds the Lean range.
func LeanOwnedStr(buf []byte) LeanStr {
	return Owned[string, []byte, byte, uintptr, Text, Lean](buf)
}

// SkinnyBorrowedStr returns a [SkinnyStr] viewing s without copying.
func SkinnyBorrowedStr(s string) SkinnyStr {
	return Borrowed[string, []byte, byte, uint64, Text, Skinny](s)
}

// SkinnyOwnedStr returns a [SkinnyStr] taking ownership of buf without
// copying. Panics if buf's length or capacity exceeds 32 bits.
func SkinnyOwnedStr(buf []byte) SkinnyStr {
	return Owned[string, []byte, byte, uint64, Text, Skinny](buf)
}

// BorrowedSlice returns a [Slice] viewing v without copying.
func BorrowedSlice[E any](v []E) Slice[E] {
	return Borrowed[[]E, []E, E, WideField, List[E], Wide](v)
}

// OwnedSlice returns a [Slice] taking ownership of buf without copying.
func OwnedSlice[E any](buf []E) Slice[E] {
	return Owned[[]E, []E, E, WideField, List[E], Wide](buf)
}

// LeanBorrowedSlice returns a [LeanSlice] viewing v without copying.
func LeanBorrowedSlice[E any](v []E) LeanSlice[E] {
	return Borrowed[[]E, []E, E, uintptr, List[E], Lean](v)
}

// LeanOwnedSlice returns a [LeanSlice] taking ownership of buf without
// copying. Panics if buf's length or capacity exceeds the Lean range.
func LeanOwnedSlice[E any](buf []E) LeanSlice[E] {
	return Owned[[]E, []E, E, uintptr, List[E], Lean](buf)
}

// SkinnyBorrowedSlice returns a [SkinnySlice] viewing v without
// copying.
func SkinnyBorrowedSlice[E any](v []E) SkinnySlice[E] {
	return Borrowed[[]E, []E, E, uint64, List[E], Skinny](v)
}

// SkinnyOwnedSlice returns a [SkinnySlice] taking ownership of buf
// without copying. Panics if buf's length or capacity exceeds 32 bits.
func SkinnyOwnedSlice[E any](buf []E) SkinnySlice[E] {
	return Owned[[]E, []E, E, uint64, List[E], Skinny](buf)
}
