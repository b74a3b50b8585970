// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cow

import (
	"fmt"
	"unsafe"
)

// Cow is the generic clone-on-write value: a data pointer plus the
// packed field of the capacity strategy C. Ownership is never stored;
// it is derived from the packed field through C.Maybe.
//
// Type parameters: V view type, O owned buffer type, E element type,
// F packed field type, S the [Ownable] family, C the [Capacity]
// strategy. Use the package aliases ([Str], [Slice], ...) rather than
// spelling the full instantiation; the generic form exists so that a
// custom family/strategy pairing remains expressible.
//
// The zero Cow is a valid borrowed empty view.
type Cow[V, O, E, F any, S Ownable[V, O, E], C Capacity[F]] struct {
	ptr *E
	fat F
}

// Borrowed constructs a non-owning view of v. Never allocates; the
// result must not outlive the memory behind v.
func Borrowed[V, O, E, F any, S Ownable[V, O, E], C Capacity[F]](v V) Cow[V, O, E, F, S, C] {
	var (
		s S
		u C
	)
	ptr, length := s.RefParts(v)
	return Cow[V, O, E, F, S, C]{ptr: ptr, fat: u.Empty(length)}
}

// Owned transfers exclusive ownership of o in without copying. The
// buffer must not be used by the caller afterwards. Panics if o's
// length or true capacity exceeds the strategy's representable range.
//
// A buffer with true capacity 0 encodes identically to a borrowed view;
// the result reports IsBorrowed() == true. See the package
// documentation on the zero-capacity collision.
func Owned[V, O, E, F any, S Ownable[V, O, E], C Capacity[F]](o O) Cow[V, O, E, F, S, C] {
	var (
		s S
		u C
	)
	ptr, length, capacity := s.OwnedParts(o)
	return Cow[V, O, E, F, S, C]{ptr: ptr, fat: u.Store(length, capacity)}
}

// view rebuilds the read-only view from the raw parts.
func (c Cow[V, O, E, F, S, C]) view() V {
	var s S
	return s.RefFromParts(c.ptr, c.Len())
}

// elems aliases the viewed sequence as a raw element slice sharing the
// backing memory.
func (c Cow[V, O, E, F, S, C]) elems() []E {
	if c.ptr == nil {
		return nil
	}
	return unsafe.Slice(c.ptr, c.Len())
}

// reset returns the value to the empty borrowed state.
func (c *Cow[V, O, E, F, S, C]) reset() {
	var u C
	c.ptr = nil
	c.fat = u.Empty(0)
}

// View returns the read-only view of the content. Zero cost, valid in
// both states, never transfers or tests ownership.
func (c Cow[V, O, E, F, S, C]) View() V {
	return c.view()
}

// Len returns the element count of the visible sequence.
func (c Cow[V, O, E, F, S, C]) Len() int {
	var u C
	length, _ := u.Unpack(c.fat)
	return length
}

// Cap returns the decoded true capacity and whether the value owns its
// buffer. A borrowed value decodes to (0, false).
func (c Cow[V, O, E, F, S, C]) Cap() (int, bool) {
	var u C
	return u.Maybe(c.fat)
}

// IsBorrowed reports whether the value is a non-owning view, or an
// owned buffer that had no capacity.
func (c Cow[V, O, E, F, S, C]) IsBorrowed() bool {
	_, owned := c.Cap()
	return !owned
}

// IsOwned reports whether the value owns a buffer with nonzero
// capacity.
func (c Cow[V, O, E, F, S, C]) IsOwned() bool {
	_, owned := c.Cap()
	return owned
}

// Clone duplicates the value. A borrowed clone copies only the
// lightweight view, which is safe because both values remain bounded by
// the same referent. An owned clone allocates an independent deep copy;
// the allocation is never shared.
func (c Cow[V, O, E, F, S, C]) Clone() Cow[V, O, E, F, S, C] {
	if c.IsOwned() {
		var s S
		return Owned[V, O, E, F, S, C](s.CloneView(c.view()))
	}
	return c
}

// IntoOwned consumes the value and extracts an owned buffer: the
// backing buffer itself when owned (no copy), a fresh deep copy of the
// referent when borrowed. The receiver is reset to the empty borrowed
// state.
func (c *Cow[V, O, E, F, S, C]) IntoOwned() O {
	var (
		s S
		u C
	)
	if capacity, owned := u.Maybe(c.fat); owned {
		length, _ := u.Unpack(c.fat)
		o := s.OwnedFromParts(c.ptr, length, capacity)
		c.reset()
		return o
	}
	o := s.CloneView(c.view())
	c.reset()
	return o
}

// AsBorrowed returns the view and true when the value is borrowed, or
// the zero view and false when it is owned.
func (c Cow[V, O, E, F, S, C]) AsBorrowed() (V, bool) {
	if c.IsOwned() {
		var zero V
		return zero, false
	}
	return c.view(), true
}

// UnwrapBorrowed asserts the borrowed state and returns the view.
// Panics when the value is owned; [Cow.View] is the infallible
// alternative for callers that do not need the assertion.
func (c Cow[V, O, E, F, S, C]) UnwrapBorrowed() V {
	if c.IsOwned() {
		panic("cow: cannot unwrap an owned value as borrowed")
	}
	return c.view()
}

// Release ends the value's lifecycle. When owned, the backing buffer is
// reconstructed exactly once and dropped for the collector to reclaim;
// when borrowed, Release is a strict no-op on the referent. The
// receiver is reset to the empty borrowed state either way, severing
// the data pointer.
func (c *Cow[V, O, E, F, S, C]) Release() {
	var (
		s S
		u C
	)
	if capacity, owned := u.Maybe(c.fat); owned {
		length, _ := u.Unpack(c.fat)
		_ = s.OwnedFromParts(c.ptr, length, capacity)
	}
	c.reset()
}

// String implements [fmt.Stringer] over the viewed content. Ownership
// is not part of the rendering.
func (c Cow[V, O, E, F, S, C]) String() string {
	return fmt.Sprint(c.view())
}
