// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cow

// Tagged is the conventional discriminated-union clone-on-write
// representation: an explicit ownership flag alongside both variants.
// It spends the extra words the packed [Cow] avoids, and exists as the
// interop boundary for APIs that want the ownership state spelled out.
//
// Conversions in both directions are lossless and copy-free:
// [FromTagged] and [Cow.IntoTagged] map each variant 1:1.
type Tagged[V, O any] struct {
	owned bool
	view  V
	buf   O
}

// TaggedBorrowed creates the borrowed variant viewing v.
func TaggedBorrowed[V, O any](v V) Tagged[V, O] {
	return Tagged[V, O]{view: v}
}

// TaggedOwned creates the owned variant holding o.
func TaggedOwned[V, O any](o O) Tagged[V, O] {
	return Tagged[V, O]{owned: true, buf: o}
}

// IsBorrowed reports whether this is the borrowed variant.
func (t Tagged[V, O]) IsBorrowed() bool {
	return !t.owned
}

// IsOwned reports whether this is the owned variant.
func (t Tagged[V, O]) IsOwned() bool {
	return t.owned
}

// GetView returns the borrowed view and true, or the zero view and
// false for the owned variant.
func (t Tagged[V, O]) GetView() (V, bool) {
	if t.owned {
		var zero V
		return zero, false
	}
	return t.view, true
}

// GetBuf returns the owned buffer and true, or the zero buffer and
// false for the borrowed variant.
func (t Tagged[V, O]) GetBuf() (O, bool) {
	if !t.owned {
		var zero O
		return zero, false
	}
	return t.buf, true
}

// MatchTagged pattern matches on the variant, calling onBorrowed or
// onOwned.
func MatchTagged[V, O, T any](t Tagged[V, O], onBorrowed func(V) T, onOwned func(O) T) T {
	if t.owned {
		return onOwned(t.buf)
	}
	return onBorrowed(t.view)
}

// FromTagged converts the tagged union into a packed [Cow], mapping
// each variant 1:1 without copying. The owned variant transfers its
// buffer in; t must not be used afterwards.
func FromTagged[V, O, E, F any, S Ownable[V, O, E], C Capacity[F]](t Tagged[V, O]) Cow[V, O, E, F, S, C] {
	if t.owned {
		return Owned[V, O, E, F, S, C](t.buf)
	}
	return Borrowed[V, O, E, F, S, C](t.view)
}

// StrFromTagged converts a tagged string union into a [Str].
func StrFromTagged(t Tagged[string, []byte]) Str {
	return FromTagged[string, []byte, byte, WideField, Text, Wide](t)
}

// SliceFromTagged converts a tagged slice union into a [Slice].
func SliceFromTagged[E any](t Tagged[[]E, []E]) Slice[E] {
	return FromTagged[[]E, []E, E, WideField, List[E], Wide](t)
}

// IntoTagged consumes the value and converts it into the tagged union,
// preserving the variant without copying: an owned value moves its
// buffer out, a borrowed value hands over the view. The receiver is
// reset to the empty borrowed state.
func (c *Cow[V, O, E, F, S, C]) IntoTagged() Tagged[V, O] {
	var (
		s S
		u C
	)
	if capacity, owned := u.Maybe(c.fat); owned {
		length, _ := u.Unpack(c.fat)
		o := s.OwnedFromParts(c.ptr, length, capacity)
		c.reset()
		return TaggedOwned[V, O](o)
	}
	v := c.view()
	c.reset()
	return TaggedBorrowed[V, O](v)
}
