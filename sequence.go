// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cow

import "unsafe"

// Ownable sequence capability.
//
// An Ownable describes, per element family, how to take a borrowed view
// or an owned buffer apart into raw (pointer, length, capacity) parts
// and how to put either back together. Implementations are stateless
// zero-size structs; [Cow] instantiates them at the type level and all
// calls devirtualize at compile time.
//
// The family contract mirrors the requirements of the packed encoding:
//
//   - the owned buffer type carries a true capacity absent from the view;
//   - an owned buffer with capacity 0 holds no allocation;
//   - an owned buffer is reconstructible from the parts produced by
//     OwnedParts.

// Ownable is the capability constraint over view type V, owned buffer
// type O and element type E.
type Ownable[V, O, E any] interface {
	// RefParts decomposes a view into its data pointer and length.
	// Never allocates.
	RefParts(v V) (*E, int)

	// RefFromParts rebuilds a read-only view. Valid for as long as the
	// memory behind ptr is live.
	RefFromParts(ptr *E, length int) V

	// OwnedParts decomposes an owned buffer into pointer, length and
	// true capacity. Ownership transfers out entirely; the buffer must
	// not be used by the caller afterwards.
	OwnedParts(o O) (*E, int, int)

	// OwnedFromParts rebuilds the owned buffer from parts previously
	// produced by OwnedParts. Passing any other triple is undefined
	// behavior, not a reportable error.
	OwnedFromParts(ptr *E, length, capacity int) O

	// CloneView deep-copies a view into a freshly allocated owned
	// buffer.
	CloneView(v V) O
}

// Text is the [Ownable] implementation for string views backed by byte
// buffers: the borrowed form is a string, the owned form a []byte whose
// capacity is reported by the runtime.
type Text struct{}

func (Text) RefParts(v string) (*byte, int) {
	return unsafe.StringData(v), len(v)
}

func (Text) RefFromParts(ptr *byte, length int) string {
	return unsafe.String(ptr, length)
}

func (Text) OwnedParts(o []byte) (*byte, int, int) {
	return unsafe.SliceData(o), len(o), cap(o)
}

func (Text) OwnedFromParts(ptr *byte, length, capacity int) []byte {
	return unsafe.Slice(ptr, capacity)[:length]
}

func (Text) CloneView(v string) []byte {
	return []byte(v)
}

// List is the [Ownable] implementation for slices of any element type.
// View and owned buffer share the Go type []E; they differ in role: the
// view's capacity is never consulted, the owned buffer's capacity is
// the true allocated capacity.
type List[E any] struct{}

func (List[E]) RefParts(v []E) (*E, int) {
	return unsafe.SliceData(v), len(v)
}

func (List[E]) RefFromParts(ptr *E, length int) []E {
	return unsafe.Slice(ptr, length)
}

func (List[E]) OwnedParts(o []E) (*E, int, int) {
	return unsafe.SliceData(o), len(o), cap(o)
}

func (List[E]) OwnedFromParts(ptr *E, length, capacity int) []E {
	return unsafe.Slice(ptr, capacity)[:length]
}

func (List[E]) CloneView(v []E) []E {
	out := make([]E, len(v))
	copy(out, v)
	return out
}
