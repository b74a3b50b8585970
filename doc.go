// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cow provides compact clone-on-write sequence values.
//
// A [Cow] behaves either as a non-owning view into externally-owned data
// or as an exclusively-owned buffer, copying only when ownership must be
// established. Unlike a conventional tagged union, it carries no
// discriminant field: ownership is derived from bits of the
// length/capacity representation that would otherwise be unused, so the
// whole value fits in fewer machine words.
//
// # Architecture
//
// Three components combine into the public type:
//
//   - [Ownable]: the capability interface describing how a sequence
//     family decomposes views and owned buffers into raw
//     (pointer, length, capacity) parts and reconstructs them.
//     Two families are built in: [Text] (string views over byte
//     buffers) and [List] (slices of any element type).
//   - [Capacity]: the constraint for capacity encoding strategies.
//     A strategy is a zero-size struct selected at the type level;
//     dispatch is resolved at compile time, never through an interface
//     value at runtime.
//   - [Cow]: the generic clone-on-write value combining a capability
//     implementation with a chosen strategy.
//
// # Encoding Strategies
//
// Three interchangeable strategies trade range for footprint:
//
//   - [Wide]: 3 words. Full-word length and capacity; a zero capacity
//     word marks the borrowed state.
//   - [Lean]: 2 words. Length and capacity split a single word down the
//     middle; a zero high half marks the borrowed state. Range is half
//     the machine word.
//   - [Skinny]: fixed 32/32 split in a uint64, identical on every
//     architecture.
//
// [Lean] and [Skinny] panic at construction when a length or capacity
// exceeds their representable range; switch to [Wide] to lift the limit.
//
// # Lifecycle
//
// A value is created borrowed via [Borrowed] (never allocates) or owned
// via [Owned] (transfers the buffer in, no copy). It changes hands only
// through [Cow.Clone] (deep copy when owned, cheap view copy when
// borrowed) and [Cow.IntoOwned] (move-out when owned, deep copy when
// borrowed). [Cow.View] is the infallible zero-cost accessor available
// in both states. [Cow.UnwrapBorrowed] asserts the borrowed state and
// panics otherwise.
//
// Ownership never participates in identity: [Equal], [Compare],
// [Hash64] and the [fmt.Stringer] implementation all act on the viewed
// content, so a borrowed value and a content-equal owned value compare
// equal.
//
// # Affine Convention
//
// A Cow is a single-owner value. Copying one by assignment while owned
// aliases the backing buffer and is a programmer error; duplicate with
// [Cow.Clone] instead. [Cow.IntoOwned], [Cow.IntoTagged] and
// [Cow.Release] consume the receiver, resetting it to the empty
// borrowed state so an accidental second use observes an empty view
// rather than a double release.
//
// # Zero-Capacity Collision
//
// An owned buffer whose true capacity is 0 encodes identically to a
// borrowed view under every strategy. Such values report
// IsBorrowed() == true and release nothing; no allocation exists to
// leak. Reserve at least one element if the distinction matters.
//
// # Interop
//
// [Tagged] is the conventional discriminated-union representation with
// an explicit ownership flag. [FromTagged] and [Cow.IntoTagged] convert
// losslessly in both directions, preserving the variant without copies.
//
// # Example
//
//	borrowed := cow.BorrowedStr("Hello")
//	owned := cow.OwnedStr([]byte("World"))
//
//	fmt.Printf("%s %s!\n", borrowed, owned) // Hello World!
//
//	// ownership is derived, not stored
//	_ = borrowed.IsBorrowed() // true
//	_ = owned.IsOwned()       // true
//
//	// extraction moves when owned, copies when borrowed
//	buf := owned.IntoOwned()
package cow
