// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cow_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/cow"
)

func TestBorrowedStr(t *testing.T) {
	s := "Hello World"
	c := cow.BorrowedStr(s)

	require.True(t, c.IsBorrowed())
	require.False(t, c.IsOwned())
	require.Equal(t, s, c.View())
	require.Equal(t, len(s), c.Len())

	capacity, owned := c.Cap()
	require.Zero(t, capacity)
	require.False(t, owned)
}

func TestOwnedStr(t *testing.T) {
	buf := []byte("Hello World")
	c := cow.OwnedStr(buf)

	require.True(t, c.IsOwned())
	require.False(t, c.IsBorrowed())
	require.Equal(t, "Hello World", c.View())

	capacity, owned := c.Cap()
	require.True(t, owned)
	require.Equal(t, cap(buf), capacity)
}

func TestZeroCapacityOwnedCollision(t *testing.T) {
	// an owned buffer with true capacity 0 packs identically to a
	// borrowed view: it misreports as borrowed but cannot leak
	c := cow.OwnedStr(nil)
	require.True(t, c.IsBorrowed())
	require.False(t, c.IsOwned())
	require.Equal(t, "", c.View())

	c = cow.OwnedStr([]byte{})
	require.True(t, c.IsBorrowed())

	// length 0 with reserved capacity is still owned
	c = cow.OwnedStr(make([]byte, 0, 8))
	require.True(t, c.IsOwned())
	require.Equal(t, "", c.View())
}

func TestIntoOwnedBorrowed(t *testing.T) {
	s := "Hello World"
	c := cow.BorrowedStr(s)

	out := c.IntoOwned()
	require.Equal(t, s, string(out))

	// extraction deep-copied: mutating the buffer leaves the referent alone
	out[0] = 'J'
	require.Equal(t, "Hello World", s)
	require.Equal(t, "Jello World", string(out))
}

func TestIntoOwnedOwnedMoves(t *testing.T) {
	buf := []byte("Hello World")
	c := cow.OwnedStr(buf)

	out := c.IntoOwned()
	require.True(t, &out[0] == &buf[0], "owned extraction must move, not copy")
	require.Equal(t, len(buf), len(out))
	require.Equal(t, cap(buf), cap(out))

	// the receiver was consumed
	require.True(t, c.IsBorrowed())
	require.Zero(t, c.Len())
}

func TestCloneBorrowedSharesView(t *testing.T) {
	c := cow.BorrowedStr("Hello")
	d := c.Clone()

	require.True(t, d.IsBorrowed())
	require.True(t, cow.Equal(c, d))
}

func TestCloneOwnedIsIndependent(t *testing.T) {
	c := cow.OwnedStr([]byte("Hello"))
	d := c.Clone()

	require.True(t, d.IsOwned())
	require.True(t, cow.Equal(c, d))

	// mutating one extracted buffer never affects the other
	bufC := c.IntoOwned()
	bufC[0] = 'J'
	require.Equal(t, "Hello", d.View())
	bufD := d.IntoOwned()
	require.False(t, &bufC[0] == &bufD[0])
}

func TestCloneIntoOwnedIdempotent(t *testing.T) {
	c := cow.OwnedStr([]byte("Hello World"))

	first := c.Clone()
	second := c.Clone()
	one := first.IntoOwned()
	two := second.IntoOwned()
	require.Equal(t, string(one), string(two))
	require.Equal(t, "Hello World", string(one))
}

func TestUnwrapBorrowed(t *testing.T) {
	c := cow.BorrowedStr("Hello")
	require.Equal(t, "Hello", c.UnwrapBorrowed())

	o := cow.OwnedStr([]byte("Hello"))
	require.PanicsWithValue(t, "cow: cannot unwrap an owned value as borrowed", func() {
		o.UnwrapBorrowed()
	})
}

func TestAsBorrowed(t *testing.T) {
	c := cow.BorrowedStr("Hello")
	v, ok := c.AsBorrowed()
	require.True(t, ok)
	require.Equal(t, "Hello", v)

	o := cow.OwnedStr([]byte("Hello"))
	v, ok = o.AsBorrowed()
	require.False(t, ok)
	require.Zero(t, v)
}

func TestRelease(t *testing.T) {
	c := cow.OwnedStr([]byte("Hello"))
	c.Release()
	require.True(t, c.IsBorrowed())
	require.Zero(t, c.Len())
	require.Equal(t, "", c.View())

	// second release is a strict no-op
	c.Release()
	require.Zero(t, c.Len())

	b := cow.BorrowedStr("Hello")
	b.Release()
	require.Zero(t, b.Len())
}

func TestCrossStateEquality(t *testing.T) {
	require.True(t, cow.Equal(cow.BorrowedStr("Hello"), cow.OwnedStr([]byte("Hello"))))
	require.False(t, cow.Equal(cow.BorrowedStr("Hello"), cow.OwnedStr([]byte("World"))))
}

func TestCrossStrategyEquality(t *testing.T) {
	require.True(t, cow.Equal(cow.BorrowedStr("Hello"), cow.LeanBorrowedStr("Hello")))
	require.True(t, cow.Equal(cow.LeanOwnedStr([]byte("Hello")), cow.SkinnyBorrowedStr("Hello")))
	require.False(t, cow.Equal(cow.BorrowedStr("Hello"), cow.SkinnyOwnedStr([]byte("World"))))
}

func TestCompare(t *testing.T) {
	require.Equal(t, 0, cow.Compare(cow.BorrowedStr("abc"), cow.OwnedStr([]byte("abc"))))
	require.Equal(t, -1, cow.Compare(cow.BorrowedStr("abb"), cow.BorrowedStr("abc")))
	require.Equal(t, 1, cow.Compare(cow.LeanBorrowedStr("b"), cow.LeanBorrowedStr("a")))
}

func TestHash64(t *testing.T) {
	borrowed := cow.BorrowedStr("Hello World!")
	owned := cow.OwnedStr([]byte("Hello World!"))
	lean := cow.LeanBorrowedStr("Hello World!")

	require.Equal(t, cow.Hash64(borrowed), cow.Hash64(owned))
	require.Equal(t, cow.Hash64(borrowed), cow.Hash64(lean))
	require.NotEqual(t, cow.Hash64(borrowed), cow.Hash64(cow.BorrowedStr("hello world!")))
}

func TestStringer(t *testing.T) {
	borrowed := cow.BorrowedStr("Hello")
	owned := cow.OwnedStr([]byte("World"))
	require.Equal(t, "Hello World!", fmt.Sprintf("%s %s!", borrowed, owned))
}

func TestLeanStrLifecycle(t *testing.T) {
	c := cow.LeanBorrowedStr("Hello World")
	require.True(t, c.IsBorrowed())
	require.Equal(t, "Hello World", c.View())

	o := cow.LeanOwnedStr([]byte("Hello World"))
	require.True(t, o.IsOwned())
	require.Equal(t, "Hello World", o.View())
	require.Equal(t, "Hello World", string(o.IntoOwned()))
}

func TestSkinnyStrLifecycle(t *testing.T) {
	c := cow.SkinnyBorrowedStr("Hello World")
	require.True(t, c.IsBorrowed())
	require.Equal(t, "Hello World", c.View())

	o := cow.SkinnyOwnedStr([]byte("Hello World"))
	require.True(t, o.IsOwned())
	require.Equal(t, "Hello World", string(o.IntoOwned()))
}

// TestStressOwned cycles a value through clone, release, extraction and
// re-ownership for a while, checking content integrity at the end.
func TestStressOwned(t *testing.T) {
	expected := []byte("Hello... ")
	c := cow.BorrowedStr("Hello... ")

	for i := range 1024 {
		if i%3 == 0 {
			old := c
			c = old.Clone()
			old.Release()
		}

		owned := c.IntoOwned()
		expected = append(expected, "Hello?.. "...)
		owned = append(owned, "Hello?.. "...)
		c = cow.OwnedStr(owned)
	}

	require.Equal(t, string(expected), string(c.IntoOwned()))
}
