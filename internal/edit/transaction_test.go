// internal/edit/transaction_test.go
package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bethropolis/coral/internal/types"
)

func r(start, end int) types.CharRange { return types.CharRange{Start: start, End: end} }

func TestNewTransactionSortsGroups(t *testing.T) {
	// Two cursors handed in out of document order.
	g1 := NewGroup(nil, Edit{Range: r(10, 12), New: "xx", Old: "ab"})
	g2 := NewGroup(nil, Edit{Range: r(0, 2), New: "y", Old: "cd"})

	tx, err := NewTransaction([]Group{g1, g2})
	require.NoError(t, err)

	edits := tx.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, 0, edits[0].Range.Start)
	// Second edit shifted left by the first edit's delta (-1).
	assert.Equal(t, 9, edits[1].Range.Start)
}

func TestNewTransactionConflict(t *testing.T) {
	g1 := NewGroup(nil, Edit{Range: r(0, 5), New: "", Old: "aaaaa"})
	g2 := NewGroup(nil, Edit{Range: r(3, 8), New: "", Old: "aabbb"})

	tx, err := NewTransaction([]Group{g1, g2})
	assert.Nil(t, tx)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, r(0, 5), conflict.A)
	assert.Equal(t, r(3, 8), conflict.B)
}

func TestNewTransactionTouchingRangesDoNotConflict(t *testing.T) {
	g1 := NewGroup(nil, Edit{Range: r(0, 3), New: "x", Old: "abc"})
	g2 := NewGroup(nil, Edit{Range: r(3, 6), New: "y", Old: "def"})

	tx, err := NewTransaction([]Group{g1, g2})
	require.NoError(t, err)
	assert.Equal(t, "xy", tx.ApplyToString("abcdef"))
}

func TestApplyToString(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		groups []Group
		want   string
	}{
		{
			name:   "single replace",
			text:   "hello world",
			groups: []Group{NewGroup(nil, Edit{Range: r(0, 5), New: "howdy", Old: "hello"})},
			want:   "howdy world",
		},
		{
			name: "two cursors insert",
			text: "ab",
			groups: []Group{
				NewGroup(nil, Edit{Range: r(1, 1), New: "X", Old: ""}),
				NewGroup(nil, Edit{Range: r(2, 2), New: "Y", Old: ""}),
			},
			want: "aXbY",
		},
		{
			name: "swap within one group",
			text: "foo, bar",
			groups: []Group{
				NewGroup(nil,
					Edit{Range: r(0, 3), New: "bar", Old: "foo"},
					Edit{Range: r(5, 8), New: "foo", Old: "bar"},
				),
			},
			want: "bar, foo",
		},
		{
			name:   "multibyte runes",
			text:   "héllo wörld",
			groups: []Group{NewGroup(nil, Edit{Range: r(6, 11), New: "ø", Old: "wörld"})},
			want:   "héllo ø",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := NewTransaction(tt.groups)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tx.ApplyToString(tt.text))
		})
	}
}

func TestInverseRestoresText(t *testing.T) {
	text := "one two three"
	tx, err := NewTransaction([]Group{
		NewGroup(nil, Edit{Range: r(0, 3), New: "1", Old: "one"}),
		NewGroup(nil, Edit{Range: r(4, 7), New: "2222", Old: "two"}),
		NewGroup(nil, Edit{Range: r(8, 13), New: "", Old: "three"}),
	})
	require.NoError(t, err)

	applied := tx.ApplyToString(text)
	assert.Equal(t, "1 2222 ", applied)
	assert.Equal(t, text, tx.Inverse().ApplyToString(applied))
}

func TestSelectionsShiftWithPriorGroups(t *testing.T) {
	sel1 := r(0, 2)
	sel2 := r(8, 10) // Where cursor 2's text sits once its own group ran alone.
	tx, err := NewTransaction([]Group{
		NewGroup(&sel1, Edit{Range: r(0, 4), New: "ab", Old: "aaaa"}),
		NewGroup(&sel2, Edit{Range: r(8, 10), New: "cd", Old: "cc"}),
	})
	require.NoError(t, err)

	sels := tx.Selections()
	require.Len(t, sels, 2)
	assert.Equal(t, r(0, 2), sels[0])
	// First group shrank the text by 2, so the second selection moved left.
	assert.Equal(t, r(6, 8), sels[1])
}

func TestSelectionsRebaseAcrossInterleavedGroups(t *testing.T) {
	// Two cursors each swap their text with a slot on the next line, so
	// every group's edit pair encloses the other group's first edit.
	text := "aa bb\nc d"
	sel1 := r(5, 7) // "aa" once its own swap ran alone
	sel2 := r(7, 9) // "bb" likewise
	tx, err := NewTransaction([]Group{
		NewGroup(&sel1,
			Edit{Range: r(0, 2), New: "c", Old: "aa"},
			Edit{Range: r(6, 7), New: "aa", Old: "c"},
		),
		NewGroup(&sel2,
			Edit{Range: r(3, 5), New: "d", Old: "bb"},
			Edit{Range: r(8, 9), New: "bb", Old: "d"},
		),
	})
	require.NoError(t, err)

	applied := tx.ApplyToString(text)
	assert.Equal(t, "c d\naa bb", applied)

	sels := tx.Selections()
	require.Len(t, sels, 2)
	assert.Equal(t, "aa", string([]rune(applied)[sels[0].Start:sels[0].End]))
	assert.Equal(t, "bb", string([]rune(applied)[sels[1].Start:sels[1].End]))
}

func TestInverseRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringN(0, 60, 80).Draw(t, "text")
		runes := []rune(text)

		// Generate disjoint edit ranges over the text.
		n := rapid.IntRange(1, 4).Draw(t, "edits")
		bounds := make([]int, 0, 2*n)
		for i := 0; i < 2*n; i++ {
			bounds = append(bounds, rapid.IntRange(0, len(runes)).Draw(t, "bound"))
		}
		sortInts(bounds)

		groups := make([]Group, 0, n)
		for i := 0; i+1 < len(bounds); i += 2 {
			start, end := bounds[i], bounds[i+1]
			if i > 0 && start == bounds[i-1] && start == end {
				continue // Touching empty ranges can collide; skip.
			}
			replacement := rapid.StringN(0, 8, 10).Draw(t, "replacement")
			groups = append(groups, NewGroup(nil, Edit{
				Range: r(start, end),
				New:   replacement,
				Old:   string(runes[start:end]),
			}))
		}

		tx, err := NewTransaction(groups)
		if err != nil {
			t.Skip("overlapping ranges drawn")
		}
		applied := tx.ApplyToString(text)
		restored := tx.Inverse().ApplyToString(applied)
		if restored != text {
			t.Fatalf("round trip mismatch: %q -> %q -> %q", text, applied, restored)
		}
	})
}

func sortInts(v []int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}
