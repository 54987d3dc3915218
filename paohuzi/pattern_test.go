package paohuzi_test

import (
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
)

func TestIsValidSequence(t *testing.T) {
	testCases := []struct {
		tiles   []paohuzi.Tile
		valid   bool
		special bool
	}{
		{[]paohuzi.Tile{m(1), m(2), m(3)}, true, true},
		{[]paohuzi.Tile{M(10), M(2), M(7)}, true, true},
		{[]paohuzi.Tile{m(4), m(6), m(5)}, true, false},
		{[]paohuzi.Tile{M(8), M(9), M(10)}, true, false},
		{[]paohuzi.Tile{m(1), M(2), m(3)}, false, false},
		{[]paohuzi.Tile{m(2), m(7), m(9)}, false, false},
		{[]paohuzi.Tile{m(3), m(3), m(3)}, false, false},
		{[]paohuzi.Tile{m(3), m(4)}, false, false},
	}
	for _, tc := range testCases {
		if got := paohuzi.IsValidSequence(tc.tiles); got != tc.valid {
			t.Errorf("IsValidSequence(%s) = %v, want %v", paohuzi.TilesName(tc.tiles), got, tc.valid)
		}
		if got := paohuzi.IsSpecialSequence(tc.tiles); got != tc.special {
			t.Errorf("IsSpecialSequence(%s) = %v, want %v", paohuzi.TilesName(tc.tiles), got, tc.special)
		}
	}
}

func TestFindForcedGroups(t *testing.T) {
	tiles := []paohuzi.Tile{m(4), m(4), m(4), m(4), M(2), M(2), M(2), m(5), m(5)}
	forced, rest := paohuzi.FindForcedGroups(tiles)
	if len(forced) != 2 {
		t.Fatalf("forced = %v, want 2 groups", forced)
	}
	for _, g := range forced {
		if g.Type() != paohuzi.GroupConcealedTriplet || g.Len() != 3 {
			t.Errorf("forced group %v is not a 3-tile triplet", g)
		}
		for _, tile := range g.Tiles() {
			if tile != g.Key() {
				t.Errorf("forced group %v mixes tiles", g)
			}
		}
	}
	paohuzi.SortTiles(rest)
	want := []paohuzi.Tile{m(4), m(5), m(5)}
	if !slices.Equal(rest, want) {
		t.Errorf("rest = %s, want %s", paohuzi.TilesName(rest), paohuzi.TilesName(want))
	}
	if len(tiles) != 9 {
		t.Error("input was modified")
	}
}

func TestEnumeratePairCandidates(t *testing.T) {
	tiles := []paohuzi.Tile{M(3), M(3), m(9), m(9), m(9), m(1), m(1), M(5)}
	got := paohuzi.EnumeratePairCandidates(tiles)
	want := [][2]paohuzi.Tile{{m(1), m(1)}, {M(3), M(3)}, {m(9), m(9)}}
	if !slices.Equal(got, want) {
		t.Errorf("EnumeratePairCandidates = %v, want %v", got, want)
	}
}

func TestEnumerateSequenceCandidates(t *testing.T) {
	tiles := []paohuzi.Tile{
		M(1), M(2), M(3), M(4),
		m(1), m(2), m(2), m(3), m(7), m(10),
	}
	got := paohuzi.EnumerateSequenceCandidates(tiles)
	want := []string{
		"chi[一,二,三]",
		"chi[二,七,十]",
		"chi[壹,贰,叁]",
		"chi[贰,叁,肆]",
	}
	if len(got) != len(want) {
		t.Fatalf("EnumerateSequenceCandidates = %v, want %v", got, want)
	}
	for i, g := range got {
		if g.String() != want[i] {
			t.Errorf("candidate %d = %v, want %s", i, g, want[i])
		}
		if !paohuzi.IsValidSequence(g.Tiles()) {
			t.Errorf("candidate %v is not a valid sequence", g)
		}
	}
}
