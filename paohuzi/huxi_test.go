package paohuzi_test

import (
	"testing"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
)

func group(t *testing.T, typ paohuzi.GroupType, tiles ...paohuzi.Tile) paohuzi.Group {
	t.Helper()
	g, err := paohuzi.NewGroup(typ, tiles...)
	if err != nil {
		t.Fatalf("NewGroup(%v, %s): %v", typ, paohuzi.TilesName(tiles), err)
	}
	return g
}

func same(tile paohuzi.Tile, n int) []paohuzi.Tile {
	return paohuzi.MakeTiles(tile, n)
}

func TestGroupHuxi(t *testing.T) {
	testCases := []struct {
		name string
		typ  paohuzi.GroupType
		tile []paohuzi.Tile
		want int
	}{
		{"wei minor", paohuzi.GroupConcealedTriplet, same(m(4), 3), 3},
		{"wei major", paohuzi.GroupConcealedTriplet, same(M(4), 3), 6},
		{"peng minor", paohuzi.GroupExposedTriplet, same(m(4), 3), 1},
		{"peng major", paohuzi.GroupExposedTriplet, same(M(4), 3), 3},
		{"ti minor", paohuzi.GroupConcealedQuadruplet, same(m(8), 4), 9},
		{"ti major", paohuzi.GroupConcealedQuadruplet, same(M(8), 4), 12},
		{"pao minor", paohuzi.GroupExposedQuadruplet, same(m(8), 4), 6},
		{"pao major", paohuzi.GroupExposedQuadruplet, same(M(8), 4), 9},
		{"chi 123 minor", paohuzi.GroupSequence, []paohuzi.Tile{m(1), m(2), m(3)}, 3},
		{"chi 2710 major", paohuzi.GroupSequence, []paohuzi.Tile{M(2), M(7), M(10)}, 6},
		{"chi run", paohuzi.GroupSequence, []paohuzi.Tile{M(4), M(5), M(6)}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := paohuzi.GroupHuxi(group(t, tc.typ, tc.tile...)); got != tc.want {
				t.Errorf("GroupHuxi = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNewGroupRejectsBadShape(t *testing.T) {
	bad := []struct {
		typ   paohuzi.GroupType
		tiles []paohuzi.Tile
	}{
		{paohuzi.GroupExposedTriplet, []paohuzi.Tile{m(3), m(3), M(3)}},
		{paohuzi.GroupConcealedQuadruplet, same(m(3), 3)},
		{paohuzi.GroupSequence, []paohuzi.Tile{m(3), m(5), m(6)}},
	}
	for _, tc := range bad {
		if _, err := paohuzi.NewGroup(tc.typ, tc.tiles...); err == nil {
			t.Errorf("NewGroup(%v, %s) succeeded", tc.typ, paohuzi.TilesName(tc.tiles))
		}
	}
}

func TestConcealedOnlyForWei(t *testing.T) {
	for _, typ := range []paohuzi.GroupType{
		paohuzi.GroupExposedTriplet,
		paohuzi.GroupExposedQuadruplet,
		paohuzi.GroupConcealedQuadruplet,
	} {
		if group(t, typ, same(m(5), typ.Size())...).Concealed() {
			t.Errorf("%v must not be concealed", typ)
		}
	}
	if !group(t, paohuzi.GroupConcealedTriplet, same(m(5), 3)...).Concealed() {
		t.Error("wei must be concealed")
	}
}

func TestPoints(t *testing.T) {
	testCases := []struct {
		huxi int
		want int
	}{
		{0, 0},
		{14, 0},
		{15, 1},
		{17, 1},
		{18, 2},
		{22, 3},
		{27, 5},
	}
	for _, tc := range testCases {
		if got := paohuzi.Points(tc.huxi); got != tc.want {
			t.Errorf("Points(%d) = %d, want %d", tc.huxi, got, tc.want)
		}
	}
}

func TestFifteenHuxiIsOnePoint(t *testing.T) {
	groups := []paohuzi.Group{
		group(t, paohuzi.GroupConcealedTriplet, same(m(9), 3)...),
		group(t, paohuzi.GroupConcealedQuadruplet, same(M(5), 4)...),
		group(t, paohuzi.GroupSequence, m(3), m(4), m(5)),
		group(t, paohuzi.GroupSequence, M(6), M(7), M(8)),
	}
	huxi := paohuzi.TotalHuxi(groups)
	if huxi != 15 {
		t.Fatalf("TotalHuxi = %d, want 15", huxi)
	}
	if paohuzi.Points(huxi) != 1 {
		t.Errorf("Points(15) = %d, want 1", paohuzi.Points(huxi))
	}
}

func TestScoreDescription(t *testing.T) {
	if got := paohuzi.ScoreDescription(21); got != "21胡息 -> 3分(基础1分 + 额外2分)" {
		t.Errorf("ScoreDescription(21) = %q", got)
	}
	if got := paohuzi.ScoreDescription(15); got != "15胡息 -> 1分(基础分)" {
		t.Errorf("ScoreDescription(15) = %q", got)
	}
}
