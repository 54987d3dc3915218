package paohuzi

import (
	"slices"

	"github.com/kevin-chtw/tw_paohuzi/utils"
)

// tileCounts 按显示顺序返回出现过的牌及其张数
func tileCounts(tiles []Tile) ([]Tile, map[Tile]int) {
	counts := make(map[Tile]int, len(tiles))
	for _, t := range tiles {
		counts[t]++
	}
	kinds := make([]Tile, 0, len(counts))
	for t := range counts {
		kinds = append(kinds, t)
	}
	SortTiles(kinds)
	return kinds, counts
}

// FindForcedGroups 三张相同的牌必须成坎，不能拆开。
// 四张相同时取三张成坎，余下一张留在rest中。
func FindForcedGroups(tiles []Tile) (forced []Group, rest []Tile) {
	kinds, counts := tileCounts(tiles)
	rest = slices.Clone(tiles)
	for _, t := range kinds {
		if n := counts[t]; n == 3 || n == 4 {
			forced = append(forced, mustGroup(GroupConcealedTriplet, MakeTiles(t, 3)...))
			rest = utils.RemoveElements(rest, t, 3)
		}
	}
	return forced, rest
}

// EnumerateSequenceCandidates 列出可组成的顺子，每个值只取一张代表牌。
// 顺序: 先小写后大写，同一大小写内先特殊顺子再普通顺子(升序)。
func EnumerateSequenceCandidates(tiles []Tile) []Group {
	var present [2][MaxValue + 1]bool
	for _, t := range tiles {
		if t.IsValid() {
			present[t.rank][t.value] = true
		}
	}

	var res []Group
	for _, rank := range []Rank{RankMinor, RankMajor} {
		has := present[rank]
		for _, s := range specialSequences {
			if has[s[0]] && has[s[1]] && has[s[2]] {
				res = append(res, sequenceOf(rank, s))
			}
		}
		for v := MinValue; v+2 <= MaxValue; v++ {
			values := [3]int{v, v + 1, v + 2}
			if isSpecialValues(values) {
				continue
			}
			if has[v] && has[v+1] && has[v+2] {
				res = append(res, sequenceOf(rank, values))
			}
		}
	}
	return res
}

func sequenceOf(rank Rank, values [3]int) Group {
	tiles := make([]Tile, 0, 3)
	for _, v := range values {
		tiles = append(tiles, Tile{value: int8(v), rank: rank})
	}
	return Group{typ: GroupSequence, tiles: tiles}
}

// EnumeratePairCandidates 每种至少两张的牌取前两张作为将，按显示顺序
func EnumeratePairCandidates(tiles []Tile) [][2]Tile {
	kinds, counts := tileCounts(tiles)
	var pairs [][2]Tile
	for _, t := range kinds {
		if counts[t] >= 2 {
			pairs = append(pairs, [2]Tile{t, t})
		}
	}
	return pairs
}

func sortedValues(tiles []Tile) ([3]int, bool) {
	var values [3]int
	if len(tiles) != 3 {
		return values, false
	}
	for i, t := range tiles {
		if !t.IsValid() || t.rank != tiles[0].rank {
			return values, false
		}
		values[i] = t.Value()
	}
	slices.Sort(values[:])
	return values, true
}

// IsValidSequence 三张同大小写，值连续或为一二三/二七十
func IsValidSequence(tiles []Tile) bool {
	values, ok := sortedValues(tiles)
	if !ok {
		return false
	}
	return isSpecialValues(values) || isRunValues(values)
}

func IsSpecialSequence(tiles []Tile) bool {
	values, ok := sortedValues(tiles)
	return ok && isSpecialValues(values)
}
