package paohuzi

import (
	"fmt"
	"slices"
)

type GroupType int

const (
	GroupNone                GroupType = iota
	GroupSequence                      // 吃: 顺子
	GroupExposedTriplet                // 碰: 明三张
	GroupConcealedTriplet              // 偎: 暗三张
	GroupExposedQuadruplet             // 跑: 明四张
	GroupConcealedQuadruplet           // 提: 暗四张
)

var groupTypeNames = map[GroupType]string{
	GroupSequence:            "chi",
	GroupExposedTriplet:      "peng",
	GroupConcealedTriplet:    "wei",
	GroupExposedQuadruplet:   "pao",
	GroupConcealedQuadruplet: "ti",
}

func (g GroupType) String() string {
	if name, ok := groupTypeNames[g]; ok {
		return name
	}
	return "none"
}

func (g GroupType) Size() int {
	switch g {
	case GroupSequence, GroupExposedTriplet, GroupConcealedTriplet:
		return 3
	case GroupExposedQuadruplet, GroupConcealedQuadruplet:
		return 4
	default:
		return 0
	}
}

func (g GroupType) IsSequence() bool { return g == GroupSequence }

func (g GroupType) IsTriplet() bool {
	return g == GroupExposedTriplet || g == GroupConcealedTriplet
}

func (g GroupType) IsQuadruplet() bool {
	return g == GroupExposedQuadruplet || g == GroupConcealedQuadruplet
}

// Group 已成型的牌组，创建后不可修改
type Group struct {
	typ   GroupType
	tiles []Tile
}

func NewGroup(typ GroupType, tiles ...Tile) (Group, error) {
	if len(tiles) != typ.Size() {
		return Group{}, fmt.Errorf("%w: %s needs %d tiles, got %d", ErrIllegalGroupFormation, typ, typ.Size(), len(tiles))
	}
	for _, t := range tiles {
		if !t.IsValid() {
			return Group{}, fmt.Errorf("%w: %v", ErrInvalidTileValue, t)
		}
	}
	if typ.IsSequence() {
		if !IsValidSequence(tiles) {
			return Group{}, fmt.Errorf("%w: %s is not a sequence", ErrIllegalGroupFormation, TilesName(tiles))
		}
	} else if !allSame(tiles) {
		return Group{}, fmt.Errorf("%w: %s tiles differ: %s", ErrIllegalGroupFormation, typ, TilesName(tiles))
	}
	return Group{typ: typ, tiles: slices.Clone(tiles)}, nil
}

// mustGroup 仅用于调用方已校验过的场景
func mustGroup(typ GroupType, tiles ...Tile) Group {
	g, err := NewGroup(typ, tiles...)
	if err != nil {
		panic(err)
	}
	return g
}

func allSame(tiles []Tile) bool {
	for _, t := range tiles[1:] {
		if t != tiles[0] {
			return false
		}
	}
	return true
}

func (g Group) Type() GroupType { return g.typ }
func (g Group) Len() int { return len(g.tiles) }

func (g Group) Tiles() []Tile {
	return slices.Clone(g.tiles)
}

// Concealed 偎牌不亮给其他玩家
func (g Group) Concealed() bool {
	return g.typ == GroupConcealedTriplet
}

// Key 刻子/四张的代表牌，顺子返回最小的牌
func (g Group) Key() Tile {
	if len(g.tiles) == 0 {
		return TileNull
	}
	if g.typ.IsSequence() {
		return slices.MinFunc(g.tiles, compareTiles)
	}
	return g.tiles[0]
}

func (g Group) Rank() Rank {
	return g.Key().Rank()
}

func (g Group) Equal(o Group) bool {
	return g.typ == o.typ && slices.Equal(sortedClone(g.tiles), sortedClone(o.tiles))
}

func (g Group) String() string {
	return fmt.Sprintf("%s[%s]", g.typ, TilesName(g.tiles))
}

func groupTileCount(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += g.Len()
	}
	return n
}
