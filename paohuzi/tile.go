package paohuzi

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type Rank int8

const (
	RankMinor Rank = iota // 小写
	RankMajor             // 大写
)

func (r Rank) String() string {
	if r == RankMajor {
		return "major"
	}
	return "minor"
}

var minorNames = [MaxValue + 1]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}
var majorNames = [MaxValue + 1]string{"", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖", "拾"}

// 静态表: 牌名 -> 牌
var nameToTile = func() map[string]Tile {
	m := make(map[string]Tile, 2*MaxValue)
	for v := MinValue; v <= MaxValue; v++ {
		m[minorNames[v]] = Tile{value: int8(v), rank: RankMinor}
		m[majorNames[v]] = Tile{value: int8(v), rank: RankMajor}
	}
	return m
}()

// Tile 值类型，可直接用==比较(值和大小写都相同)
type Tile struct {
	value int8
	rank  Rank
}

var TileNull = Tile{}

func NewTile(value int, rank Rank) (Tile, error) {
	if value < MinValue || value > MaxValue {
		return TileNull, fmt.Errorf("%w: %d", ErrInvalidTileValue, value)
	}
	if rank != RankMinor && rank != RankMajor {
		return TileNull, fmt.Errorf("%w: rank %d", ErrInvalidTileValue, rank)
	}
	return Tile{value: int8(value), rank: rank}, nil
}

func MustTile(value int, rank Rank) Tile {
	t, err := NewTile(value, rank)
	if err != nil {
		panic(err)
	}
	return t
}

func Minor(value int) Tile { return MustTile(value, RankMinor) }
func Major(value int) Tile { return MustTile(value, RankMajor) }

func (t Tile) Value() int { return int(t.value) }
func (t Tile) Rank() Rank { return t.rank }
func (t Tile) IsMajor() bool { return t.rank == RankMajor }

func (t Tile) IsValid() bool {
	return t.value >= MinValue && t.value <= MaxValue
}

func (t Tile) SameValue(o Tile) bool {
	return t.value == o.value
}

// IsRed 二七十为红牌，仅用于显示
func (t Tile) IsRed() bool {
	return t.value == 2 || t.value == 7 || t.value == 10
}

// Less 先按值，值相同时小写在前
func (t Tile) Less(o Tile) bool {
	return compareTiles(t, o) < 0
}

func (t Tile) Name() string {
	if !t.IsValid() {
		return ""
	}
	if t.rank == RankMajor {
		return majorNames[t.value]
	}
	return minorNames[t.value]
}

func (t Tile) String() string {
	return t.Name()
}

func compareTiles(a, b Tile) int {
	if c := cmp.Compare(a.value, b.value); c != 0 {
		return c
	}
	return cmp.Compare(a.rank, b.rank)
}

func SortTiles(tiles []Tile) {
	slices.SortFunc(tiles, compareTiles)
}

func sortedClone(tiles []Tile) []Tile {
	res := slices.Clone(tiles)
	SortTiles(res)
	return res
}

func TilesName(tiles []Tile) string {
	names := make([]string, 0, len(tiles))
	for _, t := range tiles {
		names = append(names, t.Name())
	}
	return strings.Join(names, ",")
}

func ParseTile(name string) (Tile, error) {
	if t, ok := nameToTile[strings.TrimSpace(name)]; ok {
		return t, nil
	}
	return TileNull, fmt.Errorf("%w: %q", ErrInvalidTileValue, name)
}

// ParseTiles 解析逗号分隔的牌名，如 "一,二,壹"
func ParseTiles(names string) ([]Tile, error) {
	if strings.TrimSpace(names) == "" {
		return []Tile{}, nil
	}
	parts := strings.Split(names, ",")
	res := make([]Tile, 0, len(parts))
	for _, name := range parts {
		t, err := ParseTile(name)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

// AllKinds 全部20种牌，按显示顺序
func AllKinds() []Tile {
	kinds := make([]Tile, 0, 2*MaxValue)
	for v := MinValue; v <= MaxValue; v++ {
		kinds = append(kinds, Tile{value: int8(v), rank: RankMinor}, Tile{value: int8(v), rank: RankMajor})
	}
	return kinds
}

func MakeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
