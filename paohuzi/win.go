package paohuzi

import (
	"fmt"
	"slices"

	"github.com/kevin-chtw/tw_paohuzi/utils"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Combination 一种完整的拆牌结果
type Combination struct {
	Committed []Group // 已成型的牌组
	Forced    []Group // 手牌中的坎
	Sequences []Group
	Pair      []Tile
}

// Groups 参与计算胡息的全部牌组(将不计胡息)
func (c *Combination) Groups() []Group {
	if c == nil {
		return nil
	}
	groups := make([]Group, 0, len(c.Committed)+len(c.Forced)+len(c.Sequences))
	groups = append(groups, c.Committed...)
	groups = append(groups, c.Forced...)
	return append(groups, c.Sequences...)
}

type WinResult struct {
	Win         bool
	Huxi        int
	Combination *Combination // 拆牌失败时为nil
}

// Evaluate 判断21张牌能否胡。
// concealed为手牌(含摸到的牌)，groups为已成型的牌组。
// 拆牌成功但不足15胡息时Win为false，Huxi和Combination照常返回。
func Evaluate(concealed []Tile, groups []Group) (WinResult, error) {
	if total := len(concealed) + groupTileCount(groups); total != WinTileCount {
		return WinResult{}, fmt.Errorf("%w: %d tiles", ErrMalformedHandSize, total)
	}

	forced, rest := FindForcedGroups(concealed)
	if len(rest)%3 != 2 {
		return WinResult{}, nil
	}
	pair, sequences, ok := decompose(rest)
	if !ok {
		return WinResult{}, nil
	}

	comb := &Combination{
		Committed: slices.Clone(groups),
		Forced:    forced,
		Sequences: sequences,
		Pair:      pair[:],
	}
	huxi := TotalHuxi(comb.Groups())
	return WinResult{
		Win:         huxi >= MinHuxiToWin,
		Huxi:        huxi,
		Combination: comb,
	}, nil
}

// CheckWin 不修改h，张数不对时直接返回不能胡
func CheckWin(h *HandState) WinResult {
	result, err := Evaluate(h.handTiles(), h.groups)
	if err != nil {
		logger.Log.Debugf("check win skipped: %v", err)
		return WinResult{}
	}
	return result
}

// decompose 按顺序尝试每个将，剩下的牌全部组成顺子即成功，取第一种
func decompose(tiles []Tile) (pair [2]Tile, sequences []Group, ok bool) {
	for _, p := range EnumeratePairCandidates(tiles) {
		rest := utils.RemoveElements(tiles, p[0], 2)
		if sequences, ok = searchSequences(rest, nil); ok {
			return p, sequences, true
		}
	}
	return pair, nil, false
}

func searchSequences(tiles []Tile, found []Group) ([]Group, bool) {
	if len(tiles) == 0 {
		return found, true
	}
	for _, seq := range EnumerateSequenceCandidates(tiles) {
		rest := removeTiles(tiles, seq.tiles)
		if res, ok := searchSequences(rest, append(slices.Clip(found), seq)); ok {
			return res, true
		}
	}
	return nil, false
}

func removeTiles(tiles, remove []Tile) []Tile {
	for _, t := range remove {
		tiles = utils.RemoveElements(tiles, t, 1)
	}
	return tiles
}

// WinningTiles 听牌: 20张且没有摸到的牌时，摸到哪些牌可以胡
func WinningTiles(h *HandState) []Tile {
	if h.HasPending() || h.TotalCount() != WinTileCount-1 {
		return nil
	}
	all := h.allTiles()
	var res []Tile
	for _, t := range AllKinds() {
		if utils.CountElement(all, t) >= 4 {
			continue
		}
		snap := h.Snapshot()
		if err := snap.AcquireDrawnTile(t); err != nil {
			continue
		}
		if CheckWin(snap).Win {
			res = append(res, t)
		}
	}
	return res
}
