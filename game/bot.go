package game

import (
	"math/rand"
	"slices"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
)

// Decider 座位上的决策者
type Decider interface {
	// DecideSelf 摸牌后在opt中选一个操作，OperateDiscard表示直接出牌
	DecideSelf(hand *paohuzi.HandState, opt *Operates) int32
	ChooseDiscard(hand *paohuzi.HandState) paohuzi.Discard
	// DecideWait 别人出牌后的响应，吃牌时同时返回用到的两张手牌
	DecideWait(hand *paohuzi.HandState, tile paohuzi.Tile, opt *Operates) (int32, [2]paohuzi.Tile)
}

// Bot 简单策略: 能胡就胡，能提/偎/跑/碰就做；特殊顺子一定吃，普通顺子按概率吃
type Bot struct {
	rnd            *rand.Rand
	chiProbability float64
}

func NewBot(rnd *rand.Rand, chiProbability float64) *Bot {
	return &Bot{rnd: rnd, chiProbability: chiProbability}
}

func (b *Bot) DecideSelf(hand *paohuzi.HandState, opt *Operates) int32 {
	for _, op := range []int32{OperateHu, OperateTi, OperateWei} {
		if opt.HasOperate(op) {
			return op
		}
	}
	return OperateDiscard
}

func (b *Bot) DecideWait(hand *paohuzi.HandState, tile paohuzi.Tile, opt *Operates) (int32, [2]paohuzi.Tile) {
	if opt.HasOperate(OperatePao) {
		return OperatePao, [2]paohuzi.Tile{}
	}
	if opt.HasOperate(OperatePeng) {
		return OperatePeng, [2]paohuzi.Tile{}
	}
	if opt.HasOperate(OperateChi) && len(opt.ChiOptions) > 0 {
		for _, pair := range opt.ChiOptions {
			if paohuzi.IsSpecialSequence([]paohuzi.Tile{tile, pair[0], pair[1]}) {
				return OperateChi, pair
			}
		}
		if b.rnd.Float64() < b.chiProbability {
			return OperateChi, opt.ChiOptions[b.rnd.Intn(len(opt.ChiOptions))]
		}
	}
	return OperatePass, [2]paohuzi.Tile{}
}

// ChooseDiscard 打出价值最低的牌，价值相同时随机
func (b *Bot) ChooseDiscard(hand *paohuzi.HandState) paohuzi.Discard {
	discards := hand.LegalDiscards()
	all := hand.Concealed()
	if pending, ok := hand.Pending(); ok {
		all = append(all, pending)
	}

	minValue := 0
	var candidates []paohuzi.Discard
	for i, d := range discards {
		value := tileValue(d.Tile, all)
		switch {
		case i == 0 || value < minValue:
			minValue = value
			candidates = []paohuzi.Discard{d}
		case value == minValue:
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return paohuzi.Discard{}
	}
	return candidates[b.rnd.Intn(len(candidates))]
}

// tileValue 评估一张牌留在手里的价值，越高越不该打
func tileValue(tile paohuzi.Tile, all []paohuzi.Tile) int {
	value := 0
	count := 0
	for _, t := range all {
		if t == tile {
			count++
		}
	}
	if count >= 2 {
		value += 10
	}
	if count >= 3 {
		value += 20
	}

	others := slices.Clone(all)
	if i := slices.Index(others, tile); i >= 0 {
		others = slices.Delete(others, i, i+1)
	}
	has := func(v int) bool {
		return slices.ContainsFunc(others, func(t paohuzi.Tile) bool {
			return t.Value() == v && t.Rank() == tile.Rank()
		})
	}

	if nearSpecial(tile.Value(), has) {
		value += 15
	}
	for _, offset := range []int{-2, -1, 1, 2} {
		if v := tile.Value() + offset; v >= paohuzi.MinValue && v <= paohuzi.MaxValue && has(v) {
			value += 5
			break
		}
	}
	if tile.Value() == paohuzi.MinValue || tile.Value() == paohuzi.MaxValue {
		value -= 3
	}
	return value
}

func nearSpecial(v int, has func(int) bool) bool {
	for _, s := range paohuzi.SpecialSequences() {
		if !slices.Contains(s[:], v) {
			continue
		}
		for _, o := range s {
			if o != v && has(o) {
				return true
			}
		}
	}
	return false
}
