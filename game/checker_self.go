package game

import "github.com/kevin-chtw/tw_paohuzi/paohuzi"

// CheckerSelf 摸牌后检查自己能做的操作
type CheckerSelf interface {
	Check(opt *Operates)
}

// 胡检查器
type checkerHu struct {
	play *Play
}

func NewCheckerHu(play *Play) CheckerSelf {
	return &checkerHu{play: play}
}

func (c *checkerHu) Check(opt *Operates) {
	result := paohuzi.CheckWin(c.play.hands[c.play.curSeat])
	if !result.Win {
		return
	}
	c.play.huResult = result
	opt.AddOperate(OperateHu)
}

// 提检查器
type checkerTi struct {
	play *Play
}

func NewCheckerTi(play *Play) CheckerSelf {
	return &checkerTi{play: play}
}

func (c *checkerTi) Check(opt *Operates) {
	hand := c.play.hands[c.play.curSeat]
	if !hand.CanFormConcealedQuadruplet() {
		return
	}
	pending, _ := hand.Pending()
	if keepsDiscard(hand, pending, 3) {
		opt.AddOperate(OperateTi)
	}
}

// 偎检查器
type checkerWei struct {
	play *Play
}

func NewCheckerWei(play *Play) CheckerSelf {
	return &checkerWei{play: play}
}

func (c *checkerWei) Check(opt *Operates) {
	hand := c.play.hands[c.play.curSeat]
	if hand.CanFormConcealedTriplet() && hand.ConcealedCount() > 2 {
		opt.AddOperate(OperateWei)
	}
}

// keepsDiscard 成牌组后手里至少还要剩一张牌可打。
// 有偎可升级时不消耗手牌，否则消耗used张。
func keepsDiscard(hand *paohuzi.HandState, tile paohuzi.Tile, used int) bool {
	if hand.CountExact(tile) == used {
		return hand.ConcealedCount() > used
	}
	return hand.ConcealedCount() > 0
}
