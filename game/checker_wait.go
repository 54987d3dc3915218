package game

// CheckerWait 别人出牌后检查seat能做的操作
type CheckerWait interface {
	Check(seat int32, opt *Operates)
}

type CheckerPao struct{ play *Play } // 跑牌检查器
func NewCheckerPao(play *Play) CheckerWait {
	return &CheckerPao{play: play}
}

func (c *CheckerPao) Check(seat int32, opt *Operates) {
	hand := c.play.hands[seat]
	if hand.CanFormExposedQuadruplet(c.play.curTile) && keepsDiscard(hand, c.play.curTile, 3) {
		opt.AddOperate(OperatePao)
	}
}

type CheckerPeng struct{ play *Play } // 碰牌检查器
func NewCheckerPeng(play *Play) CheckerWait {
	return &CheckerPeng{play: play}
}

func (c *CheckerPeng) Check(seat int32, opt *Operates) {
	hand := c.play.hands[seat]
	if hand.CanFormExposedTriplet(c.play.curTile) && hand.ConcealedCount() > 2 {
		opt.AddOperate(OperatePeng)
	}
}

type CheckerChi struct{ play *Play } // 吃牌检查器，只有下家能吃
func NewCheckerChi(play *Play) CheckerWait {
	return &CheckerChi{play: play}
}

func (c *CheckerChi) Check(seat int32, opt *Operates) {
	if GetNextSeat(c.play.curSeat, 1, c.play.GetPlayerCount()) != seat {
		return
	}
	hand := c.play.hands[seat]
	if hand.ConcealedCount() <= 2 {
		return
	}
	if options := hand.EnumerateSequenceResponses(c.play.curTile); len(options) > 0 {
		opt.ChiOptions = options
		opt.AddOperate(OperateChi)
	}
}
