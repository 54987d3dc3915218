package game

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Play 一局牌的流程
type Play struct {
	dealer       *Dealer
	deciders     []Decider
	hands        []*paohuzi.HandState
	banker       int32
	curSeat      int32
	curTile      paohuzi.Tile
	history      []Action
	huResult     paohuzi.WinResult
	selfCheckers []CheckerSelf
	waitCheckers []CheckerWait
}

type response struct {
	seat    int32
	operate int32
	pair    [2]paohuzi.Tile
}

func NewPlay(dealer *Dealer, deciders []Decider, banker int32) *Play {
	p := &Play{
		dealer:       dealer,
		deciders:     deciders,
		hands:        make([]*paohuzi.HandState, len(deciders)),
		banker:       banker,
		curSeat:      banker,
		curTile:      paohuzi.TileNull,
		history:      make([]Action, 0),
		selfCheckers: make([]CheckerSelf, 0),
		waitCheckers: make([]CheckerWait, 0),
	}
	for i := range p.hands {
		p.hands[i] = paohuzi.NewHandState()
	}
	p.RegisterSelfCheck(NewCheckerHu(p), NewCheckerTi(p), NewCheckerWei(p))
	p.RegisterWaitCheck(NewCheckerPao(p), NewCheckerPeng(p), NewCheckerChi(p))
	return p
}

func (p *Play) RegisterSelfCheck(cks ...CheckerSelf) {
	p.selfCheckers = append(p.selfCheckers, cks...)
}

func (p *Play) RegisterWaitCheck(cks ...CheckerWait) {
	p.waitCheckers = append(p.waitCheckers, cks...)
}

func (p *Play) GetPlayerCount() int32 {
	return int32(len(p.hands))
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) GetCurTile() paohuzi.Tile {
	return p.curTile
}

func (p *Play) GetBanker() int32 {
	return p.banker
}

func (p *Play) GetHand(seat int32) *paohuzi.HandState {
	if seat < 0 || seat >= p.GetPlayerCount() {
		return nil
	}
	return p.hands[seat]
}

func (p *Play) GetHistory() []Action {
	return slices.Clone(p.history)
}

// Deal 每人发20张，庄家再摸一张
func (p *Play) Deal() error {
	for seat, hand := range p.hands {
		tiles, err := p.dealer.Deal(paohuzi.HandCount)
		if err != nil {
			return fmt.Errorf("deal seat %d: %w", seat, err)
		}
		if err := hand.Deal(tiles...); err != nil {
			return err
		}
	}
	p.curSeat = p.banker
	_, err := p.Draw()
	return err
}

// Run 打完一局，牌墙摸完时流局
func (p *Play) Run(ctx context.Context) (*Result, error) {
	if err := p.Deal(); err != nil {
		return nil, err
	}

	responded := false
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 吃碰跑之后直接出牌，不摸牌
		if !responded {
			if !p.hands[p.curSeat].HasPending() {
				if _, err := p.Draw(); err != nil {
					if errors.Is(err, ErrWallExhausted) {
						return p.result(EndReasonDraw), nil
					}
					return nil, err
				}
			}
			won, err := p.selfTurn()
			if err != nil {
				return nil, err
			}
			if won {
				return p.result(EndReasonHu), nil
			}
		}

		if err := p.discardTurn(); err != nil {
			return nil, err
		}

		seat, err := p.waitTurn()
		if err != nil {
			return nil, err
		}
		if seat != SeatNull {
			p.curSeat = seat
			responded = true
			continue
		}
		p.curSeat = GetNextSeat(p.curSeat, 1, p.GetPlayerCount())
		responded = false
	}
}

func (p *Play) Draw() (paohuzi.Tile, error) {
	tile, err := p.dealer.DrawTile()
	if err != nil {
		return tile, err
	}
	if err := p.hands[p.curSeat].AcquireDrawnTile(tile); err != nil {
		return tile, err
	}
	p.curTile = tile
	p.addHistory(p.curSeat, p.curSeat, OperateDraw, tile, nil)
	return tile, nil
}

func (p *Play) FetchSelfOperates() *Operates {
	opt := NewOperates(OperateDiscard)
	for _, v := range p.selfCheckers {
		v.Check(opt)
	}
	return opt
}

func (p *Play) FetchWaitOperates(seat int32) *Operates {
	opt := NewOperates(OperatePass)
	for _, v := range p.waitCheckers {
		v.Check(seat, opt)
	}
	return opt
}

func (p *Play) selfTurn() (bool, error) {
	hand := p.hands[p.curSeat]
	opt := p.FetchSelfOperates()
	op := p.deciders[p.curSeat].DecideSelf(hand, opt)
	if !opt.HasOperate(op) {
		logger.Log.Warnf("seat %d chose %s, allowed %v", p.curSeat, GetOperateName(op), opt)
		op = OperateDiscard
	}

	switch op {
	case OperateHu:
		p.Zimo()
		return true, nil
	case OperateTi:
		return false, p.Ti()
	case OperateWei:
		return false, p.Wei()
	}
	return false, nil
}

func (p *Play) discardTurn() error {
	hand := p.hands[p.curSeat]
	legal := hand.LegalDiscards()
	if len(legal) == 0 {
		return fmt.Errorf("seat %d: %w: nothing to discard", p.curSeat, paohuzi.ErrTileNotOwned)
	}
	d := p.deciders[p.curSeat].ChooseDiscard(hand)
	if !slices.Contains(legal, d) {
		logger.Log.Warnf("seat %d chose illegal discard %v", p.curSeat, d.Tile)
		d = legal[0]
	}
	return p.Discard(d)
}

// waitTurn 其他玩家响应打出的牌，返回响应成功的座位
func (p *Play) waitTurn() (int32, error) {
	count := p.GetPlayerCount()
	var responses []response
	for step := int32(1); step < count; step++ {
		seat := GetNextSeat(p.curSeat, step, count)
		opt := p.FetchWaitOperates(seat)
		op, pair := p.deciders[seat].DecideWait(p.hands[seat], p.curTile, opt)
		if op == OperatePass || !opt.HasOperate(op) {
			continue
		}
		if op == OperateChi && !slices.Contains(opt.ChiOptions, pair) {
			continue
		}
		responses = append(responses, response{seat: seat, operate: op, pair: pair})
	}

	best, ok := arbitrate(responses)
	if !ok {
		return SeatNull, nil
	}

	var err error
	switch best.operate {
	case OperatePao:
		err = p.Pao(best.seat)
	case OperatePeng:
		err = p.Peng(best.seat)
	case OperateChi:
		err = p.Chi(best.seat, best.pair)
	}
	if err != nil {
		return SeatNull, err
	}
	return best.seat, nil
}

// arbitrate 跑 > 碰 > 吃，同优先级按出牌者之后的座位顺序
func arbitrate(responses []response) (response, bool) {
	if len(responses) == 0 {
		return response{}, false
	}
	sorted := slices.Clone(responses)
	slices.SortStableFunc(sorted, func(a, b response) int {
		return cmp.Compare(waitPriority[b.operate], waitPriority[a.operate])
	})
	return sorted[0], true
}

func (p *Play) Discard(d paohuzi.Discard) error {
	hand := p.hands[p.curSeat]
	tile := d.Tile
	var err error
	if d.FromPending {
		tile, err = hand.DiscardPendingTile()
	} else {
		err = hand.DiscardConcealedTile(tile)
	}
	if err != nil {
		return err
	}
	p.curTile = tile
	p.addHistory(p.curSeat, p.curSeat, OperateDiscard, tile, nil)
	logger.Log.Debugf("seat %d discard %v", p.curSeat, tile)
	return nil
}

func (p *Play) Wei() error {
	hand := p.hands[p.curSeat]
	tile, _ := hand.Pending()
	if err := hand.FormConcealedTriplet(); err != nil {
		return err
	}
	p.addHistory(p.curSeat, p.curSeat, OperateWei, tile, nil)
	return nil
}

func (p *Play) Ti() error {
	hand := p.hands[p.curSeat]
	tile, _ := hand.Pending()
	if err := hand.FormConcealedQuadruplet(); err != nil {
		return err
	}
	p.addHistory(p.curSeat, p.curSeat, OperateTi, tile, nil)
	return nil
}

func (p *Play) Pao(seat int32) error {
	if err := p.hands[seat].FormExposedQuadruplet(p.curTile); err != nil {
		return err
	}
	p.addHistory(seat, p.curSeat, OperatePao, p.curTile, nil)
	return nil
}

func (p *Play) Peng(seat int32) error {
	if err := p.hands[seat].FormExposedTriplet(p.curTile); err != nil {
		return err
	}
	p.addHistory(seat, p.curSeat, OperatePeng, p.curTile, nil)
	return nil
}

func (p *Play) Chi(seat int32, pair [2]paohuzi.Tile) error {
	if err := p.hands[seat].FormSequence(p.curTile, pair); err != nil {
		return err
	}
	p.addHistory(seat, p.curSeat, OperateChi, p.curTile, pair[:])
	return nil
}

func (p *Play) Zimo() {
	p.addHistory(p.curSeat, p.curSeat, OperateHu, p.curTile, nil)
	logger.Log.Infof("seat %d hu, %s", p.curSeat, paohuzi.ScoreDescription(p.huResult.Huxi))
}

func (p *Play) result(reason EndReason) *Result {
	r := &Result{
		Reason:    reason,
		Banker:    p.banker,
		Winner:    SeatNull,
		RestCount: p.dealer.GetRestCount(),
		Actions:   len(p.history),
		Hands:     make([]string, 0, len(p.hands)),
	}
	if reason == EndReasonHu {
		r.Winner = p.curSeat
		r.Huxi = p.huResult.Huxi
		r.Points = paohuzi.Points(p.huResult.Huxi)
		r.Combination = p.huResult.Combination
	}
	for _, hand := range p.hands {
		r.Hands = append(r.Hands, hand.String())
	}
	return r
}

func (p *Play) addHistory(seat, from int32, operate int32, tile paohuzi.Tile, extra []paohuzi.Tile) {
	action := Action{
		Seat:    seat,
		From:    from,
		Operate: operate,
		Tile:    tile,
		Extra:   slices.Clone(extra),
	}
	p.history = append(p.history, action)
}
