package game

import "github.com/kevin-chtw/tw_paohuzi/paohuzi"

const (
	SeatNull int32 = -1
)

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

// Action 一条操作记录
type Action struct {
	Seat    int32
	From    int32 // 牌的来源座位，自己摸的牌与Seat相同
	Operate int32
	Tile    paohuzi.Tile
	Extra   []paohuzi.Tile // 吃牌时用到的两张手牌
}

type EndReason int

const (
	EndReasonNone EndReason = iota
	EndReasonHu             // 自摸胡
	EndReasonDraw           // 牌墙摸完，流局
)

func (r EndReason) String() string {
	switch r {
	case EndReasonHu:
		return "hu"
	case EndReasonDraw:
		return "draw"
	default:
		return "none"
	}
}
