package game

import (
	"strings"

	"github.com/kevin-chtw/tw_paohuzi/paohuzi"
)

const (
	OperateNone    = 0               // 无操作
	OperatePass    = 1 << (iota - 1) // 过  1<<0 = 1
	OperateChi                       // 吃  1<<1 = 2
	OperatePeng                      // 碰  1<<2 = 4
	OperatePao                       // 跑  1<<3 = 8
	OperateWei                       // 偎  1<<4 = 16
	OperateTi                        // 提  1<<5 = 32
	OperateHu                        // 胡  1<<6 = 64
	OperateDiscard                   // 出牌  1<<7 = 128
	OperateDraw                      // 摸牌  1<<8 = 256
)

var OperateNames = map[int32]string{
	OperatePass:    "Pass",
	OperateChi:     "Chi",
	OperatePeng:    "Peng",
	OperatePao:     "Pao",
	OperateWei:     "Wei",
	OperateTi:      "Ti",
	OperateHu:      "Hu",
	OperateDiscard: "Discard",
	OperateDraw:    "Draw",
}

// 响应别人出牌时的优先级: 跑 > 碰 > 吃
var waitPriority = map[int32]int{
	OperatePao:  3,
	OperatePeng: 2,
	OperateChi:  1,
}

type Operates struct {
	Value      int32
	ChiOptions [][2]paohuzi.Tile // 可吃的手牌组合
}

func NewOperates(ops ...int32) *Operates {
	o := &Operates{}
	for _, op := range ops {
		o.AddOperate(op)
	}
	return o
}

func (o *Operates) AddOperate(op int32) {
	o.Value |= op
}

func (o *Operates) RemoveOperate(op int32) {
	o.Value &= ^op
}

func (o *Operates) HasOperate(op int32) bool {
	return (o.Value & op) != 0
}

func (o *Operates) Reset() {
	o.Value = 0
	o.ChiOptions = nil
}

func (o *Operates) String() string {
	var names []string
	for op := int32(OperatePass); op <= OperateDraw; op <<= 1 {
		if o.HasOperate(op) {
			names = append(names, GetOperateName(op))
		}
	}
	return strings.Join(names, "|")
}

func GetOperateName(operate int32) string {
	if name, ok := OperateNames[operate]; ok {
		return name
	}
	return ""
}
